package parameter

import "time"

// Audio Hardware Settings
const (
	AudioSampleRate     = 44100
	AudioBufferDuration = 100 * time.Millisecond
	AudioDefaultVolume  = 0.5
)

// Target acquired chime
const (
	TargetSoundDuration = 180 * time.Millisecond
	TargetSoundAttack   = 5 * time.Millisecond
	TargetSoundRelease  = 120 * time.Millisecond
	TargetSoundFreq     = 880.0
)

// Target released blip
const (
	ClearSoundDuration = 90 * time.Millisecond
	ClearSoundAttack   = 5 * time.Millisecond
	ClearSoundRelease  = 60 * time.Millisecond
	ClearSoundFreq     = 440.0
)

// Reset whoosh
const (
	ResetSoundDuration = 250 * time.Millisecond
	ResetSoundAttack   = 20 * time.Millisecond
	ResetSoundRelease  = 200 * time.Millisecond
)

// MinSoundGap between consecutive cues
const MinSoundGap = 50 * time.Millisecond
