package audio

import (
	"github.com/gopxl/beep"

	"github.com/lixenwraith/nanoswarm/parameter"
)

// Cue identifies a control-plane sound
type Cue int

const (
	CueTarget Cue = iota
	CueClear
	CueReset
	cueCount
)

func (c Cue) String() string {
	switch c {
	case CueTarget:
		return "target"
	case CueClear:
		return "clear"
	case CueReset:
		return "reset"
	default:
		return "unknown"
	}
}

// NewCue builds a one-shot streamer for c at the given linear volume
func NewCue(c Cue, rate beep.SampleRate, volume float64) beep.Streamer {
	switch c {
	case CueTarget:
		// Fundamental plus octave for a short chime
		fund := NewEnvelope(NewOscillator(parameter.TargetSoundFreq, parameter.TargetSoundDuration, WaveSine, rate),
			parameter.TargetSoundDuration, parameter.TargetSoundAttack, parameter.TargetSoundRelease, rate)
		over := NewEnvelope(NewOscillator(parameter.TargetSoundFreq*2, parameter.TargetSoundDuration, WaveSine, rate),
			parameter.TargetSoundDuration, parameter.TargetSoundAttack, parameter.TargetSoundRelease/2, rate)
		return newVolume(beep.Mix(newVolume(fund, 0.7), newVolume(over, 0.3)), volume)

	case CueClear:
		blip := NewEnvelope(NewOscillator(parameter.ClearSoundFreq, parameter.ClearSoundDuration, WaveTriangle, rate),
			parameter.ClearSoundDuration, parameter.ClearSoundAttack, parameter.ClearSoundRelease, rate)
		return newVolume(blip, volume)

	case CueReset:
		whoosh := NewEnvelope(NewOscillator(0, parameter.ResetSoundDuration, WaveNoise, rate),
			parameter.ResetSoundDuration, parameter.ResetSoundAttack, parameter.ResetSoundRelease, rate)
		return newVolume(whoosh, volume*0.6)
	}
	return beep.Silence(0)
}
