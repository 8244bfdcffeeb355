package audio

import (
	"log"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
	"github.com/paulmach/orb"

	"github.com/lixenwraith/nanoswarm/parameter"
)

// Player plays control-plane cues through the speaker
// Implements swarm.Observer; every method is a no-op until Initialize succeeds
type Player struct {
	mu          sync.Mutex
	rate        beep.SampleRate
	volume      float64
	mixer       *beep.Mixer
	initialized bool
	lastPlay    [cueCount]time.Time

	// lock guards the mixer against the speaker goroutine
	lock, unlock func()
}

// NewPlayer creates an uninitialised player
func NewPlayer(volume float64) *Player {
	return &Player{
		rate:   beep.SampleRate(parameter.AudioSampleRate),
		volume: volume,
		mixer:  &beep.Mixer{},
		lock:   func() {},
		unlock: func() {},
	}
}

// Initialize opens the speaker and starts the mixer
func (p *Player) Initialize() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.initialized {
		return nil
	}

	if err := speaker.Init(p.rate, p.rate.N(parameter.AudioBufferDuration)); err != nil {
		return err
	}
	speaker.Play(p.mixer)

	p.lock, p.unlock = speaker.Lock, speaker.Unlock
	p.initialized = true
	log.Printf("audio: speaker ready at %d Hz", p.rate)
	return nil
}

// Cleanup silences all cues and releases the speaker
func (p *Player) Cleanup() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}

	p.lock()
	p.mixer.Clear()
	p.unlock()

	speaker.Clear()
	speaker.Close()
	p.initialized = false
}

// Play queues cue c unless the same cue played within MinSoundGap
func (p *Player) Play(c Cue) {
	if c < 0 || c >= cueCount {
		return
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}

	now := time.Now()
	if now.Sub(p.lastPlay[c]) < parameter.MinSoundGap {
		return
	}
	p.lastPlay[c] = now

	s := NewCue(c, p.rate, p.volume)
	p.lock()
	p.mixer.Add(s)
	p.unlock()
}

// Pending returns the number of cues still streaming
func (p *Player) Pending() int {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.lock()
	defer p.unlock()
	return p.mixer.Len()
}

func (p *Player) OnTargetSet(orb.Point) { p.Play(CueTarget) }

func (p *Player) OnTargetCleared() { p.Play(CueClear) }

func (p *Player) OnReset(uuid.UUID, int) { p.Play(CueReset) }
