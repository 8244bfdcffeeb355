package swarm

import (
	"github.com/paulmach/orb"

	"github.com/lixenwraith/nanoswarm/physics"
	"github.com/lixenwraith/nanoswarm/vmath"
)

// StepStats summarises one tick
type StepStats struct {
	Moved   int // active agents advanced
	Seeking int // agents that received seek acceleration
	Bounced int // agents reflected off at least one wall
}

// Stepper advances a population by one tick
type Stepper struct {
	Profile physics.KineticProfile
	Source  vmath.Source
}

// NewStepper creates a stepper drawing jitter from src
func NewStepper(profile physics.KineticProfile, src vmath.Source) *Stepper {
	return &Stepper{
		Profile: profile,
		Source:  src,
	}
}

// Step applies seek, jitter, clamp, integration and reflection to every active agent in order
// target may be nil; inactive agents are left untouched
func (s *Stepper) Step(p *Population, target *orb.Point) StepStats {
	var stats StepStats
	prof := &s.Profile
	bound := p.bound

	for i := range p.agents {
		a := &p.agents[i]
		if !a.Active {
			continue
		}
		k := &a.Kinetic

		if target != nil && physics.ApplySeek(k, *target, prof.SeekGain, prof.DeadZone) {
			stats.Seeking++
		}
		physics.ApplyJitter(k, s.Source, prof.JitterGain)
		physics.ClampSpeed(k, prof.MaxSpeed)
		physics.Integrate(k)
		if physics.ReflectBounds(k, bound, prof.Restitution) {
			stats.Bounced++
		}
		stats.Moved++
	}
	return stats
}
