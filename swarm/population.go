package swarm

import (
	"io"

	"github.com/google/uuid"
	"github.com/paulmach/orb"

	"github.com/lixenwraith/nanoswarm/core"
	"github.com/lixenwraith/nanoswarm/parameter"
	"github.com/lixenwraith/nanoswarm/vmath"
)

// KindCounts is the active-agent tally per kind
type KindCounts struct {
	ByKind [core.KindCount]int
	Total  int
}

// Get returns the active count for k, zero for invalid kinds
func (c KindCounts) Get(k core.Kind) int {
	if !k.Valid() {
		return 0
	}
	return c.ByKind[k]
}

// Population owns the agent set and its kinematic state
// Not safe for concurrent use; Engine serialises access
type Population struct {
	bound      orb.Bound
	activeProb float64
	src        vmath.Source

	agents []core.Agent
	epoch  uuid.UUID
}

// NewPopulation creates an empty population confined to bound
func NewPopulation(bound orb.Bound, activeProb float64) *Population {
	return &Population{
		bound:      bound,
		activeProb: activeProb,
	}
}

// Initialize discards any agents and creates count new ones drawn from src
// Per agent draws are x, y, vx, vy, active in that order, then the epoch
func (p *Population) Initialize(count int, src vmath.Source) {
	if count < 0 {
		panic("swarm: negative agent count")
	}
	if src == nil {
		panic("swarm: nil random source")
	}
	p.src = src

	w := p.bound.Max.X() - p.bound.Min.X()
	h := p.bound.Max.Y() - p.bound.Min.Y()
	r := parameter.InitialSpeedRange

	agents := make([]core.Agent, count)
	for i := range agents {
		a := &agents[i]
		a.ID = i
		a.Kind = core.KindFor(i)
		a.Pos.X = p.bound.Min.X() + src.Float64()*w
		a.Pos.Y = p.bound.Min.Y() + src.Float64()*h
		a.Vel.X = (src.Float64()*2 - 1) * r
		a.Vel.Y = (src.Float64()*2 - 1) * r
		a.Active = src.Float64() < p.activeProb
	}
	p.agents = agents
	p.epoch = newEpoch(src)
}

// Reset re-runs Initialize with the stored source
// count <= 0 keeps the current size
func (p *Population) Reset(count int) {
	if p.src == nil {
		panic("swarm: reset before initialize")
	}
	if count <= 0 {
		count = len(p.agents)
	}
	p.Initialize(count, p.src)
}

// Snapshot returns a copy of the agents in creation order
func (p *Population) Snapshot() []core.Agent {
	out := make([]core.Agent, len(p.agents))
	copy(out, p.agents)
	return out
}

// CountActiveByKind tallies active agents, recomputed on every call
func (p *Population) CountActiveByKind() KindCounts {
	var c KindCounts
	for i := range p.agents {
		if !p.agents[i].Active {
			continue
		}
		c.ByKind[p.agents[i].Kind]++
		c.Total++
	}
	return c
}

// MeanSpeed averages speed over active agents, zero when none are active
func (p *Population) MeanSpeed() float64 {
	var sum float64
	var n int
	for i := range p.agents {
		if !p.agents[i].Active {
			continue
		}
		sum += vmath.V2Mag(p.agents[i].Vel)
		n++
	}
	if n == 0 {
		return 0
	}
	return sum / float64(n)
}

func (p *Population) Len() int { return len(p.agents) }

// Epoch identifies the current generation of agent IDs
func (p *Population) Epoch() uuid.UUID { return p.epoch }

func (p *Population) Bound() orb.Bound { return p.bound }

// sourceReader adapts a Source to io.Reader for uuid generation
type sourceReader struct {
	src vmath.Source
}

func (r sourceReader) Read(b []byte) (int, error) {
	for i := range b {
		b[i] = byte(r.src.Float64() * 256)
	}
	return len(b), nil
}

func newEpoch(src vmath.Source) uuid.UUID {
	var rd io.Reader = sourceReader{src}
	if native, ok := src.(io.Reader); ok {
		rd = native
	}
	id, err := uuid.NewRandomFromReader(rd)
	if err != nil {
		return uuid.Nil
	}
	return id
}
