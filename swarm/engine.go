package swarm

import (
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/google/uuid"
	"github.com/paulmach/orb"

	"github.com/lixenwraith/nanoswarm/core"
	"github.com/lixenwraith/nanoswarm/parameter"
	"github.com/lixenwraith/nanoswarm/physics"
	"github.com/lixenwraith/nanoswarm/status"
	"github.com/lixenwraith/nanoswarm/vmath"
)

// Options configures an Engine
type Options struct {
	Bound             orb.Bound
	Agents            int
	ActiveProbability float64
	Profile           physics.KineticProfile
}

// DefaultOptions returns the reference arena, population and kinetics
func DefaultOptions() Options {
	return Options{
		Bound:             orb.Bound{Min: orb.Point{0, 0}, Max: orb.Point{parameter.ArenaWidth, parameter.ArenaHeight}},
		Agents:            parameter.DefaultAgentCount,
		ActiveProbability: parameter.ActiveProbability,
		Profile:           physics.DefaultProfile(),
	}
}

// Observer receives control-plane notifications, called outside the engine lock
type Observer interface {
	OnTargetSet(target orb.Point)
	OnTargetCleared()
	OnReset(epoch uuid.UUID, agents int)
}

// Frame is a consistent read of everything a renderer needs
type Frame struct {
	Agents    []core.Agent
	Counts    KindCounts
	Target    orb.Point
	HasTarget bool
	Tick      uint64
	Epoch     uuid.UUID
	Bound     orb.Bound
}

// Engine is the facade used by collaborators: population, stepper and the shared target
// One writer (the driver) calls Step; any number of readers may query between ticks
type Engine struct {
	mu sync.RWMutex

	pop     *Population
	stepper *Stepper
	src     vmath.Source

	target    orb.Point
	hasTarget bool
	ticks     uint64

	observer atomic.Pointer[observerBox]
	metrics  *engineMetrics
}

type observerBox struct{ Observer }

// engineMetrics caches registry pointers, written after each step or reset
type engineMetrics struct {
	ticks   *atomic.Int64
	agents  *atomic.Int64
	active  *atomic.Int64
	seeking *atomic.Int64
	bounced *atomic.Int64
	target  *atomic.Bool
	speed   *status.AtomicFloat
	epoch   *status.AtomicString
	byKind  [core.KindCount]*atomic.Int64
}

// NewEngine creates an engine and initialises its population from src
func NewEngine(opts Options, src vmath.Source) *Engine {
	e := &Engine{
		pop:     NewPopulation(opts.Bound, opts.ActiveProbability),
		stepper: NewStepper(opts.Profile, src),
		src:     src,
	}
	e.pop.Initialize(opts.Agents, src)
	return e
}

// SetObserver installs the notification hook, nil removes it
func (e *Engine) SetObserver(o Observer) {
	if o == nil {
		e.observer.Store(nil)
		return
	}
	e.observer.Store(&observerBox{o})
}

// AttachStatus registers engine metrics in reg and publishes the current state
func (e *Engine) AttachStatus(reg *status.Registry) {
	m := &engineMetrics{
		ticks:   reg.Ints.Get("swarm.ticks"),
		agents:  reg.Ints.Get("swarm.agents"),
		active:  reg.Ints.Get("swarm.active"),
		seeking: reg.Ints.Get("swarm.seeking"),
		bounced: reg.Ints.Get("swarm.bounced"),
		target:  reg.Bools.Get("swarm.target"),
		speed:   reg.Floats.Get("swarm.speed.mean"),
		epoch:   reg.Strings.Get("swarm.epoch"),
	}
	for k := core.Kind(0); k < core.KindCount; k++ {
		m.byKind[k] = reg.Ints.Get("swarm.active." + k.String())
	}

	e.mu.Lock()
	e.metrics = m
	e.publishLocked(StepStats{})
	e.mu.Unlock()
}

// Initialize replaces the population with count fresh agents, the target is kept
func (e *Engine) Initialize(count int) {
	e.mu.Lock()
	e.pop.Initialize(count, e.src)
	e.ticks = 0
	epoch, n := e.pop.Epoch(), e.pop.Len()
	e.publishLocked(StepStats{})
	e.mu.Unlock()

	e.notify(func(o Observer) { o.OnReset(epoch, n) })
}

// Reset re-initialises the population at its current size and clears the target
func (e *Engine) Reset() {
	e.ResetCount(0)
}

// ResetCount re-initialises with count agents (<= 0 keeps the size) and clears the target
func (e *Engine) ResetCount(count int) {
	e.mu.Lock()
	e.pop.Reset(count)
	e.hasTarget = false
	e.target = orb.Point{}
	e.ticks = 0
	epoch, n := e.pop.Epoch(), e.pop.Len()
	e.publishLocked(StepStats{})
	e.mu.Unlock()

	e.notify(func(o Observer) { o.OnReset(epoch, n) })
}

// SetTarget validates and clamps (x, y) into the arena
// Non-finite input returns ErrInvalidTarget and keeps the previous target
func (e *Engine) SetTarget(x, y float64) error {
	if !vmath.IsFinite(x) || !vmath.IsFinite(y) {
		return fmt.Errorf("%w: (%v, %v)", ErrInvalidTarget, x, y)
	}

	e.mu.Lock()
	b := e.pop.Bound()
	t := orb.Point{
		vmath.Clamp(x, b.Min.X(), b.Max.X()),
		vmath.Clamp(y, b.Min.Y(), b.Max.Y()),
	}
	e.target = t
	e.hasTarget = true
	if e.metrics != nil {
		e.metrics.target.Store(true)
	}
	e.mu.Unlock()

	e.notify(func(o Observer) { o.OnTargetSet(t) })
	return nil
}

// ClearTarget removes the shared target
func (e *Engine) ClearTarget() {
	e.mu.Lock()
	had := e.hasTarget
	e.hasTarget = false
	e.target = orb.Point{}
	if e.metrics != nil {
		e.metrics.target.Store(false)
	}
	e.mu.Unlock()

	if had {
		e.notify(func(o Observer) { o.OnTargetCleared() })
	}
}

// Target returns the current target and whether one is set
func (e *Engine) Target() (orb.Point, bool) {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.target, e.hasTarget
}

// Step advances the population by one tick, atomic with respect to readers
func (e *Engine) Step() StepStats {
	e.mu.Lock()
	defer e.mu.Unlock()

	var target *orb.Point
	if e.hasTarget {
		t := e.target
		target = &t
	}
	stats := e.stepper.Step(e.pop, target)
	e.ticks++
	e.publishLocked(stats)
	return stats
}

// Snapshot returns a copy of all agents in creation order
func (e *Engine) Snapshot() []core.Agent {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.pop.Snapshot()
}

// CountActiveByKind tallies active agents per kind from current state
func (e *Engine) CountActiveByKind() KindCounts {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.pop.CountActiveByKind()
}

// Frame returns agents, counts and target read under a single lock
func (e *Engine) Frame() Frame {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return Frame{
		Agents:    e.pop.Snapshot(),
		Counts:    e.pop.CountActiveByKind(),
		Target:    e.target,
		HasTarget: e.hasTarget,
		Tick:      e.ticks,
		Epoch:     e.pop.Epoch(),
		Bound:     e.pop.Bound(),
	}
}

// Ticks returns the number of steps since the last (re)initialisation
func (e *Engine) Ticks() uint64 {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.ticks
}

func (e *Engine) Epoch() uuid.UUID {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.pop.Epoch()
}

func (e *Engine) publishLocked(stats StepStats) {
	m := e.metrics
	if m == nil {
		return
	}
	counts := e.pop.CountActiveByKind()
	m.ticks.Store(int64(e.ticks))
	m.agents.Store(int64(e.pop.Len()))
	m.active.Store(int64(counts.Total))
	m.seeking.Store(int64(stats.Seeking))
	m.bounced.Store(int64(stats.Bounced))
	m.target.Store(e.hasTarget)
	m.speed.Set(e.pop.MeanSpeed())
	m.epoch.Store(e.pop.Epoch().String()[:8])
	for k := range m.byKind {
		m.byKind[k].Store(int64(counts.ByKind[k]))
	}
}

func (e *Engine) notify(fn func(Observer)) {
	if box := e.observer.Load(); box != nil {
		fn(box.Observer)
	}
}
