package engine

import (
	"log"
	"sync"
	"sync/atomic"
	"time"

	"github.com/lixenwraith/nanoswarm/core"
	"github.com/lixenwraith/nanoswarm/parameter"
	"github.com/lixenwraith/nanoswarm/status"
	"github.com/lixenwraith/nanoswarm/swarm"
)

// Simulation is the state the driver advances
// *swarm.Engine satisfies it
type Simulation interface {
	Step() swarm.StepStats
	Reset()
}

// Driver runs the simulation on a fixed tick
// It is the single writer: steps, resets and single-step requests all execute on its goroutine
type Driver struct {
	sim          Simulation
	tickInterval time.Duration

	paused    atomic.Bool
	running   atomic.Bool
	tickCount atomic.Uint64

	stopChan  chan struct{}
	stopOnce  sync.Once
	wg        sync.WaitGroup
	resetChan chan struct{}
	stepChan  chan struct{}

	// onTick runs on the driver goroutine after each step
	onTick func(tick uint64, stats swarm.StepStats)

	statTicks  *atomic.Int64
	statPaused *atomic.Bool
	statResets *atomic.Int64
}

// NewDriver creates a stopped driver, tickInterval <= 0 uses the reference cadence
func NewDriver(sim Simulation, tickInterval time.Duration, reg *status.Registry) *Driver {
	if tickInterval <= 0 {
		tickInterval = parameter.TickInterval
	}
	if reg == nil {
		reg = status.NewRegistry()
	}
	return &Driver{
		sim:          sim,
		tickInterval: tickInterval,
		stopChan:     make(chan struct{}),
		resetChan:    make(chan struct{}, 1),
		stepChan:     make(chan struct{}, 1),
		statTicks:    reg.Ints.Get("driver.ticks"),
		statPaused:   reg.Bools.Get("driver.paused"),
		statResets:   reg.Ints.Get("driver.resets"),
	}
}

// OnTick registers the per-tick callback, must be called before Start()
func (d *Driver) OnTick(fn func(tick uint64, stats swarm.StepStats)) {
	d.onTick = fn
}

// Start begins the driver loop
func (d *Driver) Start() {
	if d.running.CompareAndSwap(false, true) {
		d.wg.Add(1)
		log.Printf("driver: started, tick=%v", d.tickInterval)
		core.Go(d.loop)
	}
}

// Stop halts the loop and waits for the in-flight tick to finish
func (d *Driver) Stop() {
	if !d.running.Load() {
		return
	}
	d.stopOnce.Do(func() {
		if d.running.CompareAndSwap(true, false) {
			close(d.stopChan)
			d.wg.Wait()
			log.Printf("driver: stopped after %d ticks", d.tickCount.Load())
		}
	})
}

func (d *Driver) Pause() {
	d.paused.Store(true)
	d.statPaused.Store(true)
}

func (d *Driver) Resume() {
	d.paused.Store(false)
	d.statPaused.Store(false)
}

// Toggle flips the pause state and returns true if now running
func (d *Driver) Toggle() bool {
	for {
		old := d.paused.Load()
		if d.paused.CompareAndSwap(old, !old) {
			d.statPaused.Store(!old)
			return old
		}
	}
}

func (d *Driver) IsPaused() bool {
	return d.paused.Load()
}

// RequestReset schedules a reset between ticks, coalescing repeated requests
func (d *Driver) RequestReset() {
	select {
	case d.resetChan <- struct{}{}:
	default:
	}
}

// RequestStep schedules one tick while paused, ignored while running
func (d *Driver) RequestStep() {
	select {
	case d.stepChan <- struct{}{}:
	default:
	}
}

func (d *Driver) TickCount() uint64 {
	return d.tickCount.Load()
}

func (d *Driver) loop() {
	defer d.wg.Done()

	nextTickDeadline := time.Now().Add(d.tickInterval)

	timer := time.NewTimer(0)
	if !timer.Stop() {
		select {
		case <-timer.C:
		default:
		}
	}
	defer timer.Stop()

	for {
		select {
		case <-d.stopChan:
			return
		case <-d.resetChan:
			d.executeReset()
			continue
		default:
		}

		var sleepDuration time.Duration

		if d.paused.Load() {
			// Longer sleep while paused to save CPU
			sleepDuration = d.tickInterval * parameter.PausedSleepMultiplier
		} else {
			now := time.Now()
			if !now.Before(nextTickDeadline) {
				d.processTick()

				nextTickDeadline = nextTickDeadline.Add(d.tickInterval)
				maxBehind := d.tickInterval * 2
				if now.Sub(nextTickDeadline) > maxBehind {
					nextTickDeadline = now.Add(d.tickInterval)
				}
				sleepDuration = time.Until(nextTickDeadline)
			} else {
				sleepDuration = nextTickDeadline.Sub(now)
			}
		}

		if sleepDuration <= 0 {
			continue
		}

		timer.Reset(sleepDuration)
		select {
		case <-timer.C:
		case <-d.resetChan:
			stopTimer(timer)
			d.executeReset()
		case <-d.stepChan:
			stopTimer(timer)
			if d.paused.Load() {
				d.processTick()
			}
		case <-d.stopChan:
			return
		}
	}
}

func stopTimer(t *time.Timer) {
	if !t.Stop() {
		select {
		case <-t.C:
		default:
		}
	}
}

func (d *Driver) executeReset() {
	d.sim.Reset()
	d.tickCount.Store(0)
	d.statTicks.Store(0)
	d.statResets.Add(1)
	log.Printf("driver: reset")
}

func (d *Driver) processTick() {
	stats := d.sim.Step()
	tick := d.tickCount.Add(1)
	d.statTicks.Store(int64(tick))

	if d.onTick != nil {
		d.onTick(tick, stats)
	}
}
