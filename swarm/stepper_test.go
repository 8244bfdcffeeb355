package swarm

import (
	"math"
	"testing"

	"github.com/paulmach/orb"

	"github.com/lixenwraith/nanoswarm/core"
	"github.com/lixenwraith/nanoswarm/physics"
	"github.com/lixenwraith/nanoswarm/vmath"
)

const eps = 1e-9

// populationOf builds a population holding exactly the given agents
func populationOf(agents ...core.Agent) *Population {
	p := NewPopulation(testArena, 1)
	p.src = vmath.NewFastRand(1)
	for i := range agents {
		agents[i].ID = i
	}
	p.agents = agents
	return p
}

func quietProfile() physics.KineticProfile {
	prof := physics.DefaultProfile()
	prof.JitterGain = 0
	return prof
}

func agentAt(x, y, vx, vy float64) core.Agent {
	return core.Agent{
		Active: true,
		Kinetic: core.Kinetic{
			Pos: vmath.Vec2{X: x, Y: y},
			Vel: vmath.Vec2{X: vx, Y: vy},
		},
	}
}

func TestStepReflectionAtLeftWall(t *testing.T) {
	// Cap above 5 so the clamp does not touch the incoming velocity
	prof := quietProfile()
	prof.MaxSpeed = 10
	p := populationOf(agentAt(1, 300, -5, 0))

	NewStepper(prof, vmath.NewFastRand(1)).Step(p, nil)

	a := p.agents[0]
	if a.Pos.X != 0 {
		t.Errorf("x = %v, want 0", a.Pos.X)
	}
	if math.Abs(a.Vel.X-4.0) > eps {
		t.Errorf("vx = %v, want 4.0", a.Vel.X)
	}
	if a.Pos.Y != 300 || a.Vel.Y != 0 {
		t.Errorf("y axis disturbed: pos %v vel %v", a.Pos, a.Vel)
	}
}

func TestStepReflectionAfterClamp(t *testing.T) {
	// Reference cap 3: vx clamps to -3 first, lands at -2, bounces to 2.4
	p := populationOf(agentAt(1, 300, -5, 0))

	NewStepper(quietProfile(), vmath.NewFastRand(1)).Step(p, nil)

	a := p.agents[0]
	if a.Pos.X != 0 {
		t.Errorf("x = %v, want 0", a.Pos.X)
	}
	if math.Abs(a.Vel.X-2.4) > eps {
		t.Errorf("vx = %v, want 2.4", a.Vel.X)
	}
}

func TestStepDeadZoneSuppressesSeek(t *testing.T) {
	p := populationOf(agentAt(400, 300, 0, 0))
	target := orb.Point{400, 300}

	stats := NewStepper(quietProfile(), vmath.NewFastRand(1)).Step(p, &target)

	a := p.agents[0]
	if a.Vel != (vmath.Vec2{}) {
		t.Errorf("velocity = %v, want zero inside dead zone", a.Vel)
	}
	if a.Pos != (vmath.Vec2{X: 400, Y: 300}) {
		t.Errorf("position = %v, want unchanged", a.Pos)
	}
	if stats.Seeking != 0 {
		t.Errorf("Seeking = %d, want 0", stats.Seeking)
	}
}

func TestStepDeadZoneKeepsResidualVelocity(t *testing.T) {
	p := populationOf(agentAt(400, 300, 0.5, 0))
	target := orb.Point{401, 300}

	NewStepper(quietProfile(), vmath.NewFastRand(1)).Step(p, &target)

	a := p.agents[0]
	if a.Vel != (vmath.Vec2{X: 0.5, Y: 0}) {
		t.Errorf("velocity = %v, want residual {0.5 0}", a.Vel)
	}
	if a.Pos.X != 400.5 {
		t.Errorf("x = %v, want 400.5", a.Pos.X)
	}
}

func TestStepSeekOutsideDeadZone(t *testing.T) {
	p := populationOf(agentAt(100, 100, 0, 0))
	target := orb.Point{100, 200}

	stats := NewStepper(quietProfile(), vmath.NewFastRand(1)).Step(p, &target)

	a := p.agents[0]
	if math.Abs(a.Vel.Y-0.1) > eps || a.Vel.X != 0 {
		t.Errorf("velocity = %v, want {0 0.1}", a.Vel)
	}
	if math.Abs(a.Pos.Y-100.1) > eps {
		t.Errorf("y = %v, want 100.1", a.Pos.Y)
	}
	if stats.Seeking != 1 || stats.Moved != 1 {
		t.Errorf("stats = %+v, want Seeking=1 Moved=1", stats)
	}
}

func TestStepNoTargetNoSeek(t *testing.T) {
	p := populationOf(agentAt(100, 100, 1, 0))
	NewStepper(quietProfile(), vmath.NewFastRand(1)).Step(p, nil)
	if p.agents[0].Vel != (vmath.Vec2{X: 1, Y: 0}) {
		t.Errorf("velocity changed without target: %v", p.agents[0].Vel)
	}
}

func TestStepInactiveAgentsFrozen(t *testing.T) {
	p := NewPopulation(testArena, 0)
	p.Initialize(10, vmath.NewFastRand(21))
	before := p.Snapshot()
	for _, a := range before {
		if a.Active {
			t.Fatal("probability 0 produced an active agent")
		}
	}

	s := NewStepper(physics.DefaultProfile(), vmath.NewFastRand(22))
	target := orb.Point{10, 10}
	for i := 0; i < 100; i++ {
		s.Step(p, &target)
	}

	after := p.Snapshot()
	for i := range before {
		if before[i].Kinetic != after[i].Kinetic {
			t.Errorf("inactive agent %d moved: %+v -> %+v", i, before[i].Kinetic, after[i].Kinetic)
		}
	}
}

func TestStepKeepsBoundsAndSpeed(t *testing.T) {
	p := NewPopulation(testArena, 0.7)
	p.Initialize(300, vmath.NewFastRand(5))

	prof := physics.DefaultProfile()
	// Exaggerated jitter drives agents into the walls often
	prof.JitterGain = 4
	s := NewStepper(prof, vmath.NewFastRand(6))

	targets := []orb.Point{{0, 0}, {800, 600}, {400, 0}, {800, 300}}
	for tick := 0; tick < 2000; tick++ {
		tgt := targets[(tick/250)%len(targets)]
		s.Step(p, &tgt)

		for _, a := range p.agents {
			if a.Pos.X < 0 || a.Pos.X > 800 || a.Pos.Y < 0 || a.Pos.Y > 600 {
				t.Fatalf("tick %d: agent %d out of bounds at %v", tick, a.ID, a.Pos)
			}
			if a.Active && vmath.V2Mag(a.Vel) > prof.MaxSpeed+eps {
				t.Fatalf("tick %d: agent %d speed %v exceeds %v", tick, a.ID, vmath.V2Mag(a.Vel), prof.MaxSpeed)
			}
		}
	}
}

func TestStepConvergesOnTarget(t *testing.T) {
	// Ring of resting agents, radial motion only with jitter disabled
	center := vmath.Vec2{X: 400, Y: 300}
	agents := make([]core.Agent, 16)
	for i := range agents {
		angle := 2 * math.Pi * float64(i) / float64(len(agents))
		agents[i] = agentAt(center.X+250*math.Cos(angle), center.Y+250*math.Sin(angle), 0, 0)
	}
	p := populationOf(agents...)
	s := NewStepper(quietProfile(), vmath.NewFastRand(78))
	target := orb.Point{center.X, center.Y}

	for i := 0; i < 600; i++ {
		s.Step(p, &target)
	}
	for _, a := range p.agents {
		// Overshoot at the speed cap stays well under the starting radius
		if d := vmath.V2Mag(vmath.V2Sub(a.Pos, center)); d > 100 {
			t.Errorf("agent %d still %v from target", a.ID, d)
		}
	}
}

func TestStepDeterministic(t *testing.T) {
	run := func() []core.Agent {
		p := NewPopulation(testArena, 0.7)
		src := vmath.NewFastRand(1234)
		p.Initialize(80, src)
		s := NewStepper(physics.DefaultProfile(), src)
		target := orb.Point{120, 480}
		for i := 0; i < 200; i++ {
			s.Step(p, &target)
		}
		return p.Snapshot()
	}

	a, b := run(), run()
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("agent %d diverged: %+v vs %+v", i, a[i], b[i])
		}
	}
}
