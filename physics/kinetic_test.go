package physics

import (
	"math"
	"testing"

	"github.com/paulmach/orb"

	"github.com/lixenwraith/nanoswarm/core"
	"github.com/lixenwraith/nanoswarm/vmath"
)

const eps = 1e-9

var arena = orb.Bound{Min: orb.Point{0, 0}, Max: orb.Point{800, 600}}

func near(a, b float64) bool { return math.Abs(a-b) <= eps }

func TestIntegrate(t *testing.T) {
	k := core.Kinetic{Pos: vmath.Vec2{X: 10, Y: 20}, Vel: vmath.Vec2{X: 1.5, Y: -2}}
	Integrate(&k)
	if k.Pos != (vmath.Vec2{X: 11.5, Y: 18}) {
		t.Errorf("Integrate pos = %v, want {11.5 18}", k.Pos)
	}
	if k.Vel != (vmath.Vec2{X: 1.5, Y: -2}) {
		t.Errorf("Integrate changed velocity to %v", k.Vel)
	}
}

func TestClampSpeed(t *testing.T) {
	tests := []struct {
		name    string
		vel     vmath.Vec2
		clamped bool
		want    vmath.Vec2
	}{
		{"below", vmath.Vec2{X: 1, Y: 1}, false, vmath.Vec2{X: 1, Y: 1}},
		{"exact", vmath.Vec2{X: 3, Y: 0}, false, vmath.Vec2{X: 3, Y: 0}},
		{"above", vmath.Vec2{X: 6, Y: 8}, true, vmath.Vec2{X: 1.8, Y: 2.4}},
		{"negative", vmath.Vec2{X: -5, Y: 0}, true, vmath.Vec2{X: -3, Y: 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			k := core.Kinetic{Vel: tt.vel}
			if got := ClampSpeed(&k, 3); got != tt.clamped {
				t.Errorf("ClampSpeed returned %v, want %v", got, tt.clamped)
			}
			if !near(k.Vel.X, tt.want.X) || !near(k.Vel.Y, tt.want.Y) {
				t.Errorf("velocity = %v, want %v", k.Vel, tt.want)
			}
		})
	}
}

func TestReflectBounds(t *testing.T) {
	tests := []struct {
		name      string
		pos, vel  vmath.Vec2
		reflected bool
		wantPos   vmath.Vec2
		wantVel   vmath.Vec2
	}{
		{"inside", vmath.Vec2{X: 400, Y: 300}, vmath.Vec2{X: 2, Y: 2}, false, vmath.Vec2{X: 400, Y: 300}, vmath.Vec2{X: 2, Y: 2}},
		{"left wall", vmath.Vec2{X: -4, Y: 300}, vmath.Vec2{X: -5, Y: 1}, true, vmath.Vec2{X: 0, Y: 300}, vmath.Vec2{X: 4, Y: 1}},
		{"right wall", vmath.Vec2{X: 802, Y: 300}, vmath.Vec2{X: 2.5, Y: 0}, true, vmath.Vec2{X: 800, Y: 300}, vmath.Vec2{X: -2, Y: 0}},
		{"top wall", vmath.Vec2{X: 10, Y: -1}, vmath.Vec2{X: 0, Y: -1}, true, vmath.Vec2{X: 10, Y: 0}, vmath.Vec2{X: 0, Y: 0.8}},
		{"corner", vmath.Vec2{X: 801, Y: 601}, vmath.Vec2{X: 1, Y: 1}, true, vmath.Vec2{X: 800, Y: 600}, vmath.Vec2{X: -0.8, Y: -0.8}},
		{"on edge", vmath.Vec2{X: 0, Y: 600}, vmath.Vec2{X: 1, Y: -1}, false, vmath.Vec2{X: 0, Y: 600}, vmath.Vec2{X: 1, Y: -1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			k := core.Kinetic{Pos: tt.pos, Vel: tt.vel}
			if got := ReflectBounds(&k, arena, 0.8); got != tt.reflected {
				t.Errorf("ReflectBounds returned %v, want %v", got, tt.reflected)
			}
			if !near(k.Pos.X, tt.wantPos.X) || !near(k.Pos.Y, tt.wantPos.Y) {
				t.Errorf("pos = %v, want %v", k.Pos, tt.wantPos)
			}
			if !near(k.Vel.X, tt.wantVel.X) || !near(k.Vel.Y, tt.wantVel.Y) {
				t.Errorf("vel = %v, want %v", k.Vel, tt.wantVel)
			}
			if !InBounds(&k, arena) {
				t.Errorf("pos %v left the arena", k.Pos)
			}
		})
	}
}

func TestReflectDoesNotReclamp(t *testing.T) {
	// Perpendicular axis keeps its speed, so total may exceed a prior cap
	k := core.Kinetic{Pos: vmath.Vec2{X: -1, Y: 300}, Vel: vmath.Vec2{X: -2, Y: 2.9}}
	ReflectBounds(&k, arena, 0.8)
	if !near(k.Vel.Y, 2.9) {
		t.Errorf("unaffected axis changed: vel.Y = %v", k.Vel.Y)
	}
}
