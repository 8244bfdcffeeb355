package physics

import (
	"github.com/paulmach/orb"

	"github.com/lixenwraith/nanoswarm/core"
	"github.com/lixenwraith/nanoswarm/vmath"
)

// ApplySeek accelerates toward target by gain along the unit direction
// Returns false without touching velocity when inside the dead zone
func ApplySeek(k *core.Kinetic, target orb.Point, gain, deadZone float64) bool {
	delta := vmath.V2Sub(vmath.Vec2{X: target.X(), Y: target.Y()}, k.Pos)
	dist := vmath.V2Mag(delta)
	if dist <= deadZone {
		return false
	}

	dir := vmath.V2Scale(delta, 1/dist)
	k.Vel = vmath.V2Add(k.Vel, vmath.V2Scale(dir, gain))
	return true
}

// ApplyJitter adds independent uniform noise in [-gain/2, gain/2) per axis
// Zero gain draws nothing from src
func ApplyJitter(k *core.Kinetic, src vmath.Source, gain float64) {
	if gain == 0 {
		return
	}
	k.Vel.X += (src.Float64() - 0.5) * gain
	k.Vel.Y += (src.Float64() - 0.5) * gain
}
