package physics

import (
	"github.com/paulmach/orb"

	"github.com/lixenwraith/nanoswarm/core"
	"github.com/lixenwraith/nanoswarm/vmath"
)

// Integrate performs one Euler step with dt = 1 tick: p = p + v
func Integrate(k *core.Kinetic) {
	k.Pos = vmath.V2Add(k.Pos, k.Vel)
}

// ApplyImpulse adds velocity delta
func ApplyImpulse(k *core.Kinetic, dv vmath.Vec2) {
	k.Vel = vmath.V2Add(k.Vel, dv)
}

// ClampSpeed rescales velocity to maxSpeed when exceeded, returns true if clamped
func ClampSpeed(k *core.Kinetic, maxSpeed float64) bool {
	if vmath.V2MagSq(k.Vel) <= maxSpeed*maxSpeed {
		return false
	}
	k.Vel = vmath.V2ClampMag(k.Vel, maxSpeed)
	return true
}

// reflectAxis bounces one coordinate strictly outside [lo, hi]
// The coordinate is clamped and its velocity negated and scaled by restitution
func reflectAxis(pos, vel *float64, lo, hi, restitution float64) bool {
	if *pos >= lo && *pos <= hi {
		return false
	}
	*vel = -*vel * restitution
	*pos = vmath.Clamp(*pos, lo, hi)
	return true
}

// ReflectBoundsX handles horizontal boundary collision, returns true if reflection occurred
func ReflectBoundsX(k *core.Kinetic, bound orb.Bound, restitution float64) bool {
	return reflectAxis(&k.Pos.X, &k.Vel.X, bound.Min.X(), bound.Max.X(), restitution)
}

// ReflectBoundsY handles vertical boundary collision, returns true if reflection occurred
func ReflectBoundsY(k *core.Kinetic, bound orb.Bound, restitution float64) bool {
	return reflectAxis(&k.Pos.Y, &k.Vel.Y, bound.Min.Y(), bound.Max.Y(), restitution)
}

// ReflectBounds handles both axis boundary collisions independently
// Speed is not re-clamped afterwards
func ReflectBounds(k *core.Kinetic, bound orb.Bound, restitution float64) bool {
	rx := ReflectBoundsX(k, bound, restitution)
	ry := ReflectBoundsY(k, bound, restitution)
	return rx || ry
}

// InBounds reports whether the position lies inside the closed bound
func InBounds(k *core.Kinetic, bound orb.Bound) bool {
	return bound.Contains(orb.Point{k.Pos.X, k.Pos.Y})
}
