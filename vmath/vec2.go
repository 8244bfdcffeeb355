package vmath

import (
	"math"
)

// Vec2 is a float64 2D vector for arena-space kinematics
type Vec2 struct {
	X, Y float64
}

func V2Add(a, b Vec2) Vec2 {
	return Vec2{a.X + b.X, a.Y + b.Y}
}

func V2Sub(a, b Vec2) Vec2 {
	return Vec2{a.X - b.X, a.Y - b.Y}
}

func V2Scale(v Vec2, s float64) Vec2 {
	return Vec2{v.X * s, v.Y * s}
}

func V2MagSq(v Vec2) float64 {
	return v.X*v.X + v.Y*v.Y
}

func V2Mag(v Vec2) float64 {
	return math.Sqrt(V2MagSq(v))
}

// V2Normalize returns the unit vector of v, zero vector stays zero
func V2Normalize(v Vec2) Vec2 {
	mag := V2Mag(v)
	if mag == 0 {
		return Vec2{}
	}
	inv := 1.0 / mag
	return Vec2{v.X * inv, v.Y * inv}
}

// V2ClampMag rescales v to exactly max when its magnitude exceeds max
// Direction is preserved
func V2ClampMag(v Vec2, max float64) Vec2 {
	mag := V2Mag(v)
	if mag <= max || mag == 0 {
		return v
	}
	return V2Scale(v, max/mag)
}

// V2Finite reports whether both components are finite
func V2Finite(v Vec2) bool {
	return IsFinite(v.X) && IsFinite(v.Y)
}
