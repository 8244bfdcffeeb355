package core

import "github.com/lixenwraith/nanoswarm/vmath"

type Kinetic struct {
	// Pos is the arena-space position, confined to the arena after every step
	Pos vmath.Vec2
	// Vel is the displacement applied per tick
	Vel vmath.Vec2
}
