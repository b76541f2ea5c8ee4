package core

import "github.com/lixenwraith/borof-pani/vmath"

type Kinetic struct {
	// Pos is the body center in world units
	Pos vmath.Vec2
	// Vel is displacement per frame
	Vel vmath.Vec2
}
