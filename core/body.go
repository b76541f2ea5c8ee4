package core

import (
	"math"

	"github.com/lixenwraith/borof-pani/parameter"
)

// Side identifies which world wall a body clings to
type Side uint8

const (
	SideNone Side = iota
	SideLeft
	SideRight
)

func (s Side) String() string {
	switch s {
	case SideLeft:
		return "left"
	case SideRight:
		return "right"
	default:
		return "none"
	}
}

// WallStick is the cling state: Free (Stuck=false) or Stuck(Side, Remaining)
type WallStick struct {
	Stuck     bool
	Remaining float64 // seconds
	Side      Side
}

// Boost marks a body holding a speed pickup until the next round boundary
type Boost struct {
	Active bool
}

// Body is one player's physical state
// Bodies are allocated once per match and rewritten on every round reset
type Body struct {
	Kinetic
	Radius      float64
	Grounded    bool
	Jumps       int
	FacingRight bool
	Stick       WallStick
	Boost       Boost
}

// RadiusFromSprite derives the collision radius from scaled sprite extents
func RadiusFromSprite(width, height, scale float64) float64 {
	return math.Min(width*scale, height*scale) * parameter.SpriteRadiusFactor
}

// NewBody creates a body at the origin with the sprite-derived radius
func NewBody() Body {
	b := Body{
		Radius: RadiusFromSprite(parameter.SpriteWidth, parameter.SpriteHeight, parameter.SpriteScale),
	}
	b.ResetState()
	return b
}

// ResetState clears motion, jumps, cling and boost without touching Pos or Radius
func (b *Body) ResetState() {
	b.Vel.X, b.Vel.Y = 0, 0
	b.Grounded = false
	b.Jumps = parameter.MaxJumps
	b.FacingRight = true
	b.Stick = WallStick{}
	b.Boost = Boost{}
}

// Left, Right, Top and Bottom are the extents of the body's bounding square
func (b *Body) Left() float64   { return b.Pos.X - b.Radius }
func (b *Body) Right() float64  { return b.Pos.X + b.Radius }
func (b *Body) Top() float64    { return b.Pos.Y - b.Radius }
func (b *Body) Bottom() float64 { return b.Pos.Y + b.Radius }
