package core

import "github.com/lixenwraith/borof-pani/vmath"

// Platform is a horizontally oscillating rectangle
type Platform struct {
	Rect  vmath.Rect
	Speed float64 // units per frame
	Dir   int     // -1 or +1
}

// Surface returns the top-center point of the platform
func (p *Platform) Surface() vmath.Vec2 {
	return vmath.Vec2{X: p.Rect.X + p.Rect.Width*0.5, Y: p.Rect.Y}
}
