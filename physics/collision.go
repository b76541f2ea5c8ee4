package physics

import (
	"github.com/lixenwraith/borof-pani/core"
	"github.com/lixenwraith/borof-pani/vmath"
)

// Contact reports what a resolution pass touched
type Contact struct {
	Landed   bool // rested on a platform or the floor
	OnFloor  bool
	Ceiling  bool // hit a platform underside
	Side     bool // hit a platform edge
	Wall     core.Side
	StuckNow bool // entered wall-stick this pass
	Unstuck  bool // left wall-stick this pass
	Released bool // wall-stick timer expired this pass
}

// contactSlop absorbs float drift of a body resting exactly on a surface
const contactSlop = 1e-6

func land(b *core.Body, surfaceY float64, t *Tuning) {
	b.Pos.Y = surfaceY - b.Radius
	b.Vel.Y = 0
	b.Grounded = true
	b.Jumps = t.MaxJumps
}

// ResolveVertical integrates vertical velocity and resolves against platform tops, undersides and the floor
// A landing requires the previous bottom at or above the surface and the current bottom at or below it
// The floor only applies when no platform landing happened in this pass, and catches any
// body whose bottom was still inside the slab
func ResolveVertical(b *core.Body, platforms []core.Platform, floor *vmath.Rect, t *Tuning) Contact {
	var c Contact

	prevTop, prevBottom := b.Top(), b.Bottom()
	b.Pos.Y += b.Vel.Y
	b.Grounded = false

	for i := range platforms {
		r := platforms[i].Rect
		if !r.OverlapsX(b.Left(), b.Right()) {
			continue
		}
		if b.Vel.Y >= 0 {
			if prevBottom <= r.Top()+contactSlop && b.Bottom() >= r.Top()-contactSlop {
				land(b, r.Top(), t)
				c.Landed = true
			}
		} else if prevTop >= r.Bottom()-contactSlop && b.Top() <= r.Bottom()+contactSlop {
			b.Pos.Y = r.Bottom() + b.Radius
			b.Vel.Y = 0
			c.Ceiling = true
		}
	}

	if floor != nil && !c.Landed && b.Vel.Y >= 0 && floor.OverlapsX(b.Left(), b.Right()) {
		// The whole slab is solid: a body pushed partly into it is lifted back out
		if prevBottom <= floor.Bottom() && b.Bottom() >= floor.Top()-contactSlop {
			land(b, floor.Top(), t)
			c.Landed = true
			c.OnFloor = true
		}
	}

	return c
}

// ResolveHorizontal integrates horizontal velocity and resolves against platform edges
// Side contacts snap to the edge and force the rebound speed away from it
func ResolveHorizontal(b *core.Body, platforms []core.Platform, t *Tuning) Contact {
	var c Contact

	b.Pos.X += b.Vel.X

	for i := range platforms {
		r := platforms[i].Rect
		if !r.OverlapsY(b.Top(), b.Bottom()) {
			continue
		}
		if b.Vel.X > 0 && b.Right() >= r.Left() && b.Left() < r.Left() {
			b.Pos.X = r.Left() - b.Radius
			b.Vel.X = -t.ReboundSpeed
			c.Side = true
		} else if b.Vel.X < 0 && b.Left() <= r.Right() && b.Right() > r.Right() {
			b.Pos.X = r.Right() + b.Radius
			b.Vel.X = t.ReboundSpeed
			c.Side = true
		}
	}

	return c
}

// ResolveWalls runs the wall-stick lifecycle then the world wall contact
// Order: countdown, cling physics, contact
func ResolveWalls(b *core.Body, worldWidth, dt float64, t *Tuning) Contact {
	released := UpdateWallStick(b, dt, t)
	ApplyWallStick(b, t)
	c := HandleWalls(b, worldWidth, t)
	c.Released = released
	return c
}

// World is the static collision context a body is stepped against
type World struct {
	Width     float64
	Platforms []core.Platform
	Floor     *vmath.Rect
}

// StepBody advances one body by a frame in the fixed order:
// controls, gravity, vertical pass, horizontal pass, walls
// The vertical pass runs first so it wins corner cases against platform edges
func StepBody(b *core.Body, ctl Control, w *World, dt float64, t *Tuning) Contact {
	ApplyControls(b, ctl, t)
	ApplyGravity(b, t)

	c := ResolveVertical(b, w.Platforms, w.Floor, t)
	h := ResolveHorizontal(b, w.Platforms, t)
	wc := ResolveWalls(b, w.Width, dt, t)

	c.Side = h.Side
	c.Wall, c.StuckNow, c.Unstuck, c.Released = wc.Wall, wc.StuckNow, wc.Unstuck, wc.Released
	return c
}
