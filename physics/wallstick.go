package physics

import (
	"math"

	"github.com/lixenwraith/borof-pani/core"
)

// UpdateWallStick counts the cling timer down and releases the body on expiry
// Release nudges the body one unit off the wall so the same frame's contact test misses
func UpdateWallStick(b *core.Body, dt float64, t *Tuning) bool {
	if !b.Stick.Stuck {
		return false
	}
	b.Stick.Remaining -= dt
	if b.Stick.Remaining > 0 {
		return false
	}
	switch b.Stick.Side {
	case core.SideLeft:
		b.Pos.X += t.WallStickRelease
	case core.SideRight:
		b.Pos.X -= t.WallStickRelease
	}
	b.Stick = core.WallStick{}
	return true
}

// ApplyWallStick holds a stuck body: no velocity into the wall, vertical motion decays to a cling
func ApplyWallStick(b *core.Body, t *Tuning) {
	if !b.Stick.Stuck {
		return
	}
	switch b.Stick.Side {
	case core.SideLeft:
		if b.Vel.X < 0 {
			b.Vel.X = 0
		}
	case core.SideRight:
		if b.Vel.X > 0 {
			b.Vel.X = 0
		}
	}
	b.Vel.Y *= t.WallStickCling
	if math.Abs(b.Vel.Y) < t.WallStickSnap {
		b.Vel.Y = 0
	}
}

// HandleWalls keeps the body inside [0, worldWidth]
// Contact snaps and rebounds a free body; with wall-stick enabled the first contact enters Stuck
// Losing contact while stuck returns the body to Free immediately
func HandleWalls(b *core.Body, worldWidth float64, t *Tuning) Contact {
	var c Contact

	switch {
	case b.Left() <= 0:
		b.Pos.X = b.Radius
		c.Wall = core.SideLeft
	case b.Right() >= worldWidth:
		b.Pos.X = worldWidth - b.Radius
		c.Wall = core.SideRight
	}

	if c.Wall == core.SideNone {
		if b.Stick.Stuck {
			b.Stick = core.WallStick{}
			c.Unstuck = true
		}
		return c
	}

	if b.Stick.Stuck {
		return c
	}

	if c.Wall == core.SideLeft {
		b.Vel.X = t.ReboundSpeed
	} else {
		b.Vel.X = -t.ReboundSpeed
	}

	if t.WallStick {
		b.Stick = core.WallStick{
			Stuck:     true,
			Remaining: t.WallStickDuration,
			Side:      c.Wall,
		}
		b.Vel.X = 0
		b.Vel.Y *= t.WallStickEntry
		c.StuckNow = true
	}
	return c
}
