package physics

import (
	"github.com/lixenwraith/borof-pani/core"
	"github.com/lixenwraith/borof-pani/vmath"
)

// Overlapping reports whether two body circles intersect
func Overlapping(a, b *core.Body) bool {
	return vmath.CirclesOverlap(a.Pos, a.Radius, b.Pos, b.Radius)
}

// ResolveBounce separates two overlapping bodies and applies an impulse along the contact normal
// Equal masses; positional correction is split evenly
// Coincident centers have no normal, the contact is skipped and velocities are left untouched
func ResolveBounce(a, b *core.Body, restitution float64) bool {
	d := vmath.V2Sub(b.Pos, a.Pos)
	dist := vmath.V2Mag(d)
	minDist := a.Radius + b.Radius
	if dist == 0 || dist >= minDist {
		return false
	}

	n := vmath.V2Scale(d, 1/dist)
	half := (minDist - dist) * 0.5
	a.Pos = vmath.V2Sub(a.Pos, vmath.V2Scale(n, half))
	b.Pos = vmath.V2Add(b.Pos, vmath.V2Scale(n, half))

	along := vmath.V2Dot(vmath.V2Sub(b.Vel, a.Vel), n)
	if along > 0 {
		// Already separating
		return true
	}

	j := -(1 + restitution) * along / 2
	impulse := vmath.V2Scale(n, j)
	a.Vel = vmath.V2Sub(a.Vel, impulse)
	b.Vel = vmath.V2Add(b.Vel, impulse)
	return true
}

// Contain returns a body displaced after its step back to free space
// Overlap with a platform or the floor is undone along the shallowest side,
// then x is clamped to [r, worldWidth-r]. Velocity is left to the next step
func Contain(b *core.Body, w *World) {
	for i := range w.Platforms {
		pushOut(b, w.Platforms[i].Rect)
	}
	if w.Floor != nil {
		pushOut(b, *w.Floor)
	}
	b.Pos.X = vmath.Clamp(b.Pos.X, b.Radius, w.Width-b.Radius)
}

func pushOut(b *core.Body, r vmath.Rect) {
	if b.Right() <= r.Left() || b.Left() >= r.Right() || b.Bottom() <= r.Top() || b.Top() >= r.Bottom() {
		return
	}
	up := b.Bottom() - r.Top()
	down := r.Bottom() - b.Top()
	left := b.Right() - r.Left()
	right := r.Right() - b.Left()

	switch min(up, down, left, right) {
	case up:
		b.Pos.Y -= up
	case down:
		b.Pos.Y += down
	case left:
		b.Pos.X -= left
	default:
		b.Pos.X += right
	}
}
