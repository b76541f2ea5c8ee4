package vmath

// Rect is an axis-aligned rectangle, origin at top-left, Y grows downward
type Rect struct {
	X, Y, Width, Height float64
}

func (r Rect) Left() float64   { return r.X }
func (r Rect) Right() float64  { return r.X + r.Width }
func (r Rect) Top() float64    { return r.Y }
func (r Rect) Bottom() float64 { return r.Y + r.Height }

// Center returns the midpoint of the rectangle
func (r Rect) Center() Vec2 {
	return Vec2{r.X + r.Width*0.5, r.Y + r.Height*0.5}
}

// Contains checks if point lies within rect, edges inclusive
func (r Rect) Contains(p Vec2) bool {
	return p.X >= r.X && p.X <= r.Right() && p.Y >= r.Y && p.Y <= r.Bottom()
}

// SpanOverlap reports whether open intervals (aMin, aMax) and (bMin, bMax) intersect
func SpanOverlap(aMin, aMax, bMin, bMax float64) bool {
	return aMax > bMin && aMin < bMax
}

// OverlapsX reports horizontal span overlap with [minX, maxX]
func (r Rect) OverlapsX(minX, maxX float64) bool {
	return SpanOverlap(minX, maxX, r.X, r.Right())
}

// OverlapsY reports vertical span overlap with [minY, maxY]
func (r Rect) OverlapsY(minY, maxY float64) bool {
	return SpanOverlap(minY, maxY, r.Y, r.Bottom())
}

// Intersects reports whether two rectangles overlap with positive area
func (r Rect) Intersects(o Rect) bool {
	return r.OverlapsX(o.X, o.Right()) && r.OverlapsY(o.Y, o.Bottom())
}
