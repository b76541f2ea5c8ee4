package render

import (
	"math"

	"github.com/lixenwraith/borof-pani/parameter"
	"github.com/lixenwraith/borof-pani/vmath"
)

// Viewport maps world coordinates onto a rectangle of terminal cells
type Viewport struct {
	X, Y       int
	Cols, Rows int
	WorldW     float64
	WorldH     float64
}

// FitViewport places the world into the given cell area
// With stretch the world fills the area; otherwise its aspect is kept and the field is centered
func FitViewport(x, y, cols, rows int, worldW, worldH float64, stretch bool) Viewport {
	v := Viewport{X: x, Y: y, Cols: max(cols, 1), Rows: max(rows, 1), WorldW: worldW, WorldH: worldH}
	if stretch || worldW <= 0 || worldH <= 0 {
		return v
	}

	want := int(float64(v.Rows)*parameter.CellAspect*worldW/worldH + 0.5)
	if want <= v.Cols {
		v.X += (v.Cols - max(want, 1)) / 2
		v.Cols = max(want, 1)
	} else {
		fit := int(float64(v.Cols)*worldH/(worldW*parameter.CellAspect) + 0.5)
		v.Y += (v.Rows - max(fit, 1)) / 2
		v.Rows = max(fit, 1)
	}
	return v
}

func (v Viewport) col(x float64) int {
	if v.WorldW <= 0 {
		return 0
	}
	return int(math.Floor(x / v.WorldW * float64(v.Cols)))
}

func (v Viewport) row(y float64) int {
	if v.WorldH <= 0 {
		return 0
	}
	return int(math.Floor(y / v.WorldH * float64(v.Rows)))
}

// Cell converts a world point to screen cell coordinates
func (v Viewport) Cell(p vmath.Vec2) (int, int) {
	return v.X + v.col(p.X), v.Y + v.row(p.Y)
}

// Contains reports whether a screen cell lies inside the viewport
func (v Viewport) Contains(cx, cy int) bool {
	return cx >= v.X && cx < v.X+v.Cols && cy >= v.Y && cy < v.Y+v.Rows
}

// Span returns the half-open cell range covered by r, at least one cell in each axis
func (v Viewport) Span(r vmath.Rect) (x0, y0, x1, y1 int) {
	x0 = v.X + v.col(r.Left())
	y0 = v.Y + v.row(r.Top())
	x1 = v.X + int(math.Ceil(r.Right()/v.WorldW*float64(v.Cols)))
	y1 = v.Y + int(math.Ceil(r.Bottom()/v.WorldH*float64(v.Rows)))
	if x1 <= x0 {
		x1 = x0 + 1
	}
	if y1 <= y0 {
		y1 = y0 + 1
	}
	// Clip to the viewport
	x0, y0 = max(x0, v.X), max(y0, v.Y)
	x1, y1 = min(x1, v.X+v.Cols), min(y1, v.Y+v.Rows)
	return
}
