package render

// HitKind identifies a clickable control
type HitKind uint8

const (
	HitNone HitKind = iota
	HitMenuItem
	HitSettingsRow
	HitVolumeBar
	HitBackToMenu
)

// Hit is the control under a pointer position
// Fraction is the horizontal position inside the control in [0,1], used by sliders
type Hit struct {
	Kind     HitKind
	Index    int
	Fraction float64
}

type hitBox struct {
	x0, y0, x1, y1 int
	kind           HitKind
	index          int
}

func (r *Renderer) addHit(x0, y0, x1, y1 int, kind HitKind, index int) {
	r.hits = append(r.hits, hitBox{x0: x0, y0: y0, x1: x1, y1: y1, kind: kind, index: index})
}

// HitTest returns the topmost control under a cell in the last drawn frame
func (r *Renderer) HitTest(x, y int) Hit {
	for i := len(r.hits) - 1; i >= 0; i-- {
		h := r.hits[i]
		if x < h.x0 || x >= h.x1 || y < h.y0 || y >= h.y1 {
			continue
		}
		hit := Hit{Kind: h.kind, Index: h.index}
		if span := h.x1 - h.x0 - 1; span > 0 {
			hit.Fraction = float64(x-h.x0) / float64(span)
		}
		return hit
	}
	return Hit{}
}
