package level

import "github.com/lixenwraith/borof-pani/core"

// Advance moves a platform one frame and reflects it off the horizontal bounds
// Returns true if the direction flipped
// The rect is clamped to [0, worldWidth] so no overshoot survives the call
func Advance(p *core.Platform, worldWidth float64) bool {
	p.Rect.X += p.Speed * float64(p.Dir)
	if p.Rect.X < 0 {
		p.Rect.X = 0
		p.Dir = 1
		return true
	}
	if p.Rect.X+p.Rect.Width > worldWidth {
		p.Rect.X = worldWidth - p.Rect.Width
		p.Dir = -1
		return true
	}
	return false
}

// AdvanceAll advances every platform in place
func AdvanceAll(platforms []core.Platform, worldWidth float64) {
	for i := range platforms {
		Advance(&platforms[i], worldWidth)
	}
}
