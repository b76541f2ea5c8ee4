package render

import (
	"fmt"

	"github.com/lixenwraith/borof-pani/level"
	"github.com/lixenwraith/borof-pani/parameter"
)

// MenuView is what the main menu shows
type MenuView struct {
	Items    []string
	Selected int
	// Preview is the map the next match will load, nil hides the thumbnail
	Preview *level.Level
}

// DrawMenu composes the main menu
func (r *Renderer) DrawMenu(v MenuView) {
	r.begin()
	w, h := r.buf.Bounds()
	dim := StyleBackground.Foreground(RgbTextDim)

	r.buf.TextCentered(0, w, 1, "B O R O F · P A N I", StyleBackground.Foreground(RgbHunter).Bold(true))
	r.buf.TextCentered(0, w, 2, "two-player tag", dim)

	colW := parameter.PanelWidth / 2
	x0 := (w - colW) / 2
	y := 4
	for i, item := range v.Items {
		r.button(x0, x0+colW, y, item, i == v.Selected, HitMenuItem, i)
		y += 2
	}

	if v.Preview != nil && h-y >= parameter.PreviewHeight+4 {
		r.drawPreview(v.Preview, (w-parameter.PreviewWidth)/2, y)
		y += parameter.PreviewHeight + 2
	}

	r.buf.TextCentered(0, w, h-2, "P1: ← → ↑    P2: A D W", dim)
	r.buf.TextCentered(0, w, h-1, "Enter select · S settings · M map · Q quit", dim)
}

// drawPreview draws a map thumbnail in a box with its name as caption
func (r *Renderer) drawPreview(l *level.Level, x, y int) {
	pw, ph := parameter.PreviewWidth, parameter.PreviewHeight
	r.box(x, y, x+pw, y+ph, StyleBackground.Foreground(RgbTextDim))
	r.buf.TextCentered(x, x+pw, y, fmt.Sprintf(" Map: %s ", l.Name), StyleBackground)

	vp := FitViewport(x+1, y+1, pw-2, ph-2, l.Width, l.Height, true)
	if l.Floor != nil {
		r.drawRect(vp, *l.Floor, parameter.FloorChar, StyleBackground.Foreground(RgbFloor))
	}
	for i := range l.Platforms {
		r.drawRect(vp, l.Platforms[i].Rect, parameter.PlatformChar, StyleBackground.Foreground(RgbPlatform))
	}
}
