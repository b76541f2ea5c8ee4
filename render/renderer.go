// Package render draws the menu, settings and game screens with tcell
package render

import (
	"github.com/gdamore/tcell/v2"
)

// Renderer draws screens into a Buffer and flushes it to the terminal
type Renderer struct {
	screen  tcell.Screen
	buf     *Buffer
	hits    []hitBox
	stretch bool
}

// NewRenderer creates a renderer for the screen
// A nil screen gives an 80x24 off-screen renderer
func NewRenderer(screen tcell.Screen) *Renderer {
	w, h := 80, 24
	if screen != nil {
		w, h = screen.Size()
	}
	return &Renderer{screen: screen, buf: NewBuffer(w, h)}
}

// Buffer exposes the frame being composed
func (r *Renderer) Buffer() *Buffer {
	return r.buf
}

// SetStretch selects whether the game field fills the terminal or keeps the world aspect
func (r *Renderer) SetStretch(stretch bool) {
	r.stretch = stretch
}

// Resize matches the buffer to the current screen size
func (r *Renderer) Resize() {
	if r.screen == nil {
		return
	}
	w, h := r.screen.Size()
	if bw, bh := r.buf.Bounds(); bw != w || bh != h {
		r.buf.Resize(w, h)
	}
}

// begin starts a new frame
func (r *Renderer) begin() {
	r.Resize()
	r.buf.Clear()
	r.hits = r.hits[:0]
}

// Show flushes the composed frame to the terminal
func (r *Renderer) Show() {
	if r.screen == nil {
		return
	}
	r.buf.Flush(r.screen)
	r.screen.Show()
}

// box draws a filled panel with a single-line border
func (r *Renderer) box(x0, y0, x1, y1 int, style tcell.Style) {
	r.buf.Fill(x0, y0, x1, y1, ' ', style)
	for x := x0 + 1; x < x1-1; x++ {
		r.buf.Set(x, y0, '─', style)
		r.buf.Set(x, y1-1, '─', style)
	}
	for y := y0 + 1; y < y1-1; y++ {
		r.buf.Set(x0, y, '│', style)
		r.buf.Set(x1-1, y, '│', style)
	}
	r.buf.Set(x0, y0, '┌', style)
	r.buf.Set(x1-1, y0, '┐', style)
	r.buf.Set(x0, y1-1, '└', style)
	r.buf.Set(x1-1, y1-1, '┘', style)
}

// button draws a centered label, highlighted when selected, and registers its hit box
func (r *Renderer) button(x0, x1, y int, label string, selected bool, kind HitKind, index int) {
	style := StyleBackground
	if selected {
		style = StyleBackground.Background(RgbSelectedBg).Foreground(RgbSelectedFg).Bold(true)
		r.buf.Fill(x0, y, x1, y+1, ' ', style)
	}
	r.buf.TextCentered(x0, x1, y, label, style)
	r.addHit(x0, y, x1, y+1, kind, index)
}
