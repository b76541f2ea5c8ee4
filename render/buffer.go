package render

import (
	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

// Cell is one terminal position: a rune and its style
type Cell struct {
	Rune  rune
	Style tcell.Style
}

// Buffer is an off-screen cell grid flushed to the terminal once per frame
type Buffer struct {
	cells  []Cell
	width  int
	height int
	blank  Cell
}

// NewBuffer creates a buffer with the specified dimensions
func NewBuffer(width, height int) *Buffer {
	b := &Buffer{blank: Cell{Rune: ' ', Style: StyleBackground}}
	b.Resize(width, height)
	return b
}

// Resize adjusts buffer dimensions, reallocates only if capacity insufficient
func (b *Buffer) Resize(width, height int) {
	width, height = max(width, 0), max(height, 0)
	size := width * height
	if cap(b.cells) < size {
		b.cells = make([]Cell, size)
	} else {
		b.cells = b.cells[:size]
	}
	b.width = width
	b.height = height
	b.Clear()
}

// Clear resets all cells to blank using exponential copy
func (b *Buffer) Clear() {
	if len(b.cells) == 0 {
		return
	}
	b.cells[0] = b.blank
	for filled := 1; filled < len(b.cells); filled *= 2 {
		copy(b.cells[filled:], b.cells[:filled])
	}
}

// Bounds returns the buffer dimensions
func (b *Buffer) Bounds() (int, int) {
	return b.width, b.height
}

func (b *Buffer) inBounds(x, y int) bool {
	return x >= 0 && x < b.width && y >= 0 && y < b.height
}

// Set writes a cell, out-of-bounds writes are dropped
func (b *Buffer) Set(x, y int, r rune, style tcell.Style) {
	if !b.inBounds(x, y) {
		return
	}
	b.cells[y*b.width+x] = Cell{Rune: r, Style: style}
}

// Get returns the cell at x,y, or a blank cell outside the buffer
func (b *Buffer) Get(x, y int) Cell {
	if !b.inBounds(x, y) {
		return b.blank
	}
	return b.cells[y*b.width+x]
}

// Fill paints the half-open cell rectangle [x0,x1)×[y0,y1)
func (b *Buffer) Fill(x0, y0, x1, y1 int, r rune, style tcell.Style) {
	x0, y0 = max(x0, 0), max(y0, 0)
	x1, y1 = min(x1, b.width), min(y1, b.height)
	for y := y0; y < y1; y++ {
		row := b.cells[y*b.width : (y+1)*b.width]
		for x := x0; x < x1; x++ {
			row[x] = Cell{Rune: r, Style: style}
		}
	}
}

// Text writes s starting at x,y and returns the number of columns used
// Wide runes occupy two cells; the second is left as a zero rune
func (b *Buffer) Text(x, y int, s string, style tcell.Style) int {
	col := x
	for _, r := range s {
		w := runewidth.RuneWidth(r)
		if w == 0 {
			continue
		}
		b.Set(col, y, r, style)
		if w == 2 {
			b.Set(col+1, y, 0, style)
		}
		col += w
	}
	return col - x
}

// TextCentered writes s centered on the row between x0 and x1
func (b *Buffer) TextCentered(x0, x1, y int, s string, style tcell.Style) int {
	x := x0 + (x1-x0-runewidth.StringWidth(s))/2
	b.Text(x, y, s, style)
	return x
}

// Row returns the runes of a row as a string, for inspection
func (b *Buffer) Row(y int) string {
	if y < 0 || y >= b.height {
		return ""
	}
	rs := make([]rune, 0, b.width)
	for _, c := range b.cells[y*b.width : (y+1)*b.width] {
		if c.Rune != 0 {
			rs = append(rs, c.Rune)
		}
	}
	return string(rs)
}

// Flush writes the buffer to the screen; callers invoke screen.Show
func (b *Buffer) Flush(screen tcell.Screen) {
	for y := 0; y < b.height; y++ {
		for x := 0; x < b.width; x++ {
			c := b.cells[y*b.width+x]
			if c.Rune == 0 {
				continue
			}
			screen.SetContent(x, y, c.Rune, nil, c.Style)
		}
	}
}
