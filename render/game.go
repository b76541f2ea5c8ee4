package render

import (
	"fmt"
	"math"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"github.com/lixenwraith/borof-pani/core"
	"github.com/lixenwraith/borof-pani/match"
	"github.com/lixenwraith/borof-pani/parameter"
	"github.com/lixenwraith/borof-pani/vmath"
)

// TimerSeconds is the whole-second countdown shown in the HUD
func TimerSeconds(t float64) int {
	return max(int(math.Ceil(t)), 0)
}

// FieldViewport returns where the world is drawn for the current screen size
func (r *Renderer) FieldViewport(worldW, worldH float64) Viewport {
	w, h := r.buf.Bounds()
	rows := max(h-parameter.TopMargin-parameter.BottomMargin, parameter.MinFieldRows)
	return FitViewport(0, parameter.TopMargin, max(w, parameter.MinFieldCols), rows, worldW, worldH, r.stretch)
}

// DrawMatch composes the game screen from a snapshot
func (r *Renderer) DrawMatch(s *match.Snapshot) {
	r.begin()
	w, h := r.buf.Bounds()
	vp := r.FieldViewport(s.Width, s.Height)

	r.drawWalls(vp)
	if s.Floor != nil {
		r.drawRect(vp, *s.Floor, parameter.FloorChar, StyleBackground.Foreground(RgbFloor))
	}
	platformStyle := StyleBackground.Foreground(RgbPlatform)
	for i := range s.Platforms {
		r.drawRect(vp, s.Platforms[i].Rect, parameter.PlatformChar, platformStyle)
	}
	for i := range s.Pickups {
		r.drawPickup(vp, &s.Pickups[i])
	}
	for i := range s.Bodies {
		r.drawBody(vp, &s.Bodies[i], i, i == s.Hunter)
	}

	r.drawHUD(s, w)
	r.drawStickBars(s, w, h-1)

	if s.Ended {
		r.drawGameOver(s, vp)
	}
}

// drawWalls marks the world's side walls when the field is letterboxed
func (r *Renderer) drawWalls(vp Viewport) {
	style := StyleBackground.Foreground(RgbTextDim)
	for y := vp.Y; y < vp.Y+vp.Rows; y++ {
		if vp.X > 0 {
			r.buf.Set(vp.X-1, y, '│', style)
		}
		r.buf.Set(vp.X+vp.Cols, y, '│', style)
	}
}

func (r *Renderer) drawRect(vp Viewport, rect vmath.Rect, ch rune, style tcell.Style) {
	x0, y0, x1, y1 := vp.Span(rect)
	r.buf.Fill(x0, y0, x1, y1, ch, style)
}

func (r *Renderer) drawPickup(vp Viewport, p *core.Pickup) {
	if !p.Active {
		return
	}
	cx, cy := vp.Cell(p.Pos)
	if !vp.Contains(cx, cy) {
		return
	}
	ch := parameter.PickupSwitchChar
	if p.Kind == core.PickupSpeed {
		ch = parameter.PickupSpeedChar
	}
	r.buf.Set(cx, cy, ch, GetStyleForPickup(p.Kind))
}

func (r *Renderer) drawBody(vp Viewport, b *core.Body, i int, hunter bool) {
	cx, cy := vp.Cell(b.Pos)
	if !vp.Contains(cx, cy) {
		return
	}
	style := StyleBackground.Foreground(GetPlayerColor(i)).Bold(true)

	if b.Boost.Active {
		tx := cx - 1
		if !b.FacingRight {
			tx = cx + 1
		}
		if vp.Contains(tx, cy) {
			r.buf.Set(tx, cy, parameter.BoostTrailChar, StyleBackground.Foreground(RgbPickupSpeed))
		}
	}

	ch := parameter.BodyChar
	if hunter {
		ch = parameter.HunterChar
		style = style.Background(RgbHunter)
	}
	r.buf.Set(cx, cy, ch, style)
}

// drawHUD writes scores, round, timer, hunter and map on the top line
func (r *Renderer) drawHUD(s *match.Snapshot, w int) {
	dim := StyleBackground.Foreground(RgbTextDim)

	x := 1
	x += r.buf.Text(x, 0, fmt.Sprintf("P1 %d", s.Scores[0]), StyleBackground.Foreground(RgbPlayer1).Bold(true))
	x += r.buf.Text(x, 0, " : ", dim)
	x += r.buf.Text(x, 0, fmt.Sprintf("%d P2", s.Scores[1]), StyleBackground.Foreground(RgbPlayer2).Bold(true))
	x += 3

	round := min(s.Round+1, s.MaxRounds)
	x += r.buf.Text(x, 0, fmt.Sprintf("Round %d/%d", round, s.MaxRounds), StyleBackground)
	x += 3

	timerStyle := StyleBackground.Foreground(GetTimerColor(s.Timer, parameter.RoundDuration))
	r.buf.Text(x, 0, fmt.Sprintf("Time %d", TimerSeconds(s.Timer)), timerStyle)

	right := fmt.Sprintf("%s · %s", s.MapName, s.Mode)
	rx := w - 1 - runewidth.StringWidth(right)
	r.buf.Text(rx, 0, right, dim)

	hunter := fmt.Sprintf("Hunter P%d", s.Hunter+1)
	hx := rx - 3 - runewidth.StringWidth(hunter)
	r.buf.Text(hx, 0, hunter, StyleBackground.Foreground(RgbHunter).Bold(true))
}

// stickBar renders a countdown bar of n cells filled by fraction
func stickBar(fraction float64, n int) (string, int) {
	filled := 0
	if fraction > 0 {
		filled = min(int(math.Ceil(fraction*float64(n))), n)
	}
	return strings.Repeat(string(parameter.StickBarChar), filled) +
		strings.Repeat(string(parameter.StickBarEmptyChar), n-filled), filled
}

// drawStickBars shows each body's remaining wall-stick time on the bottom line
func (r *Renderer) drawStickBars(s *match.Snapshot, w, y int) {
	const label = "P1 "
	barW := parameter.StickBarWidth
	positions := [parameter.PlayerCount]int{1, w - 1 - len(label) - barW}

	for i := range s.Bodies {
		b := &s.Bodies[i]
		x := positions[i]
		x += r.buf.Text(x, y, fmt.Sprintf("P%d ", i+1), StyleBackground.Foreground(GetPlayerColor(i)))

		fraction := 0.0
		if b.Stick.Stuck && s.WallStickDuration > 0 {
			fraction = b.Stick.Remaining / s.WallStickDuration
		}
		bar, filled := stickBar(fraction, barW)
		fill := StyleBackground.Foreground(GetStickBarColor(fraction))
		empty := StyleBackground.Foreground(RgbBarEmpty)
		for j, ch := range []rune(bar) {
			if j < filled {
				r.buf.Set(x+j, y, ch, fill)
			} else {
				r.buf.Set(x+j, y, ch, empty)
			}
		}
	}

	help := "←→↑ P1 · A D W P2 · Esc menu"
	left := positions[0] + len(label) + barW + 2
	if runewidth.StringWidth(help) <= positions[1]-left-2 {
		r.buf.TextCentered(left, positions[1], y, help, StyleBackground.Foreground(RgbTextDim))
	}
}

// ResultText describes the final outcome of a match
func ResultText(s *match.Snapshot) string {
	if s.Winner < 0 {
		return "Draw"
	}
	return fmt.Sprintf("P%d wins", s.Winner+1)
}

// drawGameOver overlays the result panel centered on the field
func (r *Renderer) drawGameOver(s *match.Snapshot, vp Viewport) {
	const height = 9
	width := parameter.PanelWidth
	x0 := vp.X + (vp.Cols-width)/2
	y0 := vp.Y + (vp.Rows-height)/2
	x1, y1 := x0+width, y0+height

	panel := StyleBackground.Background(RgbPanelBg)
	r.box(x0, y0, x1, y1, panel)

	r.buf.TextCentered(x0, x1, y0+1, "GAME OVER", panel.Foreground(RgbHunter).Bold(true))
	r.buf.TextCentered(x0, x1, y0+3, ResultText(s), panel.Bold(true))
	r.buf.TextCentered(x0, x1, y0+4, fmt.Sprintf("%d : %d", s.Scores[0], s.Scores[1]), panel)
	r.button(x0+2, x1-2, y0+6, "Back to menu", true, HitBackToMenu, 0)
	r.buf.TextCentered(x0, x1, y0+7, "Enter or click", panel.Foreground(RgbTextDim))
}
