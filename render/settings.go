package render

import (
	"fmt"
	"math"
	"strings"

	"github.com/lixenwraith/borof-pani/parameter"
)

// SettingsRow indexes the rows of the settings screen
type SettingsRow int

const (
	SettingsVolume SettingsRow = iota
	SettingsFullscreen
	SettingsMap
	SettingsReset
	SettingsBack
	SettingsRowCount
)

var settingsLabels = [SettingsRowCount]string{
	SettingsVolume:     "Volume",
	SettingsFullscreen: "Fullscreen",
	SettingsMap:        "Map",
	SettingsReset:      "Reset defaults",
	SettingsBack:       "Back",
}

func (s SettingsRow) String() string {
	if s < 0 || s >= SettingsRowCount {
		return "unknown"
	}
	return settingsLabels[s]
}

// SettingsView is what the settings screen shows
type SettingsView struct {
	Volume     float64
	Fullscreen bool
	MapName    string
	Selected   SettingsRow
}

// volumeBar renders the slider with n cells
func volumeBar(volume float64, n int) string {
	filled := max(0, min(int(math.Round(volume*float64(n))), n))
	return strings.Repeat("█", filled) + strings.Repeat("░", n-filled)
}

// DrawSettings composes the settings screen
func (r *Renderer) DrawSettings(v SettingsView) {
	r.begin()
	w, h := r.buf.Bounds()
	dim := StyleBackground.Foreground(RgbTextDim)

	r.buf.TextCentered(0, w, 1, "SETTINGS", StyleBackground.Foreground(RgbHunter).Bold(true))

	labelW := 16
	rowW := labelW + parameter.VolumeBarWidth + 6
	x0 := max((w-rowW)/2, 0)
	x1 := x0 + rowW

	for row := SettingsVolume; row < SettingsRowCount; row++ {
		y := 4 + 2*int(row)
		selected := row == v.Selected
		style := StyleBackground
		if selected {
			style = StyleBackground.Background(RgbSelectedBg).Foreground(RgbSelectedFg).Bold(true)
			r.buf.Fill(x0, y, x1, y+1, ' ', style)
		}
		r.addHit(x0, y, x1, y+1, HitSettingsRow, int(row))

		switch row {
		case SettingsVolume:
			r.buf.Text(x0+1, y, row.String(), style)
			bx := x0 + labelW
			r.buf.Text(bx, y, volumeBar(v.Volume, parameter.VolumeBarWidth), style.Foreground(RgbPlatform))
			r.buf.Text(bx+parameter.VolumeBarWidth+1, y, fmt.Sprintf("%3d%%", int(math.Round(v.Volume*100))), style)
			r.addHit(bx, y, bx+parameter.VolumeBarWidth, y+1, HitVolumeBar, int(row))
		case SettingsFullscreen:
			r.buf.Text(x0+1, y, row.String(), style)
			box := "[ ]"
			if v.Fullscreen {
				box = "[x]"
			}
			r.buf.Text(x0+labelW, y, box, style)
		case SettingsMap:
			r.buf.Text(x0+1, y, row.String(), style)
			r.buf.Text(x0+labelW, y, fmt.Sprintf("< %s >", v.MapName), style)
		default:
			r.buf.TextCentered(x0, x1, y, row.String(), style)
		}
	}

	r.buf.TextCentered(0, w, h-2, "↑ ↓ Tab move · ← → adjust · Enter toggle", dim)
	r.buf.TextCentered(0, w, h-1, "+ - volume · R reset · Esc back", dim)
}
