package render

import (
	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/lixenwraith/borof-pani/core"
)

// RGB color definitions
var (
	RgbBackground = tcell.NewRGBColor(26, 27, 38)    // Tokyo Night background
	RgbText       = tcell.NewRGBColor(192, 202, 245) // Foreground
	RgbTextDim    = tcell.NewRGBColor(86, 95, 137)   // Comments gray
	RgbPanelBg    = tcell.NewRGBColor(36, 40, 59)    // Raised panel
	RgbSelectedBg = tcell.NewRGBColor(122, 162, 247) // Selection highlight
	RgbSelectedFg = tcell.NewRGBColor(26, 27, 38)    // Text on highlight

	RgbPlatform = tcell.NewRGBColor(158, 206, 106) // Green
	RgbFloor    = tcell.NewRGBColor(115, 122, 162) // Slate

	RgbPlayer1 = tcell.NewRGBColor(125, 207, 255) // Cyan
	RgbPlayer2 = tcell.NewRGBColor(255, 158, 100) // Orange
	RgbHunter  = tcell.NewRGBColor(247, 118, 142) // Red marker

	RgbPickupSwitch = tcell.NewRGBColor(187, 154, 247) // Purple
	RgbPickupSpeed  = tcell.NewRGBColor(224, 175, 104) // Yellow

	RgbBarEmpty = tcell.NewRGBColor(65, 72, 104) // Unfilled bar segments
)

// StyleBackground is the base style every cell starts from
var StyleBackground = tcell.StyleDefault.Background(RgbBackground).Foreground(RgbText)

// Wall-stick bar gradient endpoints
var (
	stickBarFull  = colorful.Color{R: 158.0 / 255, G: 206.0 / 255, B: 106.0 / 255}
	stickBarEmpty = colorful.Color{R: 247.0 / 255, G: 118.0 / 255, B: 142.0 / 255}
)

// GetStickBarColor returns the bar color for the remaining cling fraction
// Full bars are green and blend through HCL toward red as the cling expires
func GetStickBarColor(fraction float64) tcell.Color {
	fraction = max(0, min(fraction, 1))
	return fromColorful(stickBarEmpty.BlendHcl(stickBarFull, fraction).Clamped())
}

// GetTimerColor returns the countdown color, turning red over the last quarter of the round
func GetTimerColor(remaining, total float64) tcell.Color {
	if total <= 0 {
		return RgbText
	}
	progress := remaining / total
	if progress >= 0.25 {
		return RgbText
	}
	text := toColorful(RgbText)
	return fromColorful(toColorful(RgbHunter).BlendRgb(text, max(progress, 0)*4))
}

// GetPlayerColor returns the body color for a player index
func GetPlayerColor(i int) tcell.Color {
	if i == 1 {
		return RgbPlayer2
	}
	return RgbPlayer1
}

// GetStyleForPickup returns the style for a pickup kind
func GetStyleForPickup(kind core.PickupKind) tcell.Style {
	switch kind {
	case core.PickupSwitch:
		return StyleBackground.Foreground(RgbPickupSwitch).Bold(true)
	case core.PickupSpeed:
		return StyleBackground.Foreground(RgbPickupSpeed).Bold(true)
	}
	return StyleBackground
}

func toColorful(c tcell.Color) colorful.Color {
	r, g, b := c.RGB()
	return colorful.Color{R: float64(r) / 255, G: float64(g) / 255, B: float64(b) / 255}
}

func fromColorful(c colorful.Color) tcell.Color {
	r, g, b := c.RGB255()
	return tcell.NewRGBColor(int32(r), int32(g), int32(b))
}
