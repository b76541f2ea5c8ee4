package app

// Screen is the presentation state
// Menu → Settings → Menu, Menu → Playing → Ended → Menu
type Screen uint8

const (
	ScreenMenu Screen = iota
	ScreenSettings
	ScreenPlaying
	ScreenEnded
)

func (s Screen) String() string {
	switch s {
	case ScreenMenu:
		return "menu"
	case ScreenSettings:
		return "settings"
	case ScreenPlaying:
		return "playing"
	case ScreenEnded:
		return "ended"
	default:
		return "unknown"
	}
}

// MenuItem indexes the main menu entries
type MenuItem int

const (
	MenuStart MenuItem = iota
	MenuSettings
	MenuQuit
	menuItemCount
)

var menuLabels = [menuItemCount]string{
	MenuStart:    "Start",
	MenuSettings: "Settings",
	MenuQuit:     "Quit",
}
