package parameter

// Layout & Margins
const (
	// TopMargin for the HUD line (scores, round, timer, hunter)
	TopMargin = 1

	// BottomMargin for the wall-stick bars and key help
	BottomMargin = 1

	// CellAspect is the height of a terminal cell in widths, used to letterbox the field
	CellAspect = 2.0

	// MinFieldCols and MinFieldRows keep the field drawable on tiny terminals
	MinFieldCols = 20
	MinFieldRows = 6
)

// HUD
const (
	// StickBarWidth is the cell width of each wall-stick countdown bar
	StickBarWidth = 10

	// StickBarChar and StickBarEmptyChar draw the filled and drained bar segments
	StickBarChar      = '█'
	StickBarEmptyChar = '░'
)

// Glyphs
const (
	BodyChar         = '●'
	HunterChar       = '◉'
	BoostTrailChar   = '»'
	PlatformChar     = '▀'
	FloorChar        = '▓'
	PickupSwitchChar = '⇄'
	PickupSpeedChar  = '✦'
)

// Panels & Screens
const (
	// PanelWidth is the width of the game over panel and menu column
	PanelWidth = 34

	// VolumeBarWidth is the cell width of the settings volume slider
	VolumeBarWidth = 24

	// PreviewWidth and PreviewHeight size the map thumbnail on the menu screen
	PreviewWidth  = 38
	PreviewHeight = 10
)
