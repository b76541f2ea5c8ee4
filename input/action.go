// Package input turns terminal key and mouse events into per-frame queries of logical actions
package input

// Action is a logical input independent of the physical key
type Action uint8

const (
	ActionNone Action = iota

	// Player controls
	ActionP1Left
	ActionP1Right
	ActionP1Jump
	ActionP2Left
	ActionP2Right
	ActionP2Jump

	// Navigation
	ActionConfirm
	ActionBack
	ActionNext
	ActionQuit
	ActionSettings

	// Settings screen
	ActionToggleMap
	ActionToggleFullscreen
	ActionResetDefaults
	ActionVolumeUp
	ActionVolumeDown

	actionCount
)

func (a Action) String() string {
	if a >= actionCount {
		return "unknown"
	}
	return actionNames[a]
}

// Bindings names the three actions that drive one body
type Bindings struct {
	Left, Right, Jump Action
}

// PlayerBindings is the fixed action set per body index
var PlayerBindings = [2]Bindings{
	{Left: ActionP1Left, Right: ActionP1Right, Jump: ActionP1Jump},
	{Left: ActionP2Left, Right: ActionP2Right, Jump: ActionP2Jump},
}
