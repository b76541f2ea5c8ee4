package input

import (
	"fmt"
	"strings"
)

// actionNames maps actions to canonical names used in keymap files and logs
var actionNames = [actionCount]string{
	ActionNone:             "none",
	ActionP1Left:           "p1_left",
	ActionP1Right:          "p1_right",
	ActionP1Jump:           "p1_jump",
	ActionP2Left:           "p2_left",
	ActionP2Right:          "p2_right",
	ActionP2Jump:           "p2_jump",
	ActionConfirm:          "confirm",
	ActionBack:             "back",
	ActionNext:             "next",
	ActionQuit:             "quit",
	ActionSettings:         "settings",
	ActionToggleMap:        "toggle_map",
	ActionToggleFullscreen: "toggle_fullscreen",
	ActionResetDefaults:    "reset_defaults",
	ActionVolumeUp:         "volume_up",
	ActionVolumeDown:       "volume_down",
}

// actionRegistry resolves keymap action strings
// "none" resolves to ActionNone, the unbind sentinel
var actionRegistry map[string]Action

func init() {
	actionRegistry = make(map[string]Action, actionCount)
	for a, name := range actionNames {
		actionRegistry[name] = Action(a)
	}
}

// ActionByName returns the action registered under name
func ActionByName(name string) (Action, bool) {
	a, ok := actionRegistry[name]
	return a, ok
}

// resolveAction converts a keymap action string to an Action
func resolveAction(name string) (Action, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	a, ok := ActionByName(name)
	if !ok {
		return ActionNone, fmt.Errorf("unknown action: %q", name)
	}
	return a, nil
}
