package input

import "github.com/gdamore/tcell/v2"

// KeyTable maps terminal keys to actions
type KeyTable struct {
	// Special keys (arrows, Enter, Esc, Ctrl+*)
	Keys map[tcell.Key]Action

	// Printable runes, matched case-insensitively for letters
	Runes map[rune]Action
}

// DefaultKeyTable returns the default key bindings
// Arrows drive the first body, A/D/W the second
func DefaultKeyTable() *KeyTable {
	return &KeyTable{
		Keys: map[tcell.Key]Action{
			tcell.KeyLeft:       ActionP1Left,
			tcell.KeyRight:      ActionP1Right,
			tcell.KeyUp:         ActionP1Jump,
			tcell.KeyDown:       ActionNext,
			tcell.KeyTab:        ActionNext,
			tcell.KeyEnter:      ActionConfirm,
			tcell.KeyEscape:     ActionBack,
			tcell.KeyBackspace:  ActionBack,
			tcell.KeyBackspace2: ActionBack,
			tcell.KeyCtrlC:      ActionQuit,
		},
		Runes: map[rune]Action{
			'a': ActionP2Left,
			'd': ActionP2Right,
			'w': ActionP2Jump,
			'q': ActionQuit,
			's': ActionSettings,
			'm': ActionToggleMap,
			'f': ActionToggleFullscreen,
			'r': ActionResetDefaults,
			'+': ActionVolumeUp,
			'=': ActionVolumeUp,
			'-': ActionVolumeDown,
			' ': ActionConfirm,
		},
	}
}

// Clone returns a deep copy
func (kt *KeyTable) Clone() *KeyTable {
	c := &KeyTable{
		Keys:  make(map[tcell.Key]Action, len(kt.Keys)),
		Runes: make(map[rune]Action, len(kt.Runes)),
	}
	for k, v := range kt.Keys {
		c.Keys[k] = v
	}
	for r, v := range kt.Runes {
		c.Runes[r] = v
	}
	return c
}

// Lookup resolves a key event to its bound action
func (kt *KeyTable) Lookup(key tcell.Key, r rune) (Action, bool) {
	if key == tcell.KeyRune {
		if a, ok := kt.Runes[r]; ok {
			return a, true
		}
		if r >= 'A' && r <= 'Z' {
			a, ok := kt.Runes[r+('a'-'A')]
			return a, ok
		}
		return ActionNone, false
	}
	a, ok := kt.Keys[key]
	return a, ok
}
