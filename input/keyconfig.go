package input

import (
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/borof-pani/toml"
)

// Rune aliases for keys that can't be bare single-char TOML keys
var runeAliases = map[string]rune{
	"space": ' ',
	"plus":  '+',
	"minus": '-',
	"equal": '=',
}

// keyNames lists the special keys a keymap may rebind
var keyNames = map[string]tcell.Key{
	"left":      tcell.KeyLeft,
	"right":     tcell.KeyRight,
	"up":        tcell.KeyUp,
	"down":      tcell.KeyDown,
	"enter":     tcell.KeyEnter,
	"tab":       tcell.KeyTab,
	"esc":       tcell.KeyEscape,
	"escape":    tcell.KeyEscape,
	"backspace": tcell.KeyBackspace2,
	"home":      tcell.KeyHome,
	"end":       tcell.KeyEnd,
	"pgup":      tcell.KeyPgUp,
	"pgdn":      tcell.KeyPgDn,
	"delete":    tcell.KeyDelete,
	"insert":    tcell.KeyInsert,
	"ctrl-c":    tcell.KeyCtrlC,
	"ctrl-q":    tcell.KeyCtrlQ,
}

// LoadKeyConfig parses TOML keymap data into a sparse override KeyTable
//
// Format:
//
//	[keys]
//	left = "p2_left"
//	[runes]
//	j = "p1_jump"
//	space = "none"
//
// Returns error on unknown action names, invalid key names, or parse failure
func LoadKeyConfig(data []byte) (*KeyTable, error) {
	raw, err := toml.NewParser(data).Parse()
	if err != nil {
		return nil, fmt.Errorf("keymap parse: %w", err)
	}

	kt := &KeyTable{}

	if section, ok := raw["keys"]; ok {
		m, ok := section.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("section [keys]: expected table, got %T", section)
		}
		kt.Keys = make(map[tcell.Key]Action, len(m))
		for name, val := range m {
			k, ok := keyNames[strings.ToLower(name)]
			if !ok {
				return nil, fmt.Errorf("[keys] unknown key name: %q", name)
			}
			a, err := actionValue("keys", name, val)
			if err != nil {
				return nil, err
			}
			kt.Keys[k] = a
		}
	}

	if section, ok := raw["runes"]; ok {
		m, ok := section.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("section [runes]: expected table, got %T", section)
		}
		kt.Runes = make(map[rune]Action, len(m))
		for name, val := range m {
			r, err := resolveRune(name)
			if err != nil {
				return nil, fmt.Errorf("[runes] key %q: %w", name, err)
			}
			a, err := actionValue("runes", name, val)
			if err != nil {
				return nil, err
			}
			kt.Runes[r] = a
		}
	}

	return kt, nil
}

func actionValue(section, key string, val any) (Action, error) {
	name, ok := val.(string)
	if !ok {
		return ActionNone, fmt.Errorf("[%s] key %q: value must be string, got %T", section, key, val)
	}
	a, err := resolveAction(name)
	if err != nil {
		return ActionNone, fmt.Errorf("[%s] key %q: %w", section, key, err)
	}
	return a, nil
}

// resolveRune converts a TOML key string to a rune
// Accepts single characters and named aliases
func resolveRune(s string) (rune, error) {
	if r, ok := runeAliases[strings.ToLower(s)]; ok {
		return r, nil
	}
	runes := []rune(s)
	if len(runes) == 1 {
		return runes[0], nil
	}
	return 0, fmt.Errorf("invalid rune key: %q (expected single character or alias)", s)
}

// MergeKeyTable returns a new KeyTable with base values overridden by non-nil override maps
// Override entries bound to "none" delete the key from the result
func MergeKeyTable(base, override *KeyTable) *KeyTable {
	result := base.Clone()
	if override == nil {
		return result
	}
	for k, a := range override.Keys {
		if a == ActionNone {
			delete(result.Keys, k)
		} else {
			result.Keys[k] = a
		}
	}
	for r, a := range override.Runes {
		if a == ActionNone {
			delete(result.Runes, r)
		} else {
			result.Runes[r] = a
		}
	}
	return result
}
