package input

import (
	"time"

	"github.com/gdamore/tcell/v2"
)

// Tracker accumulates terminal events between ticks and samples them into Frames
//
// Terminals report key presses and auto-repeat but never releases, so an
// action counts as held until its last event is older than the hold window.
// An event arriving later than the repeat gap after the previous one is a new press
type Tracker struct {
	keys   *KeyTable
	window time.Duration
	repeat time.Duration

	lastSeen [actionCount]time.Time
	pending  [actionCount]bool
	fresh    [actionCount]bool

	pointerX, pointerY int
	buttonDown         bool
	clicked            bool
}

// NewTracker creates a tracker over the key table, nil selects the defaults
// window is the hold time after the last event, repeat the longest auto-repeat interval
func NewTracker(keys *KeyTable, window, repeat time.Duration) *Tracker {
	if keys == nil {
		keys = DefaultKeyTable()
	}
	return &Tracker{keys: keys, window: window, repeat: repeat}
}

// HandleEvent records a terminal event
// Returns the action a key event resolved to
func (t *Tracker) HandleEvent(ev tcell.Event, now time.Time) (Action, bool) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		a, ok := t.keys.Lookup(ev.Key(), ev.Rune())
		if !ok || a == ActionNone {
			return ActionNone, false
		}
		t.Trigger(a, now)
		return a, true

	case *tcell.EventMouse:
		x, y := ev.Position()
		t.Mouse(x, y, ev.Buttons()&tcell.Button1 != 0)
	}
	return ActionNone, false
}

// Trigger records one occurrence of an action
func (t *Tracker) Trigger(a Action, now time.Time) {
	if a == ActionNone || a >= actionCount {
		return
	}
	if last := t.lastSeen[a]; last.IsZero() || now.Sub(last) > t.repeat {
		t.fresh[a] = true
	}
	t.lastSeen[a] = now
	t.pending[a] = true
}

// Mouse records the pointer position and primary button state
func (t *Tracker) Mouse(x, y int, down bool) {
	t.pointerX, t.pointerY = x, y
	if down && !t.buttonDown {
		t.clicked = true
	}
	t.buttonDown = down
}

// Frame samples the current state and clears per-tick edges
func (t *Tracker) Frame(now time.Time) Frame {
	var f Frame
	for a := Action(1); a < actionCount; a++ {
		held := t.pending[a]
		if !held && !t.lastSeen[a].IsZero() {
			held = now.Sub(t.lastSeen[a]) < t.window
		}
		f.held[a] = held
		f.pressed[a] = t.fresh[a]
		t.pending[a] = false
		t.fresh[a] = false
	}

	f.pointerX, f.pointerY = t.pointerX, t.pointerY
	f.click = t.clicked
	f.clickHeld = t.buttonDown
	t.clicked = false
	return f
}

// Reset forgets all key and button state, used on screen transitions
func (t *Tracker) Reset() {
	t.lastSeen = [actionCount]time.Time{}
	t.pending = [actionCount]bool{}
	t.fresh = [actionCount]bool{}
	t.buttonDown = false
	t.clicked = false
}
