package input

// Frame is the input state sampled once per simulation tick
// Held reports a sustained action, Pressed only its first frame
type Frame struct {
	held    [actionCount]bool
	pressed [actionCount]bool

	pointerX, pointerY int
	click              bool
	clickHeld          bool
}

// Held reports whether the action is active this frame
func (f Frame) Held(a Action) bool {
	return a < actionCount && f.held[a]
}

// Pressed reports whether the action became active this frame
func (f Frame) Pressed(a Action) bool {
	return a < actionCount && f.pressed[a]
}

// Pointer returns the last mouse position in screen cells
func (f Frame) Pointer() (x, y int) {
	return f.pointerX, f.pointerY
}

// Click reports a primary button press edge this frame
func (f Frame) Click() bool { return f.click }

// ClickHeld reports the primary button is down
func (f Frame) ClickHeld() bool { return f.clickHeld }

// WithHeld returns a copy with the actions held
func (f Frame) WithHeld(actions ...Action) Frame {
	for _, a := range actions {
		if a < actionCount {
			f.held[a] = true
		}
	}
	return f
}

// WithPressed returns a copy with the actions pressed, which implies held
func (f Frame) WithPressed(actions ...Action) Frame {
	for _, a := range actions {
		if a < actionCount {
			f.held[a] = true
			f.pressed[a] = true
		}
	}
	return f
}

// WithPointer returns a copy with the given mouse state
func (f Frame) WithPointer(x, y int, click, held bool) Frame {
	f.pointerX, f.pointerY = x, y
	f.click = click
	f.clickHeld = held
	return f
}
