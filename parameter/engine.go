package parameter

import "time"

// Game Loop Timing
const (
	// FrameUpdateInterval is the loop tick (~60 FPS)
	FrameUpdateInterval = 16 * time.Millisecond

	// MaxFrameDt caps simulated seconds per tick after a stall (resize, suspend)
	MaxFrameDt = 0.1

	// EventChannelSize buffers terminal events between the poller and the loop
	EventChannelSize = 100
)

// Event Queue
const (
	// EventQueueSize is the fixed capacity of the event ring buffer
	EventQueueSize = 64

	// EventBufferMask is the bitmask for fast modulo operations (64 - 1)
	EventBufferMask = 63
)

// Input
const (
	// KeyHoldWindow is how long a key counts as held after its last terminal event
	// Terminals report presses and auto-repeat only, never releases
	KeyHoldWindow = 180 * time.Millisecond

	// KeyRepeatGap is the longest auto-repeat interval; a longer gap between
	// events of one key is a separate press
	KeyRepeatGap = 60 * time.Millisecond
)
