package event

import "github.com/lixenwraith/borof-pani/core"

// EventType represents the type of game event
type EventType int

const (
	// EventRoundReset signals a round boundary after scoring
	// Trigger: fall-out, time-up or capture | Consumer: audio, log
	EventRoundReset EventType = iota

	// EventFallOut signals a body dropped below the world
	// Player: the body that fell
	EventFallOut

	// EventTimeUp signals the round timer expired
	EventTimeUp

	// EventCapture signals the two bodies touched in tag mode
	// Player: the scorer
	EventCapture

	// EventBounce signals an elastic body-body contact in bounce mode
	EventBounce

	// EventMatchEnd signals the round or score cap was reached
	EventMatchEnd

	// EventPickupSpawned signals a pickup activated
	// Pickup: the kind
	EventPickupSpawned

	// EventPickupConsumed signals a body collected a pickup
	// Player: the consumer | Pickup: the kind
	EventPickupConsumed

	// EventWallStick signals a body started clinging to a wall
	// Player: the body
	EventWallStick

	// EventSelection signals a menu or settings interaction
	// Trigger: presentation layer only
	EventSelection

	eventTypeCount
)

var eventNames = [eventTypeCount]string{
	EventRoundReset:     "round-reset",
	EventFallOut:        "fall-out",
	EventTimeUp:         "time-up",
	EventCapture:        "capture",
	EventBounce:         "bounce",
	EventMatchEnd:       "match-end",
	EventPickupSpawned:  "pickup-spawned",
	EventPickupConsumed: "pickup-consumed",
	EventWallStick:      "wall-stick",
	EventSelection:      "selection",
}

func (t EventType) String() string {
	if t < 0 || t >= eventTypeCount {
		return "unknown"
	}
	return eventNames[t]
}

// GameEvent is a discrete, fire-and-forget notification from the simulation
type GameEvent struct {
	Type   EventType
	Player int // -1 when not tied to a body
	Pickup core.PickupKind
	Frame  int64
}

// Sink receives events; implementations must not block
type Sink interface {
	Emit(ev GameEvent)
}

// SinkFunc adapts a function to Sink
type SinkFunc func(ev GameEvent)

func (f SinkFunc) Emit(ev GameEvent) { f(ev) }
