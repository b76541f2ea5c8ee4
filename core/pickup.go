package core

import "github.com/lixenwraith/borof-pani/vmath"

// PickupKind identifies a pickup effect
type PickupKind uint8

const (
	// PickupSwitch flips the hunter
	PickupSwitch PickupKind = iota
	// PickupSpeed raises the consumer's max speed and acceleration for the round
	PickupSpeed
	PickupKindCount
)

func (k PickupKind) String() string {
	switch k {
	case PickupSwitch:
		return "switch"
	case PickupSpeed:
		return "speed"
	default:
		return "unknown"
	}
}

// Pickup is a position-anchored, radius-triggered token with randomized respawn
type Pickup struct {
	Kind      PickupKind
	Pos       vmath.Vec2
	Active    bool
	Radius    float64
	Elapsed   float64 // seconds since last consume/spawn, advances while inactive
	NextSpawn float64 // seconds of inactivity before the next activation
}
