package audio

import (
	"errors"
)

// SoundType identifies a synthesized cue
type SoundType int

const (
	SoundSelection SoundType = iota // Menu and settings interaction
	SoundPickup                     // Pickup consumed
	SoundSpawn                      // Pickup appeared
	SoundCapture                    // Tag landed
	SoundFall                       // Body fell out of the world
	SoundTimeUp                     // Round clock expired
	SoundMatchEnd                   // Match over
	SoundBounce                     // Elastic body contact
	SoundWallStick                  // Body grabbed a wall
	soundTypeCount
)

var soundNames = [soundTypeCount]string{
	SoundSelection: "selection",
	SoundPickup:    "pickup",
	SoundSpawn:     "spawn",
	SoundCapture:   "capture",
	SoundFall:      "fall",
	SoundTimeUp:    "timeup",
	SoundMatchEnd:  "matchend",
	SoundBounce:    "bounce",
	SoundWallStick: "wallstick",
}

func (s SoundType) String() string {
	if s < 0 || s >= soundTypeCount {
		return "unknown"
	}
	return soundNames[s]
}

// Sentinel errors
var (
	ErrAudioDisabled = errors.New("audio disabled by configuration")
)
