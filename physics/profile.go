package physics

import "github.com/lixenwraith/borof-pani/parameter"

// Tuning holds the per-frame movement constants a body is integrated with
// Profiles are plain values so tests can vary one knob at a time
type Tuning struct {
	Gravity        float64
	JumpImpulse    float64
	MaxJumps       int
	Accel          float64
	MaxSpeed       float64
	BoostAccel     float64
	BoostMaxSpeed  float64
	ReleaseDamping float64
	ReleaseSnap    float64
	ReboundSpeed   float64

	// WallStick enables the cling state on world walls
	WallStick         bool
	WallStickDuration float64
	WallStickEntry    float64
	WallStickCling    float64
	WallStickSnap     float64
	WallStickRelease  float64
}

// DefaultTuning returns the stock movement profile
func DefaultTuning() Tuning {
	return Tuning{
		Gravity:           parameter.Gravity,
		JumpImpulse:       parameter.JumpImpulse,
		MaxJumps:          parameter.MaxJumps,
		Accel:             parameter.MoveAccel,
		MaxSpeed:          parameter.MoveMaxSpeed,
		BoostAccel:        parameter.BoostAccel,
		BoostMaxSpeed:     parameter.BoostMaxSpeed,
		ReleaseDamping:    parameter.ReleaseDamping,
		ReleaseSnap:       parameter.ReleaseSnap,
		ReboundSpeed:      parameter.ReboundSpeed,
		WallStick:         true,
		WallStickDuration: parameter.WallStickDuration,
		WallStickEntry:    parameter.WallStickEntryDecay,
		WallStickCling:    parameter.WallStickCling,
		WallStickSnap:     parameter.WallStickSnap,
		WallStickRelease:  parameter.WallStickRelease,
	}
}
