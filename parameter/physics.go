package parameter

// Per-frame physics constants, velocities are world units per frame at 60Hz

// Movement
const (
	// Gravity is added to vertical velocity every frame
	Gravity = 0.5

	// JumpImpulse replaces vertical velocity on jump (negative is up)
	JumpImpulse = -12.0

	// MaxJumps is the jump budget restored on grounding
	MaxJumps = 2

	MoveAccel    = 0.5
	MoveMaxSpeed = 6.0

	// BoostAccel and BoostMaxSpeed apply while a speed pickup is held
	BoostAccel    = 0.65
	BoostMaxSpeed = 8.0

	// ReleaseDamping is applied to horizontal velocity when no direction is held
	ReleaseDamping = 0.8

	// ReleaseSnap zeroes horizontal velocity below this magnitude
	ReleaseSnap = 0.1

	// ReboundSpeed is the horizontal velocity forced on side contact
	ReboundSpeed = 6.0
)

// Wall Stick
const (
	// WallStickDuration is the cling time in seconds
	WallStickDuration = 3.0

	// WallStickEntryDecay scales vertical velocity on first contact
	WallStickEntryDecay = 0.95

	// WallStickCling scales vertical velocity every frame while stuck
	WallStickCling = 0.5

	// WallStickSnap zeroes vertical velocity below this magnitude while stuck
	WallStickSnap = 0.5

	// WallStickRelease is the nudge away from the wall on timer expiry
	WallStickRelease = 1.0
)

// Body-Body Bounce
const (
	// BounceRestitution is deliberately above 1 for an exaggerated bounce
	BounceRestitution = 1.4
)

// Frame Timing
const (
	FrameRate = 60
	FrameDt   = 1.0 / FrameRate
)
