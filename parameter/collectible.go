package parameter

// Pickups
const (
	// PickupRadius is the trigger radius of every pickup kind
	PickupRadius = 14.0

	// PickupLift is how far above the platform surface a pickup appears
	PickupLift = 20.0

	// PickupSpawnDelayMin and PickupSpawnDelayMax bound the respawn delay in seconds
	PickupSpawnDelayMin = 10.0
	PickupSpawnDelayMax = 15.0
)
