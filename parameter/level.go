package parameter

// World Dimensions
const (
	// WorldWidth and WorldHeight are the simulation extents in world units
	WorldWidth  = 1900.0
	WorldHeight = 1020.0

	// FloorHeight is the thickness of the static floor on maps that have one
	FloorHeight = 40.0
)

// Platform Layout
const (
	PlatformCount  = 10
	PlatformHeight = 18.0
	PlatformRowGap = 85.0

	// Random map: wide platforms drawn per row
	RandomMapBaseOffset = 120.0
	RandomMapMinWidth   = 700
	RandomMapMaxWidth   = 1000
	RandomMapSpeed      = 0.6

	// Staggered map: narrowing platforms hugging alternate walls
	StaggeredMapBaseOffset = 140.0
	StaggeredMapWidth      = 420.0
	StaggeredMapWidthStep  = 22.0
	StaggeredMapMinWidth   = 140.0
	StaggeredMapMargin     = 50.0
	StaggeredMapSpeed      = 0.5
	StaggeredMapSpeedStep  = 0.13
)

// Map indices selectable from settings
const (
	MapRandom = iota
	MapStaggered
	MapCount
)
