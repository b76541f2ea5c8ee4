package parameter

// Sprite extents the collision radius is derived from
const (
	SpriteWidth  = 16.0
	SpriteHeight = 16.0
	SpriteScale  = 3.0

	// SpriteRadiusFactor maps the smaller scaled sprite side to a radius
	SpriteRadiusFactor = 0.4
)

// Spawn placement
const (
	// SpawnAttempts bounds retries when two spawns would overlap
	SpawnAttempts = 8
)

// Players
const (
	PlayerCount = 2
)
