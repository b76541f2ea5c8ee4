// Package level builds platform layouts and moves platforms each frame
package level

import (
	"math"

	"github.com/lixenwraith/borof-pani/core"
	"github.com/lixenwraith/borof-pani/parameter"
	"github.com/lixenwraith/borof-pani/vmath"
)

// Level is the static description of a loaded map plus its mutable platforms
type Level struct {
	Index     int
	Name      string
	Width     float64
	Height    float64
	Platforms []core.Platform
	// Floor is nil on maps where falling out of the world is possible
	Floor *vmath.Rect
}

// Name returns the display name of a map index
func Name(index int) string {
	switch index {
	case parameter.MapStaggered:
		return "Staggered"
	default:
		return "Random"
	}
}

// Build creates the layout for a map index, unknown indices fall back to the random map
func Build(index int, rng *vmath.FastRand) *Level {
	l := &Level{
		Width:  parameter.WorldWidth,
		Height: parameter.WorldHeight,
	}
	switch index {
	case parameter.MapStaggered:
		l.Index = parameter.MapStaggered
		l.Platforms = staggered(l.Width, l.Height)
		l.Floor = &vmath.Rect{
			X:      0,
			Y:      l.Height - parameter.FloorHeight,
			Width:  l.Width,
			Height: parameter.FloorHeight,
		}
	default:
		l.Index = parameter.MapRandom
		l.Platforms = random(l.Width, l.Height, rng)
	}
	l.Name = Name(l.Index)
	return l
}

func alternate(i int) int {
	if i%2 == 0 {
		return 1
	}
	return -1
}

func random(w, h float64, rng *vmath.FastRand) []core.Platform {
	platforms := make([]core.Platform, parameter.PlatformCount)
	for i := range platforms {
		pw := float64(rng.IntRange(parameter.RandomMapMinWidth, parameter.RandomMapMaxWidth))
		x := float64(rng.IntRange(0, int(w-pw)))
		platforms[i] = core.Platform{
			Rect: vmath.Rect{
				X:      x,
				Y:      h - parameter.RandomMapBaseOffset - float64(i)*parameter.PlatformRowGap,
				Width:  pw,
				Height: parameter.PlatformHeight,
			},
			Speed: parameter.RandomMapSpeed,
			Dir:   alternate(i),
		}
	}
	return platforms
}

func staggered(w, h float64) []core.Platform {
	platforms := make([]core.Platform, parameter.PlatformCount)
	for i := range platforms {
		pw := math.Max(parameter.StaggeredMapWidth-float64(i)*parameter.StaggeredMapWidthStep, parameter.StaggeredMapMinWidth)
		x := parameter.StaggeredMapMargin
		if i%2 != 0 {
			x = w - parameter.StaggeredMapMargin - pw
		}
		platforms[i] = core.Platform{
			Rect: vmath.Rect{
				X:      x,
				Y:      h - parameter.StaggeredMapBaseOffset - float64(i)*parameter.PlatformRowGap,
				Width:  pw,
				Height: parameter.PlatformHeight,
			},
			Speed: parameter.StaggeredMapSpeed + float64(i%3)*parameter.StaggeredMapSpeedStep,
			Dir:   alternate(i),
		}
	}
	return platforms
}

// SpawnPoint picks a random resting position for a body of radius r on a random platform
// The x coordinate is kept inside the world so a fresh spawn never starts on a wall
func (l *Level) SpawnPoint(r float64, rng *vmath.FastRand) vmath.Vec2 {
	if len(l.Platforms) == 0 {
		return vmath.Vec2{X: l.Width * 0.5, Y: r}
	}
	p := &l.Platforms[rng.Intn(len(l.Platforms))]
	x := p.Rect.X + rng.FloatRange(1, math.Max(p.Rect.Width, 1))
	x = vmath.Clamp(x, r+1, l.Width-r-1)
	return vmath.Vec2{X: x, Y: p.Rect.Y - r}
}
