// Package pickup schedules transient pickups: randomized respawn, proximity consumption, round clearing
package pickup

import (
	"github.com/lixenwraith/borof-pani/core"
	"github.com/lixenwraith/borof-pani/parameter"
	"github.com/lixenwraith/borof-pani/vmath"
)

// Config bounds the respawn delay and sizes the trigger
type Config struct {
	Radius        float64
	Lift          float64 // offset above the platform surface
	SpawnDelayMin float64 // seconds
	SpawnDelayMax float64 // seconds
}

// DefaultConfig returns the stock pickup timing
func DefaultConfig() Config {
	return Config{
		Radius:        parameter.PickupRadius,
		Lift:          parameter.PickupLift,
		SpawnDelayMin: parameter.PickupSpawnDelayMin,
		SpawnDelayMax: parameter.PickupSpawnDelayMax,
	}
}

// Consumption records one body collecting one pickup
type Consumption struct {
	Kind core.PickupKind
	Body int
}

// Scheduler owns at most one pickup per kind
// Effects are not applied here; the caller acts on the returned consumptions
type Scheduler struct {
	cfg     Config
	rng     *vmath.FastRand
	pickups []core.Pickup
	spawned []core.PickupKind
}

// NewScheduler creates inactive pickups for the given kinds, duplicates are ignored
func NewScheduler(kinds []core.PickupKind, cfg Config, rng *vmath.FastRand) *Scheduler {
	s := &Scheduler{cfg: cfg, rng: rng}
	var seen [core.PickupKindCount]bool
	for _, k := range kinds {
		if k >= core.PickupKindCount || seen[k] {
			continue
		}
		seen[k] = true
		s.pickups = append(s.pickups, core.Pickup{Kind: k, Radius: cfg.Radius})
	}
	s.Clear()
	return s
}

// DrawDelay returns a fresh respawn delay in [SpawnDelayMin, SpawnDelayMax)
func (s *Scheduler) DrawDelay() float64 {
	return s.rng.FloatRange(s.cfg.SpawnDelayMin, s.cfg.SpawnDelayMax)
}

func (s *Scheduler) rearm(p *core.Pickup) {
	p.Active = false
	p.Elapsed = 0
	p.NextSpawn = s.DrawDelay()
}

// Clear force-deactivates every pickup, zeroes timers and redraws delays
func (s *Scheduler) Clear() {
	for i := range s.pickups {
		s.rearm(&s.pickups[i])
	}
	s.spawned = s.spawned[:0]
}

// Update advances timers, spawns due pickups and resolves consumption against the bodies
// Body order is the tie-break: the lowest index within range consumes first
func (s *Scheduler) Update(dt float64, platforms []core.Platform, bodies []core.Body) []Consumption {
	s.spawned = s.spawned[:0]
	var consumed []Consumption

	for i := range s.pickups {
		p := &s.pickups[i]

		if !p.Active {
			p.Elapsed += dt
			if p.Elapsed >= p.NextSpawn && len(platforms) > 0 {
				pl := &platforms[s.rng.Intn(len(platforms))]
				surface := pl.Surface()
				p.Pos = vmath.Vec2{X: surface.X, Y: surface.Y - s.cfg.Lift}
				p.Active = true
				p.Elapsed = 0
				p.NextSpawn = s.DrawDelay()
				s.spawned = append(s.spawned, p.Kind)
			}
			continue
		}

		for bi := range bodies {
			b := &bodies[bi]
			if vmath.Distance(b.Pos, p.Pos) < b.Radius+p.Radius {
				consumed = append(consumed, Consumption{Kind: p.Kind, Body: bi})
				s.rearm(p)
				break
			}
		}
	}
	return consumed
}

// Spawned returns the kinds activated by the last Update
func (s *Scheduler) Spawned() []core.PickupKind {
	return s.spawned
}

// Pickups exposes the live pickups for inspection, callers must not retain it
func (s *Scheduler) Pickups() []core.Pickup {
	return s.pickups
}

// Get returns the pickup of a kind
func (s *Scheduler) Get(kind core.PickupKind) (*core.Pickup, bool) {
	for i := range s.pickups {
		if s.pickups[i].Kind == kind {
			return &s.pickups[i], true
		}
	}
	return nil, false
}

// Snapshot copies the pickups into dst and returns it
func (s *Scheduler) Snapshot(dst []core.Pickup) []core.Pickup {
	return append(dst[:0], s.pickups...)
}
