// Package match owns one two-player tag match: bodies, platforms, pickups, rounds and scores
package match

import (
	"log"

	"github.com/google/uuid"

	"github.com/lixenwraith/borof-pani/core"
	"github.com/lixenwraith/borof-pani/event"
	"github.com/lixenwraith/borof-pani/input"
	"github.com/lixenwraith/borof-pani/level"
	"github.com/lixenwraith/borof-pani/parameter"
	"github.com/lixenwraith/borof-pani/physics"
	"github.com/lixenwraith/borof-pani/pickup"
	"github.com/lixenwraith/borof-pani/vmath"
)

// Match is the simulation context
// Single-owner: Advance, ResetRound, Reset and Snapshot run on the loop goroutine
type Match struct {
	ID     uuid.UUID
	Config Config

	Bodies  [parameter.PlayerCount]core.Body
	Level   *level.Level
	Pickups *pickup.Scheduler

	Scores [parameter.PlayerCount]int
	Timer  float64 // seconds left in the round
	Round  int     // completed rounds
	Hunter int     // body index
	Ended  bool
	Frame  int64

	Events *event.EventQueue

	rng   *vmath.FastRand
	world physics.World
}

// New creates a match and starts it
func New(cfg Config, seed uint64) *Match {
	m := &Match{
		Config: cfg,
		Events: event.NewEventQueue(),
		rng:    vmath.NewFastRand(seed),
	}
	for i := range m.Bodies {
		m.Bodies[i] = core.NewBody()
	}
	m.Reset()
	return m
}

// Reset starts a new match on the configured map
func (m *Match) Reset() {
	m.ID = uuid.New()
	m.Level = level.Build(m.Config.Map, m.rng)
	m.world = physics.World{
		Width:     m.Level.Width,
		Platforms: m.Level.Platforms,
		Floor:     m.Level.Floor,
	}
	m.Pickups = pickup.NewScheduler(m.Config.PickupKinds, m.Config.Pickups, m.rng)

	m.Scores = [parameter.PlayerCount]int{}
	m.Round = 0
	m.Timer = m.Config.RoundDuration
	m.Hunter = m.rng.Intn(parameter.PlayerCount)
	m.Ended = false
	m.Frame = 0

	m.ResetRound()
	log.Printf("Match %s started: map=%s mode=%s capture=%s hunter=P%d",
		m.ID, m.Level.Name, m.Config.Mode, m.Config.Capture, m.Hunter+1)
}

// ResetRound respawns both bodies at rest on random platforms and clears pickups
// Spawns are retried a bounded number of times so the bodies do not start overlapping
func (m *Match) ResetRound() {
	for i := range m.Bodies {
		b := &m.Bodies[i]
		b.ResetState()
		b.Pos = m.Level.SpawnPoint(b.Radius, m.rng)

		for attempt := 0; attempt < parameter.SpawnAttempts && m.overlapsEarlier(i); attempt++ {
			b.Pos = m.Level.SpawnPoint(b.Radius, m.rng)
		}
	}
	m.Pickups.Clear()
}

func (m *Match) overlapsEarlier(i int) bool {
	for j := 0; j < i; j++ {
		if physics.Overlapping(&m.Bodies[i], &m.Bodies[j]) {
			return true
		}
	}
	return false
}

// Advance steps the simulation by one frame
// Order: platforms, per-body controls/gravity/collision/walls, bounce, pickups, round checks
// A finished match is frozen
func (m *Match) Advance(in input.Frame, dt float64) {
	if m.Ended {
		return
	}
	m.Frame++

	level.AdvanceAll(m.Level.Platforms, m.Level.Width)

	for i := range m.Bodies {
		c := physics.StepBody(&m.Bodies[i], controlFor(in, i), &m.world, dt, &m.Config.Physics)
		if c.StuckNow {
			m.emit(event.EventWallStick, i, 0)
		}
	}

	if m.Config.Mode == ModeBounce {
		if physics.ResolveBounce(&m.Bodies[0], &m.Bodies[1], m.Config.Restitution) {
			for i := range m.Bodies {
				physics.Contain(&m.Bodies[i], &m.world)
			}
			m.emit(event.EventBounce, -1, 0)
		}
	}

	consumed := m.Pickups.Update(dt, m.Level.Platforms, m.Bodies[:])
	for _, kind := range m.Pickups.Spawned() {
		m.emit(event.EventPickupSpawned, -1, kind)
	}
	for _, c := range consumed {
		m.applyPickup(c)
	}

	m.Timer -= dt
	m.checkRound()
}

func controlFor(in input.Frame, body int) physics.Control {
	b := input.PlayerBindings[body]
	return physics.Control{
		Left:  in.Held(b.Left),
		Right: in.Held(b.Right),
		Jump:  in.Pressed(b.Jump),
	}
}

// applyPickup acts on a consumption: switch flips the hunter, speed boosts the consumer only
func (m *Match) applyPickup(c pickup.Consumption) {
	switch c.Kind {
	case core.PickupSwitch:
		m.Hunter = 1 - m.Hunter
	case core.PickupSpeed:
		for i := range m.Bodies {
			m.Bodies[i].Boost.Active = i == c.Body
			physics.CapSpeed(&m.Bodies[i], &m.Config.Physics)
		}
	}
	m.emit(event.EventPickupConsumed, c.Body, c.Kind)
}

func (m *Match) emit(t event.EventType, player int, kind core.PickupKind) {
	m.Events.Push(event.GameEvent{Type: t, Player: player, Pickup: kind, Frame: m.Frame})
}
