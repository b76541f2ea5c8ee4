package match

import (
	"testing"

	"github.com/google/uuid"

	"github.com/lixenwraith/borof-pani/core"
	"github.com/lixenwraith/borof-pani/event"
	"github.com/lixenwraith/borof-pani/input"
	"github.com/lixenwraith/borof-pani/parameter"
	"github.com/lixenwraith/borof-pani/pickup"
	"github.com/lixenwraith/borof-pani/vmath"
)

// quietConfig disables pickups so only the tested rule can end a round
func quietConfig() Config {
	cfg := DefaultConfig()
	cfg.PickupKinds = nil
	return cfg
}

// park places a body in open air above every platform
func park(b *core.Body, x float64) {
	b.ResetState()
	b.Pos = vmath.Vec2{X: x, Y: 30}
}

func hasEvent(events []event.GameEvent, t event.EventType, player int) bool {
	for _, ev := range events {
		if ev.Type == t && ev.Player == player {
			return true
		}
	}
	return false
}

// TestNewMatchInitialState verifies a fresh match is at round zero with resting bodies
func TestNewMatchInitialState(t *testing.T) {
	m := New(DefaultConfig(), 42)

	if m.ID == uuid.Nil {
		t.Error("Expected match ID to be set")
	}
	if m.Round != 0 || m.Scores != [2]int{} || m.Ended {
		t.Errorf("Expected round 0, zero scores, not ended; got round=%d scores=%v ended=%v", m.Round, m.Scores, m.Ended)
	}
	if m.Timer != parameter.RoundDuration {
		t.Errorf("Expected timer %f, got %f", parameter.RoundDuration, m.Timer)
	}
	if m.Hunter != 0 && m.Hunter != 1 {
		t.Errorf("Expected hunter 0 or 1, got %d", m.Hunter)
	}
	for i, b := range m.Bodies {
		if b.Vel != (vmath.Vec2{}) || b.Jumps != parameter.MaxJumps || b.Stick.Stuck {
			t.Errorf("Body %d not at rest: %+v", i, b)
		}
		if b.Pos.X-b.Radius <= 0 || b.Pos.X+b.Radius >= m.Level.Width {
			t.Errorf("Body %d spawned touching a wall at x=%f", i, b.Pos.X)
		}
	}
	for _, p := range m.Pickups.Pickups() {
		if p.Active {
			t.Errorf("Expected pickup %s inactive at start", p.Kind)
		}
	}
}

// TestRoundTimeUpScenario verifies the runner scores exactly once when the clock runs out
func TestRoundTimeUpScenario(t *testing.T) {
	cfg := quietConfig()
	cfg.Map = parameter.MapStaggered // floor keeps bodies in the world
	cfg.Mode = ModeBounce            // contact never scores
	m := New(cfg, 7)

	hunter := m.Hunter
	runner := 1 - hunter
	var in input.Frame

	for i := 0; i < 99; i++ {
		m.Advance(in, 0.25)
	}
	if m.Round != 0 || m.Scores != [2]int{} {
		t.Fatalf("Expected no round end before 25s, got round=%d scores=%v", m.Round, m.Scores)
	}

	m.Events.Consume()
	m.Advance(in, 0.25)

	if m.Scores[runner] != 1 || m.Scores[hunter] != 0 {
		t.Errorf("Expected runner P%d to score once, got scores=%v", runner+1, m.Scores)
	}
	if m.Round != 1 {
		t.Errorf("Expected round 1, got %d", m.Round)
	}
	if m.Timer != cfg.RoundDuration {
		t.Errorf("Expected timer reset to %f, got %f", cfg.RoundDuration, m.Timer)
	}
	if m.Hunter != runner {
		t.Errorf("Expected hunter to flip to P%d, got P%d", runner+1, m.Hunter+1)
	}

	events := m.Events.Consume()
	if !hasEvent(events, event.EventTimeUp, runner) || !hasEvent(events, event.EventRoundReset, runner) {
		t.Errorf("Expected time-up and round-reset events, got %+v", events)
	}
}

// TestRoundTimeUpAtFrameRate verifies the round ends on exactly the 25s frame at 60Hz
func TestRoundTimeUpAtFrameRate(t *testing.T) {
	cfg := quietConfig()
	cfg.Map = parameter.MapStaggered
	cfg.Mode = ModeBounce
	m := New(cfg, 7)

	runner := 1 - m.Hunter
	frames := int(parameter.RoundDuration * parameter.FrameRate)
	var in input.Frame

	for i := 0; i < frames-1; i++ {
		m.Advance(in, parameter.FrameDt)
	}
	if m.Round != 0 {
		t.Fatalf("Expected no round end before frame %d, got round=%d", frames, m.Round)
	}

	m.Advance(in, parameter.FrameDt)
	if m.Round != 1 {
		t.Fatalf("Expected round end on frame %d, timer=%g", frames, m.Timer)
	}
	if m.Scores[runner] != 1 {
		t.Errorf("Expected runner P%d to score, got scores=%v", runner+1, m.Scores)
	}
}

// TestFallOutScoresOtherBody verifies the body that stays in the world scores
func TestFallOutScoresOtherBody(t *testing.T) {
	m := New(quietConfig(), 3)
	m.Bodies[0].Pos.Y = m.Level.Height + 100

	m.Advance(input.Frame{}, parameter.FrameDt)

	if m.Scores != [2]int{0, 1} {
		t.Errorf("Expected scores [0 1], got %v", m.Scores)
	}
	if !hasEvent(m.Events.Consume(), event.EventFallOut, 0) {
		t.Error("Expected fall-out event for P1")
	}
	if m.Bodies[0].Pos.Y > m.Level.Height {
		t.Error("Expected fallen body to be respawned")
	}
}

// TestOneTransitionPerFrame verifies fall-out wins over time-up and body 0 is checked first
func TestOneTransitionPerFrame(t *testing.T) {
	m := New(quietConfig(), 5)
	m.Timer = parameter.FrameDt / 2
	m.Bodies[0].Pos.Y = m.Level.Height + 100
	m.Bodies[1].Pos.Y = m.Level.Height + 100

	m.Advance(input.Frame{}, parameter.FrameDt)

	if m.Round != 1 {
		t.Errorf("Expected exactly one round transition, got %d", m.Round)
	}
	if m.Scores != [2]int{0, 1} {
		t.Errorf("Expected P2 to score for P1 falling first, got %v", m.Scores)
	}
}

// TestCaptureRules verifies both capture attribution policies
func TestCaptureRules(t *testing.T) {
	tests := []struct {
		name   string
		rule   CaptureRule
		scorer func(hunter int) int
	}{
		{"hunter scores", CaptureScoresHunter, func(h int) int { return h }},
		{"runner scores", CaptureScoresRunner, func(h int) int { return 1 - h }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := quietConfig()
			cfg.Capture = tt.rule
			m := New(cfg, 11)

			park(&m.Bodies[0], 900)
			park(&m.Bodies[1], 910)
			hunter := m.Hunter
			want := tt.scorer(hunter)

			m.Advance(input.Frame{}, parameter.FrameDt)

			if m.Scores[want] != 1 || m.Scores[1-want] != 0 {
				t.Errorf("Expected P%d to score, got %v", want+1, m.Scores)
			}
			if m.Hunter != 1-hunter {
				t.Errorf("Expected hunter flip, got P%d", m.Hunter+1)
			}
			if !hasEvent(m.Events.Consume(), event.EventCapture, want) {
				t.Error("Expected capture event")
			}
		})
	}
}

// TestBounceModeSeparatesWithoutScoring verifies elastic contact replaces capture
func TestBounceModeSeparatesWithoutScoring(t *testing.T) {
	cfg := quietConfig()
	cfg.Mode = ModeBounce
	m := New(cfg, 13)

	park(&m.Bodies[0], 900)
	park(&m.Bodies[1], 910)
	m.Bodies[0].Vel.X = 3
	m.Bodies[1].Vel.X = -3

	m.Advance(input.Frame{}, parameter.FrameDt)

	if m.Scores != [2]int{} || m.Round != 0 {
		t.Errorf("Expected no scoring in bounce mode, got round=%d scores=%v", m.Round, m.Scores)
	}
	if m.Bodies[0].Vel.X >= 0 || m.Bodies[1].Vel.X <= 0 {
		t.Errorf("Expected bodies to rebound apart, got vx=%f,%f", m.Bodies[0].Vel.X, m.Bodies[1].Vel.X)
	}
	if !hasEvent(m.Events.Consume(), event.EventBounce, -1) {
		t.Error("Expected bounce event")
	}
}

// TestBounceAtWallStaysInWorld verifies a bounce beside a wall keeps both bodies inside
func TestBounceAtWallStaysInWorld(t *testing.T) {
	cfg := quietConfig()
	cfg.Mode = ModeBounce
	cfg.Physics.WallStick = false
	m := New(cfg, 13)

	r := m.Bodies[0].Radius
	park(&m.Bodies[0], r)
	park(&m.Bodies[1], r+5)

	m.Advance(input.Frame{}, parameter.FrameDt)

	if !hasEvent(m.Events.Consume(), event.EventBounce, -1) {
		t.Fatal("Expected bounce event")
	}
	for i := range m.Bodies {
		b := &m.Bodies[i]
		if b.Left() < 0 || b.Right() > m.Level.Width {
			t.Errorf("Body %d outside world: left=%f right=%f", i, b.Left(), b.Right())
		}
	}
}

// TestControlsDriveTheirBody verifies each binding set moves only its own body
func TestControlsDriveTheirBody(t *testing.T) {
	m := New(quietConfig(), 17)
	park(&m.Bodies[0], 900)
	park(&m.Bodies[1], 300)

	in := input.Frame{}.WithHeld(input.ActionP1Right).WithPressed(input.ActionP2Jump)
	m.Advance(in, parameter.FrameDt)

	if m.Bodies[0].Vel.X != parameter.MoveAccel {
		t.Errorf("Expected P1 vx=%f, got %f", parameter.MoveAccel, m.Bodies[0].Vel.X)
	}
	if m.Bodies[1].Vel.X != 0 {
		t.Errorf("Expected P2 vx=0, got %f", m.Bodies[1].Vel.X)
	}
	if m.Bodies[1].Jumps != parameter.MaxJumps-1 {
		t.Errorf("Expected P2 to spend a jump, got %d left", m.Bodies[1].Jumps)
	}
	if m.Bodies[0].Jumps != parameter.MaxJumps {
		t.Errorf("Expected P1 jumps untouched, got %d", m.Bodies[0].Jumps)
	}
}

// TestFrozenWhenEnded verifies a finished match no longer moves
func TestFrozenWhenEnded(t *testing.T) {
	m := New(DefaultConfig(), 19)
	m.Ended = true
	before := m.Snapshot()

	for i := 0; i < 10; i++ {
		m.Advance(input.Frame{}.WithHeld(input.ActionP1Left), parameter.FrameDt)
	}

	after := m.Snapshot()
	if after.Frame != before.Frame || after.Bodies != before.Bodies || after.Timer != before.Timer {
		t.Error("Expected ended match to stay frozen")
	}
	if after.Platforms[0] != before.Platforms[0] {
		t.Error("Expected platforms to stay frozen")
	}
}

// TestMatchTermination verifies ended flips exactly when the round limit or score cap is reached
func TestMatchTermination(t *testing.T) {
	for seed := uint64(1); seed <= 20; seed++ {
		m := New(quietConfig(), seed)
		rng := vmath.NewFastRand(seed * 31)

		for !m.Ended {
			if m.Round > m.Config.MaxRounds {
				t.Fatalf("seed %d: match ran past the round limit", seed)
			}
			m.endRound(rng.Intn(2))

			want := m.Round >= m.Config.MaxRounds ||
				m.Scores[0] > m.Config.ScoreCap || m.Scores[1] > m.Config.ScoreCap
			if m.Ended != want {
				t.Fatalf("seed %d: round=%d scores=%v expected ended=%v, got %v",
					seed, m.Round, m.Scores, want, m.Ended)
			}
		}
	}
}

// TestScoreCapEndsEarly verifies a whitewash ends once the cap is exceeded
func TestScoreCapEndsEarly(t *testing.T) {
	m := New(quietConfig(), 23)
	for i := 0; i < parameter.ScoreCap; i++ {
		m.endRound(0)
	}
	if m.Ended {
		t.Fatalf("Expected match running at %d points", m.Scores[0])
	}

	m.Events.Consume()
	m.endRound(0)
	if !m.Ended {
		t.Errorf("Expected match ended at %d points", m.Scores[0])
	}
	if m.Winner() != 0 {
		t.Errorf("Expected P1 winner, got %d", m.Winner())
	}
	if !hasEvent(m.Events.Consume(), event.EventMatchEnd, 0) {
		t.Error("Expected match-end event naming the winner")
	}
}

// TestResetRoundIdempotent verifies two resets leave the same clean state as one
func TestResetRoundIdempotent(t *testing.T) {
	m := New(DefaultConfig(), 29)
	for i := 0; i < 1200; i++ {
		m.Advance(input.Frame{}.WithHeld(input.ActionP1Left, input.ActionP2Right), parameter.FrameDt)
	}
	m.Bodies[0].Stick = core.WallStick{Stuck: true, Remaining: 1, Side: core.SideLeft}
	m.Bodies[1].Boost.Active = true

	check := func(label string) {
		for i, b := range m.Bodies {
			if b.Vel != (vmath.Vec2{}) || b.Jumps != parameter.MaxJumps || b.Stick.Stuck || b.Boost.Active {
				t.Errorf("%s: body %d not clean: %+v", label, i, b)
			}
		}
		for _, p := range m.Pickups.Pickups() {
			if p.Active || p.Elapsed != 0 {
				t.Errorf("%s: pickup %s not cleared: %+v", label, p.Kind, p)
			}
		}
	}

	m.ResetRound()
	check("first reset")
	m.ResetRound()
	check("second reset")
}

// TestPickupEffects verifies switch flips the hunter and speed boosts only the consumer
func TestPickupEffects(t *testing.T) {
	m := New(quietConfig(), 31)
	hunter := m.Hunter

	m.applyPickup(pickupConsumption(core.PickupSwitch, 0))
	if m.Hunter != 1-hunter {
		t.Errorf("Expected switch to flip hunter, got P%d", m.Hunter+1)
	}

	m.applyPickup(pickupConsumption(core.PickupSpeed, 1))
	if !m.Bodies[1].Boost.Active || m.Bodies[0].Boost.Active {
		t.Error("Expected boost on P2 only")
	}

	m.Bodies[1].Vel.X = parameter.BoostMaxSpeed
	m.applyPickup(pickupConsumption(core.PickupSpeed, 0))
	if !m.Bodies[0].Boost.Active || m.Bodies[1].Boost.Active {
		t.Error("Expected boost to transfer to P1")
	}
	if m.Bodies[1].Vel.X != parameter.MoveMaxSpeed {
		t.Errorf("Expected P2 speed capped to %f, got %f", parameter.MoveMaxSpeed, m.Bodies[1].Vel.X)
	}

	events := m.Events.Consume()
	if !hasEvent(events, event.EventPickupConsumed, 1) || !hasEvent(events, event.EventPickupConsumed, 0) {
		t.Errorf("Expected consumption events, got %+v", events)
	}
}

// TestRoundBoundaryClearsPickups verifies nothing carries across rounds
func TestRoundBoundaryClearsPickups(t *testing.T) {
	m := New(DefaultConfig(), 37)
	p, ok := m.Pickups.Get(core.PickupSpeed)
	if !ok {
		t.Fatal("Expected speed pickup to be scheduled")
	}
	p.Active = true
	m.Bodies[0].Boost.Active = true

	m.endRound(1)

	if p.Active {
		t.Error("Expected pickup cleared at round boundary")
	}
	if m.Bodies[0].Boost.Active {
		t.Error("Expected boost cleared at round boundary")
	}
}

// TestPickupSpawnEmitsEvent verifies a due pickup appears and is announced
func TestPickupSpawnEmitsEvent(t *testing.T) {
	cfg := DefaultConfig()
	cfg.PickupKinds = []core.PickupKind{core.PickupSwitch}
	m := New(cfg, 41)

	p, _ := m.Pickups.Get(core.PickupSwitch)
	p.Elapsed = p.NextSpawn

	// Keep both bodies far from any spawn point
	park(&m.Bodies[0], 100)
	park(&m.Bodies[1], 1800)
	m.Advance(input.Frame{}, 0)

	if !p.Active {
		t.Fatal("Expected pickup to activate")
	}
	found := false
	for _, ev := range m.Events.Consume() {
		if ev.Type == event.EventPickupSpawned && ev.Pickup == core.PickupSwitch {
			found = true
		}
	}
	if !found {
		t.Error("Expected pickup-spawned event")
	}
}

// TestResetStartsNewMatch verifies Reset clears scores and issues a new ID
func TestResetStartsNewMatch(t *testing.T) {
	m := New(quietConfig(), 43)
	oldID := m.ID
	m.endRound(0)
	m.Ended = true

	m.Reset()

	if m.ID == oldID {
		t.Error("Expected new match ID")
	}
	if m.Scores != [2]int{} || m.Round != 0 || m.Ended || m.Frame != 0 {
		t.Errorf("Expected fresh match, got round=%d scores=%v ended=%v", m.Round, m.Scores, m.Ended)
	}
}

// TestSnapshotIsCopy verifies renderers cannot mutate the simulation
func TestSnapshotIsCopy(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Map = parameter.MapStaggered
	m := New(cfg, 47)

	s := m.Snapshot()
	s.Platforms[0].Rect.X = -500
	s.Bodies[0].Pos.X = -500
	s.Floor.Y = -500

	if m.Level.Platforms[0].Rect.X == -500 || m.Bodies[0].Pos.X == -500 || m.Level.Floor.Y == -500 {
		t.Error("Expected snapshot mutations not to leak into the match")
	}
	if s.MapName != "Staggered" || s.Winner != -1 {
		t.Errorf("Expected staggered map and no winner, got %q winner=%d", s.MapName, s.Winner)
	}
}

// TestParseNames verifies CLI name parsing
func TestParseNames(t *testing.T) {
	if m, err := ParseMode("Bounce"); err != nil || m != ModeBounce {
		t.Errorf("Expected bounce, got %v (%v)", m, err)
	}
	if _, err := ParseMode("sumo"); err == nil {
		t.Error("Expected error for unknown mode")
	}
	if c, err := ParseCaptureRule("runner"); err != nil || c != CaptureScoresRunner {
		t.Errorf("Expected runner, got %v (%v)", c, err)
	}
	if _, err := ParseCaptureRule("nobody"); err == nil {
		t.Error("Expected error for unknown capture rule")
	}
}

func pickupConsumption(kind core.PickupKind, body int) pickup.Consumption {
	return pickup.Consumption{Kind: kind, Body: body}
}
