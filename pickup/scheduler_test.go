package pickup

import (
	"testing"

	"github.com/lixenwraith/borof-pani/core"
	"github.com/lixenwraith/borof-pani/vmath"
)

func testPlatforms() []core.Platform {
	return []core.Platform{{Rect: vmath.Rect{X: 100, Y: 600, Width: 400, Height: 18}}}
}

func bodyAt(x, y float64) core.Body {
	b := core.NewBody()
	b.Pos = vmath.Vec2{X: x, Y: y}
	return b
}

func newTestScheduler(seed uint64) *Scheduler {
	return NewScheduler([]core.PickupKind{core.PickupSwitch, core.PickupSpeed}, DefaultConfig(), vmath.NewFastRand(seed))
}

// TestSpawnWhenDelayElapsed verifies a due pickup activates and rearms its timer
func TestSpawnWhenDelayElapsed(t *testing.T) {
	s := newTestScheduler(9)
	cfg := DefaultConfig()

	p, ok := s.Get(core.PickupSwitch)
	if !ok {
		t.Fatal("Expected switch pickup")
	}
	p.NextSpawn = 8.0
	p.Elapsed = 8.0

	far := []core.Body{bodyAt(1800, 100), bodyAt(1700, 100)}
	consumed := s.Update(1.0/60, testPlatforms(), far)

	if len(consumed) != 0 {
		t.Errorf("Unexpected consumption: %+v", consumed)
	}
	if !p.Active {
		t.Fatal("Expected pickup active")
	}
	if p.Elapsed != 0 {
		t.Errorf("Expected timer reset to 0, got %f", p.Elapsed)
	}
	if p.NextSpawn < cfg.SpawnDelayMin || p.NextSpawn > cfg.SpawnDelayMax {
		t.Errorf("Expected delay in [%f,%f], got %f", cfg.SpawnDelayMin, cfg.SpawnDelayMax, p.NextSpawn)
	}
	want := vmath.Vec2{X: 300, Y: 600 - cfg.Lift}
	if p.Pos != want {
		t.Errorf("Expected spawn at %+v, got %+v", want, p.Pos)
	}
	if got := s.Spawned(); len(got) != 1 || got[0] != core.PickupSwitch {
		t.Errorf("Expected switch reported as spawned, got %v", got)
	}
}

// TestNoSpawnBeforeDelay verifies the countdown accumulates while inactive
func TestNoSpawnBeforeDelay(t *testing.T) {
	s := newTestScheduler(2)
	p, _ := s.Get(core.PickupSpeed)
	p.NextSpawn = 10

	for i := 0; i < 9; i++ {
		s.Update(1, testPlatforms(), nil)
	}
	if p.Active {
		t.Fatal("Pickup activated early")
	}
	if p.Elapsed != 9 {
		t.Errorf("Expected elapsed=9, got %f", p.Elapsed)
	}

	s.Update(1, testPlatforms(), nil)
	if !p.Active {
		t.Error("Expected activation at elapsed=10")
	}
}

// TestConsumeFirstBodyWins verifies proximity consumption order and rearm
func TestConsumeFirstBodyWins(t *testing.T) {
	s := newTestScheduler(4)
	p, _ := s.Get(core.PickupSpeed)
	p.Active = true
	p.Pos = vmath.Vec2{X: 500, Y: 500}

	bodies := []core.Body{bodyAt(510, 500), bodyAt(495, 500)}
	consumed := s.Update(1.0/60, testPlatforms(), bodies)

	if len(consumed) != 1 {
		t.Fatalf("Expected 1 consumption, got %d", len(consumed))
	}
	if consumed[0].Body != 0 || consumed[0].Kind != core.PickupSpeed {
		t.Errorf("Expected body 0 to consume speed, got %+v", consumed[0])
	}
	if p.Active || p.Elapsed != 0 {
		t.Errorf("Expected pickup rearmed, got active=%v elapsed=%f", p.Active, p.Elapsed)
	}
}

// TestOutOfRangeNotConsumed verifies the trigger uses body radius plus pickup radius
func TestOutOfRangeNotConsumed(t *testing.T) {
	s := newTestScheduler(4)
	p, _ := s.Get(core.PickupSwitch)
	p.Active = true
	p.Pos = vmath.Vec2{X: 500, Y: 500}

	b := bodyAt(0, 500)
	b.Pos.X = 500 + b.Radius + p.Radius + 0.01
	consumed := s.Update(1.0/60, testPlatforms(), []core.Body{b})

	if len(consumed) != 0 || !p.Active {
		t.Error("Pickup just beyond the combined radius must not be consumed")
	}
}

// TestClearIdempotent verifies clearing twice leaves every pickup inactive with zero timers
func TestClearIdempotent(t *testing.T) {
	s := newTestScheduler(8)
	cfg := DefaultConfig()
	for i := range s.Pickups() {
		s.Pickups()[i].Active = true
		s.Pickups()[i].Elapsed = 3
	}

	s.Clear()
	s.Clear()

	for _, p := range s.Pickups() {
		if p.Active || p.Elapsed != 0 {
			t.Errorf("Expected cleared pickup, got %+v", p)
		}
		if p.NextSpawn < cfg.SpawnDelayMin || p.NextSpawn > cfg.SpawnDelayMax {
			t.Errorf("Delay out of range: %f", p.NextSpawn)
		}
	}
}

// TestDuplicateKindsIgnored verifies at most one pickup per kind
func TestDuplicateKindsIgnored(t *testing.T) {
	s := NewScheduler([]core.PickupKind{core.PickupSwitch, core.PickupSwitch, core.PickupKindCount}, DefaultConfig(), vmath.NewFastRand(1))
	if len(s.Pickups()) != 1 {
		t.Errorf("Expected 1 pickup, got %d", len(s.Pickups()))
	}
}

// TestNoPlatformsNoSpawn verifies a due pickup waits when there is nowhere to place it
func TestNoPlatformsNoSpawn(t *testing.T) {
	s := newTestScheduler(5)
	p, _ := s.Get(core.PickupSwitch)
	p.Elapsed = p.NextSpawn

	s.Update(1, nil, nil)
	if p.Active {
		t.Error("Pickup spawned without platforms")
	}
}
