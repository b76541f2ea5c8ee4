package match

import (
	"github.com/google/uuid"

	"github.com/lixenwraith/borof-pani/core"
	"github.com/lixenwraith/borof-pani/parameter"
	"github.com/lixenwraith/borof-pani/vmath"
)

// Snapshot is a read-only copy of the match for renderers
type Snapshot struct {
	ID      uuid.UUID
	MapName string
	Mode    Mode

	Width, Height float64
	Floor         *vmath.Rect

	Bodies    [parameter.PlayerCount]core.Body
	Platforms []core.Platform
	Pickups   []core.Pickup

	Scores    [parameter.PlayerCount]int
	Timer     float64
	Round     int
	MaxRounds int
	Hunter    int
	Ended     bool
	Winner    int
	Frame     int64

	WallStickDuration float64
}

// Snapshot returns a fresh copy of the current state
func (m *Match) Snapshot() Snapshot {
	var s Snapshot
	m.SnapshotInto(&s)
	return s
}

// SnapshotInto copies the current state into dst, reusing its slices
func (m *Match) SnapshotInto(dst *Snapshot) {
	dst.ID = m.ID
	dst.MapName = m.Level.Name
	dst.Mode = m.Config.Mode
	dst.Width, dst.Height = m.Level.Width, m.Level.Height

	dst.Floor = nil
	if m.Level.Floor != nil {
		f := *m.Level.Floor
		dst.Floor = &f
	}

	dst.Bodies = m.Bodies
	dst.Platforms = append(dst.Platforms[:0], m.Level.Platforms...)
	dst.Pickups = m.Pickups.Snapshot(dst.Pickups)

	dst.Scores = m.Scores
	dst.Timer = m.Timer
	dst.Round = m.Round
	dst.MaxRounds = m.Config.MaxRounds
	dst.Hunter = m.Hunter
	dst.Ended = m.Ended
	dst.Winner = m.Winner()
	dst.Frame = m.Frame
	dst.WallStickDuration = m.Config.Physics.WallStickDuration
}
