package physics

import (
	"math"

	"github.com/lixenwraith/borof-pani/core"
)

// Control is one body's logical input for a frame
type Control struct {
	Left  bool // held
	Right bool // held
	Jump  bool // edge-triggered
}

// ApplyControls nudges horizontal velocity toward the held direction and handles jumps
// Left wins when both directions are held
func ApplyControls(b *core.Body, ctl Control, t *Tuning) {
	accel, maxSpeed := t.Accel, t.MaxSpeed
	if b.Boost.Active {
		accel, maxSpeed = t.BoostAccel, t.BoostMaxSpeed
	}

	switch {
	case ctl.Left:
		b.Vel.X -= accel
		if b.Vel.X < -maxSpeed {
			b.Vel.X = -maxSpeed
		}
		b.FacingRight = false
	case ctl.Right:
		b.Vel.X += accel
		if b.Vel.X > maxSpeed {
			b.Vel.X = maxSpeed
		}
		b.FacingRight = true
	default:
		b.Vel.X *= t.ReleaseDamping
		if math.Abs(b.Vel.X) < t.ReleaseSnap {
			b.Vel.X = 0
		}
	}

	if ctl.Jump && b.Jumps > 0 {
		b.Vel.Y = t.JumpImpulse
		b.Jumps--
	}
}

// ApplyGravity accumulates gravity unless the body clings to a wall
func ApplyGravity(b *core.Body, t *Tuning) {
	if b.Stick.Stuck {
		return
	}
	b.Vel.Y += t.Gravity
}

// CapSpeed limits horizontal speed to the body's current maximum
// Used when a boost ends mid-flight so the faster cap does not persist
func CapSpeed(b *core.Body, t *Tuning) bool {
	maxSpeed := t.MaxSpeed
	if b.Boost.Active {
		maxSpeed = t.BoostMaxSpeed
	}
	if b.Vel.X > maxSpeed {
		b.Vel.X = maxSpeed
		return true
	}
	if b.Vel.X < -maxSpeed {
		b.Vel.X = -maxSpeed
		return true
	}
	return false
}
