package match

import (
	"fmt"
	"strings"

	"github.com/lixenwraith/borof-pani/core"
	"github.com/lixenwraith/borof-pani/parameter"
	"github.com/lixenwraith/borof-pani/physics"
	"github.com/lixenwraith/borof-pani/pickup"
)

// Mode selects how the two bodies interact on contact
type Mode uint8

const (
	// ModeTag ends the round on contact and scores it
	ModeTag Mode = iota
	// ModeBounce separates the bodies elastically, contact never scores
	ModeBounce
)

func (m Mode) String() string {
	switch m {
	case ModeTag:
		return "tag"
	case ModeBounce:
		return "bounce"
	default:
		return "unknown"
	}
}

// ParseMode resolves a mode name
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "tag", "":
		return ModeTag, nil
	case "bounce":
		return ModeBounce, nil
	}
	return ModeTag, fmt.Errorf("unknown mode: %q", s)
}

// CaptureRule decides who scores a capture in tag mode
type CaptureRule uint8

const (
	// CaptureScoresHunter rewards the body that caught the other
	CaptureScoresHunter CaptureRule = iota
	// CaptureScoresRunner rewards the caught body
	CaptureScoresRunner
)

func (c CaptureRule) String() string {
	switch c {
	case CaptureScoresHunter:
		return "hunter"
	case CaptureScoresRunner:
		return "runner"
	default:
		return "unknown"
	}
}

// ParseCaptureRule resolves a capture rule name
func ParseCaptureRule(s string) (CaptureRule, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "hunter", "":
		return CaptureScoresHunter, nil
	case "runner":
		return CaptureScoresRunner, nil
	}
	return CaptureScoresHunter, fmt.Errorf("unknown capture rule: %q", s)
}

// Config fixes the rules of one match
type Config struct {
	Map     int
	Mode    Mode
	Capture CaptureRule

	Physics     physics.Tuning
	Restitution float64

	Pickups     pickup.Config
	PickupKinds []core.PickupKind

	RoundDuration float64 // seconds
	MaxRounds     int
	ScoreCap      int // the match ends once a score exceeds this
}

// DefaultConfig returns the stock rules
func DefaultConfig() Config {
	return Config{
		Map:           parameter.MapRandom,
		Mode:          ModeTag,
		Capture:       CaptureScoresHunter,
		Physics:       physics.DefaultTuning(),
		Restitution:   parameter.BounceRestitution,
		Pickups:       pickup.DefaultConfig(),
		PickupKinds:   []core.PickupKind{core.PickupSwitch, core.PickupSpeed},
		RoundDuration: parameter.RoundDuration,
		MaxRounds:     parameter.MaxRounds,
		ScoreCap:      parameter.ScoreCap,
	}
}
