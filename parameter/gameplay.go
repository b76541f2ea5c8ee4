package parameter

// Rounds
const (
	// RoundDuration is the round countdown in seconds
	RoundDuration = 25.0

	// MaxRounds ends the match once reached
	MaxRounds = 15

	// ScoreCap ends the match once any score exceeds it
	ScoreCap = 7

	// TimerEpsilon absorbs float drift from summing frame deltas
	TimerEpsilon = 1e-9
)
