package parameter

import "time"

// Audio Hardware Settings
const (
	AudioSampleRate = 44100

	// AudioBufferDuration sets speaker latency
	AudioBufferDuration = 100 * time.Millisecond

	// AudioMinGap suppresses a repeat of the same cue inside this window
	AudioMinGap = 50 * time.Millisecond
)

// Selection Blip
const (
	SelectionFreq     = 660.0
	SelectionDuration = 60 * time.Millisecond
	SelectionRelease  = 30 * time.Millisecond
)

// Pickup Bell
const (
	BellSoundDuration           = 450 * time.Millisecond
	BellSoundAttack             = 5 * time.Millisecond
	BellSoundFundamentalRelease = 400 * time.Millisecond
	BellSoundOvertoneRelease    = 150 * time.Millisecond
)

// Spawn Ping
const (
	SpawnSoundDuration = 90 * time.Millisecond
	SpawnSoundAttack   = 10 * time.Millisecond
	SpawnSoundRelease  = 60 * time.Millisecond
)

// Capture Chime
const (
	CaptureNote1Duration = 80 * time.Millisecond
	CaptureNote2Duration = 260 * time.Millisecond
	CaptureAttack        = 5 * time.Millisecond
	CaptureNote1Release  = 40 * time.Millisecond
	CaptureNote2Release  = 200 * time.Millisecond
)

// Fall Whoosh
const (
	FallSoundDuration = 350 * time.Millisecond
	FallSoundAttack   = 50 * time.Millisecond
	FallSoundRelease  = 250 * time.Millisecond
)

// Time-up Buzz
const (
	BuzzSoundDuration = 220 * time.Millisecond
	BuzzSoundAttack   = 5 * time.Millisecond
	BuzzSoundRelease  = 60 * time.Millisecond
)

// Match-end Arpeggio
const (
	FanfareNoteDuration = 140 * time.Millisecond
	FanfareAttack       = 5 * time.Millisecond
	FanfareRelease      = 90 * time.Millisecond
)

// Bounce Thump and Wall Thud
const (
	ThumpSoundDuration = 70 * time.Millisecond
	ThumpSoundAttack   = 2 * time.Millisecond
	ThumpSoundRelease  = 50 * time.Millisecond
	ThudSoundDuration  = 50 * time.Millisecond
)
