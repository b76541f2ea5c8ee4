package audio

import (
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"

	"github.com/lixenwraith/borof-pani/event"
	"github.com/lixenwraith/borof-pani/parameter"
)

// WaveType defines oscillator wave shapes
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveSaw
	WaveNoise
)

// oscillator generates raw audio waves with an optional linear frequency glide
type oscillator struct {
	freq     float64
	endFreq  float64
	phase    float64
	duration int
	position int
	wave     WaveType
	rate     beep.SampleRate
}

// NewOscillator creates a fixed-pitch oscillator
func NewOscillator(freq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return NewSweep(freq, freq, duration, wave, rate)
}

// NewSweep creates an oscillator gliding from startFreq to endFreq over its duration
func NewSweep(startFreq, endFreq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		freq:     startFreq,
		endFreq:  endFreq,
		duration: rate.N(duration),
		wave:     wave,
		rate:     rate,
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.duration {
			return i, i > 0
		}

		var val float64
		switch o.wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * o.phase)
		case WaveSquare:
			if o.phase < 0.5 {
				val = 1.0
			} else {
				val = -1.0
			}
		case WaveSaw:
			val = 2.0 * (o.phase - 0.5)
		case WaveNoise:
			val = rand.Float64()*2 - 1
		}

		samples[i][0] = val
		samples[i][1] = val

		progress := float64(o.position) / float64(o.duration)
		freq := o.freq + (o.endFreq-o.freq)*progress
		o.phase += freq / float64(o.rate)
		o.phase -= math.Floor(o.phase)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope applies attack/release shaping to a stream
type envelope struct {
	streamer       beep.Streamer
	position       int
	attackSamples  int
	releaseSamples int
	sustainSamples int
	totalSamples   int
}

// NewEnvelope wraps a stream with a linear attack and release
func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	total := rate.N(duration)
	att := rate.N(attack)
	rel := rate.N(release)
	sus := max(total-att-rel, 0)

	return &envelope{
		streamer:       s,
		attackSamples:  att,
		releaseSamples: rel,
		sustainSamples: sus,
		totalSamples:   total,
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)

	for i := 0; i < n; i++ {
		if e.position >= e.totalSamples {
			return i, i > 0
		}

		vol := 1.0
		if e.position < e.attackSamples {
			vol = float64(e.position) / float64(e.attackSamples)
		}
		releaseStart := e.attackSamples + e.sustainSamples
		if e.position >= releaseStart && e.releaseSamples > 0 {
			vol = max(float64(e.totalSamples-e.position)/float64(e.releaseSamples), 0)
		}

		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}

	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// newVolume wraps a stream with a linear gain
// math.Log2(0) is -Inf, so zero gain is expressed as Silent
func newVolume(s beep.Streamer, vol float64) *effects.Volume {
	v := &effects.Volume{Streamer: s, Base: 2}
	setGain(v, vol)
	return v
}

func setGain(v *effects.Volume, vol float64) {
	if vol <= 0 {
		v.Volume, v.Silent = 0, true
		return
	}
	v.Volume, v.Silent = math.Log2(vol), false
}

func tone(freq float64, d, attack, release time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return NewEnvelope(NewOscillator(freq, d, wave, rate), d, attack, release, rate)
}

// CreateSelectionSound generates a short sine blip
func CreateSelectionSound(rate beep.SampleRate) beep.Streamer {
	d := parameter.SelectionDuration
	sine, err := generators.SineTone(rate, parameter.SelectionFreq)
	if err != nil {
		sine = NewOscillator(parameter.SelectionFreq, d, WaveSine, rate)
	}
	return NewEnvelope(beep.Take(rate.N(d), sine), d, time.Millisecond, parameter.SelectionRelease, rate)
}

// CreatePickupSound generates a bell: fundamental plus a faster-decaying octave
func CreatePickupSound(rate beep.SampleRate) beep.Streamer {
	d := parameter.BellSoundDuration
	fund := tone(880, d, parameter.BellSoundAttack, parameter.BellSoundFundamentalRelease, WaveSine, rate)
	over := tone(1760, d, parameter.BellSoundAttack, parameter.BellSoundOvertoneRelease, WaveSine, rate)
	return beep.Mix(newVolume(fund, 0.7), newVolume(over, 0.3))
}

// CreateSpawnSound generates a soft rising ping
func CreateSpawnSound(rate beep.SampleRate) beep.Streamer {
	d := parameter.SpawnSoundDuration
	osc := NewSweep(520, 780, d, WaveSine, rate)
	return NewEnvelope(osc, d, parameter.SpawnSoundAttack, parameter.SpawnSoundRelease, rate)
}

// CreateCaptureSound generates a two-note square chime
func CreateCaptureSound(rate beep.SampleRate) beep.Streamer {
	n1 := tone(987.77, parameter.CaptureNote1Duration, parameter.CaptureAttack, parameter.CaptureNote1Release, WaveSquare, rate)
	n2 := tone(1318.51, parameter.CaptureNote2Duration, parameter.CaptureAttack, parameter.CaptureNote2Release, WaveSquare, rate)
	return newVolume(beep.Seq(n1, n2), 0.4)
}

// CreateFallSound generates a falling noise-and-tone whoosh
func CreateFallSound(rate beep.SampleRate) beep.Streamer {
	d := parameter.FallSoundDuration
	sweep := NewSweep(440, 90, d, WaveSine, rate)
	noise := NewOscillator(0, d, WaveNoise, rate)
	mixed := beep.Mix(newVolume(sweep, 0.6), newVolume(noise, 0.2))
	return NewEnvelope(mixed, d, parameter.FallSoundAttack, parameter.FallSoundRelease, rate)
}

// CreateTimeUpSound generates a low saw buzz
func CreateTimeUpSound(rate beep.SampleRate) beep.Streamer {
	return newVolume(tone(110, parameter.BuzzSoundDuration, parameter.BuzzSoundAttack, parameter.BuzzSoundRelease, WaveSaw, rate), 0.5)
}

// CreateMatchEndSound generates a rising major arpeggio
func CreateMatchEndSound(rate beep.SampleRate) beep.Streamer {
	d := parameter.FanfareNoteDuration
	return newVolume(beep.Seq(
		tone(523.25, d, parameter.FanfareAttack, parameter.FanfareRelease, WaveSquare, rate),
		tone(659.25, d, parameter.FanfareAttack, parameter.FanfareRelease, WaveSquare, rate),
		tone(783.99, d, parameter.FanfareAttack, parameter.FanfareRelease, WaveSquare, rate),
		tone(1046.5, 2*d, parameter.FanfareAttack, 2*parameter.FanfareRelease, WaveSquare, rate),
	), 0.35)
}

// CreateBounceSound generates a short pitched-down thump
func CreateBounceSound(rate beep.SampleRate) beep.Streamer {
	d := parameter.ThumpSoundDuration
	osc := NewSweep(180, 60, d, WaveSine, rate)
	return NewEnvelope(osc, d, parameter.ThumpSoundAttack, parameter.ThumpSoundRelease, rate)
}

// CreateWallStickSound generates a muted noise thud
func CreateWallStickSound(rate beep.SampleRate) beep.Streamer {
	d := parameter.ThudSoundDuration
	noise := NewOscillator(0, d, WaveNoise, rate)
	return newVolume(NewEnvelope(noise, d, time.Millisecond, d-time.Millisecond, rate), 0.5)
}

// GetSoundEffect returns a fresh streamer for the cue at the configured per-cue gain
func GetSoundEffect(st SoundType, cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)

	var s beep.Streamer
	switch st {
	case SoundSelection:
		s = CreateSelectionSound(rate)
	case SoundPickup:
		s = CreatePickupSound(rate)
	case SoundSpawn:
		s = CreateSpawnSound(rate)
	case SoundCapture:
		s = CreateCaptureSound(rate)
	case SoundFall:
		s = CreateFallSound(rate)
	case SoundTimeUp:
		s = CreateTimeUpSound(rate)
	case SoundMatchEnd:
		s = CreateMatchEndSound(rate)
	case SoundBounce:
		s = CreateBounceSound(rate)
	case SoundWallStick:
		s = CreateWallStickSound(rate)
	default:
		return nil
	}
	return newVolume(s, cfg.EffectVolumes[st])
}

// SoundForEvent maps a game event to its cue
// Round resets have no cue of their own; the cause already sounded
func SoundForEvent(t event.EventType) (SoundType, bool) {
	switch t {
	case event.EventSelection:
		return SoundSelection, true
	case event.EventPickupConsumed:
		return SoundPickup, true
	case event.EventPickupSpawned:
		return SoundSpawn, true
	case event.EventCapture:
		return SoundCapture, true
	case event.EventFallOut:
		return SoundFall, true
	case event.EventTimeUp:
		return SoundTimeUp, true
	case event.EventMatchEnd:
		return SoundMatchEnd, true
	case event.EventBounce:
		return SoundBounce, true
	case event.EventWallStick:
		return SoundWallStick, true
	}
	return 0, false
}
