package audio

import (
	"fmt"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/speaker"

	"github.com/lixenwraith/borof-pani/event"
	"github.com/lixenwraith/borof-pani/parameter"
)

// SoundManager plays cues through the speaker under a master volume
// Every method is a no-op until Initialize succeeds, so the game runs silently without a device
type SoundManager struct {
	mu          sync.Mutex
	cfg         *AudioConfig
	cache       *soundCache
	mixer       *beep.Mixer
	master      *effects.Volume
	volume      float64
	lastPlayed  [soundTypeCount]time.Time
	initialized bool
}

// NewSoundManager creates a sound manager, nil selects the default config
func NewSoundManager(cfg *AudioConfig) *SoundManager {
	if cfg == nil {
		cfg = DefaultAudioConfig()
	}
	mixer := &beep.Mixer{}
	return &SoundManager{
		cfg:    cfg,
		cache:  newSoundCache(cfg),
		mixer:  mixer,
		master: newVolume(mixer, 1),
		volume: 1,
	}
}

// Initialize opens the speaker and starts the mixer
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}
	if !sm.cfg.Enabled {
		return ErrAudioDisabled
	}

	sampleRate := beep.SampleRate(sm.cfg.SampleRate)
	if err := speaker.Init(sampleRate, sampleRate.N(parameter.AudioBufferDuration)); err != nil {
		return fmt.Errorf("speaker init: %w", err)
	}

	sm.cache.preload()
	speaker.Play(sm.master)
	sm.initialized = true
	return nil
}

// Cleanup stops all sounds and closes the speaker
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	speaker.Clear()
	speaker.Close()
	sm.mixer = &beep.Mixer{}
	sm.master.Streamer = sm.mixer
	sm.initialized = false
}

// SetVolume sets the master volume in [0,1]
func (sm *SoundManager) SetVolume(v float64) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	sm.volume = max(0, min(v, 1))
	if sm.initialized {
		speaker.Lock()
		defer speaker.Unlock()
	}
	setGain(sm.master, sm.volume)
}

// Volume returns the master volume
func (sm *SoundManager) Volume() float64 {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.volume
}

// Play starts a cue; repeats of the same cue inside the minimum gap are dropped
func (sm *SoundManager) Play(st SoundType) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized || st < 0 || st >= soundTypeCount {
		return
	}

	now := time.Now()
	if now.Sub(sm.lastPlayed[st]) < parameter.AudioMinGap {
		return
	}
	sm.lastPlayed[st] = now

	buf := sm.cache.get(st)
	if buf == nil {
		return
	}

	speaker.Lock()
	sm.mixer.Add(buf.Streamer(0, buf.Len()))
	speaker.Unlock()
}

// Emit plays the cue for a game event, implementing event.Sink
func (sm *SoundManager) Emit(ev event.GameEvent) {
	if st, ok := SoundForEvent(ev.Type); ok {
		sm.Play(st)
	}
}

// Initialized reports whether a device is open
func (sm *SoundManager) Initialized() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.initialized
}
