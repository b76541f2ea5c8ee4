package audio

import (
	"errors"
	"testing"

	"github.com/lixenwraith/borof-pani/event"
)

// TestSoundManagerGracefulDegradation verifies audio operations don't panic when not initialized
func TestSoundManagerGracefulDegradation(t *testing.T) {
	sm := NewSoundManager(nil)

	defer func() {
		if r := recover(); r != nil {
			t.Errorf("Sound operations panicked without initialization: %v", r)
		}
	}()

	for st := SoundType(0); st < soundTypeCount; st++ {
		sm.Play(st)
	}
	sm.Play(SoundType(99))
	sm.Emit(event.GameEvent{Type: event.EventCapture})
	sm.SetVolume(0.3)
	sm.Cleanup()

	if sm.Initialized() {
		t.Error("Expected manager to stay uninitialized")
	}
}

// TestSoundManagerDisabled verifies the env switch prevents opening a device
func TestSoundManagerDisabled(t *testing.T) {
	cfg := DefaultAudioConfig()
	cfg.Enabled = false
	sm := NewSoundManager(cfg)

	if err := sm.Initialize(); !errors.Is(err, ErrAudioDisabled) {
		t.Errorf("Expected ErrAudioDisabled, got %v", err)
	}
	if sm.Initialized() {
		t.Error("Expected disabled manager to stay uninitialized")
	}
}

// TestSoundManagerVolumeClamp verifies master volume bounds
func TestSoundManagerVolumeClamp(t *testing.T) {
	sm := NewSoundManager(nil)

	sm.SetVolume(1.7)
	if sm.Volume() != 1 {
		t.Errorf("Expected volume clamped to 1, got %f", sm.Volume())
	}
	sm.SetVolume(-1)
	if sm.Volume() != 0 {
		t.Errorf("Expected volume clamped to 0, got %f", sm.Volume())
	}
	if !sm.master.Silent {
		t.Error("Expected zero volume to silence the master")
	}
	sm.SetVolume(0.5)
	if sm.master.Silent || sm.master.Volume != -1 {
		t.Errorf("Expected log2 gain -1, got %f (silent=%v)", sm.master.Volume, sm.master.Silent)
	}
}

// TestSoundManagerInitialization verifies sound manager can be initialized and cleaned up
func TestSoundManagerInitialization(t *testing.T) {
	sm := NewSoundManager(nil)

	// Speaker initialization may fail in CI/test environments without audio devices
	err := sm.Initialize()
	if err != nil {
		t.Logf("Sound initialization failed (expected in test environment): %v", err)
		return
	}

	// Second initialization should be a no-op
	if err := sm.Initialize(); err != nil {
		t.Errorf("Second initialization should succeed as no-op, got error: %v", err)
	}

	sm.Emit(event.GameEvent{Type: event.EventSelection})
	sm.Cleanup()

	if sm.Initialized() {
		t.Error("Expected cleanup to close the device")
	}
}
