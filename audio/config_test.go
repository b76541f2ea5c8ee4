package audio

import (
	"testing"
)

// TestDefaultAudioConfig verifies default configuration
func TestDefaultAudioConfig(t *testing.T) {
	cfg := DefaultAudioConfig()

	if !cfg.Enabled {
		t.Error("Expected default config to have Enabled=true")
	}
	if cfg.SampleRate != 44100 {
		t.Errorf("Expected default sample rate 44100, got %d", cfg.SampleRate)
	}
	for st := SoundType(0); st < soundTypeCount; st++ {
		if cfg.EffectVolumes[st] <= 0 || cfg.EffectVolumes[st] > 1 {
			t.Errorf("Expected %s volume in (0,1], got %f", st, cfg.EffectVolumes[st])
		}
	}
}

// TestLoadAudioConfigFromEnv verifies environment overrides
func TestLoadAudioConfigFromEnv(t *testing.T) {
	t.Setenv(EnvAudioEnabled, "false")
	t.Setenv(EnvSampleRate, "48000")
	t.Setenv(EnvSFXVolumes, `{"capture": 0.25, "bounce": 3, "unknown": 1}`)

	cfg := LoadAudioConfig()

	if cfg.Enabled {
		t.Error("Expected audio disabled from env")
	}
	if cfg.SampleRate != 48000 {
		t.Errorf("Expected sample rate 48000, got %d", cfg.SampleRate)
	}
	if cfg.EffectVolumes[SoundCapture] != 0.25 {
		t.Errorf("Expected capture volume 0.25, got %f", cfg.EffectVolumes[SoundCapture])
	}
	if cfg.EffectVolumes[SoundBounce] != 1 {
		t.Errorf("Expected bounce volume clamped to 1, got %f", cfg.EffectVolumes[SoundBounce])
	}
}

// TestLoadAudioConfigIgnoresGarbage verifies invalid values keep defaults
func TestLoadAudioConfigIgnoresGarbage(t *testing.T) {
	t.Setenv(EnvAudioEnabled, "maybe")
	t.Setenv(EnvSampleRate, "-5")
	t.Setenv(EnvSFXVolumes, "{not json")

	cfg := LoadAudioConfig()
	def := DefaultAudioConfig()

	if cfg.Enabled != def.Enabled || cfg.SampleRate != def.SampleRate || cfg.EffectVolumes != def.EffectVolumes {
		t.Errorf("Expected defaults, got %+v", cfg)
	}
}
