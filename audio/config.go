package audio

import (
	"encoding/json"
	"os"
	"strconv"

	"github.com/lixenwraith/borof-pani/parameter"
)

// Environment variables read by LoadAudioConfig
const (
	EnvAudioEnabled = "BOROF_AUDIO_ENABLED"
	EnvSampleRate   = "BOROF_SAMPLE_RATE"
	EnvSFXVolumes   = "BOROF_SFX_VOLUMES"
)

// AudioConfig holds device and per-cue settings
// Master volume is not here: it belongs to the persisted settings
type AudioConfig struct {
	Enabled       bool
	SampleRate    int
	EffectVolumes [soundTypeCount]float64
}

// DefaultAudioConfig returns the stock configuration
func DefaultAudioConfig() *AudioConfig {
	cfg := &AudioConfig{
		Enabled:    true,
		SampleRate: parameter.AudioSampleRate,
	}
	cfg.EffectVolumes = [soundTypeCount]float64{
		SoundSelection: 0.5,
		SoundPickup:    1.0,
		SoundSpawn:     0.4,
		SoundCapture:   0.8,
		SoundFall:      0.7,
		SoundTimeUp:    0.6,
		SoundMatchEnd:  0.8,
		SoundBounce:    0.5,
		SoundWallStick: 0.4,
	}
	return cfg
}

// LoadAudioConfig loads audio configuration from environment variables
func LoadAudioConfig() *AudioConfig {
	cfg := DefaultAudioConfig()

	if enabled := os.Getenv(EnvAudioEnabled); enabled != "" {
		if val, err := strconv.ParseBool(enabled); err == nil {
			cfg.Enabled = val
		}
	}

	if sampleRate := os.Getenv(EnvSampleRate); sampleRate != "" {
		if val, err := strconv.Atoi(sampleRate); err == nil && val > 0 {
			cfg.SampleRate = val
		}
	}

	// Per-cue volumes as JSON: {"capture": 0.5, "bounce": 0}
	if effectVols := os.Getenv(EnvSFXVolumes); effectVols != "" {
		var volumes map[string]float64
		if err := json.Unmarshal([]byte(effectVols), &volumes); err == nil {
			for st := SoundType(0); st < soundTypeCount; st++ {
				if v, ok := volumes[st.String()]; ok && v >= 0 {
					cfg.EffectVolumes[st] = min(v, 1)
				}
			}
		}
	}

	return cfg
}
