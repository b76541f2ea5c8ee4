// Package settings persists the player-facing preferences: volume, map and fullscreen
package settings

import (
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"

	"github.com/lixenwraith/borof-pani/parameter"
	"github.com/lixenwraith/borof-pani/toml"
)

const (
	DefaultVolume = 0.5
	DefaultMap    = parameter.MapRandom
	VolumeStep    = 0.05
)

// ErrInvalidSettings marks a settings file that exists but cannot be decoded
var ErrInvalidSettings = errors.New("invalid settings")

// Settings is the persisted preference set
type Settings struct {
	Volume     float64 `toml:"volume"`
	Map        int     `toml:"map"`
	Fullscreen bool    `toml:"fullscreen"`
}

// Default returns the factory settings
func Default() Settings {
	return Settings{Volume: DefaultVolume, Map: DefaultMap}
}

// Clamp brings out-of-range values back into their domain
// Volume is limited to [0,1], unknown maps fall back to the default
func (s *Settings) Clamp() {
	switch {
	case math.IsNaN(s.Volume):
		s.Volume = DefaultVolume
	case s.Volume < 0:
		s.Volume = 0
	case s.Volume > 1:
		s.Volume = 1
	}
	if s.Map < 0 || s.Map >= parameter.MapCount {
		s.Map = DefaultMap
	}
}

// AdjustVolume changes the volume by delta, clamped
func (s *Settings) AdjustVolume(delta float64) {
	s.Volume += delta
	s.Clamp()
}

// NextMap cycles through the available maps
func (s *Settings) NextMap() {
	s.Map = (s.Map + 1) % parameter.MapCount
}

// Store reads and writes settings at a file path
type Store struct {
	Path string
}

// NewStore creates a store for the given file
func NewStore(path string) *Store {
	return &Store{Path: path}
}

// Load reads settings from disk
// On a missing or malformed file the defaults are returned with the error for logging
func (st *Store) Load() (Settings, error) {
	s := Default()

	data, err := os.ReadFile(st.Path)
	if err != nil {
		return s, fmt.Errorf("read settings %s: %w", st.Path, err)
	}

	if err := toml.Unmarshal(data, &s); err != nil {
		return Default(), fmt.Errorf("%w: %s: %v", ErrInvalidSettings, st.Path, err)
	}

	s.Clamp()
	return s, nil
}

// Save writes settings to disk, creating the parent directory
func (st *Store) Save(s Settings) error {
	s.Clamp()

	if dir := filepath.Dir(st.Path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("create settings dir: %w", err)
		}
	}

	data, err := toml.Marshal(s)
	if err != nil {
		return fmt.Errorf("encode settings: %w", err)
	}

	if err := os.WriteFile(st.Path, data, 0644); err != nil {
		return fmt.Errorf("write settings %s: %w", st.Path, err)
	}
	return nil
}
