package audio

import (
	"sync"

	"github.com/gopxl/beep"
)

// soundCache stores cues rendered once into sample buffers
type soundCache struct {
	mu    sync.RWMutex
	cfg   *AudioConfig
	store [soundTypeCount]*beep.Buffer
}

func newSoundCache(cfg *AudioConfig) *soundCache {
	return &soundCache{cfg: cfg}
}

// get returns the cached buffer or renders it on demand
func (c *soundCache) get(st SoundType) *beep.Buffer {
	if st < 0 || st >= soundTypeCount {
		return nil
	}

	c.mu.RLock()
	buf := c.store[st]
	c.mu.RUnlock()
	if buf != nil {
		return buf
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	// Double-check after acquiring write lock
	if c.store[st] != nil {
		return c.store[st]
	}

	s := GetSoundEffect(st, c.cfg)
	if s == nil {
		return nil
	}
	buf = beep.NewBuffer(beep.Format{
		SampleRate:  beep.SampleRate(c.cfg.SampleRate),
		NumChannels: 2,
		Precision:   2,
	})
	buf.Append(s)
	c.store[st] = buf
	return buf
}

// preload renders every cue so the first trigger does not stall the loop
func (c *soundCache) preload() {
	for st := SoundType(0); st < soundTypeCount; st++ {
		c.get(st)
	}
}
