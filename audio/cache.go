package audio

import (
	"sync"

	"github.com/gopxl/beep"
)

// soundCache stores pre-rendered buffers per sound type
type soundCache struct {
	mu    sync.RWMutex
	cfg   *AudioConfig
	store [soundTypeCount]*beep.Buffer
}

func newSoundCache(cfg *AudioConfig) *soundCache {
	return &soundCache{cfg: cfg}
}

// get returns cached buffer or renders on demand
func (c *soundCache) get(st SoundType) *beep.Buffer {
	if st < 0 || st >= soundTypeCount {
		return nil
	}

	c.mu.RLock()
	if buf := c.store[st]; buf != nil {
		c.mu.RUnlock()
		return buf
	}
	c.mu.RUnlock()

	c.mu.Lock()
	defer c.mu.Unlock()

	// Double-check after acquiring write lock
	if buf := c.store[st]; buf != nil {
		return buf
	}

	format := beep.Format{
		SampleRate:  beep.SampleRate(c.cfg.SampleRate),
		NumChannels: 2,
		Precision:   2,
	}
	buf := beep.NewBuffer(format)
	buf.Append(GetSoundEffect(st, c.cfg))
	c.store[st] = buf
	return buf
}

// preload renders every cue so the first play has no latency
func (c *soundCache) preload() {
	for st := SoundType(0); st < soundTypeCount; st++ {
		c.get(st)
	}
}
