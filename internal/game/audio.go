package game

import (
	"math/rand"
	"sync"
	"time"
)

// crackle synthesizes the ambient noise bed: a low brown-noise hum plus
// stochastic pops, both scaled by an intensity the game derives from live
// branch activity. Stream runs on the speaker goroutine, so intensity
// access is mutex-guarded.
type crackle struct {
	mu        sync.RWMutex
	intensity float64

	rng   *rand.Rand
	brown float64
	pop   float64
}

func newCrackle() *crackle {
	return &crackle{
		rng:       rand.New(rand.NewSource(time.Now().UnixNano())),
		intensity: 0.2,
	}
}

func (c *crackle) setIntensity(v float64) {
	c.mu.Lock()
	c.intensity = clamp01(v)
	c.mu.Unlock()
}

func (c *crackle) Stream(samples [][2]float64) (int, bool) {
	c.mu.RLock()
	intensity := c.intensity
	c.mu.RUnlock()

	for i := range samples {
		white := c.rng.Float64()*2 - 1

		// Leaky integrator keeps the hum low and brown.
		c.brown = (c.brown + white*0.02) * 0.995

		// Rare pops, more frequent the more branches are alive.
		if c.rng.Float64() < 0.00004+0.0004*intensity {
			c.pop = 1
		}
		c.pop *= 0.995

		v := (c.brown*0.6 + white*c.pop*0.25) * (0.15 + 0.5*intensity)
		samples[i][0] = v
		samples[i][1] = v
	}
	return len(samples), true
}

func (c *crackle) Err() error { return nil }
