package scenes

import (
	"time"

	"github.com/automoto/onionrun/config"
)

// Clock turns wall time between frames into a tick multiplier: 1.0 means
// one logical tick at config.C.TPS elapsed.
type Clock struct {
	now  func() time.Time
	last time.Time
}

func NewClock() *Clock {
	return &Clock{now: time.Now}
}

// Tick returns the delta since the previous Tick. The first tick after a
// Reset is exactly 1.
func (c *Clock) Tick() float64 {
	now := c.now()
	if c.last.IsZero() {
		c.last = now
		return 1
	}
	elapsed := now.Sub(c.last)
	c.last = now
	tick := time.Second / time.Duration(config.C.TPS)
	return float64(elapsed) / float64(tick)
}

// Reset forgets the last frame time, so time spent paused is not replayed.
func (c *Clock) Reset() {
	c.last = time.Time{}
}
