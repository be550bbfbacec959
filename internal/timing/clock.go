// Package timing decides when the simulation advances, independent of how
// often the screen is redrawn.
package timing

import (
	"time"

	"github.com/jonboulle/clockwork"
)

// Clock reports time elapsed since it started.
type Clock interface {
	Elapsed() time.Duration
}

// WallClock measures elapsed time on a clockwork clock, so tests can
// drive it with clockwork.NewFakeClock.
type WallClock struct {
	clock clockwork.Clock
	start time.Time
}

// NewClock returns a clock that starts counting at c's current time.
func NewClock(c clockwork.Clock) *WallClock {
	return &WallClock{clock: c, start: c.Now()}
}

// NewSystemClock returns a clock on real time that starts counting now.
func NewSystemClock() *WallClock {
	return NewClock(clockwork.NewRealClock())
}

// Elapsed returns the time since the clock was created.
func (c *WallClock) Elapsed() time.Duration {
	return c.clock.Since(c.start)
}
