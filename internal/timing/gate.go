package timing

import "time"

const (
	// LogicInterval is the real time between two simulation ticks.
	LogicInterval = 200 * time.Millisecond

	// FrameRate is the number of redraws per second.
	FrameRate = 60
)

// TimerGate lets a tick through once per interval of clock time.
type TimerGate struct {
	clock Clock
	last  time.Duration
}

// NewTimerGate creates a gate whose last tick is at clock time zero.
func NewTimerGate(clock Clock) *TimerGate {
	return &TimerGate{clock: clock}
}

// IsIntervalElapsed reports whether at least interval has passed since the
// last accepted tick. When it has, the current time becomes the last tick.
func (g *TimerGate) IsIntervalElapsed(interval time.Duration) bool {
	now := g.clock.Elapsed()
	if now-g.last >= interval {
		g.last = now
		return true
	}
	return false
}

// LastTick returns the clock time of the last accepted tick.
func (g *TimerGate) LastTick() time.Duration {
	return g.last
}
