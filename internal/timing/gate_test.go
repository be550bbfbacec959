package timing

import (
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
)

func TestTimerGateInterval(t *testing.T) {
	clock := clockwork.NewFakeClock()
	gate := NewTimerGate(NewClock(clock))

	steps := []struct {
		advance  time.Duration
		expected bool
		last     time.Duration
	}{
		{0, false, 0},
		{100 * time.Millisecond, false, 0},
		{99 * time.Millisecond, false, 0},
		{1 * time.Millisecond, true, 200 * time.Millisecond},    // exactly one interval
		{199 * time.Millisecond, false, 200 * time.Millisecond}, // not yet
		{250 * time.Millisecond, true, 649 * time.Millisecond},  // late tick resets from now
		{200 * time.Millisecond, true, 849 * time.Millisecond},
	}

	for i, s := range steps {
		clock.Advance(s.advance)
		if got := gate.IsIntervalElapsed(LogicInterval); got != s.expected {
			t.Errorf("step %d: IsIntervalElapsed() = %v, expected %v", i, got, s.expected)
		}
		if gate.LastTick() != s.last {
			t.Errorf("step %d: LastTick() = %v, expected %v", i, gate.LastTick(), s.last)
		}
	}
}

func TestTimerGateFrameRate(t *testing.T) {
	// At 60 frames per second a 200ms gate opens on every twelfth frame.
	clock := clockwork.NewFakeClock()
	gate := NewTimerGate(NewClock(clock))
	frame := time.Second / FrameRate

	ticks := 0
	for i := 0; i < FrameRate*10; i++ {
		clock.Advance(frame)
		if gate.IsIntervalElapsed(LogicInterval) {
			ticks++
		}
	}

	// frame is truncated to 16.666666ms, so twelve frames fall just short of
	// 200ms and every gate opening takes thirteen frames.
	expected := FrameRate * 10 / 13
	if ticks != expected {
		t.Errorf("ticks in 10s = %d, expected %d", ticks, expected)
	}
}

func TestSystemClockMonotonic(t *testing.T) {
	c := NewSystemClock()
	a := c.Elapsed()
	b := c.Elapsed()
	if b < a {
		t.Errorf("Elapsed went backwards: %v then %v", a, b)
	}
}

func TestClockFollowsFake(t *testing.T) {
	fake := clockwork.NewFakeClock()
	fake.Advance(time.Hour) // time before the clock starts is not counted
	c := NewClock(fake)

	if c.Elapsed() != 0 {
		t.Errorf("Elapsed() = %v at start, expected 0", c.Elapsed())
	}
	fake.Advance(3 * time.Second)
	fake.Advance(time.Second)
	if c.Elapsed() != 4*time.Second {
		t.Errorf("Elapsed() = %v, expected 4s", c.Elapsed())
	}
}
