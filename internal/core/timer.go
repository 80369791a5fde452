package core

import "time"

// Timer is a periodic timer driven by simulated time rather than the wall
// clock, so a game loop stays deterministic under test. Each game loop
// iteration advances every timer it owns by the loop interval.
type Timer struct {
	period  time.Duration
	elapsed time.Duration
}

// NewTimer creates a timer that expires once per period.
func NewTimer(period time.Duration) *Timer {
	return &Timer{period: period}
}

// Period returns the timer period.
func (t *Timer) Period() time.Duration {
	return t.period
}

// Advance moves the timer forward by dt and reports whether a period
// elapsed. At most one expiry is reported per call; any backlog beyond one
// extra period is dropped rather than replayed as a burst.
func (t *Timer) Advance(dt time.Duration) bool {
	if t.period <= 0 {
		return false
	}
	t.elapsed += dt
	if t.elapsed < t.period {
		return false
	}
	t.elapsed -= t.period
	if t.elapsed >= t.period {
		t.elapsed = 0
	}
	return true
}

// Reset restarts the current period from zero.
func (t *Timer) Reset() {
	t.elapsed = 0
}
