package core

// Timer measures elapsed seconds against a fixed duration.
// Used for cooldowns that scale with wall-clock time (fire rate, spawn interval).
type Timer struct {
	Duration float64
	Elapsed  float64
}

// NewTimer returns a timer that has not elapsed yet.
func NewTimer(duration float64) Timer {
	return Timer{Duration: duration}
}

// NewExpiredTimer returns a timer that is already expired.
func NewExpiredTimer(duration float64) Timer {
	return Timer{Duration: duration, Elapsed: duration}
}

// Tick advances the timer by dt seconds.
func (t *Timer) Tick(dt float64) {
	t.Elapsed += dt
}

// Expired reports whether the elapsed time has reached the duration.
func (t Timer) Expired() bool {
	return t.Elapsed >= t.Duration
}

// Reset zeroes the elapsed time, keeping the duration.
func (t *Timer) Reset() {
	t.Elapsed = 0
}

// FrameCounter is a cooldown measured in simulation steps rather than seconds.
// It decrements once per step regardless of dt.
type FrameCounter int

// Step decrements the counter toward zero.
func (c *FrameCounter) Step() {
	if *c > 0 {
		*c--
	}
}

// Active reports whether the counter is still running.
func (c FrameCounter) Active() bool {
	return c > 0
}
