package components

import "time"

// AnimationTimer is an optional start timestamp.
//
// The duration is not stored on the timer; every widget passes its own
// configured duration when sampling. A stopped timer is "absent".
type AnimationTimer struct {
	start   time.Time
	running bool
}

// Start (re)starts the timer at the given instant, discarding any
// partial progress. The instant may lie in the future, in which case
// progress stays at 0 until it is reached.
func (t *AnimationTimer) Start(at time.Time) {
	t.start = at
	t.running = true
}

// Clear stops the timer without completing it.
func (t *AnimationTimer) Clear() {
	t.running = false
	t.start = time.Time{}
}

// Running reports whether the timer is present.
func (t *AnimationTimer) Running() bool {
	return t.running
}

// StartedAt returns the start instant and whether the timer is present.
func (t *AnimationTimer) StartedAt() (time.Time, bool) {
	return t.start, t.running
}

// Advance samples the timer at now.
//
// Returns:
//   - progress: elapsed/duration in [0, 1]; 0 when the timer is absent
//   - justCompleted: true exactly once, on the sample that reaches 1.
//     The timer is cleared on that sample.
//
// A non-positive duration completes on the first sample.
func (t *AnimationTimer) Advance(now time.Time, duration time.Duration) (progress float64, justCompleted bool) {
	if !t.running {
		return 0, false
	}

	if duration <= 0 {
		t.Clear()
		return 1, true
	}

	elapsed := now.Sub(t.start)
	if elapsed < 0 {
		return 0, false
	}
	if elapsed >= duration {
		t.Clear()
		return 1, true
	}

	return float64(elapsed) / float64(duration), false
}
