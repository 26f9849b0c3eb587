package model

import "time"

// intervalTimer fires once per interval of accumulated elapsed time
type intervalTimer struct {
	interval time.Duration
	elapsed  time.Duration
}

func newIntervalTimer(interval time.Duration) *intervalTimer {
	return &intervalTimer{interval: interval}
}

// advance adds d to the accumulated time and reports whether the timer fired.
// It fires at most once per call; whole intervals beyond the first are dropped.
func (t *intervalTimer) advance(d time.Duration) bool {
	if d > 0 {
		t.elapsed += d
	}
	if t.elapsed < t.interval {
		return false
	}
	t.elapsed %= t.interval
	return true
}

func (t *intervalTimer) reset() {
	t.elapsed = 0
}
