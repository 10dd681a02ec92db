// Package loop provides periodic tick sources for a game session.
//
// A Timeline is the bookkeeping shared by every source: each arming gets a
// generation number, and a fire carrying an old generation is discarded.
// Replacing the period therefore means "stop, then arm anew" and a fire that
// was already in flight for the old period can never run twice.
package loop

import "time"

// Timeline tracks the current arming of a periodic callback.
// It is not safe for concurrent use; drive it from one event loop.
type Timeline struct {
	interval time.Duration
	fn       func()
	gen      uint64
	active   bool
	fires    uint64
}

// Schedule arms fn every d and returns the new generation.
func (t *Timeline) Schedule(d time.Duration, fn func()) uint64 {
	t.interval = d
	t.fn = fn
	t.active = true
	t.gen++
	return t.gen
}

// Reschedule replaces the period of an active timeline. ok is false when
// nothing is armed.
func (t *Timeline) Reschedule(d time.Duration) (gen uint64, ok bool) {
	if !t.active {
		return 0, false
	}
	t.interval = d
	t.gen++
	return t.gen, true
}

// Cancel disarms the timeline. Pending fires become stale.
func (t *Timeline) Cancel() {
	t.active = false
	t.gen++
}

// Fire runs the callback for generation gen. Stale or cancelled fires are
// dropped. rearm reports whether the caller should arm gen for one more
// period; it is false when the callback itself rescheduled or cancelled.
func (t *Timeline) Fire(gen uint64) (rearm bool) {
	if !t.active || gen != t.gen {
		return false
	}
	t.fires++
	t.fn()
	return t.active && gen == t.gen
}

// Interval returns the current period.
func (t *Timeline) Interval() time.Duration { return t.interval }

// Active reports whether a callback is armed.
func (t *Timeline) Active() bool { return t.active }

// Generation returns the current arming number.
func (t *Timeline) Generation() uint64 { return t.gen }

// Fires returns how many callbacks have run.
func (t *Timeline) Fires() uint64 { return t.fires }
