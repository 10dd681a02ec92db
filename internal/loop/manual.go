package loop

import "time"

// Manual is a scheduler advanced explicitly, one period at a time.
// It keeps a virtual clock so callers can see how long a run would have
// taken in real time.
type Manual struct {
	Timeline
	elapsed time.Duration
}

// NewManual returns an unarmed manual scheduler.
func NewManual() *Manual {
	return &Manual{}
}

// Schedule arms fn.
func (m *Manual) Schedule(d time.Duration, fn func()) {
	m.Timeline.Schedule(d, fn)
}

// Reschedule changes the period used from the next Advance.
func (m *Manual) Reschedule(d time.Duration) {
	m.Timeline.Reschedule(d)
}

// Advance lets one period pass and fires the callback. It returns false when
// nothing is armed.
func (m *Manual) Advance() bool {
	if !m.Active() {
		return false
	}
	m.elapsed += m.Interval()
	m.Fire(m.Generation())
	return true
}

// Run advances up to n periods and returns how many fired.
func (m *Manual) Run(n int) int {
	fired := 0
	for range n {
		if !m.Advance() {
			break
		}
		fired++
	}
	return fired
}

// Elapsed returns the virtual time that has passed.
func (m *Manual) Elapsed() time.Duration {
	return m.elapsed
}
