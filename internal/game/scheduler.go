package game

import "time"

// Scheduler is the periodic tick source driving a Session.
//
// Schedule arms fn to fire every interval, replacing anything armed before.
// Reschedule swaps the period: the very next fire uses the new interval and
// no fire is duplicated or lost across the swap. Cancel stops firing until
// the next Schedule.
type Scheduler interface {
	Schedule(interval time.Duration, fn func())
	Reschedule(interval time.Duration)
	Cancel()
}

type nopScheduler struct{}

func (nopScheduler) Schedule(time.Duration, func()) {}
func (nopScheduler) Reschedule(time.Duration)       {}
func (nopScheduler) Cancel()                        {}
