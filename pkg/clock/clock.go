// Package clock abstracts wall time so timers can be driven by a synthetic
// clock in tests.
package clock

import "time"

// Timer is a handle to a scheduled callback.
type Timer interface {
	// Stop revokes the callback. It reports whether the call stopped the
	// timer; false means it already fired or was stopped.
	Stop() bool
}

// Clock schedules callbacks against some notion of time.
type Clock interface {
	Now() time.Time
	AfterFunc(d time.Duration, f func()) Timer
}

type realClock struct{}

// Real returns a Clock backed by the time package.
// Callbacks run on their own goroutine.
func Real() Clock {
	return realClock{}
}

func (realClock) Now() time.Time {
	return time.Now()
}

func (realClock) AfterFunc(d time.Duration, f func()) Timer {
	return time.AfterFunc(d, f)
}
