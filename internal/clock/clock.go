// Package clock provides the small time abstraction the debouncer needs.
//
// Production code uses Real(). Tests use Fake(), whose timers only fire
// when Advance moves time past their deadline, so debounce windows can be
// exercised without sleeping.
package clock

import "time"

// Clock is the subset of the time package used by scheduled tasks.
type Clock interface {
	// Now returns the current time.
	Now() time.Time

	// AfterFunc calls f once d has elapsed. The returned Timer cancels
	// the pending call.
	AfterFunc(d time.Duration, f func()) Timer
}

// Timer is a pending AfterFunc call.
type Timer interface {
	// Stop prevents the call from running. It reports false when the
	// call already ran or was already stopped.
	Stop() bool
}

// Real returns a Clock backed by the time package.
func Real() Clock { return realClock{} }

type realClock struct{}

func (realClock) Now() time.Time { return time.Now() }

func (realClock) AfterFunc(d time.Duration, f func()) Timer {
	return time.AfterFunc(d, f)
}
