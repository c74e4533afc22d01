// Package debounce coalesces bursts of calls into a single deferred call.
package debounce

import (
	"sync"
	"time"

	"travelshowcase/internal/clock"
)

// DefaultWait is the quiet window used when none is configured.
const DefaultWait = 220 * time.Millisecond

// Debouncer runs only the most recently triggered task, once no new task
// has been triggered for the wait duration. Each Trigger cancels and
// replaces the pending task.
type Debouncer struct {
	clock clock.Clock
	wait  time.Duration

	mu         sync.Mutex
	timer      clock.Timer
	pending    func()
	generation uint64
}

// Option configures a Debouncer.
type Option func(*Debouncer)

// WithClock sets the clock used to schedule tasks. Defaults to clock.Real().
func WithClock(c clock.Clock) Option {
	return func(d *Debouncer) {
		d.clock = c
	}
}

// New creates a Debouncer with the given quiet window. A non-positive
// wait runs every task immediately.
func New(wait time.Duration, opts ...Option) *Debouncer {
	d := &Debouncer{
		clock: clock.Real(),
		wait:  wait,
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Trigger schedules fn, replacing any task that has not run yet.
func (d *Debouncer) Trigger(fn func()) {
	if d.wait <= 0 {
		d.Cancel()
		fn()
		return
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	d.generation++
	generation := d.generation
	d.pending = fn
	if d.timer != nil {
		d.timer.Stop()
	}
	d.timer = d.clock.AfterFunc(d.wait, func() { d.fire(generation) })
}

// Flush runs the pending task now, if any, and reports whether one ran.
func (d *Debouncer) Flush() bool {
	fn := d.take()
	if fn == nil {
		return false
	}
	fn()
	return true
}

// Cancel drops the pending task without running it and reports whether
// one was pending.
func (d *Debouncer) Cancel() bool {
	return d.take() != nil
}

// Pending reports whether a task is waiting for its quiet window.
func (d *Debouncer) Pending() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.pending != nil
}

func (d *Debouncer) take() func() {
	d.mu.Lock()
	defer d.mu.Unlock()

	fn := d.pending
	d.pending = nil
	d.generation++
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
	return fn
}

// fire runs the pending task if no newer Trigger, Flush or Cancel has
// happened since generation was scheduled. A timer whose Stop lost the
// race with its own expiry ends up here with a stale generation.
func (d *Debouncer) fire(generation uint64) {
	d.mu.Lock()
	if generation != d.generation || d.pending == nil {
		d.mu.Unlock()
		return
	}
	fn := d.pending
	d.pending = nil
	d.timer = nil
	d.mu.Unlock()

	fn()
}
