// Package pointer tracks the most recent pointer position and whether the
// pointer is currently moving.
package pointer

import (
	"sync"
	"time"

	"github.com/decker502/verdant/pkg/clock"
)

// Debouncer is a trailing debounce: the callback runs once the quiet period
// has elapsed since the last Trigger. At most one timer is pending at a time.
type Debouncer struct {
	mu    sync.Mutex
	clock clock.Clock
	quiet time.Duration
	timer clock.Timer
	gen   uint64
}

// NewDebouncer creates a debouncer with the given quiet period.
func NewDebouncer(c clock.Clock, quiet time.Duration) *Debouncer {
	return &Debouncer{
		clock: c,
		quiet: quiet,
	}
}

// Trigger revokes the pending timer, if any, and arms a new one that runs f
// after the quiet period.
func (d *Debouncer) Trigger(f func()) {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.stopLocked()
	d.gen++
	gen := d.gen
	d.timer = d.clock.AfterFunc(d.quiet, func() {
		d.mu.Lock()
		// A real timer can fire after Stop lost the race; the generation
		// tells us whether we are still the armed one.
		if gen != d.gen {
			d.mu.Unlock()
			return
		}
		d.timer = nil
		d.mu.Unlock()

		f()
	})
}

// Cancel revokes the pending timer. It is safe to call with nothing pending.
func (d *Debouncer) Cancel() {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.stopLocked()
	d.gen++
}

// Pending reports whether a timer is armed.
func (d *Debouncer) Pending() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.timer != nil
}

// Quiet returns the quiet period.
func (d *Debouncer) Quiet() time.Duration {
	return d.quiet
}

func (d *Debouncer) stopLocked() {
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
}
