package pointer

import (
	"sync"
	"time"

	"github.com/decker502/verdant/pkg/clock"
)

// DefaultQuietPeriod is how long the pointer must stay still before the
// target is considered inactive.
const DefaultQuietPeriod = 100 * time.Millisecond

// Target is the last observed pointer position in pixels plus its activity flag.
type Target struct {
	X, Y   float64
	Active bool
}

// Tracker owns the pointer target. Move marks it active and the debouncer
// flips it back once the pointer has been still for the quiet period.
type Tracker struct {
	mu       sync.Mutex
	target   Target
	moves    uint64
	debounce *Debouncer
}

// NewTracker creates a tracker. A non-positive quiet period falls back to
// DefaultQuietPeriod.
func NewTracker(c clock.Clock, quiet time.Duration) *Tracker {
	if quiet <= 0 {
		quiet = DefaultQuietPeriod
	}
	return &Tracker{
		debounce: NewDebouncer(c, quiet),
	}
}

// Move records a pointer-move event at (x, y).
func (t *Tracker) Move(x, y float64) {
	t.mu.Lock()
	t.target = Target{X: x, Y: y, Active: true}
	t.moves++
	seq := t.moves
	t.mu.Unlock()

	t.debounce.Trigger(func() { t.settle(seq) })
}

// settle clears the activity flag unless a newer move has happened since
// the timer was armed.
func (t *Tracker) settle(seq uint64) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.moves == seq {
		t.target.Active = false
	}
}

// Target returns a snapshot of the pointer target.
func (t *Tracker) Target() Target {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.target
}

// Close revokes the pending debounce timer and marks the target inactive.
// The last known position is kept.
func (t *Tracker) Close() {
	t.debounce.Cancel()

	t.mu.Lock()
	t.target.Active = false
	t.moves++
	t.mu.Unlock()
}
