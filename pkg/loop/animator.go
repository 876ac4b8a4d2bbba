// Package loop drives the particle field from a frame signal.
//
// An Animator is owned by whatever owns the view. Frames only advance the
// field between Start and Stop; after Stop no tick mutates state and the
// pointer debounce timer is revoked.
package loop

import (
	"context"
	"errors"
	"log"
	"sync"
	"time"

	"github.com/decker502/verdant/pkg/field"
	"github.com/decker502/verdant/pkg/pointer"
)

// ErrNilField is returned by New when no field is supplied.
var ErrNilField = errors.New("loop: nil field")

// Animator couples a field with its pointer tracker and viewport.
type Animator struct {
	mu       sync.Mutex
	field    *field.Field
	tracker  *pointer.Tracker
	viewport field.Viewport
	running  bool
	ticks    uint64
}

// New creates a stopped animator.
func New(f *field.Field, tracker *pointer.Tracker) (*Animator, error) {
	if f == nil {
		return nil, ErrNilField
	}
	if tracker == nil {
		return nil, errors.New("loop: nil pointer tracker")
	}
	return &Animator{
		field:   f,
		tracker: tracker,
	}, nil
}

// Start enables ticking. Calling Start on a running animator is a no-op.
func (a *Animator) Start() {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.running {
		return
	}
	a.running = true
	log.Printf("[Animator] started with %d particles", a.field.Len())
}

// Stop disables ticking and revokes the pointer debounce timer.
func (a *Animator) Stop() {
	a.mu.Lock()
	wasRunning := a.running
	a.running = false
	ticks := a.ticks
	a.mu.Unlock()

	a.tracker.Close()
	if wasRunning {
		log.Printf("[Animator] stopped after %d ticks", ticks)
	}
}

// Running reports whether the animator accepts ticks.
func (a *Animator) Running() bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.running
}

// SetViewport records the host surface size used to normalize pointer positions.
func (a *Animator) SetViewport(width, height float64) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.viewport = field.Viewport{Width: width, Height: height}
}

// Viewport returns the current viewport.
func (a *Animator) Viewport() field.Viewport {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.viewport
}

// Move forwards a pointer-move event to the tracker.
func (a *Animator) Move(x, y float64) {
	a.tracker.Move(x, y)
}

// Target returns the tracker's current pointer target.
func (a *Animator) Target() pointer.Target {
	return a.tracker.Target()
}

// Tick advances the field by one step. It returns false, leaving the field
// untouched, when the animator is not running.
func (a *Animator) Tick() bool {
	target := a.tracker.Target()

	a.mu.Lock()
	defer a.mu.Unlock()
	if !a.running {
		return false
	}
	a.field.Step(target, a.viewport)
	a.ticks++
	return true
}

// Ticks returns the number of completed ticks.
func (a *Animator) Ticks() uint64 {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.ticks
}

// Snapshot returns a copy of the particles for rendering.
func (a *Animator) Snapshot() []field.Particle {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.field.Particles()
}

// Run starts the animator and ticks once per value received on frames until
// ctx is cancelled or frames is closed. The animator is stopped on return.
// Run returns ctx.Err() on cancellation and nil when frames closes.
func (a *Animator) Run(ctx context.Context, frames <-chan time.Time) error {
	a.Start()
	defer a.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case _, ok := <-frames:
			if !ok {
				return nil
			}
			// A frame and a cancellation can be ready together; cancellation wins.
			if err := ctx.Err(); err != nil {
				return err
			}
			a.Tick()
		}
	}
}
