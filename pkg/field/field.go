// Package field simulates the floating particles behind the hero section.
//
// Positions live in a normalized percentage space [0,100]x[0,100] so the
// simulation is independent of the window size. One call to Step advances
// the field by one animation frame; nothing is scaled by elapsed time.
//
// A Field is not safe for concurrent use.
package field

import (
	"fmt"
	"math"

	"github.com/decker502/verdant/pkg/pointer"
)

// Source supplies uniform random numbers in [0, 1). *rand.Rand satisfies it.
type Source interface {
	Float64() float64
}

// Viewport is the host surface size in pixels.
type Viewport struct {
	Width, Height float64
}

// Valid reports whether the viewport can be used to normalize pointer positions.
func (v Viewport) Valid() bool {
	return v.Width > 0 && v.Height > 0
}

// Normalize converts a pixel position to percentage space.
func (v Viewport) Normalize(x, y float64) (float64, float64) {
	return x / v.Width * 100, y / v.Height * 100
}

// Field is a fixed-size set of particles.
type Field struct {
	params    Params
	rng       Source
	particles []Particle
}

// New creates a field of params.Count particles at random positions with a
// small random velocity.
func New(params Params, rng Source) (*Field, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}
	if rng == nil {
		return nil, fmt.Errorf("%w: nil random source", ErrInvalidParams)
	}

	f := &Field{
		params:    params,
		rng:       rng,
		particles: make([]Particle, params.Count),
	}
	for i := range f.particles {
		f.particles[i] = Particle{
			X:  rng.Float64() * MaxCoord,
			Y:  rng.Float64() * MaxCoord,
			VX: (rng.Float64() - 0.5) * 2 * params.InitialSpeed,
			VY: (rng.Float64() - 0.5) * 2 * params.InitialSpeed,
		}
	}
	return f, nil
}

// FromParticles builds a field with a caller-supplied initial state.
// Positions are clamped into bounds.
func FromParticles(params Params, rng Source, particles []Particle) (*Field, error) {
	params.Count = len(particles)
	if err := params.Validate(); err != nil {
		return nil, err
	}
	if rng == nil {
		return nil, fmt.Errorf("%w: nil random source", ErrInvalidParams)
	}

	f := &Field{
		params:    params,
		rng:       rng,
		particles: make([]Particle, len(particles)),
	}
	for i, p := range particles {
		p.X = math.Min(math.Max(p.X, MinCoord), MaxCoord)
		p.Y = math.Min(math.Max(p.Y, MinCoord), MaxCoord)
		f.particles[i] = p
	}
	return f, nil
}

// Params returns the tunables the field was built with.
func (f *Field) Params() Params {
	return f.params
}

// Len returns the particle count.
func (f *Field) Len() int {
	return len(f.particles)
}

// Particles returns a copy of the particles in index order.
func (f *Field) Particles() []Particle {
	out := make([]Particle, len(f.particles))
	copy(out, f.particles)
	return out
}

// Step advances every particle by one tick.
func (f *Field) Step(target pointer.Target, vp Viewport) {
	attract := target.Active && vp.Valid()
	var mx, my float64
	if attract {
		mx, my = vp.Normalize(target.X, target.Y)
	}

	for i := range f.particles {
		p := &f.particles[i]

		if attract {
			f.pull(p, mx, my)
		} else if !target.Active {
			f.drift(p)
		}

		p.VX *= f.params.Damping
		p.VY *= f.params.Damping

		p.X += p.VX
		p.Y += p.VY

		p.X, p.VX = clampAxis(p.X, p.VX, f.params.Restitution)
		p.Y, p.VY = clampAxis(p.Y, p.VY, f.params.Restitution)
	}
}

// pull nudges p toward (mx, my) with a constant-magnitude push.
func (f *Field) pull(p *Particle, mx, my float64) {
	dx := mx - p.X
	dy := my - p.Y
	dist := math.Hypot(dx, dy)
	if dist > f.params.AttractThreshold {
		p.VX += dx / dist * f.params.Attraction
		p.VY += dy / dist * f.params.Attraction
	}
}

// drift occasionally adds a small random kick.
func (f *Field) drift(p *Particle) {
	if f.rng.Float64() >= f.params.DriftChance {
		return
	}
	amp := f.params.DriftAmplitude
	p.VX += (f.rng.Float64() - 0.5) * 2 * amp
	p.VY += (f.rng.Float64() - 0.5) * 2 * amp
}
