package field

import (
	"errors"
	"fmt"
)

// ErrInvalidParams is wrapped by every validation failure in Params.Validate.
var ErrInvalidParams = errors.New("invalid field params")

// Params holds the simulation tunables. The zero value is not usable; start
// from DefaultParams.
type Params struct {
	// Count is the fixed number of particles.
	Count int `yaml:"count"`
	// Attraction is the velocity added per tick toward an active pointer.
	Attraction float64 `yaml:"attraction"`
	// AttractThreshold is the distance below which no pull is applied.
	AttractThreshold float64 `yaml:"attractThreshold"`
	// Damping multiplies the velocity every tick.
	Damping float64 `yaml:"damping"`
	// DriftChance is the per-tick probability of a random nudge while idle.
	DriftChance float64 `yaml:"driftChance"`
	// DriftAmplitude bounds each nudge component to [-a, a].
	DriftAmplitude float64 `yaml:"driftAmplitude"`
	// Restitution scales the reflected velocity on a wall hit.
	Restitution float64 `yaml:"restitution"`
	// InitialSpeed bounds each initial velocity component to [-s, s).
	InitialSpeed float64 `yaml:"initialSpeed"`
}

// DefaultParams returns the tuning the hero background ships with.
func DefaultParams() Params {
	return Params{
		Count:            12,
		Attraction:       0.01,
		AttractThreshold: 1,
		Damping:          0.99,
		DriftChance:      0.02,
		DriftAmplitude:   0.01,
		Restitution:      0.5,
		InitialSpeed:     0.01,
	}
}

// Validate checks every tunable is in range.
func (p Params) Validate() error {
	switch {
	case p.Count <= 0:
		return fmt.Errorf("%w: count must be positive, got %d", ErrInvalidParams, p.Count)
	case p.Attraction < 0:
		return fmt.Errorf("%w: attraction must not be negative, got %v", ErrInvalidParams, p.Attraction)
	case p.AttractThreshold < 0:
		return fmt.Errorf("%w: attractThreshold must not be negative, got %v", ErrInvalidParams, p.AttractThreshold)
	case p.Damping < 0 || p.Damping > 1:
		return fmt.Errorf("%w: damping must be in [0, 1], got %v", ErrInvalidParams, p.Damping)
	case p.DriftChance < 0 || p.DriftChance > 1:
		return fmt.Errorf("%w: driftChance must be in [0, 1], got %v", ErrInvalidParams, p.DriftChance)
	case p.DriftAmplitude < 0:
		return fmt.Errorf("%w: driftAmplitude must not be negative, got %v", ErrInvalidParams, p.DriftAmplitude)
	case p.Restitution < 0 || p.Restitution > 1:
		return fmt.Errorf("%w: restitution must be in [0, 1], got %v", ErrInvalidParams, p.Restitution)
	case p.InitialSpeed < 0:
		return fmt.Errorf("%w: initialSpeed must not be negative, got %v", ErrInvalidParams, p.InitialSpeed)
	}
	return nil
}
