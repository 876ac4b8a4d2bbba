package field

import "math"

// Bounds of the normalized percentage space on both axes.
const (
	MinCoord = 0.0
	MaxCoord = 100.0
)

// Kind distinguishes the two particle looks used by the hero background.
type Kind int

const (
	// Herb particles sit at even indices.
	Herb Kind = iota
	// Spice particles sit at odd indices.
	Spice
)

// KindOf returns the kind of the particle at index i.
func KindOf(i int) Kind {
	if i%2 == 0 {
		return Herb
	}
	return Spice
}

func (k Kind) String() string {
	switch k {
	case Herb:
		return "herb"
	case Spice:
		return "spice"
	default:
		return "unknown"
	}
}

// Particle is a point in percentage space with a per-tick velocity.
type Particle struct {
	X, Y   float64
	VX, VY float64
}

// Scale is the visual intensity derived from the velocity:
// 0.5 + (|vx| + |vy|) * 5.
func (p Particle) Scale() float64 {
	return 0.5 + (math.Abs(p.VX)+math.Abs(p.VY))*5
}

// Speed is the Euclidean velocity magnitude.
func (p Particle) Speed() float64 {
	return math.Hypot(p.VX, p.VY)
}

// clampAxis keeps pos inside [MinCoord, MaxCoord], reflecting vel with the
// given restitution when it hits a wall.
func clampAxis(pos, vel, restitution float64) (float64, float64) {
	if pos < MinCoord {
		return MinCoord, vel * -restitution
	}
	if pos > MaxCoord {
		return MaxCoord, vel * -restitution
	}
	return pos, vel
}
