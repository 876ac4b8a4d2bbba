package field

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParticleScale(t *testing.T) {
	tests := []struct {
		name string
		p    Particle
		want float64
	}{
		{"at rest", Particle{}, 0.5},
		{"diagonal", Particle{VX: 0.1, VY: 0.1}, 1.5},
		{"negative components", Particle{VX: -0.1, VY: 0.1}, 1.5},
		{"single axis", Particle{VY: -0.04}, 0.7},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, tt.p.Scale(), 1e-12)
		})
	}
}

func TestKindOf(t *testing.T) {
	assert.Equal(t, Herb, KindOf(0))
	assert.Equal(t, Spice, KindOf(1))
	assert.Equal(t, Herb, KindOf(10))
	assert.Equal(t, "spice", KindOf(3).String())
}

func TestClampAxis(t *testing.T) {
	pos, vel := clampAxis(100.5, 1, 0.5)
	assert.Equal(t, 100.0, pos)
	assert.Equal(t, -0.5, vel)

	pos, vel = clampAxis(-0.25, -0.2, 0.5)
	assert.Equal(t, 0.0, pos)
	assert.InDelta(t, 0.1, vel, 1e-12)

	pos, vel = clampAxis(100, 0.3, 0.5)
	assert.Equal(t, 100.0, pos, "the wall itself is inside")
	assert.Equal(t, 0.3, vel)
}
