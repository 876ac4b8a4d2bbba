package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/decker502/verdant/pkg/field"
)

// point is a pixel position.
type point struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

type particleReport struct {
	Index int     `yaml:"index"`
	Kind  string  `yaml:"kind"`
	X     float64 `yaml:"x"`
	Y     float64 `yaml:"y"`
	VX    float64 `yaml:"vx"`
	VY    float64 `yaml:"vy"`
	Speed float64 `yaml:"speed"`
	Scale float64 `yaml:"scale"`
}

type report struct {
	Seed      int64            `yaml:"seed"`
	Ticks     uint64           `yaml:"ticks"`
	Viewport  field.Viewport   `yaml:"viewport"`
	Pointer   *point           `yaml:"pointer,omitempty"`
	MeanSpeed float64          `yaml:"meanSpeed"`
	MaxScale  float64          `yaml:"maxScale"`
	Particles []particleReport `yaml:"particles"`
}

// parsePoint parses "x,y". An empty string means no pointer.
func parsePoint(s string) (*point, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	parts := strings.Split(s, ",")
	if len(parts) != 2 {
		return nil, fmt.Errorf("invalid pointer %q: want x,y", s)
	}
	x, err := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	if err != nil {
		return nil, fmt.Errorf("invalid pointer x: %w", err)
	}
	y, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if err != nil {
		return nil, fmt.Errorf("invalid pointer y: %w", err)
	}
	return &point{X: x, Y: y}, nil
}

func buildReport(seed int64, ticks uint64, vp field.Viewport, hold *point, ps []field.Particle) report {
	r := report{
		Seed:      seed,
		Ticks:     ticks,
		Viewport:  vp,
		Pointer:   hold,
		Particles: make([]particleReport, 0, len(ps)),
	}

	var total float64
	for i, p := range ps {
		pr := particleReport{
			Index: i,
			Kind:  field.KindOf(i).String(),
			X:     p.X,
			Y:     p.Y,
			VX:    p.VX,
			VY:    p.VY,
			Speed: p.Speed(),
			Scale: p.Scale(),
		}
		total += pr.Speed
		if pr.Scale > r.MaxScale {
			r.MaxScale = pr.Scale
		}
		r.Particles = append(r.Particles, pr)
	}
	if len(ps) > 0 {
		r.MeanSpeed = total / float64(len(ps))
	}
	return r
}

func writeReport(w io.Writer, r report) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(r); err != nil {
		return fmt.Errorf("failed to encode report: %w", err)
	}
	return enc.Close()
}
