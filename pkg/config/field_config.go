package config

import (
	"fmt"
	"image/color"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/decker502/verdant/pkg/field"
	"github.com/decker502/verdant/pkg/pointer"
)

// DefaultFieldConfigPath is the embedded location of the shipped configuration.
const DefaultFieldConfigPath = "data/field.yaml"

// FieldConfig is the hero scene configuration.
//
// File: data/field.yaml
type FieldConfig struct {
	// Field holds the simulation tunables.
	Field field.Params `yaml:"field"`

	// Pointer configures activity tracking.
	Pointer PointerConfig `yaml:"pointer"`

	// Window is the initial desktop window.
	Window WindowConfig `yaml:"window"`

	// Palette colors as "#rrggbb" strings.
	Palette PaletteConfig `yaml:"palette"`

	// Particles configures how particles are drawn.
	Particles ParticleLookConfig `yaml:"particles"`

	// Text is the hero copy.
	Text TextConfig `yaml:"text"`
}

// PointerConfig configures the pointer-activity debounce.
type PointerConfig struct {
	// QuietPeriodMs is how long the pointer must be still before it counts as idle.
	QuietPeriodMs int `yaml:"quietPeriodMs"`
}

// QuietPeriod returns the quiet period as a duration.
func (p PointerConfig) QuietPeriod() time.Duration {
	return time.Duration(p.QuietPeriodMs) * time.Millisecond
}

// WindowConfig is the initial window size and title.
type WindowConfig struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Title  string `yaml:"title"`
}

// PaletteConfig lists the scene colors.
type PaletteConfig struct {
	Gradient    []string `yaml:"gradient"`
	Herb        string   `yaml:"herb"`
	Spice       string   `yaml:"spice"`
	Accent      string   `yaml:"accent"`
	AccentHover string   `yaml:"accentHover"`
	Heading     string   `yaml:"heading"`
	Body        string   `yaml:"body"`
}

// ParticleLookConfig sizes particles and their scale transition.
type ParticleLookConfig struct {
	HerbSize          float64 `yaml:"herbSize"`
	SpiceSize         float64 `yaml:"spiceSize"`
	Alpha             float64 `yaml:"alpha"`
	ScaleTransitionMs int     `yaml:"scaleTransitionMs"`
}

// ScaleTransition returns the scale easing duration.
func (p ParticleLookConfig) ScaleTransition() time.Duration {
	return time.Duration(p.ScaleTransitionMs) * time.Millisecond
}

// TextConfig is the hero copy.
type TextConfig struct {
	TitleLines    []string `yaml:"titleLines"`
	TitleEmphasis string   `yaml:"titleEmphasis"`
	Subtitle      string   `yaml:"subtitle"`
	Button        string   `yaml:"button"`
}

// DefaultFieldConfig returns the configuration used when no file is given.
// It matches data/field.yaml.
func DefaultFieldConfig() *FieldConfig {
	return &FieldConfig{
		Field: field.DefaultParams(),
		Pointer: PointerConfig{
			QuietPeriodMs: int(pointer.DefaultQuietPeriod / time.Millisecond),
		},
		Window: WindowConfig{
			Width:  1280,
			Height: 800,
			Title:  "Verdant",
		},
		Palette: PaletteConfig{
			Gradient:    []string{"#f5e6d3", "#e8d5c0", "#8b9b7e"},
			Herb:        "#8b9b7e",
			Spice:       "#a67c52",
			Accent:      "#8b9b7e",
			AccentHover: "#7a8a6d",
			Heading:     "#1f2937",
			Body:        "#4b5563",
		},
		Particles: ParticleLookConfig{
			HerbSize:          50,
			SpiceSize:         40,
			Alpha:             0.35,
			ScaleTransitionMs: 500,
		},
		Text: TextConfig{
			TitleLines:    []string{"Where Nature Meets"},
			TitleEmphasis: "Culinary Art",
			Subtitle:      "Experience the harmony of seasonal ingredients transformed into unforgettable dining moments in our intimate space.",
			Button:        "Reserve Your Table",
		},
	}
}

// LoadFieldConfig reads and validates a YAML configuration file.
//
// Parameters:
//   - path: file path, e.g. "data/field.yaml"
//
// Returns:
//   - *FieldConfig: parsed configuration
//   - error: read, parse or validation failure
func LoadFieldConfig(path string) (*FieldConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read field config: %w", err)
	}
	return ParseFieldConfig(data)
}

// ParseFieldConfig parses YAML on top of DefaultFieldConfig, so omitted
// keys keep their defaults, and validates the result.
func ParseFieldConfig(data []byte) (*FieldConfig, error) {
	cfg := DefaultFieldConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse field config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid field config: %w", err)
	}
	return cfg, nil
}

// Validate checks the configuration.
func (c *FieldConfig) Validate() error {
	if err := c.Field.Validate(); err != nil {
		return err
	}
	if c.Pointer.QuietPeriodMs <= 0 {
		return fmt.Errorf("pointer.quietPeriodMs must be positive, got %d", c.Pointer.QuietPeriodMs)
	}
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("window size must be positive, got %dx%d", c.Window.Width, c.Window.Height)
	}
	if len(c.Palette.Gradient) < 2 {
		return fmt.Errorf("palette.gradient needs at least 2 stops, got %d", len(c.Palette.Gradient))
	}

	colors := append([]string{}, c.Palette.Gradient...)
	colors = append(colors, c.Palette.Herb, c.Palette.Spice, c.Palette.Accent,
		c.Palette.AccentHover, c.Palette.Heading, c.Palette.Body)
	for _, s := range colors {
		if _, err := ParseHexColor(s); err != nil {
			return fmt.Errorf("palette: %w", err)
		}
	}

	if c.Particles.HerbSize <= 0 || c.Particles.SpiceSize <= 0 {
		return fmt.Errorf("particle sizes must be positive, got herb=%.1f spice=%.1f",
			c.Particles.HerbSize, c.Particles.SpiceSize)
	}
	if c.Particles.Alpha < 0 || c.Particles.Alpha > 1 {
		return fmt.Errorf("particles.alpha must be in [0, 1], got %.2f", c.Particles.Alpha)
	}
	if c.Particles.ScaleTransitionMs < 0 {
		return fmt.Errorf("particles.scaleTransitionMs must not be negative, got %d", c.Particles.ScaleTransitionMs)
	}
	return nil
}

// ParseHexColor parses "#rgb" or "#rrggbb" into an opaque color.
func ParseHexColor(s string) (color.RGBA, error) {
	hex := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(hex) == 3 {
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	}
	if len(hex) != 6 {
		return color.RGBA{}, fmt.Errorf("invalid hex color %q", s)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("invalid hex color %q: %w", s, err)
	}
	return color.RGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 255}, nil
}

// HexColor is ParseHexColor for values already checked by Validate.
// Invalid input yields opaque black.
func HexColor(s string) color.RGBA {
	c, err := ParseHexColor(s)
	if err != nil {
		return color.RGBA{A: 255}
	}
	return c
}
