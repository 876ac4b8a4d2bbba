package config

import (
	"errors"
	"image/color"
	"io/fs"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

// TestShippedConfigMatchesDefaults keeps data/field.yaml and DefaultFieldConfig in sync.
func TestShippedConfigMatchesDefaults(t *testing.T) {
	cfg, err := LoadFieldConfig(filepath.Join("..", "..", DefaultFieldConfigPath))
	if err != nil {
		t.Fatalf("LoadFieldConfig() error: %v", err)
	}

	def := DefaultFieldConfig()
	if cfg.Field != def.Field {
		t.Errorf("field params: got %+v, want %+v", cfg.Field, def.Field)
	}
	if cfg.Pointer != def.Pointer {
		t.Errorf("pointer: got %+v, want %+v", cfg.Pointer, def.Pointer)
	}
	if cfg.Window != def.Window {
		t.Errorf("window: got %+v, want %+v", cfg.Window, def.Window)
	}
	if cfg.Particles != def.Particles {
		t.Errorf("particles: got %+v, want %+v", cfg.Particles, def.Particles)
	}
	if cfg.Text.Button != def.Text.Button || cfg.Text.TitleEmphasis != def.Text.TitleEmphasis {
		t.Errorf("text: got %+v, want %+v", cfg.Text, def.Text)
	}
}

func TestDefaultFieldConfigIsValid(t *testing.T) {
	if err := DefaultFieldConfig().Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
	if got := DefaultFieldConfig().Pointer.QuietPeriod(); got != 100*time.Millisecond {
		t.Errorf("QuietPeriod() = %v, want 100ms", got)
	}
}

func TestParseFieldConfigKeepsDefaults(t *testing.T) {
	cfg, err := ParseFieldConfig([]byte("field:\n  count: 30\n"))
	if err != nil {
		t.Fatalf("ParseFieldConfig() error: %v", err)
	}
	if cfg.Field.Count != 30 {
		t.Errorf("Count = %d, want 30", cfg.Field.Count)
	}
	if cfg.Field.Damping != 0.99 {
		t.Errorf("Damping = %v, want default 0.99", cfg.Field.Damping)
	}
	if cfg.Window.Width != 1280 {
		t.Errorf("Window.Width = %d, want default 1280", cfg.Window.Width)
	}
}

func TestParseFieldConfigRejectsInvalid(t *testing.T) {
	tests := []struct {
		name    string
		yaml    string
		wantErr string
	}{
		{"malformed yaml", "field: [", "failed to parse"},
		{"zero count", "field:\n  count: 0\n", "count must be positive"},
		{"damping too large", "field:\n  damping: 1.2\n", "damping"},
		{"zero quiet period", "pointer:\n  quietPeriodMs: 0\n", "quietPeriodMs"},
		{"bad window", "window:\n  width: -1\n", "window size"},
		{"one gradient stop", "palette:\n  gradient: [\"#ffffff\"]\n", "gradient"},
		{"bad color", "palette:\n  herb: \"green\"\n", "invalid hex color"},
		{"alpha out of range", "particles:\n  alpha: 2\n", "alpha"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseFieldConfig([]byte(tt.yaml))
			if err == nil {
				t.Fatal("expected error, got nil")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error %q does not mention %q", err, tt.wantErr)
			}
		})
	}
}

func TestLoadFieldConfigMissingFile(t *testing.T) {
	_, err := LoadFieldConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	if err == nil {
		t.Fatal("expected error for missing file")
	}
	if !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("expected not-exist error, got %v", err)
	}
}

func TestParseHexColor(t *testing.T) {
	tests := []struct {
		in      string
		want    color.RGBA
		wantErr bool
	}{
		{"#8b9b7e", color.RGBA{R: 0x8b, G: 0x9b, B: 0x7e, A: 255}, false},
		{"a67c52", color.RGBA{R: 0xa6, G: 0x7c, B: 0x52, A: 255}, false},
		{"#fff", color.RGBA{R: 255, G: 255, B: 255, A: 255}, false},
		{"#12345", color.RGBA{}, true},
		{"#zzzzzz", color.RGBA{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseHexColor(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseHexColor(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseHexColor(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}

	if got := HexColor("nope"); got != (color.RGBA{A: 255}) {
		t.Errorf("HexColor(invalid) = %v, want opaque black", got)
	}
}
