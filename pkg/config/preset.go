package config

import (
	"fmt"
	"path"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/decker502/verdant/pkg/embedded"
)

// PresetDir is the embedded directory holding tuning presets.
// A preset is a partial field.yaml overlaid on the shipped configuration.
const PresetDir = "data/presets"

// LoadEmbeddedFieldConfig parses a configuration file from the embedded data.
func LoadEmbeddedFieldConfig(p string) (*FieldConfig, error) {
	data, err := embedded.ReadFile(p)
	if err != nil {
		return nil, fmt.Errorf("failed to read embedded field config: %w", err)
	}
	return ParseFieldConfig(data)
}

// ListPresets returns the names of the embedded presets, sorted.
func ListPresets() ([]string, error) {
	entries, err := embedded.ReadDir(PresetDir)
	if err != nil {
		return nil, fmt.Errorf("failed to list presets: %w", err)
	}

	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".yaml") {
			continue
		}
		names = append(names, strings.TrimSuffix(e.Name(), ".yaml"))
	}
	sort.Strings(names)
	return names, nil
}

// ApplyPreset overlays the named embedded preset on cfg and validates the result.
// cfg is left untouched on error.
func ApplyPreset(cfg *FieldConfig, name string) (*FieldConfig, error) {
	data, err := embedded.ReadFile(path.Join(PresetDir, name+".yaml"))
	if err != nil {
		return nil, fmt.Errorf("unknown preset %q: %w", name, err)
	}

	merged := *cfg
	merged.Palette.Gradient = append([]string(nil), cfg.Palette.Gradient...)
	merged.Text.TitleLines = append([]string(nil), cfg.Text.TitleLines...)
	if err := yaml.Unmarshal(data, &merged); err != nil {
		return nil, fmt.Errorf("failed to parse preset %q: %w", name, err)
	}
	if err := merged.Validate(); err != nil {
		return nil, fmt.Errorf("invalid preset %q: %w", name, err)
	}
	return &merged, nil
}
