package game

import (
	"fmt"
	"log"

	"github.com/quasilyte/gdata/v2"
	"gopkg.in/yaml.v3"
)

// Settings holds the user's display preferences.
// Only preferences are persisted; simulation state never is.
type Settings struct {
	// Fullscreen starts the window in fullscreen mode.
	Fullscreen bool `yaml:"fullscreen"`
	// CustomCursor replaces the system cursor with the ring cursor.
	CustomCursor bool `yaml:"customCursor"`
	// Preset is the tuning preset name, empty for the shipped tuning.
	Preset string `yaml:"preset"`
}

// DefaultSettings returns the default preferences.
func DefaultSettings() *Settings {
	return &Settings{
		Fullscreen:   false,
		CustomCursor: true,
	}
}

// SettingsManager loads, holds and saves preferences.
type SettingsManager struct {
	gdataManager *gdata.Manager // may be nil: in-memory only
	settings     *Settings
}

// Storage keys.
const (
	settingsObject   = "settings"
	settingsProperty = "display"
)

// NewSettingsManager creates a settings manager and loads saved preferences.
//
// gdataManager may be nil, in which case nothing is persisted. A failed
// load is logged and the defaults are used.
func NewSettingsManager(gdataManager *gdata.Manager) *SettingsManager {
	sm := &SettingsManager{
		gdataManager: gdataManager,
		settings:     DefaultSettings(),
	}

	if err := sm.Load(); err != nil {
		log.Printf("[SettingsManager] Warning: Failed to load settings: %v (using defaults)", err)
	}

	return sm
}

// Load reads preferences from gdata. Missing data yields the defaults.
func (sm *SettingsManager) Load() error {
	if sm.gdataManager == nil {
		sm.settings = DefaultSettings()
		return nil
	}

	if !sm.gdataManager.ObjectPropExists(settingsObject, settingsProperty) {
		sm.settings = DefaultSettings()
		return nil
	}

	data, err := sm.gdataManager.LoadObjectProp(settingsObject, settingsProperty)
	if err != nil {
		sm.settings = DefaultSettings()
		return fmt.Errorf("failed to load settings: %w", err)
	}

	loaded := DefaultSettings()
	if err := yaml.Unmarshal(data, loaded); err != nil {
		sm.settings = DefaultSettings()
		return fmt.Errorf("failed to unmarshal settings: %w", err)
	}

	sm.settings = loaded
	log.Printf("[SettingsManager] Settings loaded successfully")
	return nil
}

// Save writes preferences to gdata. Without gdata it is a no-op.
func (sm *SettingsManager) Save() error {
	if sm.gdataManager == nil {
		return nil
	}

	data, err := yaml.Marshal(sm.settings)
	if err != nil {
		return fmt.Errorf("failed to marshal settings: %w", err)
	}

	if err := sm.gdataManager.SaveObjectProp(settingsObject, settingsProperty, data); err != nil {
		return fmt.Errorf("failed to save settings: %w", err)
	}

	log.Printf("[SettingsManager] Settings saved successfully")
	return nil
}

// GetSettings returns the current preferences.
func (sm *SettingsManager) GetSettings() *Settings {
	return sm.settings
}

// SetFullscreen sets the fullscreen preference. Call Save to persist.
func (sm *SettingsManager) SetFullscreen(enabled bool) {
	sm.settings.Fullscreen = enabled
}

// SetCustomCursor sets the ring-cursor preference. Call Save to persist.
func (sm *SettingsManager) SetCustomCursor(enabled bool) {
	sm.settings.CustomCursor = enabled
}

// SetPreset sets the tuning preset. Call Save to persist.
func (sm *SettingsManager) SetPreset(name string) {
	sm.settings.Preset = name
}
