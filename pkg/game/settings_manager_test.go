package game

import (
	"os"
	"testing"

	"github.com/quasilyte/gdata/v2"
)

// openTestGdata creates a gdata manager rooted in a temporary HOME.
func openTestGdata(t *testing.T, appName string) *gdata.Manager {
	t.Helper()

	tempDir := t.TempDir()
	originalHome := os.Getenv("HOME")
	os.Setenv("HOME", tempDir)
	t.Cleanup(func() { os.Setenv("HOME", originalHome) })

	gdataManager, err := gdata.Open(gdata.Config{
		AppName: appName,
	})
	if err != nil {
		t.Fatalf("Failed to create gdata manager: %v", err)
	}
	return gdataManager
}

// TestDefaultSettings 测试 DefaultSettings() 返回正确的默认值
func TestDefaultSettings(t *testing.T) {
	settings := DefaultSettings()

	if settings == nil {
		t.Fatal("DefaultSettings() returned nil")
	}
	if settings.Fullscreen {
		t.Error("Fullscreen: got true, want false")
	}
	if !settings.CustomCursor {
		t.Error("CustomCursor: got false, want true")
	}
	if settings.Preset != "" {
		t.Errorf("Preset: got %q, want empty", settings.Preset)
	}
}

// TestNewSettingsManager 测试正常初始化 SettingsManager
func TestNewSettingsManager(t *testing.T) {
	sm := NewSettingsManager(openTestGdata(t, "test_verdant_settings"))

	settings := sm.GetSettings()
	if settings == nil {
		t.Fatal("GetSettings() returned nil after initialization")
	}
	if !settings.CustomCursor {
		t.Error("Initial CustomCursor: got false, want true")
	}
}

// TestNewSettingsManagerNilGdata 测试 gdataManager 为 nil 时的降级场景
func TestNewSettingsManagerNilGdata(t *testing.T) {
	sm := NewSettingsManager(nil)

	sm.SetFullscreen(true)
	if err := sm.Save(); err != nil {
		t.Errorf("Save() in degraded mode: got %v, want nil", err)
	}
	if !sm.GetSettings().Fullscreen {
		t.Error("in-memory setting lost in degraded mode")
	}

	if err := sm.Load(); err != nil {
		t.Errorf("Load() in degraded mode: got %v, want nil", err)
	}
	if sm.GetSettings().Fullscreen {
		t.Error("Load() in degraded mode should reset to defaults")
	}
}

// TestSettingsLoadSave 测试 Load() 和 Save() 功能
func TestSettingsLoadSave(t *testing.T) {
	gdataManager := openTestGdata(t, "test_verdant_load_save")

	sm1 := NewSettingsManager(gdataManager)
	sm1.SetFullscreen(true)
	sm1.SetCustomCursor(false)
	sm1.SetPreset("calm")

	if err := sm1.Save(); err != nil {
		t.Fatalf("Save() error: %v", err)
	}

	sm2 := NewSettingsManager(gdataManager)
	settings := sm2.GetSettings()

	if !settings.Fullscreen {
		t.Error("Loaded Fullscreen: got false, want true")
	}
	if settings.CustomCursor {
		t.Error("Loaded CustomCursor: got true, want false")
	}
	if settings.Preset != "calm" {
		t.Errorf("Loaded Preset: got %q, want %q", settings.Preset, "calm")
	}
}

// TestSettingsLoadCorrupted 测试损坏数据回退到默认设置
func TestSettingsLoadCorrupted(t *testing.T) {
	gdataManager := openTestGdata(t, "test_verdant_corrupted")

	if err := gdataManager.SaveObjectProp(settingsObject, settingsProperty, []byte("fullscreen: [")); err != nil {
		t.Fatalf("SaveObjectProp() error: %v", err)
	}

	sm := NewSettingsManager(gdataManager)
	if err := sm.Load(); err == nil {
		t.Error("Load() on corrupted data: expected error")
	}
	if !sm.GetSettings().CustomCursor {
		t.Error("corrupted data should fall back to defaults")
	}
}
