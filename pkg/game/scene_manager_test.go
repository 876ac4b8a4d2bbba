package game

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
)

// MockScene is a mock implementation of the Scene interface for testing.
type MockScene struct {
	updateCalled bool
	drawCalled   bool
	deltaTime    float64
	disposed     int
	width        int
	height       int
}

// Update records that Update was called and stores the deltaTime.
func (m *MockScene) Update(deltaTime float64) {
	m.updateCalled = true
	m.deltaTime = deltaTime
}

// Draw records that Draw was called.
func (m *MockScene) Draw(screen *ebiten.Image) {
	m.drawCalled = true
}

func (m *MockScene) Dispose() {
	m.disposed++
}

func (m *MockScene) SetViewport(width, height int) {
	m.width, m.height = width, height
}

// plainScene implements only Scene.
type plainScene struct{}

func (plainScene) Update(float64) {}
func (plainScene) Draw(*ebiten.Image) {}

// TestNewSceneManager verifies that NewSceneManager creates a valid instance.
func TestNewSceneManager(t *testing.T) {
	sm := NewSceneManager()
	if sm == nil {
		t.Fatal("NewSceneManager() returned nil")
	}
	if sm.GetCurrentScene() != nil {
		t.Error("Expected currentScene to be nil initially")
	}
}

// TestSceneManagerSwitchTo verifies that SwitchTo changes the active scene
// and disposes the previous one.
func TestSceneManagerSwitchTo(t *testing.T) {
	sm := NewSceneManager()
	first := &MockScene{}
	second := &MockScene{}

	sm.SwitchTo(first)
	if sm.GetCurrentScene() != first {
		t.Fatal("SwitchTo did not set the current scene correctly")
	}

	sm.SwitchTo(first)
	if first.disposed != 0 {
		t.Errorf("switching to the active scene disposed it %d times", first.disposed)
	}

	sm.SwitchTo(second)
	if first.disposed != 1 {
		t.Errorf("previous scene disposed %d times, want 1", first.disposed)
	}
	if second.disposed != 0 {
		t.Error("new scene must not be disposed")
	}
}

// TestSceneManagerUpdateDraw verifies that Update and Draw reach the current scene.
func TestSceneManagerUpdateDraw(t *testing.T) {
	sm := NewSceneManager()

	// No scene: must not panic.
	sm.Update(0.016)
	sm.Draw(nil)

	mockScene := &MockScene{}
	sm.SwitchTo(mockScene)

	sm.Update(0.016)
	if !mockScene.updateCalled {
		t.Error("Scene's Update method was not called")
	}
	if mockScene.deltaTime != 0.016 {
		t.Errorf("Expected deltaTime 0.016, got %f", mockScene.deltaTime)
	}

	sm.Draw(nil)
	if !mockScene.drawCalled {
		t.Error("Scene's Draw method was not called")
	}
}

func TestSceneManagerViewport(t *testing.T) {
	sm := NewSceneManager()
	sm.SetViewport(1280, 800)

	scene := &MockScene{}
	sm.SwitchTo(scene)
	if scene.width != 1280 || scene.height != 800 {
		t.Errorf("new scene viewport = %dx%d, want 1280x800", scene.width, scene.height)
	}

	sm.SetViewport(640, 480)
	if scene.width != 640 || scene.height != 480 {
		t.Errorf("resized viewport = %dx%d, want 640x480", scene.width, scene.height)
	}

	// Scenes without the optional interfaces are fine too.
	sm.SwitchTo(plainScene{})
	sm.SetViewport(100, 100)
	sm.Dispose()
}

func TestSceneManagerDispose(t *testing.T) {
	sm := NewSceneManager()
	scene := &MockScene{}
	sm.SwitchTo(scene)

	sm.Dispose()
	if scene.disposed != 1 {
		t.Errorf("Dispose() disposed scene %d times, want 1", scene.disposed)
	}
	if sm.GetCurrentScene() != nil {
		t.Error("Dispose() should clear the current scene")
	}

	sm.Dispose()
	if scene.disposed != 1 {
		t.Error("second Dispose() must be a no-op")
	}
}
