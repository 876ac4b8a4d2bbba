package game

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2"
)

// SceneManager controls which scene is active.
// It ensures only one scene's Update and Draw methods are called at any given time.
type SceneManager struct {
	currentScene Scene
	width        int
	height       int
}

// NewSceneManager creates and returns a new SceneManager instance.
// The manager starts with no active scene; use SwitchTo to set the initial scene.
func NewSceneManager() *SceneManager {
	return &SceneManager{}
}

// SwitchTo changes the active scene. The previous scene is disposed if it
// implements Disposable, and the new one receives the last known viewport.
func (sm *SceneManager) SwitchTo(scene Scene) {
	if sm.currentScene == scene {
		return
	}
	sm.disposeCurrent()
	sm.currentScene = scene

	if va, ok := scene.(ViewportAware); ok && sm.width > 0 && sm.height > 0 {
		va.SetViewport(sm.width, sm.height)
	}
}

// GetCurrentScene returns the active scene, or nil.
func (sm *SceneManager) GetCurrentScene() Scene {
	return sm.currentScene
}

// SetViewport forwards the host surface size to the active scene.
func (sm *SceneManager) SetViewport(width, height int) {
	if width == sm.width && height == sm.height {
		return
	}
	sm.width, sm.height = width, height
	log.Printf("[SceneManager] viewport %dx%d", width, height)

	if va, ok := sm.currentScene.(ViewportAware); ok {
		va.SetViewport(width, height)
	}
}

// Update updates the currently active scene.
// If no scene is active, this method does nothing.
func (sm *SceneManager) Update(deltaTime float64) {
	if sm.currentScene != nil {
		sm.currentScene.Update(deltaTime)
	}
}

// Draw renders the currently active scene to the provided screen.
// If no scene is active, this method does nothing.
func (sm *SceneManager) Draw(screen *ebiten.Image) {
	if sm.currentScene != nil {
		sm.currentScene.Draw(screen)
	}
}

// Dispose disposes the active scene and clears it. Call on shutdown.
func (sm *SceneManager) Dispose() {
	sm.disposeCurrent()
	sm.currentScene = nil
}

func (sm *SceneManager) disposeCurrent() {
	if d, ok := sm.currentScene.(Disposable); ok {
		d.Dispose()
	}
}
