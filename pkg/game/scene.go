package game

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// Scene represents one screen of the app.
// Each scene has its own update and rendering logic.
type Scene interface {
	// Update updates the scene logic based on the elapsed time.
	// deltaTime is the time elapsed since the last update in seconds.
	Update(deltaTime float64)

	// Draw renders the scene to the provided screen.
	Draw(screen *ebiten.Image)
}

// Disposable is an optional interface for scenes that own scheduled work
// (animation loops, timers). Dispose is called when the scene is replaced
// or the app shuts down, and must leave nothing scheduled behind.
type Disposable interface {
	Dispose()
}

// ViewportAware is an optional interface for scenes that need the host
// surface size, e.g. to normalize pointer positions.
type ViewportAware interface {
	SetViewport(width, height int)
}
