package renderer

import (
	"wanderer/pkg/game/gameplay"
)

// Renderer is a display backend for a play session. Implementations include
// the terminal renderer and the Ebitengine window.
type Renderer interface {
	// Init prepares the backend (colors, fonts, window).
	Init() error

	// Run drives the session until the player quits. Blocking.
	Run(s *gameplay.Session) error
}

// Current holds the active renderer instance
var Current Renderer

// SetRenderer sets the active renderer
func SetRenderer(r Renderer) {
	Current = r
}
