// Package renderer holds the pieces shared by every rendering backend:
// the backend interface, the column sweep that turns the map into a
// first-person scene, sprite projection, the minimap model, and the
// text markup system.
package renderer

import (
	"somnium/pkg/game/gameplay"
)

// Renderer is the interface a rendering backend implements. Run owns
// the frame/input loop: the terminal backend blocks on key reads, the
// graphical backend hands control to its engine.
type Renderer interface {
	// Init prepares colors, window or terminal state.
	Init() error

	// Run drives the session until the player quits or the backend
	// fails.
	Run(s *gameplay.Session) error

	// Name identifies the backend for the -renderer flag.
	Name() string
}

// Current holds the active renderer instance.
var Current Renderer

// SetRenderer sets the active renderer.
func SetRenderer(r Renderer) {
	Current = r
}
