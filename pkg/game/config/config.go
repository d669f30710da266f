// Package config holds the tuning constants shared across the engine
// and the renderers.
package config

// Screen dimensions for the graphical renderer.
const (
	ScreenWidth  = 800
	ScreenHeight = 600
)

// PlaneLength is the camera plane half-width. With a unit direction
// vector, 0.66 gives roughly a 66 degree horizontal field of view.
const PlaneLength = 0.66

// Movement tuning. Speeds are per-tick in cell units and radians.
const (
	MoveSpeed = 0.05
	RotSpeed  = 0.03

	// PlayerClearance keeps the camera off wall faces; collision
	// resolution probes this far ahead of the proposed position.
	PlayerClearance = 0.2
)

// RenderDistance is how far a ray travels before the column is treated
// as open background.
const RenderDistance = 20.0

// Entity behaviour.
const (
	// EntityInteractRange is how close (Euclidean, cell units) the
	// dream entity must be, with line of sight, for an encounter.
	EntityInteractRange = 3.0

	// EntityMinSpawnDistance keeps the entity from spawning on top of
	// the player (Manhattan, cells).
	EntityMinSpawnDistance = 6
)

// Default procedural grid dimensions. Odd sizes keep the maze lattice
// aligned with the sealed border.
const (
	DefaultGridWidth  = 31
	DefaultGridHeight = 31
)

// Minimap rendering.
const (
	MinimapSize    = 150
	MinimapMargin  = 10
	MinimapMaxCell = 8
)

// Message log depth, shared by both renderers.
const MaxMessages = 5
