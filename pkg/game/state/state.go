package state

import (
	"math"

	"github.com/zyedidia/generic/mapset"

	"somnium/pkg/engine/world"
	"somnium/pkg/game/config"
)

// Player is the first-person camera: a continuous position inside the
// grid plus a direction vector and the camera plane perpendicular to
// it. The plane length fixes the field of view.
type Player struct {
	X, Y           float64
	DirX, DirY     float64
	PlaneX, PlaneY float64
}

// NewPlayer places a player at the centre of the given spawn cell,
// facing east.
func NewPlayer(spawn world.Coord) *Player {
	return &Player{
		X:      float64(spawn.X) + 0.5,
		Y:      float64(spawn.Y) + 0.5,
		DirX:   1,
		DirY:   0,
		PlaneX: 0,
		PlaneY: config.PlaneLength,
	}
}

// Rotate turns the camera by the given angle in radians. Direction and
// plane rotate together so the field of view never skews.
func (p *Player) Rotate(angle float64) {
	cos, sin := math.Cos(angle), math.Sin(angle)
	dirX := p.DirX*cos - p.DirY*sin
	dirY := p.DirX*sin + p.DirY*cos
	p.DirX, p.DirY = dirX, dirY

	planeX := p.PlaneX*cos - p.PlaneY*sin
	planeY := p.PlaneX*sin + p.PlaneY*cos
	p.PlaneX, p.PlaneY = planeX, planeY
}

// Heading returns the camera angle in radians.
func (p *Player) Heading() float64 {
	return math.Atan2(p.DirY, p.DirX)
}

// Entity is the dream entity that haunts each level. It stays where it
// spawned; the encounter logic only cares about position, visibility
// and whether it has already been met this level.
type Entity struct {
	X, Y float64
	Met  bool
}

// NewEntity places the entity at the centre of its spawn cell.
func NewEntity(spawn world.Coord) *Entity {
	return &Entity{
		X: float64(spawn.X) + 0.5,
		Y: float64(spawn.Y) + 0.5,
	}
}

// Game represents the full game state for a dream run.
type Game struct {
	Grid   *world.GridMap
	Player *Player
	Entity *Entity

	Level int
	Seed  int64

	Messages []string

	// Fragments already shown this run, so story beats never repeat.
	SeenFragments mapset.Set[string]

	Running bool
}

// NewGame creates a game at level 1. The grid is set separately by the
// level loader so that load failures surface before any state exists.
func NewGame(seed int64) *Game {
	return &Game{
		Level:         1,
		Seed:          seed,
		Messages:      make([]string, 0),
		SeenFragments: mapset.New[string](),
		Running:       true,
	}
}

// EnterLevel installs a freshly loaded grid and respawns the player and
// entity at its spawn cells.
func (g *Game) EnterLevel(m *world.GridMap) {
	g.Grid = m
	g.Player = NewPlayer(m.PlayerSpawn())
	g.Entity = NewEntity(m.EntitySpawn())
}

// AddMessage adds a message to the game's message log.
func (g *Game) AddMessage(msg string) {
	g.Messages = append(g.Messages, msg)

	if len(g.Messages) > config.MaxMessages {
		g.Messages = g.Messages[len(g.Messages)-config.MaxMessages:]
	}
}

// ClearMessages clears all messages.
func (g *Game) ClearMessages() {
	g.Messages = make([]string, 0)
}

// AdvanceLevel increments the level counter. Level-specific state is
// rebuilt by EnterLevel; the seen-fragments set persists so the story
// keeps moving forward across levels.
func (g *Game) AdvanceLevel() {
	g.Level++
}
