// Package gameplay provides the core game logic: continuous movement
// with wall sliding, dream mark discovery, entity encounters and the
// level-to-level session flow.
package gameplay

import (
	"fmt"

	"somnium/pkg/engine/collision"
	"somnium/pkg/engine/world"
	"somnium/pkg/game/config"
	"somnium/pkg/game/state"
	"somnium/pkg/game/story"
)

// MoveForward advances the player along the view direction.
func MoveForward(g *state.Game) {
	step(g, config.MoveSpeed)
}

// MoveBackward retreats along the view direction.
func MoveBackward(g *state.Game) {
	step(g, -config.MoveSpeed)
}

// StrafeLeft side-steps perpendicular to the view direction.
func StrafeLeft(g *state.Game) {
	slide(g, -config.MoveSpeed)
}

// StrafeRight side-steps the other way.
func StrafeRight(g *state.Game) {
	slide(g, config.MoveSpeed)
}

// TurnLeft rotates the camera counter-clockwise.
func TurnLeft(g *state.Game) {
	g.Player.Rotate(-config.RotSpeed)
}

// TurnRight rotates the camera clockwise.
func TurnRight(g *state.Game) {
	g.Player.Rotate(config.RotSpeed)
}

func step(g *state.Game, speed float64) {
	p := g.Player
	applyMove(g, p.X+p.DirX*speed, p.Y+p.DirY*speed)
}

func slide(g *state.Game, speed float64) {
	p := g.Player
	// Perpendicular of (DirX, DirY) in grid coordinates.
	applyMove(g, p.X-p.DirY*speed, p.Y+p.DirX*speed)
}

func applyMove(g *state.Game, propX, propY float64) {
	p := g.Player
	p.X, p.Y = collision.ResolveMove(p.X, p.Y, propX, propY, g.Grid, config.PlayerClearance)
	checkMark(g)
}

// checkMark surfaces the story fragment of a dream mark the first time
// the player stands on it.
func checkMark(g *state.Game) {
	x, y := int(g.Player.X), int(g.Player.Y)
	if g.Grid.KindAt(x, y) != world.DreamMark {
		return
	}
	tag, ok := g.Grid.MarkTag(x, y)
	if !ok {
		return
	}

	key := fmt.Sprintf("mark:%d:%d:%d", g.Level, x, y)
	if g.SeenFragments.Has(key) {
		return
	}
	g.SeenFragments.Put(key)
	g.AddMessage(story.FragmentForMark(tag))
}
