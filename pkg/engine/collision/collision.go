// Package collision resolves proposed player movement against the grid.
// Each axis is tested independently against a clearance buffer, so a
// move blocked on one axis still slides along the other instead of
// sticking to the wall.
package collision

import (
	"somnium/pkg/engine/world"
)

// ResolveMove clamps a proposed move from (curX, curY) to (propX, propY)
// against the map. An axis is accepted only when the position offset by
// clearance in that axis's direction of travel lands on a walkable
// cell; a rejected axis keeps its current coordinate. The clearance
// buffer keeps the camera from ever reaching a wall face, which would
// otherwise degenerate the projection.
func ResolveMove(curX, curY, propX, propY float64, m *world.GridMap, clearance float64) (float64, float64) {
	x, y := curX, curY
	if axisClear(propX, curY, propX-curX, 0, m, clearance) {
		x = propX
	}
	if axisClear(curX, propY, 0, propY-curY, m, clearance) {
		y = propY
	}
	return x, y
}

// axisClear tests one axis of a proposed position. The probe point is
// pushed clearance units further along the axis's movement direction,
// so the accepted position always keeps at least that much distance
// from the nearest wall face on the travel side.
func axisClear(px, py, dx, dy float64, m *world.GridMap, clearance float64) bool {
	probeX, probeY := px, py
	switch {
	case dx > 0:
		probeX = px + clearance
	case dx < 0:
		probeX = px - clearance
	case dy > 0:
		probeY = py + clearance
	case dy < 0:
		probeY = py - clearance
	default:
		// No movement on this axis; the current coordinate stands.
		return true
	}
	return m.IsWalkable(int(probeX), int(probeY))
}
