package gameplay

import (
	"math"

	"somnium/pkg/engine/raycast"
	"somnium/pkg/game/config"
	"somnium/pkg/game/state"
)

// EntityVisible reports whether the dream entity has line of sight to
// the player, and the distance between them. Visibility is a single
// cast toward the entity: if no wall interrupts the ray before the
// entity's distance, they can see each other.
func EntityVisible(g *state.Game) (bool, float64) {
	p, e := g.Player, g.Entity
	dx, dy := e.X-p.X, e.Y-p.Y
	dist := math.Hypot(dx, dy)
	if dist > config.RenderDistance {
		return false, dist
	}
	if dist == 0 {
		return true, 0
	}

	// Unit direction, so the hit distance is Euclidean and comparable
	// to dist. NoHit means the ray travelled the whole way unblocked.
	hit := raycast.Cast(p.X, p.Y, dx/dist, dy/dist, g.Grid, dist)
	return hit.NoHit, dist
}

// CheckEncounter reports whether the entity encounter fires this tick:
// first sighting within interaction range, with line of sight. The
// encounter happens once per level.
func CheckEncounter(g *state.Game) bool {
	if g.Entity == nil || g.Entity.Met {
		return false
	}
	visible, dist := EntityVisible(g)
	if !visible || dist > config.EntityInteractRange {
		return false
	}
	g.Entity.Met = true
	return true
}
