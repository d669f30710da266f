package renderer

import (
	"math"
	"testing"

	"somnium/pkg/engine/raycast"
	"somnium/pkg/engine/world"
	"somnium/pkg/game/state"
)

func hitAt(distance float64, side raycast.Side) raycast.Hit {
	return raycast.Hit{Distance: distance, Side: side}
}

func buildScene(t *testing.T) *state.Game {
	t.Helper()
	b := world.NewBuilder(12, 12)
	b.CarveRect(1, 1, 10, 10, world.Floor)
	b.SetMark(4, 2, "clock")
	b.SetSpawns(world.Coord{X: 2, Y: 2}, world.Coord{X: 9, Y: 2})
	m, err := b.Freeze()
	if err != nil {
		t.Fatalf("Freeze() error: %v", err)
	}
	g := state.NewGame(1)
	g.EnterLevel(m)
	return g
}

func TestSweep_OneColumnPerPixel(t *testing.T) {
	g := buildScene(t)

	cols := Sweep(g.Player, g.Grid, 80)
	if len(cols) != 80 {
		t.Fatalf("Sweep returned %d columns, want 80", len(cols))
	}
	for i, c := range cols {
		if c.Hit.NoHit {
			t.Errorf("column %d reported NoHit inside a bordered room", i)
		}
	}

	// Facing east toward the wall at x=11: the center columns see the
	// perpendicular distance, edge columns the same (flat wall).
	center := cols[40]
	if want := 11.0 - g.Player.X; math.Abs(center.Hit.Distance-want) > 0.05 {
		t.Errorf("center column distance = %v, want about %v", center.Hit.Distance, want)
	}
}

func TestSlabBounds_ClampsToScreen(t *testing.T) {
	top, bottom := SlabBounds(0.01, 600)
	if top != 0 || bottom != 599 {
		t.Errorf("close wall slab = (%d,%d), want full screen (0,599)", top, bottom)
	}

	top, bottom = SlabBounds(2, 600)
	if top != 150 || bottom != 450 {
		t.Errorf("distance-2 slab = (%d,%d), want (150,450)", top, bottom)
	}
	if top >= bottom {
		t.Error("slab top not above bottom")
	}
}

func TestShade_DistanceAndSide(t *testing.T) {
	near := Shade(hitAt(1, raycast.SideNorth))
	far := Shade(hitAt(15, raycast.SideNorth))
	if near <= far {
		t.Errorf("near shade %v <= far shade %v", near, far)
	}

	ns := Shade(hitAt(5, raycast.SideNorth))
	ew := Shade(hitAt(5, raycast.SideEast))
	if ew >= ns {
		t.Errorf("east face shade %v >= north face shade %v", ew, ns)
	}

	if Shade(hitAt(1000, raycast.SideNorth)) < 0.2 {
		t.Error("shade fell below the visibility floor")
	}
}

func TestProjectEntity_DeadAhead(t *testing.T) {
	g := buildScene(t)
	// Player at (2.5,2.5) facing east, entity at (9.5,2.5).

	s := ProjectEntity(g.Player, g.Entity, 800, 600)
	if !s.Visible {
		t.Fatal("entity ahead of the camera reported not visible")
	}
	if s.ScreenX != 400 {
		t.Errorf("ScreenX = %d, want 400 (screen center)", s.ScreenX)
	}
	if want := 9.5 - 2.5; math.Abs(s.Distance-want) > 1e-9 {
		t.Errorf("Distance = %v, want %v", s.Distance, want)
	}
}

func TestProjectEntity_BehindCamera(t *testing.T) {
	g := buildScene(t)
	g.Entity.X, g.Entity.Y = g.Player.X-3, g.Player.Y

	if s := ProjectEntity(g.Player, g.Entity, 800, 600); s.Visible {
		t.Error("entity behind the camera reported visible")
	}
}

func TestMinimapModel_Classes(t *testing.T) {
	g := buildScene(t)

	radius := 3
	mm := MinimapModel(g, radius)
	if len(mm) != 7 || len(mm[0]) != 7 {
		t.Fatalf("minimap is %dx%d, want 7x7", len(mm), len(mm[0]))
	}
	if mm[radius][radius] != MinimapPlayer {
		t.Error("center cell is not the player")
	}
	// Player at cell (2,2): the map border sits at x=0, column offset -2.
	if mm[radius][radius-2] != MinimapWall {
		t.Errorf("border cell class = %v, want MinimapWall", mm[radius][radius-2])
	}
	// Mark at (4,2) is two cells east.
	if mm[radius][radius+2] != MinimapMark {
		t.Errorf("mark cell class = %v, want MinimapMark", mm[radius][radius+2])
	}
	// Outside the grid.
	if mm[0][0] != MinimapVoid {
		t.Errorf("out-of-grid class = %v, want MinimapVoid", mm[0][0])
	}
}
