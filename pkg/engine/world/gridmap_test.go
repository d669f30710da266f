package world

import (
	"errors"
	"testing"
)

// buildTwoCellMap stages a minimal 4x3 grid with two adjacent floor
// cells and freezes it.
func buildTwoCellMap(t *testing.T) *GridMap {
	t.Helper()
	b := NewBuilder(4, 3)
	b.Set(1, 1, Floor)
	b.Set(2, 1, Floor)
	b.SetSpawns(Coord{X: 1, Y: 1}, Coord{X: 2, Y: 1})
	m, err := b.Freeze()
	if err != nil {
		t.Fatalf("Freeze() error: %v", err)
	}
	return m
}

func TestCellAt_OutOfBounds(t *testing.T) {
	m := buildTwoCellMap(t)

	cases := []struct{ x, y int }{
		{-1, 0}, {0, -1}, {4, 0}, {0, 3}, {100, 100},
	}
	for _, c := range cases {
		if _, err := m.CellAt(c.x, c.y); !errors.Is(err, ErrOutOfBounds) {
			t.Errorf("CellAt(%d,%d) error = %v, want ErrOutOfBounds", c.x, c.y, err)
		}
	}

	if _, err := m.CellAt(1, 1); err != nil {
		t.Errorf("CellAt(1,1) error = %v, want nil", err)
	}
}

func TestIsWalkable_KindRules(t *testing.T) {
	m := buildTwoCellMap(t)

	if m.IsWalkable(0, 0) {
		t.Error("border wall reported walkable")
	}
	if !m.IsWalkable(1, 1) {
		t.Error("floor cell reported unwalkable")
	}
	if m.IsWalkable(-5, 1) {
		t.Error("out-of-bounds cell reported walkable")
	}

	for _, k := range []CellKind{Wall, WallMoss, WallRune} {
		if k.Walkable() {
			t.Errorf("%v.Walkable() = true, want false", k)
		}
	}
	for _, k := range []CellKind{Floor, SpawnPoint, EntitySpawn, DreamMark} {
		if !k.Walkable() {
			t.Errorf("%v.Walkable() = false, want true", k)
		}
	}
}

func TestFreeze_RejectsOpenBorder(t *testing.T) {
	b := NewBuilder(5, 5)
	b.CarveRect(1, 1, 3, 3, Floor)
	b.Set(0, 2, Floor) // hole in the west border
	b.SetSpawns(Coord{X: 1, Y: 1}, Coord{X: 3, Y: 3})

	if _, err := b.Freeze(); !errors.Is(err, ErrGenerationFailed) {
		t.Errorf("Freeze() with open border error = %v, want ErrGenerationFailed", err)
	}
}

func TestFreeze_RejectsUnwalkableSpawn(t *testing.T) {
	b := NewBuilder(5, 5)
	b.CarveRect(1, 1, 3, 3, Floor)
	b.SetSpawns(Coord{X: 0, Y: 0}, Coord{X: 3, Y: 3})

	if _, err := b.Freeze(); !errors.Is(err, ErrGenerationFailed) {
		t.Errorf("Freeze() with wall spawn error = %v, want ErrGenerationFailed", err)
	}
}

func TestFreeze_RejectsPathologicalDimensions(t *testing.T) {
	b := NewBuilder(2, 2)
	b.SetSpawns(Coord{X: 0, Y: 0}, Coord{X: 1, Y: 1})

	if _, err := b.Freeze(); !errors.Is(err, ErrGenerationFailed) {
		t.Errorf("Freeze() on 2x2 grid error = %v, want ErrGenerationFailed", err)
	}
}

func TestFreeze_SnapshotsBuilderState(t *testing.T) {
	b := NewBuilder(5, 5)
	b.CarveRect(1, 1, 3, 3, Floor)
	b.SetSpawns(Coord{X: 1, Y: 1}, Coord{X: 3, Y: 3})
	m, err := b.Freeze()
	if err != nil {
		t.Fatalf("Freeze() error: %v", err)
	}

	// Mutating the builder afterwards must not bleed into the map.
	b.Set(2, 2, Wall)
	if got := m.KindAt(2, 2); got != Floor {
		t.Errorf("GridMap cell changed after builder mutation: got %v, want Floor", got)
	}
}

func TestGridMap_MarksAndFeatures(t *testing.T) {
	b := NewBuilder(5, 5)
	b.CarveRect(1, 1, 3, 3, Floor)
	b.SetMark(2, 2, "shrine")
	b.AddFeature("has-loop")
	b.AddFeature("cavernous")
	b.SetSpawns(Coord{X: 1, Y: 1}, Coord{X: 3, Y: 3})

	m, err := b.Freeze()
	if err != nil {
		t.Fatalf("Freeze() error: %v", err)
	}

	if tag, ok := m.MarkTag(2, 2); !ok || tag != "shrine" {
		t.Errorf("MarkTag(2,2) = %q, %v; want \"shrine\", true", tag, ok)
	}
	if !m.HasFeature("has-loop") {
		t.Error("HasFeature(\"has-loop\") = false, want true")
	}
	got := m.Features()
	want := []string{"cavernous", "has-loop"}
	if len(got) != len(want) {
		t.Fatalf("Features() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Features()[%d] = %q, want %q (sorted order)", i, got[i], want[i])
		}
	}
}

func TestBuilder_SetClearsStaleMark(t *testing.T) {
	b := NewBuilder(5, 5)
	b.SetMark(2, 2, "shrine")
	b.Set(2, 2, Wall)
	if _, ok := b.MarkTag(2, 2); ok {
		t.Error("mark tag survived overwrite to Wall")
	}
}
