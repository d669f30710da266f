package world

import (
	"testing"
)

// buildTwoRoomBuilder stages a 10x10 grid with two 3x3 rooms that do
// not touch, matching the classic disconnected-rooms repair scenario.
func buildTwoRoomBuilder() *Builder {
	b := NewBuilder(10, 10)
	b.CarveRect(1, 1, 3, 3, Floor)
	b.CarveRect(6, 6, 3, 3, Floor)
	b.SetSpawns(Coord{X: 2, Y: 2}, Coord{X: 7, Y: 7})
	return b
}

func TestReachableSet_StopsAtWalls(t *testing.T) {
	b := buildTwoRoomBuilder()

	reached := ReachableSet(b, Coord{X: 2, Y: 2})
	if got := reached.Size(); got != 9 {
		t.Errorf("ReachableSet size = %d, want 9 (one 3x3 room)", got)
	}
	if reached.Has(Coord{X: 7, Y: 7}) {
		t.Error("flood fill leaked into the disconnected room")
	}
}

func TestReachableSet_UnwalkableOrigin(t *testing.T) {
	b := buildTwoRoomBuilder()
	if got := ReachableSet(b, Coord{X: 0, Y: 0}).Size(); got != 0 {
		t.Errorf("ReachableSet from wall origin size = %d, want 0", got)
	}
}

func TestEnsureConnectivity_JoinsTwoRooms(t *testing.T) {
	b := buildTwoRoomBuilder()

	if err := EnsureConnectivity(b, Coord{X: 2, Y: 2}); err != nil {
		t.Fatalf("EnsureConnectivity error: %v", err)
	}

	reached := ReachableSet(b, Coord{X: 2, Y: 2})
	walkable := b.WalkableCells()
	if reached.Size() != len(walkable) {
		t.Errorf("reachable cells = %d, walkable cells = %d; repair left isolated cells", reached.Size(), len(walkable))
	}

	// The corridor must be carved Floor, and there must be more
	// walkable cells than the two rooms alone.
	if len(walkable) <= 18 {
		t.Errorf("walkable count = %d, want > 18 (corridor cells added)", len(walkable))
	}
}

func TestEnsureConnectivity_Deterministic(t *testing.T) {
	b1 := buildTwoRoomBuilder()
	b2 := buildTwoRoomBuilder()

	if err := EnsureConnectivity(b1, Coord{X: 2, Y: 2}); err != nil {
		t.Fatalf("first repair error: %v", err)
	}
	if err := EnsureConnectivity(b2, Coord{X: 2, Y: 2}); err != nil {
		t.Fatalf("second repair error: %v", err)
	}

	for y := 0; y < b1.Height(); y++ {
		for x := 0; x < b1.Width(); x++ {
			if b1.Kind(x, y) != b2.Kind(x, y) {
				t.Fatalf("repair differs at (%d,%d): %v vs %v", x, y, b1.Kind(x, y), b2.Kind(x, y))
			}
		}
	}
}

func TestEnsureConnectivity_AlreadyConnected(t *testing.T) {
	b := NewBuilder(6, 6)
	b.CarveRect(1, 1, 4, 4, Floor)
	b.SetSpawns(Coord{X: 1, Y: 1}, Coord{X: 4, Y: 4})

	before := len(b.WalkableCells())
	if err := EnsureConnectivity(b, Coord{X: 1, Y: 1}); err != nil {
		t.Fatalf("EnsureConnectivity error: %v", err)
	}
	if after := len(b.WalkableCells()); after != before {
		t.Errorf("repair carved %d cells on an already-connected grid", after-before)
	}
}

func TestEnsureSafeConnectivity_SpawnsMutuallyReachable(t *testing.T) {
	b := buildTwoRoomBuilder()

	if err := EnsureSafeConnectivity(b); err != nil {
		t.Fatalf("EnsureSafeConnectivity error: %v", err)
	}

	reached := ReachableSet(b, b.PlayerSpawn())
	if !reached.Has(b.EntitySpawn()) {
		t.Error("entity spawn unreachable from player spawn after safe repair")
	}

	// The repaired builder must now freeze cleanly.
	if _, err := b.Freeze(); err != nil {
		t.Errorf("Freeze() after safe repair error: %v", err)
	}
}

func TestEnsureSafeConnectivity_PreservesMarks(t *testing.T) {
	// Marked cells sit inside both rooms; repair corridors may route
	// past or through them but must never overwrite the mark.
	b := buildTwoRoomBuilder()
	b.SetMark(3, 3, "shrine")
	b.SetMark(6, 6, "mirror")

	if err := EnsureSafeConnectivity(b); err != nil {
		t.Fatalf("EnsureSafeConnectivity error: %v", err)
	}

	if tag, ok := b.MarkTag(3, 3); !ok || tag != "shrine" {
		t.Errorf("MarkTag(3,3) = %q, %v after repair; want \"shrine\", true", tag, ok)
	}
	if tag, ok := b.MarkTag(6, 6); !ok || tag != "mirror" {
		t.Errorf("MarkTag(6,6) = %q, %v after repair; want \"mirror\", true", tag, ok)
	}
	if b.Kind(3, 3) != DreamMark || b.Kind(6, 6) != DreamMark {
		t.Error("mark cells lost their DreamMark kind during repair")
	}
}

func TestCarveCorridor_SafeElbowKeepsClearOfMarks(t *testing.T) {
	// A mark at (3,2) neighbours the horizontal-then-vertical path cell
	// (3,1); the vertical-first elbow never comes near it, so the safe
	// carve must take the vertical-first route.
	build := func() *Builder {
		b := NewBuilder(9, 9)
		b.Set(1, 1, Floor)
		b.Set(5, 5, Floor)
		b.SetMark(3, 2, "mirror")
		return b
	}

	b := build()
	carveCorridor(b, Coord{X: 1, Y: 1}, Coord{X: 5, Y: 5}, true)
	if b.Kind(3, 1) != Wall {
		t.Errorf("Kind(3,1) = %v, want Wall (safe carve crowded the mark)", b.Kind(3, 1))
	}
	if b.Kind(1, 3) != Floor || b.Kind(3, 5) != Floor {
		t.Error("safe carve did not open the vertical-first elbow")
	}

	b = build()
	carveCorridor(b, Coord{X: 1, Y: 1}, Coord{X: 5, Y: 5}, false)
	if b.Kind(3, 1) != Floor {
		t.Errorf("Kind(3,1) = %v, want Floor (unsafe carve is horizontal-first)", b.Kind(3, 1))
	}
}

func TestEnsureConnectivity_FailsOnUnwalkableOrigin(t *testing.T) {
	b := NewBuilder(5, 5)
	b.SetSpawns(Coord{X: 2, Y: 2}, Coord{X: 2, Y: 2})
	if err := EnsureConnectivity(b, Coord{X: 2, Y: 2}); err == nil {
		t.Error("EnsureConnectivity on all-wall grid returned nil error")
	}
}
