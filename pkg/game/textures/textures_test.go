package textures

import (
	"testing"

	"somnium/pkg/engine/world"
)

func TestNoiseLattice_RangeAndDeterminism(t *testing.T) {
	n := newNoise(99)
	points := []struct{ x, y int }{
		{0, 0}, {5, -3}, {-7, 11}, {1 << 20, -(1 << 20)},
	}
	for _, p := range points {
		v := n.lattice(p.x, p.y)
		if v < 0 || v >= 1 {
			t.Errorf("lattice(%d,%d) = %v, want value in [0,1)", p.x, p.y, v)
		}
		if again := n.lattice(p.x, p.y); again != v {
			t.Errorf("lattice(%d,%d) = %v then %v, want identical", p.x, p.y, v, again)
		}
	}
}

func TestNoiseLattice_SeedChangesField(t *testing.T) {
	a, b := newNoise(1), newNoise(2)
	differ := 0
	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			if a.lattice(x, y) != b.lattice(x, y) {
				differ++
			}
		}
	}
	if differ == 0 {
		t.Error("two seeds produced identical lattice values at all 64 points")
	}
}

func TestAtlas_Deterministic(t *testing.T) {
	a := NewAtlas(42)
	b := NewAtlas(42)

	ta := a.Get("labyrinth", SurfaceWall, world.Wall)
	tb := b.Get("labyrinth", SurfaceWall, world.Wall)

	for y := 0; y < Size; y++ {
		for x := 0; x < Size; x++ {
			if ta.At(x, y) != tb.At(x, y) {
				t.Fatalf("texel (%d,%d) differs between identical atlases", x, y)
			}
		}
	}
}

func TestAtlas_CachesInstances(t *testing.T) {
	a := NewAtlas(1)
	first := a.Get("falling", SurfaceWall, world.Wall)
	second := a.Get("falling", SurfaceWall, world.Wall)
	if first != second {
		t.Error("repeated Get returned a different texture instance")
	}
}

func TestAtlas_KindsDiffer(t *testing.T) {
	a := NewAtlas(7)
	plain := a.Get("chase", SurfaceWall, world.Wall)
	moss := a.Get("chase", SurfaceWall, world.WallMoss)

	same := true
	for y := 0; y < Size && same; y++ {
		for x := 0; x < Size; x++ {
			if plain.At(x, y) != moss.At(x, y) {
				same = false
				break
			}
		}
	}
	if same {
		t.Error("plain and mossy walls generated identical textures")
	}
}

func TestTexture_SampleWraps(t *testing.T) {
	a := NewAtlas(3)
	tex := a.Get("flying", SurfaceCeiling, world.Wall)

	if tex.At(-1, 0) != tex.At(Size-1, 0) {
		t.Error("negative x did not wrap")
	}
	if tex.At(0, Size) != tex.At(0, 0) {
		t.Error("y == Size did not wrap")
	}
	if got, want := tex.Sample(0.5, 0.5), tex.At(Size/2, Size/2); got != want {
		t.Errorf("Sample(0.5,0.5) = %v, want %v", got, want)
	}
}

func TestSurfacesShadeDifferently(t *testing.T) {
	a := NewAtlas(11)
	floor := a.Get("labyrinth", SurfaceFloor, world.Wall)
	ceiling := a.Get("labyrinth", SurfaceCeiling, world.Wall)

	var floorSum, ceilSum int
	for y := 0; y < Size; y++ {
		for x := 0; x < Size; x++ {
			f, c := floor.At(x, y), ceiling.At(x, y)
			floorSum += int(f.R) + int(f.G) + int(f.B)
			ceilSum += int(c.R) + int(c.G) + int(c.B)
		}
	}
	if floorSum >= ceilSum {
		t.Errorf("floor brightness %d >= ceiling brightness %d", floorSum, ceilSum)
	}
}
