package levels

import (
	"errors"
	"testing"

	"somnium/pkg/engine/world"
)

// failingGenerator fails the first `until` calls (or every call when
// until is zero), recording the seeds it was asked for.
type failingGenerator struct {
	calls []int64
	until int
}

func (f *failingGenerator) Name() string { return "failing" }

func (f *failingGenerator) Generate(level int, seed int64) (*world.GridMap, error) {
	f.calls = append(f.calls, seed)
	if f.until > 0 && len(f.calls) > f.until {
		b := world.NewBuilder(8, 8)
		b.CarveRect(1, 1, 6, 6, world.Floor)
		b.SetSpawns(world.Coord{X: 1, Y: 1}, world.Coord{X: 6, Y: 6})
		return b.Freeze()
	}
	return nil, world.ErrGenerationFailed
}

func TestLoad_HandcraftedLevels(t *testing.T) {
	p := &Provider{}
	for level := 1; level <= 3; level++ {
		m, err := p.Load(level, 42)
		if err != nil {
			t.Fatalf("Load(%d) error: %v", level, err)
		}
		if m.Width() != 10 || m.Height() != 10 {
			t.Errorf("level %d is %dx%d, want 10x10", level, m.Width(), m.Height())
		}
		if !m.HasFeature("handcrafted") {
			t.Errorf("level %d missing handcrafted feature", level)
		}
		if m.PlayerSpawn() == m.EntitySpawn() {
			t.Errorf("level %d spawns coincide", level)
		}
	}
}

func TestLoad_HandcraftedIgnoresSeed(t *testing.T) {
	p := &Provider{}
	a, err := p.Load(1, 1)
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	b, err := p.Load(1, 999)
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	for y := 0; y < a.Height(); y++ {
		for x := 0; x < a.Width(); x++ {
			if a.KindAt(x, y) != b.KindAt(x, y) {
				t.Fatalf("handcrafted level varies with seed at (%d,%d)", x, y)
			}
		}
	}
}

func TestLoad_RepairsRingLevel(t *testing.T) {
	// Level 3 is authored as two sealed rings; loading must join them
	// so the entity spawn is reachable. Freeze would have rejected the
	// map otherwise, so a nil error is already the proof.
	p := &Provider{}
	m, err := p.Load(3, 0)
	if err != nil {
		t.Fatalf("Load(3) error: %v", err)
	}
	if tag, ok := m.MarkTag(5, 3); !ok || tag != "mirror" {
		t.Errorf("MarkTag(5,3) = %q, %v; want \"mirror\", true (mark survives repair)", tag, ok)
	}
}

func TestLoad_ProceduralBeyondHandcrafted(t *testing.T) {
	p := &Provider{}
	m, err := p.Load(4, 42)
	if err != nil {
		t.Fatalf("Load(4) error: %v", err)
	}
	if m.HasFeature("handcrafted") {
		t.Error("level 4 loaded a handcrafted map")
	}
	if !m.HasFeature("chambers") {
		t.Errorf("level 4 features = %v, want chambers strategy", m.Features())
	}
}

func TestLoad_RetriesWithPerturbedSeeds(t *testing.T) {
	gen := &failingGenerator{until: 1}
	p := &Provider{Generator: gen}

	m, err := p.Load(5, 100)
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if m.HasFeature(FallbackFeature) {
		t.Error("retry succeeded but fallback map was returned")
	}

	want := []int64{100, 100 + seedPerturbation}
	if len(gen.calls) != len(want) {
		t.Fatalf("generator called %d times, want %d", len(gen.calls), len(want))
	}
	for i, seed := range want {
		if gen.calls[i] != seed {
			t.Errorf("attempt %d used seed %d, want %d", i, gen.calls[i], seed)
		}
	}
}

func TestLoad_FallsBackAfterExhaustedRetries(t *testing.T) {
	gen := &failingGenerator{}
	p := &Provider{Generator: gen}

	m, err := p.Load(5, 7)
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if len(gen.calls) != GenerationAttempts {
		t.Errorf("generator called %d times, want %d", len(gen.calls), GenerationAttempts)
	}
	if !m.HasFeature(FallbackFeature) {
		t.Error("fallback map missing fallback feature")
	}
	if !m.IsWalkable(m.PlayerSpawn().X, m.PlayerSpawn().Y) {
		t.Error("fallback player spawn not walkable")
	}
}

func TestBuildHandcrafted_RejectsBadAuthoring(t *testing.T) {
	cases := []struct {
		name string
		def  handcraftedLevel
	}{
		{"ragged rows", handcraftedLevel{rows: []string{"#####", "#P.E#", "####"}}},
		{"unknown cell", handcraftedLevel{rows: []string{"#####", "#PXE#", "#####"}}},
		{"missing spawn", handcraftedLevel{rows: []string{"#####", "#P..#", "#####"}}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if _, err := buildHandcrafted(c.def, 9); !errors.Is(err, world.ErrGenerationFailed) {
				t.Errorf("buildHandcrafted error = %v, want ErrGenerationFailed", err)
			}
		})
	}
}
