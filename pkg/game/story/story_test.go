package story

import (
	"strings"
	"testing"

	"somnium/pkg/engine/world"
)

func featureMap(t *testing.T, features ...string) *world.GridMap {
	t.Helper()
	b := world.NewBuilder(5, 5)
	b.CarveRect(1, 1, 3, 3, world.Floor)
	b.SetSpawns(world.Coord{X: 1, Y: 1}, world.Coord{X: 3, Y: 3})
	for _, f := range features {
		b.AddFeature(f)
	}
	m, err := b.Freeze()
	if err != nil {
		t.Fatalf("Freeze() error: %v", err)
	}
	return m
}

func TestThemeForLevel(t *testing.T) {
	cases := []struct {
		name     string
		level    int
		features []string
		want     string
	}{
		{"level one is always falling", 1, []string{"labyrinth"}, "falling"},
		{"labyrinth feature", 5, []string{"labyrinth"}, "labyrinth"},
		{"long corridor feature", 5, []string{"long-corridor"}, "labyrinth"},
		{"cavernous feature", 5, []string{"cavernous"}, "flying"},
		{"claustrophobic feature", 5, []string{"claustrophobic"}, "chase"},
		{"plain cycle level 2", 2, nil, "chase"},
		{"plain cycle level 8", 8, nil, "chase"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := ThemeForLevel(c.level, featureMap(t, c.features...)); got != c.want {
				t.Errorf("ThemeForLevel(%d) = %q, want %q", c.level, got, c.want)
			}
		})
	}
}

func TestEnterLevel_AdvancesOnRevisit(t *testing.T) {
	s := New()
	m := featureMap(t)

	first := s.EnterLevel(1, m)
	second := s.EnterLevel(1, m)

	if first.Theme != "falling" || second.Theme != "falling" {
		t.Fatalf("themes = %q, %q; want falling twice", first.Theme, second.Theme)
	}
	if first.Narrative == second.Narrative {
		t.Error("revisiting a theme repeated the same narrative")
	}
	if first.Question == second.Question {
		t.Error("revisiting a theme repeated the same question")
	}
}

func TestChoose_OutcomesDiverge(t *testing.T) {
	m := featureMap(t)

	sYes := New()
	segYes := sYes.EnterLevel(1, m)
	yes := sYes.Choose(segYes, true)

	sNo := New()
	segNo := sNo.EnterLevel(1, m)
	no := sNo.Choose(segNo, false)

	if yes == "" || no == "" {
		t.Fatal("empty outcome")
	}
	if yes == no {
		t.Error("yes and no answers produced the same outcome")
	}
	if sYes.Mood() != MoodPositive {
		t.Errorf("mood after yes = %v, want MoodPositive", sYes.Mood())
	}
	if sNo.Mood() != MoodNegative {
		t.Errorf("mood after no = %v, want MoodNegative", sNo.Mood())
	}
}

func TestRecurringElementsEcho(t *testing.T) {
	s := New()
	m := featureMap(t)

	seg := s.EnterLevel(1, m) // falling
	s.Choose(seg, true)       // plants weightlessness

	next := s.EnterLevel(1, m)
	if !strings.Contains(next.Narrative, "weightlessness") {
		t.Errorf("narrative %q does not echo the recurring element", next.Narrative)
	}
}

func TestSummary_TracksDepth(t *testing.T) {
	s := New()
	if got := s.Summary(); !strings.Contains(got, "begins") {
		t.Errorf("fresh story summary = %q, want the beginning line", got)
	}

	m := featureMap(t)
	for i := 0; i < 4; i++ {
		s.EnterLevel(i+1, m)
	}
	if got := s.Summary(); !strings.Contains(got, "subconscious") {
		t.Errorf("depth-4 summary = %q, want the descending line", got)
	}
}

func TestFragmentForMark(t *testing.T) {
	if got := FragmentForMark("mirror"); !strings.Contains(got, "mirror") {
		t.Errorf("FragmentForMark(mirror) = %q", got)
	}
	if got := FragmentForMark("no-such-tag"); got == "" {
		t.Error("unknown tag returned an empty fragment")
	}
}
