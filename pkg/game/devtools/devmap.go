package devtools

import (
	"fmt"

	"somnium/pkg/engine/world"
	"somnium/pkg/game/state"
)

// SwitchToDevMap replaces the current level with a hard-coded showcase
// map: every wall variant and every dream mark tag laid out in rows
// with margins, so renderers and interaction logic can be eyeballed in
// one place.
func SwitchToDevMap(g *state.Game) error {
	const size = 24
	b := world.NewBuilder(size, size)
	b.CarveRect(1, 1, size-2, size-2, world.Floor)

	// Row of wall variants along y=4.
	variants := []world.CellKind{world.Wall, world.WallMoss, world.WallRune}
	for i, kind := range variants {
		b.Set(3+i*4, 4, kind)
	}

	// Row of every mark tag along y=8.
	tags := []string{"mirror", "clock", "door", "telephone", "garden"}
	for i, tag := range tags {
		b.SetMark(3+i*4, 8, tag)
	}

	// A short corridor to exercise long-run shading, y=14.
	for x := 2; x < size-2; x++ {
		b.Set(x, 13, world.Wall)
		b.Set(x, 15, world.Wall)
	}

	b.SetSpawns(world.Coord{X: 2, Y: 2}, world.Coord{X: size - 3, Y: size - 3})
	if err := world.EnsureSafeConnectivity(b); err != nil {
		return err
	}
	b.AddFeature("devmap")

	m, err := b.Freeze()
	if err != nil {
		return fmt.Errorf("devtools: dev map build failed: %w", err)
	}

	g.Level = 999 // marks the dev map in dumps and logs
	g.EnterLevel(m)
	g.ClearMessages()
	g.AddMessage("Switched to developer testing map.")
	g.AddMessage("Wall variants on the upper row, every mark tag below them.")
	return nil
}
