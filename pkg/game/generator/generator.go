// Package generator builds dream levels. Three strategies share one
// pipeline: carve a layout into a world.Builder, seal the border,
// decorate walls, place marks and spawns, repair connectivity, then
// freeze. Every strategy is deterministic for a fixed (level, seed)
// pair; all randomness flows through a single rand.Rand seeded up
// front.
package generator

import (
	"fmt"
	"math/rand"

	"somnium/pkg/engine/world"
	"somnium/pkg/game/config"
)

// LevelGenerator is the interface for map generation strategies.
type LevelGenerator interface {
	Generate(level int, seed int64) (*world.GridMap, error)
	Name() string
}

// Available generators.
var (
	Chambers = &RoomBasedGenerator{
		Width:       config.DefaultGridWidth,
		Height:      config.DefaultGridHeight,
		RoomCount:   8,
		MinRoomSize: 3,
		MaxRoomSize: 7,
	}
	Caves = &CellularGenerator{
		Width:               config.DefaultGridWidth,
		Height:              config.DefaultGridHeight,
		FillProbability:     0.45,
		SmoothingIterations: 4,
	}
	Labyrinth = &MazeGenerator{
		Width:           config.DefaultGridWidth,
		Height:          config.DefaultGridHeight,
		BranchingFactor: 0.08,
	}
)

// ForLevel returns the strategy for a level number. Dreams cycle
// through chambers, caves and labyrinth so consecutive levels never
// feel the same.
func ForLevel(level int) LevelGenerator {
	switch (level - 1) % 3 {
	case 0:
		return Chambers
	case 1:
		return Caves
	default:
		return Labyrinth
	}
}

// levelSeed folds the level number into the run seed so two levels of
// the same run never share a random stream.
func levelSeed(level int, seed int64) int64 {
	return seed*31 + int64(level)
}

// finalize runs the shared tail of every strategy: border, wall
// decoration, dream marks, spawns, connectivity repair, feature
// derivation and the freeze validation.
func finalize(b *world.Builder, rng *rand.Rand, strategy string) (*world.GridMap, error) {
	b.SealBorders()
	decorateWalls(b, rng)
	placeMarks(b, rng)

	if err := placeSpawns(b, rng); err != nil {
		return nil, err
	}
	if err := world.EnsureSafeConnectivity(b); err != nil {
		return nil, err
	}

	b.AddFeature(strategy)
	deriveFeatures(b)

	return b.Freeze()
}

// decorateWalls turns some interior walls that face open floor into
// moss or rune variants. Purely visual; both remain walls.
func decorateWalls(b *world.Builder, rng *rand.Rand) {
	for y := 1; y < b.Height()-1; y++ {
		for x := 1; x < b.Width()-1; x++ {
			if b.Kind(x, y) != world.Wall || !facesFloor(b, x, y) {
				continue
			}
			switch roll := rng.Float64(); {
			case roll < 0.05:
				b.Set(x, y, world.WallRune)
			case roll < 0.17:
				b.Set(x, y, world.WallMoss)
			}
		}
	}
}

func facesFloor(b *world.Builder, x, y int) bool {
	return b.Walkable(x+1, y) || b.Walkable(x-1, y) ||
		b.Walkable(x, y+1) || b.Walkable(x, y-1)
}

// markTags are the dream symbols a level can carry. Marks feed the
// story fragments shown when the player steps onto them.
var markTags = []string{"mirror", "clock", "door", "telephone", "garden"}

// placeMarks drops one to three dream marks on open floor.
func placeMarks(b *world.Builder, rng *rand.Rand) {
	floor := floorCells(b)
	if len(floor) == 0 {
		return
	}
	count := 1 + rng.Intn(3)
	for i := 0; i < count && len(floor) > 0; i++ {
		idx := rng.Intn(len(floor))
		c := floor[idx]
		floor = append(floor[:idx], floor[idx+1:]...)
		b.SetMark(c.X, c.Y, markTags[rng.Intn(len(markTags))])
	}
}

// placeSpawns picks the player spawn away from the grid centre so runs
// never open in the middle of the level, and puts the entity at least
// EntityMinSpawnDistance away when the layout allows it.
func placeSpawns(b *world.Builder, rng *rand.Rand) error {
	floor := floorCells(b)
	if len(floor) < 2 {
		return fmt.Errorf("%w: only %d floor cells, cannot place spawns", world.ErrGenerationFailed, len(floor))
	}

	centre := world.Coord{X: b.Width() / 2, Y: b.Height() / 2}
	minFromCentre := (b.Width() + b.Height()) / 8
	var outer []world.Coord
	for _, c := range floor {
		if c.Manhattan(centre) >= minFromCentre {
			outer = append(outer, c)
		}
	}
	if len(outer) == 0 {
		outer = floor
	}

	player := outer[rng.Intn(len(outer))]

	entity := player
	bestDist := -1
	for _, c := range floor {
		d := c.Manhattan(player)
		if d > bestDist {
			bestDist = d
			entity = c
		}
	}
	if bestDist >= config.EntityMinSpawnDistance {
		// Any sufficiently distant cell will do; pick one at random so
		// the entity is not always pinned to the far corner.
		var distant []world.Coord
		for _, c := range floor {
			if c.Manhattan(player) >= config.EntityMinSpawnDistance {
				distant = append(distant, c)
			}
		}
		entity = distant[rng.Intn(len(distant))]
	}
	if entity == player {
		return fmt.Errorf("%w: no cell available for entity spawn", world.ErrGenerationFailed)
	}

	b.SetSpawns(player, entity)
	return nil
}

// floorCells returns plain Floor coordinates in row-major order. Marks
// and spawns already placed are excluded so they are never overwritten.
func floorCells(b *world.Builder) []world.Coord {
	var cells []world.Coord
	for y := 0; y < b.Height(); y++ {
		for x := 0; x < b.Width(); x++ {
			if b.Kind(x, y) == world.Floor {
				cells = append(cells, world.Coord{X: x, Y: y})
			}
		}
	}
	return cells
}

// deriveFeatures tags the level with the symbolic traits the story
// system keys on.
func deriveFeatures(b *world.Builder) {
	walkable := b.WalkableCells()
	nodes := len(walkable)
	if nodes == 0 {
		return
	}

	// Count adjacency edges between walkable cells. A connected grid
	// with edges >= nodes must contain a cycle.
	edges := 0
	for _, c := range walkable {
		if b.Walkable(c.X+1, c.Y) {
			edges++
		}
		if b.Walkable(c.X, c.Y+1) {
			edges++
		}
	}
	if edges >= nodes {
		b.AddFeature("has-loop")
	}

	openRatio := float64(nodes) / float64(b.Width()*b.Height())
	if openRatio > 0.45 {
		b.AddFeature("cavernous")
	} else if openRatio < 0.25 {
		b.AddFeature("claustrophobic")
	}

	if longestRun(b) >= 8 {
		b.AddFeature("long-corridor")
	}
}

// longestRun finds the longest straight walkable run, horizontal or
// vertical.
func longestRun(b *world.Builder) int {
	best := 0
	for y := 0; y < b.Height(); y++ {
		run := 0
		for x := 0; x < b.Width(); x++ {
			run = extendRun(b.Walkable(x, y), run, &best)
		}
	}
	for x := 0; x < b.Width(); x++ {
		run := 0
		for y := 0; y < b.Height(); y++ {
			run = extendRun(b.Walkable(x, y), run, &best)
		}
	}
	return best
}

func extendRun(walkable bool, run int, best *int) int {
	if !walkable {
		return 0
	}
	run++
	if run > *best {
		*best = run
	}
	return run
}
