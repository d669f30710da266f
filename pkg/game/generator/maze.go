package generator

import (
	"math/rand"

	"somnium/pkg/engine/world"
)

// MazeGenerator carves a perfect maze with iterative depth-first
// backtracking on the odd-coordinate lattice, then knocks out extra
// walls so the labyrinth has loops. Without the extra passages a
// perfect maze has exactly one path between any two cells, which reads
// as tedium rather than dread.
type MazeGenerator struct {
	Width, Height int

	// BranchingFactor is the probability that an eligible interior
	// wall is removed after the maze is carved.
	BranchingFactor float64
}

// Name returns the strategy name.
func (g *MazeGenerator) Name() string { return "labyrinth" }

// Generate builds a labyrinth level.
func (g *MazeGenerator) Generate(level int, seed int64) (*world.GridMap, error) {
	rng := rand.New(rand.NewSource(levelSeed(level, seed)))
	b := world.NewBuilder(g.Width, g.Height)

	g.carveMaze(b, rng)
	g.addLoops(b, rng)

	return finalize(b, rng, g.Name())
}

// carveMaze runs DFS backtracking over lattice nodes two cells apart,
// carving the wall between a node and its chosen neighbour. Iterative
// with an explicit stack, like the flood fill in the world package.
func (g *MazeGenerator) carveMaze(b *world.Builder, rng *rand.Rand) {
	start := world.Coord{X: 1, Y: 1}
	b.Set(start.X, start.Y, world.Floor)
	stack := []world.Coord{start}

	for len(stack) > 0 {
		c := stack[len(stack)-1]

		neighbours := g.unvisitedNeighbours(b, c)
		if len(neighbours) == 0 {
			stack = stack[:len(stack)-1]
			continue
		}

		next := neighbours[rng.Intn(len(neighbours))]
		// Carve the node and the wall cell between.
		b.Set((c.X+next.X)/2, (c.Y+next.Y)/2, world.Floor)
		b.Set(next.X, next.Y, world.Floor)
		stack = append(stack, next)
	}
}

// unvisitedNeighbours returns lattice nodes two cells away that are
// still solid wall.
func (g *MazeGenerator) unvisitedNeighbours(b *world.Builder, c world.Coord) []world.Coord {
	var out []world.Coord
	for _, n := range []world.Coord{
		{X: c.X, Y: c.Y - 2},
		{X: c.X + 2, Y: c.Y},
		{X: c.X, Y: c.Y + 2},
		{X: c.X - 2, Y: c.Y},
	} {
		if n.X >= 1 && n.X < g.Width-1 && n.Y >= 1 && n.Y < g.Height-1 && !b.Walkable(n.X, n.Y) {
			out = append(out, n)
		}
	}
	return out
}

// addLoops removes interior walls that separate two floor cells on
// opposite sides, with probability BranchingFactor each.
func (g *MazeGenerator) addLoops(b *world.Builder, rng *rand.Rand) {
	for y := 1; y < g.Height-1; y++ {
		for x := 1; x < g.Width-1; x++ {
			if b.Walkable(x, y) {
				continue
			}
			horizontal := b.Walkable(x-1, y) && b.Walkable(x+1, y)
			vertical := b.Walkable(x, y-1) && b.Walkable(x, y+1)
			if !horizontal && !vertical {
				continue
			}
			if rng.Float64() < g.BranchingFactor {
				b.Set(x, y, world.Floor)
			}
		}
	}
}
