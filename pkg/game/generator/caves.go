package generator

import (
	"math/rand"

	"somnium/pkg/engine/world"
)

// CellularGenerator grows organic caverns with a cellular automaton:
// random interior fill, then a few majority-vote smoothing passes. The
// automaton usually leaves isolated pockets; the shared connectivity
// repair joins them afterwards.
type CellularGenerator struct {
	Width, Height       int
	FillProbability     float64
	SmoothingIterations int
}

// Name returns the strategy name.
func (g *CellularGenerator) Name() string { return "caves" }

// Generate builds a caves level.
func (g *CellularGenerator) Generate(level int, seed int64) (*world.GridMap, error) {
	rng := rand.New(rand.NewSource(levelSeed(level, seed)))
	b := world.NewBuilder(g.Width, g.Height)

	for y := 1; y < g.Height-1; y++ {
		for x := 1; x < g.Width-1; x++ {
			if rng.Float64() >= g.FillProbability {
				b.Set(x, y, world.Floor)
			}
		}
	}

	for i := 0; i < g.SmoothingIterations; i++ {
		g.smooth(b)
	}

	return finalize(b, rng, g.Name())
}

// smooth applies one majority-vote pass: a cell with five or more wall
// neighbours (of eight) becomes a wall, anything else becomes floor.
// The pass reads a snapshot so updates within an iteration never see
// each other.
func (g *CellularGenerator) smooth(b *world.Builder) {
	wall := make([]bool, g.Width*g.Height)
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			wall[y*g.Width+x] = b.Kind(x, y).IsWall()
		}
	}

	isWall := func(x, y int) bool {
		if x < 0 || x >= g.Width || y < 0 || y >= g.Height {
			return true
		}
		return wall[y*g.Width+x]
	}

	for y := 1; y < g.Height-1; y++ {
		for x := 1; x < g.Width-1; x++ {
			walls := 0
			for dy := -1; dy <= 1; dy++ {
				for dx := -1; dx <= 1; dx++ {
					if dx == 0 && dy == 0 {
						continue
					}
					if isWall(x+dx, y+dy) {
						walls++
					}
				}
			}
			if walls >= 5 {
				b.Set(x, y, world.Wall)
			} else {
				b.Set(x, y, world.Floor)
			}
		}
	}
}
