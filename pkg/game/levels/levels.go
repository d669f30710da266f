// Package levels hands finished maps to the game loop. The first three
// levels are handcrafted dreamscapes; beyond them the provider asks the
// procedural generator, retrying with perturbed seeds and falling back
// to a minimal chamber when generation keeps failing. The player always
// gets a level.
package levels

import (
	"fmt"

	"somnium/pkg/engine/world"
	"somnium/pkg/game/generator"
)

// GenerationAttempts is the initial generator run plus one retry with a
// perturbed seed; after that the provider gives up and falls back.
const GenerationAttempts = 2

// seedPerturbation spreads retry seeds far apart so a retry never
// replays a nearby random stream.
const seedPerturbation = 1_000_003

// FallbackFeature tags maps produced by the fallback path so callers
// can tell the player the dream "steadied".
const FallbackFeature = "fallback"

// Provider loads levels. A nil Generator means the strategy is picked
// per level with generator.ForLevel.
type Provider struct {
	Generator generator.LevelGenerator
}

// Load returns the map for a level. Handcrafted levels win when one
// exists for the number; otherwise the procedural generator runs with
// retries, and the guaranteed fallback chamber is the last resort.
func (p *Provider) Load(level int, seed int64) (*world.GridMap, error) {
	if rows, ok := handcraftedRows(level); ok {
		return buildHandcrafted(rows, level)
	}

	gen := p.Generator
	if gen == nil {
		gen = generator.ForLevel(level)
	}

	var lastErr error
	for attempt := 0; attempt < GenerationAttempts; attempt++ {
		m, err := gen.Generate(level, seed+int64(attempt)*seedPerturbation)
		if err == nil {
			return m, nil
		}
		lastErr = err
	}

	m, err := fallbackMap()
	if err != nil {
		return nil, fmt.Errorf("levels: generation failed (%v) and fallback failed: %w", lastErr, err)
	}
	return m, nil
}

// fallbackMap builds the minimal always-valid chamber: one open room,
// spawns in opposite corners, a single mark in the middle.
func fallbackMap() (*world.GridMap, error) {
	b := world.NewBuilder(12, 12)
	b.CarveRect(1, 1, 10, 10, world.Floor)
	b.SetMark(6, 6, "mirror")
	b.SetSpawns(world.Coord{X: 1, Y: 1}, world.Coord{X: 10, Y: 10})
	b.AddFeature(FallbackFeature)
	return b.Freeze()
}
