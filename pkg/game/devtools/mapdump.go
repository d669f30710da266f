// Package devtools provides developer tools for testing and debugging.
package devtools

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"somnium/pkg/engine/world"
	"somnium/pkg/game/state"
)

const mapDumpFilename = "map.txt"

// cellSymbol returns the single-character symbol for a cell kind.
func cellSymbol(kind world.CellKind) rune {
	switch kind {
	case world.Wall:
		return '#'
	case world.WallMoss:
		return 'M'
	case world.WallRune:
		return 'R'
	case world.DreamMark:
		return '*'
	case world.SpawnPoint:
		return 'P'
	case world.EntitySpawn:
		return 'E'
	default:
		return '.'
	}
}

// writeMapGrid writes the grid to w with the live player and entity
// positions overlaid.
func writeMapGrid(w io.Writer, g *state.Game) {
	px, py := int(g.Player.X), int(g.Player.Y)
	ex, ey := -1, -1
	if g.Entity != nil {
		ex, ey = int(g.Entity.X), int(g.Entity.Y)
	}

	for y := 0; y < g.Grid.Height(); y++ {
		for x := 0; x < g.Grid.Width(); x++ {
			switch {
			case x == px && y == py:
				fmt.Fprint(w, "@")
			case x == ex && y == ey:
				fmt.Fprint(w, "E")
			default:
				fmt.Fprintf(w, "%c", cellSymbol(g.Grid.KindAt(x, y)))
			}
		}
		fmt.Fprintln(w)
	}
}

// DumpMapToFile writes a full debug dump to map.txt: metadata, legend,
// the grid with player/entity overlay, and the dream mark list.
// Format is human- and LLM-readable (sections, key: value, consistent structure).
func DumpMapToFile(g *state.Game) (string, error) {
	if g.Grid == nil {
		return "", fmt.Errorf("no grid")
	}

	absPath, err := filepath.Abs(mapDumpFilename)
	if err != nil {
		return "", err
	}

	f, err := os.Create(absPath)
	if err != nil {
		return "", err
	}
	defer f.Close()

	fmt.Fprintln(f, "=== MAP DUMP DEBUG (level layout, spawns, marks) ===")
	fmt.Fprintln(f, "")
	fmt.Fprintln(f, "--- Metadata ---")
	fmt.Fprintf(f, "level: %d\n", g.Level)
	fmt.Fprintf(f, "seed: %d\n", g.Seed)
	fmt.Fprintf(f, "grid_width: %d\n", g.Grid.Width())
	fmt.Fprintf(f, "grid_height: %d\n", g.Grid.Height())
	fmt.Fprintf(f, "coordinate_system: x,y (0-based, x=horizontal, y=vertical)\n")
	fmt.Fprintf(f, "player_pos: %.2f,%.2f\n", g.Player.X, g.Player.Y)
	fmt.Fprintf(f, "player_heading_rad: %.3f\n", g.Player.Heading())
	if g.Entity != nil {
		fmt.Fprintf(f, "entity_pos: %.2f,%.2f\n", g.Entity.X, g.Entity.Y)
		fmt.Fprintf(f, "entity_met: %v\n", g.Entity.Met)
	}
	fmt.Fprintf(f, "player_spawn: %d,%d\n", g.Grid.PlayerSpawn().X, g.Grid.PlayerSpawn().Y)
	fmt.Fprintf(f, "entity_spawn: %d,%d\n", g.Grid.EntitySpawn().X, g.Grid.EntitySpawn().Y)
	fmt.Fprintf(f, "walkable_cells: %d\n", g.Grid.WalkableCount())
	fmt.Fprintf(f, "features: %s\n", strings.Join(g.Grid.Features(), ", "))
	fmt.Fprintln(f, "")

	fmt.Fprintln(f, "--- Legend (cell symbols) ---")
	fmt.Fprintln(f, ". = floor  # = wall  M = mossy wall  R = rune wall  * = dream mark  P = player spawn  E = entity  @ = player")
	fmt.Fprintln(f, "")

	fmt.Fprintln(f, "--- Map ---")
	writeMapGrid(f, g)
	fmt.Fprintln(f, "")

	fmt.Fprintln(f, "Dream marks:")
	var marks []world.Coord
	for y := 0; y < g.Grid.Height(); y++ {
		for x := 0; x < g.Grid.Width(); x++ {
			if g.Grid.KindAt(x, y) == world.DreamMark {
				marks = append(marks, world.Coord{X: x, Y: y})
			}
		}
	}
	sort.Slice(marks, func(i, j int) bool { return marks[i].Less(marks[j]) })
	for _, c := range marks {
		tag, _ := g.Grid.MarkTag(c.X, c.Y)
		fmt.Fprintf(f, "  x: %d y: %d tag: %q\n", c.X, c.Y, tag)
	}
	fmt.Fprintln(f, "")

	fmt.Fprintln(f, "=== END MAP DUMP ===")

	if err := f.Sync(); err != nil {
		return absPath, err
	}
	return absPath, nil
}
