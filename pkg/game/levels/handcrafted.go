package levels

import (
	"fmt"

	"somnium/pkg/engine/world"
)

// Handcrafted map legend:
//
//	#  wall          M  mossy wall      R  rune wall
//	.  floor         *  dream mark      P  player spawn   E  entity spawn
//
// The first dreams are authored so the opening of a run always feels
// the same; procedural generation takes over from level four.
type handcraftedLevel struct {
	rows    []string
	markTag string
}

var handcrafted = map[int]handcraftedLevel{
	1: {
		markTag: "door",
		rows: []string{
			"##########",
			"#P.......#",
			"#.##..##.#",
			"#.#....#.#",
			"#..*.#.#.#",
			"#.#.M#...#",
			"#.#....#.#",
			"#.####.#.#",
			"#.......E#",
			"##########",
		},
	},
	2: {
		markTag: "clock",
		rows: []string{
			"##########",
			"#P..#....#",
			"#.#.#.##.#",
			"#.#......#",
			"#.#####R.#",
			"#......#.#",
			"######.#.#",
			"#....#.#.#",
			"#.#..*..E#",
			"##########",
		},
	},
	3: {
		// Two concentric rings with no opening between them; the
		// connectivity repair carves the join, so even the authored
		// dreams go through the same safety net.
		markTag: "mirror",
		rows: []string{
			"##########",
			"#P.......#",
			"#.######.#",
			"#.#..*.#.#",
			"#.#.##.#.#",
			"#.M.##.#.#",
			"#.#.E..#.#",
			"#.######.#",
			"#........#",
			"##########",
		},
	},
}

func handcraftedRows(level int) (handcraftedLevel, bool) {
	m, ok := handcrafted[level]
	return m, ok
}

// buildHandcrafted parses the row strings, repairs connectivity and
// freezes. Author mistakes (missing spawns, ragged rows, stray
// characters) surface as errors rather than broken maps.
func buildHandcrafted(def handcraftedLevel, level int) (*world.GridMap, error) {
	height := len(def.rows)
	if height == 0 {
		return nil, fmt.Errorf("%w: level %d has no rows", world.ErrGenerationFailed, level)
	}
	width := len(def.rows[0])

	b := world.NewBuilder(width, height)
	var player, entity *world.Coord

	for y, row := range def.rows {
		if len(row) != width {
			return nil, fmt.Errorf("%w: level %d row %d is %d wide, want %d", world.ErrGenerationFailed, level, y, len(row), width)
		}
		for x, ch := range row {
			switch ch {
			case '#':
				b.Set(x, y, world.Wall)
			case 'M':
				b.Set(x, y, world.WallMoss)
			case 'R':
				b.Set(x, y, world.WallRune)
			case '.':
				b.Set(x, y, world.Floor)
			case '*':
				b.SetMark(x, y, def.markTag)
			case 'P':
				b.Set(x, y, world.Floor)
				player = &world.Coord{X: x, Y: y}
			case 'E':
				b.Set(x, y, world.Floor)
				entity = &world.Coord{X: x, Y: y}
			default:
				return nil, fmt.Errorf("%w: level %d has unknown cell %q at (%d,%d)", world.ErrGenerationFailed, level, ch, x, y)
			}
		}
	}

	if player == nil || entity == nil {
		return nil, fmt.Errorf("%w: level %d is missing a spawn marker", world.ErrGenerationFailed, level)
	}
	b.SetSpawns(*player, *entity)

	if err := world.EnsureSafeConnectivity(b); err != nil {
		return nil, err
	}
	b.AddFeature("handcrafted")

	return b.Freeze()
}
