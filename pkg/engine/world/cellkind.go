// Package world provides the grid-based level primitives: cell kinds,
// the immutable GridMap, the mutable Builder used during generation,
// and connectivity analysis/repair over builders.
package world

// CellKind is the kind of a single grid cell.
type CellKind uint8

// Cell kinds. The three wall variants are solid and differ only in
// texture/shade selection; everything else is walkable.
const (
	Wall CellKind = iota
	WallMoss
	WallRune
	Floor
	SpawnPoint
	EntitySpawn
	DreamMark // floor cell carrying a symbolic tag, see Builder.SetMark
)

// IsWall returns true for the solid wall variants.
func (k CellKind) IsWall() bool {
	return k == Wall || k == WallMoss || k == WallRune
}

// Walkable returns true if the player can occupy a cell of this kind.
func (k CellKind) Walkable() bool {
	return !k.IsWall()
}

// String returns a short name for the cell kind.
func (k CellKind) String() string {
	switch k {
	case Wall:
		return "Wall"
	case WallMoss:
		return "WallMoss"
	case WallRune:
		return "WallRune"
	case Floor:
		return "Floor"
	case SpawnPoint:
		return "SpawnPoint"
	case EntitySpawn:
		return "EntitySpawn"
	case DreamMark:
		return "DreamMark"
	default:
		return "Unknown"
	}
}

// Coord is a grid cell position.
type Coord struct {
	X, Y int
}

// Manhattan returns the Manhattan distance to another coordinate.
func (c Coord) Manhattan(o Coord) int {
	return abs(c.X-o.X) + abs(c.Y-o.Y)
}

// Less orders coordinates lexicographically by (Y, X). Used wherever a
// deterministic ordering over cells is required.
func (c Coord) Less(o Coord) bool {
	if c.Y != o.Y {
		return c.Y < o.Y
	}
	return c.X < o.X
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
