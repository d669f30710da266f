package world

import (
	"errors"
	"sort"

	"github.com/zyedidia/generic/mapset"
)

// ErrOutOfBounds is returned by CellAt for coordinates outside the grid.
// It signals a caller bug: the border-wall invariant means well-behaved
// ray and collision queries never leave the grid.
var ErrOutOfBounds = errors.New("world: cell coordinates out of bounds")

// ErrGenerationFailed marks any error raised when a level cannot be
// built into a valid, connected map. Callers recover by falling back to
// a predefined level; the error never reaches the player.
var ErrGenerationFailed = errors.New("world: level generation failed")

// GridMap is one level's immutable cell matrix. It is constructed only
// by Builder.Freeze, after which no mutation API exists: a new level
// means a new GridMap.
type GridMap struct {
	width  int
	height int
	cells  []CellKind // row-major

	playerSpawn Coord
	entitySpawn Coord

	features mapset.Set[string]
	marks    map[Coord]string
}

// Width returns the grid width in cells.
func (m *GridMap) Width() int { return m.width }

// Height returns the grid height in cells.
func (m *GridMap) Height() int { return m.height }

// CellAt returns the kind of the cell at (x, y), or ErrOutOfBounds when
// the coordinates exceed the grid dimensions. The error is never
// silently clamped away: an out-of-bounds query means an invariant was
// violated upstream.
func (m *GridMap) CellAt(x, y int) (CellKind, error) {
	if x < 0 || x >= m.width || y < 0 || y >= m.height {
		return Wall, ErrOutOfBounds
	}
	return m.cells[y*m.width+x], nil
}

// KindAt is the bounds-tolerant lookup used by the ray/collision hot
// path: out-of-bounds reads as Wall, which is consistent with the
// border-wall invariant and guarantees ray termination.
func (m *GridMap) KindAt(x, y int) CellKind {
	if x < 0 || x >= m.width || y < 0 || y >= m.height {
		return Wall
	}
	return m.cells[y*m.width+x]
}

// IsWalkable returns true iff the cell at (x, y) is in bounds and not a
// wall variant.
func (m *GridMap) IsWalkable(x, y int) bool {
	return m.KindAt(x, y).Walkable()
}

// PlayerSpawn returns the grid coordinates of the player spawn cell.
func (m *GridMap) PlayerSpawn() Coord { return m.playerSpawn }

// EntitySpawn returns the grid coordinates of the dream entity spawn cell.
func (m *GridMap) EntitySpawn() Coord { return m.entitySpawn }

// HasFeature reports whether the map carries the given symbolic feature
// tag (e.g. "has-loop", "long-corridor").
func (m *GridMap) HasFeature(tag string) bool {
	return m.features.Has(tag)
}

// Features returns the map's feature tags in sorted order. The tag set
// is derived once after generation and consumed by the story layer.
func (m *GridMap) Features() []string {
	tags := make([]string, 0, m.features.Size())
	m.features.Each(func(tag string) {
		tags = append(tags, tag)
	})
	sort.Strings(tags)
	return tags
}

// MarkTag returns the symbolic tag of a DreamMark cell, if any.
func (m *GridMap) MarkTag(x, y int) (string, bool) {
	tag, ok := m.marks[Coord{X: x, Y: y}]
	return tag, ok
}

// WalkableCount returns the number of walkable cells.
func (m *GridMap) WalkableCount() int {
	n := 0
	for _, k := range m.cells {
		if k.Walkable() {
			n++
		}
	}
	return n
}
