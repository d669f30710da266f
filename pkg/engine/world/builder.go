package world

import (
	"fmt"

	"github.com/zyedidia/generic/mapset"
)

// Builder is the mutable staging buffer used while a level is being
// generated. Generation strategies carve into it freely; Freeze then
// validates every invariant and produces the immutable GridMap. This
// keeps "immutable after validation" structural rather than a
// convention.
type Builder struct {
	width  int
	height int
	cells  []CellKind

	playerSpawn Coord
	entitySpawn Coord
	spawnsSet   bool

	features mapset.Set[string]
	marks    map[Coord]string
}

// NewBuilder creates a staging grid of the given dimensions, filled
// with Wall.
func NewBuilder(width, height int) *Builder {
	b := &Builder{
		width:    width,
		height:   height,
		cells:    make([]CellKind, width*height),
		features: mapset.New[string](),
		marks:    make(map[Coord]string),
	}
	for i := range b.cells {
		b.cells[i] = Wall
	}
	return b
}

// Width returns the staging grid width.
func (b *Builder) Width() int { return b.width }

// Height returns the staging grid height.
func (b *Builder) Height() int { return b.height }

// InBounds reports whether (x, y) lies within the staging grid.
func (b *Builder) InBounds(x, y int) bool {
	return x >= 0 && x < b.width && y >= 0 && y < b.height
}

// Kind returns the cell kind at (x, y); out of bounds reads as Wall.
func (b *Builder) Kind(x, y int) CellKind {
	if !b.InBounds(x, y) {
		return Wall
	}
	return b.cells[y*b.width+x]
}

// Walkable reports whether (x, y) is in bounds and not a wall variant.
func (b *Builder) Walkable(x, y int) bool {
	return b.Kind(x, y).Walkable()
}

// Set writes a cell kind. Writes outside the grid are ignored.
func (b *Builder) Set(x, y int, kind CellKind) {
	if !b.InBounds(x, y) {
		return
	}
	if prev := b.cells[y*b.width+x]; prev == DreamMark && kind != DreamMark {
		delete(b.marks, Coord{X: x, Y: y})
	}
	b.cells[y*b.width+x] = kind
}

// CarveRect sets every cell in the rectangle to the given kind.
func (b *Builder) CarveRect(x, y, w, h int, kind CellKind) {
	for cy := y; cy < y+h; cy++ {
		for cx := x; cx < x+w; cx++ {
			b.Set(cx, cy, kind)
		}
	}
}

// SealBorders forces every border cell to Wall. Generation always calls
// this before validation; the border is what keeps rays and collision
// queries inside the grid.
func (b *Builder) SealBorders() {
	for x := 0; x < b.width; x++ {
		b.Set(x, 0, Wall)
		b.Set(x, b.height-1, Wall)
	}
	for y := 0; y < b.height; y++ {
		b.Set(0, y, Wall)
		b.Set(b.width-1, y, Wall)
	}
}

// SetMark turns the cell into a DreamMark carrying the given tag.
func (b *Builder) SetMark(x, y int, tag string) {
	if !b.InBounds(x, y) {
		return
	}
	b.cells[y*b.width+x] = DreamMark
	b.marks[Coord{X: x, Y: y}] = tag
}

// MarkTag returns the tag of a DreamMark cell, if any.
func (b *Builder) MarkTag(x, y int) (string, bool) {
	tag, ok := b.marks[Coord{X: x, Y: y}]
	return tag, ok
}

// SetSpawns records the player and entity spawn cells.
func (b *Builder) SetSpawns(player, entity Coord) {
	b.playerSpawn = player
	b.entitySpawn = entity
	b.spawnsSet = true
}

// PlayerSpawn returns the staged player spawn coordinate.
func (b *Builder) PlayerSpawn() Coord { return b.playerSpawn }

// EntitySpawn returns the staged entity spawn coordinate.
func (b *Builder) EntitySpawn() Coord { return b.entitySpawn }

// AddFeature records a symbolic feature tag on the level.
func (b *Builder) AddFeature(tag string) {
	b.features.Put(tag)
}

// WalkableCells returns all walkable coordinates in row-major order.
func (b *Builder) WalkableCells() []Coord {
	var cells []Coord
	for y := 0; y < b.height; y++ {
		for x := 0; x < b.width; x++ {
			if b.cells[y*b.width+x].Walkable() {
				cells = append(cells, Coord{X: x, Y: y})
			}
		}
	}
	return cells
}

// Freeze validates the staged grid and returns the immutable GridMap.
// Any invariant violation (bad dimensions, open border, unwalkable
// spawn, disconnected walkable region) wraps ErrGenerationFailed: a
// broken map is never allowed to escape into play.
func (b *Builder) Freeze() (*GridMap, error) {
	if b.width < 3 || b.height < 3 {
		return nil, fmt.Errorf("%w: grid %dx%d too small to hold a border and a floor cell", ErrGenerationFailed, b.width, b.height)
	}
	if !b.spawnsSet {
		return nil, fmt.Errorf("%w: spawns never placed", ErrGenerationFailed)
	}
	for x := 0; x < b.width; x++ {
		if !b.Kind(x, 0).IsWall() || !b.Kind(x, b.height-1).IsWall() {
			return nil, fmt.Errorf("%w: border cell at column %d is not a wall", ErrGenerationFailed, x)
		}
	}
	for y := 0; y < b.height; y++ {
		if !b.Kind(0, y).IsWall() || !b.Kind(b.width-1, y).IsWall() {
			return nil, fmt.Errorf("%w: border cell at row %d is not a wall", ErrGenerationFailed, y)
		}
	}
	if !b.Walkable(b.playerSpawn.X, b.playerSpawn.Y) {
		return nil, fmt.Errorf("%w: player spawn %v is not walkable", ErrGenerationFailed, b.playerSpawn)
	}
	if !b.Walkable(b.entitySpawn.X, b.entitySpawn.Y) {
		return nil, fmt.Errorf("%w: entity spawn %v is not walkable", ErrGenerationFailed, b.entitySpawn)
	}

	reached := ReachableSet(b, b.playerSpawn)
	for _, c := range b.WalkableCells() {
		if !reached.Has(c) {
			return nil, fmt.Errorf("%w: walkable cell %v unreachable from player spawn", ErrGenerationFailed, c)
		}
	}

	m := &GridMap{
		width:       b.width,
		height:      b.height,
		cells:       make([]CellKind, len(b.cells)),
		playerSpawn: b.playerSpawn,
		entitySpawn: b.entitySpawn,
		features:    mapset.New[string](),
		marks:       make(map[Coord]string, len(b.marks)),
	}
	copy(m.cells, b.cells)
	b.features.Each(func(tag string) {
		m.features.Put(tag)
	})
	for c, tag := range b.marks {
		m.marks[c] = tag
	}
	return m, nil
}
