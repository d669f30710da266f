package renderer

import (
	"math"

	"somnium/pkg/engine/raycast"
	"somnium/pkg/engine/world"
	"somnium/pkg/game/config"
	"somnium/pkg/game/state"
)

// Column is one vertical strip of the scene: the ray hit for a screen
// column. Backends turn Distance into a wall slab height and Kind,
// Side and WallX into color or texture.
type Column struct {
	Hit raycast.Hit
}

// Sweep casts one ray per screen column across the camera plane.
// cameraX runs from -1 at the left edge to +1 at the right, so the
// returned distances are already perpendicular and fisheye-free.
func Sweep(p *state.Player, m *world.GridMap, width int) []Column {
	cols := make([]Column, width)
	for x := 0; x < width; x++ {
		cameraX := 2*float64(x)/float64(width) - 1
		rayX := p.DirX + p.PlaneX*cameraX
		rayY := p.DirY + p.PlaneY*cameraX
		cols[x] = Column{Hit: raycast.Cast(p.X, p.Y, rayX, rayY, m, config.RenderDistance)}
	}
	return cols
}

// SlabBounds converts a perpendicular distance into the top and bottom
// screen rows of the wall slab, clamped to the screen.
func SlabBounds(distance float64, screenHeight int) (top, bottom int) {
	if distance < 1e-4 {
		distance = 1e-4
	}
	lineHeight := int(float64(screenHeight) / distance)
	top = screenHeight/2 - lineHeight/2
	bottom = screenHeight/2 + lineHeight/2
	if top < 0 {
		top = 0
	}
	if bottom > screenHeight-1 {
		bottom = screenHeight - 1
	}
	return top, bottom
}

// Shade returns the brightness factor for a hit: east/west faces render
// darker than north/south, and everything fades with distance.
func Shade(hit raycast.Hit) float64 {
	f := 1.0
	if hit.Side.Vertical() {
		f = 0.7
	}
	fade := 1 - 0.6*hit.Distance/config.RenderDistance
	if fade < 0.25 {
		fade = 0.25
	}
	return f * fade
}

// Sprite is the entity projected into screen space.
type Sprite struct {
	Visible  bool
	ScreenX  int
	Height   int
	Distance float64 // perpendicular, comparable to Column distances
}

// ProjectEntity transforms the entity into camera space. A sprite
// behind the camera plane is not visible; occlusion against walls is
// the backend's job, comparing Distance per column.
func ProjectEntity(p *state.Player, e *state.Entity, width, height int) Sprite {
	relX := e.X - p.X
	relY := e.Y - p.Y

	det := p.PlaneX*p.DirY - p.DirX*p.PlaneY
	if det == 0 {
		return Sprite{}
	}
	invDet := 1 / det
	transformX := invDet * (p.DirY*relX - p.DirX*relY)
	transformY := invDet * (-p.PlaneY*relX + p.PlaneX*relY)

	if transformY <= 0 {
		return Sprite{}
	}

	return Sprite{
		Visible:  true,
		ScreenX:  int(float64(width) / 2 * (1 + transformX/transformY)),
		Height:   int(math.Abs(float64(height) / transformY)),
		Distance: transformY,
	}
}

// MinimapCell classifies one cell of the minimap viewport.
type MinimapCell uint8

// Minimap cell classes.
const (
	MinimapVoid MinimapCell = iota
	MinimapWall
	MinimapFloor
	MinimapMark
	MinimapPlayer
	MinimapEntity
)

// MinimapModel builds a (2*radius+1) square window of the map centred
// on the player, rows first. Backends only have to color it in.
func MinimapModel(g *state.Game, radius int) [][]MinimapCell {
	size := 2*radius + 1
	px, py := int(g.Player.X), int(g.Player.Y)
	ex, ey := -1, -1
	if g.Entity != nil {
		ex, ey = int(g.Entity.X), int(g.Entity.Y)
	}

	grid := make([][]MinimapCell, size)
	for row := 0; row < size; row++ {
		grid[row] = make([]MinimapCell, size)
		for col := 0; col < size; col++ {
			x := px - radius + col
			y := py - radius + row

			switch {
			case x == px && y == py:
				grid[row][col] = MinimapPlayer
			case x == ex && y == ey:
				grid[row][col] = MinimapEntity
			default:
				kind, err := g.Grid.CellAt(x, y)
				switch {
				case err != nil:
					grid[row][col] = MinimapVoid
				case kind == world.DreamMark:
					grid[row][col] = MinimapMark
				case kind.IsWall():
					grid[row][col] = MinimapWall
				default:
					grid[row][col] = MinimapFloor
				}
			}
		}
	}
	return grid
}
