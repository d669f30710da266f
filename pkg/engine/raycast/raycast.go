// Package raycast implements grid raycasting over an immutable GridMap
// using DDA (Digital Differential Analyzer) traversal. Casts are pure
// functions of their inputs: the same origin, direction and map always
// produce the same hit, and nothing here mutates shared state, so
// per-column casts are safe to run concurrently.
package raycast

import (
	"math"

	"somnium/pkg/engine/world"
)

// Side identifies which face of a wall cell a ray struck. It is derived
// from the direction of the final grid-boundary crossing and drives
// directional shading and texture-column selection.
type Side int

// Wall faces.
const (
	SideNone Side = iota
	SideNorth
	SideSouth
	SideEast
	SideWest
)

// String returns the face name.
func (s Side) String() string {
	switch s {
	case SideNorth:
		return "North"
	case SideSouth:
		return "South"
	case SideEast:
		return "East"
	case SideWest:
		return "West"
	default:
		return "None"
	}
}

// Vertical reports whether the struck face was reached by crossing a
// vertical grid line (an east/west face). E/W faces render darker than
// N/S faces, the classic cue that keeps wall corners readable.
func (s Side) Vertical() bool {
	return s == SideEast || s == SideWest
}

// Hit is the result of a single cast. Distance is the perpendicular
// distance from the camera plane, not the Euclidean ray length: using
// the Euclidean length would bow walls outward at the screen edges
// (the fisheye effect).
type Hit struct {
	Distance float64
	CellX    int
	CellY    int
	Side     Side
	Kind     world.CellKind
	WallX    float64 // fractional hit offset along the struck face, in [0, 1)
	NoHit    bool    // ray exceeded max distance without striking a wall
}

// Cast casts one ray from (posX, posY) along (dirX, dirY) and returns
// the first wall hit within maxDist. The direction vector is typically
// dir + plane*cameraX for a screen column, in which case Distance is
// already camera-plane perpendicular. A ray that travels maxDist
// without striking a wall returns a NoHit result, not an error: the
// caller renders background for that column.
func Cast(posX, posY, dirX, dirY float64, m *world.GridMap, maxDist float64) Hit {
	mapX := int(math.Floor(posX))
	mapY := int(math.Floor(posY))

	deltaDistX := math.Inf(1)
	if dirX != 0 {
		deltaDistX = math.Abs(1 / dirX)
	}
	deltaDistY := math.Inf(1)
	if dirY != 0 {
		deltaDistY = math.Abs(1 / dirY)
	}

	var stepX, stepY int
	var sideDistX, sideDistY float64
	if dirX < 0 {
		stepX = -1
		sideDistX = (posX - float64(mapX)) * deltaDistX
	} else {
		stepX = 1
		sideDistX = (float64(mapX) + 1 - posX) * deltaDistX
	}
	if dirY < 0 {
		stepY = -1
		sideDistY = (posY - float64(mapY)) * deltaDistY
	} else {
		stepY = 1
		sideDistY = (float64(mapY) + 1 - posY) * deltaDistY
	}

	// The border-wall invariant terminates every ray, but the step
	// bound keeps a malformed map from looping forever.
	maxSteps := m.Width() + m.Height() + 4
	crossedVertical := false

	for steps := 0; steps < maxSteps; steps++ {
		var travelled float64
		if sideDistX < sideDistY {
			travelled = sideDistX
			sideDistX += deltaDistX
			mapX += stepX
			crossedVertical = true
		} else {
			travelled = sideDistY
			sideDistY += deltaDistY
			mapY += stepY
			crossedVertical = false
		}
		if travelled > maxDist {
			return Hit{Distance: maxDist, NoHit: true}
		}

		kind := m.KindAt(mapX, mapY)
		if !kind.IsWall() {
			continue
		}

		var perpDist float64
		var side Side
		if crossedVertical {
			perpDist = (float64(mapX) - posX + (1-float64(stepX))/2) / dirX
			if stepX > 0 {
				side = SideEast
			} else {
				side = SideWest
			}
		} else {
			perpDist = (float64(mapY) - posY + (1-float64(stepY))/2) / dirY
			if stepY > 0 {
				side = SideSouth
			} else {
				side = SideNorth
			}
		}

		var wallX float64
		if crossedVertical {
			wallX = posY + perpDist*dirY
		} else {
			wallX = posX + perpDist*dirX
		}
		wallX -= math.Floor(wallX)

		// Mirror the texture coordinate on opposing faces so patterns
		// read left-to-right from the viewer's side.
		if crossedVertical && dirX > 0 {
			wallX = 1 - wallX
		}
		if !crossedVertical && dirY < 0 {
			wallX = 1 - wallX
		}

		return Hit{
			Distance: perpDist,
			CellX:    mapX,
			CellY:    mapY,
			Side:     side,
			Kind:     kind,
			WallX:    wallX,
		}
	}

	return Hit{Distance: maxDist, NoHit: true}
}

// CastAngle casts along a heading angle in radians (0 points along +X).
// Used by interaction and visibility queries where no camera plane is
// involved; the returned distance is perpendicular to the implied
// plane, which for a unit direction equals the Euclidean distance.
func CastAngle(posX, posY, angle float64, m *world.GridMap, maxDist float64) Hit {
	return Cast(posX, posY, math.Cos(angle), math.Sin(angle), m, maxDist)
}
