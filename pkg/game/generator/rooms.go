package generator

import (
	"fmt"
	"math/rand"
	"sort"

	"somnium/pkg/engine/world"
)

// RoomBasedGenerator carves rectangular chambers and joins them with
// L-shaped corridors. This is the "chambers" dream: small rooms, tight
// doorways, the feeling of a building that never existed.
type RoomBasedGenerator struct {
	Width, Height int
	RoomCount     int
	MinRoomSize   int
	MaxRoomSize   int
}

// Name returns the strategy name.
func (g *RoomBasedGenerator) Name() string { return "chambers" }

type room struct {
	x, y, w, h int
}

func (r room) centre() world.Coord {
	return world.Coord{X: r.x + r.w/2, Y: r.y + r.h/2}
}

func (r room) overlaps(o room) bool {
	// One cell of padding keeps rooms from sharing a wall.
	return r.x-1 < o.x+o.w && o.x-1 < r.x+r.w &&
		r.y-1 < o.y+o.h && o.y-1 < r.y+r.h
}

// Generate builds a chambers level.
func (g *RoomBasedGenerator) Generate(level int, seed int64) (*world.GridMap, error) {
	rng := rand.New(rand.NewSource(levelSeed(level, seed)))
	b := world.NewBuilder(g.Width, g.Height)

	rooms := g.placeRooms(b, rng)
	if len(rooms) < 2 {
		return nil, fmt.Errorf("%w: placed only %d rooms", world.ErrGenerationFailed, len(rooms))
	}

	// Connect neighbours in sweep order so corridors stay short. The
	// connectivity repair pass catches anything this misses.
	sort.Slice(rooms, func(i, j int) bool {
		ci, cj := rooms[i].centre(), rooms[j].centre()
		return ci.X+ci.Y < cj.X+cj.Y
	})
	for i := 1; i < len(rooms); i++ {
		carveL(b, rooms[i-1].centre(), rooms[i].centre(), rng.Intn(2) == 0)
	}

	return finalize(b, rng, g.Name())
}

// placeRooms drops non-overlapping rooms, giving up on a placement
// after a bounded number of rejected attempts.
func (g *RoomBasedGenerator) placeRooms(b *world.Builder, rng *rand.Rand) []room {
	var rooms []room
	maxAttempts := g.RoomCount * 10

	for attempt := 0; attempt < maxAttempts && len(rooms) < g.RoomCount; attempt++ {
		w := g.MinRoomSize + rng.Intn(g.MaxRoomSize-g.MinRoomSize+1)
		h := g.MinRoomSize + rng.Intn(g.MaxRoomSize-g.MinRoomSize+1)
		if w >= g.Width-2 || h >= g.Height-2 {
			continue
		}
		r := room{
			x: 1 + rng.Intn(g.Width-w-2),
			y: 1 + rng.Intn(g.Height-h-2),
			w: w,
			h: h,
		}

		collides := false
		for _, other := range rooms {
			if r.overlaps(other) {
				collides = true
				break
			}
		}
		if collides {
			continue
		}

		b.CarveRect(r.x, r.y, r.w, r.h, world.Floor)
		rooms = append(rooms, r)
	}
	return rooms
}

// carveL digs an L-shaped corridor between two points.
func carveL(b *world.Builder, from, to world.Coord, horizontalFirst bool) {
	if horizontalFirst {
		carveHorizontal(b, from.X, to.X, from.Y)
		carveVertical(b, from.Y, to.Y, to.X)
	} else {
		carveVertical(b, from.Y, to.Y, from.X)
		carveHorizontal(b, from.X, to.X, to.Y)
	}
}

func carveHorizontal(b *world.Builder, x1, x2, y int) {
	for x := min(x1, x2); x <= max(x1, x2); x++ {
		if !b.Walkable(x, y) {
			b.Set(x, y, world.Floor)
		}
	}
}

func carveVertical(b *world.Builder, y1, y2, x int) {
	for y := min(y1, y2); y <= max(y1, y2); y++ {
		if !b.Walkable(x, y) {
			b.Set(x, y, world.Floor)
		}
	}
}
