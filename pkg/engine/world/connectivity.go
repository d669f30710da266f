package world

import (
	"fmt"
	"sort"

	"github.com/zyedidia/generic/mapset"
)

// ReachableSet flood-fills (4-directional) over walkable cells starting
// at origin and returns every coordinate reached. The fill is iterative
// with an explicit stack so large grids cannot blow the call stack.
// Returns an empty set when origin itself is not walkable.
func ReachableSet(b *Builder, origin Coord) mapset.Set[Coord] {
	reached := mapset.New[Coord]()
	if !b.Walkable(origin.X, origin.Y) {
		return reached
	}

	stack := []Coord{origin}
	reached.Put(origin)
	for len(stack) > 0 {
		c := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		for _, n := range []Coord{
			{X: c.X, Y: c.Y - 1},
			{X: c.X + 1, Y: c.Y},
			{X: c.X, Y: c.Y + 1},
			{X: c.X - 1, Y: c.Y},
		} {
			if b.Walkable(n.X, n.Y) && !reached.Has(n) {
				reached.Put(n)
				stack = append(stack, n)
			}
		}
	}
	return reached
}

// EnsureConnectivity repairs the staged grid until every walkable cell
// is reachable from origin. Each pass finds the isolated cell closest
// (Manhattan) to the reachable region and carves a straight or L-shaped
// corridor to it. Every carve merges at least one isolated cell into
// the reachable region, so iterations are bounded by the walkable cell
// count; exceeding that bound wraps ErrGenerationFailed.
func EnsureConnectivity(b *Builder, origin Coord) error {
	if !b.Walkable(origin.X, origin.Y) {
		return fmt.Errorf("%w: connectivity origin %v is not walkable", ErrGenerationFailed, origin)
	}

	// +1 so a grid that is already connected never trips the bound.
	maxRepairs := len(b.WalkableCells()) + 1
	for i := 0; i < maxRepairs; i++ {
		reached := ReachableSet(b, origin)
		isolated := isolatedCells(b, reached)
		if len(isolated) == 0 {
			return nil
		}
		from, to := closestRepairPair(reachedSorted(reached), isolated)
		carveCorridor(b, from, to, false)
	}
	return fmt.Errorf("%w: connectivity repair did not converge", ErrGenerationFailed)
}

// EnsureSafeConnectivity is the variant used by the generator: it
// connects everything to the player spawn, verifies the entity spawn
// ends up reachable, and prefers corridor elbows that avoid converting
// DreamMark cells when an equal-cost alternative exists.
func EnsureSafeConnectivity(b *Builder) error {
	origin := b.PlayerSpawn()
	if !b.Walkable(origin.X, origin.Y) {
		return fmt.Errorf("%w: player spawn %v is not walkable", ErrGenerationFailed, origin)
	}

	maxRepairs := len(b.WalkableCells()) + 1
	for i := 0; i < maxRepairs; i++ {
		reached := ReachableSet(b, origin)
		isolated := isolatedCells(b, reached)
		if len(isolated) == 0 {
			entity := b.EntitySpawn()
			if !reached.Has(entity) {
				return fmt.Errorf("%w: entity spawn %v unreachable after repair", ErrGenerationFailed, entity)
			}
			return nil
		}
		from, to := closestRepairPair(reachedSorted(reached), isolated)
		carveCorridor(b, from, to, true)
	}
	return fmt.Errorf("%w: connectivity repair did not converge", ErrGenerationFailed)
}

// isolatedCells returns walkable cells outside the reached set, sorted
// lexicographically by (Y, X) for deterministic repair order.
func isolatedCells(b *Builder, reached mapset.Set[Coord]) []Coord {
	var isolated []Coord
	for _, c := range b.WalkableCells() {
		if !reached.Has(c) {
			isolated = append(isolated, c)
		}
	}
	return isolated
}

// reachedSorted flattens the reached set into a (Y, X)-sorted slice.
// mapset iteration order is randomized, so sorting is what keeps repair
// deterministic for a fixed seed.
func reachedSorted(reached mapset.Set[Coord]) []Coord {
	cells := make([]Coord, 0, reached.Size())
	reached.Each(func(c Coord) {
		cells = append(cells, c)
	})
	sort.Slice(cells, func(i, j int) bool { return cells[i].Less(cells[j]) })
	return cells
}

// closestRepairPair picks the (reachable, isolated) pair with minimal
// Manhattan distance. Ties break lexicographically on the isolated
// coordinate, then on the reachable coordinate.
func closestRepairPair(reached, isolated []Coord) (from, to Coord) {
	best := -1
	for _, iso := range isolated {
		for _, r := range reached {
			d := r.Manhattan(iso)
			if best == -1 || d < best {
				best = d
				from, to = r, iso
			}
		}
	}
	return from, to
}

// carveCorridor converts wall cells to Floor along an L-shaped path
// from one cell to the other. When safe is set, the elbow orientation
// whose carved cells crowd fewer DreamMark cells wins; otherwise (and
// on ties) the horizontal-then-vertical elbow is carved.
func carveCorridor(b *Builder, from, to Coord, safe bool) {
	horizontalFirst := true
	if safe {
		hvCost := corridorMarkCost(b, from, to, true)
		vhCost := corridorMarkCost(b, from, to, false)
		if vhCost < hvCost {
			horizontalFirst = false
		}
	}
	for _, c := range corridorPath(from, to, horizontalFirst) {
		if !b.Walkable(c.X, c.Y) {
			b.Set(c.X, c.Y, Floor)
		}
	}
}

// corridorMarkCost counts the cells the given elbow orientation would
// carve that sit next to a DreamMark. Marks are walkable and never
// overwritten by the carve, so the cost measures how closely the new
// corridor would press against them.
func corridorMarkCost(b *Builder, from, to Coord, horizontalFirst bool) int {
	cost := 0
	for _, c := range corridorPath(from, to, horizontalFirst) {
		if b.Walkable(c.X, c.Y) {
			continue
		}
		for _, n := range []Coord{
			{X: c.X + 1, Y: c.Y},
			{X: c.X - 1, Y: c.Y},
			{X: c.X, Y: c.Y + 1},
			{X: c.X, Y: c.Y - 1},
		} {
			if b.Kind(n.X, n.Y) == DreamMark {
				cost++
				break
			}
		}
	}
	return cost
}

// corridorPath returns the cells of an L-shaped path between two
// coordinates, excluding the endpoints' own cells only when they are
// already walkable (the carve loop skips walkable cells anyway).
func corridorPath(from, to Coord, horizontalFirst bool) []Coord {
	var path []Coord
	if horizontalFirst {
		for x := min(from.X, to.X); x <= max(from.X, to.X); x++ {
			path = append(path, Coord{X: x, Y: from.Y})
		}
		for y := min(from.Y, to.Y); y <= max(from.Y, to.Y); y++ {
			path = append(path, Coord{X: to.X, Y: y})
		}
	} else {
		for y := min(from.Y, to.Y); y <= max(from.Y, to.Y); y++ {
			path = append(path, Coord{X: from.X, Y: y})
		}
		for x := min(from.X, to.X); x <= max(from.X, to.X); x++ {
			path = append(path, Coord{X: x, Y: to.Y})
		}
	}
	return path
}
