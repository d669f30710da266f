// Package textures generates the procedural surfaces of the dream.
// Every texture is value noise over a seeded integer lattice, shaped
// per theme: structured grids for labyrinths, soft fractal clouds for
// falling and flying, turbulent noise for the anxious dreams. Textures
// are deterministic for a (theme, surface, kind, seed) tuple and
// cached after first generation.
package textures

import (
	"image"
	"image/color"
	"math"
	"sync"

	"somnium/pkg/engine/world"
)

// Size is the edge length of every generated texture in texels.
const Size = 64

// Surface selects which plane a texture is for. Floors render darker
// and ceilings lighter than walls of the same theme.
type Surface int

// Surfaces.
const (
	SurfaceWall Surface = iota
	SurfaceFloor
	SurfaceCeiling
)

// Texture is an immutable Size x Size texel grid.
type Texture struct {
	pix []color.RGBA
}

// At returns the texel at (x, y), wrapping out-of-range coordinates.
func (t *Texture) At(x, y int) color.RGBA {
	x = ((x % Size) + Size) % Size
	y = ((y % Size) + Size) % Size
	return t.pix[y*Size+x]
}

// Sample returns the texel for normalized coordinates in [0, 1).
func (t *Texture) Sample(u, v float64) color.RGBA {
	return t.At(int(u*Size), int(v*Size))
}

// Image copies the texture into a standard RGBA image, for backends
// that upload textures to the GPU.
func (t *Texture) Image() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, Size, Size))
	for y := 0; y < Size; y++ {
		for x := 0; x < Size; x++ {
			img.SetRGBA(x, y, t.pix[y*Size+x])
		}
	}
	return img
}

type atlasKey struct {
	theme   string
	surface Surface
	kind    world.CellKind
}

// Atlas caches generated textures. Safe for concurrent readers, which
// matters once the graphical renderer samples from multiple columns.
type Atlas struct {
	mu    sync.Mutex
	seed  int64
	cache map[atlasKey]*Texture
}

// NewAtlas creates an atlas whose textures all derive from one seed,
// so a level's look is reproducible.
func NewAtlas(seed int64) *Atlas {
	return &Atlas{
		seed:  seed,
		cache: make(map[atlasKey]*Texture),
	}
}

// Get returns the texture for a theme, surface and wall kind,
// generating and caching it on first use.
func (a *Atlas) Get(theme string, surface Surface, kind world.CellKind) *Texture {
	key := atlasKey{theme: theme, surface: surface, kind: kind}

	a.mu.Lock()
	defer a.mu.Unlock()
	if t, ok := a.cache[key]; ok {
		return t
	}

	t := generate(theme, surface, kind, a.seed)
	a.cache[key] = t
	return t
}

// generate dispatches on theme style.
func generate(theme string, surface Surface, kind world.CellKind, seed int64) *Texture {
	n := newNoise(seed ^ int64(surface)<<8 ^ int64(kind)<<16 ^ hashString(theme))

	switch theme {
	case "labyrinth":
		return generateMaze(n, surface, kind)
	case "falling", "flying":
		return generateCloud(n, theme, surface, kind)
	case "chase", "teeth", "unprepared":
		return generateTurbulent(n, theme, surface, kind)
	default:
		return generateTurbulent(n, theme, surface, kind)
	}
}

// baseColor picks the tone for a wall kind: plain walls carry the
// theme's palette, moss pulls green, runes pull violet.
func baseColor(theme string, kind world.CellKind) [3]float64 {
	switch kind {
	case world.WallMoss:
		return [3]float64{80, 170, 80}
	case world.WallRune:
		return [3]float64{110, 80, 170}
	}
	switch theme {
	case "falling":
		return [3]float64{150, 150, 180}
	case "flying":
		return [3]float64{180, 200, 230}
	case "chase":
		return [3]float64{120, 70, 130}
	case "teeth":
		return [3]float64{190, 120, 90}
	case "unprepared":
		return [3]float64{100, 120, 160}
	default:
		return [3]float64{170, 80, 80}
	}
}

// surfaceAdjust darkens floors and lightens ceilings.
func surfaceAdjust(c [3]float64, surface Surface) [3]float64 {
	switch surface {
	case SurfaceFloor:
		for i := range c {
			c[i] = math.Max(c[i]-40, 0)
		}
	case SurfaceCeiling:
		for i := range c {
			c[i] = math.Min(c[i]+20, 255)
		}
	}
	return c
}

// generateMaze produces the structured pattern: blocky value noise cut
// by a regular line grid.
func generateMaze(n *noise, surface Surface, kind world.CellKind) *Texture {
	base := surfaceAdjust(baseColor("labyrinth", kind), surface)
	t := &Texture{pix: make([]color.RGBA, Size*Size)}

	const grid = 6
	for y := 0; y < Size; y++ {
		for x := 0; x < Size; x++ {
			v := n.lattice(x*grid/Size, y*grid/Size)
			if x%(Size/8) < Size/16 || y%(Size/8) < Size/16 {
				v *= 0.7
			}
			t.pix[y*Size+x] = scale(base, 0.8+v*0.4)
		}
	}
	return t
}

// generateCloud produces soft fractal noise with the theme's streaks:
// vertical for falling, horizontal banding for flying.
func generateCloud(n *noise, theme string, surface Surface, kind world.CellKind) *Texture {
	base := surfaceAdjust(baseColor(theme, kind), surface)
	t := &Texture{pix: make([]color.RGBA, Size*Size)}

	for y := 0; y < Size; y++ {
		for x := 0; x < Size; x++ {
			v := n.fbm(float64(x)/Size, float64(y)/Size, 4, 0.5, false)
			switch theme {
			case "falling":
				v = v*0.8 + float64(y)/Size*0.2
			case "flying":
				if math.Mod(float64(y)/Size*10, 1) < 0.5 {
					v = v*0.9 + 0.1
				}
			}
			t.pix[y*Size+x] = scale(base, 0.7+v*0.6)
		}
	}
	return t
}

// generateTurbulent produces distorted fractal noise for the anxious
// dreams.
func generateTurbulent(n *noise, theme string, surface Surface, kind world.CellKind) *Texture {
	base := surfaceAdjust(baseColor(theme, kind), surface)
	t := &Texture{pix: make([]color.RGBA, Size*Size)}

	for y := 0; y < Size; y++ {
		for x := 0; x < Size; x++ {
			v := n.fbm(float64(x)/Size, float64(y)/Size, 4, 0.6, true)
			t.pix[y*Size+x] = scale(base, 0.6+v*0.7)
		}
	}
	return t
}

func scale(base [3]float64, f float64) color.RGBA {
	clamp := func(v float64) uint8 {
		if v < 0 {
			return 0
		}
		if v > 255 {
			return 255
		}
		return uint8(v)
	}
	return color.RGBA{
		R: clamp(base[0] * f),
		G: clamp(base[1] * f),
		B: clamp(base[2] * f),
		A: 255,
	}
}

func hashString(s string) int64 {
	var h int64 = 1469598103934665603
	for i := 0; i < len(s); i++ {
		h ^= int64(s[i])
		h *= 1099511628211
	}
	return h
}
