package textures

import "math"

// noise is seeded value noise over an integer lattice with smoothstep
// interpolation. Cheap, allocation-free and fully deterministic, which
// is all a 64x64 dream texture needs.
type noise struct {
	seed int64
}

func newNoise(seed int64) *noise {
	return &noise{seed: seed}
}

// lattice returns the raw hash value at an integer lattice point,
// in [0, 1). The mixing runs in uint64 so the splitmix-style constants
// and the shift-xor steps wrap instead of overflowing.
func (n *noise) lattice(x, y int) float64 {
	h := uint64(n.seed)
	h ^= uint64(int64(x)) * 0x9E3779B97F4A7C15
	h ^= uint64(int64(y)) * 0xC2B2AE3D27D4EB4F
	h ^= h >> 29
	h *= 0xBF58476D1CE4E5B9
	h ^= h >> 32
	return float64(uint16(h)) / 65536.0
}

// smooth returns interpolated noise at continuous coordinates.
func (n *noise) smooth(x, y float64) float64 {
	xi, yi := int(math.Floor(x)), int(math.Floor(y))
	xf, yf := x-math.Floor(x), y-math.Floor(y)

	v1 := n.lattice(xi, yi)
	v2 := n.lattice(xi+1, yi)
	v3 := n.lattice(xi, yi+1)
	v4 := n.lattice(xi+1, yi+1)

	i1 := lerp(v1, v2, smoothStep(xf))
	i2 := lerp(v3, v4, smoothStep(xf))
	return lerp(i1, i2, smoothStep(yf))
}

// fbm sums octaves of smooth noise. With turbulence set, each octave's
// coordinates are warped by sines of each other, which breaks up the
// regularity.
func (n *noise) fbm(x, y float64, octaves int, persistence float64, turbulence bool) float64 {
	var total, maxValue float64
	amplitude := 1.0
	frequency := 1.0

	for i := 0; i < octaves; i++ {
		nx := x * frequency
		ny := y * frequency
		if turbulence {
			nx += math.Sin(ny*5) * 0.1
			ny += math.Cos(nx*5) * 0.1
		}
		total += n.smooth(nx, ny) * amplitude
		maxValue += amplitude
		amplitude *= persistence
		frequency *= 2
	}
	return total / maxValue
}

func lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

func smoothStep(t float64) float64 {
	return t * t * (3 - 2*t)
}
