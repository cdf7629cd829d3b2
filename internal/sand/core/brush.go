package core

import (
	"fmt"
	"math"
	"math/rand/v2"
)

// FullDensity paints every cell inside the brush.
const FullDensity = 100

// Brush writes material into circular regions of a grid.
// The RNG is only consulted for partial densities, so full strokes are
// reproducible regardless of seed.
type Brush struct {
	rng *rand.Rand
}

// NewBrush creates a brush with a deterministic random source.
func NewBrush(seed int64) *Brush {
	return &Brush{rng: rand.New(rand.NewPCG(uint64(seed), 0))}
}

// Reseed restarts the random source.
func (b *Brush) Reseed(seed int64) {
	b.rng = rand.New(rand.NewPCG(uint64(seed), 0))
}

// Fill paints a solid circle. See PaintCircle.
func (b *Brush) Fill(g *Grid, center Point, radius float64, m Material) (int, error) {
	return b.PaintCircle(g, center, radius, m, FullDensity)
}

// PaintCircle writes m into every cell whose distance from center is strictly
// less than radius. With density below 100 each such cell is accepted
// independently with probability density/100. The center may lie outside the
// grid; only in-grid cells are visited. Returns the number of cells written.
func (b *Brush) PaintCircle(g *Grid, center Point, radius float64, m Material, density int) (int, error) {
	if !m.Storable() {
		return 0, ErrInvalidMaterial
	}
	if density < 0 || density > FullDensity {
		return 0, fmt.Errorf("%w: got %d", ErrDensityRange, density)
	}
	// NaN compares false against every distance, so it paints nothing.
	if math.IsNaN(radius) || radius <= 0 || density == 0 || g.Size() == 0 {
		return 0, nil
	}

	// Bounding box of the circle clipped to the grid. Cells outside it are
	// never closer than radius, so the result matches a full-grid sweep.
	minX, maxX := span(center.X, radius, g.Size())
	minY, maxY := span(center.Y, radius, g.Size())

	written := 0
	for x := minX; x <= maxX; x++ {
		for y := minY; y <= maxY; y++ {
			dx := float64(x - center.X)
			dy := float64(y - center.Y)
			if math.Sqrt(dx*dx+dy*dy) >= radius {
				continue
			}
			if density < FullDensity && b.rng.IntN(FullDensity) >= density {
				continue
			}
			if err := g.Set(P(x, y), m); err != nil {
				return written, fmt.Errorf("brush: %w", err)
			}
			written++
		}
	}
	return written, nil
}

// span returns the grid indices within radius of c along one axis, clipped to
// [0, size-1]. The bounds are computed in float64 so huge or infinite radii
// and far away centers cannot overflow. lo > hi means no cell is in reach.
func span(c int, radius float64, size int) (lo, hi int) {
	l := math.Min(math.Max(math.Floor(float64(c)-radius), 0), float64(size))
	h := math.Max(math.Min(math.Ceil(float64(c)+radius), float64(size-1)), -1)
	return int(l), int(h)
}
