package core

// Grid is a fixed-size square of cells addressed by logical coordinates.
// Cells are stored row-major with row 0 being the top visual row, so the
// logical point (x, y) lives at storage row size-1-y, column x.
type Grid struct {
	size  int
	cells []Material
}

// NewGrid creates a size×size grid with every cell set to Air.
// A non-positive size yields an empty grid that contains no cells.
func NewGrid(size int) *Grid {
	if size < 0 {
		size = 0
	}
	return &Grid{
		size:  size,
		cells: make([]Material, size*size),
	}
}

// Size returns the side length of the grid.
func (g *Grid) Size() int {
	return g.size
}

// index converts a logical point into a storage offset.
// Every cell access goes through here.
func (g *Grid) index(p Point) int {
	row := g.size - 1 - p.Y
	return row*g.size + p.X
}

// InBounds returns true if the point lies inside the grid.
func (g *Grid) InBounds(p Point) bool {
	return p.X >= 0 && p.X < g.size && p.Y >= 0 && p.Y < g.size
}

// Get returns the material at p, or OutOfBounds outside the grid.
func (g *Grid) Get(p Point) Material {
	if !g.InBounds(p) {
		return OutOfBounds
	}
	return g.cells[g.index(p)]
}

// Set writes a material at p. Writing outside the grid fails with an
// *OutOfBoundsError and leaves the grid untouched.
func (g *Grid) Set(p Point, m Material) error {
	if !g.InBounds(p) {
		return &OutOfBoundsError{Point: p, Size: g.size}
	}
	if !m.Storable() {
		return ErrInvalidMaterial
	}
	g.cells[g.index(p)] = m
	return nil
}

// GetAdjacent returns the material of the neighbor of p in direction a.
func (g *Grid) GetAdjacent(p Point, a Adjacency) Material {
	return g.Get(p.Step(a))
}

// SetAdjacent writes a material into the neighbor of p in direction a.
func (g *Grid) SetAdjacent(p Point, a Adjacency, m Material) error {
	return g.Set(p.Step(a), m)
}

// Swap exchanges the material at p with its neighbor in direction a.
// If either cell is outside the grid nothing is written.
func (g *Grid) Swap(p Point, a Adjacency) error {
	q := p.Step(a)
	if !g.InBounds(p) {
		return &OutOfBoundsError{Point: p, Size: g.size}
	}
	if !g.InBounds(q) {
		return &OutOfBoundsError{Point: q, Size: g.size}
	}
	i, j := g.index(p), g.index(q)
	g.cells[i], g.cells[j] = g.cells[j], g.cells[i]
	return nil
}

// Fill sets every cell to m. The OutOfBounds sentinel is ignored.
func (g *Grid) Fill(m Material) {
	if !m.Storable() {
		return
	}
	for i := range g.cells {
		g.cells[i] = m
	}
}

// Clone returns a deep copy of the grid.
func (g *Grid) Clone() *Grid {
	cells := make([]Material, len(g.cells))
	copy(cells, g.cells)
	return &Grid{size: g.size, cells: cells}
}

// Equal returns true if two grids have the same size and contents.
func (g *Grid) Equal(other *Grid) bool {
	if other == nil || g.size != other.size {
		return false
	}
	for i, m := range g.cells {
		if m != other.cells[i] {
			return false
		}
	}
	return true
}

// Counts returns how many cells hold each material.
func (g *Grid) Counts() map[Material]int {
	counts := make(map[Material]int, 4)
	for _, m := range g.cells {
		counts[m]++
	}
	return counts
}

// Count returns the number of cells holding m.
func (g *Grid) Count(m Material) int {
	n := 0
	for _, c := range g.cells {
		if c == m {
			n++
		}
	}
	return n
}
