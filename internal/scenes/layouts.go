package scenes

import sand "github.com/vovakirdan/tui-sand/internal/sand/core"

// hourglass draws two walls converging on a one-cell neck at mid height.
// Walls are two cells thick so grains cannot slip through diagonally.
func hourglass(g *sand.Grid) error {
	n := g.Size()
	c, mid := n/2, n/2

	for k := 0; mid+k < n; k++ {
		y := mid + k
		for _, x := range []int{c - 1 - k, c - 2 - k, c + 1 + k, c + 2 + k} {
			if err := put(g, x, y, sand.Solid); err != nil {
				return err
			}
		}
	}

	// Heap in the upper half of the funnel
	top := mid + (n-mid)/2
	for y := top; y < n; y++ {
		k := y - mid
		if err := rect(g, c-k, y, c+k, y, sand.Sand); err != nil {
			return err
		}
	}
	return nil
}

// basin draws a bowl on the lower third and a pool above its left side.
func basin(g *sand.Grid) error {
	n := g.Size()
	left, right := n/8, n-1-n/8
	wallTop := n / 3

	if err := rect(g, left, 1, right, 1, sand.Solid); err != nil {
		return err
	}
	if err := rect(g, left, 1, left, wallTop, sand.Solid); err != nil {
		return err
	}
	if err := rect(g, right, 1, right, wallTop, sand.Solid); err != nil {
		return err
	}
	return rect(g, left+1, n/2, (left+right)/2, n/2+n/6, sand.Water)
}

// dam holds a reservoir behind a wall with a one-cell gap at the floor.
func dam(g *sand.Grid) error {
	n := g.Size()
	wall := n / 3

	if err := rect(g, wall, 1, wall, 2*n/3, sand.Solid); err != nil {
		return err
	}
	return rect(g, 0, 0, wall-1, n/2-1, sand.Water)
}

// mixed layers sand under water above a floor with three pillars.
func mixed(g *sand.Grid) error {
	n := g.Size()

	if err := rect(g, 0, 0, n-1, 0, sand.Solid); err != nil {
		return err
	}
	for _, x := range []int{n / 4, n / 2, 3 * n / 4} {
		if err := rect(g, x, 1, x, n/4, sand.Solid); err != nil {
			return err
		}
	}

	band := n / 8
	if band < 1 {
		band = 1
	}
	sandFrom := n / 2
	if err := rect(g, 0, sandFrom, n-1, sandFrom+band-1, sand.Sand); err != nil {
		return err
	}
	return rect(g, 0, sandFrom+band, n-1, sandFrom+2*band-1, sand.Water)
}
