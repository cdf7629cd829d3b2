package core_test

import (
	"errors"
	"testing"

	"github.com/vovakirdan/tui-sand/internal/sand/core"
)

func TestNewGridDefaultsToAir(t *testing.T) {
	g := core.NewGrid(4)

	if g.Size() != 4 {
		t.Fatalf("expected size 4, got %d", g.Size())
	}
	for x := 0; x < 4; x++ {
		for y := 0; y < 4; y++ {
			if got := g.Get(core.P(x, y)); got != core.Air {
				t.Errorf("at (%d,%d): expected air, got %v", x, y, got)
			}
		}
	}
}

func TestEmptyGrid(t *testing.T) {
	for _, size := range []int{0, -3} {
		g := core.NewGrid(size)
		if g.Size() != 0 {
			t.Errorf("NewGrid(%d): expected size 0, got %d", size, g.Size())
		}
		if got := g.Get(core.P(0, 0)); got != core.OutOfBounds {
			t.Errorf("NewGrid(%d): expected out_of_bounds at origin, got %v", size, got)
		}
		if err := g.Set(core.P(0, 0), core.Sand); !errors.Is(err, core.ErrOutOfBoundsWrite) {
			t.Errorf("NewGrid(%d): expected out of bounds write, got %v", size, err)
		}
	}
}

func TestGridRoundTrip(t *testing.T) {
	const size = 6
	g := core.NewGrid(size)

	for x := 0; x < size; x++ {
		for y := 0; y < size; y++ {
			for _, m := range core.Materials() {
				p := core.P(x, y)
				if err := g.Set(p, m); err != nil {
					t.Fatalf("Set(%v, %v) failed: %v", p, m, err)
				}
				if got := g.Get(p); got != m {
					t.Fatalf("Get(%v) = %v after writing %v", p, got, m)
				}
			}
		}
	}
}

func TestGridLogicalOrientation(t *testing.T) {
	g := core.NewGrid(4)

	// Bottom-left corner is drawn on the last text row.
	if err := g.Set(core.P(0, 0), core.Solid); err != nil {
		t.Fatal(err)
	}
	// Top-right corner is drawn on the first text row.
	if err := g.Set(core.P(3, 3), core.Water); err != nil {
		t.Fatal(err)
	}

	expected := "...~\n" +
		"....\n" +
		"....\n" +
		"#..."
	if got := g.String(); got != expected {
		t.Errorf("String() =\n%s\nexpected\n%s", got, expected)
	}
}

func TestGridEdgeReads(t *testing.T) {
	g := core.NewGrid(4)

	testCases := []struct {
		name  string
		point core.Point
	}{
		{"x at size", core.P(4, 0)},
		{"y at size", core.P(0, 4)},
		{"both at size", core.P(4, 4)},
		{"negative x", core.P(-1, 2)},
		{"negative y", core.P(2, -1)},
		{"far away", core.P(1000, -1000)},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := g.Get(tc.point); got != core.OutOfBounds {
				t.Errorf("Get(%v) = %v, expected out_of_bounds", tc.point, got)
			}
		})
	}
}

func TestGridSetOutOfBounds(t *testing.T) {
	g := core.NewGrid(3)
	before := g.Clone()

	err := g.Set(core.P(3, 1), core.Sand)
	if !errors.Is(err, core.ErrOutOfBoundsWrite) {
		t.Fatalf("expected ErrOutOfBoundsWrite, got %v", err)
	}

	var oob *core.OutOfBoundsError
	if !errors.As(err, &oob) {
		t.Fatalf("expected *OutOfBoundsError, got %T", err)
	}
	if oob.Point != core.P(3, 1) {
		t.Errorf("error point = %v, expected (3,1)", oob.Point)
	}
	if !g.Equal(before) {
		t.Error("failed write must not mutate the grid")
	}
}

func TestGridRejectsSentinel(t *testing.T) {
	g := core.NewGrid(3)

	if err := g.Set(core.P(1, 1), core.OutOfBounds); !errors.Is(err, core.ErrInvalidMaterial) {
		t.Errorf("expected ErrInvalidMaterial, got %v", err)
	}
	g.Fill(core.OutOfBounds)
	if g.Count(core.Air) != 9 {
		t.Error("the sentinel must never be stored")
	}
}

func TestGridAdjacentMatchesDirectAccess(t *testing.T) {
	g := core.MustParseGrid(
		"#s~",
		".#s",
		"~.#",
	)
	center := core.P(1, 1)

	for _, a := range core.Adjacencies() {
		dx, dy := a.Delta()
		direct := g.Get(center.Add(dx, dy))
		if got := g.GetAdjacent(center, a); got != direct {
			t.Errorf("GetAdjacent(%v, %v) = %v, direct Get = %v", center, a, got, direct)
		}
	}

	// Spot check orientation: Above must be the row written first.
	if got := g.GetAdjacent(center, core.Above); got != core.Sand {
		t.Errorf("Above (1,1) = %v, expected sand", got)
	}
	if got := g.GetAdjacent(center, core.BelowLeft); got != core.Water {
		t.Errorf("BelowLeft (1,1) = %v, expected water", got)
	}
}

func TestGridAdjacentAtEdge(t *testing.T) {
	g := core.NewGrid(3)

	if got := g.GetAdjacent(core.P(0, 0), core.Below); got != core.OutOfBounds {
		t.Errorf("Below origin = %v, expected out_of_bounds", got)
	}
	if got := g.GetAdjacent(core.P(2, 2), core.AboveRight); got != core.OutOfBounds {
		t.Errorf("AboveRight top corner = %v, expected out_of_bounds", got)
	}
	if err := g.SetAdjacent(core.P(0, 1), core.Left, core.Sand); !errors.Is(err, core.ErrOutOfBoundsWrite) {
		t.Errorf("SetAdjacent off the left edge: expected ErrOutOfBoundsWrite, got %v", err)
	}
	if err := g.SetAdjacent(core.P(0, 1), core.Right, core.Sand); err != nil {
		t.Fatalf("SetAdjacent in range failed: %v", err)
	}
	if got := g.Get(core.P(1, 1)); got != core.Sand {
		t.Errorf("expected sand at (1,1), got %v", got)
	}
}

func TestGridSwapSelfInverse(t *testing.T) {
	base := core.MustParseGrid(
		"s~#.",
		"#.s~",
		"~s.#",
		".#~s",
	)

	for x := 0; x < base.Size(); x++ {
		for y := 0; y < base.Size(); y++ {
			for _, a := range core.Adjacencies() {
				p := core.P(x, y)
				if base.GetAdjacent(p, a) == core.OutOfBounds {
					continue
				}
				g := base.Clone()
				src, dst := g.Get(p), g.GetAdjacent(p, a)

				if err := g.Swap(p, a); err != nil {
					t.Fatalf("Swap(%v, %v) failed: %v", p, a, err)
				}
				if g.Get(p) != dst || g.GetAdjacent(p, a) != src {
					t.Fatalf("Swap(%v, %v) did not exchange cells", p, a)
				}
				if !sameCounts(base.Counts(), g.Counts()) {
					t.Fatalf("Swap(%v, %v) changed material counts", p, a)
				}

				if err := g.Swap(p, a); err != nil {
					t.Fatalf("second Swap(%v, %v) failed: %v", p, a, err)
				}
				if !g.Equal(base) {
					t.Fatalf("Swap(%v, %v) twice did not restore the grid", p, a)
				}
			}
		}
	}
}

func TestGridSwapOutOfBoundsIsNonMutating(t *testing.T) {
	g := core.MustParseGrid(
		"s..",
		".~.",
		"..#",
	)
	before := g.Clone()

	testCases := []struct {
		point core.Point
		dir   core.Adjacency
	}{
		{core.P(0, 2), core.Above},
		{core.P(0, 2), core.Left},
		{core.P(2, 0), core.BelowRight},
		{core.P(1, 0), core.Below},
		{core.P(5, 5), core.Left}, // source itself outside
		{core.P(3, 1), core.Left}, // source outside, neighbor inside
	}

	for _, tc := range testCases {
		err := g.Swap(tc.point, tc.dir)
		if !errors.Is(err, core.ErrOutOfBoundsWrite) {
			t.Errorf("Swap(%v, %v): expected ErrOutOfBoundsWrite, got %v", tc.point, tc.dir, err)
		}
		if !g.Equal(before) {
			t.Fatalf("Swap(%v, %v) mutated the grid after failing", tc.point, tc.dir)
		}
	}
}

func TestGridCloneAndEqual(t *testing.T) {
	g := core.NewGrid(3)
	if err := g.Set(core.P(1, 1), core.Sand); err != nil {
		t.Fatal(err)
	}

	clone := g.Clone()
	if !g.Equal(clone) {
		t.Fatal("clone should be equal to original")
	}

	if err := g.Set(core.P(1, 1), core.Air); err != nil {
		t.Fatal(err)
	}
	if clone.Get(core.P(1, 1)) != core.Sand {
		t.Error("clone should not be affected by original modification")
	}
	if g.Equal(clone) {
		t.Error("grids should differ after modification")
	}
	if g.Equal(core.NewGrid(4)) {
		t.Error("grids of different size should not be equal")
	}
}

func TestGridCountsAndFill(t *testing.T) {
	g := core.MustParseGrid(
		"ss.",
		"~#.",
		"...",
	)

	counts := g.Counts()
	expected := map[core.Material]int{core.Sand: 2, core.Water: 1, core.Solid: 1, core.Air: 5}
	if !sameCounts(counts, expected) {
		t.Errorf("Counts() = %v, expected %v", counts, expected)
	}
	if g.Count(core.Sand) != 2 {
		t.Errorf("Count(sand) = %d, expected 2", g.Count(core.Sand))
	}

	g.Fill(core.Water)
	if g.Count(core.Water) != 9 {
		t.Errorf("after Fill(water), Count(water) = %d, expected 9", g.Count(core.Water))
	}
}

func TestParseGridErrors(t *testing.T) {
	testCases := []struct {
		name string
		rows []string
	}{
		{"short row", []string{"...", "..", "..."}},
		{"long row", []string{"..", "..."}},
		{"bad glyph", []string{"..", ".x"}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := core.ParseGrid(tc.rows); err == nil {
				t.Error("expected parse error")
			}
		})
	}
}

func TestParseGridRoundTrip(t *testing.T) {
	rows := []string{
		"s~.#",
		"....",
		"#..s",
		"~~##",
	}
	g := core.MustParseGrid(rows...)

	expected := rows[0] + "\n" + rows[1] + "\n" + rows[2] + "\n" + rows[3]
	if got := g.String(); got != expected {
		t.Errorf("String() =\n%s\nexpected\n%s", got, expected)
	}
}

func sameCounts(a, b map[core.Material]int) bool {
	for _, m := range []core.Material{core.Air, core.Solid, core.Sand, core.Water, core.OutOfBounds} {
		if a[m] != b[m] {
			return false
		}
	}
	return true
}
