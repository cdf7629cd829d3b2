package core_test

import (
	"testing"

	"github.com/vovakirdan/tui-sand/internal/sand/core"
)

// setCells writes a list of materials into g, failing the test on error.
func setCells(t *testing.T, g *core.Grid, cells map[core.Point]core.Material) {
	t.Helper()
	for p, m := range cells {
		if err := g.Set(p, m); err != nil {
			t.Fatalf("Set(%v, %v) failed: %v", p, m, err)
		}
	}
}

func allSweeps() []core.EngineConfig {
	return []core.EngineConfig{
		{Sweep: core.SweepColumns},
		{Sweep: core.SweepColumns, SkipMoved: true},
		{Sweep: core.SweepRows},
		{Sweep: core.SweepRows, SkipMoved: true},
	}
}

func TestSandFallsStraightDown(t *testing.T) {
	for _, cfg := range allSweeps() {
		g := core.NewGrid(4)
		setCells(t, g, map[core.Point]core.Material{
			core.P(2, 2): core.Sand,
			core.P(2, 1): core.Air,
			core.P(1, 1): core.Solid,
			core.P(3, 1): core.Solid,
		})

		if err := core.NewEngine(cfg).Advance(g); err != nil {
			t.Fatalf("%+v: Advance failed: %v", cfg, err)
		}

		if got := g.Get(core.P(2, 1)); got != core.Sand {
			t.Errorf("%+v: expected sand at (2,1), got %v", cfg, got)
		}
		if got := g.Get(core.P(2, 2)); got != core.Air {
			t.Errorf("%+v: expected air at (2,2), got %v", cfg, got)
		}
	}
}

func TestSandSettlesDiagonally(t *testing.T) {
	for _, cfg := range allSweeps() {
		g := core.NewGrid(4)
		setCells(t, g, map[core.Point]core.Material{
			core.P(2, 2): core.Sand,
			core.P(2, 1): core.Solid,
			core.P(1, 1): core.Air,
			core.P(3, 1): core.Solid,
		})

		if err := core.NewEngine(cfg).Advance(g); err != nil {
			t.Fatalf("%+v: Advance failed: %v", cfg, err)
		}

		if got := g.Get(core.P(1, 1)); got != core.Sand {
			t.Errorf("%+v: expected sand at (1,1), got %v", cfg, got)
		}
		if got := g.Get(core.P(2, 2)); got != core.Air {
			t.Errorf("%+v: expected air at (2,2), got %v", cfg, got)
		}
	}
}

func TestSandPrefersBelowRightWhenLeftBlocked(t *testing.T) {
	g := core.MustParseGrid(
		"....",
		"..s.",
		".##.",
		"....",
	)

	e := core.NewEngine(core.EngineConfig{Sweep: core.SweepColumns, SkipMoved: true})
	if err := e.Advance(g); err != nil {
		t.Fatal(err)
	}

	if got := g.Get(core.P(3, 1)); got != core.Sand {
		t.Errorf("expected sand at (3,1), got %v\n%s", got, g)
	}
}

func TestSandRestsOnSupport(t *testing.T) {
	g := core.MustParseGrid(
		"....",
		"....",
		".s..",
		"###.",
	)
	before := g.Clone()

	if err := core.NewEngine(core.DefaultEngineConfig()).Advance(g); err != nil {
		t.Fatal(err)
	}
	if !g.Equal(before) {
		t.Errorf("sand with no open cell below should stay put, got\n%s", g)
	}
}

func TestSandRestsOnFloor(t *testing.T) {
	g := core.NewGrid(3)
	setCells(t, g, map[core.Point]core.Material{core.P(1, 0): core.Sand})

	if err := core.NewEngine(core.DefaultEngineConfig()).Advance(g); err != nil {
		t.Fatal(err)
	}
	if got := g.Get(core.P(1, 0)); got != core.Sand {
		t.Errorf("sand on the floor should not move, got %v at (1,0)", got)
	}
}

func TestWaterFlowsSideways(t *testing.T) {
	for _, cfg := range allSweeps() {
		g := core.NewGrid(4)
		setCells(t, g, map[core.Point]core.Material{
			core.P(2, 2): core.Water,
			core.P(2, 1): core.Solid,
			core.P(1, 1): core.Solid,
			core.P(3, 1): core.Solid,
			core.P(1, 2): core.Air,
		})

		if err := core.NewEngine(cfg).Advance(g); err != nil {
			t.Fatalf("%+v: Advance failed: %v", cfg, err)
		}

		if got := g.Get(core.P(1, 2)); got != core.Water {
			t.Errorf("%+v: expected water at (1,2), got %v", cfg, got)
		}
		if got := g.Get(core.P(2, 2)); got != core.Air {
			t.Errorf("%+v: expected air at (2,2), got %v", cfg, got)
		}
	}
}

func TestWaterFlowsRightWhenLeftBlocked(t *testing.T) {
	g := core.MustParseGrid(
		"....",
		".#~.",
		"####",
		"....",
	)

	if err := core.NewEngine(core.EngineConfig{Sweep: core.SweepColumns, SkipMoved: true}).Advance(g); err != nil {
		t.Fatal(err)
	}
	if got := g.Get(core.P(3, 2)); got != core.Water {
		t.Errorf("expected water at (3,2), got %v\n%s", got, g)
	}
}

func TestSolidAndAirAreInert(t *testing.T) {
	g := core.MustParseGrid(
		"#..#",
		"....",
		".#..",
		"....",
	)
	before := g.Clone()

	e := core.NewEngine(core.DefaultEngineConfig())
	for i := 0; i < 5; i++ {
		if err := e.Advance(g); err != nil {
			t.Fatal(err)
		}
	}
	if !g.Equal(before) {
		t.Errorf("solid and air must never move, got\n%s", g)
	}
	if e.LastTick().Moves != 0 {
		t.Errorf("expected 0 moves, got %d", e.LastTick().Moves)
	}
}

func TestSweepDoubleMove(t *testing.T) {
	t.Run("columns", func(t *testing.T) {
		// Sliding below-right lands in the next, unvisited column where the
		// grain falls again unless SkipMoved is set.
		rows := []string{
			"....",
			"..s.",
			".##.",
			"....",
		}

		g := core.MustParseGrid(rows...)
		e := core.NewEngine(core.EngineConfig{Sweep: core.SweepColumns})
		if err := e.Advance(g); err != nil {
			t.Fatal(err)
		}
		if got := g.Get(core.P(3, 0)); got != core.Sand {
			t.Errorf("without SkipMoved sand should move twice, got\n%s", g)
		}
		if e.LastTick().Moves != 2 {
			t.Errorf("expected 2 moves, got %d", e.LastTick().Moves)
		}

		g = core.MustParseGrid(rows...)
		e = core.NewEngine(core.EngineConfig{Sweep: core.SweepColumns, SkipMoved: true})
		if err := e.Advance(g); err != nil {
			t.Fatal(err)
		}
		if got := g.Get(core.P(3, 1)); got != core.Sand {
			t.Errorf("with SkipMoved sand should move once, got\n%s", g)
		}
		if e.LastTick().Moves != 1 {
			t.Errorf("expected 1 move, got %d", e.LastTick().Moves)
		}
	})

	t.Run("rows", func(t *testing.T) {
		// Flowing right lands on the next, unvisited cell of the row, which
		// then prefers flowing left back into the slot it came from.
		rows := []string{
			".....",
			".....",
			".....",
			"#~...",
			"#####",
		}

		g := core.MustParseGrid(rows...)
		e := core.NewEngine(core.EngineConfig{Sweep: core.SweepRows})
		if err := e.Advance(g); err != nil {
			t.Fatal(err)
		}
		if got := g.Get(core.P(1, 1)); got != core.Water {
			t.Errorf("without SkipMoved water should bounce back, got\n%s", g)
		}
		if e.LastTick().Moves != 2 {
			t.Errorf("expected 2 moves, got %d", e.LastTick().Moves)
		}

		g = core.MustParseGrid(rows...)
		e = core.NewEngine(core.EngineConfig{Sweep: core.SweepRows, SkipMoved: true})
		if err := e.Advance(g); err != nil {
			t.Fatal(err)
		}
		if got := g.Get(core.P(2, 1)); got != core.Water {
			t.Errorf("with SkipMoved water should move one cell right, got\n%s", g)
		}
		if e.LastTick().Moves != 1 {
			t.Errorf("expected 1 move, got %d", e.LastTick().Moves)
		}
	})
}

func TestAdvanceConservesMaterial(t *testing.T) {
	g := core.MustParseGrid(
		"ss~~ss~~",
		"~s~s~s~s",
		"........",
		"..#..#..",
		"........",
		".#....#.",
		"........",
		"##....##",
	)
	before := g.Counts()

	for _, cfg := range allSweeps() {
		work := g.Clone()
		e := core.NewEngine(cfg)
		for i := 0; i < 40; i++ {
			if err := e.Advance(work); err != nil {
				t.Fatalf("%+v: tick %d failed: %v", cfg, i, err)
			}
			if !sameCounts(before, work.Counts()) {
				t.Fatalf("%+v: tick %d changed material counts", cfg, i)
			}
		}
		if e.Ticks() != 40 {
			t.Errorf("%+v: Ticks() = %d, expected 40", cfg, e.Ticks())
		}
	}
}

func TestAdvanceDeterministic(t *testing.T) {
	start := core.MustParseGrid(
		"s~s~s~",
		"~s~s~s",
		"......",
		"..##..",
		"......",
		"#....#",
	)

	run := func() *core.Grid {
		g := start.Clone()
		e := core.NewEngine(core.DefaultEngineConfig())
		for i := 0; i < 25; i++ {
			if err := e.Advance(g); err != nil {
				t.Fatal(err)
			}
		}
		return g
	}

	a, b := run(), run()
	if !a.Equal(b) {
		t.Errorf("identical runs diverged:\n%s\n---\n%s", a, b)
	}
}

func TestSandSettlesIntoPile(t *testing.T) {
	g := core.MustParseGrid(
		"...s...",
		"...s...",
		"...s...",
		".......",
		".......",
		".......",
		".......",
	)

	e := core.NewEngine(core.DefaultEngineConfig())
	for i := 0; i < 20; i++ {
		if err := e.Advance(g); err != nil {
			t.Fatal(err)
		}
	}

	// Three grains end on the floor or stacked, never floating.
	for x := 0; x < g.Size(); x++ {
		for y := 1; y < g.Size(); y++ {
			if g.Get(core.P(x, y)) == core.Sand && g.Get(core.P(x, y-1)) == core.Air {
				t.Fatalf("floating sand at (%d,%d):\n%s", x, y, g)
			}
		}
	}
	if e.LastTick().Moves != 0 {
		t.Errorf("pile should be at rest, last tick moved %d cells", e.LastTick().Moves)
	}
}

func TestAdvanceEmptyGrid(t *testing.T) {
	e := core.NewEngine(core.DefaultEngineConfig())
	if err := e.Advance(core.NewGrid(0)); err != nil {
		t.Fatalf("Advance on empty grid failed: %v", err)
	}
	if e.Ticks() != 1 {
		t.Errorf("expected one tick, got %d", e.Ticks())
	}
}

func TestParseSweep(t *testing.T) {
	testCases := []struct {
		input   string
		want    core.Sweep
		wantErr bool
	}{
		{"columns", core.SweepColumns, false},
		{"", core.SweepColumns, false},
		{"Rows", core.SweepRows, false},
		{"diagonal", core.SweepColumns, true},
	}

	for _, tc := range testCases {
		got, err := core.ParseSweep(tc.input)
		if (err != nil) != tc.wantErr {
			t.Errorf("ParseSweep(%q) error = %v, wantErr %v", tc.input, err, tc.wantErr)
			continue
		}
		if got != tc.want {
			t.Errorf("ParseSweep(%q) = %v, expected %v", tc.input, got, tc.want)
		}
	}
}
