package core

import (
	"fmt"
	"strings"
)

// Sweep selects the fixed order in which a tick visits cells.
type Sweep uint8

const (
	// SweepColumns visits x ascending, and within a column y ascending (bottom up).
	SweepColumns Sweep = iota
	// SweepRows visits y ascending (bottom up), and within a row x ascending.
	SweepRows
)

// String returns the config name of a sweep order.
func (s Sweep) String() string {
	switch s {
	case SweepColumns:
		return "columns"
	case SweepRows:
		return "rows"
	default:
		return "unknown"
	}
}

// ParseSweep converts a config name into a Sweep.
func ParseSweep(name string) (Sweep, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "columns", "column":
		return SweepColumns, nil
	case "rows", "row":
		return SweepRows, nil
	default:
		return SweepColumns, fmt.Errorf("unknown sweep order %q", name)
	}
}

// EngineConfig controls the tick policy.
type EngineConfig struct {
	Sweep Sweep
	// SkipMoved stops a cell that moved into a not-yet-visited slot from
	// being processed a second time in the same tick.
	SkipMoved bool
}

// DefaultEngineConfig returns the column sweep without double-move protection.
func DefaultEngineConfig() EngineConfig {
	return EngineConfig{Sweep: SweepColumns}
}

// TickStats describes the most recent tick.
type TickStats struct {
	Tick  uint64 // 1-based tick number
	Moves int    // Successful swaps during the tick
}

// Engine advances a grid by one tick at a time.
// It holds no reference to the grid between calls.
type Engine struct {
	cfg   EngineConfig
	moved []bool
	ticks uint64
	last  TickStats
}

// NewEngine creates an engine with the given policy.
func NewEngine(cfg EngineConfig) *Engine {
	return &Engine{cfg: cfg}
}

// Config returns the engine policy.
func (e *Engine) Config() EngineConfig {
	return e.cfg
}

// Ticks returns the number of completed ticks.
func (e *Engine) Ticks() uint64 {
	return e.ticks
}

// LastTick returns statistics for the last completed tick.
func (e *Engine) LastTick() TickStats {
	return e.last
}

// Reset clears the tick counter.
func (e *Engine) Reset() {
	e.ticks = 0
	e.last = TickStats{}
}

// Movement rules in priority order. The first open neighbor wins.
var (
	sandRule  = []Adjacency{Below, BelowLeft, BelowRight}
	waterRule = []Adjacency{Below, BelowLeft, BelowRight, Left, Right}
)

// rule returns the movement chain for a material.
func rule(m Material) []Adjacency {
	switch m {
	case Sand:
		return sandRule
	case Water:
		return waterRule
	case Solid, Air, OutOfBounds:
		return nil
	}
	return nil
}

// Advance applies one tick to g, visiting every cell once in the configured order.
// A failed swap indicates a bug in the rules; the sweep stops and the error is returned.
func (e *Engine) Advance(g *Grid) error {
	n := g.Size()
	if e.cfg.SkipMoved {
		if len(e.moved) != n*n {
			e.moved = make([]bool, n*n)
		} else {
			clear(e.moved)
		}
	}

	moves := 0
	visit := func(p Point) error {
		moved, err := e.apply(g, p)
		if err != nil {
			return err
		}
		if moved {
			moves++
		}
		return nil
	}

	switch e.cfg.Sweep {
	case SweepRows:
		for y := 0; y < n; y++ {
			for x := 0; x < n; x++ {
				if err := visit(P(x, y)); err != nil {
					return err
				}
			}
		}
	default:
		for x := 0; x < n; x++ {
			for y := 0; y < n; y++ {
				if err := visit(P(x, y)); err != nil {
					return err
				}
			}
		}
	}

	e.ticks++
	e.last = TickStats{Tick: e.ticks, Moves: moves}
	return nil
}

// apply runs the rule chain for the cell at p.
func (e *Engine) apply(g *Grid, p Point) (bool, error) {
	if e.cfg.SkipMoved && e.moved[g.index(p)] {
		return false, nil
	}

	m := g.Get(p)
	for _, a := range rule(m) {
		if g.GetAdjacent(p, a) != Air {
			continue
		}
		if err := g.Swap(p, a); err != nil {
			return false, fmt.Errorf("physics: moving %s %s from %v: %w", m, a, p, err)
		}
		if e.cfg.SkipMoved {
			e.moved[g.index(p.Step(a))] = true
		}
		return true, nil
	}
	return false, nil
}
