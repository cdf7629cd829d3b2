// Package sandbox drives a falling-sand world for the interactive front ends.
// A Session owns the grid, the physics engine and the brush, turns abstract
// input into strokes and ticks, and draws the world into a core.Screen.
package sandbox

import (
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-sand/internal/config"
	"github.com/vovakirdan/tui-sand/internal/core"
	"github.com/vovakirdan/tui-sand/internal/registry"
	sand "github.com/vovakirdan/tui-sand/internal/sand/core"
	"github.com/vovakirdan/tui-sand/internal/storage"
)

// BrushStep is how much one grow or shrink action changes the radius.
const BrushStep = 0.5

// stepper advances a grid by one tick.
type stepper interface {
	Advance(g *sand.Grid) error
	Ticks() uint64
	LastTick() sand.TickStats
	Reset()
}

// Session is one interactive sandbox.
type Session struct {
	cfg    config.Config
	logger *log.Logger

	grid   *sand.Grid
	engine stepper
	brush  *sand.Brush

	material sand.Material
	radius   float64
	cursor   sand.Point

	paused  bool
	stopped bool
	err     error

	strokes int
	painted int
	faults  int
	started time.Time
}

// New creates a session for cfg. Call Reset before stepping.
// A nil logger discards output.
func New(cfg config.Config, logger *log.Logger) *Session {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	ec, err := cfg.EngineConfig()
	if err != nil {
		logger.Warn("falling back to default sweep", "error", err)
		ec = sand.DefaultEngineConfig()
	}
	return &Session{
		cfg:    cfg,
		logger: logger,
		engine: sand.NewEngine(ec),
		brush:  sand.NewBrush(0),
		grid:   sand.NewGrid(0),
	}
}

// Reset rebuilds the configured scene, clears counters and reseeds the brush.
func (s *Session) Reset(rc core.RuntimeConfig) {
	seed := rc.Seed
	if seed == 0 {
		seed = s.cfg.Sim.Seed
	}
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	s.brush.Reseed(seed)
	s.engine.Reset()

	s.paused, s.stopped, s.err = false, false, nil
	s.strokes, s.painted, s.faults = 0, 0, 0
	s.started = time.Now()

	s.rebuild()

	s.selectMaterial(sand.Sand)
	s.cursor = sand.P(s.grid.Size()/2, s.grid.Size()-1)
	s.logger.Debug("session reset", "scene", s.cfg.Grid.Scene, "size", s.grid.Size(), "seed", seed)
}

// rebuild populates a fresh grid from the configured scene.
func (s *Session) rebuild() {
	g, err := registry.Build(s.cfg.Grid.Scene, s.cfg.Grid.Size)
	if err != nil {
		s.fault(err)
		g = sand.NewGrid(s.cfg.Grid.Size)
	}
	s.grid = g
}

// Step handles one frame of input and advances the world once unless paused.
func (s *Session) Step(in core.InputFrame) core.StepResult {
	if s.stopped {
		return core.StepResult{State: s.State()}
	}

	if in.Has(core.ActionQuit) {
		s.stopped = true
		return core.StepResult{State: s.State()}
	}
	if in.Has(core.ActionReset) {
		s.engine.Reset()
		s.rebuild()
	}
	if in.Has(core.ActionPause) {
		s.paused = !s.paused
	}

	s.handleSelection(in)
	s.handleCursor(in)

	if in.Has(core.ActionPaint) {
		s.stroke(s.cursor, s.material)
	}
	if p := in.Pointer; p != nil {
		if gp, ok := s.ScreenToGrid(p.X, p.Y); ok {
			s.cursor = gp
			m := s.material
			if p.Button == core.PointerSecondary {
				m = sand.Air
			}
			s.stroke(gp, m)
		}
	}

	res := core.StepResult{}
	if !s.stopped && (!s.paused || in.Has(core.ActionStep)) {
		if err := s.engine.Advance(s.grid); err != nil {
			s.fault(err)
		} else {
			res.Moves = s.engine.LastTick().Moves
		}
	}
	res.State = s.State()
	return res
}

func (s *Session) handleSelection(in core.InputFrame) {
	switch {
	case in.Has(core.ActionSelectSand):
		s.selectMaterial(sand.Sand)
	case in.Has(core.ActionSelectWater):
		s.selectMaterial(sand.Water)
	case in.Has(core.ActionSelectSolid):
		s.selectMaterial(sand.Solid)
	case in.Has(core.ActionSelectAir):
		s.selectMaterial(sand.Air)
	}

	b := s.cfg.Brush
	if in.Has(core.ActionBrushGrow) {
		s.radius = core.ClampF(s.radius+BrushStep, b.MinRadius, b.MaxRadius)
	}
	if in.Has(core.ActionBrushShrink) {
		s.radius = core.ClampF(s.radius-BrushStep, b.MinRadius, b.MaxRadius)
	}
}

func (s *Session) handleCursor(in core.InputFrame) {
	c := s.cursor
	if in.Has(core.ActionCursorUp) {
		c.Y++
	}
	if in.Has(core.ActionCursorDown) {
		c.Y--
	}
	if in.Has(core.ActionCursorLeft) {
		c.X--
	}
	if in.Has(core.ActionCursorRight) {
		c.X++
	}
	last := s.grid.Size() - 1
	s.cursor = sand.P(core.Clamp(c.X, 0, last), core.Clamp(c.Y, 0, last))
}

// selectMaterial switches the brush material and loads its radius.
func (s *Session) selectMaterial(m sand.Material) {
	s.material = m
	s.radius, _ = s.cfg.BrushFor(m)
}

// stroke paints m around center with the current radius.
func (s *Session) stroke(center sand.Point, m sand.Material) {
	_, density := s.cfg.BrushFor(m)
	s.PaintAt(center, m, s.radius, density)
}

// PaintAt applies one brush stroke and returns the number of cells written.
// Used directly by front ends with fixed per-button brushes.
func (s *Session) PaintAt(center sand.Point, m sand.Material, radius float64, density int) int {
	n, err := s.brush.PaintCircle(s.grid, center, radius, m, density)
	s.strokes++
	s.painted += n
	if err != nil {
		s.fault(err)
	}
	return n
}

// fault applies the sim.on_fault policy.
func (s *Session) fault(err error) {
	s.faults++
	if s.cfg.Sim.OnFault == config.FaultAbort {
		s.err = err
		s.stopped = true
		s.logger.Error("session aborted", "error", err, "tick", s.engine.Ticks())
		return
	}
	s.logger.Warn("session fault", "error", err, "tick", s.engine.Ticks())
}

// State returns the current session state.
func (s *Session) State() core.SessionState {
	return core.SessionState{
		Tick:    s.engine.Ticks(),
		Paused:  s.paused,
		Stopped: s.stopped,
	}
}

// Err returns the fault that stopped the session, if any.
func (s *Session) Err() error {
	return s.err
}

// Grid exposes the world for read-only use by front ends.
func (s *Session) Grid() *sand.Grid {
	return s.grid
}

// Material returns the selected brush material.
func (s *Session) Material() sand.Material {
	return s.material
}

// Radius returns the current brush radius.
func (s *Session) Radius() float64 {
	return s.radius
}

// Cursor returns the keyboard cursor in grid coordinates.
func (s *Session) Cursor() sand.Point {
	return s.cursor
}

// Scene returns the ID of the scene being played.
func (s *Session) Scene() string {
	return s.cfg.Grid.Scene
}

// Summary describes the session for run history. The caller fills in User.
func (s *Session) Summary() storage.Run {
	counts := s.grid.Counts()
	return storage.Run{
		Scene:        s.cfg.Grid.Scene,
		GridSize:     s.grid.Size(),
		Ticks:        s.engine.Ticks(),
		Strokes:      s.strokes,
		CellsPainted: s.painted,
		Sand:         counts[sand.Sand],
		Water:        counts[sand.Water],
		Solid:        counts[sand.Solid],
		Faults:       s.faults,
		Duration:     time.Since(s.started),
	}
}
