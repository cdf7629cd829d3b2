// Package config provides YAML-based configuration loading and validation
// for the sandbox front ends.
package config

import (
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/vovakirdan/tui-sand/internal/core"
	sand "github.com/vovakirdan/tui-sand/internal/sand/core"
)

// Config contains all configuration for a sandbox run.
type Config struct {
	Grid    GridConfig              `yaml:"grid"`
	Sim     SimConfig               `yaml:"sim"`
	Brush   BrushConfig             `yaml:"brush"`
	Palette map[string]PaletteEntry `yaml:"palette"`
	Storage StorageConfig           `yaml:"storage"`
	SSH     SSHConfig               `yaml:"ssh"`
}

// GridConfig defines the world dimensions and the initial scene.
type GridConfig struct {
	Size  int    `yaml:"size"`
	Scene string `yaml:"scene"`
}

// SimConfig defines the simulation loop.
type SimConfig struct {
	TickRate  int    `yaml:"tick_rate"`  // ticks per second
	Sweep     string `yaml:"sweep"`      // "columns" or "rows"
	SkipMoved bool   `yaml:"skip_moved"` // at most one move per cell per tick
	OnFault   string `yaml:"on_fault"`   // "log" or "abort"
	Seed      int64  `yaml:"seed"`       // 0 = time based
}

// BrushConfig defines the painting brush.
type BrushConfig struct {
	Radius    float64                  `yaml:"radius"`
	MinRadius float64                  `yaml:"min_radius"`
	MaxRadius float64                  `yaml:"max_radius"`
	Density   int                      `yaml:"density"`
	Materials map[string]BrushOverride `yaml:"materials"`
}

// BrushOverride replaces the brush defaults for one material.
// Zero radius and nil density inherit.
type BrushOverride struct {
	Radius  float64 `yaml:"radius"`
	Density *int    `yaml:"density"`
}

// PaletteEntry describes how a material is drawn in the terminal.
type PaletteEntry struct {
	Glyph string `yaml:"glyph"`
	Color string `yaml:"color"`
}

// StorageConfig locates the run history database.
type StorageConfig struct {
	DBPath string `yaml:"db_path"`
}

// SSHConfig configures `sand serve`.
type SSHConfig struct {
	Address     string        `yaml:"address"`
	HostKey     string        `yaml:"host_key"`
	IdleTimeout time.Duration `yaml:"idle_timeout"`
}

// Fault policies for sim.on_fault.
const (
	FaultLog   = "log"
	FaultAbort = "abort"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("config: invalid")

// Validate checks the configuration for values the sandbox cannot run with.
func (c Config) Validate() error {
	var problems []string
	add := func(format string, args ...any) {
		problems = append(problems, fmt.Sprintf(format, args...))
	}

	if c.Grid.Size <= 0 {
		add("grid.size must be positive, got %d", c.Grid.Size)
	}
	if c.Sim.TickRate <= 0 {
		add("sim.tick_rate must be positive, got %d", c.Sim.TickRate)
	}
	if _, err := sand.ParseSweep(c.Sim.Sweep); err != nil {
		add("sim.sweep: %v", err)
	}
	if c.Sim.OnFault != FaultLog && c.Sim.OnFault != FaultAbort {
		add("sim.on_fault must be %q or %q, got %q", FaultLog, FaultAbort, c.Sim.OnFault)
	}

	b := c.Brush
	if !finite(b.MinRadius) || !finite(b.MaxRadius) || b.MinRadius <= 0 || b.MinRadius > b.MaxRadius {
		add("brush radius bounds [%g, %g] are invalid", b.MinRadius, b.MaxRadius)
	}
	if !inRange(b.Radius, b.MinRadius, b.MaxRadius) {
		add("brush.radius %g outside [%g, %g]", b.Radius, b.MinRadius, b.MaxRadius)
	}
	if b.Density < 0 || b.Density > sand.FullDensity {
		add("brush.density must be within 0..100, got %d", b.Density)
	}
	for name, o := range b.Materials {
		if _, err := sand.ParseMaterial(name); err != nil {
			add("brush.materials: %v", err)
		}
		// Zero inherits brush.radius.
		if o.Radius != 0 && !inRange(o.Radius, b.MinRadius, b.MaxRadius) {
			add("brush.materials.%s.radius %g outside [%g, %g]", name, o.Radius, b.MinRadius, b.MaxRadius)
		}
		if o.Density != nil && (*o.Density < 0 || *o.Density > sand.FullDensity) {
			add("brush.materials.%s.density must be within 0..100", name)
		}
	}

	for name, p := range c.Palette {
		if _, err := sand.ParseMaterial(name); err != nil {
			add("palette: %v", err)
		}
		if len([]rune(p.Glyph)) > 1 {
			add("palette.%s.glyph must be a single character, got %q", name, p.Glyph)
		}
		if _, err := core.ParseColor(p.Color); err != nil {
			add("palette.%s: %v", name, err)
		}
	}

	if c.SSH.IdleTimeout < 0 {
		add("ssh.idle_timeout must not be negative")
	}

	if len(problems) > 0 {
		return fmt.Errorf("%w: %s", ErrInvalid, strings.Join(problems, "; "))
	}
	return nil
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// inRange reports whether v is a finite value within [lo, hi]. NaN is never in range.
func inRange(v, lo, hi float64) bool {
	return finite(v) && v >= lo && v <= hi
}

// EngineConfig converts the sim section into physics settings.
func (c Config) EngineConfig() (sand.EngineConfig, error) {
	sweep, err := sand.ParseSweep(c.Sim.Sweep)
	if err != nil {
		return sand.EngineConfig{}, fmt.Errorf("config: %w", err)
	}
	return sand.EngineConfig{Sweep: sweep, SkipMoved: c.Sim.SkipMoved}, nil
}

// BrushFor returns the starting radius and density for painting m.
func (c Config) BrushFor(m sand.Material) (radius float64, density int) {
	radius, density = c.Brush.Radius, c.Brush.Density
	o, ok := c.Brush.Materials[m.String()]
	if !ok {
		return radius, density
	}
	if o.Radius > 0 {
		radius = o.Radius
	}
	if o.Density != nil {
		density = *o.Density
	}
	return radius, density
}

// Swatch returns the glyph and color used to draw m. Materials without a
// palette entry use their ASCII glyph in the default color.
func (c Config) Swatch(m sand.Material) (rune, core.Color) {
	glyph, color := m.Glyph(), core.ColorDefault
	p, ok := c.Palette[m.String()]
	if !ok {
		return glyph, color
	}
	if r := []rune(p.Glyph); len(r) == 1 {
		glyph = r[0]
	}
	if parsed, err := core.ParseColor(p.Color); err == nil {
		color = parsed
	}
	return glyph, color
}

// TickInterval returns the duration of one simulation tick.
func (c Config) TickInterval() time.Duration {
	if c.Sim.TickRate <= 0 {
		return time.Second / 30
	}
	return time.Second / time.Duration(c.Sim.TickRate)
}
