//go:build ebiten

package gui

import (
	"image/color"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/vovakirdan/tui-sand/internal/config"
	"github.com/vovakirdan/tui-sand/internal/core"
	sand "github.com/vovakirdan/tui-sand/internal/sand/core"
	"github.com/vovakirdan/tui-sand/internal/sandbox"
)

// Game adapts a sandbox session to the ebiten.Game interface.
// Left button paints Solid, right button Sand, W pours Water.
type Game struct {
	session *sandbox.Session
	cfg     config.Config
	palette map[sand.Material]color.RGBA
	frame   *ebiten.Image
	pixels  []byte
	scale   int
}

// New resets a session for cfg and returns a window driving it.
func New(cfg config.Config, logger *log.Logger, rc core.RuntimeConfig, scale int) *Game {
	if scale <= 0 {
		scale = DefaultScale
	}
	s := sandbox.New(cfg, logger)
	s.Reset(rc)

	n := cfg.Grid.Size
	return &Game{
		session: s,
		cfg:     cfg,
		palette: Palette(cfg),
		frame:   ebiten.NewImage(n, n),
		pixels:  make([]byte, n*n*4),
		scale:   scale,
	}
}

// Session exposes the running sandbox.
func (g *Game) Session() *sandbox.Session {
	return g.session
}

// Update handles per-frame input and advances the simulation.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}

	in := core.NewInputFrame()
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		in.Set(core.ActionPause)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		in.Set(core.ActionStep)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		in.Set(core.ActionReset)
	}

	cx, cy := ebiten.CursorPosition()
	if p, ok := CellAt(cx, cy, g.scale, g.session.Grid().Size()); ok {
		g.paintHeld(p)
	}

	g.session.Step(in)
	if err := g.session.Err(); err != nil && g.session.State().Stopped {
		return err
	}
	return nil
}

// paintHeld applies one stroke per held button, each with its own brush.
func (g *Game) paintHeld(p sand.Point) {
	held := []struct {
		down bool
		m    sand.Material
	}{
		{ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft), sand.Solid},
		{ebiten.IsMouseButtonPressed(ebiten.MouseButtonRight), sand.Sand},
		{ebiten.IsKeyPressed(ebiten.KeyW), sand.Water},
	}
	for _, h := range held {
		if !h.down {
			continue
		}
		radius, density := g.cfg.BrushFor(h.m)
		g.session.PaintAt(p, h.m, radius, density)
	}
}

// Draw renders one pixel per cell, scaled to the window.
func (g *Game) Draw(screen *ebiten.Image) {
	FillRGBA(g.pixels, g.session.Grid(), g.palette)
	g.frame.WritePixels(g.pixels)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(g.scale), float64(g.scale))
	screen.DrawImage(g.frame, op)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	n := g.session.Grid().Size()
	return n * g.scale, n * g.scale
}
