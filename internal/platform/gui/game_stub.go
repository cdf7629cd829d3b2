//go:build !ebiten

package gui

import (
	"fmt"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-sand/internal/config"
	"github.com/vovakirdan/tui-sand/internal/core"
)

// Game is a placeholder for builds without the ebiten tag. It keeps the
// package API identical across tags so callers compile either way; only the
// ebiten-tagged cmd/sand-gui constructs one.
type Game struct{}

// New panics to indicate that the ebiten build tag is required for GUI support.
func New(config.Config, *log.Logger, core.RuntimeConfig, int) *Game {
	panic("gui.New requires building with the 'ebiten' tag")
}

// Update always reports that the GUI build tag is missing.
func (g *Game) Update() error {
	return fmt.Errorf("gui.Game.Update requires building with the 'ebiten' tag")
}

// Draw is a no-op placeholder.
func (g *Game) Draw(any) {}

// Layout returns zeros in the headless build.
func (g *Game) Layout(int, int) (int, int) { return 0, 0 }
