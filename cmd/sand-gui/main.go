//go:build ebiten

// sand-gui runs the falling-sand sandbox in a desktop window.
//
// Left mouse paints Solid, right mouse paints Sand, W pours Water.
// Space pauses, N steps once, R resets, Q or Esc quits.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-sand/internal/config"
	"github.com/vovakirdan/tui-sand/internal/core"
	"github.com/vovakirdan/tui-sand/internal/platform/gui"
	_ "github.com/vovakirdan/tui-sand/internal/scenes"
)

var (
	flagConfig string
	flagScene  string
	flagSize   int
	flagScale  int
	flagSeed   int64
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:           "sand-gui",
	Short:         "Falling-sand sandbox in a window",
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          run,
}

func init() {
	rootCmd.Flags().StringVar(&flagConfig, "config", "", "Path to config YAML")
	rootCmd.Flags().StringVar(&flagScene, "scene", "", "Scene to start with")
	rootCmd.Flags().IntVar(&flagSize, "size", 0, "Grid size override (0 = from config)")
	rootCmd.Flags().IntVar(&flagScale, "scale", gui.DefaultScale, "Pixels per cell")
	rootCmd.Flags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = from config or time)")
}

func run(_ *cobra.Command, _ []string) error {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "sand-gui",
	})

	cfg, err := config.Load(flagConfig)
	if err != nil {
		return err
	}
	cfg, err = applyFlags(cfg, flagScene, flagSize, flagScale)
	if err != nil {
		return err
	}

	rc := core.DefaultConfig()
	rc.TickRate = cfg.Sim.TickRate
	rc.Seed = flagSeed

	game := gui.New(cfg, logger, rc, flagScale)
	side := cfg.Grid.Size * flagScale

	ebiten.SetWindowTitle("sand - " + cfg.Grid.Scene)
	ebiten.SetTPS(cfg.Sim.TickRate)
	ebiten.SetWindowSize(side, side)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	return nil
}
