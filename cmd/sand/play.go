package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-sand/internal/config"
	"github.com/vovakirdan/tui-sand/internal/platform/tui"
	"github.com/vovakirdan/tui-sand/internal/storage"
)

var playCmd = &cobra.Command{
	Use:   "play [scene]",
	Short: "Play a scene",
	Long: `Start the sandbox. With a scene argument it starts that scene directly,
otherwise a menu lets you pick one. Quitting a scene started from the
menu returns to the menu.

Controls:
  1/2/3/4    - Select sand, water, solid, eraser (e also erases)
  Mouse      - Left paints the selection, right erases
  Arrows     - Move cursor (hjkl also works), Enter paints at cursor
  +/-        - Grow/shrink brush
  Space      - Pause, N steps once while paused
  R          - Reset the scene
  Ctrl+S     - Save a text screenshot
  Q/Ctrl+C   - Quit

Examples:
  sand play
  sand play hourglass
  sand play dam --size 60 --fps 60
  sand play --config ./my-sand.yaml`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func runPlay(_ *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	cfg, err = withScene(cfg, args)
	if err != nil {
		return err
	}

	store := openStore(cfg)
	if store != nil {
		defer store.Close()
	}

	rc := runtimeConfig(cfg)
	if len(args) == 1 {
		cfg.Grid.Size = tui.FitGridSize(cfg.Grid.Size, rc.ScreenW, rc.ScreenH)
		return tui.Run(cfg, store, logger, rc)
	}
	return menuLoop(cfg, store)
}

// menuLoop shows the scene menu until the user quits from it.
func menuLoop(cfg config.Config, store *storage.Store) error {
	for {
		rc := runtimeConfig(cfg)
		res, err := tui.RunMenu(store, rc.ScreenW, rc.ScreenH)
		if err != nil {
			return err
		}

		switch {
		case res.Quit:
			return nil

		case res.WantsRuns:
			goBack, err := tui.RunRuns(store, rc.ScreenW, rc.ScreenH)
			if err != nil {
				return err
			}
			if !goBack {
				return nil
			}

		default:
			sceneCfg := cfg
			sceneCfg.Grid.Scene = res.SceneID
			sceneCfg.Grid.Size = tui.FitGridSize(cfg.Grid.Size, rc.ScreenW, rc.ScreenH)
			if err := tui.Run(sceneCfg, store, logger, rc); err != nil {
				return err
			}
		}
	}
}

// openStore opens run history, warning and continuing without it on failure.
func openStore(cfg config.Config) *storage.Store {
	store, err := storage.Open(cfg.Storage.DBPath)
	if err != nil {
		logger.Warn("could not open run history", "path", cfg.Storage.DBPath, "error", err)
		return nil
	}
	return store
}
