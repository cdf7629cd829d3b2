// sand is a falling-sand sandbox for the terminal.
//
// Usage:
//
//	sand list                 - List available scenes
//	sand play [scene]         - Play a scene, or pick one from a menu
//	sand simulate [scene]     - Run a scene headless and print the grid
//	sand serve                - Start SSH server for remote play
//	sand runs                 - Show recorded runs
//
// Global flags:
//
//	--config <path>     - Config YAML (default search: ~/.sand/config.yaml, ./configs/sand.yaml)
//	--fps <rate>        - Override tick rate
//	--seed <value>      - Set RNG seed for reproducible brush strokes
//	--size <n>          - Override grid size
//	--db <path>         - Override run history database path
//	--log-level <level> - debug, info, warn or error
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-sand/internal/config"
	"github.com/vovakirdan/tui-sand/internal/core"
	"github.com/vovakirdan/tui-sand/internal/registry"

	// Import scenes to register them
	_ "github.com/vovakirdan/tui-sand/internal/scenes"
)

var (
	// Global flags
	flagConfig   string
	flagFPS      int
	flagSeed     int64
	flagSize     int
	flagDBPath   string
	flagLogLevel string

	logger = log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "sand",
	})
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "sand",
	Short: "Falling sand in your terminal",
	Long: `sand is a falling-sand cellular automaton. Paint sand, water and
solid walls into a square world and watch them settle.

Available commands:
  list      - Show all scenes
  play      - Play a scene directly or pick one from the menu
  simulate  - Run a scene without a terminal UI
  serve     - Start SSH server for remote play
  runs      - View recorded runs

Examples:
  sand list
  sand play hourglass
  sand simulate dam --ticks 200
  sand serve --ssh :2222
  sand runs --scene basin`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setupLogger,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config YAML")
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 0, "Tick rate override (0 = from config)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = from config or time)")
	rootCmd.PersistentFlags().IntVar(&flagSize, "size", 0, "Grid size override (0 = from config)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "", "Run history database override")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(simulateCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(runsCmd)
}

func setupLogger(_ *cobra.Command, _ []string) error {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return fmt.Errorf("invalid --log-level %q", flagLogLevel)
	}
	logger.SetLevel(level)
	return nil
}

// loadConfig reads the config file and applies command line overrides.
func loadConfig() (config.Config, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return cfg, err
	}
	if flagFPS > 0 {
		cfg.Sim.TickRate = flagFPS
	}
	if flagSize > 0 {
		cfg.Grid.Size = flagSize
	}
	if flagDBPath != "" {
		cfg.Storage.DBPath = flagDBPath
	}
	return cfg, cfg.Validate()
}

// withScene selects the scene named in args, if any.
func withScene(cfg config.Config, args []string) (config.Config, error) {
	if len(args) == 0 {
		return cfg, nil
	}
	if !registry.Exists(args[0]) {
		return cfg, fmt.Errorf("unknown scene %q, run 'sand list' to see available scenes", args[0])
	}
	cfg.Grid.Scene = args[0]
	return cfg, nil
}

// runtimeConfig reads the terminal size and the seed flag.
func runtimeConfig(cfg config.Config) core.RuntimeConfig {
	rc := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		rc.ScreenW = w
		rc.ScreenH = h
	}
	rc.TickRate = cfg.Sim.TickRate
	rc.Seed = flagSeed
	return rc
}
