package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-sand/internal/platform/tui"
	"github.com/vovakirdan/tui-sand/internal/registry"
	"github.com/vovakirdan/tui-sand/internal/storage"
)

var (
	flagPlain     bool
	flagRunsScene string
	flagLimit     int
	flagClear     bool
)

var runsCmd = &cobra.Command{
	Use:   "runs",
	Short: "Show recorded runs",
	Long: `Display recorded sandbox runs, newest first. By default the runs open in
an interactive table where Tab cycles the scene filter. Use --plain for a
text listing.

Examples:
  sand runs
  sand runs --plain --scene dam
  sand runs --clear --scene hourglass`,
	Args: cobra.NoArgs,
	RunE: runRuns,
}

func init() {
	runsCmd.Flags().BoolVar(&flagPlain, "plain", false, "Print a text listing instead of the table")
	runsCmd.Flags().StringVar(&flagRunsScene, "scene", "", "Only show runs of this scene (with --plain)")
	runsCmd.Flags().IntVar(&flagLimit, "limit", 10, "Number of runs to print (with --plain)")
	runsCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete recorded runs of --scene, or of every scene")
}

func runRuns(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if flagRunsScene != "" && !registry.Exists(flagRunsScene) {
		return fmt.Errorf("unknown scene %q, run 'sand list' to see available scenes", flagRunsScene)
	}

	store, err := storage.Open(cfg.Storage.DBPath)
	if err != nil {
		return err
	}
	defer store.Close()

	switch {
	case flagClear:
		return clearRuns(cmd.OutOrStdout(), store, flagRunsScene)
	case flagPlain:
		return printRuns(cmd.OutOrStdout(), store, flagRunsScene, flagLimit)
	}

	rc := runtimeConfig(cfg)
	_, err = tui.RunRuns(store, rc.ScreenW, rc.ScreenH)
	return err
}

// printRuns lists the newest runs, optionally limited to one scene.
func printRuns(out io.Writer, store *storage.Store, scene string, limit int) error {
	var (
		runs []storage.Run
		err  error
	)
	if scene == "" {
		runs, err = store.RecentRuns(limit)
	} else {
		runs, err = store.RunsForScene(scene, limit)
	}
	if err != nil {
		return err
	}

	if len(runs) == 0 {
		fmt.Fprintln(out, "No runs recorded yet.")
		fmt.Fprintln(out)
		fmt.Fprintln(out, "Play 'sand play' or 'sand simulate --save' to record one.")
		return nil
	}

	fmt.Fprintf(out, "  %-5s  %-10s  %-4s  %-8s  %-7s  %-6s  %-6s  %-6s  %s\n",
		"ID", "Scene", "Size", "Ticks", "Painted", "Sand", "Water", "Solid", "Date")
	for _, r := range runs {
		fmt.Fprintf(out, "  %-5d  %-10s  %-4d  %-8d  %-7d  %-6d  %-6d  %-6d  %s\n",
			r.ID, r.Scene, r.GridSize, r.Ticks, r.CellsPainted, r.Sand, r.Water, r.Solid,
			r.CreatedAt.Format("2006-01-02 15:04"))
	}

	if scene != "" {
		if stats, err := store.Stats(scene); err == nil {
			fmt.Fprintln(out)
			fmt.Fprintf(out, "%d runs, %d ticks total, longest %d\n", stats.Runs, stats.TotalTicks, stats.MaxTicks)
		}
	}
	return nil
}

// clearRuns deletes the history of scene, or of every registered scene.
func clearRuns(out io.Writer, store *storage.Store, scene string) error {
	scenes := []string{scene}
	if scene == "" {
		scenes = scenes[:0]
		for _, s := range registry.List() {
			scenes = append(scenes, s.ID)
		}
	}
	for _, id := range scenes {
		if err := store.ClearRuns(id); err != nil {
			return err
		}
	}
	fmt.Fprintf(out, "Cleared run history of %d scene(s).\n", len(scenes))
	return nil
}
