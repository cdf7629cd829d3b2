package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-sand/internal/registry"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all available scenes",
	Long:  `Shows a list of all scenes a sandbox can start from.`,
	Args:  cobra.NoArgs,
	Run:   runList,
}

func runList(cmd *cobra.Command, _ []string) {
	out := cmd.OutOrStdout()
	scenes := registry.List()

	if len(scenes) == 0 {
		fmt.Fprintln(out, "No scenes available.")
		return
	}

	fmt.Fprintln(out, "Available scenes:")
	fmt.Fprintln(out)

	// Calculate column widths
	maxIDLen := 2 // "ID" header
	for _, s := range scenes {
		maxIDLen = max(maxIDLen, len(s.ID))
	}

	fmt.Fprintf(out, "  %-*s  %s\n", maxIDLen, "ID", "Description")
	fmt.Fprintf(out, "  %-*s  %s\n", maxIDLen, "--", "-----------")
	for _, s := range scenes {
		fmt.Fprintf(out, "  %-*s  %s\n", maxIDLen, s.ID, s.Description)
	}

	fmt.Fprintln(out)
	fmt.Fprintln(out, "Run 'sand play <id>' to play a scene.")
}
