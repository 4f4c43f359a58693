package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mwrobel/kcal/internal/tui"
)

// tuiCmd represents the tui command
var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Launch interactive terminal UI",
	Long: `Launch the interactive Terminal User Interface for kcal.

Views available:
  - Entries: browse, add, and delete entries with range filtering
  - Chart: the 7-day intake bar chart
  - Stats: today/week totals and the week average

Keyboard shortcuts:
  - Tab/Shift+Tab: Navigate between views
  - 1-3: Jump to a specific view
  - j/k or arrows: Navigate within lists
  - f: Cycle the range filter
  - n: New entry, d: Delete entry
  - ?: Show help
  - q: Quit`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		runTUI()
	},
}

func init() {
	rootCmd.AddCommand(tuiCmd)
}

// runTUI initializes and runs the TUI application
func runTUI() {
	store, err := deps.OpenStore()
	if err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "Error opening storage: %v\n", err)
		os.Exit(1)
	}

	if err := tui.Run(store, deps.Config); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "Error running TUI: %v\n", err)
		os.Exit(1)
	}
}
