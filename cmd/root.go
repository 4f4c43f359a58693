package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mwrobel/kcal/internal/aggregate"
	"github.com/mwrobel/kcal/internal/render"
)

var rootCmd = &cobra.Command{
	Use:   "kcal",
	Short: "A daily calorie intake tracker",
	Long: `kcal is a CLI tool for logging daily calorie intake.

Usage:
  kcal                                  List today's entries and totals
  kcal add <amount> [name...]           Log an entry (e.g., kcal add 450 chicken salad)
  kcal list --range week                List entries for a range (all|today|week|month)
  kcal delete <id>                      Delete an entry (with confirmation)
  kcal clear                            Delete ALL entries (with confirmation)
  kcal chart                            Show the 7-day bar chart
  kcal stats                            Show today/week totals and the week average
  kcal export > kalorie.json            Export all entries as JSON
  kcal import kalorie.json              Replace all entries from a JSON file

Dates are ISO calendar days (YYYY-MM-DD); amounts are kcal and must be positive.`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		listEntries(aggregate.RangeToday)
	},
}

// SetVersionInfo sets the version information for the CLI
func SetVersionInfo(version, commit, date string) {
	rootCmd.Version = version
	rootCmd.SetVersionTemplate(
		"kcal version {{.Version}}\n" +
			"commit: " + commit + "\n" +
			"built: " + date + "\n",
	)
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

// fail reports an error the standard way and exits with code 1.
func fail(msg string, err error, hint string) {
	_, _ = fmt.Fprintf(deps.Stderr, "Error: %s\n", msg)
	if err != nil {
		_, _ = fmt.Fprintf(deps.Stderr, "Details: %v\n", err)
	}
	if hint != "" {
		_, _ = fmt.Fprintf(deps.Stderr, "Hint: %s\n", hint)
	}
	deps.Exit(1)
}

// listEntries displays the filtered, sorted entry list for the given
// range together with the aggregated totals.
func listEntries(r aggregate.Range) {
	store := openStoreOrExit()
	if store == nil {
		return
	}

	now := deps.Now()
	entries := store.Entries()
	view := aggregate.FilteredSorted(entries, r, now)

	if len(view) == 0 {
		_, _ = fmt.Fprintf(deps.Stdout, "No entries found for range %q\n", r)
	} else {
		_, _ = fmt.Fprintf(deps.Stdout, "Entries (%s):\n", r)
		_, _ = fmt.Fprintln(deps.Stdout, strings.Repeat("-", 50))
		for _, e := range view {
			_, _ = fmt.Fprintln(deps.Stdout, render.FormatEntry(e))
		}
		_, _ = fmt.Fprintln(deps.Stdout, strings.Repeat("-", 50))
	}

	_, _ = fmt.Fprint(deps.Stdout, render.FormatTotals(aggregate.CalcTotals(entries, now)))
}
