package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mwrobel/kcal/internal/aggregate"
	"github.com/mwrobel/kcal/internal/dateutil"
	"github.com/mwrobel/kcal/internal/render"
)

// statsCmd represents the stats command
var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show intake totals and the week average",
	Long: `Show aggregated intake statistics:

  Today         sum of entries dated today
  Last 7 days   sum over the trailing 7 calendar days (including today)
  Week average  the 7-day total divided by 7, regardless of how many
                days actually have entries

Example:
  kcal stats`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		showStats()
	},
}

func init() {
	rootCmd.AddCommand(statsCmd)
}

// showStats prints the totals block plus entry and day counts
func showStats() {
	store := openStoreOrExit()
	if store == nil {
		return
	}

	now := deps.Now()
	entries := store.Entries()
	totals := aggregate.CalcTotals(entries, now)

	days := make(map[string]bool)
	weekEntries := 0
	for _, e := range entries {
		if dateutil.InLastNDays(e.Date, aggregate.WindowDays, now) {
			weekEntries++
			days[e.Date] = true
		}
	}

	_, _ = fmt.Fprint(deps.Stdout, render.FormatTotals(totals))
	_, _ = fmt.Fprintf(deps.Stdout, "Entries this week:   %d\n", weekEntries)
	_, _ = fmt.Fprintf(deps.Stdout, "Days with entries:   %d of %d\n", len(days), aggregate.WindowDays)
}
