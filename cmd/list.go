package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mwrobel/kcal/internal/aggregate"
)

var listRangeFlag string

// listCmd represents the list command
var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List entries for a date range",
	Long: `List entries for a date range, most recent first.

Ranges:
  all     every stored entry
  today   entries dated today
  week    entries in the trailing 7 calendar days (including today)
  month   entries in the current calendar month

Examples:
  kcal list
  kcal list --range week
  kcal list --range month`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		r, ok := aggregate.ParseRange(listRangeFlag)
		if !ok {
			fail(fmt.Sprintf("Unknown range %q", listRangeFlag), nil,
				"Valid ranges: all, today, week, month")
			return
		}
		listEntries(r)
	},
}

func init() {
	rootCmd.AddCommand(listCmd)

	listCmd.Flags().StringVar(&listRangeFlag, "range", "all", "Date range filter (all|today|week|month)")
}
