package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mwrobel/kcal/internal/chart"
	"github.com/mwrobel/kcal/internal/render"
)

var chartWidthFlag int

// chartCmd represents the chart command
var chartCmd = &cobra.Command{
	Use:   "chart",
	Short: "Show the 7-day intake bar chart",
	Long: `Show a bar chart of the last 7 calendar days, oldest first.

The vertical scale is at least 100 kcal, so a week without entries
renders as an empty chart rather than full-height bars.

Example:
  kcal chart`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		showChart()
	},
}

func init() {
	rootCmd.AddCommand(chartCmd)

	chartCmd.Flags().IntVar(&chartWidthFlag, "width", 560, "Logical surface width in pixels")
}

// showChart builds the 7-day series and prints its terminal projection
func showChart() {
	store := openStoreOrExit()
	if store == nil {
		return
	}

	series := chart.Build(store.Entries(), deps.Now(), chartWidthFlag)
	_, _ = fmt.Fprint(deps.Stdout, render.RenderChart(series))
}
