package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mwrobel/kcal/internal/aggregate"
	"github.com/mwrobel/kcal/internal/render"
)

// searchCmd represents the search command
var searchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Search entries by name or note",
	Long: `Search all entries for a case-insensitive substring match in the
name or note, most recent first.

Examples:
  kcal search pizza
  kcal search "double shot"`,
	Args: cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		searchEntries(strings.Join(args, " "))
	},
}

func init() {
	rootCmd.AddCommand(searchCmd)
}

// searchEntries lists entries whose name or note contains the query
func searchEntries(query string) {
	store := openStoreOrExit()
	if store == nil {
		return
	}

	needle := strings.ToLower(query)
	var matches int

	sorted := aggregate.FilteredSorted(store.Entries(), aggregate.RangeAll, deps.Now())
	for _, e := range sorted {
		if strings.Contains(strings.ToLower(e.Name), needle) ||
			strings.Contains(strings.ToLower(e.Note), needle) {
			if matches == 0 {
				_, _ = fmt.Fprintf(deps.Stdout, "Entries matching %q:\n", query)
			}
			matches++
			_, _ = fmt.Fprintln(deps.Stdout, render.FormatEntry(e))
		}
	}

	if matches == 0 {
		_, _ = fmt.Fprintf(deps.Stdout, "No entries matching %q\n", query)
		return
	}
	_, _ = fmt.Fprintf(deps.Stdout, "%d %s\n", matches, render.Pluralize("match", matches))
}
