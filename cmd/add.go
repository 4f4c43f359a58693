package cmd

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mwrobel/kcal/internal/entry"
	"github.com/mwrobel/kcal/internal/render"
)

var (
	addDateFlag string
	addNoteFlag string
)

// addCmd represents the add command
var addCmd = &cobra.Command{
	Use:   "add <amount> [name...]",
	Short: "Log a new calorie intake entry",
	Long: `Log a new calorie intake entry.

The first argument is the amount in kcal and must be a positive number;
it is rounded to the nearest whole kcal before storage. Remaining
arguments form the entry name. The date defaults to today.

Examples:
  kcal add 450 chicken salad
  kcal add 120.5 espresso --note "double shot"
  kcal add 700 pizza --date 2024-06-08`,
	Args: cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		addEntry(args)
	},
}

func init() {
	rootCmd.AddCommand(addCmd)

	addCmd.Flags().StringVar(&addDateFlag, "date", "", "Entry date (YYYY-MM-DD, defaults to today)")
	addCmd.Flags().StringVar(&addNoteFlag, "note", "", "Optional free-text note")
}

// addEntry validates input and appends a new entry to the store
func addEntry(args []string) {
	store := openStoreOrExit()
	if store == nil {
		return
	}

	amountInput := args[0]
	name := strings.Join(args[1:], " ")

	e, err := store.Add(name, amountInput, addDateFlag, addNoteFlag)
	if err != nil {
		if errors.Is(err, entry.ErrInvalidAmount) {
			fail(fmt.Sprintf("Invalid amount %q", amountInput), nil,
				"Amount must be a positive number of kcal, e.g. 450 or 120.5")
			return
		}
		fail("Failed to save entry", err, "Check that the storage location is writable")
		return
	}

	_, _ = fmt.Fprintf(deps.Stdout, "Logged: %s – %d kcal on %s (id %s)\n",
		render.Sanitize(e.DisplayName()), e.Kcal, e.Date, entry.FormatID(e.ID))
}
