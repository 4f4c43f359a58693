package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mwrobel/kcal/internal/render"
)

var clearYesFlag bool

// clearCmd represents the clear command
var clearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Delete ALL entries",
	Long: `Delete every stored entry. This action cannot be undone (beyond
restoring a storage backup with 'kcal restore').

A confirmation prompt is shown unless --yes is specified. Declining the
prompt aborts with no state change.

Example:
  kcal clear
  kcal clear --yes`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		clearAll()
	},
}

func init() {
	rootCmd.AddCommand(clearCmd)

	clearCmd.Flags().BoolVarP(&clearYesFlag, "yes", "y", false, "skip confirmation prompt")
}

// clearAll empties the store after explicit confirmation
func clearAll() {
	store := openStoreOrExit()
	if store == nil {
		return
	}

	count := store.Len()

	if !clearYesFlag {
		prompt := fmt.Sprintf("Really delete ALL %d %s? This cannot be undone. [y/N]: ",
			count, render.Pluralize("entry", count))
		if !promptConfirmation(prompt) {
			_, _ = fmt.Fprintln(deps.Stdout, "Clear cancelled")
			return
		}
	}

	if err := store.Clear(); err != nil {
		fail("Failed to clear entries", err, "Check that the storage location is writable")
		return
	}

	_, _ = fmt.Fprintf(deps.Stdout, "Cleared %d %s\n", count, render.Pluralize("entry", count))
}
