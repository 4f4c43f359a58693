package cmd

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mwrobel/kcal/internal/entry"
	"github.com/mwrobel/kcal/internal/render"
)

var deleteYesFlag bool

// deleteCmd represents the delete command
var deleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete an entry by id",
	Long: `Delete a single entry by its id.

Entry ids are shown in list output. A confirmation prompt is shown
unless --yes is specified. Deleting an id that does not exist is not an
error; nothing changes.

Examples:
  kcal delete 1717711200000
  kcal delete 1717711200000 --yes`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		deleteEntry(args[0])
	},
}

func init() {
	rootCmd.AddCommand(deleteCmd)

	deleteCmd.Flags().BoolVarP(&deleteYesFlag, "yes", "y", false, "skip confirmation prompt")
}

// deleteEntry removes the entry with the given id after confirmation
func deleteEntry(id string) {
	store := openStoreOrExit()
	if store == nil {
		return
	}

	if !deleteYesFlag {
		var target *string
		for _, e := range store.Entries() {
			if entry.FormatID(e.ID) == strings.TrimSpace(id) {
				line := render.FormatEntry(e)
				target = &line
				break
			}
		}
		if target != nil {
			_, _ = fmt.Fprintf(deps.Stdout, "About to delete:\n  %s\n", *target)
			if !promptConfirmation("Delete this entry? [y/N]: ") {
				_, _ = fmt.Fprintln(deps.Stdout, "Delete cancelled")
				return
			}
		}
	}

	removed, err := store.Delete(id)
	if err != nil {
		fail("Failed to delete entry", err, "Check that the storage location is writable")
		return
	}

	if removed {
		_, _ = fmt.Fprintf(deps.Stdout, "Deleted entry %s\n", id)
	} else {
		_, _ = fmt.Fprintf(deps.Stdout, "No entry with id %s\n", id)
	}
}

// promptConfirmation asks the user to confirm an action.
// Returns true if the user answers 'y' or 'Y', false otherwise.
func promptConfirmation(prompt string) bool {
	_, _ = fmt.Fprint(deps.Stdout, prompt)

	scanner := bufio.NewScanner(deps.Stdin)
	if !scanner.Scan() {
		return false
	}

	response := strings.TrimSpace(scanner.Text())
	return response == "y" || response == "Y"
}
