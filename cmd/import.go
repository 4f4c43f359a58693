package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mwrobel/kcal/internal/render"
	"github.com/mwrobel/kcal/internal/storage"
)

// importCmd represents the import command
var importCmd = &cobra.Command{
	Use:   "import <file.json>",
	Short: "Replace all entries from a JSON file",
	Long: `Replace the whole entry collection with the contents of a JSON file.

The file must contain a JSON list of entry objects. Records without a
positive numeric "kcal" field or without a "date" field are dropped
silently; a payload that is not a list, or not valid JSON, fails and
leaves the existing entries untouched.

Example:
  kcal import kalorie.json`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		importEntries(args[0])
	},
}

func init() {
	rootCmd.AddCommand(importCmd)
}

// importEntries reads the payload file and replaces the store contents
func importEntries(path string) {
	raw, err := os.ReadFile(path)
	if err != nil {
		fail(fmt.Sprintf("Failed to read %s", path), err,
			"Check that the file exists and is readable")
		return
	}

	store := openStoreOrExit()
	if store == nil {
		return
	}

	count, err := store.Import(raw)
	if err != nil {
		switch {
		case errors.Is(err, storage.ErrNotList):
			fail("File does not contain a list of entries", nil,
				"Expected a JSON array like the output of 'kcal export'")
		case errors.Is(err, storage.ErrParse):
			fail("File is not valid JSON", err,
				"Expected a JSON array like the output of 'kcal export'")
		default:
			fail("Failed to import entries", err, "Check that the storage location is writable")
		}
		return
	}

	_, _ = fmt.Fprintf(deps.Stdout, "Imported %d %s\n", count, render.Pluralize("entry", count))
}
