package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// exportCmd represents the export command
var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export all entries as pretty-printed JSON",
	Long: `Export the whole entry collection as pretty-printed JSON on stdout.

The output is a JSON list of entry objects and can be fed back into
'kcal import' unchanged. Optional fields (name, note) are omitted when
empty; readers must tolerate their absence.

Examples:
  kcal export
  kcal export > kalorie.json`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		exportEntries()
	},
}

func init() {
	rootCmd.AddCommand(exportCmd)
}

// exportEntries writes the serialized store to stdout
func exportEntries() {
	store := openStoreOrExit()
	if store == nil {
		return
	}

	data, err := store.Export()
	if err != nil {
		fail("Failed to encode entries", err, "")
		return
	}

	_, _ = fmt.Fprintln(deps.Stdout, string(data))
}
