package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/mwrobel/kcal/internal/config"
	"github.com/mwrobel/kcal/internal/storage"
)

// restoreCmd represents the restore command
var restoreCmd = &cobra.Command{
	Use:   "restore [n]",
	Short: "Restore the entry store from a backup",
	Long: `Restore the persisted entry store from a rotated backup.

Every save keeps up to 3 backups of the previous document next to the
storage file (.bak.1 is the most recent). Without an argument the most
recent backup is restored; pass a slot number to pick an older one.

Only available with the file storage backend.

Examples:
  kcal restore        Restore the most recent backup
  kcal restore 2      Restore the second most recent backup`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		slot := 1
		if len(args) == 1 {
			n, err := strconv.Atoi(args[0])
			if err != nil || n < 1 || n > storage.MaxBackupCount {
				fail(fmt.Sprintf("Invalid backup slot %q", args[0]), nil,
					fmt.Sprintf("Valid slots are 1-%d", storage.MaxBackupCount))
				return
			}
			slot = n
		}
		restoreBackup(slot)
	},
}

func init() {
	rootCmd.AddCommand(restoreCmd)
}

// restoreBackup replaces the storage document with the given backup slot
func restoreBackup(slot int) {
	if deps.Config.StorageBackend != config.BackendFile {
		fail("Restore is only available with the file storage backend", nil,
			"Set storage_backend = \"file\" in the config to use backups")
		return
	}

	path, err := deps.BlobPath()
	if err != nil {
		fail("Failed to determine storage location", err,
			"Check that your home directory is accessible")
		return
	}

	if len(storage.ListBackups(path)) == 0 {
		_, _ = fmt.Fprintln(deps.Stdout, "No backups found")
		return
	}

	if err := storage.RestoreBackup(path, slot); err != nil {
		fail("Failed to restore backup", err, "")
		return
	}

	_, _ = fmt.Fprintf(deps.Stdout, "Restored backup %d\n", slot)
}
