package storage

import (
	"fmt"
	"os"
)

const (
	// BackupSuffix is the file extension for backup documents
	BackupSuffix = ".bak"
	// MaxBackupCount is the maximum number of backup documents to keep
	MaxBackupCount = 3
)

// BackupPath returns the path of a backup document with the given
// rotation number. Lower numbers are more recent (.bak.1 is the last
// document replaced by a save).
func BackupPath(blobPath string, n int) string {
	return fmt.Sprintf("%s%s.%d", blobPath, BackupSuffix, n)
}

// rotateBackups shifts existing backups one slot down and copies the
// current document into slot 1. The oldest backup beyond MaxBackupCount
// is dropped. Missing files are fine; a fresh store has nothing to rotate.
func rotateBackups(blobPath string) error {
	if !exists(blobPath) {
		return nil
	}

	oldest := BackupPath(blobPath, MaxBackupCount)
	if err := os.Remove(oldest); err != nil && !os.IsNotExist(err) {
		return err
	}

	for i := MaxBackupCount - 1; i >= 1; i-- {
		current := BackupPath(blobPath, i)
		if !exists(current) {
			continue
		}
		if err := os.Rename(current, BackupPath(blobPath, i+1)); err != nil {
			return err
		}
	}

	data, err := os.ReadFile(blobPath)
	if err != nil {
		return err
	}
	return os.WriteFile(BackupPath(blobPath, 1), data, 0644)
}

// ListBackups returns the rotation numbers of existing backups for the
// given blob path, most recent first.
func ListBackups(blobPath string) []int {
	var found []int
	for i := 1; i <= MaxBackupCount; i++ {
		if exists(BackupPath(blobPath, i)) {
			found = append(found, i)
		}
	}
	return found
}

// RestoreBackup replaces the current document with the backup in the
// given rotation slot. The replaced document is itself rotated into the
// backup chain, so a restore can be undone by restoring slot 1 again.
func RestoreBackup(blobPath string, n int) error {
	backupPath := BackupPath(blobPath, n)
	data, err := os.ReadFile(backupPath)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("backup %d does not exist", n)
		}
		return err
	}

	if err := rotateBackups(blobPath); err != nil {
		return err
	}
	return os.WriteFile(blobPath, data, 0644)
}
