// Package storage persists the entry collection as a single opaque
// document in a key-value blob store and owns the in-memory Store that
// all mutations flow through.
package storage

import (
	"os"
	"path/filepath"

	"github.com/mwrobel/kcal/internal/osutil"
)

const (
	// AppName is the application name used for the data directory
	AppName = "kcal"
	// StorageKey is the document key the entry list is persisted under
	StorageKey = "calapp_v1"
)

// Blob is an opaque whole-document store. Load returns nil with no
// error when the document does not exist; Save replaces the whole
// document atomically.
type Blob interface {
	Load() ([]byte, error)
	Save(data []byte) error
}

// DataDir returns the application data directory, creating it if
// necessary. Uses os.UserConfigDir() for a cross-platform XDG-compliant
// location.
func DataDir() (string, error) {
	configDir, err := osutil.Provider.UserConfigDir()
	if err != nil {
		return "", err
	}

	appDir := filepath.Join(configDir, AppName)
	if err := osutil.Provider.MkdirAll(appDir, 0755); err != nil {
		return "", err
	}

	return appDir, nil
}

// DefaultBlobPath returns the path of the default file-backed blob.
func DefaultBlobPath() (string, error) {
	dir, err := DataDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, StorageKey+".json"), nil
}

func exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
