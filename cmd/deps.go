package cmd

import (
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/mwrobel/kcal/internal/config"
	"github.com/mwrobel/kcal/internal/storage"
)

// Deps holds external dependencies for CLI commands, enabling testability.
type Deps struct {
	Stdout io.Writer
	Stderr io.Writer
	Stdin  io.Reader
	Exit   func(code int)
	Now    func() time.Time

	// OpenStore opens the entry store for the configured backend.
	OpenStore func() (*storage.Store, error)
	// BlobPath resolves the persisted document location (file backend).
	BlobPath func() (string, error)
	// Config is the effective application configuration.
	Config config.Config
}

// DefaultDeps returns the default production dependencies. A broken or
// missing config file falls back to defaults silently; commands that
// need storage report their own errors.
func DefaultDeps() *Deps {
	cfg := config.DefaultConfig()
	if configPath, err := config.GetConfigPath(); err == nil {
		if loaded, err := config.LoadOrDefault(configPath); err == nil {
			cfg = loaded
		}
	}

	return &Deps{
		Stdout:    os.Stdout,
		Stderr:    os.Stderr,
		Stdin:     os.Stdin,
		Exit:      os.Exit,
		Now:       time.Now,
		OpenStore: func() (*storage.Store, error) { return openConfiguredStore(cfg) },
		BlobPath:  func() (string, error) { return resolveBlobPath(cfg) },
		Config:    cfg,
	}
}

// deps is the global dependencies instance used by commands.
// In production, this is DefaultDeps(). Tests can replace it.
var deps = DefaultDeps()

// SetDeps sets the global dependencies (for testing).
func SetDeps(d *Deps) {
	deps = d
}

// ResetDeps resets dependencies to defaults (for testing cleanup).
func ResetDeps() {
	deps = DefaultDeps()
}

// resolveBlobPath returns the storage document location for the
// configured backend, honoring the storage_path override.
func resolveBlobPath(cfg config.Config) (string, error) {
	if cfg.StoragePath != "" {
		return cfg.StoragePath, nil
	}
	if cfg.StorageBackend == config.BackendSQLite {
		dir, err := storage.DataDir()
		if err != nil {
			return "", err
		}
		return filepath.Join(dir, storage.StorageKey+".db"), nil
	}
	return storage.DefaultBlobPath()
}

// openConfiguredStore opens the store over the blob backend selected in
// the configuration.
func openConfiguredStore(cfg config.Config) (*storage.Store, error) {
	path, err := resolveBlobPath(cfg)
	if err != nil {
		return nil, err
	}

	var blob storage.Blob
	if cfg.StorageBackend == config.BackendSQLite {
		blob, err = storage.OpenSQLiteBlob(path)
		if err != nil {
			return nil, err
		}
	} else {
		blob = storage.NewFileBlob(path)
	}

	return storage.Open(blob)
}

// openStoreOrExit opens the store, reporting failures the standard way.
// Returns nil after calling Exit when opening fails.
func openStoreOrExit() *storage.Store {
	store, err := deps.OpenStore()
	if err != nil {
		fail("Failed to open entry storage", err,
			"Check that your home directory is accessible")
		return nil
	}
	return store
}
