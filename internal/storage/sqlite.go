package storage

import (
	"database/sql"
	"errors"
	"fmt"

	_ "modernc.org/sqlite"
)

// SQLiteBlob stores the document in an embedded SQLite database as a
// single row of a key-value table, keyed by StorageKey. The pure-Go
// driver keeps the binary cgo-free.
type SQLiteBlob struct {
	db  *sql.DB
	key string
}

// OpenSQLiteBlob opens (or creates) the database at path and ensures
// the blobs table exists.
func OpenSQLiteBlob(path string) (*SQLiteBlob, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	const schema = `CREATE TABLE IF NOT EXISTS blobs (
		key   TEXT PRIMARY KEY,
		value BLOB NOT NULL
	)`
	if _, err := db.Exec(schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to create blobs table: %w", err)
	}

	return &SQLiteBlob{db: db, key: StorageKey}, nil
}

// Load reads the whole document. A missing row yields (nil, nil).
func (b *SQLiteBlob) Load() ([]byte, error) {
	var value []byte
	err := b.db.QueryRow(`SELECT value FROM blobs WHERE key = ?`, b.key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return value, nil
}

// Save replaces the whole document in a single upsert.
func (b *SQLiteBlob) Save(data []byte) error {
	_, err := b.db.Exec(
		`INSERT INTO blobs (key, value) VALUES (?, ?)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value`,
		b.key, data)
	return err
}

// Close releases the database handle.
func (b *SQLiteBlob) Close() error {
	return b.db.Close()
}
