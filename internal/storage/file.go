package storage

import "os"

// FileBlob stores the document as a single JSON file on disk.
type FileBlob struct {
	Path string
}

// NewFileBlob creates a FileBlob at the given path.
func NewFileBlob(path string) *FileBlob {
	return &FileBlob{Path: path}
}

// Load reads the whole document. A missing file yields (nil, nil) so
// first runs start from an empty collection.
func (b *FileBlob) Load() ([]byte, error) {
	data, err := os.ReadFile(b.Path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}
	return data, nil
}

// Save replaces the whole document using the write-temp-then-rename
// pattern so a crash mid-write never leaves a partial document. The
// previous document is rotated into the backup chain first.
func (b *FileBlob) Save(data []byte) error {
	if err := rotateBackups(b.Path); err != nil {
		return err
	}

	tmpFile := b.Path + ".tmp"
	file, err := os.OpenFile(tmpFile, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0644)
	if err != nil {
		return err
	}

	if _, err := file.Write(data); err != nil {
		_ = file.Close()
		_ = os.Remove(tmpFile)
		return err
	}

	if err := file.Close(); err != nil {
		_ = os.Remove(tmpFile)
		return err
	}

	return os.Rename(tmpFile, b.Path)
}
