package storage

import (
	"bufio"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// FileStore keeps each collection in <dir>/<collection>.json.
type FileStore struct {
	dir string
}

// NewFileStore returns a FileStore rooted at dir. The directory must exist
// before the first Write.
func NewFileStore(dir string) *FileStore {
	return &FileStore{dir: dir}
}

// Path returns the file that holds collection.
func (s *FileStore) Path(collection string) string {
	return filepath.Join(s.dir, collection+".json")
}

// Read returns the file contents, or types.ErrNoDocument if the file does
// not exist.
func (s *FileStore) Read(collection string) ([]byte, error) {
	data, err := os.ReadFile(s.Path(collection))
	if errors.Is(err, fs.ErrNotExist) {
		return nil, errNoDocument(collection)
	}
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", collection, err)
	}
	return data, nil
}

// Write atomically replaces the collection file.
func (s *FileStore) Write(collection string, data []byte) error {
	return writeFileAtomic(s.Path(collection), data)
}

// Close is a no-op; FileStore holds no open handles.
func (s *FileStore) Close() error {
	return nil
}

// writeFileAtomic writes data using the temp-file, fsync, rename pattern so
// the target is never observed half written.
func writeFileAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, ".collection-*.tmp")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	tmpName := tmp.Name()

	w := bufio.NewWriter(tmp)
	if _, err := w.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("writing document: %w", err)
	}
	if err := w.Flush(); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("flushing buffer: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("syncing temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("closing temp file: %w", err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("renaming temp file: %w", err)
	}
	return nil
}
