package highscore

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// ErrCorrupt is returned when the score file exists but cannot be decoded
var ErrCorrupt = errors.New("high score file is corrupt")

// Store persists the high score table
type Store interface {
	Load() (Table, error)
	Save(Table) error
}

// FileStore keeps the table as a JSON object in a single file
type FileStore struct {
	path string
}

// NewFileStore creates a store backed by path
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// Path returns the backing file path
func (fs *FileStore) Path() string {
	return fs.path
}

// Load reads the table. A missing file yields a zero table and no error;
// a corrupt file yields a zero table and an error wrapping ErrCorrupt.
func (fs *FileStore) Load() (Table, error) {
	data, err := os.ReadFile(fs.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Table{}, nil
		}
		return Table{}, fmt.Errorf("read %s: %w", fs.path, err)
	}

	var t Table
	if err := json.Unmarshal(data, &t); err != nil {
		return Table{}, fmt.Errorf("%w: %s: %v", ErrCorrupt, fs.path, err)
	}
	t.sanitize()
	return t, nil
}

// Save writes the table through a temp file and rename so a crash never leaves a partial file
func (fs *FileStore) Save(t Table) error {
	data, err := json.Marshal(t)
	if err != nil {
		return fmt.Errorf("encode high scores: %w", err)
	}

	dir := filepath.Dir(fs.path)
	tmp, err := os.CreateTemp(dir, ".high_scores-*.tmp")
	if err != nil {
		return fmt.Errorf("create temp file in %s: %w", dir, err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("write %s: %w", tmpName, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("close %s: %w", tmpName, err)
	}
	if err := os.Rename(tmpName, fs.path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("replace %s: %w", fs.path, err)
	}
	return nil
}

// MemoryStore is an in-process store, used when persistence is disabled and in tests
type MemoryStore struct {
	Table Table
	Saves int
	Err   error // Returned by Save when set
}

// Load returns the held table
func (ms *MemoryStore) Load() (Table, error) {
	return ms.Table, nil
}

// Save replaces the held table and counts the call
func (ms *MemoryStore) Save(t Table) error {
	if ms.Err != nil {
		return ms.Err
	}
	ms.Table = t
	ms.Saves++
	return nil
}
