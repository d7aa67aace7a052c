package storage

import (
	"fmt"
	"os"
	"path/filepath"
)

// FSSlot implements Slot backed by a single file on the local file system.
type FSSlot struct {
	path string // absolute path to the data file
}

// NewFSSlot creates a slot at the given file path. The parent directory is
// created if it does not exist; the file itself may be absent until the
// first Save.
func NewFSSlot(path string) (*FSSlot, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("storage: resolve path: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(abs), 0o755); err != nil {
		return nil, fmt.Errorf("storage: create data dir: %w", err)
	}
	if info, err := os.Stat(abs); err == nil && info.IsDir() {
		return nil, fmt.Errorf("storage: slot path is a directory: %s", abs)
	}
	return &FSSlot{path: abs}, nil
}

// Load reads the whole slot.
func (s *FSSlot) Load() ([]byte, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("storage: load %s: %w", s.path, err)
	}
	return data, nil
}

// Save atomically replaces the slot: tmp file → fsync → rename.
func (s *FSSlot) Save(data []byte) error {
	dir := filepath.Dir(s.path)

	tmp, err := os.CreateTemp(dir, ".socceo-tmp-*")
	if err != nil {
		return fmt.Errorf("storage: create temp: %w", err)
	}
	tmpName := tmp.Name()

	// Clean up on any failure path.
	success := false
	defer func() {
		if !success {
			_ = tmp.Close()
			_ = os.Remove(tmpName)
		}
	}()

	if _, err := tmp.Write(data); err != nil {
		return fmt.Errorf("storage: write temp: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		return fmt.Errorf("storage: fsync: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("storage: close temp: %w", err)
	}
	if err := os.Rename(tmpName, s.path); err != nil {
		return fmt.Errorf("storage: rename: %w", err)
	}
	success = true
	return nil
}

// Path returns the absolute path of the data file.
func (s *FSSlot) Path() string {
	return s.path
}
