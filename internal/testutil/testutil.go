// Package testutil provides shared test helpers for setting up content
// stores and index databases.
package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/socceo/socceo/internal/index"
	"github.com/socceo/socceo/internal/library"
	"github.com/socceo/socceo/internal/storage"
)

// TestDB creates a temporary SQLite database that is automatically cleaned up.
func TestDB(t *testing.T) *index.DB {
	t.Helper()
	dbFile, err := os.CreateTemp("", "socceo-test-*.db")
	if err != nil {
		t.Fatal(err)
	}
	dbFile.Close()
	t.Cleanup(func() { os.Remove(dbFile.Name()) })

	db, err := index.Open(dbFile.Name())
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

// TestSlot creates a durable slot backed by a temporary data file.
func TestSlot(t *testing.T) (string, *storage.FSSlot) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "posts.json")
	slot, err := storage.NewFSSlot(path)
	if err != nil {
		t.Fatal(err)
	}
	return path, slot
}

// TestStore creates a seeded content store with no artificial save delay.
func TestStore(t *testing.T, opts ...library.Option) *library.Store {
	t.Helper()
	_, slot := TestSlot(t)
	opts = append([]library.Option{library.WithSaveDelay(0)}, opts...)
	store, err := library.NewStore(slot, opts...)
	if err != nil {
		t.Fatal(err)
	}
	return store
}
