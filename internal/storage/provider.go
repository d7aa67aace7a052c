// Package storage defines the durable slot holding the post collection.
package storage

// Slot is a single named durable location holding the entire serialized
// post collection. Reads and writes always cover the whole value; there
// are no partial or incremental writes.
type Slot interface {
	// Load returns the current slot contents. A missing slot reports
	// fs.ErrNotExist through the returned error.
	Load() ([]byte, error)
	// Save atomically replaces the slot contents.
	Save(data []byte) error
	// Path returns the filesystem location backing the slot.
	Path() string
}
