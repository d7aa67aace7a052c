package index

import "github.com/socceo/socceo/internal/models"

// PostIndex defines the read-index operations over the post collection.
// Consumers should depend on this interface rather than the concrete *DB
// type to facilitate testing with mocks.
type PostIndex interface {
	UpsertPost(p models.Post) error
	DeletePost(id string) error
	Rebuild(posts []models.Post) error
	ListPosts(limit, offset int, category, postType, sort string) ([]Entry, int, error)
	Search(query string, limit int) ([]SearchResult, error)
	Close() error
}

// Verify *DB satisfies PostIndex at compile time.
var _ PostIndex = (*DB)(nil)
