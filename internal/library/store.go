// Package library implements the content store: the single owner of the
// post collection, persisted as a whole to a durable slot.
package library

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"strconv"
	"sync"
	"time"

	"github.com/socceo/socceo/internal/apperr"
	"github.com/socceo/socceo/internal/models"
	"github.com/socceo/socceo/internal/slug"
	"github.com/socceo/socceo/internal/storage"
)

// Event kinds emitted to subscribers.
const (
	EventCreated  = "created"
	EventUpdated  = "updated"
	EventDeleted  = "deleted"
	EventReloaded = "reloaded"
)

// Event describes a change to the collection. Post is nil for reloads.
type Event struct {
	Kind string
	Post *models.Post
}

// Index receives derived copies of the collection for filtered listing and
// search. Index failures never fail a store operation; the collection in
// the slot is the source of truth.
type Index interface {
	UpsertPost(p models.Post) error
	DeletePost(id string) error
	Rebuild(posts []models.Post) error
}

// Store owns the canonical post collection. Every mutation rewrites the
// entire collection to the slot; the whole collection is the unit of
// consistency. Conflicting concurrent mutations are last-write-wins.
type Store struct {
	mu        sync.RWMutex
	posts     []models.Post
	lastID    int64
	lastSaved []byte // last bytes we wrote, to skip self-triggered reloads

	slot      storage.Slot
	idx       Index
	logger    *slog.Logger
	saveDelay time.Duration
	seed      []models.Post

	subMu   sync.Mutex
	subs    map[int]func(Event)
	nextSub int
}

// Option configures a Store.
type Option func(*Store)

// WithIndex attaches a read index kept in sync with the collection.
func WithIndex(idx Index) Option {
	return func(s *Store) { s.idx = idx }
}

// WithLogger sets the store logger.
func WithLogger(l *slog.Logger) Option {
	return func(s *Store) { s.logger = l }
}

// WithSaveDelay sets the artificial latency applied to mutating
// operations, preserving the "saving…" UX contract.
func WithSaveDelay(d time.Duration) Option {
	return func(s *Store) { s.saveDelay = d }
}

// WithSeed overrides the built-in default dataset used when the slot is
// empty or unreadable.
func WithSeed(posts []models.Post) Option {
	return func(s *Store) { s.seed = posts }
}

// NewStore creates a store bound to the given slot and bootstraps the
// collection: slot contents if present and parseable, the seed dataset
// otherwise. A missing slot is seeded and written immediately so default
// content becomes fully editable thereafter.
func NewStore(slot storage.Slot, opts ...Option) (*Store, error) {
	s := &Store{
		slot:   slot,
		logger: slog.Default(),
		seed:   SeedPosts(),
		subs:   make(map[int]func(Event)),
	}
	for _, opt := range opts {
		opt(s)
	}
	if err := s.load(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Store) load() error {
	data, err := s.slot.Load()
	switch {
	case err == nil:
		var posts []models.Post
		if jsonErr := json.Unmarshal(data, &posts); jsonErr != nil {
			// Corrupt slot: fall back silently to the defaults. The next
			// successful mutation overwrites the slot wholesale.
			s.logger.Warn("library: slot unreadable, using seed data",
				slog.String("error", jsonErr.Error()))
			s.posts = clonePosts(s.seed)
		} else {
			s.posts = posts
			s.lastSaved = data
		}
	case errors.Is(err, fs.ErrNotExist):
		s.posts = clonePosts(s.seed)
		s.normalizeLocked()
		if persistErr := s.persistLocked(); persistErr != nil {
			return persistErr
		}
	default:
		s.logger.Warn("library: slot read failed, using seed data",
			slog.String("error", err.Error()))
		s.posts = clonePosts(s.seed)
	}

	s.normalizeLocked()
	s.trackIDsLocked()
	s.rebuildIndexLocked()
	return nil
}

// List returns a snapshot of the collection, newest first.
func (s *Store) List() []models.Post {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return clonePosts(s.posts)
}

// GetBySlug returns the first post whose derived slug matches. Linear
// first-match scan; slug uniqueness is not enforced.
func (s *Store) GetBySlug(sl string) (*models.Post, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for i := range s.posts {
		if slug.Make(s.posts[i].Title) == sl {
			p := s.posts[i]
			return &p, true
		}
	}
	return nil, false
}

// GetByID returns the post with the given id.
func (s *Store) GetByID(id string) (*models.Post, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for i := range s.posts {
		if s.posts[i].ID == id {
			p := s.posts[i]
			return &p, true
		}
	}
	return nil, false
}

// Add assigns a new id, prepends the post, and persists. The artificial
// save delay elapses first; the operation is not cancelable once started.
func (s *Store) Add(ctx context.Context, draft models.Post) (*models.Post, error) {
	s.wait(ctx)

	s.mu.Lock()
	p := draft
	p.ID = s.nextIDLocked()

	newSlug := slug.Make(p.Title)
	collision := false
	for i := range s.posts {
		if slug.Make(s.posts[i].Title) == newSlug {
			collision = true
			break
		}
	}

	s.posts = append([]models.Post{p}, s.posts...)
	err := s.persistLocked()
	s.mu.Unlock()
	if err != nil {
		return nil, err
	}

	if collision {
		s.logger.Warn("library: slug collision, deep links resolve first match",
			slog.String("slug", newSlug), slog.String("id", p.ID))
	}
	s.indexUpsert(p)
	s.notify(Event{Kind: EventCreated, Post: &p})
	return &p, nil
}

// Update merges the patch into the post with the given id and persists.
// Returns apperr.ErrNotFound when the id is absent.
func (s *Store) Update(ctx context.Context, id string, patch Patch) (*models.Post, error) {
	s.wait(ctx)

	s.mu.Lock()
	i := s.indexOfLocked(id)
	if i < 0 {
		s.mu.Unlock()
		return nil, apperr.ErrNotFound
	}
	patch.Apply(&s.posts[i])
	p := s.posts[i]
	err := s.persistLocked()
	s.mu.Unlock()
	if err != nil {
		return nil, err
	}

	s.indexUpsert(p)
	s.notify(Event{Kind: EventUpdated, Post: &p})
	return &p, nil
}

// Remove deletes the post with the given id and persists. Removing an
// absent id is a no-op.
func (s *Store) Remove(ctx context.Context, id string) error {
	s.wait(ctx)

	s.mu.Lock()
	i := s.indexOfLocked(id)
	if i < 0 {
		s.mu.Unlock()
		return nil
	}
	p := s.posts[i]
	s.posts = append(s.posts[:i:i], s.posts[i+1:]...)
	err := s.persistLocked()
	s.mu.Unlock()
	if err != nil {
		return err
	}

	if s.idx != nil {
		if idxErr := s.idx.DeletePost(id); idxErr != nil {
			s.logger.Warn("library: index delete failed",
				slog.String("id", id), slog.String("error", idxErr.Error()))
		}
	}
	s.notify(Event{Kind: EventDeleted, Post: &p})
	return nil
}

// Reload re-reads the slot, replacing the collection when its contents
// differ from what the store last wrote. Used by the slot watcher when an
// external process rewrites the data file. Unparseable contents are
// ignored with a warning; the in-memory collection stays authoritative.
func (s *Store) Reload() error {
	data, err := s.slot.Load()
	if err != nil {
		return err
	}

	s.mu.Lock()
	if bytes.Equal(data, s.lastSaved) {
		s.mu.Unlock()
		return nil
	}
	var posts []models.Post
	if jsonErr := json.Unmarshal(data, &posts); jsonErr != nil {
		s.mu.Unlock()
		s.logger.Warn("library: reload skipped, slot unreadable",
			slog.String("error", jsonErr.Error()))
		return nil
	}
	s.posts = posts
	s.lastSaved = data
	s.normalizeLocked()
	s.trackIDsLocked()
	s.rebuildIndexLocked()
	s.mu.Unlock()

	s.notify(Event{Kind: EventReloaded})
	return nil
}

// Subscribe registers a change callback and returns its unsubscribe func.
// Callbacks run synchronously after the mutation has been persisted.
func (s *Store) Subscribe(fn func(Event)) func() {
	s.subMu.Lock()
	id := s.nextSub
	s.nextSub++
	s.subs[id] = fn
	s.subMu.Unlock()

	return func() {
		s.subMu.Lock()
		delete(s.subs, id)
		s.subMu.Unlock()
	}
}

// SlotPath returns the filesystem path of the durable slot.
func (s *Store) SlotPath() string {
	return s.slot.Path()
}

func (s *Store) notify(ev Event) {
	s.subMu.Lock()
	fns := make([]func(Event), 0, len(s.subs))
	for _, fn := range s.subs {
		fns = append(fns, fn)
	}
	s.subMu.Unlock()

	for _, fn := range fns {
		fn(ev)
	}
}

// wait applies the configured save delay. Mutations are deliberately not
// cancelable once started, so ctx only names the caller.
func (s *Store) wait(_ context.Context) {
	if s.saveDelay > 0 {
		time.Sleep(s.saveDelay)
	}
}

func (s *Store) persistLocked() error {
	data, err := json.MarshalIndent(s.posts, "", "  ")
	if err != nil {
		return fmt.Errorf("library: encode collection: %w", err)
	}
	if err := s.slot.Save(data); err != nil {
		return fmt.Errorf("library: persist collection: %w", err)
	}
	s.lastSaved = data
	return nil
}

func (s *Store) indexOfLocked(id string) int {
	for i := range s.posts {
		if s.posts[i].ID == id {
			return i
		}
	}
	return -1
}

// normalizeLocked applies load-time compatibility rules: untyped posts are
// frameworks and tag mirrors category.
func (s *Store) normalizeLocked() {
	for i := range s.posts {
		s.posts[i].Normalize()
	}
}

// trackIDsLocked records the highest numeric id so new ids stay monotonic
// even when the clock has not advanced past a loaded timestamp id.
func (s *Store) trackIDsLocked() {
	for i := range s.posts {
		if n, err := strconv.ParseInt(s.posts[i].ID, 10, 64); err == nil && n > s.lastID {
			s.lastID = n
		}
	}
}

func (s *Store) nextIDLocked() string {
	id := time.Now().UnixMilli()
	if id <= s.lastID {
		id = s.lastID + 1
	}
	s.lastID = id
	return strconv.FormatInt(id, 10)
}

func (s *Store) rebuildIndexLocked() {
	if s.idx == nil {
		return
	}
	if err := s.idx.Rebuild(clonePosts(s.posts)); err != nil {
		s.logger.Warn("library: index rebuild failed", slog.String("error", err.Error()))
	}
}

func (s *Store) indexUpsert(p models.Post) {
	if s.idx == nil {
		return
	}
	if err := s.idx.UpsertPost(p); err != nil {
		s.logger.Warn("library: index upsert failed",
			slog.String("id", p.ID), slog.String("error", err.Error()))
	}
}

func clonePosts(posts []models.Post) []models.Post {
	out := make([]models.Post, len(posts))
	copy(out, posts)
	return out
}
