package library

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strconv"
	"testing"

	"github.com/socceo/socceo/internal/models"
	"github.com/socceo/socceo/internal/storage"
)

func testSlot(t *testing.T) (string, *storage.FSSlot) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "posts.json")
	slot, err := storage.NewFSSlot(path)
	if err != nil {
		t.Fatal(err)
	}
	return path, slot
}

func testStore(t *testing.T, opts ...Option) (*Store, string) {
	t.Helper()
	path, slot := testSlot(t)
	opts = append([]Option{WithSaveDelay(0)}, opts...)
	s, err := NewStore(slot, opts...)
	if err != nil {
		t.Fatal(err)
	}
	return s, path
}

func insightDraft(title string) models.Post {
	return models.Post{
		Title:       title,
		Description: "desc",
		Category:    "Estratégia",
		Tag:         "Estratégia",
		Date:        "01 Jan 2025",
		Type:        models.TypeInsight,
		Body:        "corpo",
	}
}

func TestSeedOnFirstRun(t *testing.T) {
	s, path := testStore(t)

	posts := s.List()
	if len(posts) != 6 {
		t.Fatalf("seeded posts = %d, want 6", len(posts))
	}
	if posts[0].ID != "1" || posts[5].ID != "6" {
		t.Errorf("seed ids = %s..%s, want 1..6", posts[0].ID, posts[5].ID)
	}

	// Seeding persists immediately so the defaults are editable.
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("seed was not persisted: %v", err)
	}
	var onDisk []models.Post
	if err := json.Unmarshal(data, &onDisk); err != nil {
		t.Fatalf("persisted seed unparseable: %v", err)
	}
	if len(onDisk) != 6 {
		t.Errorf("persisted posts = %d, want 6", len(onDisk))
	}
}

func TestLoadExistingCollection(t *testing.T) {
	path, slot := testSlot(t)
	one := []models.Post{insightDraft("Solo")}
	one[0].ID = "42"
	data, _ := json.Marshal(one)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}

	s, err := NewStore(slot, WithSaveDelay(0))
	if err != nil {
		t.Fatal(err)
	}
	posts := s.List()
	if len(posts) != 1 || posts[0].ID != "42" {
		t.Fatalf("loaded %d posts, first id %q", len(posts), posts[0].ID)
	}
}

func TestCorruptSlotFallsBackToSeed(t *testing.T) {
	path, slot := testSlot(t)
	if err := os.WriteFile(path, []byte("{not json"), 0o644); err != nil {
		t.Fatal(err)
	}

	s, err := NewStore(slot, WithSaveDelay(0))
	if err != nil {
		t.Fatalf("corrupt slot should not fail construction: %v", err)
	}
	if got := len(s.List()); got != 6 {
		t.Errorf("posts = %d, want seed count 6", got)
	}

	// The corrupt file is left untouched until the next mutation.
	data, _ := os.ReadFile(path)
	if string(data) != "{not json" {
		t.Errorf("corrupt slot was overwritten at load time")
	}
}

func TestNormalizeOnLoad(t *testing.T) {
	path, slot := testSlot(t)
	// Untyped post with a stale tag, as older data files have.
	raw := `[{"id":"9","title":"Velho","description":"d","category":"Execução","tag":"velho","date":"x","framework":{"whatIs":"w","practicalCase":{"title":"","advantages":null,"limitations":null,"conclusion":"","realWorldCase":""}}}]`
	if err := os.WriteFile(path, []byte(raw), 0o644); err != nil {
		t.Fatal(err)
	}

	s, err := NewStore(slot, WithSaveDelay(0))
	if err != nil {
		t.Fatal(err)
	}
	p, ok := s.GetByID("9")
	if !ok {
		t.Fatal("post not loaded")
	}
	if p.Type != models.TypeFramework {
		t.Errorf("type = %q, want framework for untyped post", p.Type)
	}
	if p.Tag != "Execução" {
		t.Errorf("tag = %q, want mirrored category", p.Tag)
	}
}

func TestAddAssignsMonotonicIDs(t *testing.T) {
	s, _ := testStore(t)

	a, err := s.Add(context.Background(), insightDraft("Primeiro"))
	if err != nil {
		t.Fatal(err)
	}
	b, err := s.Add(context.Background(), insightDraft("Segundo"))
	if err != nil {
		t.Fatal(err)
	}
	an, _ := strconv.ParseInt(a.ID, 10, 64)
	bn, _ := strconv.ParseInt(b.ID, 10, 64)
	if an <= 6 || bn <= an {
		t.Errorf("ids not increasing past seed: %s then %s", a.ID, b.ID)
	}

	// New posts go to the front.
	if got := s.List()[0].ID; got != b.ID {
		t.Errorf("front of list = %s, want newest %s", got, b.ID)
	}
}

func TestGetBySlug(t *testing.T) {
	s, _ := testStore(t)

	p, ok := s.GetBySlug("e-hoje")
	if !ok {
		t.Fatal("seed post not found by slug")
	}
	if p.ID != "2" {
		t.Errorf("id = %s, want 2", p.ID)
	}

	if _, ok := s.GetBySlug("nao-existe"); ok {
		t.Error("unknown slug should not resolve")
	}
}

func TestGetBySlugFirstMatchOnCollision(t *testing.T) {
	s, _ := testStore(t)

	dup, err := s.Add(context.Background(), insightDraft("É Hoje!"))
	if err != nil {
		t.Fatal(err)
	}

	// The newer duplicate sits at the front, so the scan finds it first.
	p, ok := s.GetBySlug("e-hoje")
	if !ok {
		t.Fatal("slug not found")
	}
	if p.ID != dup.ID {
		t.Errorf("resolved id = %s, want first match %s", p.ID, dup.ID)
	}
}

func TestUpdate(t *testing.T) {
	s, _ := testStore(t)

	title := "Novo Título"
	p, err := s.Update(context.Background(), "1", Patch{Title: &title})
	if err != nil {
		t.Fatal(err)
	}
	if p.Title != title {
		t.Errorf("title = %q", p.Title)
	}
	if p.Description == "" {
		t.Error("untouched fields must survive the patch")
	}

	if _, err := s.Update(context.Background(), "no-such-id", Patch{Title: &title}); err == nil {
		t.Error("updating an unknown id should fail")
	}
}

func TestRemove(t *testing.T) {
	s, _ := testStore(t)

	if err := s.Remove(context.Background(), "3"); err != nil {
		t.Fatal(err)
	}
	if _, ok := s.GetByID("3"); ok {
		t.Error("post still present after remove")
	}
	if got := len(s.List()); got != 5 {
		t.Errorf("posts = %d, want 5", got)
	}

	// Absent id is a silent no-op.
	if err := s.Remove(context.Background(), "3"); err != nil {
		t.Errorf("second remove = %v, want nil", err)
	}
}

func TestMutationsPersistWholeCollection(t *testing.T) {
	s, path := testStore(t)

	if _, err := s.Add(context.Background(), insightDraft("Persistido")); err != nil {
		t.Fatal(err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	var onDisk []models.Post
	if err := json.Unmarshal(data, &onDisk); err != nil {
		t.Fatal(err)
	}
	if len(onDisk) != 7 {
		t.Errorf("persisted posts = %d, want 7", len(onDisk))
	}
	if onDisk[0].Title != "Persistido" {
		t.Errorf("front of persisted collection = %q", onDisk[0].Title)
	}
}

func TestReloadSkipsOwnWrites(t *testing.T) {
	s, _ := testStore(t)

	var events []string
	unsub := s.Subscribe(func(ev Event) { events = append(events, ev.Kind) })
	defer unsub()

	// Reloading the bytes the store itself wrote is a no-op.
	if err := s.Reload(); err != nil {
		t.Fatal(err)
	}
	if len(events) != 0 {
		t.Fatalf("self-reload emitted events: %v", events)
	}
}

func TestReloadPicksUpExternalEdit(t *testing.T) {
	s, path := testStore(t)

	external := []models.Post{insightDraft("Editado Fora")}
	external[0].ID = "100"
	data, _ := json.MarshalIndent(external, "", "  ")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}

	reloaded := false
	unsub := s.Subscribe(func(ev Event) {
		if ev.Kind == EventReloaded {
			reloaded = true
		}
	})
	defer unsub()

	if err := s.Reload(); err != nil {
		t.Fatal(err)
	}
	if !reloaded {
		t.Error("external edit did not emit a reload event")
	}
	posts := s.List()
	if len(posts) != 1 || posts[0].ID != "100" {
		t.Fatalf("collection after reload: %d posts, first %q", len(posts), posts[0].ID)
	}
}

func TestReloadIgnoresCorruptSlot(t *testing.T) {
	s, path := testStore(t)

	if err := os.WriteFile(path, []byte("garbage"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := s.Reload(); err != nil {
		t.Fatalf("corrupt reload should be swallowed: %v", err)
	}
	if got := len(s.List()); got != 6 {
		t.Errorf("collection replaced by corrupt reload: %d posts", got)
	}
}

func TestSubscribeAndUnsubscribe(t *testing.T) {
	s, _ := testStore(t)

	var kinds []string
	unsub := s.Subscribe(func(ev Event) { kinds = append(kinds, ev.Kind) })

	p, err := s.Add(context.Background(), insightDraft("Notificado"))
	if err != nil {
		t.Fatal(err)
	}
	title := "Renomeado"
	if _, err := s.Update(context.Background(), p.ID, Patch{Title: &title}); err != nil {
		t.Fatal(err)
	}
	if err := s.Remove(context.Background(), p.ID); err != nil {
		t.Fatal(err)
	}

	want := []string{EventCreated, EventUpdated, EventDeleted}
	if len(kinds) != len(want) {
		t.Fatalf("events = %v, want %v", kinds, want)
	}
	for i := range want {
		if kinds[i] != want[i] {
			t.Fatalf("events = %v, want %v", kinds, want)
		}
	}

	unsub()
	if _, err := s.Add(context.Background(), insightDraft("Silencioso")); err != nil {
		t.Fatal(err)
	}
	if len(kinds) != 3 {
		t.Error("subscriber still notified after unsubscribe")
	}
}

func TestCustomSeed(t *testing.T) {
	_, slot := testSlot(t)
	seed := []models.Post{insightDraft("Único")}
	seed[0].ID = "7"
	s, err := NewStore(slot, WithSaveDelay(0), WithSeed(seed))
	if err != nil {
		t.Fatal(err)
	}
	posts := s.List()
	if len(posts) != 1 || posts[0].ID != "7" {
		t.Fatalf("custom seed not used: %v", posts)
	}
}
