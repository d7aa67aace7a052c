package library

import (
	"context"
	"encoding/json"
	"log/slog"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/socceo/socceo/internal/models"
)

// eventually polls fn every tick until it returns true or timeout elapses.
func eventually(t *testing.T, timeout, tick time.Duration, fn func() bool, msg string) {
	t.Helper()
	deadline := time.Now().Add(timeout)
	for time.Now().Before(deadline) {
		if fn() {
			return
		}
		time.Sleep(tick)
	}
	t.Error(msg)
}

func TestWatcher_ExternalEditReloads(t *testing.T) {
	s, path := testStore(t)
	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go Watch(ctx, s, logger)
	time.Sleep(100 * time.Millisecond)

	external := []models.Post{insightDraft("Editado Por Fora")}
	external[0].ID = "200"
	data, _ := json.MarshalIndent(external, "", "  ")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}

	eventually(t, 5*time.Second, 50*time.Millisecond, func() bool {
		_, ok := s.GetByID("200")
		return ok
	}, "external edit not picked up by watcher")
}

func TestWatcher_DebouncesBursts(t *testing.T) {
	s, path := testStore(t)
	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))

	var mu sync.Mutex
	reloads := 0
	unsub := s.Subscribe(func(ev Event) {
		if ev.Kind == EventReloaded {
			mu.Lock()
			reloads++
			mu.Unlock()
		}
	})
	defer unsub()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go Watch(ctx, s, logger)
	time.Sleep(100 * time.Millisecond)

	// A burst of rewrites should coalesce into one reload.
	for i := 0; i < 5; i++ {
		external := []models.Post{insightDraft("Rajada")}
		external[0].ID = "300"
		data, _ := json.MarshalIndent(external, "", "  ")
		if err := os.WriteFile(path, data, 0o644); err != nil {
			t.Fatal(err)
		}
		time.Sleep(10 * time.Millisecond)
	}

	eventually(t, 5*time.Second, 50*time.Millisecond, func() bool {
		mu.Lock()
		defer mu.Unlock()
		return reloads >= 1
	}, "burst of writes triggered no reload")

	// Give the debounce window time to fire again if it were going to.
	time.Sleep(500 * time.Millisecond)
	mu.Lock()
	defer mu.Unlock()
	if reloads > 2 {
		t.Errorf("reloads = %d, want writes coalesced", reloads)
	}
}
