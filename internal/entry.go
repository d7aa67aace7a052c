// Package internal provides the main application initialization and runtime logic.
package internal

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"golang.org/x/sync/errgroup"

	"github.com/socceo/socceo/internal/api"
	"github.com/socceo/socceo/internal/index"
	"github.com/socceo/socceo/internal/library"
	"github.com/socceo/socceo/internal/mcpserver"
	"github.com/socceo/socceo/internal/slug"
	"github.com/socceo/socceo/internal/sse"
	"github.com/socceo/socceo/internal/storage"
)

// Run starts the application with the given options.
func Run(ctx context.Context, opts ...Option) error {
	app := &application{}

	for _, opt := range opts {
		opt(app)
	}

	if app.config == nil {
		return fmt.Errorf("config is required")
	}

	cfg := app.config

	// Initialize structured JSON logger. In MCP mode stdout carries the
	// protocol, so logs go to stderr.
	logOut := os.Stdout
	if app.mcp {
		logOut = os.Stderr
	}
	logger := slog.New(slog.NewJSONHandler(logOut, &slog.HandlerOptions{
		Level: cfg.App.LogLevel,
	}))
	slog.SetDefault(logger)

	logger.Info("Configuration loaded",
		slog.String("http_address", cfg.App.HTTP.Address()),
		slog.String("data_file", cfg.Library.DataFile),
		slog.String("sqlite_path", cfg.SQLite.Path),
		slog.String("log_level", cfg.App.LogLevel.String()))

	// Durable slot for the library contents.
	slot, err := storage.NewFSSlot(cfg.Library.DataFile)
	if err != nil {
		return fmt.Errorf("init storage: %w", err)
	}

	// SQLite read index.
	db, err := index.Open(cfg.SQLite.Path)
	if err != nil {
		return fmt.Errorf("init index: %w", err)
	}
	defer db.Close()

	// Content store. Loads the persisted library or seeds the catalog.
	store, err := library.NewStore(slot,
		library.WithIndex(db),
		library.WithLogger(logger),
		library.WithSaveDelay(time.Duration(cfg.Library.SaveDelayMS)*time.Millisecond),
	)
	if err != nil {
		return fmt.Errorf("init store: %w", err)
	}

	if app.mcp {
		logger.Info("Starting MCP server on stdio")
		return mcpserver.New(store, db).ServeStdio()
	}

	// SSE broker, fed by store change events.
	broker := sse.NewBroker(2 * time.Second)
	defer broker.Close()

	unsubscribe := store.Subscribe(func(ev library.Event) {
		id, sl := "", ""
		if ev.Post != nil {
			id = ev.Post.ID
			sl = slug.Make(ev.Post.Title)
		}
		broker.PublishPostEvent(ev.Kind, id, sl)
	})
	defer unsubscribe()

	// Build API router.
	apiRouter := api.NewRouter(store, db, cfg.Auth.AuthEnabled(), cfg.Auth.Token, broker, cfg.Library.AttachmentsDir)

	// Build chi router.
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	// Health check endpoints (unauthenticated).
	r.Get("/health/live", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	})
	r.Get("/health/ready", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	})

	// Mount API routes under /api.
	r.Mount("/api", apiRouter)

	// Post images.
	attachments := api.NewAttachmentHandler(cfg.Library.AttachmentsDir)
	r.Get("/attachments/{filename}", attachments.ServeFile)

	httpServer := &http.Server{
		Addr:    cfg.App.HTTP.Address(),
		Handler: r,
	}

	logger.Info("Server starting...", slog.String("http_address", cfg.App.HTTP.Address()))

	g, gCtx := errgroup.WithContext(ctx)

	// Watch the data file so external edits show up without a restart.
	g.Go(func() error {
		if err := library.Watch(gCtx, store, logger); err != nil {
			logger.Warn("data file watcher stopped", slog.String("error", err.Error()))
		}
		return nil
	})

	// Start HTTP server.
	g.Go(func() error {
		logger.Info("Starting HTTP server", slog.String("address", cfg.App.HTTP.Address()))
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("HTTP server error: %w", err)
		}
		return nil
	})

	// Handle shutdown signals.
	g.Go(func() error {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

		select {
		case sig := <-quit:
			logger.Info("Received shutdown signal", slog.String("signal", sig.String()))
		case <-gCtx.Done():
			logger.Info("Context cancelled, initiating shutdown")
		}

		logger.Info("Shutting down server...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			logger.Error("HTTP server shutdown error", slog.String("error", err.Error()))
		}

		return nil
	})

	if err := g.Wait(); err != nil {
		logger.Error("Application error", slog.String("error", err.Error()))
		return err
	}

	logger.Info("Server stopped successfully")
	return nil
}
