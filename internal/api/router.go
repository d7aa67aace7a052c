package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/socceo/socceo/internal/index"
	"github.com/socceo/socceo/internal/library"
)

// NewRouter creates a chi router with all API routes mounted. Library
// reads are public; the admin editing surface sits behind Bearer token
// auth when authEnabled is true. sseHandler, if non-nil, is mounted at
// GET /events. attachmentsDir is where post images live.
func NewRouter(store *library.Store, idx index.PostIndex, authEnabled bool, token string, sseHandler http.Handler, attachmentsDir string) chi.Router {
	h := NewHandler(store, idx)
	ah := NewAttachmentHandler(attachmentsDir)

	r := chi.NewRouter()

	// Library reads.
	r.Get("/posts", h.ListPosts)
	r.Get("/posts/{slug}", h.GetPost)
	r.Get("/search", h.Search)
	r.Get("/resolve", h.ResolvePath)

	// Change feed.
	if sseHandler != nil {
		r.Get("/events", sseHandler.ServeHTTP)
	}

	// Admin editing surface.
	r.Route("/admin", func(r chi.Router) {
		r.Use(AuthMiddleware(authEnabled, token))
		r.Post("/posts", h.CreatePost)
		r.Put("/posts/{id}", h.UpdatePost)
		r.Delete("/posts/{id}", h.DeletePost)
		r.Post("/attachments", ah.Upload)
	})

	return r
}
