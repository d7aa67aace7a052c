package api

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/socceo/socceo/internal/apperr"
	"github.com/socceo/socceo/internal/index"
	"github.com/socceo/socceo/internal/library"
	"github.com/socceo/socceo/internal/models"
	"github.com/socceo/socceo/internal/nav"
)

// Handler holds API route handlers.
type Handler struct {
	store *library.Store
	idx   index.PostIndex
}

// NewHandler creates a new Handler.
func NewHandler(store *library.Store, idx index.PostIndex) *Handler {
	return &Handler{store: store, idx: idx}
}

// ListPosts handles GET /api/posts with optional pagination and
// category/type filtering (served from the read index).
func (h *Handler) ListPosts(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	limit, _ := strconv.Atoi(q.Get("limit"))
	offset, _ := strconv.Atoi(q.Get("offset"))
	category := q.Get("category")
	postType := q.Get("type")
	sort := q.Get("sort")

	if postType != "" && !models.PostType(postType).Valid() {
		writeJSON(w, http.StatusBadRequest, errorBody("type must be insight or framework"))
		return
	}

	entries, total, err := h.idx.ListPosts(limit, offset, category, postType, sort)
	if err != nil {
		slog.Error("list posts failed", slog.String("error", err.Error()))
		writeJSON(w, http.StatusInternalServerError, errorBody("internal error"))
		return
	}
	items := make([]PostListItem, len(entries))
	for i, e := range entries {
		items[i] = PostListItem{
			ID:          e.ID,
			Slug:        e.Slug,
			Title:       e.Title,
			Description: e.Description,
			Category:    e.Category,
			Tag:         e.Category,
			Type:        e.Type,
			Date:        e.Date,
			Image:       e.Image,
			Path:        nav.BasePath + "/" + e.Type + "/" + e.Slug,
		}
	}
	writeJSON(w, http.StatusOK, PostListResponse{Posts: items, Total: total})
}

// GetPost handles GET /api/posts/{slug}. Resolution is the store's linear
// first-match scan.
func (h *Handler) GetPost(w http.ResponseWriter, r *http.Request) {
	sl := chi.URLParam(r, "slug")
	if sl == "" {
		writeJSON(w, http.StatusBadRequest, errorBody("slug is required"))
		return
	}
	p, ok := h.store.GetBySlug(sl)
	if !ok {
		writeJSON(w, http.StatusNotFound, errorBody("not found"))
		return
	}
	writeJSON(w, http.StatusOK, toDTO(*p))
}

// Search handles GET /api/search.
func (h *Handler) Search(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query().Get("q")
	if q == "" {
		writeJSON(w, http.StatusBadRequest, errorBody("query parameter 'q' is required"))
		return
	}
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	results, err := h.idx.Search(q, limit)
	if err != nil {
		slog.Error("search failed", slog.String("query", q), slog.String("error", err.Error()))
		writeJSON(w, http.StatusInternalServerError, errorBody("internal error"))
		return
	}
	out := make([]SearchResult, len(results))
	for i, r := range results {
		out[i] = SearchResult{ID: r.ID, Slug: r.Slug, Title: r.Title, Snippet: r.Snippet}
	}
	writeJSON(w, http.StatusOK, map[string]any{"results": out})
}

// ResolvePath handles GET /api/resolve?path=/blog/... It runs the
// address-path mapping server-side so the thin client never re-implements it.
func (h *Handler) ResolvePath(w http.ResponseWriter, r *http.Request) {
	path := r.URL.Query().Get("path")
	if path == "" {
		writeJSON(w, http.StatusBadRequest, errorBody("query parameter 'path' is required"))
		return
	}
	st := nav.Resolve(path, h.store.GetBySlug)
	resp := ResolveResponse{
		View:          string(st.View),
		CanonicalPath: st.CanonicalPath,
		NeedsRewrite:  st.NeedsRewrite,
	}
	if st.Post != nil {
		dto := toDTO(*st.Post)
		resp.Post = &dto
	}
	writeJSON(w, http.StatusOK, resp)
}

// CreatePost handles POST /api/admin/posts.
func (h *Handler) CreatePost(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, 10<<20)
	var req CreatePostRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorBody("invalid JSON body"))
		return
	}

	draft := req.ToPost()
	if err := draft.Validate(); err != nil {
		writeJSON(w, http.StatusBadRequest, errorBody(err.Error()))
		return
	}

	p, err := h.store.Add(r.Context(), draft)
	if err != nil {
		slog.Error("create post failed", slog.String("title", req.Title), slog.String("error", err.Error()))
		writeJSON(w, http.StatusInternalServerError, errorBody("internal error"))
		return
	}
	writeJSON(w, http.StatusCreated, toDTO(*p))
}

// UpdatePost handles PUT /api/admin/posts/{id}. The merged result is
// validated before the store is touched, so invalid category/type/tag
// combinations never persist.
func (h *Handler) UpdatePost(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, 10<<20)
	id := chi.URLParam(r, "id")
	if id == "" {
		writeJSON(w, http.StatusBadRequest, errorBody("id is required"))
		return
	}

	var req UpdatePostRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorBody("invalid JSON body"))
		return
	}

	existing, ok := h.store.GetByID(id)
	if !ok {
		writeJSON(w, http.StatusNotFound, errorBody("not found"))
		return
	}

	patch := req.ToPatch()
	merged := *existing
	patch.Apply(&merged)
	if err := merged.Validate(); err != nil {
		writeJSON(w, http.StatusBadRequest, errorBody(err.Error()))
		return
	}

	p, err := h.store.Update(r.Context(), id, patch)
	if err != nil {
		if errors.Is(err, apperr.ErrNotFound) {
			writeJSON(w, http.StatusNotFound, errorBody("not found"))
			return
		}
		slog.Error("update post failed", slog.String("id", id), slog.String("error", err.Error()))
		writeJSON(w, http.StatusInternalServerError, errorBody("internal error"))
		return
	}
	writeJSON(w, http.StatusOK, toDTO(*p))
}

// DeletePost handles DELETE /api/admin/posts/{id}. Removing an absent id
// is a no-op, so the response is 204 either way.
func (h *Handler) DeletePost(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		writeJSON(w, http.StatusBadRequest, errorBody("id is required"))
		return
	}
	if err := h.store.Remove(r.Context(), id); err != nil {
		slog.Error("delete post failed", slog.String("id", id), slog.String("error", err.Error()))
		writeJSON(w, http.StatusInternalServerError, errorBody("internal error"))
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
