package api

import (
	"github.com/socceo/socceo/internal/library"
	"github.com/socceo/socceo/internal/models"
	"github.com/socceo/socceo/internal/nav"
	"github.com/socceo/socceo/internal/slug"
)

// CreatePostRequest is the request body for creating a post. Tag is not
// accepted: the admin surface always writes tag = category.
type CreatePostRequest struct {
	Title       string                   `json:"title"`
	Description string                   `json:"description"`
	Category    string                   `json:"category"`
	Date        string                   `json:"date"`
	ReadTime    string                   `json:"readTime"`
	Image       string                   `json:"image"`
	Type        models.PostType          `json:"type"`
	Content     string                   `json:"content"`
	Framework   *models.FrameworkContent `json:"framework"`
}

// ToPost builds the post to be stored, mirroring tag from category.
func (r CreatePostRequest) ToPost() models.Post {
	return models.Post{
		Title:       r.Title,
		Description: r.Description,
		Category:    r.Category,
		Tag:         r.Category,
		Date:        r.Date,
		ReadTime:    r.ReadTime,
		Image:       r.Image,
		Type:        r.Type,
		Body:        r.Content,
		Framework:   r.Framework,
	}
}

// UpdatePostRequest is the request body for a partial update. Nil fields
// are left untouched.
type UpdatePostRequest struct {
	Title       *string                  `json:"title"`
	Description *string                  `json:"description"`
	Category    *string                  `json:"category"`
	Date        *string                  `json:"date"`
	ReadTime    *string                  `json:"readTime"`
	Image       *string                  `json:"image"`
	Type        *models.PostType         `json:"type"`
	Content     *string                  `json:"content"`
	Framework   *models.FrameworkContent `json:"framework"`
}

// ToPatch converts the request to a store patch. When category changes,
// tag changes with it.
func (r UpdatePostRequest) ToPatch() library.Patch {
	return library.Patch{
		Title:       r.Title,
		Description: r.Description,
		Category:    r.Category,
		Tag:         r.Category,
		Date:        r.Date,
		ReadTime:    r.ReadTime,
		Image:       r.Image,
		Type:        r.Type,
		Body:        r.Content,
		Framework:   r.Framework,
	}
}

// PostDTO is a post enriched with its derived slug and canonical path.
type PostDTO struct {
	models.Post
	Slug string `json:"slug"`
	Path string `json:"path"`
}

func toDTO(p models.Post) PostDTO {
	return PostDTO{
		Post: p,
		Slug: slug.Make(p.Title),
		Path: nav.PostPath(&p),
	}
}

// PostListItem is a lightweight item in a list response.
type PostListItem struct {
	ID          string `json:"id"`
	Slug        string `json:"slug"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Category    string `json:"category"`
	Tag         string `json:"tag"`
	Type        string `json:"type"`
	Date        string `json:"date"`
	Image       string `json:"image,omitempty"`
	Path        string `json:"path"`
}

// PostListResponse wraps paginated post listings.
type PostListResponse struct {
	Posts []PostListItem `json:"posts"`
	Total int            `json:"total"`
}

// SearchResult is a single search hit in the API response.
type SearchResult struct {
	ID      string `json:"id"`
	Slug    string `json:"slug"`
	Title   string `json:"title"`
	Snippet string `json:"snippet"`
}

// ResolveResponse is the server-side rendition of the deep-link mapping:
// the view and post a given address path resolves to.
type ResolveResponse struct {
	View          string   `json:"view"`
	Post          *PostDTO `json:"post,omitempty"`
	CanonicalPath string   `json:"canonicalPath"`
	NeedsRewrite  bool     `json:"needsRewrite"`
}
