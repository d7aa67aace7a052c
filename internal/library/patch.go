package library

import "github.com/socceo/socceo/internal/models"

// Patch carries the fields of a partial update. Nil fields are left
// untouched; set fields are merged verbatim into the post.
type Patch struct {
	Title       *string
	Description *string
	Category    *string
	Tag         *string
	Date        *string
	ReadTime    *string
	Image       *string
	Type        *models.PostType
	Body        *string
	Framework   *models.FrameworkContent
}

// Apply merges the set fields into post.
func (p Patch) Apply(post *models.Post) {
	if p.Title != nil {
		post.Title = *p.Title
	}
	if p.Description != nil {
		post.Description = *p.Description
	}
	if p.Category != nil {
		post.Category = *p.Category
	}
	if p.Tag != nil {
		post.Tag = *p.Tag
	}
	if p.Date != nil {
		post.Date = *p.Date
	}
	if p.ReadTime != nil {
		post.ReadTime = *p.ReadTime
	}
	if p.Image != nil {
		post.Image = *p.Image
	}
	if p.Type != nil {
		post.Type = *p.Type
	}
	if p.Body != nil {
		post.Body = *p.Body
	}
	if p.Framework != nil {
		post.Framework = p.Framework
	}
}
