// Package models defines the domain types for the Socceo content library.
package models

import (
	"fmt"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/socceo/socceo/internal/apperr"
)

// PostType discriminates the two kinds of library content.
type PostType string

const (
	// TypeInsight is a free-form article.
	TypeInsight PostType = "insight"
	// TypeFramework is a structured methodology write-up.
	TypeFramework PostType = "framework"
)

// Valid reports whether t is one of the known post types.
func (t PostType) Valid() bool {
	return t == TypeInsight || t == TypeFramework
}

// Category whitelists are disjoint per post type.
var (
	InsightCategories   = []string{"Estratégia", "Inovação", "Gestão", "Mercado"}
	FrameworkCategories = []string{"Diagnóstico", "Planejamento", "Execução", "Crescimento"}
)

// CategoriesFor returns the legal category set for the given type.
func CategoriesFor(t PostType) []string {
	if t == TypeInsight {
		return InsightCategories
	}
	return FrameworkCategories
}

// ValidCategory reports whether category is legal for the given type.
func ValidCategory(t PostType, category string) bool {
	for _, c := range CategoriesFor(t) {
		if c == category {
			return true
		}
	}
	return false
}

// Post is the sole entity of the content library.
//
// Exactly one content shape applies: Body for insights, Framework for
// frameworks. Tag must always equal Category; the admin surface writes it
// that way on every save.
type Post struct {
	ID          string            `json:"id"`
	Title       string            `json:"title"`
	Description string            `json:"description"`
	Category    string            `json:"category"`
	Tag         string            `json:"tag"`
	Date        string            `json:"date"`
	ReadTime    string            `json:"readTime,omitempty"`
	Image       string            `json:"image,omitempty"`
	Type        PostType          `json:"type"`
	Body        string            `json:"content,omitempty"`
	Framework   *FrameworkContent `json:"framework,omitempty"`
}

// FrameworkContent is the structured body of a framework post.
type FrameworkContent struct {
	WhatIs        string             `json:"whatIs"`
	PracticalCase PracticalCase      `json:"practicalCase"`
	Related       []RelatedFramework `json:"related,omitempty"`
}

// PracticalCase walks through applying a framework.
type PracticalCase struct {
	Title         string   `json:"title"`
	Advantages    []string `json:"advantages"`
	Limitations   []string `json:"limitations"`
	Conclusion    string   `json:"conclusion"`
	RealWorldCase string   `json:"realWorldCase"`
}

// RelatedFramework is a lightweight pointer to another framework.
type RelatedFramework struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

// Normalize applies the backward-compatibility rules used when loading
// persisted data: posts without a type are frameworks, and tag mirrors
// category.
func (p *Post) Normalize() {
	if !p.Type.Valid() {
		p.Type = TypeFramework
	}
	p.Tag = p.Category
}

// Validate enforces the admin-surface rules: required display fields, a
// category legal for the post's type, tag mirroring category, and a
// content shape matching the type.
func (p Post) Validate() error {
	if err := validation.ValidateStruct(&p,
		validation.Field(&p.Title, validation.Required),
		validation.Field(&p.Description, validation.Required),
		validation.Field(&p.Category, validation.Required),
		validation.Field(&p.Type, validation.Required, validation.In(TypeInsight, TypeFramework)),
	); err != nil {
		return err
	}
	if !ValidCategory(p.Type, p.Category) {
		return fmt.Errorf("%w: category %q is not valid for type %q", apperr.ErrInvalidPost, p.Category, p.Type)
	}
	if p.Tag != p.Category {
		return fmt.Errorf("%w: tag %q must equal category %q", apperr.ErrInvalidPost, p.Tag, p.Category)
	}
	switch p.Type {
	case TypeInsight:
		if p.Body == "" {
			return fmt.Errorf("%w: insight posts require content", apperr.ErrInvalidPost)
		}
		if p.Framework != nil {
			return fmt.Errorf("%w: insight posts must not carry framework content", apperr.ErrInvalidPost)
		}
	case TypeFramework:
		if p.Framework == nil {
			return fmt.Errorf("%w: framework posts require framework content", apperr.ErrInvalidPost)
		}
		if p.Body != "" {
			return fmt.Errorf("%w: framework posts must not carry a plain content body", apperr.ErrInvalidPost)
		}
	}
	return nil
}
