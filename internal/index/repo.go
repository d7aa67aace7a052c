package index

import (
	"fmt"
	"strings"

	"github.com/socceo/socceo/internal/models"
	"github.com/socceo/socceo/internal/slug"
)

// Entry is a lightweight row in the posts table.
type Entry struct {
	ID          string
	Slug        string
	Title       string
	Type        string
	Category    string
	Description string
	Date        string
	Image       string
}

// SearchResult represents one search hit.
type SearchResult struct {
	ID      string
	Slug    string
	Title   string
	Snippet string
}

// searchText flattens a post's content shape into indexable text.
func searchText(p models.Post) string {
	if p.Type == models.TypeInsight {
		return p.Body
	}
	if p.Framework == nil {
		return ""
	}
	parts := []string{
		p.Framework.WhatIs,
		p.Framework.PracticalCase.Title,
		strings.Join(p.Framework.PracticalCase.Advantages, " "),
		strings.Join(p.Framework.PracticalCase.Limitations, " "),
		p.Framework.PracticalCase.Conclusion,
		p.Framework.PracticalCase.RealWorldCase,
	}
	return strings.Join(parts, "\n")
}

// UpsertPost inserts or replaces a post row and its FTS entry within a
// transaction.
func (db *DB) UpsertPost(p models.Post) error {
	tx, err := db.conn.Begin()
	if err != nil {
		return fmt.Errorf("index: begin tx: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck // best-effort on failure path

	sl := slug.Make(p.Title)
	body := searchText(p)

	_, err = tx.Exec(`
		INSERT INTO posts (id, slug, title, type, category, description, body, date, image)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			slug        = excluded.slug,
			title       = excluded.title,
			type        = excluded.type,
			category    = excluded.category,
			description = excluded.description,
			body        = excluded.body,
			date        = excluded.date,
			image       = excluded.image
	`, p.ID, sl, p.Title, string(p.Type), p.Category, p.Description, body, p.Date, p.Image)
	if err != nil {
		return fmt.Errorf("index: upsert post: %w", err)
	}

	// FTS upsert (no-op when the FTS5 tag is absent).
	if err := ftsUpsert(tx, p.ID, sl, p.Title, p.Description, body); err != nil {
		return err
	}

	return tx.Commit()
}

// DeletePost removes a post row and its FTS entry.
func (db *DB) DeletePost(id string) error {
	tx, err := db.conn.Begin()
	if err != nil {
		return fmt.Errorf("index: begin tx: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck

	ftsDelete(tx, id)
	_, _ = tx.Exec(`DELETE FROM posts WHERE id = ?`, id)

	return tx.Commit()
}

// Rebuild replaces the whole index with the given collection.
func (db *DB) Rebuild(posts []models.Post) error {
	tx, err := db.conn.Begin()
	if err != nil {
		return fmt.Errorf("index: begin tx: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck

	if _, err := tx.Exec(`DELETE FROM posts`); err != nil {
		return fmt.Errorf("index: clear posts: %w", err)
	}
	ftsClear(tx)

	for _, p := range posts {
		sl := slug.Make(p.Title)
		body := searchText(p)
		_, err := tx.Exec(`
			INSERT INTO posts (id, slug, title, type, category, description, body, date, image)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
		`, p.ID, sl, p.Title, string(p.Type), p.Category, p.Description, body, p.Date, p.Image)
		if err != nil {
			return fmt.Errorf("index: insert post: %w", err)
		}
		if err := ftsUpsert(tx, p.ID, sl, p.Title, p.Description, body); err != nil {
			return err
		}
	}

	return tx.Commit()
}

// ListPosts returns rows with optional category/type filters, paginated.
// Sort accepts "title", "oldest", or defaults to newest first (ids are
// monotonic, so creation order is id order).
func (db *DB) ListPosts(limit, offset int, category, postType, sort string) ([]Entry, int, error) {
	if limit <= 0 {
		limit = 100
	}
	if offset < 0 {
		offset = 0
	}

	var where []string
	var args []any
	if category != "" {
		where = append(where, "category = ?")
		args = append(args, category)
	}
	if postType != "" {
		where = append(where, "type = ?")
		args = append(args, postType)
	}
	cond := ""
	if len(where) > 0 {
		cond = " WHERE " + strings.Join(where, " AND ")
	}

	var order string
	switch sort {
	case "title":
		order = "title COLLATE NOCASE ASC"
	case "oldest":
		order = "CAST(id AS INTEGER) ASC"
	default:
		order = "CAST(id AS INTEGER) DESC"
	}

	var total int
	if err := db.conn.QueryRow(`SELECT COUNT(*) FROM posts`+cond, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("index: count posts: %w", err)
	}

	query := `SELECT id, slug, title, type, category, description, date, image FROM posts` +
		cond + ` ORDER BY ` + order + ` LIMIT ? OFFSET ?`
	rows, err := db.conn.Query(query, append(args, limit, offset)...)
	if err != nil {
		return nil, 0, fmt.Errorf("index: list posts: %w", err)
	}
	defer rows.Close()

	var out []Entry
	for rows.Next() {
		var e Entry
		if err := rows.Scan(&e.ID, &e.Slug, &e.Title, &e.Type, &e.Category, &e.Description, &e.Date, &e.Image); err != nil {
			return nil, 0, err
		}
		out = append(out, e)
	}
	return out, total, rows.Err()
}
