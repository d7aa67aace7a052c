// Package mcpserver provides an MCP (Model Context Protocol) server that
// exposes the Socceo content library for LLM integration via stdio
// transport.
package mcpserver

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/socceo/socceo/internal/apperr"
	"github.com/socceo/socceo/internal/index"
	"github.com/socceo/socceo/internal/library"
	"github.com/socceo/socceo/internal/models"
)

// Server wraps the MCP server with content library tools.
type Server struct {
	mcp   *server.MCPServer
	store *library.Store
	idx   index.PostIndex
}

// New creates a new MCP server with all library tools registered.
func New(store *library.Store, idx index.PostIndex) *Server {
	s := &Server{store: store, idx: idx}

	s.mcp = server.NewMCPServer(
		"Socceo",
		"1.0.0",
		server.WithToolCapabilities(false),
		server.WithResourceCapabilities(false, false),
	)

	s.mcp.AddTool(mcp.NewTool("list_posts",
		mcp.WithDescription("List library posts, optionally filtered by category and kind."),
		mcp.WithString("category", mcp.Description("Optional category filter")),
		mcp.WithString("type", mcp.Description("Optional kind filter: insight or framework")),
	), s.listPosts)

	s.mcp.AddTool(mcp.NewTool("read_post",
		mcp.WithDescription("Read a single post by its URL slug."),
		mcp.WithString("slug", mcp.Required(), mcp.Description("Post slug (e.g. analise-swot)")),
	), s.readPost)

	s.mcp.AddTool(mcp.NewTool("search_posts",
		mcp.WithDescription("Full-text search through post titles, descriptions, and bodies."),
		mcp.WithString("query", mcp.Required(), mcp.Description("Search query string")),
	), s.searchPosts)

	s.mcp.AddTool(mcp.NewTool("create_post",
		mcp.WithDescription("Create a new library post. Content MUST follow the content format "+
			"contract (category must belong to the kind's list; insights carry 'content', "+
			"frameworks carry 'what_is'). Read the contract first via the "+
			"get_content_contract tool or the socceo://content-format resource."),
		mcp.WithString("title", mcp.Required(), mcp.Description("Post title")),
		mcp.WithString("description", mcp.Required(), mcp.Description("Short summary")),
		mcp.WithString("category", mcp.Required(), mcp.Description("Category from the kind's list")),
		mcp.WithString("type", mcp.Required(), mcp.Description("insight or framework")),
		mcp.WithString("date", mcp.Description("Display date, e.g. '12 Mar 2025'")),
		mcp.WithString("read_time", mcp.Description("Display read time, e.g. '8 min'")),
		mcp.WithString("content", mcp.Description("Body text (insights)")),
		mcp.WithString("what_is", mcp.Description("What-is text (frameworks)")),
	), s.createPost)

	s.mcp.AddTool(mcp.NewTool("update_post",
		mcp.WithDescription("Update fields of an existing post by id. Omitted fields are left untouched."),
		mcp.WithString("id", mcp.Required(), mcp.Description("Post id")),
		mcp.WithString("title", mcp.Description("New title")),
		mcp.WithString("description", mcp.Description("New summary")),
		mcp.WithString("category", mcp.Description("New category (tag follows automatically)")),
		mcp.WithString("date", mcp.Description("New display date")),
		mcp.WithString("content", mcp.Description("New body text (insights)")),
	), s.updatePost)

	s.mcp.AddTool(mcp.NewTool("delete_post",
		mcp.WithDescription("Delete a post by id. Deleting an unknown id is a no-op."),
		mcp.WithString("id", mcp.Required(), mcp.Description("Post id")),
	), s.deletePost)

	s.mcp.AddTool(mcp.NewTool("get_content_contract",
		mcp.WithDescription("Returns the content format contract. Call this before creating "+
			"or updating posts to ensure correct structure."),
	), s.getContentContract)

	// Resource: content format contract.
	s.mcp.AddResource(
		mcp.NewResource("socceo://content-format", "Content Format Contract",
			mcp.WithResourceDescription("Post format rules all library content must follow."),
			mcp.WithMIMEType("text/markdown"),
		),
		s.readContentFormatResource,
	)

	return s
}

// ServeStdio starts the MCP server on stdin/stdout.
func (s *Server) ServeStdio() error {
	return server.ServeStdio(s.mcp)
}

// MCPServer returns the underlying server for testing.
func (s *Server) MCPServer() *server.MCPServer {
	return s.mcp
}

func (s *Server) listPosts(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	category := req.GetString("category", "")
	postType := req.GetString("type", "")
	if postType != "" && !models.PostType(postType).Valid() {
		return mcp.NewToolResultError("type must be insight or framework"), nil
	}

	entries, _, err := s.idx.ListPosts(0, 0, category, postType, "")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	out, _ := json.MarshalIndent(entries, "", "  ")
	return mcp.NewToolResultText(string(out)), nil
}

func (s *Server) readPost(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	sl, err := req.RequireString("slug")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	p, ok := s.store.GetBySlug(sl)
	if !ok {
		return mcp.NewToolResultError(fmt.Sprintf("not found: %s", sl)), nil
	}
	out, _ := json.MarshalIndent(p, "", "  ")
	return mcp.NewToolResultText(string(out)), nil
}

func (s *Server) searchPosts(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	query, err := req.RequireString("query")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	results, err := s.idx.Search(query, 20)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	out, _ := json.MarshalIndent(results, "", "  ")
	return mcp.NewToolResultText(string(out)), nil
}

func (s *Server) createPost(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	title, err := req.RequireString("title")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	description, err := req.RequireString("description")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	category, err := req.RequireString("category")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	typeStr, err := req.RequireString("type")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	draft := models.Post{
		Title:       title,
		Description: description,
		Category:    category,
		Tag:         category,
		Date:        req.GetString("date", ""),
		ReadTime:    req.GetString("read_time", ""),
		Type:        models.PostType(typeStr),
	}
	switch draft.Type {
	case models.TypeInsight:
		draft.Body = req.GetString("content", "")
	case models.TypeFramework:
		draft.Framework = &models.FrameworkContent{WhatIs: req.GetString("what_is", "")}
	}

	if err := draft.Validate(); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	p, err := s.store.Add(ctx, draft)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(fmt.Sprintf("created: %s (id %s)", p.Title, p.ID)), nil
}

func (s *Server) updatePost(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	id, err := req.RequireString("id")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	var patch library.Patch
	if v := req.GetString("title", ""); v != "" {
		patch.Title = &v
	}
	if v := req.GetString("description", ""); v != "" {
		patch.Description = &v
	}
	if v := req.GetString("category", ""); v != "" {
		patch.Category = &v
		patch.Tag = &v
	}
	if v := req.GetString("date", ""); v != "" {
		patch.Date = &v
	}
	if v := req.GetString("content", ""); v != "" {
		patch.Body = &v
	}

	existing, ok := s.store.GetByID(id)
	if !ok {
		return mcp.NewToolResultError(fmt.Sprintf("not found: %s", id)), nil
	}
	merged := *existing
	patch.Apply(&merged)
	if err := merged.Validate(); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	p, err := s.store.Update(ctx, id, patch)
	if err != nil {
		if errors.Is(err, apperr.ErrNotFound) {
			return mcp.NewToolResultError(fmt.Sprintf("not found: %s", id)), nil
		}
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(fmt.Sprintf("updated: %s (id %s)", p.Title, p.ID)), nil
}

func (s *Server) deletePost(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	id, err := req.RequireString("id")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	if err := s.store.Remove(ctx, id); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(fmt.Sprintf("deleted: %s", id)), nil
}

func (s *Server) getContentContract(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return mcp.NewToolResultText(ContentFormatContract), nil
}

func (s *Server) readContentFormatResource(ctx context.Context, req mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      "socceo://content-format",
			MIMEType: "text/markdown",
			Text:     ContentFormatContract,
		},
	}, nil
}
