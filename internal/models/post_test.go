package models

import "testing"

func validInsight() Post {
	return Post{
		ID:          "1",
		Title:       "Um Insight",
		Description: "desc",
		Category:    "Estratégia",
		Tag:         "Estratégia",
		Type:        TypeInsight,
		Body:        "corpo do artigo",
	}
}

func validFramework() Post {
	return Post{
		ID:          "4",
		Title:       "Um Framework",
		Description: "desc",
		Category:    "Diagnóstico",
		Tag:         "Diagnóstico",
		Type:        TypeFramework,
		Framework:   &FrameworkContent{WhatIs: "o que é"},
	}
}

func TestValidateAccepts(t *testing.T) {
	if err := validInsight().Validate(); err != nil {
		t.Errorf("insight: %v", err)
	}
	if err := validFramework().Validate(); err != nil {
		t.Errorf("framework: %v", err)
	}
}

func TestValidateRejects(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Post)
		base   func() Post
	}{
		{"missing title", func(p *Post) { p.Title = "" }, validInsight},
		{"missing description", func(p *Post) { p.Description = "" }, validInsight},
		{"missing category", func(p *Post) { p.Category = ""; p.Tag = "" }, validInsight},
		{"unknown type", func(p *Post) { p.Type = "video" }, validInsight},
		{"framework category on insight", func(p *Post) { p.Category = "Diagnóstico"; p.Tag = "Diagnóstico" }, validInsight},
		{"insight category on framework", func(p *Post) { p.Category = "Mercado"; p.Tag = "Mercado" }, validFramework},
		{"tag diverges from category", func(p *Post) { p.Tag = "Outro" }, validInsight},
		{"insight without body", func(p *Post) { p.Body = "" }, validInsight},
		{"insight with framework content", func(p *Post) { p.Framework = &FrameworkContent{} }, validInsight},
		{"framework without structured body", func(p *Post) { p.Framework = nil }, validFramework},
		{"framework with plain body", func(p *Post) { p.Body = "texto" }, validFramework},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			p := c.base()
			c.mutate(&p)
			if err := p.Validate(); err == nil {
				t.Error("expected validation error, got nil")
			}
		})
	}
}

func TestNormalize(t *testing.T) {
	p := Post{Category: "Execução", Tag: "stale"}
	p.Normalize()
	if p.Type != TypeFramework {
		t.Errorf("type = %q, want framework", p.Type)
	}
	if p.Tag != "Execução" {
		t.Errorf("tag = %q, want category mirrored", p.Tag)
	}

	p = Post{Type: TypeInsight, Category: "Mercado"}
	p.Normalize()
	if p.Type != TypeInsight {
		t.Errorf("insight type overwritten to %q", p.Type)
	}
}

func TestValidCategory(t *testing.T) {
	if !ValidCategory(TypeInsight, "Inovação") {
		t.Error("Inovação should be a legal insight category")
	}
	if ValidCategory(TypeInsight, "Planejamento") {
		t.Error("Planejamento is a framework category, not insight")
	}
	if !ValidCategory(TypeFramework, "Crescimento") {
		t.Error("Crescimento should be a legal framework category")
	}
	if ValidCategory(TypeFramework, "Gestão") {
		t.Error("Gestão is an insight category, not framework")
	}
}
