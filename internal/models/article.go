package models

import (
	"fmt"
	"time"
)

// ArticleType distinguishes the two kinds of content the dashboard tracks.
// Payout rates are configured per type, so the enum is closed: anything else
// must be rejected at ingestion before it reaches the aggregator.
type ArticleType string

const (
	TypeNews ArticleType = "news"
	TypeBlog ArticleType = "blog"
)

// Valid reports whether t is one of the two known article types.
func (t ArticleType) Valid() bool {
	return t == TypeNews || t == TypeBlog
}

// Article is a single content item pulled from a source and cached locally.
// Articles are immutable once loaded; a refresh replaces them by URL.
type Article struct {
	ID          int64       `json:"id"`
	Title       string      `json:"title"`
	Description string      `json:"description,omitempty"`
	Content     string      `json:"content,omitempty"`
	Author      string      `json:"author"`
	URL         string      `json:"url"`
	ImageURL    string      `json:"image_url,omitempty"`
	SourceName  string      `json:"source_name"`
	Category    string      `json:"category,omitempty"`
	Type        ArticleType `json:"type"`
	PublishedAt *time.Time  `json:"published_at,omitempty"`
	FetchedAt   time.Time   `json:"fetched_at"`
	CreatedAt   time.Time   `json:"created_at"`
}

// Validate checks the fields the rest of the pipeline depends on. It is the
// ingestion boundary: the aggregator assumes every article that reaches it
// has a non-empty author and a valid type.
func (a *Article) Validate() error {
	if a.Title == "" {
		return fmt.Errorf("article %q: missing title", a.URL)
	}
	if a.URL == "" {
		return fmt.Errorf("article %q: missing url", a.Title)
	}
	if a.Author == "" {
		return fmt.Errorf("article %q: missing author", a.URL)
	}
	if !a.Type.Valid() {
		return fmt.Errorf("article %q: unknown type %q", a.URL, a.Type)
	}
	return nil
}
