package news

import (
	"context"
	"testing"
	"time"

	"github.com/harshavardhan-9/news-blog/internal/models"
)

func TestMockSource_LoadsFixtures(t *testing.T) {
	src, err := NewMockSource()
	if err != nil {
		t.Fatalf("NewMockSource() error: %v", err)
	}

	articles, err := src.Fetch(context.Background(), Query{})
	if err != nil {
		t.Fatalf("Fetch() error: %v", err)
	}
	if len(articles) == 0 {
		t.Fatal("got 0 fixture articles")
	}

	for _, a := range articles {
		if err := a.Validate(); err != nil {
			t.Errorf("fixture article invalid: %v", err)
		}
	}
}

func TestMockSource_HasBothTypes(t *testing.T) {
	src, err := NewMockSource()
	if err != nil {
		t.Fatalf("NewMockSource() error: %v", err)
	}

	articles, err := src.Fetch(context.Background(), Query{})
	if err != nil {
		t.Fatalf("Fetch() error: %v", err)
	}

	var news, blog int
	for _, a := range articles {
		switch a.Type {
		case models.TypeNews:
			news++
		case models.TypeBlog:
			blog++
		}
	}
	if news == 0 || blog == 0 {
		t.Errorf("fixtures must cover both types: news = %d, blog = %d", news, blog)
	}
}

func TestMockSource_FilterByCategory(t *testing.T) {
	src, err := NewMockSource()
	if err != nil {
		t.Fatalf("NewMockSource() error: %v", err)
	}

	articles, err := src.Fetch(context.Background(), Query{Category: "business"})
	if err != nil {
		t.Fatalf("Fetch() error: %v", err)
	}
	for _, a := range articles {
		if a.Category != "business" {
			t.Errorf("got category %q, want business", a.Category)
		}
	}
	if len(articles) == 0 {
		t.Error("expected at least one business article")
	}
}

func TestMockSource_FilterByText(t *testing.T) {
	src, err := NewMockSource()
	if err != nil {
		t.Fatalf("NewMockSource() error: %v", err)
	}

	articles, err := src.Fetch(context.Background(), Query{Text: "climate"})
	if err != nil {
		t.Fatalf("Fetch() error: %v", err)
	}
	if len(articles) != 1 {
		t.Fatalf("got %d articles for 'climate', want 1", len(articles))
	}
	if articles[0].Author != "Sarah Johnson" {
		t.Errorf("Author = %q, want Sarah Johnson", articles[0].Author)
	}
}

func TestMockSource_FilterByDateRange(t *testing.T) {
	src, err := NewMockSource()
	if err != nil {
		t.Fatalf("NewMockSource() error: %v", err)
	}

	from := time.Date(2024, 6, 13, 0, 0, 0, 0, time.UTC)
	articles, err := src.Fetch(context.Background(), Query{From: &from})
	if err != nil {
		t.Fatalf("Fetch() error: %v", err)
	}
	for _, a := range articles {
		if a.PublishedAt.Before(from) {
			t.Errorf("article %q published %v, before the from bound", a.URL, a.PublishedAt)
		}
	}
	if len(articles) != 1 {
		t.Errorf("got %d articles, want 1", len(articles))
	}
}

func TestMockSource_MaxResults(t *testing.T) {
	src, err := NewMockSource()
	if err != nil {
		t.Fatalf("NewMockSource() error: %v", err)
	}

	articles, err := src.Fetch(context.Background(), Query{MaxResults: 2})
	if err != nil {
		t.Fatalf("Fetch() error: %v", err)
	}
	if len(articles) != 2 {
		t.Errorf("got %d articles, want 2", len(articles))
	}
}
