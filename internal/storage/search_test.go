package storage

import (
	"context"
	"testing"

	"github.com/harshavardhan-9/news-blog/internal/models"
)

func TestSearchArticles(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	insertTestArticle(t, store, func(a *models.Article) {
		a.URL = "https://example.com/fts1"
		a.Title = "Breakthrough in renewable energy storage"
	})
	insertTestArticle(t, store, func(a *models.Article) {
		a.URL = "https://example.com/fts2"
		a.Title = "Championship final this weekend"
		a.Description = "Sports coverage"
	})

	got, err := store.SearchArticles(ctx, "renewable", 10)
	if err != nil {
		t.Fatalf("SearchArticles() error: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("got %d results, want 1", len(got))
	}
	if got[0].URL != "https://example.com/fts1" {
		t.Errorf("got %q, want the energy article", got[0].URL)
	}
}

func TestSearchArticles_MatchesAuthor(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	insertTestArticle(t, store, func(a *models.Article) {
		a.URL = "https://example.com/fts3"
		a.Author = "Rodriguez"
	})

	got, err := store.SearchArticles(ctx, "Rodriguez", 10)
	if err != nil {
		t.Fatalf("SearchArticles() error: %v", err)
	}
	if len(got) != 1 {
		t.Errorf("got %d results, want 1", len(got))
	}
}

func TestSearchArticles_EmptyQuery(t *testing.T) {
	store := newTestStore(t)

	got, err := store.SearchArticles(context.Background(), "   ", 10)
	if err != nil {
		t.Fatalf("SearchArticles() error: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("got %d results, want 0 for empty query", len(got))
	}
}

func TestSearchArticles_UpdatedRowsStayInSync(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	insertTestArticle(t, store, func(a *models.Article) {
		a.URL = "https://example.com/fts4"
		a.Title = "Original quantum computing headline"
	})
	// Re-upsert with a different title; the FTS index must follow.
	insertTestArticle(t, store, func(a *models.Article) {
		a.URL = "https://example.com/fts4"
		a.Title = "Revised archaeology headline"
	})

	got, err := store.SearchArticles(ctx, "quantum", 10)
	if err != nil {
		t.Fatalf("SearchArticles(quantum) error: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("stale index: got %d results for old title, want 0", len(got))
	}

	got, err = store.SearchArticles(ctx, "archaeology", 10)
	if err != nil {
		t.Fatalf("SearchArticles(archaeology) error: %v", err)
	}
	if len(got) != 1 {
		t.Errorf("got %d results for new title, want 1", len(got))
	}
}
