package handlers

import (
	"context"
	"testing"
	"time"

	"github.com/harshavardhan-9/news-blog/internal/models"
	"github.com/harshavardhan-9/news-blog/internal/payout"
	"github.com/harshavardhan-9/news-blog/internal/storage"
)

// newTestStore creates an in-memory SQLite store with migrations applied and
// default accounts seeded. It registers a cleanup function to close the
// database when the test completes.
func newTestStore(t *testing.T) *storage.Store {
	t.Helper()

	db, err := storage.OpenDatabase(":memory:")
	if err != nil {
		t.Fatalf("opening test db: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	if err := storage.RunMigrations(db); err != nil {
		t.Fatalf("running migrations: %v", err)
	}

	store := storage.NewStore(db)
	if err := store.SeedDefaults(context.Background()); err != nil {
		t.Fatalf("seeding defaults: %v", err)
	}

	return store
}

// newTestRates creates a rate store backed by the given store with the
// standard 10/15 default.
func newTestRates(store *storage.Store) *payout.RateStore {
	return payout.NewRateStore(store, models.RateEntry{NewsRate: 10, BlogRate: 15})
}

// seedArticle inserts one article and returns its ID.
func seedArticle(t *testing.T, store *storage.Store, author string, typ models.ArticleType, url string) int64 {
	t.Helper()

	published := time.Date(2024, 6, 10, 12, 0, 0, 0, time.UTC)
	id, err := store.UpsertArticle(context.Background(), &models.Article{
		Title:       "Article by " + author,
		Author:      author,
		URL:         url,
		SourceName:  "test",
		Category:    "technology",
		Type:        typ,
		PublishedAt: &published,
		FetchedAt:   time.Now(),
	})
	if err != nil {
		t.Fatalf("seeding article: %v", err)
	}
	return id
}
