// Package news supplies articles to the dashboard. A Source is an opaque
// provider (mock fixtures, the NewsAPI service, or RSS feeds); the Refresher
// pulls from every configured source into the local cache.
package news

import (
	"context"
	"fmt"
	"time"

	"github.com/harshavardhan-9/news-blog/internal/models"
)

// Query narrows what a source should return. Sources ignore fields they
// cannot express; filtering against the cache is exact either way.
type Query struct {
	Text       string     // free-text search
	Category   string     // e.g. "technology", "business"
	SortBy     string     // "publishedAt", "relevancy", or "popularity"
	From       *time.Time // publication lower bound
	To         *time.Time // publication upper bound
	MaxResults int        // 0 means source default
}

// Source is a read-only article provider.
type Source interface {
	// Name identifies the source in logs and failure reports.
	Name() string
	// Fetch returns articles matching the query. Implementations must
	// return only validated articles: the type enum is enforced here, at
	// the ingestion boundary, so the aggregator never sees a bad value.
	Fetch(ctx context.Context, q Query) ([]models.Article, error)
}

// validateAll checks every fetched article and fails on the first malformed
// one. Sources call this before returning so bad provider data surfaces as
// a validation error instead of silently miscounting downstream.
func validateAll(source string, articles []models.Article) error {
	for i := range articles {
		if err := articles[i].Validate(); err != nil {
			return fmt.Errorf("source %q returned invalid article: %w", source, err)
		}
	}
	return nil
}
