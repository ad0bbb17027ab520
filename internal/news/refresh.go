package news

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/harshavardhan-9/news-blog/internal/models"
	"github.com/harshavardhan-9/news-blog/internal/storage"
)

const maxConcurrentSources = 4

// FailedSource records a source that could not be fetched during a refresh.
type FailedSource struct {
	Source string `json:"source"`
	Error  string `json:"error"`
}

// RefreshResult summarizes one refresh run.
type RefreshResult struct {
	Fetched int            `json:"fetched"`
	Stored  int            `json:"stored"`
	Failed  []FailedSource `json:"failed,omitempty"`
}

// Refresher pulls articles from every configured source into the cache.
type Refresher struct {
	sources []Source
	store   *storage.Store
}

// NewRefresher creates a Refresher over the given sources and cache store.
func NewRefresher(sources []Source, store *storage.Store) *Refresher {
	return &Refresher{sources: sources, store: store}
}

// Refresh fetches all sources concurrently and upserts the results into the
// article cache. Individual source failures are collected in
// RefreshResult.Failed rather than failing the whole run.
func (r *Refresher) Refresh(ctx context.Context, q Query) (*RefreshResult, error) {
	var (
		result RefreshResult
		mu     sync.Mutex
	)

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(maxConcurrentSources)

	for _, src := range r.sources {
		src := src
		g.Go(func() error {
			articles, err := src.Fetch(ctx, q)
			if err != nil {
				slog.Warn("failed to fetch source", "source", src.Name(), "error", err)

				mu.Lock()
				result.Failed = append(result.Failed, FailedSource{
					Source: src.Name(),
					Error:  err.Error(),
				})
				mu.Unlock()

				return nil // skip failures, don't fail the batch
			}

			stored := r.storeAll(ctx, src.Name(), articles)

			mu.Lock()
			result.Fetched += len(articles)
			result.Stored += stored
			mu.Unlock()

			slog.Info("fetched source", "source", src.Name(), "items", len(articles))
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("refreshing sources: %w", err)
	}

	return &result, nil
}

// storeAll upserts fetched articles into the cache and returns how many were
// written. A failing upsert is logged and skipped so one bad row does not
// discard the batch.
func (r *Refresher) storeAll(ctx context.Context, source string, articles []models.Article) int {
	stored := 0
	for i := range articles {
		if _, err := r.store.UpsertArticle(ctx, &articles[i]); err != nil {
			slog.Warn("failed to cache article",
				"source", source,
				"url", articles[i].URL,
				"error", err,
			)
			continue
		}
		stored++
	}
	return stored
}
