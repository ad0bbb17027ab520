package storage

import (
	"context"
	"fmt"
	"strings"

	"github.com/harshavardhan-9/news-blog/internal/models"
)

// SearchArticles performs a full-text search over the article cache using
// FTS5, matching title, description, and author. Results are ordered by
// relevance and limited to the given count.
func (s *Store) SearchArticles(ctx context.Context, query string, limit int) ([]models.Article, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return []models.Article{}, nil
	}
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT a.id, a.title, a.description, a.content, a.author, a.url, a.image_url,
				a.source_name, a.category, a.type, a.published_at, a.fetched_at, a.created_at
		 FROM articles_fts fts
		 JOIN articles a ON a.id = fts.rowid
		 WHERE articles_fts MATCH ?
		 ORDER BY rank
		 LIMIT ?`,
		query, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("searching articles: %w", err)
	}
	defer rows.Close()

	return scanArticles(rows)
}
