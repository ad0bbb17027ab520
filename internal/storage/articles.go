package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/harshavardhan-9/news-blog/internal/models"
)

// ArticleFilter selects a subset of the cached articles. Zero-valued fields
// are ignored. Filters combine with AND.
type ArticleFilter struct {
	Query    string             // substring match on title/description
	Category string             // exact match
	Type     models.ArticleType // "news" or "blog"
	Author   string             // exact match, no normalization
	From     *time.Time         // published_at lower bound, inclusive
	To       *time.Time         // published_at upper bound, inclusive
	SortBy   string             // "published_at" (default), "author", or "title"
	Limit    int                // 0 means no limit
}

const articleColumns = `id, title, description, content, author, url, image_url,
	source_name, category, type, published_at, fetched_at, created_at`

// UpsertArticle inserts an article or updates it if a row with the same URL
// already exists. On conflict the content, description, and fetched_at fields
// are refreshed. The row ID is returned.
func (s *Store) UpsertArticle(ctx context.Context, a *models.Article) (int64, error) {
	if err := a.Validate(); err != nil {
		return 0, fmt.Errorf("validating article: %w", err)
	}

	var publishedAt *string
	if a.PublishedAt != nil {
		v := a.PublishedAt.UTC().Format("2006-01-02 15:04:05")
		publishedAt = &v
	}
	fetchedAt := a.FetchedAt.UTC().Format("2006-01-02 15:04:05")

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO articles
			(title, description, content, author, url, image_url, source_name, category, type, published_at, fetched_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		 ON CONFLICT(url) DO UPDATE SET
			title       = excluded.title,
			description = excluded.description,
			content     = excluded.content,
			fetched_at  = excluded.fetched_at`,
		a.Title, nullableString(a.Description), nullableString(a.Content),
		a.Author, a.URL, nullableString(a.ImageURL), a.SourceName,
		nullableString(a.Category), string(a.Type), publishedAt, fetchedAt,
	)
	if err != nil {
		return 0, fmt.Errorf("upserting article: %w", mapUnavailable(err))
	}

	// last_insert_rowid() is unreliable on the UPDATE path, so query by URL.
	var id int64
	if err := s.db.QueryRowContext(ctx, `SELECT id FROM articles WHERE url = ?`, a.URL).Scan(&id); err != nil {
		return 0, fmt.Errorf("getting upserted article id: %w", err)
	}
	return id, nil
}

// ListArticles returns cached articles matching the filter. The WHERE clause
// is assembled dynamically from the non-zero filter fields.
func (s *Store) ListArticles(ctx context.Context, filter ArticleFilter) ([]models.Article, error) {
	b := sq.Select(articleColumns).From("articles")

	if filter.Query != "" {
		like := "%" + filter.Query + "%"
		b = b.Where(sq.Or{
			sq.Like{"title": like},
			sq.Like{"description": like},
		})
	}
	if filter.Category != "" {
		b = b.Where(sq.Eq{"category": filter.Category})
	}
	if filter.Type != "" {
		b = b.Where(sq.Eq{"type": string(filter.Type)})
	}
	if filter.Author != "" {
		b = b.Where(sq.Eq{"author": filter.Author})
	}
	if filter.From != nil {
		b = b.Where(sq.GtOrEq{"published_at": filter.From.UTC().Format("2006-01-02 15:04:05")})
	}
	if filter.To != nil {
		b = b.Where(sq.LtOrEq{"published_at": filter.To.UTC().Format("2006-01-02 15:04:05")})
	}

	switch filter.SortBy {
	case "author":
		b = b.OrderBy("author ASC", "published_at DESC")
	case "title":
		b = b.OrderBy("title ASC")
	default:
		b = b.OrderBy("published_at DESC")
	}

	if filter.Limit > 0 {
		b = b.Limit(uint64(filter.Limit))
	}

	query, args, err := b.ToSql()
	if err != nil {
		return nil, fmt.Errorf("building article query: %w", err)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing articles: %w", mapUnavailable(err))
	}
	defer rows.Close()

	return scanArticles(rows)
}

// GetArticleByID returns the cached article with the given ID.
// Returns nil, ErrNotFound if no matching row exists.
func (s *Store) GetArticleByID(ctx context.Context, id int64) (*models.Article, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT `+articleColumns+` FROM articles WHERE id = ?`, id)

	a, err := scanArticle(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("getting article by id: %w", err)
	}
	return a, nil
}

// SetArticleContent stores extracted full content for an article.
func (s *Store) SetArticleContent(ctx context.Context, id int64, content string) error {
	res, err := s.db.ExecContext(ctx,
		`UPDATE articles SET content = ? WHERE id = ?`, nullableString(content), id)
	if err != nil {
		return fmt.Errorf("updating article content: %w", mapUnavailable(err))
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("checking update result: %w", err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

// CountArticles returns the number of cached articles.
func (s *Store) CountArticles(ctx context.Context) (int, error) {
	var n int
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM articles`).Scan(&n); err != nil {
		return 0, fmt.Errorf("counting articles: %w", err)
	}
	return n, nil
}

// rowScanner is implemented by both *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanArticle(row rowScanner) (*models.Article, error) {
	var (
		a           models.Article
		description sql.NullString
		content     sql.NullString
		imageURL    sql.NullString
		category    sql.NullString
		articleType string
		publishedAt sql.NullString
		fetchedAt   string
		createdAt   string
	)

	if err := row.Scan(
		&a.ID, &a.Title, &description, &content, &a.Author, &a.URL,
		&imageURL, &a.SourceName, &category, &articleType,
		&publishedAt, &fetchedAt, &createdAt,
	); err != nil {
		return nil, err
	}

	a.Description = description.String
	a.Content = content.String
	a.ImageURL = imageURL.String
	a.Category = category.String
	a.Type = models.ArticleType(articleType)
	a.PublishedAt = parseTimePtr(nullStringToPtr(publishedAt))
	a.FetchedAt = parseTime(fetchedAt)
	a.CreatedAt = parseTime(createdAt)

	return &a, nil
}

func scanArticles(rows *sql.Rows) ([]models.Article, error) {
	var articles []models.Article
	for rows.Next() {
		a, err := scanArticle(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning article row: %w", err)
		}
		articles = append(articles, *a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating article rows: %w", err)
	}

	if articles == nil {
		articles = []models.Article{}
	}
	return articles, nil
}
