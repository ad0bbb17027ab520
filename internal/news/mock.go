package news

import (
	"context"
	"embed"
	"fmt"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/harshavardhan-9/news-blog/internal/models"
)

//go:embed fixtures.yaml
var fixturesFS embed.FS

// fixtureArticle is the YAML shape of one demo article.
type fixtureArticle struct {
	Title       string     `yaml:"title"`
	Description string     `yaml:"description"`
	Author      string     `yaml:"author"`
	URL         string     `yaml:"url"`
	ImageURL    string     `yaml:"image_url"`
	SourceName  string     `yaml:"source_name"`
	Category    string     `yaml:"category"`
	Type        string     `yaml:"type"`
	PublishedAt *time.Time `yaml:"published_at"`
}

// MockSource serves the embedded demo fixtures. It exists so the dashboard
// works out of the box without a NewsAPI key or reachable feeds.
type MockSource struct {
	articles []models.Article
}

// NewMockSource loads the embedded fixture articles.
func NewMockSource() (*MockSource, error) {
	data, err := fixturesFS.ReadFile("fixtures.yaml")
	if err != nil {
		return nil, fmt.Errorf("reading fixtures: %w", err)
	}

	var doc struct {
		Articles []fixtureArticle `yaml:"articles"`
	}
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parsing fixtures: %w", err)
	}

	now := time.Now()
	articles := make([]models.Article, 0, len(doc.Articles))
	for _, f := range doc.Articles {
		articles = append(articles, models.Article{
			Title:       f.Title,
			Description: f.Description,
			Author:      f.Author,
			URL:         f.URL,
			ImageURL:    f.ImageURL,
			SourceName:  f.SourceName,
			Category:    f.Category,
			Type:        models.ArticleType(f.Type),
			PublishedAt: f.PublishedAt,
			FetchedAt:   now,
		})
	}

	if err := validateAll("mock", articles); err != nil {
		return nil, err
	}
	return &MockSource{articles: articles}, nil
}

// Name implements Source.
func (m *MockSource) Name() string { return "mock" }

// Fetch implements Source. The fixtures are filtered in memory by the query
// fields the mock can express.
func (m *MockSource) Fetch(ctx context.Context, q Query) ([]models.Article, error) {
	var out []models.Article
	for _, a := range m.articles {
		if q.Category != "" && a.Category != q.Category {
			continue
		}
		if q.Text != "" && !containsFold(a.Title, q.Text) && !containsFold(a.Description, q.Text) {
			continue
		}
		if q.From != nil && (a.PublishedAt == nil || a.PublishedAt.Before(*q.From)) {
			continue
		}
		if q.To != nil && (a.PublishedAt == nil || a.PublishedAt.After(*q.To)) {
			continue
		}
		out = append(out, a)
		if q.MaxResults > 0 && len(out) >= q.MaxResults {
			break
		}
	}
	return out, nil
}

func containsFold(haystack, needle string) bool {
	return strings.Contains(strings.ToLower(haystack), strings.ToLower(needle))
}
