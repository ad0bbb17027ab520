package news

import (
	"context"
	"fmt"
	"html"
	"net/http"
	"regexp"
	"time"

	"github.com/mmcdole/gofeed"

	"github.com/harshavardhan-9/news-blog/internal/models"
)

const rssTimeout = 30 * time.Second

var htmlTagPattern = regexp.MustCompile("<[^>]*>")

// Feed is one configured RSS/Atom feed.
type Feed struct {
	Name     string
	URL      string
	Category string
}

// RSSSource fetches blog-type articles from configured RSS/Atom feeds.
type RSSSource struct {
	feeds  []Feed
	client *http.Client
}

// NewRSSSource creates an RSS source over the given feeds.
func NewRSSSource(feeds []Feed) *RSSSource {
	return &RSSSource{
		feeds:  feeds,
		client: &http.Client{Timeout: rssTimeout},
	}
}

// Name implements Source.
func (s *RSSSource) Name() string { return "rss" }

// Fetch implements Source. Feeds are parsed sequentially; a failing feed
// fails the whole fetch so the Refresher can report it as a failed source
// (each feed list is small and per-source failure isolation happens one
// level up).
func (s *RSSSource) Fetch(ctx context.Context, q Query) ([]models.Article, error) {
	now := time.Now()
	var articles []models.Article

	for _, feed := range s.feeds {
		fp := gofeed.NewParser()
		fp.Client = s.client

		parsed, err := fp.ParseURLWithContext(feed.URL, ctx)
		if err != nil {
			return nil, fmt.Errorf("%w: parsing feed %q: %v", ErrExternalService, feed.URL, err)
		}

		for _, item := range parsed.Items {
			if item.Title == "" || item.Link == "" {
				continue
			}
			if q.From != nil && item.PublishedParsed != nil && item.PublishedParsed.Before(*q.From) {
				continue
			}
			if q.To != nil && item.PublishedParsed != nil && item.PublishedParsed.After(*q.To) {
				continue
			}

			author := itemAuthor(item)
			if author == "" {
				author = feed.Name
			}

			var publishedAt *time.Time
			if item.PublishedParsed != nil {
				t := *item.PublishedParsed
				publishedAt = &t
			}

			articles = append(articles, models.Article{
				Title:       item.Title,
				Description: stripHTML(item.Description),
				Author:      author,
				URL:         item.Link,
				SourceName:  feed.Name,
				Category:    feed.Category,
				Type:        models.TypeBlog,
				PublishedAt: publishedAt,
				FetchedAt:   now,
			})

			if q.MaxResults > 0 && len(articles) >= q.MaxResults {
				break
			}
		}
	}

	if err := validateAll(s.Name(), articles); err != nil {
		return nil, err
	}
	return articles, nil
}

// itemAuthor pulls the first author name from a feed item.
func itemAuthor(item *gofeed.Item) string {
	if len(item.Authors) > 0 && item.Authors[0] != nil {
		return item.Authors[0].Name
	}
	if item.Author != nil {
		return item.Author.Name
	}
	return ""
}

// stripHTML removes HTML tags from s and unescapes HTML entities.
func stripHTML(s string) string {
	clean := htmlTagPattern.ReplaceAllString(s, "")
	return html.UnescapeString(clean)
}
