package news

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/harshavardhan-9/news-blog/internal/models"
)

const (
	newsAPIBaseURL = "https://newsapi.org/v2"
	newsAPITimeout = 15 * time.Second
)

// ErrExternalService is returned when a third-party provider cannot be
// reached or rejects the request. Callers degrade (serve the cache) rather
// than crash.
var ErrExternalService = errors.New("external service error")

// NewsAPISource fetches articles from the NewsAPI service. Everything it
// returns is typed "news"; blog-type content comes from the RSS source.
type NewsAPISource struct {
	apiKey  string
	baseURL string
	client  *http.Client
}

// NewNewsAPISource creates a NewsAPI-backed source with the given API key.
func NewNewsAPISource(apiKey string) *NewsAPISource {
	return &NewsAPISource{
		apiKey:  apiKey,
		baseURL: newsAPIBaseURL,
		client:  &http.Client{Timeout: newsAPITimeout},
	}
}

// Name implements Source.
func (s *NewsAPISource) Name() string { return "newsapi" }

// newsAPIResponse mirrors the NewsAPI JSON envelope.
type newsAPIResponse struct {
	Status       string `json:"status"`
	Code         string `json:"code"`
	Message      string `json:"message"`
	TotalResults int    `json:"totalResults"`
	Articles     []struct {
		Source struct {
			Name string `json:"name"`
		} `json:"source"`
		Author      string     `json:"author"`
		Title       string     `json:"title"`
		Description string     `json:"description"`
		URL         string     `json:"url"`
		URLToImage  string     `json:"urlToImage"`
		PublishedAt *time.Time `json:"publishedAt"`
		Content     string     `json:"content"`
	} `json:"articles"`
}

// Fetch implements Source. Category queries go to /top-headlines (the only
// endpoint that understands categories); everything else uses /everything.
func (s *NewsAPISource) Fetch(ctx context.Context, q Query) ([]models.Article, error) {
	endpoint, params := s.buildRequest(q)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint+"?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("creating newsapi request: %w", err)
	}
	req.Header.Set("X-Api-Key", s.apiKey)

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: newsapi: %v", ErrExternalService, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusTooManyRequests {
		return nil, fmt.Errorf("%w: newsapi rate limit exceeded", ErrExternalService)
	}

	var body newsAPIResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("%w: decoding newsapi response: %v", ErrExternalService, err)
	}
	if resp.StatusCode != http.StatusOK || body.Status != "ok" {
		return nil, fmt.Errorf("%w: newsapi %s: %s", ErrExternalService, body.Code, body.Message)
	}

	now := time.Now()
	articles := make([]models.Article, 0, len(body.Articles))
	for _, item := range body.Articles {
		if item.Title == "" || item.URL == "" {
			continue
		}

		// NewsAPI frequently omits the author; attribute to the outlet so
		// payouts still group somewhere meaningful.
		author := item.Author
		if author == "" {
			author = item.Source.Name
		}
		if author == "" {
			continue
		}

		articles = append(articles, models.Article{
			Title:       item.Title,
			Description: item.Description,
			Content:     item.Content,
			Author:      author,
			URL:         item.URL,
			ImageURL:    item.URLToImage,
			SourceName:  item.Source.Name,
			Category:    q.Category,
			Type:        models.TypeNews,
			PublishedAt: item.PublishedAt,
			FetchedAt:   now,
		})
	}

	if err := validateAll(s.Name(), articles); err != nil {
		return nil, err
	}
	return articles, nil
}

// buildRequest picks the endpoint and query parameters for q.
func (s *NewsAPISource) buildRequest(q Query) (string, url.Values) {
	params := url.Values{}

	if q.Text != "" {
		params.Set("q", q.Text)
	}
	if q.SortBy != "" {
		params.Set("sortBy", q.SortBy)
	}
	if q.From != nil {
		params.Set("from", q.From.Format("2006-01-02"))
	}
	if q.To != nil {
		params.Set("to", q.To.Format("2006-01-02"))
	}
	if q.MaxResults > 0 {
		params.Set("pageSize", fmt.Sprint(q.MaxResults))
	}

	if q.Category != "" {
		params.Set("category", q.Category)
		return s.baseURL + "/top-headlines", params
	}

	if q.Text == "" {
		// /everything requires at least one of q, sources, domains.
		params.Set("q", "news")
	}
	return s.baseURL + "/everything", params
}
