package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/harshavardhan-9/news-blog/internal/analytics"
	"github.com/harshavardhan-9/news-blog/internal/models"
)

func TestGetAnalytics(t *testing.T) {
	store := newTestStore(t)
	seedArticle(t, store, "Alice", models.TypeNews, "https://example.com/n1")
	seedArticle(t, store, "Bob", models.TypeBlog, "https://example.com/b1")

	r := httptest.NewRequest(http.MethodGet, "/api/analytics", nil)
	w := httptest.NewRecorder()
	GetAnalytics(store)(w, r)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d: %s", w.Code, w.Body.String())
	}

	var summary analytics.Summary
	if err := json.NewDecoder(w.Body).Decode(&summary); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if summary.TotalArticles != 2 || summary.NewsCount != 1 || summary.BlogCount != 1 {
		t.Errorf("summary = %+v", summary)
	}
	if summary.AuthorCount != 2 {
		t.Errorf("AuthorCount = %d, want 2", summary.AuthorCount)
	}
}

func TestGetAnalytics_RespectsFilters(t *testing.T) {
	store := newTestStore(t)
	seedArticle(t, store, "Alice", models.TypeNews, "https://example.com/n1")
	seedArticle(t, store, "Bob", models.TypeBlog, "https://example.com/b1")

	r := httptest.NewRequest(http.MethodGet, "/api/analytics?type=news", nil)
	w := httptest.NewRecorder()
	GetAnalytics(store)(w, r)

	var summary analytics.Summary
	if err := json.NewDecoder(w.Body).Decode(&summary); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if summary.TotalArticles != 1 || summary.BlogCount != 0 {
		t.Errorf("summary = %+v, want news only", summary)
	}
}
