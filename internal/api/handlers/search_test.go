package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/harshavardhan-9/news-blog/internal/models"
)

func TestSearchArticles(t *testing.T) {
	store := newTestStore(t)
	seedArticle(t, store, "Alice", models.TypeNews, "https://example.com/n1")

	r := httptest.NewRequest(http.MethodGet, "/api/search?q=Alice", nil)
	w := httptest.NewRecorder()
	SearchArticles(store)(w, r)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d: %s", w.Code, w.Body.String())
	}

	var body struct {
		Articles []models.Article `json:"articles"`
		Count    int              `json:"count"`
	}
	if err := json.NewDecoder(w.Body).Decode(&body); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if body.Count != 1 {
		t.Errorf("Count = %d, want 1", body.Count)
	}
}

func TestSearchArticles_MissingQuery(t *testing.T) {
	store := newTestStore(t)

	r := httptest.NewRequest(http.MethodGet, "/api/search", nil)
	w := httptest.NewRecorder()
	SearchArticles(store)(w, r)

	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want %d", w.Code, http.StatusBadRequest)
	}
}
