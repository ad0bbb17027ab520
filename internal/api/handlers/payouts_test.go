package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/harshavardhan-9/news-blog/internal/models"
)

func TestGetPayouts(t *testing.T) {
	store := newTestStore(t)
	rates := newTestRates(store)

	// Alice: 2 news + 1 blog at the 10/15 default = 35.
	seedArticle(t, store, "Alice", models.TypeNews, "https://example.com/n1")
	seedArticle(t, store, "Alice", models.TypeNews, "https://example.com/n2")
	seedArticle(t, store, "Alice", models.TypeBlog, "https://example.com/b1")
	seedArticle(t, store, "Bob", models.TypeNews, "https://example.com/n3")

	r := httptest.NewRequest(http.MethodGet, "/api/payouts", nil)
	w := httptest.NewRecorder()
	GetPayouts(store, rates)(w, r)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d: %s", w.Code, w.Body.String())
	}

	var body struct {
		Rows          []models.SummaryRow `json:"rows"`
		TotalArticles int                 `json:"total_articles"`
		TotalPayout   float64             `json:"total_payout"`
	}
	if err := json.NewDecoder(w.Body).Decode(&body); err != nil {
		t.Fatalf("decoding response: %v", err)
	}

	if len(body.Rows) != 2 {
		t.Fatalf("got %d rows, want 2", len(body.Rows))
	}
	// Rows are sorted by author ascending.
	if body.Rows[0].Author != "Alice" || body.Rows[1].Author != "Bob" {
		t.Errorf("row order = %q, %q", body.Rows[0].Author, body.Rows[1].Author)
	}
	if body.Rows[0].TotalPayout != 35 {
		t.Errorf("Alice TotalPayout = %v, want 35", body.Rows[0].TotalPayout)
	}
	if body.TotalArticles != 4 {
		t.Errorf("TotalArticles = %d, want 4", body.TotalArticles)
	}
	if body.TotalPayout != 45 {
		t.Errorf("TotalPayout = %v, want 45", body.TotalPayout)
	}
}

func TestGetPayouts_UsesRateOverrides(t *testing.T) {
	store := newTestStore(t)
	rates := newTestRates(store)
	seedArticle(t, store, "Alice", models.TypeNews, "https://example.com/n1")

	payload := `{"rates":{"Alice":{"news_rate":100,"blog_rate":0}}}`
	r := httptest.NewRequest(http.MethodPut, "/api/rates", strings.NewReader(payload))
	w := httptest.NewRecorder()
	UpdateRates(rates)(w, r)
	if w.Code != http.StatusOK {
		t.Fatalf("updating rates: %s", w.Body.String())
	}

	r = httptest.NewRequest(http.MethodGet, "/api/payouts", nil)
	w = httptest.NewRecorder()
	GetPayouts(store, rates)(w, r)

	var body struct {
		Rows []models.SummaryRow `json:"rows"`
	}
	if err := json.NewDecoder(w.Body).Decode(&body); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if len(body.Rows) != 1 || body.Rows[0].TotalPayout != 100 {
		t.Errorf("rows = %+v, want one row with payout 100", body.Rows)
	}
}

func TestGetPayouts_FilteredSubset(t *testing.T) {
	store := newTestStore(t)
	rates := newTestRates(store)
	seedArticle(t, store, "Alice", models.TypeNews, "https://example.com/n1")
	seedArticle(t, store, "Bob", models.TypeBlog, "https://example.com/b1")

	r := httptest.NewRequest(http.MethodGet, "/api/payouts?author=Bob", nil)
	w := httptest.NewRecorder()
	GetPayouts(store, rates)(w, r)

	var body struct {
		Rows        []models.SummaryRow `json:"rows"`
		TotalPayout float64             `json:"total_payout"`
	}
	if err := json.NewDecoder(w.Body).Decode(&body); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if len(body.Rows) != 1 || body.Rows[0].Author != "Bob" {
		t.Errorf("rows = %+v, want Bob only", body.Rows)
	}
	if body.TotalPayout != 15 {
		t.Errorf("TotalPayout = %v, want 15", body.TotalPayout)
	}
}
