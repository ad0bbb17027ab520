package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/harshavardhan-9/news-blog/internal/models"
	"github.com/harshavardhan-9/news-blog/internal/storage"
)

// writeJSON encodes v as JSON and writes it to the response with the given
// HTTP status code. Content-Type is always set to application/json.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		// At this point headers are already sent; log but cannot change status.
		http.Error(w, "failed to encode response", http.StatusInternalServerError)
	}
}

// writeError writes a JSON error response with the given HTTP status code.
// The response body is {"error": "message"}.
func writeError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": message})
}

// parseID extracts an int64 from a chi URL parameter.
func parseID(r *http.Request, param string) (int64, error) {
	raw := chi.URLParam(r, param)
	if raw == "" {
		return 0, fmt.Errorf("missing URL parameter %q", param)
	}

	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %q parameter: %w", param, err)
	}
	return id, nil
}

// parseDate accepts a plain date or a full RFC 3339 timestamp.
func parseDate(raw string) (*time.Time, error) {
	for _, layout := range []string{"2006-01-02", time.RFC3339} {
		if t, err := time.Parse(layout, raw); err == nil {
			return &t, nil
		}
	}
	return nil, fmt.Errorf("invalid date %q: want YYYY-MM-DD or RFC 3339", raw)
}

// filterFromQuery builds an article filter from the shared list/payout/export
// query parameters: q, category, type, author, from, to, sort, limit.
func filterFromQuery(r *http.Request) (storage.ArticleFilter, error) {
	q := r.URL.Query()

	filter := storage.ArticleFilter{
		Query:    q.Get("q"),
		Category: q.Get("category"),
		Author:   q.Get("author"),
		SortBy:   q.Get("sort"),
	}

	if raw := q.Get("type"); raw != "" {
		typ := models.ArticleType(raw)
		if !typ.Valid() {
			return filter, fmt.Errorf("invalid type %q: want %q or %q", raw, models.TypeNews, models.TypeBlog)
		}
		filter.Type = typ
	}

	if raw := q.Get("from"); raw != "" {
		t, err := parseDate(raw)
		if err != nil {
			return filter, err
		}
		filter.From = t
	}
	if raw := q.Get("to"); raw != "" {
		t, err := parseDate(raw)
		if err != nil {
			return filter, err
		}
		filter.To = t
	}

	if raw := q.Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			return filter, fmt.Errorf("invalid limit %q", raw)
		}
		filter.Limit = n
	}

	return filter, nil
}
