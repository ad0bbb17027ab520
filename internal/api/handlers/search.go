package handlers

import (
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/harshavardhan-9/news-blog/internal/storage"
)

// SearchArticles handles GET /api/search. It runs a full-text search over
// cached article titles, descriptions, and content.
func SearchArticles(store *storage.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		query := strings.TrimSpace(r.URL.Query().Get("q"))
		if query == "" {
			writeError(w, http.StatusBadRequest, "Missing search query parameter 'q'")
			return
		}

		limit := 20
		if raw := r.URL.Query().Get("limit"); raw != "" {
			n, err := strconv.Atoi(raw)
			if err != nil || n < 1 {
				writeError(w, http.StatusBadRequest, "Invalid limit parameter")
				return
			}
			limit = n
		}

		articles, err := store.SearchArticles(ctx, query, limit)
		if err != nil {
			slog.Error("search failed", "query", query, "error", err)
			writeError(w, http.StatusInternalServerError, "Search failed")
			return
		}

		writeJSON(w, http.StatusOK, map[string]any{
			"query":    query,
			"articles": articles,
			"count":    len(articles),
		})
	}
}
