package handlers

import (
	"log/slog"
	"net/http"

	"github.com/harshavardhan-9/news-blog/internal/analytics"
	"github.com/harshavardhan-9/news-blog/internal/storage"
)

// GetAnalytics handles GET /api/analytics. It returns the chart series for
// the filtered article set.
func GetAnalytics(store *storage.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		filter, err := filterFromQuery(r)
		if err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}

		articles, err := store.ListArticles(ctx, filter)
		if err != nil {
			slog.Error("failed to load articles for analytics", "error", err)
			writeError(w, http.StatusInternalServerError, "Failed to load articles")
			return
		}

		writeJSON(w, http.StatusOK, analytics.Summarize(articles))
	}
}
