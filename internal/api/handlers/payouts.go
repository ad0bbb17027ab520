package handlers

import (
	"log/slog"
	"net/http"

	"github.com/harshavardhan-9/news-blog/internal/payout"
	"github.com/harshavardhan-9/news-blog/internal/storage"
)

// GetPayouts handles GET /api/payouts. It aggregates the filtered article
// set against the current rates and returns one summary row per author plus
// the grand totals. The summary is computed fresh on every request.
func GetPayouts(store *storage.Store, rates *payout.RateStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		filter, err := filterFromQuery(r)
		if err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}

		articles, err := store.ListArticles(ctx, filter)
		if err != nil {
			slog.Error("failed to load articles for payouts", "error", err)
			writeError(w, http.StatusInternalServerError, "Failed to load articles")
			return
		}

		rows, err := payout.Aggregate(articles, rates.Rates(ctx), rates.DefaultRate())
		if err != nil {
			slog.Error("payout aggregation failed", "error", err)
			writeError(w, http.StatusInternalServerError, "Payout aggregation failed")
			return
		}

		writeJSON(w, http.StatusOK, map[string]any{
			"rows":           rows,
			"total_articles": payout.TotalArticles(rows),
			"total_payout":   payout.Total(rows),
		})
	}
}
