package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/harshavardhan-9/news-blog/internal/models"
	"github.com/harshavardhan-9/news-blog/internal/payout"
	"github.com/harshavardhan-9/news-blog/internal/storage"
)

// GetRates handles GET /api/rates. It returns the per-author rate overrides
// and the default rate applied to everyone else.
func GetRates(rates *payout.RateStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{
			"rates":        rates.Rates(r.Context()),
			"default_rate": rates.DefaultRate(),
		})
	}
}

// UpdateRates handles PUT /api/rates (admin only). The body replaces the
// whole rate mapping, last write wins. A persistence failure does not roll
// back the session state; the response reports whether the write stuck.
func UpdateRates(rates *payout.RateStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		var body struct {
			Rates map[string]models.RateEntry `json:"rates"`
		}
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			writeError(w, http.StatusBadRequest, "Invalid JSON body")
			return
		}
		if body.Rates == nil {
			writeError(w, http.StatusBadRequest, "Missing 'rates' object")
			return
		}

		err := rates.Replace(ctx, body.Rates)
		if err != nil && !errors.Is(err, storage.ErrUnavailable) {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}

		persisted := err == nil
		if !persisted {
			slog.Warn("payout rates kept in memory only", "error", err)
		}
		writeJSON(w, http.StatusOK, map[string]any{
			"status":    "ok",
			"persisted": persisted,
		})
	}
}
