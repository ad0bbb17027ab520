package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/harshavardhan-9/news-blog/internal/news"
	"github.com/harshavardhan-9/news-blog/internal/storage"
)

// ListArticles handles GET /api/articles. It returns cached articles
// filtered by the q/category/type/author/from/to/sort/limit parameters.
func ListArticles(store *storage.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		filter, err := filterFromQuery(r)
		if err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}

		articles, err := store.ListArticles(ctx, filter)
		if err != nil {
			slog.Error("failed to list articles", "error", err)
			writeError(w, http.StatusInternalServerError, "Failed to list articles")
			return
		}

		writeJSON(w, http.StatusOK, map[string]any{
			"articles": articles,
			"count":    len(articles),
		})
	}
}

// GetArticle handles GET /api/articles/{id}. It returns one cached article.
// With ?extract=true the full readable text is fetched from the source page
// and cached on the row; extraction failures fall back to the stored copy.
func GetArticle(store *storage.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		id, err := parseID(r, "id")
		if err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}

		article, err := store.GetArticleByID(ctx, id)
		if err != nil {
			if errors.Is(err, storage.ErrNotFound) {
				writeError(w, http.StatusNotFound, "Article not found")
				return
			}
			slog.Error("failed to get article", "id", id, "error", err)
			writeError(w, http.StatusInternalServerError, "Failed to get article")
			return
		}

		if article.Content == "" && r.URL.Query().Get("extract") == "true" {
			content, err := news.ExtractContent(article.URL)
			if err != nil {
				slog.Warn("content extraction failed", "id", id, "error", err)
			} else {
				article.Content = content
				if err := store.SetArticleContent(ctx, id, content); err != nil {
					slog.Warn("failed to cache extracted content", "id", id, "error", err)
				}
			}
		}

		writeJSON(w, http.StatusOK, article)
	}
}

// RefreshArticles handles POST /api/articles/refresh. It pulls every
// configured source into the cache and reports per-source failures without
// failing the whole run.
func RefreshArticles(refresher *news.Refresher) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		var body struct {
			Query      string `json:"query"`
			Category   string `json:"category"`
			From       string `json:"from"`
			To         string `json:"to"`
			MaxResults int    `json:"max_results"`
		}
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil && !errors.Is(err, io.EOF) {
			writeError(w, http.StatusBadRequest, "Invalid JSON body")
			return
		}

		q := news.Query{
			Text:       body.Query,
			Category:   body.Category,
			MaxResults: body.MaxResults,
		}
		if body.From != "" {
			t, err := parseDate(body.From)
			if err != nil {
				writeError(w, http.StatusBadRequest, err.Error())
				return
			}
			q.From = t
		}
		if body.To != "" {
			t, err := parseDate(body.To)
			if err != nil {
				writeError(w, http.StatusBadRequest, err.Error())
				return
			}
			q.To = t
		}

		start := time.Now()
		result, err := refresher.Refresh(ctx, q)
		if err != nil {
			slog.Error("refresh failed", "error", err)
			writeError(w, http.StatusBadGateway, "All article sources failed")
			return
		}

		slog.Info("articles refreshed",
			"fetched", result.Fetched,
			"stored", result.Stored,
			"failed_sources", len(result.Failed),
			"duration", time.Since(start).String(),
		)
		writeJSON(w, http.StatusOK, result)
	}
}
