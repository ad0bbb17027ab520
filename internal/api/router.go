package api

import (
	"embed"
	"io/fs"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/harshavardhan-9/news-blog/internal/api/handlers"
	"github.com/harshavardhan-9/news-blog/internal/auth"
	"github.com/harshavardhan-9/news-blog/internal/export"
	"github.com/harshavardhan-9/news-blog/internal/models"
	"github.com/harshavardhan-9/news-blog/internal/news"
	"github.com/harshavardhan-9/news-blog/internal/payout"
	"github.com/harshavardhan-9/news-blog/internal/storage"
)

//go:embed all:dist
var distFS embed.FS

// Deps bundles everything the HTTP layer serves.
type Deps struct {
	Store      *storage.Store
	Auth       *auth.Authenticator
	Refresher  *news.Refresher
	Rates      *payout.RateStore
	Sheets     *export.SheetsExporter
	ReportName string
}

// NewRouter creates and configures the HTTP router with all API routes and
// static file serving for the dashboard SPA.
func NewRouter(deps Deps) *chi.Mux {
	r := chi.NewRouter()

	// Global middleware.
	r.Use(RequestLogger)
	r.Use(Recovery)
	r.Use(CORS)

	// API sub-router.
	r.Route("/api", func(api chi.Router) {
		api.Post("/login", handlers.Login(deps.Auth))

		// Everything else requires a session token.
		api.Group(func(authed chi.Router) {
			authed.Use(RequireAuth(deps.Auth))

			authed.Get("/me", handlers.Me(deps.Auth))

			authed.Get("/articles", handlers.ListArticles(deps.Store))
			authed.Post("/articles/refresh", handlers.RefreshArticles(deps.Refresher))
			authed.Get("/articles/{id}", handlers.GetArticle(deps.Store))
			authed.Get("/search", handlers.SearchArticles(deps.Store))

			authed.Get("/rates", handlers.GetRates(deps.Rates))
			authed.Get("/payouts", handlers.GetPayouts(deps.Store, deps.Rates))
			authed.Get("/analytics", handlers.GetAnalytics(deps.Store))

			authed.Get("/export/csv", handlers.ExportCSV(deps.Store, deps.Rates, deps.ReportName))
			authed.Get("/export/pdf", handlers.ExportPDF(deps.Store, deps.Rates, deps.ReportName))
			authed.Get("/export/history", handlers.ListExports(deps.Store))

			// Admin-only mutations.
			authed.Group(func(admin chi.Router) {
				admin.Use(RequireRole(models.RoleAdmin))

				admin.Put("/rates", handlers.UpdateRates(deps.Rates))
				admin.Post("/export/sheets", handlers.ExportSheets(deps.Store, deps.Rates, deps.Sheets, deps.ReportName))
			})
		})
	})

	// Serve the dashboard SPA from the embedded dist/ directory.
	distContent, _ := fs.Sub(distFS, "dist")
	fileServer := http.FileServer(http.FS(distContent))

	// SPA fallback: serve index.html for any non-API GET request that does
	// not match a static file.
	r.Get("/*", func(w http.ResponseWriter, r *http.Request) {
		// Try to open the file first.
		path := r.URL.Path
		if path == "/" {
			path = "/index.html"
		}

		// Check if the file exists in the embedded FS.
		f, err := distContent.Open(path[1:]) // strip leading /
		if err != nil {
			// File not found — serve index.html for SPA client-side routing.
			r.URL.Path = "/"
			fileServer.ServeHTTP(w, r)
			return
		}
		f.Close()

		// File exists — serve it directly.
		fileServer.ServeHTTP(w, r)
	})

	return r
}
