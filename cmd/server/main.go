package main

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"time"

	"github.com/harshavardhan-9/news-blog/internal/api"
	"github.com/harshavardhan-9/news-blog/internal/auth"
	"github.com/harshavardhan-9/news-blog/internal/config"
	"github.com/harshavardhan-9/news-blog/internal/export"
	"github.com/harshavardhan-9/news-blog/internal/models"
	"github.com/harshavardhan-9/news-blog/internal/news"
	"github.com/harshavardhan-9/news-blog/internal/payout"
	"github.com/harshavardhan-9/news-blog/internal/storage"
)

func main() {
	configPath := flag.String("config", "config.toml", "path to config file")
	dataDir := flag.String("data-dir", "./data", "path to data directory")
	flag.Parse()

	// Load configuration (auto-creates default if missing).
	cfg, err := config.Load(*configPath)
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	// Ensure data directory exists.
	if err := os.MkdirAll(*dataDir, 0o755); err != nil {
		slog.Error("failed to create data directory", "error", err)
		os.Exit(1)
	}

	// Open database with WAL mode and pragmas.
	db, err := storage.OpenDatabase(filepath.Join(*dataDir, "app.db"))
	if err != nil {
		slog.Error("failed to open database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	// Run schema migrations.
	if err := storage.RunMigrations(db); err != nil {
		slog.Error("failed to run migrations", "error", err)
		os.Exit(1)
	}

	// Create store and seed default accounts.
	store := storage.NewStore(db)
	if err := store.SeedDefaults(context.Background()); err != nil {
		slog.Error("failed to seed defaults", "error", err)
		os.Exit(1)
	}

	// Session signing. A missing secret gets a generated one, persisted in
	// settings so tokens survive restarts.
	secret, err := sessionSecret(cfg, store)
	if err != nil {
		slog.Error("failed to resolve session secret", "error", err)
		os.Exit(1)
	}
	signer, err := auth.NewSigner(secret, time.Duration(cfg.Auth.TokenTTLHours)*time.Hour)
	if err != nil {
		slog.Error("failed to create token signer", "error", err)
		os.Exit(1)
	}
	authn := auth.NewAuthenticator(store, signer)

	// Article sources per config: mock fixtures, NewsAPI, RSS feeds.
	sources := buildSources(cfg)
	refresher := news.NewRefresher(sources, store)

	// Payout rates: per-author overrides persisted in settings, config
	// default for everyone else.
	rates := payout.NewRateStore(store, models.RateEntry{
		NewsRate: cfg.Payouts.DefaultNewsRate,
		BlogRate: cfg.Payouts.DefaultBlogRate,
	})

	// Google Sheets handoff. A nil client means every sheet export degrades
	// to the clipboard fallback.
	var sheetsClient export.SheetsClient
	if cfg.Export.GoogleCredentialsFile != "" {
		creds, err := os.ReadFile(cfg.Export.GoogleCredentialsFile)
		if err != nil {
			slog.Error("failed to read google credentials", "error", err)
			os.Exit(1)
		}
		sheetsClient, err = export.NewGoogleSheetsClient(context.Background(), creds)
		if err != nil {
			slog.Error("failed to create sheets client", "error", err)
			os.Exit(1)
		}
		slog.Info("google sheets export configured")
	} else {
		slog.Warn("no google credentials configured, sheet exports will fall back to the clipboard")
	}

	// Build router with all API routes and static file serving.
	router := api.NewRouter(api.Deps{
		Store:      store,
		Auth:       authn,
		Refresher:  refresher,
		Rates:      rates,
		Sheets:     export.NewSheetsExporter(sheetsClient),
		ReportName: cfg.Export.ReportName,
	})

	// Background refresh keeps the cache warm between manual refreshes.
	if len(sources) > 0 {
		go refreshLoop(refresher, time.Duration(cfg.News.RefreshIntervalMinutes)*time.Minute, cfg.News.MaxArticlesPerSource)
	}

	// Determine server address (localhost only for security).
	addr := fmt.Sprintf("localhost:%d", cfg.Server.Port)

	// Auto-open browser after a short delay to let the server start.
	if cfg.Server.AutoOpenBrowser {
		go func() {
			time.Sleep(500 * time.Millisecond)
			openBrowser("http://" + addr)
		}()
	}

	// Start HTTP server.
	slog.Info("starting server", "addr", "http://"+addr)
	if err := http.ListenAndServe(addr, router); err != nil {
		slog.Error("server failed", "error", err)
		os.Exit(1)
	}
}

// sessionSecret resolves the token signing secret: config/env first, then a
// generated value persisted in settings.
func sessionSecret(cfg *config.Config, store *storage.Store) (string, error) {
	if cfg.Auth.SessionSecret != "" {
		return cfg.Auth.SessionSecret, nil
	}

	ctx := context.Background()

	var stored string
	if err := store.GetSetting(ctx, "sessionSecret", &stored); err == nil && stored != "" {
		return stored, nil
	}

	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("generating session secret: %w", err)
	}
	secret := hex.EncodeToString(buf)

	if err := store.SetSetting(ctx, "sessionSecret", secret); err != nil {
		return "", fmt.Errorf("persisting session secret: %w", err)
	}
	slog.Info("generated new session secret")
	return secret, nil
}

// buildSources assembles the configured article sources.
func buildSources(cfg *config.Config) []news.Source {
	var sources []news.Source

	if cfg.News.UseMock {
		mock, err := news.NewMockSource()
		if err != nil {
			slog.Error("failed to load mock articles", "error", err)
		} else {
			sources = append(sources, mock)
		}
	}

	if cfg.News.NewsAPIKey != "" {
		sources = append(sources, news.NewNewsAPISource(cfg.News.NewsAPIKey))
	}

	if len(cfg.News.Feeds) > 0 {
		feeds := make([]news.Feed, 0, len(cfg.News.Feeds))
		for _, f := range cfg.News.Feeds {
			feeds = append(feeds, news.Feed{Name: f.Name, URL: f.URL, Category: f.Category})
		}
		sources = append(sources, news.NewRSSSource(feeds))
	}

	if len(sources) == 0 {
		slog.Warn("no article sources configured, the cache will stay empty until one is added")
	}
	return sources
}

// refreshLoop refreshes the article cache once at startup and then on the
// configured interval.
func refreshLoop(refresher *news.Refresher, interval time.Duration, maxResults int) {
	refreshOnce(refresher, maxResults)

	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for range ticker.C {
		refreshOnce(refresher, maxResults)
	}
}

func refreshOnce(refresher *news.Refresher, maxResults int) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	result, err := refresher.Refresh(ctx, news.Query{MaxResults: maxResults})
	if err != nil {
		slog.Warn("background refresh failed", "error", err)
		return
	}
	slog.Info("background refresh complete",
		"fetched", result.Fetched,
		"stored", result.Stored,
		"failed_sources", len(result.Failed),
	)
}

// openBrowser opens the given URL in the user's default browser.
// It is a fire-and-forget operation; errors are silently ignored.
func openBrowser(url string) {
	var cmd *exec.Cmd
	switch runtime.GOOS {
	case "darwin":
		cmd = exec.Command("open", url)
	case "linux":
		cmd = exec.Command("xdg-open", url)
	case "windows":
		cmd = exec.Command("cmd", "/c", "start", url)
	}
	if cmd != nil {
		_ = cmd.Start()
	}
}
