package config

import (
	"os"
	"path/filepath"
	"testing"
)

// writeTestConfig is a helper that writes a TOML config file to a temp directory
// and returns its path.
func writeTestConfig(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("writing test config: %v", err)
	}
	return path
}

func TestLoad_ValidConfig(t *testing.T) {
	content := `
[server]
port = 9090
auto_open_browser = false

[auth]
session_secret = "local-secret"
token_ttl_hours = 12

[news]
use_mock = false
newsapi_key = "test-key-123"
refresh_interval_minutes = 30
max_articles_per_source = 25

[[news.feeds]]
name = "Example Blog"
url = "https://example.com/feed.xml"
category = "technology"

[payouts]
default_news_rate = 12.5
default_blog_rate = 20.0

[export]
report_name = "Monthly Payouts"
google_credentials_file = "/tmp/creds.json"
`
	path := writeTestConfig(t, content)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load(%q) unexpected error: %v", path, err)
	}

	if cfg.Server.Port != 9090 {
		t.Errorf("Server.Port = %d, want %d", cfg.Server.Port, 9090)
	}
	if cfg.Server.AutoOpenBrowser != false {
		t.Errorf("Server.AutoOpenBrowser = %v, want %v", cfg.Server.AutoOpenBrowser, false)
	}

	if cfg.Auth.SessionSecret != "local-secret" {
		t.Errorf("Auth.SessionSecret = %q, want %q", cfg.Auth.SessionSecret, "local-secret")
	}
	if cfg.Auth.TokenTTLHours != 12 {
		t.Errorf("Auth.TokenTTLHours = %d, want %d", cfg.Auth.TokenTTLHours, 12)
	}

	if cfg.News.UseMock {
		t.Error("News.UseMock = true, want false")
	}
	if cfg.News.NewsAPIKey != "test-key-123" {
		t.Errorf("News.NewsAPIKey = %q, want %q", cfg.News.NewsAPIKey, "test-key-123")
	}
	if cfg.News.RefreshIntervalMinutes != 30 {
		t.Errorf("News.RefreshIntervalMinutes = %d, want %d", cfg.News.RefreshIntervalMinutes, 30)
	}
	if len(cfg.News.Feeds) != 1 || cfg.News.Feeds[0].URL != "https://example.com/feed.xml" {
		t.Errorf("News.Feeds = %+v, want one example feed", cfg.News.Feeds)
	}

	if cfg.Payouts.DefaultNewsRate != 12.5 {
		t.Errorf("Payouts.DefaultNewsRate = %v, want %v", cfg.Payouts.DefaultNewsRate, 12.5)
	}
	if cfg.Payouts.DefaultBlogRate != 20.0 {
		t.Errorf("Payouts.DefaultBlogRate = %v, want %v", cfg.Payouts.DefaultBlogRate, 20.0)
	}

	if cfg.Export.ReportName != "Monthly Payouts" {
		t.Errorf("Export.ReportName = %q, want %q", cfg.Export.ReportName, "Monthly Payouts")
	}
	if cfg.Export.GoogleCredentialsFile != "/tmp/creds.json" {
		t.Errorf("Export.GoogleCredentialsFile = %q", cfg.Export.GoogleCredentialsFile)
	}
}

func TestLoad_MissingFile_CreatesDefault(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load(%q) unexpected error: %v", path, err)
	}

	// File should have been created.
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("default config file not created at %q: %v", path, err)
	}

	// Should have default values.
	if cfg.Server.Port != 8080 {
		t.Errorf("Server.Port = %d, want %d", cfg.Server.Port, 8080)
	}
	if cfg.Server.AutoOpenBrowser != true {
		t.Errorf("Server.AutoOpenBrowser = %v, want %v", cfg.Server.AutoOpenBrowser, true)
	}
	if cfg.Auth.TokenTTLHours != 24 {
		t.Errorf("Auth.TokenTTLHours = %d, want %d", cfg.Auth.TokenTTLHours, 24)
	}
	if !cfg.News.UseMock {
		t.Error("News.UseMock = false, want true by default")
	}
	if cfg.News.RefreshIntervalMinutes != 60 {
		t.Errorf("News.RefreshIntervalMinutes = %d, want %d", cfg.News.RefreshIntervalMinutes, 60)
	}
	if cfg.Payouts.DefaultNewsRate != 10 {
		t.Errorf("Payouts.DefaultNewsRate = %v, want 10", cfg.Payouts.DefaultNewsRate)
	}
	if cfg.Payouts.DefaultBlogRate != 15 {
		t.Errorf("Payouts.DefaultBlogRate = %v, want 15", cfg.Payouts.DefaultBlogRate)
	}
	if cfg.Export.ReportName != "News Payout Report" {
		t.Errorf("Export.ReportName = %q", cfg.Export.ReportName)
	}
}

func TestLoad_DefaultsApplied(t *testing.T) {
	// Minimal config: empty sections, everything falls through to defaults.
	content := `
[server]

[news]
`
	path := writeTestConfig(t, content)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load(%q) unexpected error: %v", path, err)
	}

	if cfg.Server.Port != 8080 {
		t.Errorf("Server.Port = %d, want default %d", cfg.Server.Port, 8080)
	}
	if cfg.Auth.TokenTTLHours != 24 {
		t.Errorf("Auth.TokenTTLHours = %d, want default %d", cfg.Auth.TokenTTLHours, 24)
	}
	if cfg.News.MaxArticlesPerSource != 50 {
		t.Errorf("News.MaxArticlesPerSource = %d, want default %d", cfg.News.MaxArticlesPerSource, 50)
	}
	if cfg.Payouts.DefaultNewsRate != 10 || cfg.Payouts.DefaultBlogRate != 15 {
		t.Errorf("Payouts defaults = %v/%v, want 10/15",
			cfg.Payouts.DefaultNewsRate, cfg.Payouts.DefaultBlogRate)
	}
}

func TestLoad_EnvVar_NewsAPIKey(t *testing.T) {
	content := `
[news]
newsapi_key = "from-config"
`
	path := writeTestConfig(t, content)
	t.Setenv("NEWS_API_KEY", "from-env")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load(%q) unexpected error: %v", path, err)
	}

	if cfg.News.NewsAPIKey != "from-env" {
		t.Errorf("News.NewsAPIKey = %q, want %q (NEWS_API_KEY should override config)", cfg.News.NewsAPIKey, "from-env")
	}
}

func TestLoad_EnvVar_SessionSecret(t *testing.T) {
	content := `
[auth]
session_secret = "from-config"
`
	path := writeTestConfig(t, content)
	t.Setenv("SESSION_SECRET", "from-env")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load(%q) unexpected error: %v", path, err)
	}

	if cfg.Auth.SessionSecret != "from-env" {
		t.Errorf("Auth.SessionSecret = %q, want %q", cfg.Auth.SessionSecret, "from-env")
	}
}

func TestLoad_EnvVar_GoogleCredentialsFile(t *testing.T) {
	path := writeTestConfig(t, "[export]\n")
	t.Setenv("GOOGLE_CREDENTIALS_FILE", "/env/creds.json")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load(%q) unexpected error: %v", path, err)
	}

	if cfg.Export.GoogleCredentialsFile != "/env/creds.json" {
		t.Errorf("Export.GoogleCredentialsFile = %q", cfg.Export.GoogleCredentialsFile)
	}
}

func TestLoad_InvalidPort(t *testing.T) {
	tests := []struct {
		name string
		port string
	}{
		{name: "zero", port: "0"},
		{name: "negative", port: "-1"},
		{name: "too high", port: "70000"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			content := `
[server]
port = ` + tt.port + `
`
			path := writeTestConfig(t, content)

			_, err := Load(path)
			if err == nil {
				t.Fatalf("Load(%q) expected error for port %s, got nil", path, tt.port)
			}
		})
	}
}

func TestLoad_InvalidTokenTTL(t *testing.T) {
	tests := []struct {
		name  string
		hours string
	}{
		{name: "zero", hours: "0"},
		{name: "negative", hours: "-1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			content := `
[auth]
token_ttl_hours = ` + tt.hours + `
`
			path := writeTestConfig(t, content)

			_, err := Load(path)
			if err == nil {
				t.Fatalf("Load(%q) expected error for token_ttl_hours %s, got nil", path, tt.hours)
			}
		})
	}
}

func TestLoad_NegativeDefaultRate(t *testing.T) {
	content := `
[payouts]
default_news_rate = -5.0
`
	path := writeTestConfig(t, content)

	if _, err := Load(path); err == nil {
		t.Fatal("Load() accepted a negative default rate")
	}
}

func TestLoad_FeedMissingURL(t *testing.T) {
	content := `
[[news.feeds]]
name = "No URL"
`
	path := writeTestConfig(t, content)

	if _, err := Load(path); err == nil {
		t.Fatal("Load() accepted a feed without a url")
	}
}
