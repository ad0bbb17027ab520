package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Config holds all application configuration.
type Config struct {
	Server  ServerConfig  `toml:"server"`
	Auth    AuthConfig    `toml:"auth"`
	News    NewsConfig    `toml:"news"`
	Payouts PayoutsConfig `toml:"payouts"`
	Export  ExportConfig  `toml:"export"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port            int  `toml:"port"`
	AutoOpenBrowser bool `toml:"auto_open_browser"`
}

// AuthConfig holds session token settings.
type AuthConfig struct {
	SessionSecret string `toml:"session_secret"`
	TokenTTLHours int    `toml:"token_ttl_hours"`
}

// NewsConfig holds article source settings.
type NewsConfig struct {
	UseMock                bool      `toml:"use_mock"`
	NewsAPIKey             string    `toml:"newsapi_key"`
	RefreshIntervalMinutes int       `toml:"refresh_interval_minutes"`
	MaxArticlesPerSource   int       `toml:"max_articles_per_source"`
	Feeds                  []RSSFeed `toml:"feeds"`
}

// RSSFeed is one configured blog feed.
type RSSFeed struct {
	Name     string `toml:"name"`
	URL      string `toml:"url"`
	Category string `toml:"category"`
}

// PayoutsConfig holds the fallback rates applied to authors without an
// explicit rate entry.
type PayoutsConfig struct {
	DefaultNewsRate float64 `toml:"default_news_rate"`
	DefaultBlogRate float64 `toml:"default_blog_rate"`
}

// ExportConfig holds report generation settings.
type ExportConfig struct {
	ReportName            string `toml:"report_name"`
	GoogleCredentialsFile string `toml:"google_credentials_file"`
}

const defaultConfigContent = `[server]
port = 8080
auto_open_browser = true

[auth]
session_secret = ""               # Generated on first run (or set SESSION_SECRET env var)
token_ttl_hours = 24

[news]
use_mock = true                   # Serve bundled demo articles; set false to use NewsAPI
newsapi_key = ""                  # Your NewsAPI key (or set NEWS_API_KEY env var)
refresh_interval_minutes = 60
max_articles_per_source = 50

# Blog feeds fetched alongside news. Each entry becomes a "blog" source.
# [[news.feeds]]
# name = "Example Blog"
# url = "https://example.com/feed.xml"
# category = "technology"

[payouts]
default_news_rate = 10.0
default_blog_rate = 15.0

[export]
report_name = "News Payout Report"
google_credentials_file = ""      # Service account JSON (or set GOOGLE_CREDENTIALS_FILE env var)
`

// Load reads and parses the TOML config from the given path. If the file does
// not exist, it creates a default config file at that path. Environment
// variables override values from the file with highest priority.
func Load(path string) (*Config, error) {
	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		if err := createDefault(path); err != nil {
			return nil, fmt.Errorf("creating default config: %w", err)
		}
		slog.Info("created default config file", "path", path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	var cfg Config
	md, err := toml.Decode(string(data), &cfg)
	if err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	// Validate explicitly-set values before applying defaults, so that
	// explicitly writing "port = 0" is an error rather than silently
	// being replaced with the default.
	if err := validateExplicit(&cfg, md); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}

	applyDefaults(&cfg)
	applyEnvOverrides(&cfg)

	if err := validate(&cfg); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}

	return &cfg, nil
}

// createDefault writes the default config content to the given path,
// creating any parent directories as needed.
func createDefault(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}
	if err := os.WriteFile(path, []byte(defaultConfigContent), 0o644); err != nil {
		return fmt.Errorf("writing default config: %w", err)
	}
	return nil
}

// validateExplicit checks values that were explicitly set in the TOML file.
// This catches cases like "port = 0" which would otherwise be silently
// replaced by the default value.
func validateExplicit(cfg *Config, md toml.MetaData) error {
	if md.IsDefined("server", "port") {
		if cfg.Server.Port < 1 || cfg.Server.Port > 65535 {
			return fmt.Errorf("invalid server.port %d: must be between 1 and 65535", cfg.Server.Port)
		}
	}
	if md.IsDefined("auth", "token_ttl_hours") {
		if cfg.Auth.TokenTTLHours < 1 {
			return fmt.Errorf("invalid auth.token_ttl_hours %d: must be >= 1", cfg.Auth.TokenTTLHours)
		}
	}
	if md.IsDefined("payouts", "default_news_rate") {
		if cfg.Payouts.DefaultNewsRate < 0 {
			return fmt.Errorf("invalid payouts.default_news_rate %v: must be >= 0", cfg.Payouts.DefaultNewsRate)
		}
	}
	if md.IsDefined("payouts", "default_blog_rate") {
		if cfg.Payouts.DefaultBlogRate < 0 {
			return fmt.Errorf("invalid payouts.default_blog_rate %v: must be >= 0", cfg.Payouts.DefaultBlogRate)
		}
	}
	return nil
}

// applyDefaults sets default values for any zero-valued fields.
func applyDefaults(cfg *Config) {
	if cfg.Server.Port == 0 {
		cfg.Server.Port = 8080
	}
	if cfg.Auth.TokenTTLHours == 0 {
		cfg.Auth.TokenTTLHours = 24
	}
	if cfg.News.RefreshIntervalMinutes == 0 {
		cfg.News.RefreshIntervalMinutes = 60
	}
	if cfg.News.MaxArticlesPerSource == 0 {
		cfg.News.MaxArticlesPerSource = 50
	}
	if cfg.Payouts.DefaultNewsRate == 0 {
		cfg.Payouts.DefaultNewsRate = 10
	}
	if cfg.Payouts.DefaultBlogRate == 0 {
		cfg.Payouts.DefaultBlogRate = 15
	}
	if cfg.Export.ReportName == "" {
		cfg.Export.ReportName = "News Payout Report"
	}
}

// applyEnvOverrides applies environment variable overrides. Environment
// variables take highest priority over config file values.
func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("SESSION_SECRET"); v != "" {
		cfg.Auth.SessionSecret = v
	}
	if v := os.Getenv("NEWS_API_KEY"); v != "" {
		cfg.News.NewsAPIKey = v
	}
	if v := os.Getenv("GOOGLE_CREDENTIALS_FILE"); v != "" {
		cfg.Export.GoogleCredentialsFile = v
	}
}

// validate checks that configuration values are within acceptable ranges.
func validate(cfg *Config) error {
	if cfg.Server.Port < 1 || cfg.Server.Port > 65535 {
		return fmt.Errorf("invalid server.port %d: must be between 1 and 65535", cfg.Server.Port)
	}

	if cfg.Auth.TokenTTLHours < 1 {
		return fmt.Errorf("invalid auth.token_ttl_hours %d: must be >= 1", cfg.Auth.TokenTTLHours)
	}

	for i, feed := range cfg.News.Feeds {
		if feed.URL == "" {
			return fmt.Errorf("invalid news.feeds[%d]: url is required", i)
		}
		if feed.Name == "" {
			return fmt.Errorf("invalid news.feeds[%d]: name is required", i)
		}
	}

	if !cfg.News.UseMock && cfg.News.NewsAPIKey == "" && len(cfg.News.Feeds) == 0 {
		slog.Warn("no article sources configured: set news.use_mock, news.newsapi_key, or add feeds")
	}

	return nil
}
