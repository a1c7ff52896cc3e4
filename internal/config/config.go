// Package config handles application configuration loading from environment
// variables. It provides a centralized Config struct used across the application.
package config

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"
)

// Config holds all application configuration values loaded from the environment.
type Config struct {
	// Server settings
	Host     string
	Port     string
	Env      string // "development", "production", "testing"
	LogLevel string

	// Public site identity, used for absolute URLs in sitemap.xml and robots.txt.
	SiteURL  string
	SiteName string

	// Content API
	SanityProjectID  string
	SanityDataset    string
	SanityAPIVersion string
	SanityReadToken  string
	SanityUseCDN     bool
	ContentTimeout   time.Duration
	ContentRateLimit float64 // requests per second, 0 disables the limiter
	ContentRateBurst int

	// Valkey (Redis-compatible cache)
	ValkeyHost     string
	ValkeyPort     string
	ValkeyPassword string
	ValkeyDB       int

	// PreviewSecretHash is the bcrypt hash of the secret that opens a draft
	// preview session.
	PreviewSecretHash string
}

// Load reads configuration from environment variables, applying defaults
// for development where appropriate. Returns an error if critical values
// are missing in production mode or a value does not parse.
func Load() (*Config, error) {
	cfg := &Config{
		Host:     envOrDefault("APP_HOST", "0.0.0.0"),
		Port:     envOrDefault("APP_PORT", "8080"),
		Env:      envOrDefault("APP_ENV", "development"),
		LogLevel: envOrDefault("LOG_LEVEL", "info"),

		SiteURL:  strings.TrimRight(envOrDefault("SITE_URL", "http://localhost:8080"), "/"),
		SiteName: envOrDefault("SITE_NAME", "Rooters"),

		SanityProjectID:  os.Getenv("SANITY_PROJECT_ID"),
		SanityDataset:    envOrDefault("SANITY_DATASET", "production"),
		SanityAPIVersion: envOrDefault("SANITY_API_VERSION", "2024-01-01"),
		SanityReadToken:  os.Getenv("SANITY_API_READ_TOKEN"),

		ValkeyHost:     envOrDefault("VALKEY_HOST", "localhost"),
		ValkeyPort:     envOrDefault("VALKEY_PORT", "6379"),
		ValkeyPassword: os.Getenv("VALKEY_PASSWORD"),

		PreviewSecretHash: os.Getenv("PREVIEW_SECRET_HASH"),
	}

	var err error
	if cfg.SanityUseCDN, err = strconv.ParseBool(envOrDefault("SANITY_USE_CDN", "true")); err != nil {
		return nil, fmt.Errorf("SANITY_USE_CDN: %w", err)
	}
	if cfg.ContentTimeout, err = time.ParseDuration(envOrDefault("CONTENT_TIMEOUT", "10s")); err != nil {
		return nil, fmt.Errorf("CONTENT_TIMEOUT: %w", err)
	}
	if cfg.ContentRateLimit, err = strconv.ParseFloat(envOrDefault("CONTENT_RATE_LIMIT", "20"), 64); err != nil {
		return nil, fmt.Errorf("CONTENT_RATE_LIMIT: %w", err)
	}
	if cfg.ContentRateBurst, err = strconv.Atoi(envOrDefault("CONTENT_RATE_BURST", "40")); err != nil {
		return nil, fmt.Errorf("CONTENT_RATE_BURST: %w", err)
	}
	if cfg.ValkeyDB, err = strconv.Atoi(envOrDefault("VALKEY_DB", "0")); err != nil {
		return nil, fmt.Errorf("VALKEY_DB: %w", err)
	}

	if _, ok := levels[strings.ToLower(cfg.LogLevel)]; !ok {
		return nil, fmt.Errorf("LOG_LEVEL must be one of debug, info, warn, error; got %q", cfg.LogLevel)
	}

	if cfg.PreviewSecretHash != "" {
		if _, err := bcrypt.Cost([]byte(cfg.PreviewSecretHash)); err != nil {
			return nil, fmt.Errorf("PREVIEW_SECRET_HASH is not a bcrypt hash: %w", err)
		}
		if cfg.SanityReadToken == "" {
			return nil, fmt.Errorf("PREVIEW_SECRET_HASH requires SANITY_API_READ_TOKEN")
		}
	}

	if cfg.Env == "production" {
		if cfg.SanityProjectID == "" {
			return nil, fmt.Errorf("SANITY_PROJECT_ID must be set in production")
		}
	}

	return cfg, nil
}

// Addr returns the server listen address (host:port).
func (c *Config) Addr() string {
	return fmt.Sprintf("%s:%s", c.Host, c.Port)
}

// IsDev returns true if the application is running in development mode.
func (c *Config) IsDev() bool {
	return c.Env == "development"
}

// PreviewEnabled reports whether draft preview can be opened.
func (c *Config) PreviewEnabled() bool {
	return c.SanityReadToken != "" && c.PreviewSecretHash != ""
}

var levels = map[string]slog.Level{
	"debug": slog.LevelDebug,
	"info":  slog.LevelInfo,
	"warn":  slog.LevelWarn,
	"error": slog.LevelError,
}

// SlogLevel returns the configured log level.
func (c *Config) SlogLevel() slog.Level {
	return levels[strings.ToLower(c.LogLevel)]
}

// envOrDefault reads an environment variable, returning a fallback if unset or empty.
func envOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
