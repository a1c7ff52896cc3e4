// Package main is the entry point for the Rooters site server.
// It loads configuration, connects to services, sets up routing, and starts
// the HTTP server with graceful shutdown support.
package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/time/rate"

	"rooters/internal/cache"
	"rooters/internal/config"
	"rooters/internal/content"
	"rooters/internal/handlers"
	"rooters/internal/imaging"
	"rooters/internal/middleware"
	"rooters/internal/render"
	"rooters/internal/resolver"
	"rooters/internal/richtext"
	"rooters/internal/router"
	"rooters/internal/session"
)

func main() {
	// Load configuration from environment variables.
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	// Structured logger: JSON in production, text in development.
	opts := &slog.HandlerOptions{Level: cfg.SlogLevel()}
	var handler slog.Handler = slog.NewJSONHandler(os.Stdout, opts)
	if cfg.IsDev() {
		handler = slog.NewTextHandler(os.Stdout, opts)
	}
	slog.SetDefault(slog.New(handler))

	slog.Info("configuration loaded",
		"env", cfg.Env,
		"addr", cfg.Addr(),
		"site", cfg.SiteURL,
		"dataset", cfg.SanityDataset,
		"preview", cfg.PreviewEnabled(),
	)

	// Content API clients. Published reads go through the CDN; drafts need
	// the token and the uncached host. Both share one outbound limiter.
	var limiter *rate.Limiter
	if cfg.ContentRateLimit > 0 {
		limiter = rate.NewLimiter(rate.Limit(cfg.ContentRateLimit), cfg.ContentRateBurst)
	}
	published, err := content.NewClient(content.Config{
		Variant:     "cdn",
		ProjectID:   cfg.SanityProjectID,
		Dataset:     cfg.SanityDataset,
		APIVersion:  cfg.SanityAPIVersion,
		UseCDN:      cfg.SanityUseCDN,
		Perspective: content.PerspectivePublished,
		Timeout:     cfg.ContentTimeout,
		Limiter:     limiter,
	})
	if err != nil {
		slog.Error("failed to initialize content client", "error", err)
		os.Exit(1)
	}
	fetcher := &content.Switch{Published: published}
	if cfg.PreviewEnabled() {
		drafts, err := content.NewClient(content.Config{
			Variant:     "preview",
			ProjectID:   cfg.SanityProjectID,
			Dataset:     cfg.SanityDataset,
			APIVersion:  cfg.SanityAPIVersion,
			Token:       cfg.SanityReadToken,
			Perspective: content.PerspectiveDrafts,
			Timeout:     cfg.ContentTimeout,
			Limiter:     limiter,
		})
		if err != nil {
			slog.Error("failed to initialize preview content client", "error", err)
			os.Exit(1)
		}
		fetcher.Preview = drafts
	}

	// Connect to Valkey (revalidation cache + preview sessions). The site
	// still serves without it: every request renders and preview is off.
	var (
		pages        cache.Pages
		loadSessions middleware.PreviewSessions
		sessions     handlers.PreviewSessions
	)
	valkeyClient, err := cache.ConnectValkey(cfg.ValkeyHost, cfg.ValkeyPort, cfg.ValkeyPassword, cfg.ValkeyDB)
	if err != nil {
		slog.Error("valkey unavailable, serving without page cache or preview", "error", err)
	} else {
		defer valkeyClient.Close()

		pageCache := cache.NewPageCache(valkeyClient)
		// Rendered pages from a previous deploy may use old markup.
		pageCache.InvalidateAll(context.Background())
		pages = pageCache

		if cfg.PreviewEnabled() {
			store := session.NewStore(valkeyClient, !cfg.IsDev())
			loadSessions, sessions = store, store
		}
	}

	// Rendering: image URLs, rich text and the page templates.
	images := imaging.NewBuilder(imaging.DefaultCDN, cfg.SanityProjectID, cfg.SanityDataset)
	renderer, err := render.New(images)
	if err != nil {
		slog.Error("failed to initialize template renderer", "error", err)
		os.Exit(1)
	}

	// Create handler groups with their dependencies.
	site := render.Site{Name: cfg.SiteName, URL: cfg.SiteURL}
	publicHandlers := handlers.NewPublic(resolver.New(fetcher), renderer, richtext.New(images), pages, site)
	previewHandlers := handlers.NewPreview(sessions, cfg.PreviewSecretHash)

	// Preview entry is throttled per client IP.
	previewLimit := middleware.NewRateLimiter(10, time.Minute)
	defer previewLimit.Stop()

	// Set up the Chi router with all middleware and routes.
	r := router.New(loadSessions, publicHandlers, previewHandlers, previewLimit)

	// Create the HTTP server with sensible timeouts. WriteTimeout covers
	// the content API timeout plus rendering.
	srv := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      r,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: cfg.ContentTimeout + 20*time.Second,
		IdleTimeout:  120 * time.Second,
	}

	// Start the server in a goroutine so we can listen for shutdown signals.
	go func() {
		slog.Info("server starting", "addr", cfg.Addr())
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("server failed to start", "error", err)
			os.Exit(1)
		}
	}()

	// Graceful shutdown: wait for SIGINT or SIGTERM, then drain connections.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit
	slog.Info("shutdown signal received", "signal", sig)

	// Give active requests up to 30 seconds to complete.
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("server forced to shutdown", "error", err)
		os.Exit(1)
	}

	slog.Info("server stopped gracefully")
}
