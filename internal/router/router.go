// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package router sets up all HTTP routes and middleware chains for the
// Rooters site. Public pages share one middleware stack; the preview
// endpoints add a rate limit on top.
package router

import (
	"io/fs"
	"net/http"

	"github.com/go-chi/chi/v5"

	"rooters/internal/handlers"
	"rooters/internal/imaging"
	"rooters/internal/metrics"
	"rooters/internal/middleware"
	"rooters/internal/models"
	"rooters/web"
)

// New creates and returns the configured Chi router with all middleware
// and routes wired up. sessions may be nil when preview is unavailable;
// requests are then always served published content.
func New(sessions middleware.PreviewSessions, public *handlers.Public, preview *handlers.Preview, previewLimit *middleware.RateLimiter) chi.Router {
	r := chi.NewRouter()

	// Global middleware, applied to every request.
	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)
	r.Use(middleware.Logger)
	r.Use(metrics.Instrument)
	r.Use(middleware.SecureHeaders(imaging.DefaultCDN))
	r.Use(middleware.ContentMemo)
	if sessions != nil {
		r.Use(middleware.LoadPreview(sessions))
	}

	// Operational endpoints.
	r.Get("/health", healthHandler)
	r.Handle("/metrics", metrics.Handler())
	r.Handle("/static/*", staticHandler())

	// Draft preview, rate limited against secret guessing.
	r.Route("/api/preview", func(r chi.Router) {
		r.Use(previewLimit.Middleware)
		r.Get("/", preview.Enter)
		r.Get("/exit", preview.Exit)
	})

	// Public site.
	r.Get("/", public.Home)
	r.Get("/about", public.About)
	r.Get("/services", public.Services)
	r.Get("/services/{slug}", public.Service)
	r.Get("/blog", public.Blog)
	r.Get("/blog/{slug}", public.Post)
	r.Get("/contact", public.Contact)
	r.Get("/faq", public.FAQ)
	r.Get("/privacy", public.Legal(models.SlugPrivacy))
	r.Get("/terms", public.Legal(models.SlugTerms))
	r.Get("/sitemap", public.Sitemap)
	r.Get("/sitemap.xml", public.SitemapXML)
	r.Get("/robots.txt", public.Robots)

	r.NotFound(public.NotFound)

	return r
}

// healthHandler returns a simple JSON health check response.
func healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"ok"}`))
}

// staticHandler serves the embedded CSS and JS. Asset names are stable, so
// browsers revalidate after a day.
func staticHandler() http.Handler {
	sub, err := fs.Sub(web.StaticFS, "static")
	if err != nil {
		panic(err) // embed path is fixed at compile time
	}
	files := http.StripPrefix("/static/", http.FileServer(http.FS(sub)))
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Cache-Control", "public, max-age=86400")
		files.ServeHTTP(w, r)
	})
}
