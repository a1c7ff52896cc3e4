// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package middleware

import (
	"context"
	"log/slog"
	"net/http"

	"rooters/internal/content"
	"rooters/internal/session"
)

// PreviewKey is the context key for the preview session data.
const PreviewKey contextKey = "preview"

// PreviewSessions looks up the preview session for a request.
type PreviewSessions interface {
	Get(ctx context.Context, r *http.Request) (*session.Data, error)
}

// LoadPreview switches the request to draft content when the browser holds
// a live preview session. It does NOT enforce anything: without a session
// the request is served published content.
func LoadPreview(store PreviewSessions) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			data, err := store.Get(r.Context(), r)
			if err != nil {
				// Log but don't block; serve published content.
				slog.Warn("preview session lookup failed", "error", err, "request_id", RequestIDFromCtx(r.Context()))
				next.ServeHTTP(w, r)
				return
			}

			if data != nil {
				ctx := context.WithValue(r.Context(), PreviewKey, data)
				r = r.WithContext(content.WithPreview(ctx))
				// Draft markup must never land in a shared cache.
				w.Header().Set("Cache-Control", "private, no-store")
			}

			next.ServeHTTP(w, r)
		})
	}
}

// PreviewFromCtx returns the preview session, or nil on published requests.
func PreviewFromCtx(ctx context.Context) *session.Data {
	data, _ := ctx.Value(PreviewKey).(*session.Data)
	return data
}

// ContentMemo scopes a content fetch memo to each request so the page
// resolver and the chrome share identical queries.
func ContentMemo(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		next.ServeHTTP(w, r.WithContext(content.WithMemo(r.Context())))
	})
}
