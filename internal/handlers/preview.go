// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"context"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"unicode"

	"golang.org/x/crypto/bcrypt"

	"rooters/internal/session"
)

// PreviewSessions is the part of session.Store the preview endpoints use.
type PreviewSessions interface {
	Create(ctx context.Context, w http.ResponseWriter, data *session.Data) error
	Destroy(ctx context.Context, w http.ResponseWriter, r *http.Request) error
}

// Preview groups the draft preview endpoints. Editors enter preview with a
// shared secret and leave it through the banner link.
type Preview struct {
	sessions   PreviewSessions
	secretHash []byte
}

// NewPreview creates the preview handler group. An empty secretHash
// disables preview and both endpoints answer 404.
func NewPreview(sessions PreviewSessions, secretHash string) *Preview {
	return &Preview{sessions: sessions, secretHash: []byte(secretHash)}
}

func (p *Preview) enabled() bool {
	return p.sessions != nil && len(p.secretHash) > 0
}

// Enter handles GET /api/preview?secret=...&redirect=/path.
func (p *Preview) Enter(w http.ResponseWriter, r *http.Request) {
	if !p.enabled() {
		http.NotFound(w, r)
		return
	}

	secret := r.URL.Query().Get("secret")
	if secret == "" || bcrypt.CompareHashAndPassword(p.secretHash, []byte(secret)) != nil {
		slog.Warn("preview secret rejected", "remote", r.RemoteAddr)
		http.Error(w, "Invalid preview secret", http.StatusUnauthorized)
		return
	}

	landing := safeRedirect(r.URL.Query().Get("redirect"))
	data := &session.Data{Landing: landing}
	if err := p.sessions.Create(r.Context(), w, data); err != nil {
		slog.Error("preview session create failed", "error", err)
		http.Error(w, "Could not start preview", http.StatusInternalServerError)
		return
	}

	slog.Info("preview started", "session", data.ID, "landing", landing)
	w.Header().Set("Cache-Control", "no-store")
	http.Redirect(w, r, landing, http.StatusTemporaryRedirect)
}

// Exit handles GET /api/preview/exit.
func (p *Preview) Exit(w http.ResponseWriter, r *http.Request) {
	if !p.enabled() {
		http.NotFound(w, r)
		return
	}

	if err := p.sessions.Destroy(r.Context(), w, r); err != nil {
		slog.Error("preview session destroy failed", "error", err)
	}

	w.Header().Set("Cache-Control", "no-store")
	http.Redirect(w, r, safeRedirect(r.URL.Query().Get("redirect")), http.StatusTemporaryRedirect)
}

// safeRedirect keeps redirects on this site. Anything that is not a plain
// absolute path lands on "/". Browsers drop tabs and newlines and read "\"
// as "/", so any of those could turn a path into a host.
func safeRedirect(target string) string {
	if !strings.HasPrefix(target, "/") || strings.HasPrefix(target, "//") {
		return "/"
	}
	if strings.ContainsRune(target, '\\') || strings.ContainsFunc(target, unicode.IsControl) {
		return "/"
	}
	u, err := url.Parse(target)
	if err != nil || u.Scheme != "" || u.Host != "" {
		return "/"
	}
	return target
}
