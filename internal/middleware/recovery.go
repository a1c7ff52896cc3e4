// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package middleware

import (
	"html"
	"log/slog"
	"net/http"
	"runtime/debug"
	"strings"
)

// panicPage is served when rendering itself has failed, so it depends on
// nothing but the stylesheet.
const panicPage = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>Internal Server Error</title>
<link rel="stylesheet" href="/static/css/site.css">
</head>
<body class="error-page">
<main class="container error">
<p class="kicker">500 Error</p>
<h1>Internal Server Error</h1>
<p>We're sorry, but something unexpected happened. Please try again.</p>
<p class="reference">Reference: {{id}}</p>
<p><a class="btn btn-primary" href="/">Go Home</a></p>
</main>
</body>
</html>
`

// Recoverer catches panics in downstream handlers, logs the stack trace,
// and serves a static 500 page instead of crashing the server.
func Recoverer(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				if rec == http.ErrAbortHandler {
					panic(rec)
				}
				id := RequestIDFromCtx(r.Context())
				slog.Error("panic recovered",
					"error", rec,
					"method", r.Method,
					"path", r.URL.Path,
					"request_id", id,
					"stack", string(debug.Stack()),
				)
				w.Header().Set("Content-Type", "text/html; charset=utf-8")
				w.Header().Set("Cache-Control", "no-store")
				w.WriteHeader(http.StatusInternalServerError)
				w.Write([]byte(strings.Replace(panicPage, "{{id}}", html.EscapeString(id), 1)))
			}
		}()

		next.ServeHTTP(w, r)
	})
}
