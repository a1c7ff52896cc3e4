// Package web provides embedded static assets (CSS, JS) for the public site,
// served at /static/.
package web

import "embed"

// StaticFS embeds the web/static/ directory tree: the site stylesheet and
// the carousel, menu and back-to-top script.
//
//go:embed all:static
var StaticFS embed.FS
