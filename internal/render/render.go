// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package render provides HTML template rendering for the public site.
// Every page template is parsed together with the shared layout and the
// section library, and rendered into a buffer so handlers can cache the
// bytes before writing them.
package render

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io/fs"
	"path"
	"strings"

	"rooters/internal/icons"
	"rooters/internal/imaging"
	"rooters/internal/models"
	"rooters/internal/sections"
)

//go:embed templates
var templateFS embed.FS

// Site identifies the public site in page metadata.
type Site struct {
	Name string
	URL  string
}

// PageData holds everything a page template can reach. Body is the page's
// own view, defined by the handler.
type PageData struct {
	Site        Site
	Title       string // Page title for <title>, without the site suffix
	Description string
	Path        string
	Chrome      *sections.ChromeView
	Preview     bool
	RequestID   string
	Body        any
}

// FullTitle returns "<title> | <site>", or the site name alone.
func (d *PageData) FullTitle() string {
	if d.Title == "" || d.Title == d.Site.Name {
		return d.Site.Name
	}
	return d.Title + " | " + d.Site.Name
}

// Canonical returns the absolute URL of the page.
func (d *PageData) Canonical() string {
	return strings.TrimRight(d.Site.URL, "/") + d.Path
}

// Renderer handles template parsing and execution for public pages.
type Renderer struct {
	templates map[string]*template.Template
	funcMap   template.FuncMap
}

// New creates a Renderer by parsing all page templates from the embedded
// filesystem. images resolves image references inside templates.
func New(images *imaging.Builder) (*Renderer, error) {
	r := &Renderer{
		templates: make(map[string]*template.Template),
		funcMap:   funcMap(images),
	}

	// Layout and sections are shared by every page.
	shared, err := template.New("shared").Funcs(r.funcMap).ParseFS(templateFS,
		"templates/layout/*.html", "templates/sections/*.html")
	if err != nil {
		return nil, fmt.Errorf("parse shared templates: %w", err)
	}

	pages, err := fs.Glob(templateFS, "templates/pages/*.html")
	if err != nil {
		return nil, fmt.Errorf("glob page templates: %w", err)
	}
	for _, page := range pages {
		name := strings.TrimSuffix(path.Base(page), ".html")

		tmpl, err := shared.Clone()
		if err != nil {
			return nil, fmt.Errorf("clone shared templates for %s: %w", name, err)
		}
		if _, err := tmpl.ParseFS(templateFS, page); err != nil {
			return nil, fmt.Errorf("parse template %s: %w", name, err)
		}
		r.templates[name] = tmpl
	}

	return r, nil
}

// Has reports whether a page template exists.
func (rn *Renderer) Has(name string) bool {
	_, ok := rn.templates[name]
	return ok
}

// Render executes the named page inside the base layout and returns the
// complete HTML. Nothing is written on failure, so callers can still send
// an error page.
func (rn *Renderer) Render(name string, data *PageData) ([]byte, error) {
	tmpl, ok := rn.templates[name]
	if !ok {
		return nil, fmt.Errorf("template %q not found", name)
	}

	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, "base", data); err != nil {
		return nil, fmt.Errorf("execute template %s: %w", name, err)
	}
	return buf.Bytes(), nil
}

func funcMap(images *imaging.Builder) template.FuncMap {
	return template.FuncMap{
		// icon renders a registry glyph; unknown names get the fallback.
		"icon": icons.SVG,
		// imageURL sizes an image for its slot. Zero means unconstrained.
		"imageURL": func(img *models.Image, w, h int) string {
			return images.URL(img, w, h)
		},
		"imageSrcset": func(img *models.Image, w, h int) string {
			return images.Srcset(img, w, h, nil)
		},
		// hasImage is true when the image has a renderable asset.
		"hasImage": func(img *models.Image) bool {
			return images.URL(img, 0, 0) != ""
		},
		"add": func(a, b int) int { return a + b },
		// isExternal reports whether a link leaves the site.
		"isExternal": func(href string) bool {
			return strings.HasPrefix(href, "http://") || strings.HasPrefix(href, "https://")
		},
		"href": href,
	}
}

// href lets phone and text-message links through the URL filter, which
// only trusts http, https and mailto. Everything else is escaped as usual.
func href(s string) any {
	scheme, _, ok := strings.Cut(s, ":")
	if ok && (strings.EqualFold(scheme, "tel") || strings.EqualFold(scheme, "sms")) {
		return template.URL(s)
	}
	return s
}
