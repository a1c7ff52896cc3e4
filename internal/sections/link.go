// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package sections resolves raw content sections into view models. Each
// resolver applies the absence gate for its section (returning nil when the
// section should not render), fills optional copy from the defaults table,
// truncates lists, and resolves icons. Templates render a view with
// {{with}} and never make presence decisions of their own.
package sections

import (
	"net/url"
	"strings"
	"time"

	"rooters/internal/slug"
)

// Link is a call to action: visible text and a destination.
type Link struct {
	Text string
	Href string
}

// Pair returns a link only when both halves are present. A label without a
// destination, or the reverse, is treated as no link at all.
func Pair(text, href string) *Link {
	text, href = strings.TrimSpace(text), strings.TrimSpace(href)
	if text == "" || href == "" {
		return nil
	}
	return &Link{Text: text, Href: href}
}

// PairOr returns the authored pair, or def when the pair is incomplete.
func PairOr(text, href string, def Link) Link {
	if l := Pair(text, href); l != nil {
		return *l
	}
	return def
}

func orDefault(s, def string) string {
	if strings.TrimSpace(s) == "" {
		return def
	}
	return s
}

// ServiceHref is the detail path of the service stored under s.
func ServiceHref(s string) string {
	return "/services/" + url.PathEscape(s)
}

// PostHref is the detail path of the post stored under s.
func PostHref(s string) string {
	return "/blog/" + url.PathEscape(s)
}

// Routable reports whether a document slug can be linked to. Detail routes
// apply the same rule before fetching, so a link it allows always reaches
// the content store.
func Routable(s string) bool {
	return slug.Valid(s)
}

// FormatDate renders an ISO date or timestamp as "January 2, 2006". Values
// that do not parse are returned as written.
func FormatDate(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return ""
	}
	for _, layout := range []string{time.RFC3339Nano, time.RFC3339, "2006-01-02"} {
		if t, err := time.Parse(layout, s); err == nil {
			return t.Format("January 2, 2006")
		}
	}
	return s
}
