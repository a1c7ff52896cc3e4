// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package slug generates URL-friendly slugs and checks incoming ones.
package slug

import (
	"regexp"
	"strings"
	"unicode"
)

var (
	// nonAlphanumeric matches anything that isn't a letter, digit, or space.
	nonAlphanumeric = regexp.MustCompile(`[^a-z0-9\s-]`)
	// multipleHyphens collapses consecutive hyphens into one.
	multipleHyphens = regexp.MustCompile(`-{2,}`)
)

// MaxLength is the longest slug the content store accepts.
const MaxLength = 96

// Generate creates a URL-friendly slug from the given string.
// Example: "Hello, World! 2026" → "hello-world-2026"
func Generate(s string) string {
	result := strings.ToLower(strings.TrimSpace(s))
	result = nonAlphanumeric.ReplaceAllString(result, "")
	result = strings.ReplaceAll(result, " ", "-")
	result = multipleHyphens.ReplaceAllString(result, "-")
	result = strings.Trim(result, "-")
	return result
}

// Valid reports whether s can name a document in a route: not blank, at most
// MaxLength bytes, one path segment and free of control characters. Editors
// may store slugs Generate would never emit, so whether such a document
// exists is left to the content store.
func Valid(s string) bool {
	if strings.TrimSpace(s) == "" || len(s) > MaxLength {
		return false
	}
	return !strings.ContainsRune(s, '/') && !strings.ContainsFunc(s, unicode.IsControl)
}
