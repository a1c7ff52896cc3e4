// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package imaging builds URLs for the hosted image transform service. Asset
// references carry the original dimensions and format, so sizing, cropping
// and srcset generation happen without ever downloading the image.
package imaging

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"rooters/internal/models"
)

// DefaultCDN is the image service host.
const DefaultCDN = "https://cdn.sanity.io"

// Variant describes a single responsive image width.
type Variant struct {
	Name  string // e.g. "thumb", "sm", "md", "lg"
	Width int    // target width in pixels
}

// DefaultVariants defines the standard breakpoints for responsive images.
var DefaultVariants = []Variant{
	{Name: "thumb", Width: 320},
	{Name: "sm", Width: 640},
	{Name: "md", Width: 1024},
	{Name: "lg", Width: 1920},
}

// Asset is a parsed image reference.
type Asset struct {
	ID     string
	Width  int
	Height int
	Format string
}

// ErrInvalidRef is returned for references that are not image assets.
var ErrInvalidRef = errors.New("imaging: invalid image reference")

// ParseRef parses "image-<id>-<w>x<h>-<format>".
func ParseRef(ref string) (Asset, error) {
	parts := strings.Split(ref, "-")
	if len(parts) != 4 || parts[0] != "image" || parts[1] == "" || parts[3] == "" {
		return Asset{}, fmt.Errorf("%w: %q", ErrInvalidRef, ref)
	}
	w, h, ok := strings.Cut(parts[2], "x")
	if !ok {
		return Asset{}, fmt.Errorf("%w: %q", ErrInvalidRef, ref)
	}
	width, err := strconv.Atoi(w)
	if err != nil || width <= 0 {
		return Asset{}, fmt.Errorf("%w: %q", ErrInvalidRef, ref)
	}
	height, err := strconv.Atoi(h)
	if err != nil || height <= 0 {
		return Asset{}, fmt.Errorf("%w: %q", ErrInvalidRef, ref)
	}
	return Asset{ID: parts[1], Width: width, Height: height, Format: parts[3]}, nil
}

// Builder produces transform URLs for one project and dataset.
type Builder struct {
	base      string
	projectID string
	dataset   string
}

// NewBuilder returns a Builder. An empty cdn uses DefaultCDN.
func NewBuilder(cdn, projectID, dataset string) *Builder {
	if cdn == "" {
		cdn = DefaultCDN
	}
	return &Builder{base: strings.TrimRight(cdn, "/"), projectID: projectID, dataset: dataset}
}

// URL returns a transform URL sized to w by h, cropped around the editor's
// focal point. Zero w or h leaves that dimension free. An image without a
// valid asset yields "", which templates treat as no image.
func (b *Builder) URL(img *models.Image, w, h int) string {
	if b == nil || !img.HasAsset() {
		return ""
	}
	a, err := ParseRef(img.Asset.Ref)
	if err != nil {
		return ""
	}

	var q []string
	if rect := cropRect(a, img.Crop); rect != "" {
		q = append(q, "rect="+rect)
	}
	if w > 0 {
		q = append(q, "w="+strconv.Itoa(w))
	}
	if h > 0 {
		q = append(q, "h="+strconv.Itoa(h))
	}
	if w > 0 && h > 0 {
		q = append(q, "fit=crop")
		if img.Hotspot != nil {
			q = append(q,
				"crop=focalpoint",
				"fp-x="+fraction(img.Hotspot.X),
				"fp-y="+fraction(img.Hotspot.Y),
			)
		}
	}
	q = append(q, "auto=format")

	return fmt.Sprintf("%s/images/%s/%s/%s-%dx%d.%s?%s",
		b.base, b.projectID, b.dataset, a.ID, a.Width, a.Height, a.Format, strings.Join(q, "&"))
}

// Srcset returns a srcset attribute value at each variant width, keeping the
// w:h aspect ratio. Variants wider than the original are skipped to avoid
// upscaling, but the smallest variant is always kept.
func (b *Builder) Srcset(img *models.Image, w, h int, variants []Variant) string {
	if b == nil || !img.HasAsset() {
		return ""
	}
	a, err := ParseRef(img.Asset.Ref)
	if err != nil {
		return ""
	}
	if len(variants) == 0 {
		variants = DefaultVariants
	}

	var entries []string
	for i, v := range variants {
		if v.Width > a.Width && i > 0 {
			continue
		}
		vh := 0
		if w > 0 && h > 0 {
			vh = int(math.Round(float64(v.Width) * float64(h) / float64(w)))
		}
		entries = append(entries, b.URL(img, v.Width, vh)+" "+strconv.Itoa(v.Width)+"w")
	}
	return strings.Join(entries, ", ")
}

// cropRect converts fractional edge crops into a pixel rectangle of the
// original, "left,top,width,height". No crop or a degenerate one yields "".
func cropRect(a Asset, c *models.Crop) string {
	if c == nil || (c.Top == 0 && c.Bottom == 0 && c.Left == 0 && c.Right == 0) {
		return ""
	}
	left := int(math.Round(clamp01(c.Left) * float64(a.Width)))
	top := int(math.Round(clamp01(c.Top) * float64(a.Height)))
	width := int(math.Round((1 - clamp01(c.Left) - clamp01(c.Right)) * float64(a.Width)))
	height := int(math.Round((1 - clamp01(c.Top) - clamp01(c.Bottom)) * float64(a.Height)))
	if width <= 0 || height <= 0 {
		return ""
	}
	return fmt.Sprintf("%d,%d,%d,%d", left, top, width, height)
}

func fraction(f float64) string {
	return strconv.FormatFloat(clamp01(f), 'f', -1, 64)
}

func clamp01(f float64) float64 {
	return math.Max(0, math.Min(1, f))
}
