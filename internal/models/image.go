// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

// Image is an asset reference plus editorial metadata. The pixels live in
// the hosted image service; see the imaging package for URL building.
type Image struct {
	Asset   *AssetRef `json:"asset,omitempty"`
	Alt     string    `json:"alt,omitempty"`
	Caption string    `json:"caption,omitempty"`
	Hotspot *Hotspot  `json:"hotspot,omitempty"`
	Crop    *Crop     `json:"crop,omitempty"`
}

// AssetRef points at an uploaded asset, e.g. "image-abc123-1200x800-jpg".
type AssetRef struct {
	Ref string `json:"_ref"`
}

// Hotspot is the focal point chosen by the editor, in 0..1 fractions of the
// original image.
type Hotspot struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// Crop is the fraction trimmed from each edge of the original image.
type Crop struct {
	Top    float64 `json:"top"`
	Bottom float64 `json:"bottom"`
	Left   float64 `json:"left"`
	Right  float64 `json:"right"`
}

// HasAsset reports whether the image references an uploaded asset.
func (i *Image) HasAsset() bool {
	return i != nil && i.Asset != nil && i.Asset.Ref != ""
}

// AltOr returns the alt text, or fallback when the editor left it empty.
func (i *Image) AltOr(fallback string) string {
	if i != nil && i.Alt != "" {
		return i.Alt
	}
	return fallback
}
