// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package sections

import (
	"rooters/internal/icons"
	"rooters/internal/models"
)

type AboutView struct {
	Heading     string
	Subheading  string
	Description string
	Image       *models.Image
	ImageAlt    string
	Badge       string
	Features    []FeatureView
	CTA         *Link
}

type FeatureView struct {
	Title       string
	Description string
	Icon        string
}

// About resolves the about section. It is nil without a heading.
func About(a *models.AboutUsSection) *AboutView {
	if a == nil || a.Heading == "" {
		return nil
	}

	v := &AboutView{
		Heading:     a.Heading,
		Subheading:  a.Subheading,
		Description: a.Description,
		Badge:       aboutDefaults.Badge,
		CTA:         Pair(a.CTAText, a.CTALink),
	}
	if a.Image.HasAsset() {
		v.Image = a.Image
		v.ImageAlt = a.Image.AltOr(a.Heading)
	}
	for _, f := range a.Features {
		if f.Title == "" {
			continue
		}
		v.Features = append(v.Features, FeatureView{
			Title:       f.Title,
			Description: f.Description,
			Icon:        icons.Resolve(f.Icon),
		})
	}
	return v
}
