// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package sections

import (
	"rooters/internal/carousel"
	"rooters/internal/models"
)

// HeroView is a resolved hero banner.
type HeroView struct {
	Variant string
	Slides  []HeroSlideView
	// Carousel is true when there is more than one slide; only then do
	// indicators render and the browser start a timer.
	Carousel   bool
	IntervalMS int64
}

// HeroSlideView is one resolved hero frame.
type HeroSlideView struct {
	Index       int
	Heading     string
	Subheading  string
	Paragraph   string
	Image       *models.Image
	ImageAlt    string
	CTA         *Link
	SecondCTA   *Link
	SocialProof string
}

// IsHome reports whether the hero uses the home carousel layout.
func (h *HeroView) IsHome() bool {
	return h.Variant == models.HeroVariantHome
}

// First returns the first slide. Default-variant heroes only have one.
func (h *HeroView) First() HeroSlideView {
	return h.Slides[0]
}

// Hero resolves a hero section. A home hero with slides uses them; any
// other hero becomes one slide from its flat fields. Slides with neither a
// heading nor an image are dropped, and a hero with no slides left is nil.
func Hero(h *models.HeroSection) *HeroView {
	if h == nil {
		return nil
	}

	variant := h.Variant
	if variant != models.HeroVariantHome {
		variant = models.HeroVariantDefault
	}

	raw := []models.HeroSlide{h.HeroSlide}
	if variant == models.HeroVariantHome && len(h.Slides) > 0 {
		raw = h.Slides
	}

	var slides []HeroSlideView
	for _, s := range raw {
		if s.Heading == "" && !s.Image.HasAsset() {
			continue
		}
		img := s.Image
		if !img.HasAsset() {
			img = nil
		}
		slides = append(slides, HeroSlideView{
			Index:       len(slides),
			Heading:     s.Heading,
			Subheading:  s.Subheading,
			Paragraph:   s.Paragraph,
			Image:       img,
			ImageAlt:    img.AltOr(s.Heading),
			CTA:         Pair(s.CTAText, s.CTALink),
			SecondCTA:   Pair(s.SecondCTAText, s.SecondCTALink),
			SocialProof: orDefault(s.SocialProofText, heroDefaults.SocialProof),
		})
	}
	if len(slides) == 0 {
		return nil
	}

	return &HeroView{
		Variant:    variant,
		Slides:     slides,
		Carousel:   variant == models.HeroVariantHome && carousel.HasControls(len(slides)),
		IntervalMS: carousel.DefaultInterval.Milliseconds(),
	}
}
