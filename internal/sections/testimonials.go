// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package sections

import (
	"math"
	"strings"
	"unicode/utf8"

	"rooters/internal/carousel"
	"rooters/internal/models"
)

// MaxRating is the number of stars a testimonial card shows.
const MaxRating = 5

type TestimonialsView struct {
	Kicker      string
	Heading     string
	Description string
	Image       *models.Image
	Items       []TestimonialView
	// Pages groups Items for the desktop grid.
	Pages [][]TestimonialView
	// DesktopCarousel and MobileCarousel report whether each view needs
	// navigation and a timer.
	DesktopCarousel bool
	MobileCarousel  bool
	IntervalMS      int64
}

type TestimonialView struct {
	Index   int
	Author  string
	Initial string
	Role    string
	Quote   string
	Rating  int
	// Stars has MaxRating entries; true is a filled star.
	Stars []bool
}

// Testimonials resolves the testimonials section. Items need an author and
// a quote; with none left the section is nil.
func Testimonials(t *models.TestimonialSectionData) *TestimonialsView {
	if t == nil {
		return nil
	}

	var items []TestimonialView
	for _, it := range t.Testimonials {
		if strings.TrimSpace(it.Author) == "" || strings.TrimSpace(it.Quote) == "" {
			continue
		}
		rating := ClampRating(it.Rating)
		items = append(items, TestimonialView{
			Index:   len(items),
			Author:  it.Author,
			Initial: initial(it.Author),
			Role:    orDefault(it.Role, testimonialDefaults.Role),
			Quote:   it.Quote,
			Rating:  rating,
			Stars:   stars(rating),
		})
	}
	if len(items) == 0 {
		return nil
	}

	v := &TestimonialsView{
		Kicker:      testimonialDefaults.Kicker,
		Heading:     orDefault(t.Heading, testimonialDefaults.Heading),
		Description: t.Description,
		Items:       items,
		IntervalMS:  carousel.DefaultInterval.Milliseconds(),
	}
	if t.MainImage.HasAsset() {
		v.Image = t.MainImage
	}
	for start := 0; start < len(items); start += carousel.DesktopPerPage {
		end := min(start+carousel.DesktopPerPage, len(items))
		v.Pages = append(v.Pages, items[start:end])
	}
	v.DesktopCarousel = carousel.HasControls(len(v.Pages))
	v.MobileCarousel = carousel.HasControls(len(items))
	return v
}

// ClampRating floors r into [0, MaxRating]. A missing rating counts as the
// default rating.
func ClampRating(r *float64) int {
	if r == nil || math.IsNaN(*r) {
		return testimonialDefaults.Rating
	}
	v := math.Floor(*r)
	switch {
	case v < 0:
		return 0
	case v > MaxRating:
		return MaxRating
	}
	return int(v)
}

func stars(rating int) []bool {
	s := make([]bool, MaxRating)
	for i := range s {
		s[i] = i < rating
	}
	return s
}

func initial(name string) string {
	r, _ := utf8.DecodeRuneInString(strings.TrimSpace(name))
	if r == utf8.RuneError {
		return "A"
	}
	return strings.ToUpper(string(r))
}
