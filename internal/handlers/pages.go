// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"rooters/internal/models"
	"rooters/internal/sections"
)

// Page bodies, one per route. Each lists its sections in render order; a
// nil section is skipped by the template.

type HomePage struct {
	Hero         *sections.HeroView
	Stats        *sections.StatsView
	Services     *sections.ServicesView
	About        *sections.AboutView
	Guarantees   *sections.GuaranteesView
	Testimonials *sections.TestimonialsView
	Blog         *sections.BlogView
}

type AboutPage struct {
	Hero  *sections.HeroView
	About *sections.AboutView
	// FallbackHeading titles the page when it has no about section.
	FallbackHeading string
	Stats           *sections.StatsView
	Team            *sections.TeamView
}

type ServicesPage struct {
	Hero         *sections.HeroView
	Services     *sections.ServicesView
	Process      *sections.ProcessView
	Pricing      *sections.PricingView
	Areas        *sections.ServiceAreasView
	Guarantees   *sections.GuaranteesView
	Testimonials *sections.TestimonialsView
}

// ServicePage is /services/{slug}. Service is nil when the slug did not
// resolve.
type ServicePage struct {
	Slug    string
	Service *sections.ServiceDetailView
	Call    *sections.Link
}

func (p *ServicePage) setChrome(c *sections.ChromeView) {
	if ph := c.Footer.Phone; ph != nil && ph.Href != "" {
		p.Call = &sections.Link{Text: "Call " + ph.Display, Href: ph.Href}
	}
}

type BlogPage struct {
	Hero        *sections.HeroView
	Heading     string
	Description string
	Posts       []sections.PostCard
}

type PostPage struct {
	Slug string
	Post *sections.PostView
}

type ContactPage struct {
	Hero    *sections.HeroView
	Contact *sections.ContactView
}

type FAQPage struct {
	Hero *sections.HeroView
	FAQ  *sections.FAQView
}

type LegalPage struct {
	Slug  string
	Legal *sections.LegalView
}

type SitemapPage struct {
	Main      []sections.Link
	Services  []sections.Link
	Posts     []sections.Link
	MorePosts bool
	Legal     []sections.Link
}

type NotFoundPage struct {
	Call *sections.Link
}

func (p *NotFoundPage) setChrome(c *sections.ChromeView) {
	p.Call = c.Call
}

type ErrorPage struct {
	Retry     string
	Reference string
}

// chromeAware bodies take links from the resolved chrome.
type chromeAware interface {
	setChrome(c *sections.ChromeView)
}

// orEmpty lets page bodies be assembled from a page that did not resolve;
// every section then reads as absent.
func orEmpty(p *models.Page) *models.Page {
	if p == nil {
		return &models.Page{}
	}
	return p
}
