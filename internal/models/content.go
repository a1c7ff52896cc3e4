// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package models defines the content shapes the site reads from the content
// store. Every section is optional: pointers are nil and slices are empty when
// an author has not filled a section in. Required-for-meaning fields are
// enforced by the section resolvers, not here.
package models

// DocumentType names a top-level document type in the content store.
type DocumentType string

const (
	DocumentTypePage         DocumentType = "page"
	DocumentTypeService      DocumentType = "service"
	DocumentTypePost         DocumentType = "post"
	DocumentTypeSiteSettings DocumentType = "siteSettings"
)

// Well-known page slugs. Each route expects a Page document with its slug,
// and tolerates it being absent.
const (
	SlugHome     = "home"
	SlugAbout    = "about"
	SlugServices = "services"
	SlugBlog     = "blog"
	SlugContact  = "contact"
	SlugFAQ      = "faq"
	SlugPrivacy  = "privacy-policy"
	SlugTerms    = "terms"
)

// Slug is the content store's slug object.
type Slug struct {
	Current string `json:"current"`
}

// Page is a route-level document aggregating optional sections.
type Page struct {
	ID                  string                  `json:"_id"`
	Title               string                  `json:"title"`
	Slug                Slug                    `json:"slug"`
	Hero                *HeroSection            `json:"hero,omitempty"`
	StatsSection        *StatsSectionData       `json:"statsSection,omitempty"`
	AboutUs             *AboutUsSection         `json:"aboutUs,omitempty"`
	Pricing             *PricingSection         `json:"pricing,omitempty"`
	TestimonialSection  *TestimonialSectionData `json:"testimonialSection,omitempty"`
	GuaranteesSection   *GuaranteesSectionData  `json:"guaranteesSection,omitempty"`
	ProcessSection      *ProcessSectionData     `json:"processSection,omitempty"`
	ServiceAreasSection *ServiceAreasSection    `json:"serviceAreasSection,omitempty"`
	TeamSection         *TeamSection            `json:"teamSection,omitempty"`
	FAQ                 *FaqSection             `json:"faq,omitempty"`
	Content             *LegalContent           `json:"content,omitempty"`
}

// ServiceItem is a standalone service document, queried independently of
// any Page.
type ServiceItem struct {
	ID               string           `json:"_id"`
	Title            string           `json:"title"`
	Slug             Slug             `json:"slug"`
	ShortDescription string           `json:"shortDescription,omitempty"`
	Icon             string           `json:"icon,omitempty"`
	MainImage        *Image           `json:"mainImage,omitempty"`
	Intro            string           `json:"intro,omitempty"`
	Highlights       []string         `json:"highlights,omitempty"`
	Benefits         []ServiceBenefit `json:"benefits,omitempty"`
	ServiceFAQ       []FaqItem        `json:"serviceFaq,omitempty"`
	Content          RichText         `json:"content,omitempty"`
}

// ServiceBenefit is one "why choose us" card on a service detail page.
type ServiceBenefit struct {
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
}

// Post is a blog entry.
type Post struct {
	ID          string   `json:"_id"`
	Title       string   `json:"title"`
	Slug        Slug     `json:"slug"`
	PublishedAt string   `json:"publishedAt,omitempty"`
	MainImage   *Image   `json:"mainImage,omitempty"`
	Excerpt     string   `json:"excerpt,omitempty"`
	Body        RichText `json:"body,omitempty"`
}

// FaqSection is the FAQ block embedded in the "faq" Page.
type FaqSection struct {
	Title       string    `json:"title,omitempty"`
	Description string    `json:"description,omitempty"`
	Items       []FaqItem `json:"items,omitempty"`
}

// FaqItem is a single question and answer.
type FaqItem struct {
	Question string `json:"question"`
	Answer   string `json:"answer,omitempty"`
}

// LegalContent is the rich body of a privacy or terms page.
type LegalContent struct {
	Heading     string   `json:"heading,omitempty"`
	LastUpdated string   `json:"lastUpdated,omitempty"`
	Body        RichText `json:"body,omitempty"`
}
