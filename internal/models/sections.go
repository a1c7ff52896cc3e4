// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

// Hero variants.
const (
	HeroVariantHome    = "home"
	HeroVariantDefault = "default"
)

// HeroSection is the banner at the top of a page. A home hero with slides
// renders them as a carousel; otherwise the flat fields form a single slide.
type HeroSection struct {
	Variant string      `json:"variant"`
	Slides  []HeroSlide `json:"slides,omitempty"`
	HeroSlide
}

// HeroSlide holds the copy, image and calls to action of one hero frame.
type HeroSlide struct {
	Key             string `json:"_key,omitempty"`
	Heading         string `json:"heading,omitempty"`
	Subheading      string `json:"subheading,omitempty"`
	Paragraph       string `json:"paragraph,omitempty"`
	Image           *Image `json:"image,omitempty"`
	CTAText         string `json:"ctaText,omitempty"`
	CTALink         string `json:"ctaLink,omitempty"`
	SecondCTAText   string `json:"secondCtaText,omitempty"`
	SecondCTALink   string `json:"secondCtaLink,omitempty"`
	SocialProofText string `json:"socialProofText,omitempty"`
}

// AboutUsSection introduces the business.
type AboutUsSection struct {
	Heading     string    `json:"heading"`
	Subheading  string    `json:"subheading,omitempty"`
	Description string    `json:"description,omitempty"`
	Image       *Image    `json:"image,omitempty"`
	Features    []Feature `json:"features,omitempty"`
	CTAText     string    `json:"ctaText,omitempty"`
	CTALink     string    `json:"ctaLink,omitempty"`
}

// Feature is a bullet in the about section.
type Feature struct {
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	Icon        string `json:"icon,omitempty"`
}

// PricingSection lists coupon-style offers.
type PricingSection struct {
	Heading    string        `json:"heading"`
	Subheading string        `json:"subheading,omitempty"`
	Plans      []PricingPlan `json:"plans,omitempty"`
}

type PricingPlan struct {
	Key         string   `json:"_key,omitempty"`
	Title       string   `json:"title"`
	Price       string   `json:"price"`
	Currency    string   `json:"currency,omitempty"`
	Frequency   string   `json:"frequency,omitempty"`
	Description string   `json:"description,omitempty"`
	IsPopular   bool     `json:"isPopular,omitempty"`
	Features    []string `json:"features,omitempty"`
	CTAText     string   `json:"ctaText,omitempty"`
	CTALink     string   `json:"ctaLink,omitempty"`
}

type TestimonialSectionData struct {
	Heading      string            `json:"heading,omitempty"`
	Description  string            `json:"description,omitempty"`
	MainImage    *Image            `json:"mainImage,omitempty"`
	Testimonials []TestimonialItem `json:"testimonials,omitempty"`
}

// TestimonialItem is one customer review. Rating is nil when the author left
// it blank; the content store does not enforce whole numbers.
type TestimonialItem struct {
	Key    string   `json:"_key,omitempty"`
	Author string   `json:"author"`
	Role   string   `json:"role,omitempty"`
	Quote  string   `json:"quote"`
	Rating *float64 `json:"rating,omitempty"`
}

type GuaranteesSectionData struct {
	Kicker              string          `json:"kicker,omitempty"`
	Heading             string          `json:"heading"`
	Intro               string          `json:"intro,omitempty"`
	Items               []GuaranteeItem `json:"items,omitempty"`
	PrimaryButtonText   string          `json:"primaryButtonText,omitempty"`
	PrimaryButtonLink   string          `json:"primaryButtonLink,omitempty"`
	SecondaryButtonText string          `json:"secondaryButtonText,omitempty"`
	SecondaryButtonLink string          `json:"secondaryButtonLink,omitempty"`
}

type GuaranteeItem struct {
	Key         string   `json:"_key,omitempty"`
	Title       string   `json:"title"`
	Description string   `json:"description,omitempty"`
	Icon        string   `json:"icon,omitempty"`
	Points      []string `json:"points,omitempty"`
}

type ProcessSectionData struct {
	Heading     string        `json:"heading,omitempty"`
	Description string        `json:"description,omitempty"`
	Steps       []ProcessStep `json:"steps,omitempty"`
}

type ProcessStep struct {
	Key         string `json:"_key,omitempty"`
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	Icon        string `json:"icon,omitempty"`
}

type StatsSectionData struct {
	Heading     string `json:"heading,omitempty"`
	Description string `json:"description,omitempty"`
	Stats       []Stat `json:"stats,omitempty"`
}

type Stat struct {
	Key   string `json:"_key,omitempty"`
	Value string `json:"value"`
	Label string `json:"label"`
	Icon  string `json:"icon,omitempty"`
}

type ServiceAreasSection struct {
	Heading     string        `json:"heading,omitempty"`
	Description string        `json:"description,omitempty"`
	Areas       []ServiceArea `json:"areas,omitempty"`
}

type ServiceArea struct {
	City   string `json:"city"`
	Region string `json:"region,omitempty"`
}

type TeamSection struct {
	Heading     string       `json:"heading,omitempty"`
	Description string       `json:"description,omitempty"`
	Members     []TeamMember `json:"members,omitempty"`
}

type TeamMember struct {
	Key   string `json:"_key,omitempty"`
	Name  string `json:"name"`
	Role  string `json:"role,omitempty"`
	Bio   string `json:"bio,omitempty"`
	Image *Image `json:"image,omitempty"`
}
