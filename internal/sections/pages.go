// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package sections

import (
	"html/template"

	"rooters/internal/models"
)

// ServiceDetailView is the body of /services/{slug}.
type ServiceDetailView struct {
	Title            string
	ShortDescription string
	Image            *models.Image
	ImageAlt         string
	Intro            string
	Highlights       []string
	Benefits         []models.ServiceBenefit
	Body             template.HTML
	FAQ              []FAQItemView
}

// ServiceDetail resolves a service document. body is the rendered rich text.
func ServiceDetail(s *models.ServiceItem, body template.HTML) *ServiceDetailView {
	if s == nil {
		return nil
	}
	v := &ServiceDetailView{
		Title:            orDefault(s.Title, "Service"),
		ShortDescription: s.ShortDescription,
		Intro:            s.Intro,
		Body:             body,
		FAQ:              FAQItems("service-faq", s.ServiceFAQ),
	}
	if s.MainImage.HasAsset() {
		v.Image = s.MainImage
		v.ImageAlt = s.MainImage.AltOr(v.Title)
	}
	for _, h := range s.Highlights {
		if h != "" {
			v.Highlights = append(v.Highlights, h)
		}
	}
	for _, b := range s.Benefits {
		if b.Title != "" {
			v.Benefits = append(v.Benefits, b)
		}
	}
	return v
}

// PostView is the body of /blog/{slug}.
type PostView struct {
	Title    string
	Date     string
	DateTime string
	Image    *models.Image
	ImageAlt string
	Body     template.HTML
}

// Post resolves a post document. body is the rendered rich text; when it
// is empty the page shows a placeholder line.
func Post(p *models.Post, body template.HTML) *PostView {
	if p == nil {
		return nil
	}
	v := &PostView{
		Title:    p.Title,
		Date:     FormatDate(p.PublishedAt),
		DateTime: p.PublishedAt,
		Body:     body,
	}
	if p.MainImage.HasAsset() {
		v.Image = p.MainImage
		v.ImageAlt = p.MainImage.AltOr(p.Title)
	}
	return v
}

// LegalView is the body of /privacy and /terms.
type LegalView struct {
	Heading     string
	LastUpdated string
	Body        template.HTML
}

// Legal resolves a legal page. The heading falls back to the page title.
func Legal(p *models.Page, body template.HTML) *LegalView {
	if p == nil {
		return nil
	}
	v := &LegalView{Heading: p.Title, Body: body}
	if p.Content != nil {
		v.Heading = orDefault(p.Content.Heading, v.Heading)
		v.LastUpdated = FormatDate(p.Content.LastUpdated)
	}
	return v
}

// ContactView is the body of /contact below the hero.
type ContactView struct {
	Phone   *PhoneView
	Email   string
	Address []string
	Hours   []models.HoursItem
	Form    ContactForm
}

type PhoneView struct {
	Display string
	Href    string
	Note    string
}

// ContactForm is the copy of the contact form. Submission is handled by an
// external form service, so only labels live here.
type ContactForm struct {
	InfoHeading        string
	InfoText           string
	FormHeading        string
	NameLabel          string
	PhoneLabel         string
	EmailLabel         string
	MessageLabel       string
	NamePlaceholder    string
	PhonePlaceholder   string
	EmailPlaceholder   string
	MessagePlaceholder string
	SubmitText         string
	Disclaimer         string
}

// Contact resolves the contact details and form copy from site settings.
// Every contact line is optional.
func Contact(s *models.SiteSettings) *ContactView {
	v := &ContactView{Form: contactDefaults}
	if s == nil {
		return v
	}

	if c := s.Contact; c != nil {
		if c.PhoneDisplay != "" {
			v.Phone = &PhoneView{Display: c.PhoneDisplay, Href: phoneHref(c), Note: c.EmergencyNote}
		}
		v.Email = c.Email
		v.Address = addressLines(c)
	}
	for _, h := range s.Hours {
		if h.Label != "" || h.Value != "" {
			v.Hours = append(v.Hours, h)
		}
	}

	if f := s.ContactPage; f != nil {
		d := contactDefaults
		v.Form = ContactForm{
			InfoHeading:        orDefault(f.InfoHeading, d.InfoHeading),
			InfoText:           orDefault(f.InfoText, d.InfoText),
			FormHeading:        orDefault(f.FormHeading, d.FormHeading),
			NameLabel:          orDefault(f.NameLabel, d.NameLabel),
			PhoneLabel:         orDefault(f.PhoneLabel, d.PhoneLabel),
			EmailLabel:         orDefault(f.EmailLabel, d.EmailLabel),
			MessageLabel:       orDefault(f.MessageLabel, d.MessageLabel),
			NamePlaceholder:    orDefault(f.NamePlaceholder, d.NamePlaceholder),
			PhonePlaceholder:   orDefault(f.PhonePlaceholder, d.PhonePlaceholder),
			EmailPlaceholder:   orDefault(f.EmailPlaceholder, d.EmailPlaceholder),
			MessagePlaceholder: orDefault(f.MessagePlaceholder, d.MessagePlaceholder),
			SubmitText:         orDefault(f.SubmitText, d.SubmitText),
			Disclaimer:         f.Disclaimer,
		}
	}
	return v
}

func addressLines(c *models.ContactInfo) []string {
	var lines []string
	for _, l := range []string{c.AddressLine1, c.AddressLine2} {
		if l != "" {
			lines = append(lines, l)
		}
	}
	return lines
}

// phoneHref prefers the authored tel: link and derives one from the
// display number otherwise.
func phoneHref(c *models.ContactInfo) string {
	if c.PhoneHref != "" {
		return c.PhoneHref
	}
	digits := make([]rune, 0, len(c.PhoneDisplay))
	for _, r := range c.PhoneDisplay {
		if (r >= '0' && r <= '9') || (r == '+' && len(digits) == 0) {
			digits = append(digits, r)
		}
	}
	if len(digits) == 0 {
		return ""
	}
	return "tel:" + string(digits)
}
