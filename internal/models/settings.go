// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

// SiteSettings is the singleton document that feeds the navbar, footer and
// contact page.
type SiteSettings struct {
	BrandName        string        `json:"brandName,omitempty"`
	BrandDescription string        `json:"brandDescription,omitempty"`
	Contact          *ContactInfo  `json:"contact,omitempty"`
	Hours            []HoursItem   `json:"hours,omitempty"`
	FooterLinks      []SiteLink    `json:"footerLinks,omitempty"`
	Socials          []SocialLink  `json:"socials,omitempty"`
	ContactPage      *ContactPage  `json:"contactPage,omitempty"`
	FooterLegal      string        `json:"footerLegal,omitempty"`
	ServiceAreas     []ServiceArea `json:"serviceAreas,omitempty"`
}

type ContactInfo struct {
	PhoneDisplay  string `json:"phoneDisplay,omitempty"`
	PhoneHref     string `json:"phoneHref,omitempty"`
	Email         string `json:"email,omitempty"`
	AddressLine1  string `json:"addressLine1,omitempty"`
	AddressLine2  string `json:"addressLine2,omitempty"`
	EmergencyNote string `json:"emergencyNote,omitempty"`
}

type HoursItem struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

type SiteLink struct {
	Label string `json:"label"`
	Href  string `json:"href"`
}

type SocialLink struct {
	Platform string `json:"platform"`
	URL      string `json:"url"`
}

// ContactPage is the editable copy of the contact form.
type ContactPage struct {
	InfoHeading        string `json:"infoHeading,omitempty"`
	InfoText           string `json:"infoText,omitempty"`
	FormHeading        string `json:"formHeading,omitempty"`
	NameLabel          string `json:"nameLabel,omitempty"`
	PhoneLabel         string `json:"phoneLabel,omitempty"`
	EmailLabel         string `json:"emailLabel,omitempty"`
	MessageLabel       string `json:"messageLabel,omitempty"`
	NamePlaceholder    string `json:"namePlaceholder,omitempty"`
	PhonePlaceholder   string `json:"phonePlaceholder,omitempty"`
	EmailPlaceholder   string `json:"emailPlaceholder,omitempty"`
	MessagePlaceholder string `json:"messagePlaceholder,omitempty"`
	SubmitText         string `json:"submitText,omitempty"`
	Disclaimer         string `json:"disclaimer,omitempty"`
}
