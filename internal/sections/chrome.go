// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package sections

import (
	"sort"
	"strconv"
	"strings"
	"time"

	"rooters/internal/icons"
	"rooters/internal/models"
)

// ChromeView holds the navbar and footer shared by every page.
type ChromeView struct {
	Navbar NavbarView
	Footer FooterView
	// Call is the phone link used by the error and not-found pages.
	Call *Link
}

type NavbarView struct {
	Brand    string
	Services []Link
	Links    []Link
	Quote    Link
}

type FooterView struct {
	Brand       string
	Description string
	Socials     []SocialView
	QuickLinks  []Link
	Services    []Link
	Phone       *PhoneView
	Email       string
	Address     []string
	Hours       []models.HoursItem
	CallCTA     Link
	Legal       string
}

type SocialView struct {
	Icon  string
	Label string
	URL   string
}

// Chrome resolves the navbar and footer. Both settings and services may be
// nil; the chrome then renders from defaults alone.
func Chrome(s *models.SiteSettings, services []models.ServiceItem, now time.Time) *ChromeView {
	d := chromeDefaults
	brand := d.Brand
	if s != nil {
		brand = orDefault(s.BrandName, brand)
	}

	sorted := serviceLinks(services)
	v := &ChromeView{
		Navbar: NavbarView{
			Brand:    brand,
			Services: limitLinks(sorted, d.NavServices),
			Links:    d.NavLinks,
			Quote:    d.Quote,
		},
		Footer: FooterView{
			Brand:       brand,
			Description: d.BrandDescription,
			QuickLinks:  d.QuickLinks,
			Services:    limitLinks(sorted, d.FooterServices),
			CallCTA:     d.CallSupport,
		},
	}

	f := &v.Footer
	legal := ""
	if s != nil {
		f.Description = orDefault(s.BrandDescription, f.Description)
		legal = s.FooterLegal
		if links := authoredLinks(s.FooterLinks); len(links) > 0 {
			f.QuickLinks = links
		}
		f.Socials = socials(s.Socials)
		for _, h := range s.Hours {
			if h.Label != "" || h.Value != "" {
				f.Hours = append(f.Hours, h)
			}
		}
		if c := s.Contact; c != nil {
			if c.PhoneDisplay != "" {
				f.Phone = &PhoneView{Display: c.PhoneDisplay, Href: phoneHref(c), Note: c.EmergencyNote}
				if f.Phone.Href != "" {
					f.CallCTA = Link{Text: "Call " + c.PhoneDisplay, Href: f.Phone.Href}
					v.Call = &Link{Text: "Call Now", Href: f.Phone.Href}
				}
			}
			f.Email = c.Email
			f.Address = addressLines(c)
		}
	}
	f.Legal = orDefault(legal, "© "+strconv.Itoa(now.Year())+" "+brand+". All rights reserved.")
	return v
}

// serviceLinks returns routable services ordered by title.
func serviceLinks(items []models.ServiceItem) []Link {
	var out []Link
	for _, s := range items {
		if s.Title == "" || !Routable(s.Slug.Current) {
			continue
		}
		out = append(out, Link{Text: s.Title, Href: ServiceHref(s.Slug.Current)})
	}
	sort.SliceStable(out, func(i, j int) bool {
		return strings.ToLower(out[i].Text) < strings.ToLower(out[j].Text)
	})
	return out
}

func limitLinks(links []Link, n int) []Link {
	if len(links) > n {
		return links[:n]
	}
	return links
}

func authoredLinks(in []models.SiteLink) []Link {
	var out []Link
	for _, l := range in {
		if p := Pair(l.Label, l.Href); p != nil {
			out = append(out, *p)
		}
	}
	return out
}

// socials keeps profiles whose platform maps to a known icon.
func socials(in []models.SocialLink) []SocialView {
	var out []SocialView
	for _, s := range in {
		if s.URL == "" {
			continue
		}
		key, ok := icons.Social(s.Platform)
		if !ok {
			key, ok = icons.Social(s.URL)
		}
		if !ok {
			continue
		}
		out = append(out, SocialView{Icon: key, Label: orDefault(s.Platform, key), URL: s.URL})
	}
	return out
}
