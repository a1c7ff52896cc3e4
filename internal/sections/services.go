// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package sections

import (
	"rooters/internal/icons"
	"rooters/internal/models"
)

// Service list layouts.
const (
	ServicesTiles = "tiles" // icon and title only, home page
	ServicesCards = "cards" // image and description, services page
)

type ServicesView struct {
	Kicker      string
	Heading     string
	Description string
	Layout      string
	Items       []ServiceCard
	ViewAll     *Link
}

type ServiceCard struct {
	Title       string
	Href        string
	Description string
	Icon        string
	Image       *models.Image
	ImageAlt    string
}

// IsTiles reports whether the compact home layout is used.
func (s *ServicesView) IsTiles() bool {
	return s.Layout == ServicesTiles
}

// ServiceTiles resolves the home page service tiles: at most four, with a
// link to the full list.
func ServiceTiles(items []models.ServiceItem) *ServicesView {
	v := servicesView(items, ServicesTiles, servicesDefaults.TileLimit)
	if v != nil {
		viewAll := servicesDefaults.ViewAll
		v.ViewAll = &viewAll
	}
	return v
}

// ServiceCards resolves the full services page grid.
func ServiceCards(items []models.ServiceItem) *ServicesView {
	return servicesView(items, ServicesCards, 0)
}

func servicesView(items []models.ServiceItem, layout string, limit int) *ServicesView {
	cards := serviceCards(items)
	if len(cards) == 0 {
		return nil
	}
	if limit > 0 && len(cards) > limit {
		cards = cards[:limit]
	}
	return &ServicesView{
		Kicker:      servicesDefaults.Kicker,
		Heading:     servicesDefaults.Heading,
		Description: servicesDefaults.Description,
		Layout:      layout,
		Items:       cards,
	}
}

// serviceCards drops services that cannot be linked to.
func serviceCards(items []models.ServiceItem) []ServiceCard {
	var cards []ServiceCard
	for _, it := range items {
		if it.Title == "" || !Routable(it.Slug.Current) {
			continue
		}
		c := ServiceCard{
			Title:       it.Title,
			Href:        ServiceHref(it.Slug.Current),
			Description: it.ShortDescription,
			Icon:        icons.Resolve(it.Icon),
		}
		if it.MainImage.HasAsset() {
			c.Image = it.MainImage
			c.ImageAlt = it.MainImage.AltOr(it.Title)
		}
		cards = append(cards, c)
	}
	return cards
}
