// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package sections

import (
	"rooters/internal/icons"
	"rooters/internal/models"
)

type GuaranteesView struct {
	Kicker    string
	Heading   string
	Intro     string
	Items     []GuaranteeView
	Primary   Link
	Secondary Link
}

type GuaranteeView struct {
	Title       string
	Description string
	Icon        string
	Points      []string
}

// Guarantees resolves the guarantees grid. It needs a heading and at least
// one titled item; only the first four items are shown.
func Guarantees(g *models.GuaranteesSectionData) *GuaranteesView {
	if g == nil || g.Heading == "" {
		return nil
	}

	var items []GuaranteeView
	for _, it := range g.Items {
		if it.Title == "" {
			continue
		}
		items = append(items, GuaranteeView{
			Title:       it.Title,
			Description: it.Description,
			Icon:        icons.Resolve(it.Icon),
			Points:      it.Points,
		})
		if len(items) == guaranteeDefaults.Limit {
			break
		}
	}
	if len(items) == 0 {
		return nil
	}

	return &GuaranteesView{
		Kicker:    orDefault(g.Kicker, guaranteeDefaults.Kicker),
		Heading:   g.Heading,
		Intro:     g.Intro,
		Items:     items,
		Primary:   PairOr(g.PrimaryButtonText, g.PrimaryButtonLink, guaranteeDefaults.Primary),
		Secondary: PairOr(g.SecondaryButtonText, g.SecondaryButtonLink, guaranteeDefaults.Secondary),
	}
}
