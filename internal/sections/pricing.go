// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package sections

import "rooters/internal/models"

type PricingView struct {
	Subheading  string
	Heading     string
	Description string
	Note        string
	Plans       []PlanView
}

// PlanView is one coupon card. Exactly one of Features and Disclaimer is set.
type PlanView struct {
	Title       string
	Price       string
	Currency    string
	Frequency   string
	Description string
	Popular     bool
	CTA         Link
	Features    []string
	Disclaimer  string
}

// Pricing resolves the pricing section. It is nil without a heading or
// without any plan that has a title or a price.
func Pricing(p *models.PricingSection) *PricingView {
	if p == nil || p.Heading == "" {
		return nil
	}

	var plans []PlanView
	for _, pl := range p.Plans {
		if pl.Title == "" && pl.Price == "" {
			continue
		}
		pv := PlanView{
			Title:       pl.Title,
			Price:       pl.Price,
			Currency:    pl.Currency,
			Frequency:   pl.Frequency,
			Description: pl.Description,
			Popular:     pl.IsPopular,
			CTA:         PairOr(pl.CTAText, pl.CTALink, pricingDefaults.CTA),
		}
		for _, f := range pl.Features {
			if f != "" {
				pv.Features = append(pv.Features, f)
			}
		}
		if len(pv.Features) == 0 {
			pv.Disclaimer = pricingDefaults.Disclaimer
		}
		plans = append(plans, pv)
	}
	if len(plans) == 0 {
		return nil
	}

	return &PricingView{
		Subheading:  orDefault(p.Subheading, pricingDefaults.Subheading),
		Heading:     p.Heading,
		Description: pricingDefaults.Description,
		Note:        pricingDefaults.Note,
		Plans:       plans,
	}
}
