// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package sections

import (
	"strconv"

	"rooters/internal/models"
	"rooters/internal/slug"
)

// FAQView is the body of the FAQ page. Unlike other sections it is never
// nil: with no questions the page shows an empty state instead.
type FAQView struct {
	Title       string
	Description string
	Items       []FAQItemView
}

type FAQItemView struct {
	ID       string
	Question string
	Answer   string
}

// Empty reports whether the empty state should render.
func (f *FAQView) Empty() bool {
	return len(f.Items) == 0
}

// FAQ resolves the FAQ page body. The title is the FAQ section's own title,
// then the page title, then "FAQ".
func FAQ(p *models.Page) *FAQView {
	v := &FAQView{Title: faqDefaults.Title}
	if p == nil {
		return v
	}
	v.Title = orDefault(p.Title, v.Title)
	if p.FAQ == nil {
		return v
	}
	v.Title = orDefault(p.FAQ.Title, v.Title)
	v.Description = p.FAQ.Description
	v.Items = FAQItems("faq", p.FAQ.Items)
	return v
}

// FAQItems resolves question and answer pairs with stable, unique anchor
// IDs under prefix. Items without a question are dropped.
func FAQItems(prefix string, items []models.FaqItem) []FAQItemView {
	var out []FAQItemView
	seen := make(map[string]int)
	for _, it := range items {
		if it.Question == "" {
			continue
		}
		id := slug.Generate(it.Question)
		if id == "" {
			id = "item"
		}
		id = prefix + "-" + id
		if n := seen[id]; n > 0 {
			seen[id] = n + 1
			id += "-" + strconv.Itoa(n+1)
		} else {
			seen[id] = 1
		}
		out = append(out, FAQItemView{ID: id, Question: it.Question, Answer: it.Answer})
	}
	return out
}
