// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package sections

import "rooters/internal/models"

type BlogView struct {
	Heading     string
	Description string
	Posts       []PostCard
	ViewAll     Link
}

type PostCard struct {
	Title    string
	Href     string
	Excerpt  string
	Date     string
	DateTime string
	Image    *models.Image
	ImageAlt string
}

// BlogPreview resolves the home page blog strip: the three newest posts.
func BlogPreview(posts []models.Post) *BlogView {
	cards := PostCards(posts)
	if len(cards) == 0 {
		return nil
	}
	if len(cards) > blogDefaults.Limit {
		cards = cards[:blogDefaults.Limit]
	}
	return &BlogView{
		Heading:     blogDefaults.Heading,
		Description: blogDefaults.Description,
		Posts:       cards,
		ViewAll:     blogDefaults.ViewAll,
	}
}

// BlogHeader is the fallback header of the blog index when the blog page
// has no hero.
func BlogHeader() (heading, description string) {
	return blogDefaults.Heading, blogDefaults.Description
}

// PostCards resolves post summaries, dropping posts without a title or a
// routable slug.
func PostCards(posts []models.Post) []PostCard {
	var cards []PostCard
	for _, p := range posts {
		if p.Title == "" || !Routable(p.Slug.Current) {
			continue
		}
		c := PostCard{
			Title:    p.Title,
			Href:     PostHref(p.Slug.Current),
			Excerpt:  p.Excerpt,
			Date:     FormatDate(p.PublishedAt),
			DateTime: p.PublishedAt,
		}
		if p.MainImage.HasAsset() {
			c.Image = p.MainImage
			c.ImageAlt = p.MainImage.AltOr(p.Title)
		}
		cards = append(cards, c)
	}
	return cards
}
