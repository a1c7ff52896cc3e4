// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"bytes"
	"context"
	"encoding/xml"
	"fmt"
	"net/http"

	"rooters/internal/models"
	"rooters/internal/sections"
)

// sitemapPostLimit caps the posts listed on the HTML sitemap.
const sitemapPostLimit = 10

var mainPages = []sections.Link{
	{Text: "Home", Href: "/"},
	{Text: "About", Href: "/about"},
	{Text: "Services", Href: "/services"},
	{Text: "Blog", Href: "/blog"},
	{Text: "Contact", Href: "/contact"},
	{Text: "FAQ", Href: "/faq"},
}

var legalPages = []sections.Link{
	{Text: "Privacy Policy", Href: "/privacy"},
	{Text: "Terms of Service", Href: "/terms"},
}

// Sitemap renders the human-readable "/sitemap".
func (p *Public) Sitemap(w http.ResponseWriter, r *http.Request) {
	p.page(w, r, func(ctx context.Context) (*view, error) {
		d, err := p.resolver.Sitemap(ctx)
		if err != nil {
			return nil, err
		}
		body := &SitemapPage{
			Main:     mainPages,
			Services: serviceSitemapLinks(d.Services),
			Legal:    legalPages,
		}
		posts := postSitemapLinks(d.Posts)
		if len(posts) > sitemapPostLimit {
			posts = posts[:sitemapPostLimit]
			body.MorePosts = true
		}
		body.Posts = posts
		return &view{template: "sitemap", title: "Sitemap", body: body}, nil
	})
}

type urlset struct {
	XMLName xml.Name     `xml:"urlset"`
	XMLNS   string       `xml:"xmlns,attr"`
	URLs    []sitemapURL `xml:"url"`
}

type sitemapURL struct {
	Loc        string `xml:"loc"`
	LastMod    string `xml:"lastmod,omitempty"`
	ChangeFreq string `xml:"changefreq,omitempty"`
	Priority   string `xml:"priority,omitempty"`
}

// SitemapXML renders "/sitemap.xml" for crawlers. Every page is listed,
// including all posts.
func (p *Public) SitemapXML(w http.ResponseWriter, r *http.Request) {
	p.serve(w, r, revalidateSitemap, func(ctx context.Context) (*response, error) {
		d, err := p.resolver.Sitemap(ctx)
		if err != nil {
			return nil, err
		}

		set := urlset{XMLNS: "http://www.sitemaps.org/schemas/sitemap/0.9"}
		add := func(path, lastmod, freq, priority string) {
			set.URLs = append(set.URLs, sitemapURL{
				Loc:        p.site.URL + path,
				LastMod:    lastmod,
				ChangeFreq: freq,
				Priority:   priority,
			})
		}
		for i, l := range mainPages {
			priority := "0.8"
			if i == 0 {
				priority = "1.0"
			}
			add(l.Href, "", "weekly", priority)
		}
		for _, l := range serviceSitemapLinks(d.Services) {
			add(l.Href, "", "monthly", "0.7")
		}
		for _, post := range d.Posts {
			if !sections.Routable(post.Slug.Current) {
				continue
			}
			add(sections.PostHref(post.Slug.Current), lastMod(post.PublishedAt), "monthly", "0.6")
		}
		for _, l := range legalPages {
			add(l.Href, "", "yearly", "0.3")
		}

		var buf bytes.Buffer
		buf.WriteString(xml.Header)
		enc := xml.NewEncoder(&buf)
		enc.Indent("", "  ")
		if err := enc.Encode(set); err != nil {
			return nil, fmt.Errorf("encoding sitemap: %w", err)
		}
		return &response{
			status:      http.StatusOK,
			contentType: "application/xml; charset=utf-8",
			body:        buf.Bytes(),
		}, nil
	})
}

// Robots serves "/robots.txt". Preview endpoints are kept out of crawls.
func (p *Public) Robots(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	fmt.Fprintf(w, "User-agent: *\nAllow: /\nDisallow: /api/\n\nSitemap: %s/sitemap.xml\n", p.site.URL)
}

func serviceSitemapLinks(items []models.ServiceItem) []sections.Link {
	var links []sections.Link
	for _, s := range items {
		if !sections.Routable(s.Slug.Current) {
			continue
		}
		links = append(links, sections.Link{Text: s.Title, Href: sections.ServiceHref(s.Slug.Current)})
	}
	return links
}

func postSitemapLinks(posts []models.Post) []sections.Link {
	var links []sections.Link
	for _, post := range posts {
		if !sections.Routable(post.Slug.Current) {
			continue
		}
		links = append(links, sections.Link{Text: post.Title, Href: sections.PostHref(post.Slug.Current)})
	}
	return links
}

// lastMod trims a publish timestamp to the W3C date form.
func lastMod(publishedAt string) string {
	if len(publishedAt) < len("2006-01-02") {
		return ""
	}
	return publishedAt[:len("2006-01-02")]
}
