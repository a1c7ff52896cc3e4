// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package resolver gathers the content each route needs. Every method runs
// its queries concurrently, waits for all of them, and returns the models
// untouched; deciding what to show is left to the sections package.
//
// A failing query fails the whole bag. A document that does not exist is
// a nil field, never an error.
package resolver

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"rooters/internal/content"
	"rooters/internal/models"
	"rooters/internal/slug"
)

// Resolver fetches route data through a content.Fetcher.
type Resolver struct {
	content content.Fetcher
}

// New returns a Resolver reading from f.
func New(f content.Fetcher) *Resolver {
	return &Resolver{content: f}
}

// Home is the data behind "/".
type Home struct {
	Page     *models.Page
	Services []models.ServiceItem
	Posts    []models.Post
}

// About is the data behind "/about".
type About struct {
	Page *models.Page
}

// Services is the data behind "/services".
type Services struct {
	Page     *models.Page
	Services []models.ServiceItem
	Settings *models.SiteSettings
}

// Blog is the data behind "/blog".
type Blog struct {
	Page  *models.Page  `json:"page"`
	Posts []models.Post `json:"posts"`
}

// Contact is the data behind "/contact".
type Contact struct {
	Page     *models.Page
	Settings *models.SiteSettings
}

// Sitemap is the data behind "/sitemap" and "/sitemap.xml".
type Sitemap struct {
	Services []models.ServiceItem
	Posts    []models.Post
}

// Chrome is the data shared by the navbar and footer.
type Chrome struct {
	Settings *models.SiteSettings
	Services []models.ServiceItem
}

func (r *Resolver) Home(ctx context.Context) (*Home, error) {
	var d Home
	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		d.Page, err = r.page(ctx, models.SlugHome)
		return err
	})
	g.Go(func() (err error) {
		d.Services, err = r.services(ctx)
		return err
	})
	g.Go(func() (err error) {
		d.Posts, err = fetchList[models.Post](ctx, r.content, content.LatestPosts, nil)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("resolving home: %w", err)
	}
	return &d, nil
}

func (r *Resolver) About(ctx context.Context) (*About, error) {
	p, err := r.page(ctx, models.SlugAbout)
	if err != nil {
		return nil, fmt.Errorf("resolving about: %w", err)
	}
	return &About{Page: p}, nil
}

func (r *Resolver) Services(ctx context.Context) (*Services, error) {
	var d Services
	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		d.Page, err = r.page(ctx, models.SlugServices)
		return err
	})
	g.Go(func() (err error) {
		d.Services, err = r.services(ctx)
		return err
	})
	g.Go(func() (err error) {
		d.Settings, err = r.settings(ctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("resolving services: %w", err)
	}
	return &d, nil
}

// Service returns the service with the given slug, or nil.
func (r *Resolver) Service(ctx context.Context, s string) (*models.ServiceItem, error) {
	if !slug.Valid(s) {
		return nil, nil
	}
	svc, err := fetchOne[models.ServiceItem](ctx, r.content, content.ServiceBySlug, content.Params{"slug": s})
	if err != nil {
		return nil, fmt.Errorf("resolving service %q: %w", s, err)
	}
	return svc, nil
}

// Blog fetches the blog page and all posts in a single round trip.
func (r *Resolver) Blog(ctx context.Context) (*Blog, error) {
	d, err := fetchOne[Blog](ctx, r.content, content.BlogPageData, nil)
	if err != nil {
		return nil, fmt.Errorf("resolving blog: %w", err)
	}
	if d == nil {
		d = &Blog{}
	}
	return d, nil
}

// Post returns the post with the given slug, or nil.
func (r *Resolver) Post(ctx context.Context, s string) (*models.Post, error) {
	if !slug.Valid(s) {
		return nil, nil
	}
	p, err := fetchOne[models.Post](ctx, r.content, content.PostBySlug, content.Params{"slug": s})
	if err != nil {
		return nil, fmt.Errorf("resolving post %q: %w", s, err)
	}
	return p, nil
}

func (r *Resolver) Contact(ctx context.Context) (*Contact, error) {
	var d Contact
	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		d.Page, err = r.page(ctx, models.SlugContact)
		return err
	})
	g.Go(func() (err error) {
		d.Settings, err = r.settings(ctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("resolving contact: %w", err)
	}
	return &d, nil
}

// FAQ returns the faq page, or nil.
func (r *Resolver) FAQ(ctx context.Context) (*models.Page, error) {
	p, err := fetchOne[models.Page](ctx, r.content, content.FAQPage, nil)
	if err != nil {
		return nil, fmt.Errorf("resolving faq: %w", err)
	}
	return p, nil
}

// Legal returns the legal page with the given slug, or nil.
func (r *Resolver) Legal(ctx context.Context, s string) (*models.Page, error) {
	if !slug.Valid(s) {
		return nil, nil
	}
	p, err := fetchOne[models.Page](ctx, r.content, content.LegalPage, content.Params{"slug": s})
	if err != nil {
		return nil, fmt.Errorf("resolving legal page %q: %w", s, err)
	}
	return p, nil
}

func (r *Resolver) Sitemap(ctx context.Context) (*Sitemap, error) {
	var d Sitemap
	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		d.Services, err = r.services(ctx)
		return err
	})
	g.Go(func() (err error) {
		d.Posts, err = fetchList[models.Post](ctx, r.content, content.Posts, nil)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("resolving sitemap: %w", err)
	}
	return &d, nil
}

// Chrome fetches the navbar and footer data. Callers are expected to fall
// back to defaults on error rather than fail the page.
func (r *Resolver) Chrome(ctx context.Context) (*Chrome, error) {
	var d Chrome
	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		d.Settings, err = r.settings(ctx)
		return err
	})
	g.Go(func() (err error) {
		d.Services, err = r.services(ctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("resolving chrome: %w", err)
	}
	return &d, nil
}

func (r *Resolver) page(ctx context.Context, s string) (*models.Page, error) {
	return fetchOne[models.Page](ctx, r.content, content.PageBySlug, content.Params{"slug": s})
}

func (r *Resolver) services(ctx context.Context) ([]models.ServiceItem, error) {
	return fetchList[models.ServiceItem](ctx, r.content, content.Services, nil)
}

func (r *Resolver) settings(ctx context.Context) (*models.SiteSettings, error) {
	return fetchOne[models.SiteSettings](ctx, r.content, content.SiteSettings, nil)
}

// fetchOne and fetchList name the failing query in the error.
func fetchOne[T any](ctx context.Context, f content.Fetcher, q content.Query, p content.Params) (*T, error) {
	v, err := content.One[T](ctx, f, q, p)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", q.Name, err)
	}
	return v, nil
}

func fetchList[T any](ctx context.Context, f content.Fetcher, q content.Query, p content.Params) ([]T, error) {
	v, err := content.List[T](ctx, f, q, p)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", q.Name, err)
	}
	return v, nil
}
