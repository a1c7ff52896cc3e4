// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"rooters/internal/cache"
	"rooters/internal/content"
	"rooters/internal/metrics"
	"rooters/internal/middleware"
	"rooters/internal/models"
	"rooters/internal/render"
	"rooters/internal/resolver"
	"rooters/internal/richtext"
	"rooters/internal/sections"
)

// Revalidation intervals. A rendered route is served from the page cache
// until its interval runs out.
const (
	revalidatePage    = 60 * time.Second
	revalidateSitemap = time.Hour
)

const htmlContentType = "text/html; charset=utf-8"

// Public groups handlers for the public site. Each route resolves its
// content, assembles the page body from sections, and renders it inside the
// chrome. Rendered pages pass through the Valkey revalidation cache unless
// the request is a draft preview.
type Public struct {
	resolver *resolver.Resolver
	renderer *render.Renderer
	rich     *richtext.Renderer
	pages    cache.Pages
	site     render.Site
	now      func() time.Time
}

// NewPublic creates a new Public handler group. pages may be nil, in which
// case every request renders.
func NewPublic(res *resolver.Resolver, rn *render.Renderer, rich *richtext.Renderer, pages cache.Pages, site render.Site) *Public {
	return &Public{
		resolver: res,
		renderer: rn,
		rich:     rich,
		pages:    pages,
		site:     site,
		now:      time.Now,
	}
}

// view is an assembled page waiting for its chrome.
type view struct {
	template    string
	title       string
	description string
	status      int
	body        any
}

// response is what gets written and, for 200s, cached. A page drawn with
// fallback chrome is not cached so the real chrome returns on the next
// request.
type response struct {
	status      int
	contentType string
	body        []byte
	uncacheable bool
}

// serve runs build behind the revalidation cache and writes the result.
func (p *Public) serve(w http.ResponseWriter, r *http.Request, ttl time.Duration, build func(ctx context.Context) (*response, error)) {
	ctx := r.Context()
	key := cache.PathKey(r.URL.Path)
	preview := content.IsPreview(ctx)

	switch {
	case preview:
		metrics.ObservePageCache(metrics.CacheBypass)
	case p.pages != nil:
		if e, ok := p.pages.Get(ctx, key); ok {
			w.Header().Set("Content-Type", e.ContentType)
			w.Header().Set("X-Cache", "HIT")
			w.Write(e.Body)
			return
		}
	}

	resp, err := build(ctx)
	if err != nil {
		p.fail(w, r, err)
		return
	}

	if resp.status == http.StatusOK && !resp.uncacheable && !preview && p.pages != nil {
		p.pages.Set(ctx, key, &cache.Entry{ContentType: resp.contentType, Body: resp.body}, ttl)
	}

	w.Header().Set("Content-Type", resp.contentType)
	if !preview {
		w.Header().Set("X-Cache", "MISS")
	}
	w.WriteHeader(resp.status)
	w.Write(resp.body)
}

// page serves an HTML route. The chrome is resolved concurrently with the
// page body and never fails the request.
func (p *Public) page(w http.ResponseWriter, r *http.Request, assemble func(ctx context.Context) (*view, error)) {
	p.serve(w, r, revalidatePage, func(ctx context.Context) (*response, error) {
		chrome := p.startChrome(ctx)

		v, err := assemble(ctx)
		c := chrome()
		if err != nil {
			return nil, err
		}
		resp, err := p.renderView(r, v, c.view)
		if err != nil {
			return nil, err
		}
		resp.uncacheable = c.degraded
		return resp, nil
	})
}

func (p *Public) renderView(r *http.Request, v *view, chrome *sections.ChromeView) (*response, error) {
	if ca, ok := v.body.(chromeAware); ok {
		ca.setChrome(chrome)
	}
	html, err := p.renderer.Render(v.template, &render.PageData{
		Site:        p.site,
		Title:       v.title,
		Description: v.description,
		Path:        r.URL.Path,
		Chrome:      chrome,
		Preview:     content.IsPreview(r.Context()),
		RequestID:   middleware.RequestIDFromCtx(r.Context()),
		Body:        v.body,
	})
	if err != nil {
		return nil, err
	}
	status := v.status
	if status == 0 {
		status = http.StatusOK
	}
	return &response{status: status, contentType: htmlContentType, body: html}, nil
}

type chromeResult struct {
	view     *sections.ChromeView
	degraded bool
}

// startChrome resolves the navbar and footer in the background. The
// returned func blocks until they are ready.
func (p *Public) startChrome(ctx context.Context) func() chromeResult {
	ch := make(chan chromeResult, 1)
	go func() {
		var settings *models.SiteSettings
		var services []models.ServiceItem
		c, err := p.resolver.Chrome(ctx)
		if err != nil {
			slog.Warn("chrome degraded to defaults", "error", err, "request_id", middleware.RequestIDFromCtx(ctx))
		} else {
			settings, services = c.Settings, c.Services
		}
		ch <- chromeResult{view: sections.Chrome(settings, services, p.now()), degraded: err != nil}
	}()
	return func() chromeResult { return <-ch }
}

// fail renders the error page. Upstream failures answer 502, anything
// else 500. The request ID is shown so a report can be matched to logs.
func (p *Public) fail(w http.ResponseWriter, r *http.Request, err error) {
	ctx := r.Context()
	id := middleware.RequestIDFromCtx(ctx)

	status := http.StatusInternalServerError
	if errors.Is(err, content.ErrUpstream) {
		status = http.StatusBadGateway
	}
	slog.Error("page failed", "error", err, "path", r.URL.Path, "status", status, "request_id", id)

	chrome := p.startChrome(ctx)().view
	resp, rerr := p.renderView(r, &view{
		template: "error",
		title:    "Something went wrong",
		status:   status,
		body:     &ErrorPage{Retry: r.URL.Path, Reference: id},
	}, chrome)
	if rerr != nil {
		slog.Error("render error page failed", "error", rerr, "request_id", id)
		http.Error(w, http.StatusText(status), status)
		return
	}

	w.Header().Set("Content-Type", resp.contentType)
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(resp.status)
	w.Write(resp.body)
}

// Home renders "/".
func (p *Public) Home(w http.ResponseWriter, r *http.Request) {
	p.page(w, r, func(ctx context.Context) (*view, error) {
		d, err := p.resolver.Home(ctx)
		if err != nil {
			return nil, err
		}
		pg := orEmpty(d.Page)
		return &view{
			template: "home",
			body: &HomePage{
				Hero:         sections.Hero(pg.Hero),
				Stats:        sections.Stats(pg.StatsSection),
				Services:     sections.ServiceTiles(d.Services),
				About:        sections.About(pg.AboutUs),
				Guarantees:   sections.Guarantees(pg.GuaranteesSection),
				Testimonials: sections.Testimonials(pg.TestimonialSection),
				Blog:         sections.BlogPreview(d.Posts),
			},
		}, nil
	})
}

// About renders "/about".
func (p *Public) About(w http.ResponseWriter, r *http.Request) {
	p.page(w, r, func(ctx context.Context) (*view, error) {
		d, err := p.resolver.About(ctx)
		if err != nil {
			return nil, err
		}
		pg := orEmpty(d.Page)
		title := pg.Title
		if title == "" {
			title = "About"
		}
		return &view{
			template: "about",
			title:    title,
			body: &AboutPage{
				Hero:            sections.Hero(pg.Hero),
				About:           sections.About(pg.AboutUs),
				FallbackHeading: title,
				Stats:           sections.Stats(pg.StatsSection),
				Team:            sections.Team(pg.TeamSection),
			},
		}, nil
	})
}

// Services renders "/services".
func (p *Public) Services(w http.ResponseWriter, r *http.Request) {
	p.page(w, r, func(ctx context.Context) (*view, error) {
		d, err := p.resolver.Services(ctx)
		if err != nil {
			return nil, err
		}
		pg := orEmpty(d.Page)
		var areas []models.ServiceArea
		if d.Settings != nil {
			areas = d.Settings.ServiceAreas
		}
		return &view{
			template: "services",
			title:    titleOr(pg.Title, "Services"),
			body: &ServicesPage{
				Hero:         sections.Hero(pg.Hero),
				Services:     sections.ServiceCards(d.Services),
				Process:      sections.Process(pg.ProcessSection),
				Pricing:      sections.Pricing(pg.Pricing),
				Areas:        sections.ServiceAreas(pg.ServiceAreasSection, areas),
				Guarantees:   sections.Guarantees(pg.GuaranteesSection),
				Testimonials: sections.Testimonials(pg.TestimonialSection),
			},
		}, nil
	})
}

// Service renders "/services/{slug}".
func (p *Public) Service(w http.ResponseWriter, r *http.Request) {
	slugParam := chi.URLParam(r, "slug")
	p.page(w, r, func(ctx context.Context) (*view, error) {
		svc, err := p.resolver.Service(ctx, slugParam)
		if err != nil {
			return nil, err
		}
		if svc == nil {
			slog.Debug("service not found", "slug", slugParam)
			return &view{
				template: "service",
				title:    "Service Not Found",
				status:   http.StatusNotFound,
				body:     &ServicePage{Slug: slugParam},
			}, nil
		}
		return &view{
			template:    "service",
			title:       svc.Title,
			description: svc.ShortDescription,
			body: &ServicePage{
				Slug:    slugParam,
				Service: sections.ServiceDetail(svc, p.rich.HTML(svc.Content)),
			},
		}, nil
	})
}

// Blog renders "/blog".
func (p *Public) Blog(w http.ResponseWriter, r *http.Request) {
	p.page(w, r, func(ctx context.Context) (*view, error) {
		d, err := p.resolver.Blog(ctx)
		if err != nil {
			return nil, err
		}
		heading, description := sections.BlogHeader()
		var hero *sections.HeroView
		if d.Page != nil {
			hero = sections.Hero(d.Page.Hero)
		}
		return &view{
			template:    "blog",
			title:       "Blog",
			description: description,
			body: &BlogPage{
				Hero:        hero,
				Heading:     heading,
				Description: description,
				Posts:       sections.PostCards(d.Posts),
			},
		}, nil
	})
}

// Post renders "/blog/{slug}".
func (p *Public) Post(w http.ResponseWriter, r *http.Request) {
	slugParam := chi.URLParam(r, "slug")
	p.page(w, r, func(ctx context.Context) (*view, error) {
		post, err := p.resolver.Post(ctx, slugParam)
		if err != nil {
			return nil, err
		}
		if post == nil {
			slog.Debug("post not found", "slug", slugParam)
			return &view{
				template: "post",
				title:    "Post Not Found",
				status:   http.StatusNotFound,
				body:     &PostPage{Slug: slugParam},
			}, nil
		}
		return &view{
			template:    "post",
			title:       post.Title,
			description: post.Excerpt,
			body:        &PostPage{Slug: slugParam, Post: sections.Post(post, p.rich.HTML(post.Body))},
		}, nil
	})
}

// Contact renders "/contact".
func (p *Public) Contact(w http.ResponseWriter, r *http.Request) {
	p.page(w, r, func(ctx context.Context) (*view, error) {
		d, err := p.resolver.Contact(ctx)
		if err != nil {
			return nil, err
		}
		pg := orEmpty(d.Page)
		return &view{
			template: "contact",
			title:    titleOr(pg.Title, "Contact"),
			body: &ContactPage{
				Hero:    sections.Hero(pg.Hero),
				Contact: sections.Contact(d.Settings),
			},
		}, nil
	})
}

// FAQ renders "/faq".
func (p *Public) FAQ(w http.ResponseWriter, r *http.Request) {
	p.page(w, r, func(ctx context.Context) (*view, error) {
		pg, err := p.resolver.FAQ(ctx)
		if err != nil {
			return nil, err
		}
		faq := sections.FAQ(pg)
		return &view{
			template: "faq",
			title:    faq.Title,
			body: &FAQPage{
				Hero: sections.Hero(orEmpty(pg).Hero),
				FAQ:  faq,
			},
		}, nil
	})
}

// Legal returns the handler for a legal page stored under slug.
func (p *Public) Legal(slug string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		p.page(w, r, func(ctx context.Context) (*view, error) {
			pg, err := p.resolver.Legal(ctx, slug)
			if err != nil {
				return nil, err
			}
			if pg == nil {
				slog.Debug("legal page not found", "slug", slug)
				return &view{
					template: "legal",
					title:    "Page Not Found",
					status:   http.StatusNotFound,
					body:     &LegalPage{Slug: slug},
				}, nil
			}
			var body models.RichText
			if pg.Content != nil {
				body = pg.Content.Body
			}
			legal := sections.Legal(pg, p.rich.HTML(body))
			return &view{
				template: "legal",
				title:    legal.Heading,
				body:     &LegalPage{Slug: slug, Legal: legal},
			}, nil
		})
	}
}

// NotFound renders the 404 page for unknown routes.
func (p *Public) NotFound(w http.ResponseWriter, r *http.Request) {
	p.page(w, r, func(ctx context.Context) (*view, error) {
		return &view{
			template: "notfound",
			title:    "Page not found",
			status:   http.StatusNotFound,
			body:     &NotFoundPage{},
		}, nil
	})
}

func titleOr(title, fallback string) string {
	if title == "" {
		return fallback
	}
	return title
}
