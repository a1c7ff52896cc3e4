// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package resolver

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"sync"
	"testing"

	"github.com/google/go-cmp/cmp"

	"rooters/internal/content"
	"rooters/internal/models"
)

// fakeContent serves canned JSON keyed by "query" or "query:slug".
type fakeContent struct {
	mu      sync.Mutex
	results map[string]string
	errs    map[string]error
	calls   []string
}

func (f *fakeContent) Fetch(ctx context.Context, q content.Query, params content.Params, dest any) (bool, error) {
	key := q.Name
	if s, ok := params["slug"]; ok {
		key = fmt.Sprintf("%s:%v", q.Name, s)
	}
	f.mu.Lock()
	f.calls = append(f.calls, key)
	f.mu.Unlock()

	if err, ok := f.errs[key]; ok {
		return false, err
	}
	raw, ok := f.results[key]
	if !ok || raw == "null" {
		return false, nil
	}
	if err := json.Unmarshal([]byte(raw), dest); err != nil {
		return false, err
	}
	return true, nil
}

func TestHomeGathersAllQueries(t *testing.T) {
	f := &fakeContent{results: map[string]string{
		"page-by-slug:home": `{"_id":"p1","title":"Home","slug":{"current":"home"}}`,
		"services":          `[{"_id":"s1","title":"Drains","slug":{"current":"drains"}}]`,
		"latest-posts":      `[{"_id":"b1","title":"Winter","slug":{"current":"winter"}}]`,
	}}

	d, err := New(f).Home(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if d.Page == nil || d.Page.Title != "Home" {
		t.Errorf("page: got %+v", d.Page)
	}
	if len(d.Services) != 1 || len(d.Posts) != 1 {
		t.Errorf("services/posts: got %d/%d, want 1/1", len(d.Services), len(d.Posts))
	}
}

func TestHomeToleratesMissingPage(t *testing.T) {
	f := &fakeContent{results: map[string]string{}}

	d, err := New(f).Home(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if d.Page != nil || d.Services != nil || d.Posts != nil {
		t.Errorf("expected empty bag, got %+v", d)
	}
}

func TestAnyFailingQueryFailsTheBag(t *testing.T) {
	upstream := fmt.Errorf("boom: %w", content.ErrUpstream)
	f := &fakeContent{
		results: map[string]string{"page-by-slug:services": `{"title":"Services"}`},
		errs:    map[string]error{"site-settings": upstream},
	}

	_, err := New(f).Services(context.Background())
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	if !errors.Is(err, content.ErrUpstream) {
		t.Errorf("expected ErrUpstream in chain, got %v", err)
	}
	if !strings.Contains(err.Error(), "site-settings") {
		t.Errorf("error should name the query, got %q", err)
	}
}

func TestServiceBySlug(t *testing.T) {
	f := &fakeContent{results: map[string]string{
		"service-by-slug:drain-cleaning": `{"_id":"s1","title":"Drain Cleaning","slug":{"current":"drain-cleaning"},"highlights":["Camera inspection"]}`,
	}}
	r := New(f)

	svc, err := r.Service(context.Background(), "drain-cleaning")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if diff := cmp.Diff([]string{"Camera inspection"}, svc.Highlights); diff != "" {
		t.Errorf("highlights mismatch (-want +got):\n%s", diff)
	}

	missing, err := r.Service(context.Background(), "water-heaters")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if missing != nil {
		t.Errorf("expected nil for unknown slug, got %+v", missing)
	}
}

func TestInvalidSlugSkipsFetch(t *testing.T) {
	f := &fakeContent{}
	r := New(f)

	for _, s := range []string{"", "  ", "../x", "drains/extra", "a\tb", strings.Repeat("a", 97)} {
		if svc, err := r.Service(context.Background(), s); svc != nil || err != nil {
			t.Errorf("Service(%q): got %v, %v", s, svc, err)
		}
		if p, err := r.Post(context.Background(), s); p != nil || err != nil {
			t.Errorf("Post(%q): got %v, %v", s, p, err)
		}
		if p, err := r.Legal(context.Background(), s); p != nil || err != nil {
			t.Errorf("Legal(%q): got %v, %v", s, p, err)
		}
	}
	if len(f.calls) != 0 {
		t.Errorf("expected no fetches, got %v", f.calls)
	}
}

func TestNonCanonicalSlugIsFetched(t *testing.T) {
	f := &fakeContent{results: map[string]string{
		"service-by-slug:ac_repair": `{"_id":"s9","title":"AC Repair","slug":{"current":"ac_repair"}}`,
	}}
	r := New(f)

	svc, err := r.Service(context.Background(), "ac_repair")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if svc == nil || svc.Title != "AC Repair" {
		t.Fatalf("Service(ac_repair): got %+v", svc)
	}
	if diff := cmp.Diff([]string{"service-by-slug:ac_repair"}, f.calls); diff != "" {
		t.Errorf("calls mismatch (-want +got):\n%s", diff)
	}
}

// Resolving the same slug twice yields the same presence decisions.
func TestResolveIsDeterministic(t *testing.T) {
	f := &fakeContent{results: map[string]string{
		"post-by-slug:winter-prep": `{"_id":"b1","title":"Winter prep","slug":{"current":"winter-prep"},"body":"Insulate pipes."}`,
	}}
	r := New(f)

	first, err := r.Post(context.Background(), "winter-prep")
	if err != nil {
		t.Fatal(err)
	}
	second, err := r.Post(context.Background(), "winter-prep")
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(first, second); diff != "" {
		t.Errorf("second resolve differs (-first +second):\n%s", diff)
	}
}

func TestBlogMultiQuery(t *testing.T) {
	f := &fakeContent{results: map[string]string{
		"blog-page-data": `{"page":null,"posts":[{"_id":"b1","title":"A","slug":{"current":"a"}},{"_id":"b2","title":"B","slug":{"current":"b"}}]}`,
	}}

	d, err := New(f).Blog(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if d.Page != nil {
		t.Errorf("page: got %+v, want nil", d.Page)
	}
	if len(d.Posts) != 2 {
		t.Errorf("posts: got %d, want 2", len(d.Posts))
	}
	if len(f.calls) != 1 {
		t.Errorf("round trips: got %d, want 1", len(f.calls))
	}
}

func TestBlogNullResult(t *testing.T) {
	d, err := New(&fakeContent{}).Blog(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if d == nil || d.Page != nil || d.Posts != nil {
		t.Errorf("expected empty blog bag, got %+v", d)
	}
}

func TestChromeAndSitemap(t *testing.T) {
	f := &fakeContent{results: map[string]string{
		"site-settings": `{"brandName":"Rooters","contact":{"phoneDisplay":"(555) 010-2000"}}`,
		"services":      `[{"_id":"s1","title":"Drains","slug":{"current":"drains"}}]`,
		"posts":         `[{"_id":"b1","title":"A","slug":{"current":"a"}}]`,
	}}
	r := New(f)

	c, err := r.Chrome(context.Background())
	if err != nil {
		t.Fatalf("Chrome: %v", err)
	}
	want := &models.SiteSettings{BrandName: "Rooters", Contact: &models.ContactInfo{PhoneDisplay: "(555) 010-2000"}}
	if diff := cmp.Diff(want, c.Settings); diff != "" {
		t.Errorf("settings mismatch (-want +got):\n%s", diff)
	}

	s, err := r.Sitemap(context.Background())
	if err != nil {
		t.Fatalf("Sitemap: %v", err)
	}
	if len(s.Services) != 1 || len(s.Posts) != 1 {
		t.Errorf("sitemap: got %d services, %d posts", len(s.Services), len(s.Posts))
	}
}

func TestContactAboutFAQLegal(t *testing.T) {
	f := &fakeContent{results: map[string]string{
		"page-by-slug:contact": `{"title":"Contact"}`,
		"page-by-slug:about":   `{"title":"About"}`,
		"faq-page":             `{"title":"FAQ","faq":{"items":[{"question":"Q","answer":"A"}]}}`,
		"legal-page:terms":     `{"title":"Terms","content":{"heading":"Terms of Service","body":"Be nice."}}`,
	}}
	r := New(f)
	ctx := context.Background()

	if c, err := r.Contact(ctx); err != nil || c.Page == nil || c.Settings != nil {
		t.Errorf("Contact: got %+v, %v", c, err)
	}
	if a, err := r.About(ctx); err != nil || a.Page == nil {
		t.Errorf("About: got %+v, %v", a, err)
	}
	if p, err := r.FAQ(ctx); err != nil || p == nil || len(p.FAQ.Items) != 1 {
		t.Errorf("FAQ: got %+v, %v", p, err)
	}
	if p, err := r.Legal(ctx, "terms"); err != nil || p == nil || p.Content.Body.Markdown != "Be nice." {
		t.Errorf("Legal: got %+v, %v", p, err)
	}
	if p, err := r.Legal(ctx, "privacy-policy"); err != nil || p != nil {
		t.Errorf("Legal missing: got %+v, %v", p, err)
	}
}
