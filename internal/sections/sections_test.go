// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package sections

import (
	"math"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"rooters/internal/models"
)

func ptr[T any](v T) *T { return &v }

func img(ref string) *models.Image {
	return &models.Image{Asset: &models.AssetRef{Ref: ref}}
}

func TestAbsentSectionsResolveToNil(t *testing.T) {
	if v := Hero(nil); v != nil {
		t.Error("Hero(nil) should be nil")
	}
	if v := About(nil); v != nil {
		t.Error("About(nil) should be nil")
	}
	if v := Pricing(nil); v != nil {
		t.Error("Pricing(nil) should be nil")
	}
	if v := Testimonials(nil); v != nil {
		t.Error("Testimonials(nil) should be nil")
	}
	if v := Guarantees(nil); v != nil {
		t.Error("Guarantees(nil) should be nil")
	}
	if v := Process(nil); v != nil {
		t.Error("Process(nil) should be nil")
	}
	if v := Stats(nil); v != nil {
		t.Error("Stats(nil) should be nil")
	}
	if v := Team(nil); v != nil {
		t.Error("Team(nil) should be nil")
	}
	if v := ServiceAreas(nil, nil); v != nil {
		t.Error("ServiceAreas(nil, nil) should be nil")
	}
	if v := ServiceTiles(nil); v != nil {
		t.Error("ServiceTiles(nil) should be nil")
	}
	if v := BlogPreview(nil); v != nil {
		t.Error("BlogPreview(nil) should be nil")
	}
}

func TestHero(t *testing.T) {
	t.Run("home with zero usable slides", func(t *testing.T) {
		h := &models.HeroSection{
			Variant: models.HeroVariantHome,
			Slides:  []models.HeroSlide{{Paragraph: "no heading, no image"}},
		}
		if v := Hero(h); v != nil {
			t.Errorf("Hero: got %d slides, want nil", len(v.Slides))
		}
	})

	t.Run("home carousel", func(t *testing.T) {
		h := &models.HeroSection{
			Variant: models.HeroVariantHome,
			Slides: []models.HeroSlide{
				{Heading: "Drains", CTAText: "Book", CTALink: "/contact"},
				{Image: img("image-a-10x10-jpg")},
				{},
			},
		}
		v := Hero(h)
		if v == nil {
			t.Fatal("Hero: got nil")
		}
		if len(v.Slides) != 2 {
			t.Fatalf("slides: got %d, want 2", len(v.Slides))
		}
		if !v.Carousel {
			t.Error("carousel should be enabled for two slides")
		}
		if v.Slides[1].Index != 1 {
			t.Errorf("index: got %d, want 1", v.Slides[1].Index)
		}
		if diff := cmp.Diff(&Link{Text: "Book", Href: "/contact"}, v.Slides[0].CTA); diff != "" {
			t.Errorf("cta mismatch (-want +got):\n%s", diff)
		}
		if v.Slides[0].SocialProof != heroDefaults.SocialProof {
			t.Errorf("social proof: got %q, want default", v.Slides[0].SocialProof)
		}
	})

	t.Run("single slide has no carousel", func(t *testing.T) {
		h := &models.HeroSection{
			Variant: models.HeroVariantHome,
			Slides:  []models.HeroSlide{{Heading: "Only"}},
		}
		if v := Hero(h); v == nil || v.Carousel {
			t.Error("single slide should render without a carousel")
		}
	})

	t.Run("default variant uses flat fields", func(t *testing.T) {
		h := &models.HeroSection{
			Variant:   "something-else",
			Slides:    []models.HeroSlide{{Heading: "ignored"}},
			HeroSlide: models.HeroSlide{Heading: "About Us", CTAText: "Call", CTALink: ""},
		}
		v := Hero(h)
		if v == nil {
			t.Fatal("Hero: got nil")
		}
		if v.Variant != models.HeroVariantDefault {
			t.Errorf("variant: got %q, want %q", v.Variant, models.HeroVariantDefault)
		}
		if got := v.First().Heading; got != "About Us" {
			t.Errorf("heading: got %q, want %q", got, "About Us")
		}
		if v.First().CTA != nil {
			t.Error("one-sided CTA should be dropped")
		}
	})
}

func TestPricingDisclaimer(t *testing.T) {
	p := &models.PricingSection{
		Heading: "Coupons",
		Plans: []models.PricingPlan{
			{Title: "Drain Cleaning", Price: "49"},
			{Title: "Tune-up", Price: "89", Features: []string{"Inspection", ""}},
			{Description: "no title or price"},
		},
	}
	v := Pricing(p)
	if v == nil {
		t.Fatal("Pricing: got nil")
	}
	if len(v.Plans) != 2 {
		t.Fatalf("plans: got %d, want 2", len(v.Plans))
	}
	if got := v.Plans[0].Disclaimer; got != pricingDefaults.Disclaimer {
		t.Errorf("disclaimer: got %q, want %q", got, pricingDefaults.Disclaimer)
	}
	if got := v.Plans[1].Disclaimer; got != "" {
		t.Errorf("disclaimer with features: got %q, want empty", got)
	}
	if diff := cmp.Diff([]string{"Inspection"}, v.Plans[1].Features); diff != "" {
		t.Errorf("features mismatch (-want +got):\n%s", diff)
	}
	if v.Plans[0].CTA != pricingDefaults.CTA {
		t.Errorf("cta: got %+v, want default", v.Plans[0].CTA)
	}

	if Pricing(&models.PricingSection{Plans: p.Plans}) != nil {
		t.Error("pricing without a heading should be nil")
	}
}

func TestGuarantees(t *testing.T) {
	items := func(n int) []models.GuaranteeItem {
		out := make([]models.GuaranteeItem, n)
		for i := range out {
			out[i] = models.GuaranteeItem{Title: "G", Icon: "shield"}
		}
		return out
	}

	tests := []struct {
		name    string
		in      *models.GuaranteesSectionData
		wantNil bool
		want    int
	}{
		{"five items truncated", &models.GuaranteesSectionData{Heading: "H", Items: items(5)}, false, 4},
		{"three items kept", &models.GuaranteesSectionData{Heading: "H", Items: items(3)}, false, 3},
		{"no items", &models.GuaranteesSectionData{Heading: "H"}, true, 0},
		{"no heading", &models.GuaranteesSectionData{Items: items(2)}, true, 0},
		{"untitled items", &models.GuaranteesSectionData{Heading: "H", Items: []models.GuaranteeItem{{Description: "d"}}}, true, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := Guarantees(tt.in)
			if tt.wantNil {
				if v != nil {
					t.Errorf("got %d items, want nil", len(v.Items))
				}
				return
			}
			if v == nil {
				t.Fatal("got nil")
			}
			if len(v.Items) != tt.want {
				t.Errorf("items: got %d, want %d", len(v.Items), tt.want)
			}
			if v.Primary != guaranteeDefaults.Primary {
				t.Errorf("primary: got %+v, want default", v.Primary)
			}
		})
	}
}

func TestClampRating(t *testing.T) {
	tests := []struct {
		name string
		in   *float64
		want int
	}{
		{"absent", nil, 5},
		{"nan", ptr(math.NaN()), 5},
		{"over", ptr(7.0), 5},
		{"negative", ptr(-2.0), 0},
		{"fraction floors", ptr(4.7), 4},
		{"exact", ptr(3.0), 3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ClampRating(tt.in); got != tt.want {
				t.Errorf("ClampRating: got %d, want %d", got, tt.want)
			}
		})
	}
}

func TestTestimonialsPaging(t *testing.T) {
	var raw []models.TestimonialItem
	for range 6 {
		raw = append(raw, models.TestimonialItem{Author: "jane", Quote: "Great work", Rating: ptr(7.0)})
	}
	raw = append(raw, models.TestimonialItem{Author: "no quote"})

	v := Testimonials(&models.TestimonialSectionData{Testimonials: raw})
	if v == nil {
		t.Fatal("Testimonials: got nil")
	}
	if len(v.Items) != 6 {
		t.Errorf("items: got %d, want 6", len(v.Items))
	}
	if len(v.Pages) != 2 {
		t.Errorf("pages: got %d, want 2", len(v.Pages))
	}
	if !v.DesktopCarousel || !v.MobileCarousel {
		t.Error("both carousels should have controls")
	}
	first := v.Items[0]
	if first.Rating != 5 || first.Initial != "J" || first.Role != testimonialDefaults.Role {
		t.Errorf("item: got %+v", first)
	}
	if diff := cmp.Diff([]bool{true, true, true, true, true}, first.Stars); diff != "" {
		t.Errorf("stars mismatch (-want +got):\n%s", diff)
	}

	one := Testimonials(&models.TestimonialSectionData{Testimonials: raw[:1]})
	if one.DesktopCarousel || one.MobileCarousel {
		t.Error("a single testimonial needs no controls")
	}
}

func TestFAQ(t *testing.T) {
	t.Run("empty", func(t *testing.T) {
		v := FAQ(&models.Page{Title: "Questions"})
		if !v.Empty() {
			t.Error("FAQ without items should be empty")
		}
		if v.Title != "Questions" {
			t.Errorf("title: got %q, want %q", v.Title, "Questions")
		}
	})

	t.Run("nil page", func(t *testing.T) {
		if v := FAQ(nil); !v.Empty() || v.Title != "FAQ" {
			t.Errorf("got %+v", v)
		}
	})

	t.Run("ids are unique", func(t *testing.T) {
		p := &models.Page{FAQ: &models.FaqSection{
			Title: "Plumbing FAQ",
			Items: []models.FaqItem{
				{Question: "Do you offer emergency service?", Answer: "Yes."},
				{Question: "Do you offer emergency service?", Answer: "Still yes."},
				{Answer: "orphan"},
			},
		}}
		v := FAQ(p)
		want := []FAQItemView{
			{ID: "faq-do-you-offer-emergency-service", Question: "Do you offer emergency service?", Answer: "Yes."},
			{ID: "faq-do-you-offer-emergency-service-2", Question: "Do you offer emergency service?", Answer: "Still yes."},
		}
		if diff := cmp.Diff(want, v.Items); diff != "" {
			t.Errorf("items mismatch (-want +got):\n%s", diff)
		}
		if v.Title != "Plumbing FAQ" {
			t.Errorf("title: got %q", v.Title)
		}
	})
}

func TestServiceTiles(t *testing.T) {
	var items []models.ServiceItem
	for _, s := range []string{"drain-cleaning", "water-heaters", "leak-detection", "sewer-lines", "hvac"} {
		items = append(items, models.ServiceItem{Title: s, Slug: models.Slug{Current: s}})
	}
	items = append(items, models.ServiceItem{Title: "Bad", Slug: models.Slug{Current: "not/a/slug"}})

	v := ServiceTiles(items)
	if v == nil {
		t.Fatal("ServiceTiles: got nil")
	}
	if len(v.Items) != 4 {
		t.Errorf("tiles: got %d, want 4", len(v.Items))
	}
	if v.Items[0].Href != "/services/drain-cleaning" {
		t.Errorf("href: got %q", v.Items[0].Href)
	}
	if v.ViewAll == nil || *v.ViewAll != servicesDefaults.ViewAll {
		t.Errorf("view all: got %+v", v.ViewAll)
	}
	if got := len(ServiceCards(items).Items); got != 5 {
		t.Errorf("cards: got %d, want 5", got)
	}
}

func TestServiceAreasFallback(t *testing.T) {
	site := []models.ServiceArea{{City: "Springfield"}, {Region: "no city"}}
	v := ServiceAreas(&models.ServiceAreasSection{Heading: "Page heading"}, site)
	if v == nil {
		t.Fatal("ServiceAreas: got nil")
	}
	if v.Heading != serviceAreaDefaults.Heading {
		t.Errorf("heading: got %q, want default", v.Heading)
	}
	if len(v.Areas) != 1 {
		t.Errorf("areas: got %d, want 1", len(v.Areas))
	}
}

func TestContact(t *testing.T) {
	v := Contact(&models.SiteSettings{
		Contact: &models.ContactInfo{PhoneDisplay: "(555) 123-4567", AddressLine2: "Suite 4"},
		Hours:   []models.HoursItem{{Label: "Mon-Fri", Value: "8-6"}, {}},
		ContactPage: &models.ContactPage{
			FormHeading: "Request service",
		},
	})
	if v.Phone == nil || v.Phone.Href != "tel:5551234567" {
		t.Errorf("phone: got %+v", v.Phone)
	}
	if diff := cmp.Diff([]string{"Suite 4"}, v.Address); diff != "" {
		t.Errorf("address mismatch (-want +got):\n%s", diff)
	}
	if len(v.Hours) != 1 {
		t.Errorf("hours: got %d, want 1", len(v.Hours))
	}
	if v.Form.FormHeading != "Request service" || v.Form.SubmitText != contactDefaults.SubmitText {
		t.Errorf("form: got %+v", v.Form)
	}

	if d := Contact(nil); d.Phone != nil || d.Form != contactDefaults {
		t.Errorf("nil settings: got %+v", d)
	}
}

func TestChrome(t *testing.T) {
	now := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	services := []models.ServiceItem{
		{Title: "Water Heaters", Slug: models.Slug{Current: "water-heaters"}},
		{Title: "drain cleaning", Slug: models.Slug{Current: "drain-cleaning"}},
		{Title: "HVAC", Slug: models.Slug{Current: "hvac"}},
		{Title: "Leak Detection", Slug: models.Slug{Current: "leak-detection"}},
	}

	t.Run("defaults", func(t *testing.T) {
		v := Chrome(nil, services, now)
		if v.Navbar.Brand != "Rooters" {
			t.Errorf("brand: got %q", v.Navbar.Brand)
		}
		want := []Link{
			{Text: "drain cleaning", Href: "/services/drain-cleaning"},
			{Text: "HVAC", Href: "/services/hvac"},
			{Text: "Leak Detection", Href: "/services/leak-detection"},
		}
		if diff := cmp.Diff(want, v.Navbar.Services); diff != "" {
			t.Errorf("nav services mismatch (-want +got):\n%s", diff)
		}
		if len(v.Footer.Services) != 4 {
			t.Errorf("footer services: got %d, want 4", len(v.Footer.Services))
		}
		if v.Footer.Legal != "© 2026 Rooters. All rights reserved." {
			t.Errorf("legal: got %q", v.Footer.Legal)
		}
		if v.Footer.CallCTA != chromeDefaults.CallSupport {
			t.Errorf("call cta: got %+v", v.Footer.CallCTA)
		}
		if v.Call != nil {
			t.Error("call link without a phone should be nil")
		}
	})

	t.Run("settings", func(t *testing.T) {
		s := &models.SiteSettings{
			BrandName: "Acme Plumbing",
			Contact:   &models.ContactInfo{PhoneDisplay: "555-0100", PhoneHref: "tel:+15550100"},
			Socials: []models.SocialLink{
				{Platform: "Facebook", URL: "https://facebook.com/acme"},
				{Platform: "", URL: "https://x.com/acme"},
				{Platform: "Myspace", URL: "https://myspace.com/acme"},
			},
			FooterLinks: []models.SiteLink{{Label: "Careers", Href: "/careers"}, {Label: "Broken"}},
		}
		v := Chrome(s, nil, now)
		if v.Footer.Legal != "© 2026 Acme Plumbing. All rights reserved." {
			t.Errorf("legal: got %q", v.Footer.Legal)
		}
		if len(v.Footer.Socials) != 2 {
			t.Errorf("socials: got %d, want 2", len(v.Footer.Socials))
		}
		if diff := cmp.Diff([]Link{{Text: "Careers", Href: "/careers"}}, v.Footer.QuickLinks); diff != "" {
			t.Errorf("quick links mismatch (-want +got):\n%s", diff)
		}
		if v.Call == nil || v.Call.Href != "tel:+15550100" {
			t.Errorf("call: got %+v", v.Call)
		}
	})
}

func TestFormatDate(t *testing.T) {
	tests := []struct{ in, want string }{
		{"2024-05-03T10:00:00Z", "May 3, 2024"},
		{"2024-05-03", "May 3, 2024"},
		{"", ""},
		{"someday", "someday"},
	}
	for _, tt := range tests {
		if got := FormatDate(tt.in); got != tt.want {
			t.Errorf("FormatDate(%q): got %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestPostAndLegal(t *testing.T) {
	p := Post(&models.Post{Title: "Winterize", PublishedAt: "2024-11-01"}, "")
	if p.Date != "November 1, 2024" || p.Image != nil {
		t.Errorf("post: got %+v", p)
	}
	if Post(nil, "") != nil {
		t.Error("Post(nil) should be nil")
	}

	l := Legal(&models.Page{Title: "Privacy Policy", Content: &models.LegalContent{LastUpdated: "2025-01-15"}}, "")
	if l.Heading != "Privacy Policy" || l.LastUpdated != "January 15, 2025" {
		t.Errorf("legal: got %+v", l)
	}
}
