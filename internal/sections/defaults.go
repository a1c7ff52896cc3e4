// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package sections

// Defaults for optional copy, one table per section. Templates never carry
// fallback text of their own.

var heroDefaults = struct {
	SocialProof string
}{
	SocialProof: "Trusted by local homeowners",
}

var aboutDefaults = struct {
	Badge string
}{
	Badge: "Years Of Excellence",
}

var pricingDefaults = struct {
	Subheading  string
	Description string
	Note        string
	CTA         Link
	Disclaimer  string
}{
	Subheading:  "Special Offers",
	Description: "Limited-time deals designed to help you save on essential repairs, upgrades, and maintenance.",
	Note:        "Claim online & save instantly",
	CTA:         Link{Text: "CLAIM COUPON", Href: "/contact"},
	Disclaimer:  "Limited time offer. Terms may apply.",
}

var testimonialDefaults = struct {
	Kicker  string
	Heading string
	Role    string
	Rating  int
}{
	Kicker:  "Testimonials",
	Heading: "Trusted by your Neighbors",
	Role:    "Homeowner",
	Rating:  5,
}

var guaranteeDefaults = struct {
	Kicker    string
	Primary   Link
	Secondary Link
	Limit     int
}{
	Kicker:    "Your Ultimate Satisfaction Assured",
	Primary:   Link{Text: "Financing", Href: "/contact"},
	Secondary: Link{Text: "Frequently Asked Questions", Href: "/faq"},
	Limit:     4,
}

var servicesDefaults = struct {
	Kicker      string
	Heading     string
	Description string
	TileLimit   int
	ViewAll     Link
}{
	Kicker:      "Our Expertise",
	Heading:     "Complete Home Infrastructure Solutions",
	Description: "From emergency repairs to energy-efficient upgrades, we provide professional services backed by our satisfaction guarantee.",
	TileLimit:   4,
	ViewAll:     Link{Text: "View All Services", Href: "/services"},
}

var blogDefaults = struct {
	Heading     string
	Description string
	Limit       int
	ViewAll     Link
}{
	Heading:     "Latest Insights",
	Description: "Tips, maintenance advice, and plumbing know-how from the Rooters team.",
	Limit:       3,
	ViewAll:     Link{Text: "View All Posts", Href: "/blog"},
}

var processDefaults = struct {
	Heading string
}{
	Heading: "How It Works",
}

var serviceAreaDefaults = struct {
	Kicker      string
	Heading     string
	Description string
}{
	Kicker:      "Service Areas",
	Heading:     "Areas We Serve",
	Description: "Providing professional service to communities throughout the region.",
}

var teamDefaults = struct {
	Heading     string
	Description string
}{
	Heading:     "Meet Our Team",
	Description: "Dedicated professionals committed to exceptional service.",
}

var faqDefaults = struct {
	Title string
}{
	Title: "FAQ",
}

var contactDefaults = ContactForm{
	InfoHeading:        "Get in Touch",
	InfoText:           "Fill out the form or call us directly. We're here to help.",
	FormHeading:        "Send us a message",
	NameLabel:          "Name",
	PhoneLabel:         "Phone",
	EmailLabel:         "Email",
	MessageLabel:       "Message",
	NamePlaceholder:    "John Doe",
	PhonePlaceholder:   "(555) 000-0000",
	EmailPlaceholder:   "john@example.com",
	MessagePlaceholder: "How can we help?",
	SubmitText:         "Send Message",
}

var chromeDefaults = struct {
	Brand            string
	BrandDescription string
	QuickLinks       []Link
	NavLinks         []Link
	NavServices      int
	FooterServices   int
	Quote            Link
	CallSupport      Link
}{
	Brand:            "Rooters",
	BrandDescription: "Your trusted partner for eco-friendly plumbing and HVAC solutions. Serving the community with integrity and excellence.",
	QuickLinks: []Link{
		{Text: "Home", Href: "/"},
		{Text: "About Us", Href: "/about"},
		{Text: "Services", Href: "/services"},
		{Text: "Contact", Href: "/contact"},
	},
	NavLinks: []Link{
		{Text: "About", Href: "/about"},
		{Text: "Blog", Href: "/blog"},
		{Text: "Contact", Href: "/contact"},
	},
	NavServices:    3,
	FooterServices: 5,
	Quote:          Link{Text: "Get a Quote", Href: "/contact"},
	CallSupport:    Link{Text: "Call Support", Href: "/contact"},
}
