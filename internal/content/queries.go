// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package content

// Reusable projections. Images always carry hotspot and crop so the image
// URL builder can honor the editor's focal point.
const (
	imageProjection = `{ asset, alt, caption, hotspot, crop }`

	heroSlideFields = `
      _key,
      heading,
      subheading,
      paragraph,
      image ` + imageProjection + `,
      ctaText,
      ctaLink,
      secondCtaText,
      secondCtaLink,
      socialProofText`

	heroProjection = `hero {
      variant,` + heroSlideFields + `,
      slides[] {` + heroSlideFields + `
      }
    }`

	aboutUsProjection = `aboutUs {
      heading,
      subheading,
      description,
      image ` + imageProjection + `,
      features[] { title, description, icon },
      ctaText,
      ctaLink
    }`

	pricingProjection = `pricing {
      heading,
      subheading,
      plans[] {
        _key, title, price, currency, frequency, description,
        isPopular, features, ctaText, ctaLink
      }
    }`

	sectionsProjection = heroProjection + `,
    ` + aboutUsProjection + `,
    ` + pricingProjection + `,
    statsSection { heading, description, stats[] { _key, value, label, icon } },
    testimonialSection {
      heading,
      description,
      mainImage ` + imageProjection + `,
      testimonials[] { _key, author, role, quote, rating }
    },
    guaranteesSection {
      kicker, heading, intro,
      items[] { _key, title, description, icon, points },
      primaryButtonText, primaryButtonLink,
      secondaryButtonText, secondaryButtonLink
    },
    processSection { heading, description, steps[] { _key, title, description, icon } },
    serviceAreasSection { heading, description, areas[] { city, region } },
    teamSection {
      heading,
      description,
      members[] { _key, name, role, bio, image ` + imageProjection + ` }
    }`

	serviceCardProjection = `{
    _id,
    title,
    slug,
    shortDescription,
    icon,
    mainImage ` + imageProjection + `
  }`

	postCardProjection = `{
    _id,
    title,
    slug,
    publishedAt,
    excerpt,
    mainImage ` + imageProjection + `
  }`
)

// PageBySlug fetches a Page with every section it may carry. Params: slug.
var PageBySlug = Query{
	Name: "page-by-slug",
	GROQ: `*[_type == "page" && slug.current == $slug][0] {
    _id,
    title,
    slug,
    ` + sectionsProjection + `
  }`,
}

// FAQPage fetches the "faq" page hero and question list.
var FAQPage = Query{
	Name: "faq-page",
	GROQ: `*[_type == "page" && slug.current == "faq"][0] {
    _id,
    title,
    slug,
    ` + heroProjection + `,
    faq { title, description, items[] { question, answer } }
  }`,
}

// LegalPage fetches the rich body of a legal page. Params: slug.
var LegalPage = Query{
	Name: "legal-page",
	GROQ: `*[_type == "page" && slug.current == $slug][0] {
    _id,
    title,
    slug,
    content { heading, lastUpdated, body }
  }`,
}

// BlogPageData fetches the blog page hero and every post in one round trip.
// The result is an object: { "page": Page|null, "posts": [Post] }.
var BlogPageData = Query{
	Name: "blog-page-data",
	GROQ: `{
    "page": *[_type == "page" && slug.current == "blog"][0] {
      _id,
      title,
      slug,
      ` + heroProjection + `
    },
    "posts": *[_type == "post" && defined(slug.current)] | order(publishedAt desc) ` + postCardProjection + `
  }`,
}

// Posts lists every post, newest first.
var Posts = Query{
	Name: "posts",
	GROQ: `*[_type == "post" && defined(slug.current)] | order(publishedAt desc) ` + postCardProjection,
}

// LatestPosts lists the three newest posts for the home page preview.
var LatestPosts = Query{
	Name: "latest-posts",
	GROQ: `*[_type == "post" && defined(slug.current)] | order(publishedAt desc)[0...3] ` + postCardProjection,
}

// PostBySlug fetches one post with its body. Params: slug.
var PostBySlug = Query{
	Name: "post-by-slug",
	GROQ: `*[_type == "post" && slug.current == $slug][0] {
    _id,
    title,
    slug,
    publishedAt,
    excerpt,
    mainImage ` + imageProjection + `,
    body
  }`,
}

// Services lists every service ordered by title.
var Services = Query{
	Name: "services",
	GROQ: `*[_type == "service" && defined(slug.current)] | order(title asc) ` + serviceCardProjection,
}

// ServiceBySlug fetches one service with its detail page content. Params: slug.
var ServiceBySlug = Query{
	Name: "service-by-slug",
	GROQ: `*[_type == "service" && slug.current == $slug][0] {
    _id,
    title,
    slug,
    shortDescription,
    icon,
    mainImage ` + imageProjection + `,
    intro,
    highlights,
    benefits[] { title, description },
    serviceFaq[] { question, answer },
    content
  }`,
}

// SiteSettings fetches the settings singleton.
var SiteSettings = Query{
	Name: "site-settings",
	GROQ: `*[_type == "siteSettings"][0] {
    brandName,
    brandDescription,
    contact {
      phoneDisplay, phoneHref, email,
      addressLine1, addressLine2, emergencyNote
    },
    hours[] { label, value },
    footerLinks[] { label, href },
    socials[] { platform, url },
    contactPage {
      infoHeading, infoText, formHeading,
      nameLabel, phoneLabel, emailLabel, messageLabel,
      namePlaceholder, phonePlaceholder, emailPlaceholder, messagePlaceholder,
      submitText, disclaimer
    },
    footerLegal,
    serviceAreas[] { city, region }
  }`,
}
