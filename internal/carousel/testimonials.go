// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package carousel

// DesktopPerPage is how many testimonial cards share one desktop page.
const DesktopPerPage = 4

// Pages returns how many pages n items fill at perPage per page. Zero items
// still make one (empty) page.
func Pages(n, perPage int) int {
	if perPage <= 0 || n <= 0 {
		return 1
	}
	return (n + perPage - 1) / perPage
}

// Testimonials pairs the desktop paged grid with the mobile single-card
// view. Each has its own index and timer; only the one matching the current
// viewport is visible.
type Testimonials struct {
	Desktop *Carousel
	Mobile  *Carousel
}

// NewTestimonials builds both views over n testimonials.
func NewTestimonials(n int, opts Options) *Testimonials {
	return &Testimonials{
		Desktop: New(Pages(n, DesktopPerPage), opts),
		Mobile:  New(n, opts),
	}
}

// Resize updates both views for a new item count and page size, clamping
// their indexes.
func (t *Testimonials) Resize(n, perPage int) {
	t.Desktop.SetCount(Pages(n, perPage))
	t.Mobile.SetCount(n)
}

// Destroy stops both timers.
func (t *Testimonials) Destroy() {
	t.Desktop.Destroy()
	t.Mobile.Destroy()
}
