// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package content

import "context"

type previewKey struct{}

// WithPreview marks ctx as a draft preview request.
func WithPreview(ctx context.Context) context.Context {
	return context.WithValue(ctx, previewKey{}, true)
}

// IsPreview reports whether ctx belongs to a draft preview request.
func IsPreview(ctx context.Context) bool {
	v, _ := ctx.Value(previewKey{}).(bool)
	return v
}

// Switch routes each fetch to the published or the draft configuration,
// depending on the request context. It is the only place that decides.
type Switch struct {
	Published Fetcher
	Preview   Fetcher
}

// Fetch implements Fetcher.
func (s *Switch) Fetch(ctx context.Context, q Query, params Params, dest any) (bool, error) {
	if IsPreview(ctx) && s.Preview != nil {
		return s.Preview.Fetch(ctx, q, params, dest)
	}
	return s.Published.Fetch(ctx, q, params, dest)
}

// PreviewEnabled reports whether a draft configuration is available.
func (s *Switch) PreviewEnabled() bool {
	return s.Preview != nil
}
