// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package content

import (
	"context"
	"sync"

	"golang.org/x/sync/singleflight"
)

// memo deduplicates identical queries within one request. The navbar, the
// footer and the page body often ask for the same settings or service list;
// with a memo installed they share one round trip. Only raw result bytes
// are stored, every caller decodes into its own value.
type memo struct {
	group singleflight.Group

	mu      sync.Mutex
	results map[string][]byte
}

type memoKey struct{}

// WithMemo returns a context that carries a fresh request-scoped memo.
func WithMemo(ctx context.Context) context.Context {
	return context.WithValue(ctx, memoKey{}, &memo{results: make(map[string][]byte)})
}

// memoize runs fn once per key for the memo in ctx. Errors are shared with
// concurrent callers but not stored. Without a memo fn always runs.
func memoize(ctx context.Context, key string, fn func() ([]byte, error)) ([]byte, error) {
	m, _ := ctx.Value(memoKey{}).(*memo)
	if m == nil {
		return fn()
	}

	m.mu.Lock()
	raw, ok := m.results[key]
	m.mu.Unlock()
	if ok {
		return raw, nil
	}

	v, err, _ := m.group.Do(key, func() (any, error) {
		raw, err := fn()
		if err != nil {
			return nil, err
		}
		m.mu.Lock()
		m.results[key] = raw
		m.mu.Unlock()
		return raw, nil
	})
	if err != nil {
		return nil, err
	}
	return v.([]byte), nil
}
