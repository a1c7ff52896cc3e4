// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// page.go provides the Valkey-backed revalidation cache. A rendered route is
// stored under its path for the route's revalidation interval; until it
// expires, requests are served without touching the content API.
package cache

import (
	"context"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"rooters/internal/metrics"
)

const (
	// pageKeyPrefix is the Valkey key prefix for cached pages.
	pageKeyPrefix = "page:"

	// DefaultPageTTL applies when a caller passes a zero interval.
	DefaultPageTTL = time.Minute
)

// Entry is a cached response: the body plus the content type it was
// served with.
type Entry struct {
	ContentType string
	Body        []byte
}

// Pages is the subset of PageCache the handlers depend on.
type Pages interface {
	Get(ctx context.Context, key string) (*Entry, bool)
	Set(ctx context.Context, key string, e *Entry, ttl time.Duration)
}

// PageCache manages full-page caching in Valkey.
type PageCache struct {
	client *redis.Client
}

// NewPageCache creates a new page cache backed by the given Valkey client.
func NewPageCache(client *redis.Client) *PageCache {
	return &PageCache{client: client}
}

// Get retrieves a cached page. Errors count as misses so a Valkey outage
// only costs a render.
func (pc *PageCache) Get(ctx context.Context, key string) (*Entry, bool) {
	vals, err := pc.client.HMGet(ctx, pageKeyPrefix+key, "type", "body").Result()
	if err != nil {
		slog.Warn("page cache get error", "key", key, "error", err)
		metrics.ObservePageCache(metrics.CacheError)
		return nil, false
	}
	ct, _ := vals[0].(string)
	body, ok := vals[1].(string)
	if !ok {
		metrics.ObservePageCache(metrics.CacheMiss)
		return nil, false
	}
	slog.Debug("page cache hit", "key", key)
	metrics.ObservePageCache(metrics.CacheHit)
	return &Entry{ContentType: ct, Body: []byte(body)}, true
}

// Set stores a rendered page for ttl.
func (pc *PageCache) Set(ctx context.Context, key string, e *Entry, ttl time.Duration) {
	if ttl <= 0 {
		ttl = DefaultPageTTL
	}
	k := pageKeyPrefix + key
	_, err := pc.client.TxPipelined(ctx, func(p redis.Pipeliner) error {
		p.HSet(ctx, k, "type", e.ContentType, "body", e.Body)
		p.Expire(ctx, k, ttl)
		return nil
	})
	if err != nil {
		slog.Warn("page cache set error", "key", key, "error", err)
	}
}

// InvalidatePage removes a single cached path.
func (pc *PageCache) InvalidatePage(ctx context.Context, key string) {
	if err := pc.client.Del(ctx, pageKeyPrefix+key).Err(); err != nil {
		slog.Warn("page cache invalidate error", "key", key, "error", err)
		return
	}
	slog.Debug("page cache invalidated", "key", key)
}

// InvalidateAll removes all cached pages by scanning for the prefix. Used
// on startup so a deploy never serves markup from the previous templates.
func (pc *PageCache) InvalidateAll(ctx context.Context) {
	var cursor uint64
	var deleted int
	for {
		keys, nextCursor, err := pc.client.Scan(ctx, cursor, pageKeyPrefix+"*", 100).Result()
		if err != nil {
			slog.Warn("page cache scan error", "error", err)
			return
		}
		if len(keys) > 0 {
			if err := pc.client.Del(ctx, keys...).Err(); err != nil {
				slog.Warn("page cache bulk delete error", "error", err)
			}
			deleted += len(keys)
		}
		cursor = nextCursor
		if cursor == 0 {
			break
		}
	}
	if deleted > 0 {
		slog.Info("page cache fully cleared", "deleted", deleted)
	}
}

// PathKey returns the cache key for a request path. The query string is
// ignored; no public route reads it.
func PathKey(path string) string {
	if path == "" {
		return "/"
	}
	return path
}
