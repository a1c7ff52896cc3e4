// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package content talks to the hosted structured-content API. It sends named
// GROQ projections over HTTP and decodes the result member of the response
// envelope into typed models.
package content

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/tidwall/gjson"
	"golang.org/x/time/rate"

	"rooters/internal/metrics"
)

// Perspectives understood by the content API.
const (
	PerspectivePublished = "published"
	PerspectiveDrafts    = "previewDrafts"
)

// DefaultAPIVersion is the dated API version used when none is configured.
const DefaultAPIVersion = "2024-01-01"

// maxResponseBytes caps how much of a response body is read.
const maxResponseBytes = 8 << 20

// Fetcher runs a named query and decodes its result into dest. It reports
// found=false with a nil error when the result is null.
type Fetcher interface {
	Fetch(ctx context.Context, q Query, params Params, dest any) (bool, error)
}

// Config describes one content API configuration.
type Config struct {
	// Variant names this configuration ("cdn", "preview") in logs and memo keys.
	Variant    string
	ProjectID  string
	Dataset    string
	APIVersion string
	// Token is sent as a bearer token. Required to read drafts.
	Token string
	// UseCDN selects the cached edge host. Ignored when Token is set, the CDN
	// never serves authenticated reads.
	UseCDN      bool
	Perspective string
	Timeout     time.Duration
	// BaseURL overrides the host derived from ProjectID. Used by tests.
	BaseURL string
	// Limiter throttles outbound requests. Nil means unlimited.
	Limiter *rate.Limiter
}

// Client is a content API client bound to one configuration. It is safe for
// concurrent use.
type Client struct {
	variant     string
	endpoint    string
	token       string
	perspective string
	http        *http.Client
	limiter     *rate.Limiter
}

// NewClient validates cfg and returns a client for it.
func NewClient(cfg Config) (*Client, error) {
	if cfg.Dataset == "" {
		return nil, errors.New("content: dataset is required")
	}
	base := strings.TrimRight(cfg.BaseURL, "/")
	if base == "" {
		if cfg.ProjectID == "" {
			return nil, errors.New("content: project ID is required")
		}
		host := "api.sanity.io"
		if cfg.UseCDN && cfg.Token == "" {
			host = "apicdn.sanity.io"
		}
		base = "https://" + cfg.ProjectID + "." + host
	}

	version := strings.TrimPrefix(cfg.APIVersion, "v")
	if version == "" {
		version = DefaultAPIVersion
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}

	variant := cfg.Variant
	if variant == "" {
		variant = "default"
	}

	return &Client{
		variant:     variant,
		endpoint:    base + "/v" + version + "/data/query/" + url.PathEscape(cfg.Dataset),
		token:       cfg.Token,
		perspective: cfg.Perspective,
		http:        &http.Client{Timeout: timeout},
		limiter:     cfg.Limiter,
	}, nil
}

// Variant returns the configuration name.
func (c *Client) Variant() string {
	return c.variant
}

// Fetch runs q and decodes its result into dest. Identical fetches within a
// context carrying a memo (see WithMemo) share one round trip.
func (c *Client) Fetch(ctx context.Context, q Query, params Params, dest any) (bool, error) {
	values, err := c.values(q, params)
	if err != nil {
		return false, fmt.Errorf("content: query %s: %w", q.Name, err)
	}

	key := c.variant + "|" + q.Name + "|" + values.Encode()
	raw, err := memoize(ctx, key, func() ([]byte, error) {
		return c.roundTrip(ctx, q, values)
	})
	if err != nil {
		return false, err
	}
	if raw == nil {
		return false, nil
	}

	if err := json.Unmarshal(raw, dest); err != nil {
		return false, fmt.Errorf("content: decoding %s: %w: %w", q.Name, ErrUpstream, err)
	}
	return true, nil
}

func (c *Client) values(q Query, params Params) (url.Values, error) {
	v := url.Values{}
	v.Set("query", q.GROQ)
	if q.Name != "" {
		v.Set("tag", q.Name)
	}
	if c.perspective != "" {
		v.Set("perspective", c.perspective)
	}
	if err := params.encode(v); err != nil {
		return nil, err
	}
	return v, nil
}

// roundTrip performs the HTTP request and returns the raw JSON of the result
// member, or nil when the result is null or absent.
func (c *Client) roundTrip(ctx context.Context, q Query, values url.Values) ([]byte, error) {
	start := time.Now()
	raw, err := c.do(ctx, q, values)

	outcome := "ok"
	switch {
	case err != nil:
		outcome = "error"
	case raw == nil:
		outcome = "not_found"
	}
	metrics.ObserveContentFetch(q.Name, outcome, time.Since(start))

	return raw, err
}

func (c *Client) do(ctx context.Context, q Query, values url.Values) ([]byte, error) {
	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return nil, fmt.Errorf("content: query %s: rate limit: %w: %w", q.Name, ErrUpstream, err)
		}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.endpoint+"?"+values.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("content: query %s: building request: %w", q.Name, err)
	}
	req.Header.Set("Accept", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("content: query %s: %w: %w", q.Name, ErrUpstream, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return nil, fmt.Errorf("content: query %s: reading body: %w: %w", q.Name, ErrUpstream, err)
	}

	if !gjson.ValidBytes(body) {
		if resp.StatusCode/100 != 2 {
			return nil, &APIError{Query: q.Name, Status: resp.StatusCode}
		}
		return nil, fmt.Errorf("content: query %s: response is not JSON: %w", q.Name, ErrUpstream)
	}

	envelope := gjson.ParseBytes(body)
	if apiErr := envelope.Get("error"); apiErr.Exists() || resp.StatusCode/100 != 2 {
		desc := apiErr.Get("description").String()
		if desc == "" && apiErr.Type == gjson.String {
			desc = apiErr.String()
		}
		return nil, &APIError{Query: q.Name, Status: resp.StatusCode, Description: desc}
	}

	slog.Debug("content query",
		"query", q.Name,
		"variant", c.variant,
		"server_ms", envelope.Get("ms").Int(),
		"bytes", len(body),
	)

	result := envelope.Get("result")
	if !result.Exists() || result.Type == gjson.Null {
		return nil, nil
	}
	return []byte(result.Raw), nil
}

// One fetches a single document. It returns nil when nothing matched.
func One[T any](ctx context.Context, f Fetcher, q Query, params Params) (*T, error) {
	var v T
	found, err := f.Fetch(ctx, q, params, &v)
	if err != nil || !found {
		return nil, err
	}
	return &v, nil
}

// List fetches a collection. It returns nil when the result is null.
func List[T any](ctx context.Context, f Fetcher, q Query, params Params) ([]T, error) {
	var v []T
	if _, err := f.Fetch(ctx, q, params, &v); err != nil {
		return nil, err
	}
	return v, nil
}
