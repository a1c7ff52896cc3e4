// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package content

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/google/go-cmp/cmp"
)

type fakeDoc struct {
	ID    string `json:"_id"`
	Title string `json:"title"`
}

// fakeAPI answers content queries by tag and counts hits per tag.
type fakeAPI struct {
	mu        sync.Mutex
	responses map[string]fakeResponse
	hits      map[string]int
	last      *http.Request
}

type fakeResponse struct {
	status int
	body   string
}

func newFakeAPI(t *testing.T, responses map[string]fakeResponse) (*fakeAPI, *httptest.Server) {
	t.Helper()
	api := &fakeAPI{responses: responses, hits: make(map[string]int)}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		tag := r.URL.Query().Get("tag")
		api.mu.Lock()
		api.hits[tag]++
		api.last = r
		resp, ok := api.responses[tag]
		api.mu.Unlock()
		if !ok {
			resp = fakeResponse{status: http.StatusOK, body: `{"result":null,"ms":1}`}
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(resp.status)
		_, _ = w.Write([]byte(resp.body))
	}))
	t.Cleanup(srv.Close)
	return api, srv
}

func (a *fakeAPI) hitCount(tag string) int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.hits[tag]
}

func newTestClient(t *testing.T, baseURL string, token string) *Client {
	t.Helper()
	c, err := NewClient(Config{
		Variant: "test",
		Dataset: "production",
		BaseURL: baseURL,
		Token:   token,
	})
	if err != nil {
		t.Fatalf("NewClient: %v", err)
	}
	return c
}

var docQuery = Query{Name: "doc", GROQ: `*[_type == "doc" && slug.current == $slug][0]`}

func TestFetchDecodesResult(t *testing.T) {
	_, srv := newFakeAPI(t, map[string]fakeResponse{
		"doc": {http.StatusOK, `{"result":{"_id":"d1","title":"Drain Cleaning"},"ms":3}`},
	})
	c := newTestClient(t, srv.URL, "")

	doc, err := One[fakeDoc](context.Background(), c, docQuery, Params{"slug": "drain-cleaning"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := &fakeDoc{ID: "d1", Title: "Drain Cleaning"}
	if diff := cmp.Diff(want, doc); diff != "" {
		t.Errorf("doc mismatch (-want +got):\n%s", diff)
	}
}

func TestFetchNullResultIsNotFound(t *testing.T) {
	_, srv := newFakeAPI(t, nil)
	c := newTestClient(t, srv.URL, "")

	doc, err := One[fakeDoc](context.Background(), c, docQuery, Params{"slug": "missing"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if doc != nil {
		t.Errorf("expected nil, got %+v", doc)
	}

	list, err := List[fakeDoc](context.Background(), c, Query{Name: "list", GROQ: `*[_type == "doc"]`}, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if list != nil {
		t.Errorf("expected nil list, got %v", list)
	}
}

func TestFetchErrors(t *testing.T) {
	tests := []struct {
		name     string
		resp     fakeResponse
		wantDesc string
	}{
		{"error envelope", fakeResponse{http.StatusBadRequest, `{"error":{"description":"param $slug referenced, but not provided"}}`}, "param $slug referenced, but not provided"},
		{"server error without JSON", fakeResponse{http.StatusBadGateway, `<html>bad gateway</html>`}, ""},
		{"server error with JSON", fakeResponse{http.StatusInternalServerError, `{"message":"boom"}`}, ""},
		{"malformed body on 200", fakeResponse{http.StatusOK, `not json`}, ""},
		{"wrong result shape", fakeResponse{http.StatusOK, `{"result":{"_id":42}}`}, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, srv := newFakeAPI(t, map[string]fakeResponse{"doc": tt.resp})
			c := newTestClient(t, srv.URL, "")

			_, err := One[fakeDoc](context.Background(), c, docQuery, Params{"slug": "x"})
			if err == nil {
				t.Fatal("expected error, got nil")
			}
			if !errors.Is(err, ErrUpstream) {
				t.Errorf("expected ErrUpstream, got %v", err)
			}
			if tt.wantDesc != "" {
				var apiErr *APIError
				if !errors.As(err, &apiErr) {
					t.Fatalf("expected *APIError, got %T", err)
				}
				if apiErr.Description != tt.wantDesc {
					t.Errorf("description: got %q, want %q", apiErr.Description, tt.wantDesc)
				}
			}
		})
	}
}

func TestFetchTransportError(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	c := newTestClient(t, url, "")
	_, err := c.Fetch(context.Background(), docQuery, Params{"slug": "x"}, &fakeDoc{})
	if !errors.Is(err, ErrUpstream) {
		t.Errorf("expected ErrUpstream, got %v", err)
	}
}

func TestFetchSendsTagParamsAndToken(t *testing.T) {
	api, srv := newFakeAPI(t, map[string]fakeResponse{
		"doc": {http.StatusOK, `{"result":{"_id":"d1"}}`},
	})
	c, err := NewClient(Config{
		Dataset:     "production",
		APIVersion:  "v2024-01-01",
		BaseURL:     srv.URL,
		Token:       "secret-token",
		Perspective: PerspectiveDrafts,
	})
	if err != nil {
		t.Fatalf("NewClient: %v", err)
	}

	if _, err := c.Fetch(context.Background(), docQuery, Params{"slug": "drain-cleaning"}, &fakeDoc{}); err != nil {
		t.Fatalf("Fetch: %v", err)
	}

	api.mu.Lock()
	r := api.last
	api.mu.Unlock()

	if r.URL.Path != "/v2024-01-01/data/query/production" {
		t.Errorf("path: got %q", r.URL.Path)
	}
	q := r.URL.Query()
	if got := q.Get("$slug"); got != `"drain-cleaning"` {
		t.Errorf("$slug: got %q, want %q", got, `"drain-cleaning"`)
	}
	if got := q.Get("perspective"); got != PerspectiveDrafts {
		t.Errorf("perspective: got %q, want %q", got, PerspectiveDrafts)
	}
	if got := q.Get("query"); got != docQuery.GROQ {
		t.Errorf("query: got %q", got)
	}
	if got := r.Header.Get("Authorization"); got != "Bearer secret-token" {
		t.Errorf("authorization: got %q", got)
	}
}

func TestNewClientHosts(t *testing.T) {
	tests := []struct {
		name string
		cfg  Config
		want string
	}{
		{"cdn", Config{ProjectID: "abc", Dataset: "production", UseCDN: true}, "https://abc.apicdn.sanity.io/v2024-01-01/data/query/production"},
		{"api", Config{ProjectID: "abc", Dataset: "production"}, "https://abc.api.sanity.io/v2024-01-01/data/query/production"},
		{"token forces api", Config{ProjectID: "abc", Dataset: "production", UseCDN: true, Token: "t"}, "https://abc.api.sanity.io/v2024-01-01/data/query/production"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := NewClient(tt.cfg)
			if err != nil {
				t.Fatalf("NewClient: %v", err)
			}
			if c.endpoint != tt.want {
				t.Errorf("endpoint: got %q, want %q", c.endpoint, tt.want)
			}
		})
	}

	if _, err := NewClient(Config{Dataset: "production"}); err == nil {
		t.Error("expected error without project ID")
	}
	if _, err := NewClient(Config{ProjectID: "abc"}); err == nil {
		t.Error("expected error without dataset")
	}
}

func TestMemoSharesRoundTrips(t *testing.T) {
	api, srv := newFakeAPI(t, map[string]fakeResponse{
		"doc": {http.StatusOK, `{"result":{"_id":"d1","title":"Drains"}}`},
	})
	c := newTestClient(t, srv.URL, "")
	ctx := WithMemo(context.Background())

	var wg sync.WaitGroup
	var failures atomic.Int32
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			doc, err := One[fakeDoc](ctx, c, docQuery, Params{"slug": "drains"})
			if err != nil || doc == nil || doc.Title != "Drains" {
				failures.Add(1)
			}
		}()
	}
	wg.Wait()

	if failures.Load() != 0 {
		t.Errorf("%d fetches returned the wrong document", failures.Load())
	}
	if got := api.hitCount("doc"); got != 1 {
		t.Errorf("round trips: got %d, want 1", got)
	}

	// A different param is a different key.
	if _, err := One[fakeDoc](ctx, c, docQuery, Params{"slug": "other"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := api.hitCount("doc"); got != 2 {
		t.Errorf("round trips after new param: got %d, want 2", got)
	}
}

func TestWithoutMemoEveryFetchHitsTheAPI(t *testing.T) {
	api, srv := newFakeAPI(t, nil)
	c := newTestClient(t, srv.URL, "")

	for i := 0; i < 3; i++ {
		if _, err := One[fakeDoc](context.Background(), c, docQuery, Params{"slug": "x"}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}
	if got := api.hitCount("doc"); got != 3 {
		t.Errorf("round trips: got %d, want 3", got)
	}
}

func TestMemoDoesNotStoreErrors(t *testing.T) {
	api, srv := newFakeAPI(t, map[string]fakeResponse{
		"doc": {http.StatusInternalServerError, `{"error":{"description":"down"}}`},
	})
	c := newTestClient(t, srv.URL, "")
	ctx := WithMemo(context.Background())

	for i := 0; i < 2; i++ {
		if _, err := One[fakeDoc](ctx, c, docQuery, Params{"slug": "x"}); err == nil {
			t.Fatal("expected error")
		}
	}
	if got := api.hitCount("doc"); got != 2 {
		t.Errorf("round trips: got %d, want 2", got)
	}
}
