package middleware

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

// captureLogs routes the default logger into a buffer for one test.
func captureLogs(t *testing.T, level slog.Level) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	prev := slog.Default()
	slog.SetDefault(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: level})))
	t.Cleanup(func() { slog.SetDefault(prev) })
	return &buf
}

func TestLogger(t *testing.T) {
	tests := []struct {
		name    string
		path    string
		handler http.HandlerFunc
		want    []string
	}{
		{
			name:    "explicit status",
			path:    "/services/unknown",
			handler: func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(http.StatusNotFound) },
			want:    []string{"level=INFO", "status=404", "path=/services/unknown", "bytes=0"},
		},
		{
			name:    "implicit 200 with body",
			path:    "/about",
			handler: func(w http.ResponseWriter, r *http.Request) { w.Write([]byte("hello")) },
			want:    []string{"level=INFO", "status=200", "bytes=5"},
		},
		{
			name:    "nothing written",
			path:    "/",
			handler: func(w http.ResponseWriter, r *http.Request) {},
			want:    []string{"status=200"},
		},
		{
			name: "only first status counts",
			path: "/faq",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusBadGateway)
				w.WriteHeader(http.StatusOK)
			},
			want: []string{"level=WARN", "status=502"},
		},
		{
			name:    "static asset",
			path:    "/static/js/site.js",
			handler: func(w http.ResponseWriter, r *http.Request) {},
			want:    []string{"level=DEBUG"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := captureLogs(t, slog.LevelDebug)

			rr := httptest.NewRecorder()
			Logger(tt.handler).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, tt.path, nil))

			line := buf.String()
			for _, want := range tt.want {
				if !strings.Contains(line, want) {
					t.Errorf("log line %q missing %q", line, want)
				}
			}
		})
	}
}

func TestLoggerPassesResponseThrough(t *testing.T) {
	captureLogs(t, slog.LevelError)

	handler := Logger(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-Cache", "HIT")
		w.WriteHeader(http.StatusTeapot)
		w.Write([]byte("brewing"))
	}))

	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))

	if rr.Code != http.StatusTeapot || rr.Body.String() != "brewing" || rr.Header().Get("X-Cache") != "HIT" {
		t.Errorf("response altered: %d %q %v", rr.Code, rr.Body.String(), rr.Header())
	}
}

func TestLoggerRecordsRequestID(t *testing.T) {
	buf := captureLogs(t, slog.LevelInfo)

	handler := RequestID(Logger(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {})))

	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/about", nil))

	id := rr.Header().Get(RequestIDHeader)
	if !strings.Contains(buf.String(), "request_id="+id) {
		t.Errorf("log line %q should carry request_id=%s", buf.String(), id)
	}

	buf.Reset()
	handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/health", nil))
	if buf.Len() != 0 {
		t.Errorf("health check should log at debug, got %q", buf.String())
	}
}
