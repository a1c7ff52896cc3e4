package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

var epoch = time.Date(2026, 3, 1, 8, 0, 0, 0, time.UTC)

func TestRateLimiterBurstThenRefill(t *testing.T) {
	// 4 per minute: a full burst of 4, then one token every 15s.
	rl := NewRateLimiter(4, time.Minute)
	defer rl.Stop()

	for i := range 4 {
		if !rl.allow("198.51.100.1", epoch) {
			t.Fatalf("burst request %d denied", i+1)
		}
	}

	tests := []struct {
		after time.Duration
		want  bool
	}{
		{0, false},
		{10 * time.Second, false},
		{15 * time.Second, true},
		{16 * time.Second, false},
		{30 * time.Second, true},
	}
	for _, tt := range tests {
		if got := rl.allow("198.51.100.1", epoch.Add(tt.after)); got != tt.want {
			t.Errorf("allow at +%v: got %v, want %v", tt.after, got, tt.want)
		}
	}
}

func TestRateLimiterKeysAreIndependent(t *testing.T) {
	rl := NewRateLimiter(1, time.Minute)
	defer rl.Stop()

	if !rl.allow("198.51.100.1", epoch) {
		t.Fatal("first client denied")
	}
	if rl.allow("198.51.100.1", epoch) {
		t.Error("first client should be out of tokens")
	}
	if !rl.allow("198.51.100.2", epoch) {
		t.Error("second client should have its own bucket")
	}
}

func TestRateLimiterMiddleware(t *testing.T) {
	rl := NewRateLimiter(2, time.Minute)
	defer rl.Stop()

	reached := 0
	handler := rl.Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		reached++
	}))

	codes := make([]int, 3)
	var last *httptest.ResponseRecorder
	for i := range codes {
		req := httptest.NewRequest(http.MethodGet, "/api/preview", nil)
		req.RemoteAddr = "203.0.113.9:5123"
		last = httptest.NewRecorder()
		handler.ServeHTTP(last, req)
		codes[i] = last.Code
	}

	if codes[0] != http.StatusOK || codes[1] != http.StatusOK {
		t.Errorf("first two: got %v, want 200s", codes[:2])
	}
	if codes[2] != http.StatusTooManyRequests {
		t.Errorf("third: got %d, want %d", codes[2], http.StatusTooManyRequests)
	}
	if last.Header().Get("Retry-After") == "" {
		t.Error("denied response should carry Retry-After")
	}
	if reached != 2 {
		t.Errorf("handler reached: got %d, want 2", reached)
	}
}

func TestClientIP(t *testing.T) {
	tests := []struct {
		name       string
		xff        string
		xri        string
		remoteAddr string
		want       string
	}{
		{"forwarded chain takes the client", "198.51.100.7, 10.0.0.2", "", "10.0.0.1:443", "198.51.100.7"},
		{"forwarded with spaces", "  198.51.100.8 ", "", "10.0.0.1:443", "198.51.100.8"},
		{"real ip header", "", "198.51.100.9", "10.0.0.1:443", "198.51.100.9"},
		{"forwarded wins over real ip", "198.51.100.7", "198.51.100.9", "10.0.0.1:443", "198.51.100.7"},
		{"peer address", "", "", "203.0.113.5:40000", "203.0.113.5"},
		{"peer ipv6", "", "", "[2001:db8::1]:40000", "2001:db8::1"},
		{"peer without port", "", "", "203.0.113.5", "203.0.113.5"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			req.RemoteAddr = tt.remoteAddr
			if tt.xff != "" {
				req.Header.Set("X-Forwarded-For", tt.xff)
			}
			if tt.xri != "" {
				req.Header.Set("X-Real-IP", tt.xri)
			}
			if got := clientIP(req); got != tt.want {
				t.Errorf("clientIP: got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestRateLimiterCleanup(t *testing.T) {
	rl := NewRateLimiter(10, time.Minute)
	defer rl.Stop()

	rl.allow("idle", epoch)
	rl.allow("active", epoch.Add(90*time.Second))

	rl.cleanup(epoch.Add(2 * time.Minute))

	rl.mu.Lock()
	_, idle := rl.clients["idle"]
	_, active := rl.clients["active"]
	rl.mu.Unlock()

	if idle {
		t.Error("client idle for over a window should be dropped")
	}
	if !active {
		t.Error("recently seen client should be kept")
	}
}
