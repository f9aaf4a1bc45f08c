package web

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestRateLimiterAllow(t *testing.T) {
	rl := &rateLimiter{
		visitors: make(map[string]*visitor),
		rate:     3,
		window:   time.Minute,
	}

	for i := 0; i < 3; i++ {
		if !rl.allow("10.0.0.1") {
			t.Fatalf("request %d denied, want allowed", i+1)
		}
	}
	if rl.allow("10.0.0.1") {
		t.Error("request 4 allowed, want denied")
	}

	// Other clients have their own bucket
	if !rl.allow("10.0.0.2") {
		t.Error("different IP denied, want allowed")
	}
}

func TestRateLimiterWindowReset(t *testing.T) {
	rl := &rateLimiter{
		visitors: make(map[string]*visitor),
		rate:     1,
		window:   time.Minute,
	}

	if !rl.allow("10.0.0.1") {
		t.Fatal("first request denied")
	}
	if rl.allow("10.0.0.1") {
		t.Fatal("second request allowed, want denied")
	}

	// Expire the window manually
	rl.mu.Lock()
	rl.visitors["10.0.0.1"].lastReset = time.Now().Add(-2 * time.Minute)
	rl.mu.Unlock()

	if !rl.allow("10.0.0.1") {
		t.Error("request after window reset denied, want allowed")
	}
}

func TestRateLimiterMiddleware(t *testing.T) {
	rl := &rateLimiter{
		visitors: make(map[string]*visitor),
		rate:     1,
		window:   time.Minute,
	}
	handler := rl.middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest(http.MethodGet, "/api/health", nil)
	req.RemoteAddr = "10.0.0.1:5000"

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("first request status = %d, want 200", rec.Code)
	}

	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	if rec.Code != http.StatusTooManyRequests {
		t.Errorf("second request status = %d, want 429", rec.Code)
	}
	if got := rec.Header().Get("Retry-After"); got != "60" {
		t.Errorf("Retry-After = %q, want %q", got, "60")
	}
}
