package server

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestRateLimitMiddleware(t *testing.T) {
	detector := NewSuspiciousActivityDetector()
	middleware := RateLimitMiddleware(nil, detector)

	handler := middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	ip := "192.168.1.100"
	req := httptest.NewRequest("GET", "/api/v1/queues", nil)
	req.RemoteAddr = ip + ":1234"

	// Simulate requests up to the limit (1000 per window)
	for i := 0; i < 1000; i++ {
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		if rec.Code != http.StatusOK {
			t.Fatalf("request %d failed with status %d", i, rec.Code)
		}
	}

	// Next request should be blocked
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusTooManyRequests {
		t.Errorf("expected status 429 Too Many Requests, got %d", rec.Code)
	}

	// Verify detector state
	detector.mu.Lock()
	count := detector.requestCountByIP[ip]
	detector.mu.Unlock()

	if count != 1001 {
		t.Errorf("expected count 1001, got %d", count)
	}
}

func TestExtractIP_TrustedProxy(t *testing.T) {
	req := httptest.NewRequest("GET", "/", nil)
	req.RemoteAddr = "10.0.0.1:5000"
	req.Header.Set(HeaderForwardedFor, "203.0.113.7, 10.0.0.1")

	// Untrusted: forwarded header ignored
	if got := extractIP(req, nil); got != "10.0.0.1" {
		t.Errorf("expected direct IP, got %q", got)
	}

	// Trusted: rightmost forwarded hop wins
	if got := extractIP(req, []string{"10.0.0.1"}); got != "10.0.0.1" {
		t.Errorf("expected rightmost forwarded IP, got %q", got)
	}

	req.Header.Set(HeaderForwardedFor, "203.0.113.7")
	if got := extractIP(req, []string{"10.0.0.1"}); got != "203.0.113.7" {
		t.Errorf("expected forwarded client IP, got %q", got)
	}
}
