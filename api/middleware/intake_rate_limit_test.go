package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

type fakeLimiter struct {
	counts map[string]int64
}

func newFakeLimiter() *fakeLimiter {
	return &fakeLimiter{counts: make(map[string]int64)}
}

func (f *fakeLimiter) FixedWindowAllow(_ context.Context, scope string, limit int64, _ time.Duration) (bool, int64, error) {
	f.counts[scope]++
	return f.counts[scope] <= limit, f.counts[scope], nil
}

func TestIntakeRateLimitBlocksOverLimit(t *testing.T) {
	policy := NewIntakeRateLimitPolicy("reservations", time.Minute, 2)
	handler := IntakeRateLimit(policy, newFakeLimiter(), nil)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusCreated)
	}))

	send := func() int {
		req := httptest.NewRequest(http.MethodPost, "/api/reservations", nil)
		req.RemoteAddr = "203.0.113.9:4411"
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		return rec.Code
	}

	if code := send(); code != http.StatusCreated {
		t.Fatalf("first request should pass, got %d", code)
	}
	if code := send(); code != http.StatusCreated {
		t.Fatalf("second request should pass, got %d", code)
	}
	if code := send(); code != http.StatusTooManyRequests {
		t.Fatalf("third request should be limited, got %d", code)
	}
}

func TestIntakeRateLimitSeparatesClients(t *testing.T) {
	policy := NewIntakeRateLimitPolicy("contact", time.Minute, 1)
	handler := IntakeRateLimit(policy, newFakeLimiter(), nil)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusCreated)
	}))

	send := func(ip string) int {
		req := httptest.NewRequest(http.MethodPost, "/api/contact", nil)
		req.Header.Set("X-Forwarded-For", ip)
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		return rec.Code
	}

	if code := send("203.0.113.9"); code != http.StatusCreated {
		t.Fatalf("first client should pass, got %d", code)
	}
	if code := send("203.0.113.10"); code != http.StatusCreated {
		t.Fatalf("second client should not share the first client's window, got %d", code)
	}
	if code := send("203.0.113.9"); code != http.StatusTooManyRequests {
		t.Fatalf("first client should now be limited, got %d", code)
	}
}

func TestIntakeRateLimitDisabledWithoutStore(t *testing.T) {
	policy := NewIntakeRateLimitPolicy("contact", time.Minute, 1)
	handler := IntakeRateLimit(policy, nil, nil)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusCreated)
	}))

	for i := 0; i < 5; i++ {
		req := httptest.NewRequest(http.MethodPost, "/api/contact", nil)
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		if rec.Code != http.StatusCreated {
			t.Fatalf("expected pass-through without store, got %d", rec.Code)
		}
	}
}
