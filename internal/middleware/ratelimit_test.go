// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func rateLimitedHandler(rps float64, burst int) http.Handler {
	rl := NewGlobalRateLimiter(rps, burst)
	return rl.Middleware()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
}

func TestGlobalRateLimiter_AllowsWithinBurst(t *testing.T) {
	handler := rateLimitedHandler(1, 5)

	for i := 0; i < 5; i++ {
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/todos", nil)
		req.RemoteAddr = "10.0.0.1:1234"
		handler.ServeHTTP(rec, req)
		if rec.Code != http.StatusOK {
			t.Fatalf("request %d: status = %d, want 200", i, rec.Code)
		}
	}
}

func TestGlobalRateLimiter_RejectsOverBurst(t *testing.T) {
	handler := rateLimitedHandler(0.001, 2)

	var last *httptest.ResponseRecorder
	for i := 0; i < 3; i++ {
		last = httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/todos", nil)
		req.RemoteAddr = "10.0.0.2:1234"
		handler.ServeHTTP(last, req)
	}

	if last.Code != http.StatusTooManyRequests {
		t.Errorf("status = %d, want 429", last.Code)
	}
	if !strings.Contains(last.Body.String(), "rate limit exceeded") {
		t.Errorf("body = %q, want rate limit error", last.Body.String())
	}
}

func TestGlobalRateLimiter_PerClient(t *testing.T) {
	handler := rateLimitedHandler(0.001, 1)

	first := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/todos", nil)
	req.RemoteAddr = "10.0.0.3:1234"
	handler.ServeHTTP(first, req)

	exhausted := httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/api/todos", nil)
	req.RemoteAddr = "10.0.0.3:1234"
	handler.ServeHTTP(exhausted, req)

	other := httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/api/todos", nil)
	req.RemoteAddr = "10.0.0.4:1234"
	handler.ServeHTTP(other, req)

	if exhausted.Code != http.StatusTooManyRequests {
		t.Errorf("exhausted client: status = %d, want 429", exhausted.Code)
	}
	if other.Code != http.StatusOK {
		t.Errorf("other client: status = %d, want 200", other.Code)
	}
}

func TestGetClientIP(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.RemoteAddr = "192.168.1.1:5000"
	if ip := getClientIP(req); ip != "192.168.1.1:5000" {
		t.Errorf("RemoteAddr fallback = %q", ip)
	}

	req.Header.Set("X-Forwarded-For", "203.0.113.7")
	if ip := getClientIP(req); ip != "203.0.113.7" {
		t.Errorf("X-Forwarded-For = %q", ip)
	}

	req.Header.Set("X-Real-IP", "203.0.113.9")
	if ip := getClientIP(req); ip != "203.0.113.9" {
		t.Errorf("X-Real-IP should take precedence, got %q", ip)
	}
}
