// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package middleware

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestStripTrailingSlash_Rewrites(t *testing.T) {
	var gotPath string
	handler := StripTrailingSlash(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/todos/", nil))

	if rec.Code != http.StatusOK {
		t.Errorf("status = %d, want the request handled, not redirected", rec.Code)
	}
	if gotPath != "/api/todos" {
		t.Errorf("path = %q, want /api/todos", gotPath)
	}
}

func TestStripTrailingSlash_PreservesPostBody(t *testing.T) {
	var gotBody string
	handler := StripTrailingSlash(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		gotBody = string(body)
	}))

	req := httptest.NewRequest(http.MethodPost, "/api/todos/1/status/", strings.NewReader(`{"is_done":"1"}`))
	handler.ServeHTTP(httptest.NewRecorder(), req)

	if gotBody != `{"is_done":"1"}` {
		t.Errorf("body = %q, POST body must survive the rewrite", gotBody)
	}
}

func TestStripTrailingSlash_RootUntouched(t *testing.T) {
	var gotPath string
	handler := StripTrailingSlash(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
	}))

	handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))
	if gotPath != "/" {
		t.Errorf("root path = %q, want /", gotPath)
	}
}

func TestStripTrailingSlash_NoSlashPassthrough(t *testing.T) {
	var gotPath, gotQuery string
	handler := StripTrailingSlash(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotQuery = r.URL.RawQuery
	}))

	handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/api/events?date=2025-12-01", nil))
	if gotPath != "/api/events" {
		t.Errorf("path = %q", gotPath)
	}
	if gotQuery != "date=2025-12-01" {
		t.Errorf("query = %q, want preserved", gotQuery)
	}
}
