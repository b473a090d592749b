// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package middleware

import (
	"net/http"
	"strings"
)

// StripTrailingSlash rewrites URLs with trailing slashes to their
// non-trailing equivalents before routing. The path is rewritten in place
// rather than redirected, so POST bodies from clients that call the
// mutation endpoints with a trailing slash are preserved. Excludes root
// path "/".
func StripTrailingSlash(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if path := r.URL.Path; path != "/" && strings.HasSuffix(path, "/") {
			r.URL.Path = strings.TrimSuffix(path, "/")
		}
		next.ServeHTTP(w, r)
	})
}
