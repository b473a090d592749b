// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package api

import (
	"net/http/httptest"
	"strings"
	"testing"
)

func TestParseJSONBody(t *testing.T) {
	tests := []struct {
		name string
		body string
		want map[string]string
	}{
		{"strings", `{"title":"walk","note":"short"}`, map[string]string{"title": "walk", "note": "short"}},
		{"number keeps literal form", `{"priority":1,"value_number":12.50}`, map[string]string{"priority": "1", "value_number": "12.50"}},
		{"bools", `{"is_done":true,"flag":false}`, map[string]string{"is_done": "true", "flag": "false"}},
		{"null and nested skipped", `{"note":null,"meta":{"a":1},"list":[1]}`, map[string]string{}},
		{"empty body", ``, map[string]string{}},
		{"not an object", `[1,2,3]`, map[string]string{}},
		{"truncated", `{"title":"oops`, map[string]string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := parseJSONBody([]byte(tt.body))
			if len(got) != len(tt.want) {
				t.Fatalf("got %v, want %v", got, tt.want)
			}
			for k, v := range tt.want {
				if got[k] != v {
					t.Errorf("%s = %q, want %q", k, got[k], v)
				}
			}
		})
	}
}

func TestRequestValues_Precedence(t *testing.T) {
	req := httptest.NewRequest("POST", "/x?title=from+query", strings.NewReader(`{"title":"from json","note":"kept"}`))
	req.Header.Set("Content-Type", "application/json")

	values := parseRequestValues(req)
	if got := values.Get("title"); got != "from query" {
		t.Errorf("title = %q, query must win over JSON", got)
	}
	if got := values.Get("note"); got != "kept" {
		t.Errorf("note = %q", got)
	}

	if _, ok := values.Lookup("missing"); ok {
		t.Error("Lookup reported a value that was never provided")
	}
	if _, ok := values.Lookup("note"); !ok {
		t.Error("Lookup missed a JSON-provided value")
	}
}
