// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package api

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strconv"
)

// requestValues merges the three places a request value can come from:
// query string, form-encoded body, and a JSON object body. Form and query
// values take precedence over JSON ones. A malformed JSON body is tolerated
// silently and treated as an empty payload.
type requestValues struct {
	form url.Values
	json map[string]string
}

// parseRequestValues reads the request body once and builds the merged view.
func parseRequestValues(r *http.Request) requestValues {
	body, _ := io.ReadAll(r.Body)
	jsonVals := parseJSONBody(body)

	// ParseForm reads the body again for form-encoded requests
	r.Body = io.NopCloser(bytes.NewReader(body))
	_ = r.ParseForm()

	return requestValues{form: r.Form, json: jsonVals}
}

// parseJSONBody flattens a JSON object body into string values. Numbers keep
// their literal form ("1" stays "1", not "1.000000") and booleans become
// "true"/"false" so they feed the same truthy-set normalization as form
// values. Anything unparseable yields an empty map.
func parseJSONBody(body []byte) map[string]string {
	values := make(map[string]string)

	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 || trimmed[0] != '{' {
		return values
	}

	var raw map[string]any
	dec := json.NewDecoder(bytes.NewReader(trimmed))
	dec.UseNumber()
	if err := dec.Decode(&raw); err != nil {
		return values
	}

	for key, val := range raw {
		switch v := val.(type) {
		case string:
			values[key] = v
		case json.Number:
			values[key] = v.String()
		case bool:
			values[key] = strconv.FormatBool(v)
		}
		// null and nested values are treated as absent
	}
	return values
}

// Get returns the value for key, preferring query/form over JSON.
func (v requestValues) Get(key string) string {
	if vals, ok := v.form[key]; ok && len(vals) > 0 {
		return vals[0]
	}
	return v.json[key]
}

// Lookup returns the value for key and whether the request provided it at
// all, which update handlers use to distinguish "clear" from "untouched".
func (v requestValues) Lookup(key string) (string, bool) {
	if vals, ok := v.form[key]; ok && len(vals) > 0 {
		return vals[0], true
	}
	val, ok := v.json[key]
	return val, ok
}
