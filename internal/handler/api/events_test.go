// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package api

import (
	"fmt"
	"net/http"
	"strings"
	"testing"
	"time"
)

func TestCreateEvent(t *testing.T) {
	router, _ := testRouter(t)

	rec := doRequest(t, router, http.MethodGet, "/api/events/create?title=morning+run&start_time=07:15", "", "")
	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, want 201: %s", rec.Code, rec.Body.String())
	}

	body := decodeJSON(t, rec)
	if body["title"] != "morning run" {
		t.Errorf("title = %v", body["title"])
	}
	if body["start_time"] != "07:15" {
		t.Errorf("start_time = %v", body["start_time"])
	}
	if body["id"] == nil {
		t.Error("id missing from response")
	}
}

func TestCreateEvent_Validation(t *testing.T) {
	router, _ := testRouter(t)

	rec := doRequest(t, router, http.MethodGet, "/api/events/create", "", "")
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("empty title: status = %d, want 400", rec.Code)
	}
	if body := decodeJSON(t, rec); body["error"] == nil {
		t.Error("expected {error} body")
	}

	rec = doRequest(t, router, http.MethodGet, "/api/events/create?title=x&start_time=25:99", "", "")
	if rec.Code != http.StatusBadRequest {
		t.Errorf("bad start_time: status = %d, want 400", rec.Code)
	}
}

func TestListEvents(t *testing.T) {
	router, _ := testRouter(t)

	doRequest(t, router, http.MethodGet, "/api/events/create?title=one", "", "")
	doRequest(t, router, http.MethodGet, "/api/events/create?title=two&start_time=08:00", "", "")

	rec := doRequest(t, router, http.MethodGet, "/api/events", "", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}

	body := decodeJSON(t, rec)
	events, ok := body["events"].([]any)
	if !ok {
		t.Fatalf("events is not an array: %v", body)
	}
	if len(events) != 2 {
		t.Errorf("got %d events, want 2", len(events))
	}

	today := time.Now().In(testLoc).Format("2006-01-02")
	rec = doRequest(t, router, http.MethodGet, "/api/events?date="+today, "", "")
	if got := decodeJSON(t, rec)["events"].([]any); len(got) != 2 {
		t.Errorf("today filter: got %d events, want 2", len(got))
	}

	rec = doRequest(t, router, http.MethodGet, "/api/events?date=1999-01-01", "", "")
	if got := decodeJSON(t, rec)["events"].([]any); len(got) != 0 {
		t.Errorf("stale filter: got %d events, want 0", len(got))
	}
}

func TestListEvents_EmptyIsArray(t *testing.T) {
	router, _ := testRouter(t)

	rec := doRequest(t, router, http.MethodGet, "/api/events", "", "")
	if !strings.Contains(rec.Body.String(), `"events":[]`) {
		t.Errorf("empty list must serialize as [], got %s", rec.Body.String())
	}
}

func TestUpdateEvent_Form(t *testing.T) {
	router, _ := testRouter(t)

	rec := doRequest(t, router, http.MethodGet, "/api/events/create?title=draft&start_time=09:00", "", "")
	id := int64(decodeJSON(t, rec)["id"].(float64))

	rec = doRequest(t, router, http.MethodPost, fmt.Sprintf("/api/events/%d/update", id),
		"title=final&value_number=12.5", "application/x-www-form-urlencoded")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d: %s", rec.Code, rec.Body.String())
	}

	body := decodeJSON(t, rec)
	if body["title"] != "final" {
		t.Errorf("title = %v", body["title"])
	}
	if body["start_time"] != "09:00" {
		t.Errorf("untouched start_time = %v", body["start_time"])
	}
	if body["value_number"] != "12.50" && body["value_number"] != float64(12.5) {
		t.Errorf("value_number = %v (%T)", body["value_number"], body["value_number"])
	}
}

func TestUpdateEvent_JSONBody(t *testing.T) {
	router, _ := testRouter(t)

	rec := doRequest(t, router, http.MethodGet, "/api/events/create?title=draft", "", "")
	id := int64(decodeJSON(t, rec)["id"].(float64))

	rec = doRequest(t, router, http.MethodPost, fmt.Sprintf("/api/events/%d/update", id),
		`{"title":"via json","event_type":"exercise"}`, "application/json")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d: %s", rec.Code, rec.Body.String())
	}

	body := decodeJSON(t, rec)
	if body["title"] != "via json" {
		t.Errorf("title = %v", body["title"])
	}
	if body["event_type"] != "exercise" {
		t.Errorf("event_type = %v", body["event_type"])
	}
}

func TestUpdateEvent_FormOverridesJSON(t *testing.T) {
	router, _ := testRouter(t)

	rec := doRequest(t, router, http.MethodGet, "/api/events/create?title=draft", "", "")
	id := int64(decodeJSON(t, rec)["id"].(float64))

	// query values land in the form set, which wins over the JSON body
	rec = doRequest(t, router, http.MethodPost, fmt.Sprintf("/api/events/%d/update?title=from-form", id),
		`{"title":"from-json"}`, "application/json")
	if body := decodeJSON(t, rec); body["title"] != "from-form" {
		t.Errorf("title = %v, form value must take precedence", body["title"])
	}
}

func TestUpdateEvent_ClearStartTime(t *testing.T) {
	router, _ := testRouter(t)

	rec := doRequest(t, router, http.MethodGet, "/api/events/create?title=timed&start_time=10:30", "", "")
	id := int64(decodeJSON(t, rec)["id"].(float64))

	rec = doRequest(t, router, http.MethodPost, fmt.Sprintf("/api/events/%d/update", id),
		"start_time=", "application/x-www-form-urlencoded")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	if body := decodeJSON(t, rec); body["start_time"] != nil {
		t.Errorf("start_time = %v, want null after clearing", body["start_time"])
	}
}

func TestUpdateEvent_Errors(t *testing.T) {
	router, _ := testRouter(t)

	rec := doRequest(t, router, http.MethodPost, "/api/events/9999/update", "title=x", "application/x-www-form-urlencoded")
	if rec.Code != http.StatusNotFound {
		t.Errorf("absent id: status = %d, want 404", rec.Code)
	}
	if body := decodeJSON(t, rec); body["error"] != "not found" {
		t.Errorf("error = %v", body["error"])
	}

	rec = doRequest(t, router, http.MethodPost, "/api/events/abc/update", "", "")
	if rec.Code != http.StatusBadRequest {
		t.Errorf("bad id: status = %d, want 400", rec.Code)
	}

	created := doRequest(t, router, http.MethodGet, "/api/events/create?title=x", "", "")
	id := int64(decodeJSON(t, created)["id"].(float64))
	rec = doRequest(t, router, http.MethodPost, fmt.Sprintf("/api/events/%d/update", id),
		"value_number=abc", "application/x-www-form-urlencoded")
	if rec.Code != http.StatusBadRequest {
		t.Errorf("non-numeric value_number: status = %d, want 400", rec.Code)
	}
}

func TestDeleteEvent(t *testing.T) {
	router, _ := testRouter(t)

	rec := doRequest(t, router, http.MethodGet, "/api/events/create?title=doomed", "", "")
	id := int64(decodeJSON(t, rec)["id"].(float64))

	rec = doRequest(t, router, http.MethodPost, fmt.Sprintf("/api/events/%d/delete", id), "", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	if body := decodeJSON(t, rec); body["status"] != "ok" {
		t.Errorf("body = %v", body)
	}

	rec = doRequest(t, router, http.MethodPost, fmt.Sprintf("/api/events/%d/delete", id), "", "")
	if rec.Code != http.StatusNotFound {
		t.Errorf("second delete: status = %d, want 404", rec.Code)
	}
}

func TestNonASCIIUnescaped(t *testing.T) {
	router, _ := testRouter(t)

	rec := doRequest(t, router, http.MethodGet, "/api/events/create?title=%E6%99%A8%E8%B7%91", "", "")
	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "晨跑") {
		t.Errorf("non-ASCII characters must pass through unescaped: %s", rec.Body.String())
	}
}
