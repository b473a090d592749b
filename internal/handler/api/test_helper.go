// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package api

import (
	"database/sql"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	_ "github.com/mattn/go-sqlite3"

	"github.com/olegiv/kage-life-go/internal/cache"
)

var testLoc = time.FixedZone("UTC+8", 8*3600)

// testDB creates an in-memory SQLite database with the API tables.
func testDB(t *testing.T) *sql.DB {
	t.Helper()

	db, err := sql.Open("sqlite3", ":memory:")
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	schema := `
		CREATE TABLE events (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			date TEXT NOT NULL,
			start_time TEXT,
			end_time TEXT,
			event_type TEXT NOT NULL,
			title TEXT NOT NULL DEFAULT '',
			note TEXT,
			duration_min INTEGER,
			value_number TEXT,
			amount TEXT,
			bool_result BOOLEAN,
			location_text TEXT,
			is_private BOOLEAN NOT NULL DEFAULT 0,
			show_on_home BOOLEAN NOT NULL DEFAULT 1,
			created_at DATETIME NOT NULL,
			updated_at DATETIME NOT NULL
		);

		CREATE TABLE event_types (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			type_name TEXT NOT NULL UNIQUE,
			display_name TEXT NOT NULL,
			description TEXT,
			default_metadata_schema TEXT
		);

		INSERT INTO event_types (type_name, display_name, description, default_metadata_schema)
		VALUES
			('general', 'General', 'Everyday log entry', NULL),
			('todo', 'Todo', 'Auto-created on todo completion', '{"fields":[]}');

		CREATE TABLE todos (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			title TEXT NOT NULL,
			priority INTEGER NOT NULL DEFAULT 2,
			deadline_date TEXT,
			deadline_time TEXT,
			is_done INTEGER NOT NULL DEFAULT 0,
			done_at DATETIME,
			event_id INTEGER,
			note TEXT,
			created_at DATETIME NOT NULL,
			updated_at DATETIME NOT NULL
		);
	`
	if _, err := db.Exec(schema); err != nil {
		_ = db.Close()
		t.Fatalf("failed to create schema: %v", err)
	}

	t.Cleanup(func() { _ = db.Close() })
	return db
}

// testRouter builds an API handler over a fresh database and mounts its
// routes plus the health endpoint.
func testRouter(t *testing.T) (*chi.Mux, *sql.DB) {
	t.Helper()

	db := testDB(t)
	backend := cache.NewMemoryCache(cache.MemoryCacheOptions{DefaultTTL: time.Hour})
	t.Cleanup(func() { _ = backend.Close() })

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	h := NewHandler(db, testLoc, backend, logger)

	r := chi.NewRouter()
	h.Routes(r)
	r.Get("/health", NewHealthHandler(db, "test").Health)
	return r, db
}

// doRequest performs a request against the router and returns the recorder.
func doRequest(t *testing.T, router http.Handler, method, target, body, contentType string) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

// decodeJSON unmarshals a response body into a generic map.
func decodeJSON(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()

	var out map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &out); err != nil {
		t.Fatalf("response is not valid JSON: %v\n%s", err, rec.Body.String())
	}
	return out
}
