// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

// Package api provides the JSON API handlers for events and todos.
package api

import (
	"database/sql"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/olegiv/kage-life-go/internal/cache"
	"github.com/olegiv/kage-life-go/internal/service"
	"github.com/olegiv/kage-life-go/internal/store"
)

// Handler holds shared dependencies for all API handlers.
type Handler struct {
	db      *sql.DB
	queries *store.Queries
	events  *service.EventService
	todos   *service.TodoService
	types   *cache.EventTypeCache
}

// NewHandler creates a new API handler. backend caches the event_types
// reference table; loc is the backend's fixed civil time zone.
func NewHandler(db *sql.DB, loc *time.Location, backend cache.Cacher, logger *slog.Logger) *Handler {
	queries := store.New(db)
	return &Handler{
		db:      db,
		queries: queries,
		events:  service.NewEventService(db, loc),
		todos:   service.NewTodoService(db, loc, logger),
		types:   cache.NewEventTypeCache(queries, backend, time.Hour),
	}
}

// Routes registers all API routes on the given router.
func (h *Handler) Routes(r chi.Router) {
	r.Get("/api/events", h.ListEvents)
	r.Get("/api/event_types", h.ListEventTypes)
	r.Get("/api/events/create", h.CreateEvent)
	r.Post("/api/events/{id}/update", h.UpdateEvent)
	r.Post("/api/events/{id}/delete", h.DeleteEvent)
	r.Get("/api/todos", h.ListTodos)
	r.Post("/api/todos/create", h.CreateTodo)
	r.Post("/api/todos/{id}/status", h.SetTodoStatus)
	r.Post("/api/todos/{id}/delete", h.DeleteTodo)
}

// writeJSON writes a JSON response. HTML escaping is disabled so non-ASCII
// and markup characters pass through unescaped.
func writeJSON(w http.ResponseWriter, statusCode int, data any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(statusCode)

	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	_ = enc.Encode(data)
}

// writeError writes a flat {"error": message} response.
func writeError(w http.ResponseWriter, statusCode int, message string) {
	writeJSON(w, statusCode, map[string]string{"error": message})
}

// writeServiceError maps a service error to its HTTP status: validation
// errors become 400, missing rows 404, anything else a generic 500.
func writeServiceError(w http.ResponseWriter, r *http.Request, err error) {
	var ve *service.ValidationError
	switch {
	case errors.As(err, &ve):
		writeError(w, http.StatusBadRequest, ve.Error())
	case errors.Is(err, service.ErrNotFound):
		writeError(w, http.StatusNotFound, "not found")
	default:
		slog.Error("api request failed",
			"source", "http",
			"method", r.Method,
			"path", r.URL.Path,
			"error", err)
		writeError(w, http.StatusInternalServerError, "internal server error")
	}
}

// parseIDParam parses the {id} route parameter. On failure it writes a 400
// and returns false.
func parseIDParam(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid id")
		return 0, false
	}
	return id, true
}

// timestampLayout is the wire format for created_at/updated_at/done_at.
const timestampLayout = "2006-01-02 15:04:05"

func formatTimestamp(t time.Time) string {
	return t.Format(timestampLayout)
}

func nullTimestampPtr(nt sql.NullTime) *string {
	if !nt.Valid {
		return nil
	}
	s := formatTimestamp(nt.Time)
	return &s
}
