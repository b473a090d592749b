// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package api

import (
	"net/http"

	"github.com/olegiv/kage-life-go/internal/model"
	"github.com/olegiv/kage-life-go/internal/store"
	"github.com/olegiv/kage-life-go/internal/util"
)

// todoJSON is the wire shape of a todo row.
type todoJSON struct {
	ID           int64   `json:"id"`
	Title        string  `json:"title"`
	Priority     int     `json:"priority"`
	DeadlineDate *string `json:"deadline_date"`
	DeadlineTime *string `json:"deadline_time"`
	IsDone       bool    `json:"is_done"`
	DoneAt       *string `json:"done_at"`
	EventID      *int64  `json:"event_id"`
	Note         *string `json:"note"`
	CreatedAt    string  `json:"created_at"`
	UpdatedAt    string  `json:"updated_at"`
}

func toTodoJSON(t store.Todo) todoJSON {
	return todoJSON{
		ID:           t.ID,
		Title:        t.Title,
		Priority:     t.Priority,
		DeadlineDate: util.StringPtr(t.DeadlineDate),
		DeadlineTime: util.StringPtr(t.DeadlineTime),
		IsDone:       t.IsDone,
		DoneAt:       nullTimestampPtr(t.DoneAt),
		EventID:      util.Int64Ptr(t.EventID),
		Note:         util.StringPtr(t.Note),
		CreatedAt:    formatTimestamp(t.CreatedAt),
		UpdatedAt:    formatTimestamp(t.UpdatedAt),
	}
}

// ListTodos handles GET /api/todos?tab=all|today|important|done.
func (h *Handler) ListTodos(w http.ResponseWriter, r *http.Request) {
	list, err := h.todos.List(r.Context(), r.URL.Query().Get("tab"))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	items := make([]todoJSON, 0, len(list.Items))
	for _, t := range list.Items {
		items = append(items, toTodoJSON(t))
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"tab":   list.Tab,
		"items": items,
		"stats": list.Stats,
	})
}

// CreateTodo handles POST /api/todos/create, body JSON or form.
func (h *Handler) CreateTodo(w http.ResponseWriter, r *http.Request) {
	values := parseRequestValues(r)

	todo, err := h.todos.Create(r.Context(),
		values.Get("title"),
		values.Get("deadline_date"),
		model.ParsePriority(values.Get("priority")),
	)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, map[string]any{"item": toTodoJSON(todo)})
}

// SetTodoStatus handles POST /api/todos/{id}/status. The is_done value is
// normalized through the truthy-string set; created_event_id is non-null
// only when this call auto-created the linked event.
func (h *Handler) SetTodoStatus(w http.ResponseWriter, r *http.Request) {
	id, ok := parseIDParam(w, r)
	if !ok {
		return
	}

	values := parseRequestValues(r)
	isDone := model.ParseIsDone(values.Get("is_done"))

	res, err := h.todos.SetStatus(r.Context(), id, isDone)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"item":             toTodoJSON(res.Todo),
		"created_event_id": res.CreatedEventID,
	})
}

// DeleteTodo handles POST /api/todos/{id}/delete.
func (h *Handler) DeleteTodo(w http.ResponseWriter, r *http.Request) {
	id, ok := parseIDParam(w, r)
	if !ok {
		return
	}

	if err := h.todos.Delete(r.Context(), id); err != nil {
		writeServiceError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
