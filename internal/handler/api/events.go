// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package api

import (
	"encoding/json"
	"net/http"

	"github.com/shopspring/decimal"

	"github.com/olegiv/kage-life-go/internal/model"
	"github.com/olegiv/kage-life-go/internal/service"
	"github.com/olegiv/kage-life-go/internal/store"
	"github.com/olegiv/kage-life-go/internal/util"
)

// eventJSON is the wire shape of a full event row. Optional fields
// serialize as null, matching the clients' expectations.
type eventJSON struct {
	ID           int64        `json:"id"`
	Date         string       `json:"date"`
	StartTime    *string      `json:"start_time"`
	EndTime      *string      `json:"end_time"`
	EventType    string       `json:"event_type"`
	Title        string       `json:"title"`
	Note         *string      `json:"note"`
	DurationMin  *int64       `json:"duration_min"`
	ValueNumber  *json.Number `json:"value_number"`
	Amount       *json.Number `json:"amount"`
	BoolResult   *bool        `json:"bool_result"`
	LocationText *string      `json:"location_text"`
	IsPrivate    bool         `json:"is_private"`
	ShowOnHome   bool         `json:"show_on_home"`
	CreatedAt    string       `json:"created_at"`
	UpdatedAt    string       `json:"updated_at"`
}

// nullDecimalPtr renders a decimal as a fixed two-place JSON number.
func nullDecimalPtr(d decimal.NullDecimal) *json.Number {
	if !d.Valid {
		return nil
	}
	n := json.Number(d.Decimal.StringFixed(model.DecimalFracDigits))
	return &n
}

func toEventJSON(e store.Event) eventJSON {
	return eventJSON{
		ID:           e.ID,
		Date:         e.Date,
		StartTime:    util.StringPtr(e.StartTime),
		EndTime:      util.StringPtr(e.EndTime),
		EventType:    e.EventType,
		Title:        e.Title,
		Note:         util.StringPtr(e.Note),
		DurationMin:  util.Int64Ptr(e.DurationMin),
		ValueNumber:  nullDecimalPtr(e.ValueNumber),
		Amount:       nullDecimalPtr(e.Amount),
		BoolResult:   util.BoolPtr(e.BoolResult),
		LocationText: util.StringPtr(e.LocationText),
		IsPrivate:    e.IsPrivate,
		ShowOnHome:   e.ShowOnHome,
		CreatedAt:    formatTimestamp(e.CreatedAt),
		UpdatedAt:    formatTimestamp(e.UpdatedAt),
	}
}

// ListEvents handles GET /api/events with an optional exact-date filter.
func (h *Handler) ListEvents(w http.ResponseWriter, r *http.Request) {
	events, err := h.events.List(r.Context(), r.URL.Query().Get("date"))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	items := make([]eventJSON, 0, len(events))
	for _, e := range events {
		items = append(items, toEventJSON(e))
	}

	writeJSON(w, http.StatusOK, map[string]any{"events": items})
}

// CreateEvent handles GET /api/events/create. The original clients create
// events via GET with query parameters, so this mutation stays on GET.
func (h *Handler) CreateEvent(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	event, err := h.events.Create(r.Context(), query.Get("title"), query.Get("start_time"))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, map[string]any{
		"id":         event.ID,
		"title":      event.Title,
		"start_time": util.StringPtr(event.StartTime),
	})
}

// UpdateEvent handles POST /api/events/{id}/update. The body may be JSON or
// form-encoded; only provided fields are touched, and an empty start_time or
// value_number clears the stored value.
func (h *Handler) UpdateEvent(w http.ResponseWriter, r *http.Request) {
	id, ok := parseIDParam(w, r)
	if !ok {
		return
	}

	values := parseRequestValues(r)

	var in service.UpdateEventInput
	if v, ok := values.Lookup("title"); ok {
		in.Title = &v
	}
	if v, ok := values.Lookup("event_type"); ok {
		in.EventType = &v
	}
	if v, ok := values.Lookup("start_time"); ok {
		in.StartTime = &v
	}
	if v, ok := values.Lookup("value_number"); ok {
		in.ValueNumber = &v
	}

	event, err := h.events.Update(r.Context(), id, in)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"id":           event.ID,
		"title":        event.Title,
		"start_time":   util.StringPtr(event.StartTime),
		"event_type":   event.EventType,
		"value_number": nullDecimalPtr(event.ValueNumber),
	})
}

// DeleteEvent handles POST /api/events/{id}/delete.
func (h *Handler) DeleteEvent(w http.ResponseWriter, r *http.Request) {
	id, ok := parseIDParam(w, r)
	if !ok {
		return
	}

	if err := h.events.Delete(r.Context(), id); err != nil {
		writeServiceError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
