// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package api

import (
	"encoding/json"
	"net/http"

	"github.com/olegiv/kage-life-go/internal/store"
	"github.com/olegiv/kage-life-go/internal/util"
)

// eventTypeJSON is the wire projection of an event type: display_name is an
// admin concern and not exposed.
type eventTypeJSON struct {
	ID                    int64           `json:"id"`
	TypeName              string          `json:"type_name"`
	Description           *string         `json:"description"`
	DefaultMetadataSchema json.RawMessage `json:"default_metadata_schema"`
}

func toEventTypeJSON(et store.EventType) eventTypeJSON {
	out := eventTypeJSON{
		ID:          et.ID,
		TypeName:    et.TypeName,
		Description: util.StringPtr(et.Description),
	}
	if schema := util.NullStringValue(et.DefaultMetadataSchema); json.Valid([]byte(schema)) {
		out.DefaultMetadataSchema = json.RawMessage(schema)
	} else {
		out.DefaultMetadataSchema = json.RawMessage("null")
	}
	return out
}

// ListEventTypes handles GET /api/event_types. The reference table is
// served through the cache.
func (h *Handler) ListEventTypes(w http.ResponseWriter, r *http.Request) {
	types, err := h.types.GetAll(r.Context())
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	items := make([]eventTypeJSON, 0, len(types))
	for _, et := range types {
		items = append(items, toEventTypeJSON(et))
	}

	writeJSON(w, http.StatusOK, map[string]any{"event_types": items})
}
