// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package store

import (
	"context"
	"database/sql"
)

// EventType is read-only reference data describing a category of event.
// DefaultMetadataSchema holds a JSON template blob.
type EventType struct {
	ID                    int64
	TypeName              string
	DisplayName           string
	Description           sql.NullString
	DefaultMetadataSchema sql.NullString
}

// ListEventTypes returns all event types ordered by id.
func (q *Queries) ListEventTypes(ctx context.Context) ([]EventType, error) {
	rows, err := q.db.QueryContext(ctx, `
		SELECT id, type_name, display_name, description, default_metadata_schema
		FROM event_types ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var types []EventType
	for rows.Next() {
		var et EventType
		if err := rows.Scan(&et.ID, &et.TypeName, &et.DisplayName, &et.Description, &et.DefaultMetadataSchema); err != nil {
			return nil, err
		}
		types = append(types, et)
	}
	return types, rows.Err()
}

// CountEventTypes returns the number of event-type rows.
func (q *Queries) CountEventTypes(ctx context.Context) (int64, error) {
	var n int64
	err := q.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM event_types`).Scan(&n)
	return n, err
}

// CreateEventTypeParams holds the fields of a seeded event type.
type CreateEventTypeParams struct {
	TypeName              string
	DisplayName           string
	Description           sql.NullString
	DefaultMetadataSchema sql.NullString
}

// CreateEventType inserts an event-type reference row. Only used by seeding.
func (q *Queries) CreateEventType(ctx context.Context, p CreateEventTypeParams) (int64, error) {
	res, err := q.db.ExecContext(ctx, `
		INSERT INTO event_types (type_name, display_name, description, default_metadata_schema)
		VALUES (?, ?, ?, ?)`,
		p.TypeName, p.DisplayName, p.Description, p.DefaultMetadataSchema,
	)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}
