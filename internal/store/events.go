// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package store

import (
	"context"
	"database/sql"
	"time"

	"github.com/shopspring/decimal"
)

// Event is a dated, optionally timed log entry. Dates are "YYYY-MM-DD"
// strings and times-of-day "HH:MM" strings so lexical sort order matches
// chronological order across both drivers.
type Event struct {
	ID           int64
	Date         string
	StartTime    sql.NullString
	EndTime      sql.NullString
	EventType    string
	Title        string
	Note         sql.NullString
	DurationMin  sql.NullInt64
	ValueNumber  decimal.NullDecimal
	Amount       decimal.NullDecimal
	BoolResult   sql.NullBool
	LocationText sql.NullString
	IsPrivate    bool
	ShowOnHome   bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

const eventColumns = `id, date, start_time, end_time, event_type, title, note,
	duration_min, value_number, amount, bool_result, location_text,
	is_private, show_on_home, created_at, updated_at`

func scanEvent(row interface{ Scan(dest ...any) error }) (Event, error) {
	var e Event
	err := row.Scan(
		&e.ID, &e.Date, &e.StartTime, &e.EndTime, &e.EventType, &e.Title,
		&e.Note, &e.DurationMin, &e.ValueNumber, &e.Amount, &e.BoolResult,
		&e.LocationText, &e.IsPrivate, &e.ShowOnHome, &e.CreatedAt, &e.UpdatedAt,
	)
	return e, err
}

// CreateEventParams holds the writable fields for a new event row.
type CreateEventParams struct {
	Date      string
	StartTime sql.NullString
	EventType string
	Title     string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// CreateEvent inserts a new event row and returns its store-assigned id.
func (q *Queries) CreateEvent(ctx context.Context, p CreateEventParams) (int64, error) {
	res, err := q.db.ExecContext(ctx, `
		INSERT INTO events (date, start_time, event_type, title, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?)`,
		p.Date, p.StartTime, p.EventType, p.Title, p.CreatedAt, p.UpdatedAt,
	)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

// GetEventByID fetches a single event row.
func (q *Queries) GetEventByID(ctx context.Context, id int64) (Event, error) {
	row := q.db.QueryRowContext(ctx, `SELECT `+eventColumns+` FROM events WHERE id = ?`, id)
	return scanEvent(row)
}

// ListEvents returns all events ordered by (date, start_time, id). NULL
// start_time sorts first under ASC on both SQLite and MySQL.
func (q *Queries) ListEvents(ctx context.Context) ([]Event, error) {
	return q.listEvents(ctx, `SELECT `+eventColumns+` FROM events ORDER BY date, start_time, id`)
}

// ListEventsByDate returns the events of a single calendar date, ordered like
// ListEvents.
func (q *Queries) ListEventsByDate(ctx context.Context, date string) ([]Event, error) {
	return q.listEvents(ctx, `SELECT `+eventColumns+` FROM events WHERE date = ? ORDER BY date, start_time, id`, date)
}

func (q *Queries) listEvents(ctx context.Context, query string, args ...any) ([]Event, error) {
	rows, err := q.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var events []Event
	for rows.Next() {
		e, err := scanEvent(rows)
		if err != nil {
			return nil, err
		}
		events = append(events, e)
	}
	return events, rows.Err()
}

// UpdateEventParams holds the full set of fields written by an event update.
type UpdateEventParams struct {
	ID          int64
	Title       string
	EventType   string
	StartTime   sql.NullString
	ValueNumber decimal.NullDecimal
	UpdatedAt   time.Time
}

// UpdateEvent overwrites the updatable fields of an event row.
func (q *Queries) UpdateEvent(ctx context.Context, p UpdateEventParams) error {
	_, err := q.db.ExecContext(ctx, `
		UPDATE events
		SET title = ?, event_type = ?, start_time = ?, value_number = ?, updated_at = ?
		WHERE id = ?`,
		p.Title, p.EventType, p.StartTime, p.ValueNumber, p.UpdatedAt, p.ID,
	)
	return err
}

// DeleteEvent removes an event row. Deleting an absent id is not an error;
// callers that need existence semantics fetch the row first.
func (q *Queries) DeleteEvent(ctx context.Context, id int64) error {
	_, err := q.db.ExecContext(ctx, `DELETE FROM events WHERE id = ?`, id)
	return err
}
