// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package store

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
)

// defaultEventTypes is the reference data a fresh database starts with. The
// "general" and "todo" tags are the ones the backend itself writes; the rest
// cover the common life-log categories of the original deployment.
var defaultEventTypes = []CreateEventTypeParams{
	{
		TypeName:    "general",
		DisplayName: "General",
		Description: sql.NullString{String: "Free-form log entry", Valid: true},
	},
	{
		TypeName:    "todo",
		DisplayName: "Todo",
		Description: sql.NullString{String: "Auto-created when a todo is completed", Valid: true},
	},
	{
		TypeName:              "sleep",
		DisplayName:           "Sleep",
		Description:           sql.NullString{String: "Sleep period", Valid: true},
		DefaultMetadataSchema: sql.NullString{String: `{"duration_min":null,"bool_result":null}`, Valid: true},
	},
	{
		TypeName:              "exercise",
		DisplayName:           "Exercise",
		Description:           sql.NullString{String: "Workout session", Valid: true},
		DefaultMetadataSchema: sql.NullString{String: `{"duration_min":null,"value_number":null}`, Valid: true},
	},
	{
		TypeName:              "meal",
		DisplayName:           "Meal",
		Description:           sql.NullString{String: "Meal record", Valid: true},
		DefaultMetadataSchema: sql.NullString{String: `{"amount":null,"location_text":null}`, Valid: true},
	},
	{
		TypeName:              "expense",
		DisplayName:           "Expense",
		Description:           sql.NullString{String: "Money spent", Valid: true},
		DefaultMetadataSchema: sql.NullString{String: `{"amount":null,"note":null}`, Valid: true},
	},
	{
		TypeName:              "mood",
		DisplayName:           "Mood",
		Description:           sql.NullString{String: "Mood check-in", Valid: true},
		DefaultMetadataSchema: sql.NullString{String: `{"value_number":null,"note":null}`, Valid: true},
	},
}

// Seed populates event-type reference data when the table is empty.
func Seed(ctx context.Context, db *sql.DB, doSeed bool) error {
	if !doSeed {
		return nil
	}

	queries := New(db)

	count, err := queries.CountEventTypes(ctx)
	if err != nil {
		return fmt.Errorf("counting event types: %w", err)
	}
	if count > 0 {
		slog.Info("event types already present, skipping seed", "count", count)
		return nil
	}

	for _, et := range defaultEventTypes {
		if _, err := queries.CreateEventType(ctx, et); err != nil {
			return fmt.Errorf("seeding event type %q: %w", et.TypeName, err)
		}
	}

	slog.Info("seeded event types", "count", len(defaultEventTypes))
	return nil
}
