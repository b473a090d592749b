// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package service

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/olegiv/kage-life-go/internal/store"
	"github.com/olegiv/kage-life-go/internal/util"
)

var testLoc = time.FixedZone("UTC+8", 8*3600)

func testDB(t *testing.T) *sql.DB {
	t.Helper()

	db, err := store.NewDB(filepath.Join(t.TempDir(), "service-test.db"))
	require.NoError(t, err)
	require.NoError(t, store.Migrate(db, "sqlite"))

	t.Cleanup(func() { _ = db.Close() })
	return db
}

func TestEventCreate(t *testing.T) {
	db := testDB(t)
	svc := NewEventService(db, testLoc)
	ctx := context.Background()

	event, err := svc.Create(ctx, "lunch with 张", "12:30")
	require.NoError(t, err)

	assert.Equal(t, "lunch with 张", event.Title)
	assert.Equal(t, "general", event.EventType)
	assert.Equal(t, "12:30", event.StartTime.String)
	assert.Equal(t, util.FormatDate(time.Now().In(testLoc)), event.Date)
	assert.False(t, event.CreatedAt.IsZero())
}

func TestEventCreate_NoStartTime(t *testing.T) {
	db := testDB(t)
	svc := NewEventService(db, testLoc)

	event, err := svc.Create(context.Background(), "untimed", "")
	require.NoError(t, err)
	assert.False(t, event.StartTime.Valid)
}

func TestEventCreate_Validation(t *testing.T) {
	db := testDB(t)
	svc := NewEventService(db, testLoc)
	ctx := context.Background()

	_, err := svc.Create(ctx, "", "")
	assert.True(t, IsValidation(err), "empty title should be a validation error")

	_, err = svc.Create(ctx, "x", "25:99")
	assert.True(t, IsValidation(err), "bad start_time should be a validation error")
}

func TestEventList_DateFilter(t *testing.T) {
	db := testDB(t)
	svc := NewEventService(db, testLoc)
	ctx := context.Background()

	_, err := svc.Create(ctx, "today's event", "")
	require.NoError(t, err)

	today := util.FormatDate(time.Now().In(testLoc))

	all, err := svc.List(ctx, "")
	require.NoError(t, err)
	assert.Len(t, all, 1)

	filtered, err := svc.List(ctx, today)
	require.NoError(t, err)
	assert.Len(t, filtered, 1)

	none, err := svc.List(ctx, "1999-01-01")
	require.NoError(t, err)
	assert.Empty(t, none)

	// an unparseable filter matches nothing rather than erroring
	garbage, err := svc.List(ctx, "not-a-date")
	require.NoError(t, err)
	assert.Empty(t, garbage)
}

func TestEventUpdate(t *testing.T) {
	db := testDB(t)
	svc := NewEventService(db, testLoc)
	ctx := context.Background()

	event, err := svc.Create(ctx, "draft", "09:00")
	require.NoError(t, err)

	title := "final"
	eventType := "exercise"
	value := "3.14159"
	updated, err := svc.Update(ctx, event.ID, UpdateEventInput{
		Title:       &title,
		EventType:   &eventType,
		ValueNumber: &value,
	})
	require.NoError(t, err)

	assert.Equal(t, "final", updated.Title)
	assert.Equal(t, "exercise", updated.EventType)
	assert.Equal(t, "09:00", updated.StartTime.String, "untouched field keeps its value")
	require.True(t, updated.ValueNumber.Valid)
	assert.Equal(t, "3.14", updated.ValueNumber.Decimal.StringFixed(2), "decimal rounds to 2 places")
}

func TestEventUpdate_ClearFields(t *testing.T) {
	db := testDB(t)
	svc := NewEventService(db, testLoc)
	ctx := context.Background()

	event, err := svc.Create(ctx, "timed", "09:00")
	require.NoError(t, err)

	value := "10.00"
	_, err = svc.Update(ctx, event.ID, UpdateEventInput{ValueNumber: &value})
	require.NoError(t, err)

	empty := ""
	updated, err := svc.Update(ctx, event.ID, UpdateEventInput{
		StartTime:   &empty,
		ValueNumber: &empty,
	})
	require.NoError(t, err)
	assert.False(t, updated.StartTime.Valid, "empty start_time clears the field")
	assert.False(t, updated.ValueNumber.Valid, "empty value_number clears the field")
}

func TestEventUpdate_InvalidInputLeavesRow(t *testing.T) {
	db := testDB(t)
	svc := NewEventService(db, testLoc)
	ctx := context.Background()

	event, err := svc.Create(ctx, "stable", "09:00")
	require.NoError(t, err)

	bad := "25:99"
	_, err = svc.Update(ctx, event.ID, UpdateEventInput{StartTime: &bad})
	assert.True(t, IsValidation(err))

	notNum := "abc"
	_, err = svc.Update(ctx, event.ID, UpdateEventInput{ValueNumber: &notNum})
	assert.True(t, IsValidation(err))

	after, err := store.New(db).GetEventByID(ctx, event.ID)
	require.NoError(t, err)
	assert.Equal(t, "09:00", after.StartTime.String, "failed update must not touch the row")
	assert.False(t, after.ValueNumber.Valid)
}

func TestEventUpdate_NotFound(t *testing.T) {
	db := testDB(t)
	svc := NewEventService(db, testLoc)

	_, err := svc.Update(context.Background(), 9999, UpdateEventInput{})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestEventDelete(t *testing.T) {
	db := testDB(t)
	svc := NewEventService(db, testLoc)
	ctx := context.Background()

	event, err := svc.Create(ctx, "doomed", "")
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, event.ID))
	// second delete of the same id is a NotFound, not a silent success
	assert.ErrorIs(t, svc.Delete(ctx, event.ID), ErrNotFound)
}
