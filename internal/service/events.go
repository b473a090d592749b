// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/olegiv/kage-life-go/internal/model"
	"github.com/olegiv/kage-life-go/internal/store"
	"github.com/olegiv/kage-life-go/internal/util"
)

// EventService provides list/create/update/delete operations on event rows.
type EventService struct {
	queries *store.Queries
	loc     *time.Location
}

// NewEventService creates a new EventService. All "current time" values are
// taken in loc, the backend's fixed civil time zone.
func NewEventService(db *sql.DB, loc *time.Location) *EventService {
	return &EventService{
		queries: store.New(db),
		loc:     loc,
	}
}

func (s *EventService) now() time.Time {
	return time.Now().In(s.loc)
}

// List returns events ordered by (date, start_time, id), optionally filtered
// to one exact date. An unparseable date filter simply matches nothing.
func (s *EventService) List(ctx context.Context, date string) ([]store.Event, error) {
	if date == "" {
		return s.queries.ListEvents(ctx)
	}
	if normalized, err := util.ParseDate(date); err == nil {
		date = normalized
	}
	return s.queries.ListEventsByDate(ctx, date)
}

// Create inserts a "general" event dated today. startTime is an optional
// "HH:MM" string.
func (s *EventService) Create(ctx context.Context, title, startTime string) (store.Event, error) {
	if title == "" {
		return store.Event{}, Validationf("title is required")
	}

	var start sql.NullString
	if startTime != "" {
		normalized, err := util.ParseTimeOfDay(startTime)
		if err != nil {
			return store.Event{}, Validationf("%s", err)
		}
		start = util.NullStringFromValue(normalized)
	}

	now := s.now()
	id, err := s.queries.CreateEvent(ctx, store.CreateEventParams{
		Date:      util.FormatDate(now),
		StartTime: start,
		EventType: model.EventTypeGeneral,
		Title:     title,
		CreatedAt: now,
		UpdatedAt: now,
	})
	if err != nil {
		return store.Event{}, fmt.Errorf("creating event: %w", err)
	}

	return s.queries.GetEventByID(ctx, id)
}

// UpdateEventInput carries the optional fields of an event update. A nil
// field is left untouched; for StartTime and ValueNumber an empty string
// clears the stored value.
type UpdateEventInput struct {
	Title       *string
	EventType   *string
	StartTime   *string
	ValueNumber *string
}

// Update patches an event row field by field and refreshes updated_at.
func (s *EventService) Update(ctx context.Context, id int64, in UpdateEventInput) (store.Event, error) {
	event, err := s.queries.GetEventByID(ctx, id)
	if errors.Is(err, sql.ErrNoRows) {
		return store.Event{}, ErrNotFound
	}
	if err != nil {
		return store.Event{}, fmt.Errorf("fetching event %d: %w", id, err)
	}

	if in.Title != nil {
		event.Title = *in.Title
	}
	if in.EventType != nil {
		event.EventType = *in.EventType
	}
	if in.StartTime != nil {
		if *in.StartTime == "" {
			event.StartTime = sql.NullString{}
		} else {
			normalized, err := util.ParseTimeOfDay(*in.StartTime)
			if err != nil {
				return store.Event{}, Validationf("%s", err)
			}
			event.StartTime = util.NullStringFromValue(normalized)
		}
	}
	if in.ValueNumber != nil {
		if *in.ValueNumber == "" {
			event.ValueNumber = decimal.NullDecimal{}
		} else {
			d, err := model.ParseDecimal(*in.ValueNumber)
			if err != nil {
				return store.Event{}, Validationf("%s", err)
			}
			event.ValueNumber = decimal.NullDecimal{Decimal: d, Valid: true}
		}
	}

	event.UpdatedAt = s.now()
	err = s.queries.UpdateEvent(ctx, store.UpdateEventParams{
		ID:          event.ID,
		Title:       event.Title,
		EventType:   event.EventType,
		StartTime:   event.StartTime,
		ValueNumber: event.ValueNumber,
		UpdatedAt:   event.UpdatedAt,
	})
	if err != nil {
		return store.Event{}, fmt.Errorf("updating event %d: %w", id, err)
	}

	return event, nil
}

// Delete removes an event row. Deleting an absent id is ErrNotFound, so a
// second delete of the same id fails rather than silently succeeding.
func (s *EventService) Delete(ctx context.Context, id int64) error {
	_, err := s.queries.GetEventByID(ctx, id)
	if errors.Is(err, sql.ErrNoRows) {
		return ErrNotFound
	}
	if err != nil {
		return fmt.Errorf("fetching event %d: %w", id, err)
	}

	return s.queries.DeleteEvent(ctx, id)
}
