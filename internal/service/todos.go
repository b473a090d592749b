// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/olegiv/kage-life-go/internal/model"
	"github.com/olegiv/kage-life-go/internal/store"
	"github.com/olegiv/kage-life-go/internal/util"
)

// TodoService provides todo operations, including the status toggle that
// owns the todo-to-event completion linkage.
type TodoService struct {
	db      *sql.DB
	queries *store.Queries
	loc     *time.Location
	log     *slog.Logger
}

// NewTodoService creates a new TodoService. The *sql.DB is kept so status
// transitions can run inside a transaction.
func NewTodoService(db *sql.DB, loc *time.Location, logger *slog.Logger) *TodoService {
	if logger == nil {
		logger = slog.Default()
	}
	return &TodoService{
		db:      db,
		queries: store.New(db),
		loc:     loc,
		log:     logger,
	}
}

func (s *TodoService) now() time.Time {
	return time.Now().In(s.loc)
}

// TodoStats aggregates the filtered todo set of one List call.
type TodoStats struct {
	Total int `json:"total"`
	Done  int `json:"done"`
	Todo  int `json:"todo"`
}

// TodoList is the result of a List call: the normalized tab, the filtered
// items in tab order, and stats computed over that filtered set.
type TodoList struct {
	Tab   string
	Items []store.Todo
	Stats TodoStats
}

// List returns the todos of one tab. Unrecognized tab values silently
// normalize to "all"; "today" and "done" resolve against the current local
// date.
func (s *TodoService) List(ctx context.Context, tab string) (TodoList, error) {
	tab = model.NormalizeTab(tab)
	today := util.FormatDate(s.now())

	var (
		items []store.Todo
		err   error
	)
	switch tab {
	case model.TabToday:
		items, err = s.queries.ListTodosByDeadline(ctx, today)
	case model.TabImportant:
		items, err = s.queries.ListImportantTodos(ctx, model.PriorityHigh)
	case model.TabDone:
		items, err = s.queries.ListDoneTodosByDeadline(ctx, today)
	default:
		items, err = s.queries.ListTodos(ctx)
	}
	if err != nil {
		return TodoList{}, fmt.Errorf("listing todos: %w", err)
	}

	stats := TodoStats{Total: len(items)}
	for _, t := range items {
		if t.IsDone {
			stats.Done++
		}
	}
	stats.Todo = stats.Total - stats.Done

	return TodoList{Tab: tab, Items: items, Stats: stats}, nil
}

// Create inserts a new not-done todo. deadlineDate is an optional
// "YYYY-MM-DD" string; priority is normalized to {1,2,3} with 2 as the
// fallback, never rejected.
func (s *TodoService) Create(ctx context.Context, title, deadlineDate string, priority int) (store.Todo, error) {
	if title == "" {
		return store.Todo{}, Validationf("title is required")
	}

	var deadline sql.NullString
	if deadlineDate != "" {
		normalized, err := util.ParseDate(deadlineDate)
		if err != nil {
			return store.Todo{}, Validationf("%s", err)
		}
		deadline = util.NullStringFromValue(normalized)
	}

	now := s.now()
	id, err := s.queries.CreateTodo(ctx, store.CreateTodoParams{
		Title:        title,
		Priority:     model.NormalizePriority(priority),
		DeadlineDate: deadline,
		CreatedAt:    now,
		UpdatedAt:    now,
	})
	if err != nil {
		return store.Todo{}, fmt.Errorf("creating todo: %w", err)
	}

	return s.queries.GetTodoByID(ctx, id)
}

// SetStatusResult is the outcome of a status transition. CreatedEventID is
// non-nil only when this call auto-created the linked event.
type SetStatusResult struct {
	Todo           store.Todo
	CreatedEventID *int64
}

// SetStatus transitions a todo's done state and maintains the event linkage:
// marking done auto-creates a linked "todo" event once, un-marking deletes
// the linked event and clears the reference. The event write and the todo
// update run in a single transaction so a crash between them cannot leave
// the linkage half applied.
func (s *TodoService) SetStatus(ctx context.Context, id int64, isDone bool) (SetStatusResult, error) {
	now := s.now()

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return SetStatusResult{}, fmt.Errorf("beginning transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()
	qtx := s.queries.WithTx(tx)

	// Read inside the transaction: deciding whether to create the linked
	// event from a stale EventID would let two concurrent mark-done calls
	// create two events.
	todo, err := qtx.GetTodoByID(ctx, id)
	if errors.Is(err, sql.ErrNoRows) {
		return SetStatusResult{}, ErrNotFound
	}
	if err != nil {
		return SetStatusResult{}, fmt.Errorf("fetching todo %d: %w", id, err)
	}

	var (
		doneAt         sql.NullTime
		eventID        = todo.EventID
		createdEventID *int64
	)

	if isDone {
		doneAt = sql.NullTime{Time: now, Valid: true}
		if !todo.EventID.Valid {
			date := util.FormatDate(now)
			if todo.DeadlineDate.Valid {
				date = todo.DeadlineDate.String
			}
			start := util.NullStringFromValue(util.FormatTimeOfDay(now))
			if todo.DeadlineTime.Valid {
				start = todo.DeadlineTime
			}

			newID, err := qtx.CreateEvent(ctx, store.CreateEventParams{
				Date:      date,
				StartTime: start,
				EventType: model.EventTypeTodo,
				Title:     todo.Title,
				CreatedAt: now,
				UpdatedAt: now,
			})
			if err != nil {
				return SetStatusResult{}, fmt.Errorf("creating linked event: %w", err)
			}
			eventID = util.NullInt64FromValue(newID)
			createdEventID = &newID
		}
	} else {
		doneAt = sql.NullTime{}
		if todo.EventID.Valid {
			// Tolerated: the todo still transitions even if the linked
			// event cannot be removed.
			if err := qtx.DeleteEvent(ctx, todo.EventID.Int64); err != nil {
				s.log.Warn("deleting linked todo event failed",
					"source", "todos",
					"todo_id", todo.ID,
					"event_id", todo.EventID.Int64,
					"error", err)
			}
		}
		eventID = sql.NullInt64{}
	}

	err = qtx.UpdateTodoStatus(ctx, store.UpdateTodoStatusParams{
		ID:        todo.ID,
		IsDone:    isDone,
		DoneAt:    doneAt,
		EventID:   eventID,
		UpdatedAt: now,
	})
	if err != nil {
		return SetStatusResult{}, fmt.Errorf("updating todo %d status: %w", id, err)
	}

	if err := tx.Commit(); err != nil {
		return SetStatusResult{}, fmt.Errorf("committing status update: %w", err)
	}

	todo, err = s.queries.GetTodoByID(ctx, id)
	if err != nil {
		return SetStatusResult{}, fmt.Errorf("refetching todo %d: %w", id, err)
	}

	return SetStatusResult{Todo: todo, CreatedEventID: createdEventID}, nil
}

// Delete removes a todo row. A linked event is left in place. Deleting an
// absent id is ErrNotFound.
func (s *TodoService) Delete(ctx context.Context, id int64) error {
	_, err := s.queries.GetTodoByID(ctx, id)
	if errors.Is(err, sql.ErrNoRows) {
		return ErrNotFound
	}
	if err != nil {
		return fmt.Errorf("fetching todo %d: %w", id, err)
	}

	return s.queries.DeleteTodo(ctx, id)
}
