// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package store

import (
	"context"
	"database/sql"
	"time"
)

// Todo is a completable task with an optional deadline. EventID is a weak
// reference to the event auto-created on completion; the store treats it as a
// plain integer, the invariant is maintained by the todo service.
type Todo struct {
	ID           int64
	Title        string
	Priority     int
	DeadlineDate sql.NullString
	DeadlineTime sql.NullString
	IsDone       bool
	DoneAt       sql.NullTime
	EventID      sql.NullInt64
	Note         sql.NullString
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

const todoColumns = `id, title, priority, deadline_date, deadline_time,
	is_done, done_at, event_id, note, created_at, updated_at`

// todoOrder keeps not-done items first, then nearest deadline, then highest
// priority, then insertion order.
const todoOrder = ` ORDER BY is_done, deadline_date, deadline_time, priority DESC, id`

func scanTodo(row interface{ Scan(dest ...any) error }) (Todo, error) {
	var t Todo
	err := row.Scan(
		&t.ID, &t.Title, &t.Priority, &t.DeadlineDate, &t.DeadlineTime,
		&t.IsDone, &t.DoneAt, &t.EventID, &t.Note, &t.CreatedAt, &t.UpdatedAt,
	)
	return t, err
}

// CreateTodoParams holds the writable fields for a new todo row.
type CreateTodoParams struct {
	Title        string
	Priority     int
	DeadlineDate sql.NullString
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// CreateTodo inserts a new not-done todo row and returns its store-assigned id.
func (q *Queries) CreateTodo(ctx context.Context, p CreateTodoParams) (int64, error) {
	res, err := q.db.ExecContext(ctx, `
		INSERT INTO todos (title, priority, deadline_date, is_done, created_at, updated_at)
		VALUES (?, ?, ?, 0, ?, ?)`,
		p.Title, p.Priority, p.DeadlineDate, p.CreatedAt, p.UpdatedAt,
	)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

// GetTodoByID fetches a single todo row.
func (q *Queries) GetTodoByID(ctx context.Context, id int64) (Todo, error) {
	row := q.db.QueryRowContext(ctx, `SELECT `+todoColumns+` FROM todos WHERE id = ?`, id)
	return scanTodo(row)
}

// ListTodos returns every todo row in tab order.
func (q *Queries) ListTodos(ctx context.Context) ([]Todo, error) {
	return q.listTodos(ctx, `SELECT `+todoColumns+` FROM todos`+todoOrder)
}

// ListTodosByDeadline returns the todos whose deadline_date equals date.
func (q *Queries) ListTodosByDeadline(ctx context.Context, date string) ([]Todo, error) {
	return q.listTodos(ctx, `SELECT `+todoColumns+` FROM todos WHERE deadline_date = ?`+todoOrder, date)
}

// ListImportantTodos returns the todos with the given priority.
func (q *Queries) ListImportantTodos(ctx context.Context, priority int) ([]Todo, error) {
	return q.listTodos(ctx, `SELECT `+todoColumns+` FROM todos WHERE priority = ?`+todoOrder, priority)
}

// ListDoneTodosByDeadline returns the completed todos whose deadline_date
// equals date.
func (q *Queries) ListDoneTodosByDeadline(ctx context.Context, date string) ([]Todo, error) {
	return q.listTodos(ctx, `SELECT `+todoColumns+` FROM todos WHERE is_done = 1 AND deadline_date = ?`+todoOrder, date)
}

func (q *Queries) listTodos(ctx context.Context, query string, args ...any) ([]Todo, error) {
	rows, err := q.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var todos []Todo
	for rows.Next() {
		t, err := scanTodo(rows)
		if err != nil {
			return nil, err
		}
		todos = append(todos, t)
	}
	return todos, rows.Err()
}

// UpdateTodoStatusParams holds the fields touched by a status transition.
// Only these four columns are written.
type UpdateTodoStatusParams struct {
	ID        int64
	IsDone    bool
	DoneAt    sql.NullTime
	EventID   sql.NullInt64
	UpdatedAt time.Time
}

// UpdateTodoStatus persists a status transition.
func (q *Queries) UpdateTodoStatus(ctx context.Context, p UpdateTodoStatusParams) error {
	_, err := q.db.ExecContext(ctx, `
		UPDATE todos
		SET is_done = ?, done_at = ?, event_id = ?, updated_at = ?
		WHERE id = ?`,
		p.IsDone, p.DoneAt, p.EventID, p.UpdatedAt, p.ID,
	)
	return err
}

// DeleteTodo removes a todo row. A linked event is never cascade-deleted.
func (q *Queries) DeleteTodo(ctx context.Context, id int64) error {
	_, err := q.db.ExecContext(ctx, `DELETE FROM todos WHERE id = ?`, id)
	return err
}
