// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package store

import (
	"context"
	"time"
)

// CreateAuditEntryParams holds one audit-log record. Metadata is a JSON
// string of the originating log attributes.
type CreateAuditEntryParams struct {
	Level     string
	Source    string
	Message   string
	Metadata  string
	CreatedAt time.Time
}

// CreateAuditEntry appends a record to the audit log.
func (q *Queries) CreateAuditEntry(ctx context.Context, p CreateAuditEntryParams) error {
	_, err := q.db.ExecContext(ctx, `
		INSERT INTO audit_log (level, source, message, metadata, created_at)
		VALUES (?, ?, ?, ?, ?)`,
		p.Level, p.Source, p.Message, p.Metadata, p.CreatedAt,
	)
	return err
}

// AuditEntry is one row of the audit_log table.
type AuditEntry struct {
	ID        int64
	Level     string
	Source    string
	Message   string
	Metadata  string
	CreatedAt time.Time
}

// ListAuditEntries returns the newest audit records first.
func (q *Queries) ListAuditEntries(ctx context.Context, limit int64) ([]AuditEntry, error) {
	rows, err := q.db.QueryContext(ctx, `
		SELECT id, level, source, message, metadata, created_at
		FROM audit_log
		ORDER BY id DESC
		LIMIT ?`, limit)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var entries []AuditEntry
	for rows.Next() {
		var e AuditEntry
		if err := rows.Scan(&e.ID, &e.Level, &e.Source, &e.Message, &e.Metadata, &e.CreatedAt); err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// DeleteOldAuditEntries removes audit records created before cutoff.
func (q *Queries) DeleteOldAuditEntries(ctx context.Context, cutoff time.Time) error {
	_, err := q.db.ExecContext(ctx, `DELETE FROM audit_log WHERE created_at < ?`, cutoff)
	return err
}

// CountAuditEntries returns the number of audit-log rows.
func (q *Queries) CountAuditEntries(ctx context.Context) (int64, error) {
	var n int64
	err := q.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM audit_log`).Scan(&n)
	return n, err
}
