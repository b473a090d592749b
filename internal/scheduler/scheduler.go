// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

// Package scheduler runs recurring maintenance jobs.
package scheduler

import (
	"context"
	"database/sql"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/olegiv/kage-life-go/internal/store"
)

// auditLogRetention is how long audit log entries are kept before the daily
// cleanup removes them.
const auditLogRetention = 90 * 24 * time.Hour

// Scheduler handles scheduled tasks like audit log cleanup.
type Scheduler struct {
	db     *sql.DB
	cron   *cron.Cron
	logger *slog.Logger
}

// New creates a new scheduler instance.
func New(db *sql.DB, logger *slog.Logger) *Scheduler {
	return &Scheduler{
		db:     db,
		cron:   cron.New(),
		logger: logger,
	}
}

// Start begins the scheduler with a daily audit log cleanup job.
func (s *Scheduler) Start() error {
	_, err := s.cron.AddFunc("@daily", func() {
		if err := s.cleanAuditLog(); err != nil {
			s.logger.Error("audit log cleanup failed", "source", "system", "error", err)
		}
	})
	if err != nil {
		return err
	}

	s.cron.Start()
	s.logger.Info("scheduler started", "jobs", len(s.cron.Entries()))
	return nil
}

// Stop gracefully stops the scheduler.
func (s *Scheduler) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
	s.logger.Info("scheduler stopped")
}

// cleanAuditLog removes audit log entries older than the retention window.
func (s *Scheduler) cleanAuditLog() error {
	ctx := context.Background()
	queries := store.New(s.db)

	cutoff := time.Now().Add(-auditLogRetention)
	return queries.DeleteOldAuditEntries(ctx, cutoff)
}
