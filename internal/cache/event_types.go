// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package cache

import (
	"context"
	"time"

	"github.com/olegiv/kage-life-go/internal/store"
)

const eventTypesKey = "event_types"

// EventTypeCache provides cached access to the event_types reference table.
// The table is read-only at runtime, so a single long-lived entry suffices.
type EventTypeCache struct {
	typed   *TypedCache[[]store.EventType]
	queries *store.Queries
}

// NewEventTypeCache creates a new event-type cache over the given backend.
func NewEventTypeCache(queries *store.Queries, backend Cacher, ttl time.Duration) *EventTypeCache {
	return &EventTypeCache{
		typed:   NewTypedCache[[]store.EventType](backend, ttl),
		queries: queries,
	}
}

// GetAll returns all event types ordered by id, loading from the store on a
// cache miss.
func (c *EventTypeCache) GetAll(ctx context.Context) ([]store.EventType, error) {
	types, err := c.typed.GetOrSet(ctx, eventTypesKey, func() (*[]store.EventType, error) {
		loaded, err := c.queries.ListEventTypes(ctx)
		if err != nil {
			return nil, err
		}
		return &loaded, nil
	})
	if err != nil {
		return nil, err
	}
	return *types, nil
}

// Invalidate drops the cached entry, forcing a reload on next access.
func (c *EventTypeCache) Invalidate(ctx context.Context) error {
	return c.typed.Delete(ctx, eventTypesKey)
}
