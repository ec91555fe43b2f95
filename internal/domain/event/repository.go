package event

import (
	"context"
	"time"
)

// Repository defines the interface for alert event data access.
// Every query is scoped by tenant ID.
type Repository interface {
	// CountSince counts events for one rule with triggered_at >= since.
	// Used by the suppression gate; the boundary is inclusive.
	CountSince(ctx context.Context, tenantID, alertID string, since time.Time) (int, error)

	// InsertBatch persists a batch of events in a single transaction.
	// Either the whole batch is applied or none of it.
	InsertBatch(ctx context.Context, events []*AlertEvent) error

	// ListRecent retrieves the most recent events for a tenant, newest first
	ListRecent(ctx context.Context, tenantID string, limit int) ([]*AlertEvent, error)
}
