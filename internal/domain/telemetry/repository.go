package telemetry

import (
	"context"
	"time"
)

// Repository defines the interface for telemetry data access.
// Every query is scoped by tenant ID.
type Repository interface {
	// Insert persists one telemetry event
	Insert(ctx context.Context, e *Event) error

	// CountEvents counts events with ingested_at in [since, until)
	CountEvents(ctx context.Context, tenantID string, since, until time.Time) (int, error)
}
