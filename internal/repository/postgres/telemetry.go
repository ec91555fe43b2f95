package postgres

import (
	"context"
	"database/sql"
	"time"

	"github.com/telewatch/telewatch/internal/domain/telemetry"
	"github.com/telewatch/telewatch/internal/pkg/errors"
)

type TelemetryRepository struct {
	db *sql.DB
}

func NewTelemetryRepository(db *sql.DB) telemetry.Repository {
	return &TelemetryRepository{db: db}
}

func (r *TelemetryRepository) Insert(ctx context.Context, e *telemetry.Event) error {
	query := `
		INSERT INTO telemetry (id, tenant_id, device_id, payload, ingested_at)
		VALUES (?, ?, ?, ?, ?)
	`

	_, err := r.db.ExecContext(ctx, query,
		e.ID, e.TenantID, e.DeviceID, e.Payload, e.IngestedAt.UnixMilli(),
	)
	if err != nil {
		return errors.DatabaseError("Failed to insert telemetry event", err)
	}

	return nil
}

// CountEvents counts events with ingested_at in [since, until).
func (r *TelemetryRepository) CountEvents(ctx context.Context, tenantID string, since, until time.Time) (int, error) {
	query := `
		SELECT COUNT(*) FROM telemetry
		WHERE tenant_id = ? AND ingested_at >= ? AND ingested_at < ?
	`

	var count int
	err := r.db.QueryRowContext(ctx, query, tenantID, since.UnixMilli(), until.UnixMilli()).Scan(&count)
	if err != nil {
		return 0, errors.DatabaseError("Failed to count telemetry events", err)
	}

	return count, nil
}
