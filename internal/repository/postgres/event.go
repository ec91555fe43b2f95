package postgres

import (
	"context"
	"database/sql"
	"time"

	"github.com/telewatch/telewatch/internal/domain/event"
	"github.com/telewatch/telewatch/internal/pkg/errors"
)

type AlertEventRepository struct {
	db *sql.DB
}

func NewAlertEventRepository(db *sql.DB) event.Repository {
	return &AlertEventRepository{db: db}
}

func (r *AlertEventRepository) CountSince(ctx context.Context, tenantID, alertID string, since time.Time) (int, error) {
	query := `
		SELECT COUNT(*) FROM alert_events
		WHERE tenant_id = ? AND alert_id = ? AND triggered_at >= ?
	`

	var count int
	err := r.db.QueryRowContext(ctx, query, tenantID, alertID, since.UnixMilli()).Scan(&count)
	if err != nil {
		return 0, errors.DatabaseError("Failed to count recent alert events", err)
	}

	return count, nil
}

func (r *AlertEventRepository) InsertBatch(ctx context.Context, events []*event.AlertEvent) error {
	if len(events) == 0 {
		return nil
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return errors.DatabaseError("Failed to begin transaction", err)
	}
	defer tx.Rollback()

	query := `
		INSERT INTO alert_events (id, tenant_id, alert_id, message, triggered_at)
		VALUES (?, ?, ?, ?, ?)
	`
	stmt, err := tx.PrepareContext(ctx, query)
	if err != nil {
		return errors.DatabaseError("Failed to prepare event insert", err)
	}
	defer stmt.Close()

	for _, e := range events {
		if _, err := stmt.ExecContext(ctx, e.ID, e.TenantID, e.AlertID, e.Message, e.TriggeredAt.UnixMilli()); err != nil {
			return errors.DatabaseError("Failed to insert alert event", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return errors.DatabaseError("Failed to commit alert events", err)
	}

	return nil
}

func (r *AlertEventRepository) ListRecent(ctx context.Context, tenantID string, limit int) ([]*event.AlertEvent, error) {
	query := `
		SELECT id, tenant_id, alert_id, message, triggered_at
		FROM alert_events WHERE tenant_id = ?
		ORDER BY triggered_at DESC LIMIT ?
	`

	rows, err := r.db.QueryContext(ctx, query, tenantID, limit)
	if err != nil {
		return nil, errors.DatabaseError("Failed to list alert events", err)
	}
	defer rows.Close()

	events := make([]*event.AlertEvent, 0, limit)
	for rows.Next() {
		var e event.AlertEvent
		var triggeredAt int64
		if err := rows.Scan(&e.ID, &e.TenantID, &e.AlertID, &e.Message, &triggeredAt); err != nil {
			return nil, errors.DatabaseError("Failed to scan alert event", err)
		}
		e.TriggeredAt = time.UnixMilli(triggeredAt).UTC()
		events = append(events, &e)
	}

	return events, rows.Err()
}
