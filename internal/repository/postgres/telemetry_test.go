package postgres

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/telewatch/telewatch/internal/domain/telemetry"
	"github.com/telewatch/telewatch/internal/testutil"
)

func insertReading(t *testing.T, repo telemetry.Repository, tenantID string, at time.Time) {
	t.Helper()
	err := repo.Insert(context.Background(), &telemetry.Event{
		ID:         uuid.NewString(),
		TenantID:   tenantID,
		DeviceID:   "dev-1",
		Payload:    `{"temp":21}`,
		IngestedAt: at,
	})
	if err != nil {
		t.Fatalf("Insert() error = %v", err)
	}
}

func TestTelemetryRepository_CountEvents(t *testing.T) {
	db := testutil.NewTestDB(t)
	defer testutil.CleanupDB(db)
	repo := NewTelemetryRepository(db)
	ctx := context.Background()

	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	since := now.Add(-5 * time.Minute)

	insertReading(t, repo, "t1", since)                       // at lower bound, counted
	insertReading(t, repo, "t1", since.Add(-time.Millisecond)) // below lower bound
	insertReading(t, repo, "t1", now.Add(-time.Minute))        // inside
	insertReading(t, repo, "t1", now)                          // at upper bound, excluded
	insertReading(t, repo, "t2", now.Add(-time.Minute))        // other tenant

	count, err := repo.CountEvents(ctx, "t1", since, now)
	if err != nil {
		t.Fatalf("CountEvents() error = %v", err)
	}
	if count != 2 {
		t.Errorf("CountEvents() = %d, want 2", count)
	}

	empty, err := repo.CountEvents(ctx, "t3", since, now)
	if err != nil {
		t.Fatalf("CountEvents() error = %v", err)
	}
	if empty != 0 {
		t.Errorf("CountEvents() for unseen tenant = %d, want 0", empty)
	}
}
