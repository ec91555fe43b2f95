package services

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/telewatch/telewatch/internal/domain/metric"
	"github.com/telewatch/telewatch/internal/domain/rule"
	"github.com/telewatch/telewatch/internal/domain/telemetry"
	"github.com/telewatch/telewatch/internal/pkg/logger"
	"github.com/telewatch/telewatch/internal/repository/postgres"
	"github.com/telewatch/telewatch/internal/testutil"
)

// Full pipeline against a real store: ingest telemetry, create a rule,
// evaluate, and check suppression on the second pass.
func TestEvaluationFlow(t *testing.T) {
	db := testutil.NewTestDB(t)
	defer testutil.CleanupDB(db)

	log := logger.New(logger.Config{Level: "error", Format: "json"})
	ruleRepo := postgres.NewAlertRuleRepository(db)
	eventRepo := postgres.NewAlertEventRepository(db)
	telemetryRepo := postgres.NewTelemetryRepository(db)

	calc := NewMetricService(telemetryRepo, log)
	svc := NewEvaluationService(calc, ruleRepo, eventRepo, 5*time.Minute, log)

	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return now }

	ctx := context.Background()

	for i := 0; i < 12; i++ {
		err := telemetryRepo.Insert(ctx, &telemetry.Event{
			ID:         uuid.NewString(),
			TenantID:   "t1",
			IngestedAt: now.Add(-time.Duration(i+1) * 10 * time.Second),
		})
		if err != nil {
			t.Fatalf("Insert() error = %v", err)
		}
	}

	r := &rule.AlertRule{
		ID:        uuid.NewString(),
		TenantID:  "t1",
		Name:      "High ingest",
		Metric:    metric.TelemetryLast5m,
		Operator:  rule.OpGTE,
		Threshold: 10,
		Enabled:   true,
		CreatedAt: now,
	}
	if err := ruleRepo.Create(ctx, r); err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	report, err := svc.Run(ctx, "t1")
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if report.Metrics[metric.TelemetryLast5m] != 12 {
		t.Errorf("telemetry_last_5m = %v, want 12", report.Metrics[metric.TelemetryLast5m])
	}
	if report.Metrics[metric.IngestPerMin] != 2 {
		t.Errorf("ingest_per_min = %v, want 2", report.Metrics[metric.IngestPerMin])
	}
	if report.EventsCreated != 1 {
		t.Fatalf("EventsCreated = %d, want 1", report.EventsCreated)
	}

	events, err := eventRepo.ListRecent(ctx, "t1", 10)
	if err != nil {
		t.Fatalf("ListRecent() error = %v", err)
	}
	if len(events) != 1 {
		t.Fatalf("stored events = %d, want 1", len(events))
	}
	want := "[High ingest] telemetry_last_5m gte 10 (actual=12)"
	if events[0].Message != want {
		t.Errorf("Message = %q, want %q", events[0].Message, want)
	}

	// one minute later the rule still fires but the event is suppressed
	svc.now = func() time.Time { return now.Add(time.Minute) }
	report, err = svc.Run(ctx, "t1")
	if err != nil {
		t.Fatalf("second Run() error = %v", err)
	}
	if report.EventsCreated != 0 {
		t.Errorf("second run EventsCreated = %d, want 0", report.EventsCreated)
	}

	// past the cooldown, with fresh readings in the window, it fires again
	later := now.Add(5*time.Minute + time.Second)
	for i := 0; i < 12; i++ {
		err := telemetryRepo.Insert(ctx, &telemetry.Event{
			ID:         uuid.NewString(),
			TenantID:   "t1",
			IngestedAt: later.Add(-time.Duration(i+1) * 10 * time.Second),
		})
		if err != nil {
			t.Fatalf("Insert() error = %v", err)
		}
	}
	svc.now = func() time.Time { return later }
	report, err = svc.Run(ctx, "t1")
	if err != nil {
		t.Fatalf("third Run() error = %v", err)
	}
	if report.EventsCreated != 1 {
		t.Errorf("third run EventsCreated = %d, want 1", report.EventsCreated)
	}
}
