package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/telewatch/telewatch/internal/domain/metric"
	"github.com/telewatch/telewatch/internal/domain/telemetry"
	"github.com/telewatch/telewatch/internal/pkg/logger"
	"github.com/telewatch/telewatch/internal/testutil"
)

func seedTelemetry(repo *testutil.MockTelemetryRepository, tenantID string, times ...time.Time) {
	for _, ts := range times {
		repo.Events = append(repo.Events, &telemetry.Event{
			ID:         uuid.NewString(),
			TenantID:   tenantID,
			IngestedAt: ts,
		})
	}
}

func TestMetricService_Compute(t *testing.T) {
	log := logger.New(logger.Config{Level: "error", Format: "json"})
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	t.Run("counts readings per window", func(t *testing.T) {
		repo := testutil.NewMockTelemetryRepository()
		// three readings inside 5m, two more only inside 1h
		seedTelemetry(repo, "t1",
			now.Add(-time.Minute),
			now.Add(-2*time.Minute),
			now.Add(-4*time.Minute),
			now.Add(-10*time.Minute),
			now.Add(-50*time.Minute),
		)
		// outside both windows
		seedTelemetry(repo, "t1", now.Add(-2*time.Hour))
		// other tenant never counted
		seedTelemetry(repo, "t2", now.Add(-time.Minute))

		svc := NewMetricService(repo, log)
		snap, err := svc.Compute(context.Background(), "t1", now)
		if err != nil {
			t.Fatalf("Compute() error = %v", err)
		}

		if got := snap[metric.TelemetryLast5m]; got != 3 {
			t.Errorf("telemetry_last_5m = %v, want 3", got)
		}
		if got := snap[metric.TelemetryLast1h]; got != 5 {
			t.Errorf("telemetry_last_1h = %v, want 5", got)
		}
	})

	t.Run("window boundaries are right-open", func(t *testing.T) {
		repo := testutil.NewMockTelemetryRepository()
		// exactly at now-5m: inside; exactly at now: outside
		seedTelemetry(repo, "t1", now.Add(-5*time.Minute), now)

		svc := NewMetricService(repo, log)
		snap, err := svc.Compute(context.Background(), "t1", now)
		if err != nil {
			t.Fatalf("Compute() error = %v", err)
		}

		if got := snap[metric.TelemetryLast5m]; got != 1 {
			t.Errorf("telemetry_last_5m = %v, want 1", got)
		}
	})

	t.Run("ingest rate rounds half away from zero", func(t *testing.T) {
		tests := []struct {
			count int
			want  float64
		}{
			{0, 0},
			{5, 1},
			{7, 1},  // 1.4
			{8, 2},  // 1.6
			{12, 2}, // 2.4
			{13, 3}, // 2.6
			{60, 12},
		}

		for _, tt := range tests {
			repo := testutil.NewMockTelemetryRepository()
			times := make([]time.Time, tt.count)
			for i := range times {
				times[i] = now.Add(-time.Duration(i+1) * time.Second)
			}
			seedTelemetry(repo, "t1", times...)

			svc := NewMetricService(repo, log)
			snap, err := svc.Compute(context.Background(), "t1", now)
			if err != nil {
				t.Fatalf("Compute() error = %v", err)
			}
			if got := snap[metric.IngestPerMin]; got != tt.want {
				t.Errorf("ingest_per_min for %d readings = %v, want %v", tt.count, got, tt.want)
			}
		}
	})

	t.Run("count failure fails the whole snapshot", func(t *testing.T) {
		repo := testutil.NewMockTelemetryRepository()
		repo.CountError = errors.New("connection reset")

		svc := NewMetricService(repo, log)
		snap, err := svc.Compute(context.Background(), "t1", now)
		if err == nil {
			t.Fatal("Compute() error = nil, want error")
		}
		if snap != nil {
			t.Errorf("Compute() snapshot = %v, want nil", snap)
		}
	})
}
