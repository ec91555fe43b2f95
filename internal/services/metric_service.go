package services

import (
	"context"
	"math"
	"time"

	"github.com/telewatch/telewatch/internal/domain/metric"
	"github.com/telewatch/telewatch/internal/domain/telemetry"
	"github.com/telewatch/telewatch/internal/pkg/logger"
)

// Window sizes behind the supported metric keys.
const (
	shortWindow = 5 * time.Minute
	longWindow  = time.Hour
)

// MetricService implements metric.Calculator over the telemetry store.
type MetricService struct {
	telemetry telemetry.Repository
	logger    *logger.Logger
}

// NewMetricService creates a new metric calculator
func NewMetricService(repo telemetry.Repository, log *logger.Logger) metric.Calculator {
	return &MetricService{
		telemetry: repo,
		logger:    log,
	}
}

// Compute builds the metric snapshot for one tenant at one instant. Both
// windows are [now-w, now) against the same now, so the snapshot is
// internally consistent. A count query failure fails the whole call; a
// silent zero here would produce false verdicts downstream.
func (s *MetricService) Compute(ctx context.Context, tenantID string, now time.Time) (metric.Snapshot, error) {
	last5m, err := s.telemetry.CountEvents(ctx, tenantID, now.Add(-shortWindow), now)
	if err != nil {
		s.logger.ErrorWithErr(err, "Failed to count telemetry in 5m window")
		return nil, err
	}

	last1h, err := s.telemetry.CountEvents(ctx, tenantID, now.Add(-longWindow), now)
	if err != nil {
		s.logger.ErrorWithErr(err, "Failed to count telemetry in 1h window")
		return nil, err
	}

	return metric.Snapshot{
		metric.TelemetryLast5m: float64(last5m),
		metric.TelemetryLast1h: float64(last1h),
		// Round half away from zero on the per-minute quotient
		metric.IngestPerMin: math.Round(float64(last5m) / shortWindow.Minutes()),
	}, nil
}
