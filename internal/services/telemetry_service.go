package services

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/telewatch/telewatch/internal/domain/telemetry"
	"github.com/telewatch/telewatch/internal/pkg/logger"
)

// TelemetryService persists ingested telemetry readings. The transport that
// delivers readings (MQTT bridge, gateway worker) lives outside this service;
// it only owns the persistence call.
type TelemetryService struct {
	repo   telemetry.Repository
	logger *logger.Logger
}

// NewTelemetryService creates a new telemetry service
func NewTelemetryService(repo telemetry.Repository, log *logger.Logger) *TelemetryService {
	return &TelemetryService{
		repo:   repo,
		logger: log,
	}
}

// Ingest records one telemetry reading for a tenant
func (s *TelemetryService) Ingest(ctx context.Context, tenantID, deviceID, payload string) (*telemetry.Event, error) {
	e := &telemetry.Event{
		ID:         uuid.NewString(),
		TenantID:   tenantID,
		DeviceID:   deviceID,
		Payload:    payload,
		IngestedAt: time.Now().UTC(),
	}

	if err := s.repo.Insert(ctx, e); err != nil {
		s.logger.ErrorWithErr(err, "Failed to insert telemetry event")
		return nil, err
	}

	return e, nil
}
