package services

import (
	"context"

	"github.com/telewatch/telewatch/internal/domain/event"
	"github.com/telewatch/telewatch/internal/pkg/logger"
)

// EventService exposes alert event history for display.
type EventService struct {
	repo   event.Repository
	logger *logger.Logger
}

// NewEventService creates a new event service
func NewEventService(repo event.Repository, log *logger.Logger) *EventService {
	return &EventService{
		repo:   repo,
		logger: log,
	}
}

// ListRecent retrieves the most recent events for a tenant, newest first
func (s *EventService) ListRecent(ctx context.Context, tenantID string, limit int) ([]*event.AlertEvent, error) {
	return s.repo.ListRecent(ctx, tenantID, limit)
}
