package evaluation

import (
	"context"

	"github.com/telewatch/telewatch/internal/domain/metric"
)

// Report summarizes one evaluation run for a tenant.
type Report struct {
	OK             bool            `json:"ok"`
	Metrics        metric.Snapshot `json:"metrics"`
	RulesEvaluated int             `json:"rules_evaluated"`
	EventsCreated  int             `json:"events_created"`
}

// Service runs the alert evaluation engine for one tenant.
type Service interface {
	// Run evaluates all enabled rules for the tenant against freshly
	// computed metrics and persists non-suppressed firings. Any storage
	// failure aborts the whole run with zero events created.
	Run(ctx context.Context, tenantID string) (*Report, error)
}
