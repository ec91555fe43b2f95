package services

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/telewatch/telewatch/internal/domain/evaluation"
	"github.com/telewatch/telewatch/internal/domain/event"
	"github.com/telewatch/telewatch/internal/domain/metric"
	"github.com/telewatch/telewatch/internal/domain/rule"
	"github.com/telewatch/telewatch/internal/pkg/logger"
	"github.com/telewatch/telewatch/internal/pkg/metrics"
)

// EvaluationService implements evaluation.Service. Each Run is self-contained:
// all working state lives in the call, so concurrent runs for different
// tenants never interact. Two concurrent runs for the SAME tenant can both
// pass the suppression check before either inserts, producing a duplicate
// event; this narrow race is accepted rather than serialized.
type EvaluationService struct {
	calc     metric.Calculator
	rules    rule.Repository
	events   event.Repository
	cooldown time.Duration
	logger   *logger.Logger

	// now is injectable for deterministic tests
	now func() time.Time
}

// NewEvaluationService creates a new evaluation orchestrator
func NewEvaluationService(
	calc metric.Calculator,
	rules rule.Repository,
	events event.Repository,
	cooldown time.Duration,
	log *logger.Logger,
) *EvaluationService {
	return &EvaluationService{
		calc:     calc,
		rules:    rules,
		events:   events,
		cooldown: cooldown,
		logger:   log,
		now:      time.Now,
	}
}

// Run evaluates all enabled rules for one tenant. The instant "now" is
// captured once and reused for every window and for the suppression check.
// Any storage failure aborts the run: the caller gets an error and zero
// events, never a partially applied batch.
func (s *EvaluationService) Run(ctx context.Context, tenantID string) (*evaluation.Report, error) {
	start := s.now()
	now := start.UTC()

	snapshot, err := s.calc.Compute(ctx, tenantID, now)
	if err != nil {
		metrics.RecordEvaluation("error", s.now().Sub(start), 0, 0)
		s.logger.WithFields(map[string]interface{}{
			"tenant_id": tenantID,
		}).ErrorWithErr(err, "Metric computation failed, aborting evaluation")
		return nil, err
	}

	rules, err := s.rules.ListEnabled(ctx, tenantID)
	if err != nil {
		metrics.RecordEvaluation("error", s.now().Sub(start), 0, 0)
		s.logger.WithFields(map[string]interface{}{
			"tenant_id": tenantID,
		}).ErrorWithErr(err, "Failed to load enabled rules")
		return nil, err
	}

	var pending []*event.AlertEvent
	for _, r := range rules {
		outcome, err := rule.Evaluate(r, snapshot)
		if errors.Is(err, rule.ErrMetricUnavailable) {
			// Skip this rule only; it still counts as evaluated
			s.logger.WithFields(map[string]interface{}{
				"tenant_id": tenantID,
				"alert_id":  r.ID,
				"metric":    r.Metric,
			}).Warn("Metric unavailable, skipping rule")
			continue
		}
		if err != nil {
			metrics.RecordEvaluation("error", s.now().Sub(start), len(rules), 0)
			return nil, err
		}

		if !outcome.Fired {
			continue
		}

		since := now.Add(-r.Cooldown(s.cooldown))
		recent, err := s.events.CountSince(ctx, tenantID, r.ID, since)
		if err != nil {
			metrics.RecordEvaluation("error", s.now().Sub(start), len(rules), 0)
			s.logger.ErrorWithErr(err, "Suppression lookup failed, aborting evaluation")
			return nil, err
		}
		if recent > 0 {
			metrics.RecordSuppressed()
			continue
		}

		pending = append(pending, &event.AlertEvent{
			ID:          uuid.NewString(),
			TenantID:    tenantID,
			AlertID:     r.ID,
			Message:     formatMessage(r, outcome.Actual),
			TriggeredAt: now,
		})
	}

	if len(pending) > 0 {
		if err := s.events.InsertBatch(ctx, pending); err != nil {
			metrics.RecordEvaluation("error", s.now().Sub(start), len(rules), 0)
			s.logger.WithFields(map[string]interface{}{
				"tenant_id": tenantID,
				"batch":     len(pending),
			}).ErrorWithErr(err, "Failed to persist alert events")
			return nil, err
		}
	}

	metrics.RecordEvaluation("ok", s.now().Sub(start), len(rules), len(pending))
	s.logger.WithFields(map[string]interface{}{
		"tenant_id":       tenantID,
		"rules_evaluated": len(rules),
		"events_created":  len(pending),
	}).Info("Evaluation completed")

	return &evaluation.Report{
		OK:             true,
		Metrics:        snapshot,
		RulesEvaluated: len(rules),
		EventsCreated:  len(pending),
	}, nil
}

// formatMessage renders the human-readable event message:
// "[{name}] {metric} {operator} {threshold} (actual={actual})"
func formatMessage(r *rule.AlertRule, actual float64) string {
	return fmt.Sprintf("[%s] %s %s %s (actual=%s)",
		r.Name, r.Metric, r.Operator,
		formatNumber(r.Threshold), formatNumber(actual))
}

// formatNumber prints integral values without a trailing ".0"
func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
