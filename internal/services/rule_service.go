package services

import (
	"context"
	"math"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/telewatch/telewatch/internal/domain/metric"
	"github.com/telewatch/telewatch/internal/domain/rule"
	"github.com/telewatch/telewatch/internal/pkg/errors"
	"github.com/telewatch/telewatch/internal/pkg/logger"
)

// RuleService implements rule.Service
type RuleService struct {
	repo   rule.Repository
	logger *logger.Logger
}

// NewRuleService creates a new rule service
func NewRuleService(repo rule.Repository, log *logger.Logger) rule.Service {
	return &RuleService{
		repo:   repo,
		logger: log,
	}
}

// Create validates and persists a new alert rule
func (s *RuleService) Create(ctx context.Context, r *rule.AlertRule) (string, error) {
	r.Name = strings.TrimSpace(r.Name)
	if err := validateRule(r); err != nil {
		return "", err
	}

	r.ID = uuid.NewString()
	r.CreatedAt = time.Now().UTC()

	if err := s.repo.Create(ctx, r); err != nil {
		s.logger.ErrorWithErr(err, "Failed to create alert rule")
		return "", err
	}

	s.logger.WithFields(map[string]interface{}{
		"alert_id":  r.ID,
		"tenant_id": r.TenantID,
		"metric":    r.Metric,
		"operator":  r.Operator,
	}).Info("Alert rule created")

	return r.ID, nil
}

// GetByID retrieves a rule by ID
func (s *RuleService) GetByID(ctx context.Context, tenantID, id string) (*rule.AlertRule, error) {
	return s.repo.GetByID(ctx, tenantID, id)
}

// Update applies partial updates to a rule and revalidates it
func (s *RuleService) Update(ctx context.Context, tenantID, id string, updates map[string]interface{}) (*rule.AlertRule, error) {
	r, err := s.repo.GetByID(ctx, tenantID, id)
	if err != nil {
		return nil, err
	}

	if name, ok := updates["name"].(string); ok {
		r.Name = strings.TrimSpace(name)
	}
	if m, ok := updates["metric"].(string); ok {
		r.Metric = metric.Key(m)
	}
	if op, ok := updates["operator"].(string); ok {
		r.Operator = rule.Operator(op)
	}
	if threshold, ok := updates["threshold"].(float64); ok {
		r.Threshold = threshold
	}
	if cooldown, ok := updates["cooldown_seconds"].(int); ok {
		r.CooldownSeconds = cooldown
	}
	if enabled, ok := updates["enabled"].(bool); ok {
		r.Enabled = enabled
	}

	if err := validateRule(r); err != nil {
		return nil, err
	}

	if err := s.repo.Update(ctx, r); err != nil {
		s.logger.ErrorWithErr(err, "Failed to update alert rule")
		return nil, err
	}

	s.logger.WithFields(map[string]interface{}{
		"alert_id":  id,
		"tenant_id": tenantID,
	}).Info("Alert rule updated")

	return r, nil
}

// Delete deletes a rule
func (s *RuleService) Delete(ctx context.Context, tenantID, id string) error {
	if err := s.repo.Delete(ctx, tenantID, id); err != nil {
		s.logger.ErrorWithErr(err, "Failed to delete alert rule")
		return err
	}

	s.logger.WithFields(map[string]interface{}{
		"alert_id":  id,
		"tenant_id": tenantID,
	}).Info("Alert rule deleted")

	return nil
}

// List retrieves all rules for a tenant, newest first
func (s *RuleService) List(ctx context.Context, tenantID string) ([]*rule.AlertRule, error) {
	return s.repo.List(ctx, tenantID)
}

// validateRule rejects malformed rules before they can reach the evaluator.
func validateRule(r *rule.AlertRule) error {
	if r.Name == "" {
		return errors.ValidationError("name is required", nil)
	}
	if !metric.Valid(r.Metric) {
		return errors.ValidationError("invalid metric", map[string]interface{}{
			"metric": r.Metric, "supported": metric.Keys,
		})
	}
	if !rule.ValidOperator(r.Operator) {
		return errors.ValidationError("invalid operator", map[string]interface{}{
			"operator": r.Operator,
		})
	}
	if math.IsNaN(r.Threshold) || math.IsInf(r.Threshold, 0) {
		return errors.ValidationError("threshold must be a finite number", nil)
	}
	if r.CooldownSeconds < 0 {
		return errors.ValidationError("cooldown_seconds must not be negative", nil)
	}
	return nil
}
