package client

import (
	"context"
	"fmt"
)

// AlertRuleService handles alert rule API calls
type AlertRuleService struct {
	client *Client
}

// CreateAlertRuleRequest represents a request to create an alert rule
type CreateAlertRuleRequest struct {
	Name            string  `json:"name"`
	Metric          string  `json:"metric"`   // telemetry_last_5m, telemetry_last_1h, ingest_per_min
	Operator        string  `json:"operator"` // gt, gte, lt, lte, eq
	Threshold       float64 `json:"threshold"`
	CooldownSeconds int     `json:"cooldown_seconds,omitempty"`
	Enabled         *bool   `json:"enabled,omitempty"`
}

// UpdateAlertRuleRequest represents a request to update an alert rule
type UpdateAlertRuleRequest struct {
	Name            *string  `json:"name,omitempty"`
	Metric          *string  `json:"metric,omitempty"`
	Operator        *string  `json:"operator,omitempty"`
	Threshold       *float64 `json:"threshold,omitempty"`
	CooldownSeconds *int     `json:"cooldown_seconds,omitempty"`
	Enabled         *bool    `json:"enabled,omitempty"`
}

// List retrieves all alert rules for the caller's tenant
func (s *AlertRuleService) List(ctx context.Context) ([]AlertRule, error) {
	var rules []AlertRule
	if err := s.client.doRequest(ctx, "GET", "/api/alerts", nil, &rules); err != nil {
		return nil, err
	}
	return rules, nil
}

// Create creates a new alert rule
func (s *AlertRuleService) Create(ctx context.Context, req CreateAlertRuleRequest) (*AlertRule, error) {
	var rule AlertRule
	if err := s.client.doRequest(ctx, "POST", "/api/alerts", req, &rule); err != nil {
		return nil, err
	}
	return &rule, nil
}

// Update updates an existing alert rule
func (s *AlertRuleService) Update(ctx context.Context, id string, req UpdateAlertRuleRequest) (*AlertRule, error) {
	path := fmt.Sprintf("/api/alerts/%s", id)

	var rule AlertRule
	if err := s.client.doRequest(ctx, "PATCH", path, req, &rule); err != nil {
		return nil, err
	}
	return &rule, nil
}

// Enable enables an alert rule
func (s *AlertRuleService) Enable(ctx context.Context, id string) (*AlertRule, error) {
	enabled := true
	return s.Update(ctx, id, UpdateAlertRuleRequest{Enabled: &enabled})
}

// Disable disables an alert rule
func (s *AlertRuleService) Disable(ctx context.Context, id string) (*AlertRule, error) {
	enabled := false
	return s.Update(ctx, id, UpdateAlertRuleRequest{Enabled: &enabled})
}

// Delete deletes an alert rule
func (s *AlertRuleService) Delete(ctx context.Context, id string) error {
	path := fmt.Sprintf("/api/alerts/%s", id)
	return s.client.doRequest(ctx, "DELETE", path, nil, nil)
}
