package dto

import "time"

// AlertRuleDTO represents an alert rule in API responses
type AlertRuleDTO struct {
	ID              string    `json:"id"`
	Name            string    `json:"name"`
	Metric          string    `json:"metric"`
	Operator        string    `json:"operator"`
	Threshold       float64   `json:"threshold"`
	CooldownSeconds int       `json:"cooldown_seconds,omitempty"`
	Enabled         bool      `json:"enabled"`
	CreatedAt       time.Time `json:"created_at"`
}

// CreateAlertRuleRequest represents an alert rule creation request
type CreateAlertRuleRequest struct {
	Name            string  `json:"name" validate:"required"`
	Metric          string  `json:"metric" validate:"required,oneof=telemetry_last_5m telemetry_last_1h ingest_per_min"`
	Operator        string  `json:"operator" validate:"required,oneof=gt gte lt lte eq"`
	Threshold       float64 `json:"threshold"`
	CooldownSeconds int     `json:"cooldown_seconds,omitempty" validate:"omitempty,min=0"`
	Enabled         *bool   `json:"enabled,omitempty"`
}

// UpdateAlertRuleRequest represents an alert rule update request
type UpdateAlertRuleRequest struct {
	Name            *string  `json:"name,omitempty"`
	Metric          *string  `json:"metric,omitempty" validate:"omitempty,oneof=telemetry_last_5m telemetry_last_1h ingest_per_min"`
	Operator        *string  `json:"operator,omitempty" validate:"omitempty,oneof=gt gte lt lte eq"`
	Threshold       *float64 `json:"threshold,omitempty"`
	CooldownSeconds *int     `json:"cooldown_seconds,omitempty" validate:"omitempty,min=0"`
	Enabled         *bool    `json:"enabled,omitempty"`
}
