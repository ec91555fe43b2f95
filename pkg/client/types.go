package client

import "time"

// AlertRule represents an alert rule
type AlertRule struct {
	ID              string    `json:"id"`
	Name            string    `json:"name"`
	Metric          string    `json:"metric"`
	Operator        string    `json:"operator"`
	Threshold       float64   `json:"threshold"`
	CooldownSeconds int       `json:"cooldown_seconds,omitempty"`
	Enabled         bool      `json:"enabled"`
	CreatedAt       time.Time `json:"created_at"`
}

// AlertEvent represents a fired alert occurrence
type AlertEvent struct {
	ID          string    `json:"id"`
	AlertID     string    `json:"alert_id"`
	Message     string    `json:"message"`
	TriggeredAt time.Time `json:"triggered_at"`
}

// TelemetryEvent represents a persisted telemetry reading
type TelemetryEvent struct {
	ID         string    `json:"id"`
	DeviceID   string    `json:"device_id,omitempty"`
	IngestedAt time.Time `json:"ingested_at"`
}

// EvaluationReport summarizes one evaluation run
type EvaluationReport struct {
	OK             bool               `json:"ok"`
	Metrics        map[string]float64 `json:"metrics"`
	RulesEvaluated int                `json:"rules_evaluated"`
	EventsCreated  int                `json:"events_created"`
}
