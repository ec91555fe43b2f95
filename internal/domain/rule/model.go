package rule

import (
	"time"

	"github.com/telewatch/telewatch/internal/domain/metric"
)

// Operator is a threshold comparison operator.
type Operator string

// Supported comparison operators.
const (
	OpGT  Operator = "gt"
	OpGTE Operator = "gte"
	OpLT  Operator = "lt"
	OpLTE Operator = "lte"
	OpEQ  Operator = "eq"
)

// ValidOperator reports whether op is a supported operator.
func ValidOperator(op Operator) bool {
	switch op {
	case OpGT, OpGTE, OpLT, OpLTE, OpEQ:
		return true
	}
	return false
}

// AlertRule is a tenant-defined threshold rule over a telemetry metric.
// Rules are evaluated repeatedly without mutation by the engine.
type AlertRule struct {
	ID       string     `json:"id"`
	TenantID string     `json:"tenant_id"`
	Name     string     `json:"name"`
	Metric   metric.Key `json:"metric"`
	Operator Operator   `json:"operator"`
	Threshold float64   `json:"threshold"`
	// CooldownSeconds overrides the engine-wide suppression window for this
	// rule. Zero means use the default.
	CooldownSeconds int       `json:"cooldown_seconds,omitempty"`
	Enabled         bool      `json:"enabled"`
	CreatedAt       time.Time `json:"created_at"`
}

// Cooldown returns the suppression window for this rule, falling back to
// def when the rule has no override.
func (r *AlertRule) Cooldown(def time.Duration) time.Duration {
	if r.CooldownSeconds > 0 {
		return time.Duration(r.CooldownSeconds) * time.Second
	}
	return def
}
