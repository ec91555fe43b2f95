package event

import "time"

// AlertEvent records one non-suppressed firing of an alert rule.
// Events are immutable once created; they are only read back for display
// and for the suppression check.
type AlertEvent struct {
	ID          string    `json:"id"`
	TenantID    string    `json:"tenant_id"`
	AlertID     string    `json:"alert_id"`
	Message     string    `json:"message"`
	TriggeredAt time.Time `json:"triggered_at"`
}
