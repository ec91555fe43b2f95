package dto

import "time"

// AlertEventDTO represents an alert event in API responses
type AlertEventDTO struct {
	ID          string    `json:"id"`
	AlertID     string    `json:"alert_id"`
	Message     string    `json:"message"`
	TriggeredAt time.Time `json:"triggered_at"`
}
