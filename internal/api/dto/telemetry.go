package dto

import "time"

// IngestTelemetryRequest represents one telemetry reading being persisted
type IngestTelemetryRequest struct {
	DeviceID string `json:"device_id,omitempty" validate:"omitempty,max=100"`
	Payload  string `json:"payload,omitempty"`
}

// TelemetryEventDTO represents a persisted telemetry reading
type TelemetryEventDTO struct {
	ID         string    `json:"id"`
	DeviceID   string    `json:"device_id,omitempty"`
	IngestedAt time.Time `json:"ingested_at"`
}
