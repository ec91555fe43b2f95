package telemetry

import "time"

// Event is one ingested telemetry reading. The payload is stored opaque;
// the evaluation engine only counts events inside time windows.
type Event struct {
	ID         string    `json:"id"`
	TenantID   string    `json:"tenant_id"`
	DeviceID   string    `json:"device_id,omitempty"`
	Payload    string    `json:"payload,omitempty"`
	IngestedAt time.Time `json:"ingested_at"`
}
