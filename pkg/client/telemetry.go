package client

import "context"

// TelemetryService handles telemetry ingest API calls
type TelemetryService struct {
	client *Client
}

// IngestTelemetryRequest represents one telemetry reading
type IngestTelemetryRequest struct {
	DeviceID string `json:"device_id,omitempty"`
	Payload  string `json:"payload,omitempty"`
}

// Ingest persists one telemetry reading for the caller's tenant
func (s *TelemetryService) Ingest(ctx context.Context, req IngestTelemetryRequest) (*TelemetryEvent, error) {
	var event TelemetryEvent
	if err := s.client.doRequest(ctx, "POST", "/api/telemetry", req, &event); err != nil {
		return nil, err
	}
	return &event, nil
}
