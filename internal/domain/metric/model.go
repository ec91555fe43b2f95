package metric

import (
	"context"
	"time"
)

// Key identifies a supported telemetry metric.
type Key string

// Supported metric keys. The set is closed: rules referencing anything else
// are rejected at creation time.
const (
	TelemetryLast5m Key = "telemetry_last_5m"
	TelemetryLast1h Key = "telemetry_last_1h"
	IngestPerMin    Key = "ingest_per_min"
)

// Keys lists every supported metric key.
var Keys = []Key{TelemetryLast5m, TelemetryLast1h, IngestPerMin}

// Valid reports whether k is a supported metric key.
func Valid(k Key) bool {
	switch k {
	case TelemetryLast5m, TelemetryLast1h, IngestPerMin:
		return true
	}
	return false
}

// Snapshot maps metric keys to values computed for one tenant at one instant.
// It is recomputed on every evaluation and never persisted. A key absent from
// the snapshot means the metric could not be computed for this tick; rules
// referencing it are skipped, never treated as zero.
type Snapshot map[Key]float64

// Calculator computes a Snapshot for a tenant. The caller captures "now" once
// per evaluation and passes it in so all windows share the same instant.
type Calculator interface {
	Compute(ctx context.Context, tenantID string, now time.Time) (Snapshot, error)
}
