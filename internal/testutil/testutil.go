package testutil

import (
	"database/sql"
	"testing"

	_ "modernc.org/sqlite"
)

// NewTestDB creates an in-memory SQLite database for testing
func NewTestDB(t *testing.T) *sql.DB {
	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}

	// In-memory databases vanish when the last connection closes
	db.SetMaxOpenConns(1)

	schema := `
	CREATE TABLE IF NOT EXISTS alert_rules (
		id VARCHAR(36) PRIMARY KEY,
		tenant_id VARCHAR(36) NOT NULL,
		name VARCHAR(255) NOT NULL,
		metric VARCHAR(50) NOT NULL,
		operator VARCHAR(10) NOT NULL,
		threshold DOUBLE PRECISION NOT NULL,
		cooldown_seconds INTEGER NOT NULL DEFAULT 0,
		enabled BOOLEAN NOT NULL DEFAULT TRUE,
		created_at BIGINT NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_alert_rules_tenant_enabled
		ON alert_rules (tenant_id, enabled);

	CREATE TABLE IF NOT EXISTS alert_events (
		id VARCHAR(36) PRIMARY KEY,
		tenant_id VARCHAR(36) NOT NULL,
		alert_id VARCHAR(36) NOT NULL,
		message TEXT NOT NULL,
		triggered_at BIGINT NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_alert_events_dedup
		ON alert_events (tenant_id, alert_id, triggered_at);

	CREATE INDEX IF NOT EXISTS idx_alert_events_recent
		ON alert_events (tenant_id, triggered_at);

	CREATE TABLE IF NOT EXISTS telemetry (
		id VARCHAR(36) PRIMARY KEY,
		tenant_id VARCHAR(36) NOT NULL,
		device_id VARCHAR(100),
		payload TEXT,
		ingested_at BIGINT NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_telemetry_tenant_window
		ON telemetry (tenant_id, ingested_at);
	`

	if _, err := db.Exec(schema); err != nil {
		t.Fatalf("Failed to create test schema: %v", err)
	}

	return db
}

// CleanupDB closes the test database
func CleanupDB(db *sql.DB) {
	if db != nil {
		db.Close()
	}
}
