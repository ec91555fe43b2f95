package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/telewatch/telewatch/internal/api/middleware"
	"github.com/telewatch/telewatch/internal/domain/metric"
	"github.com/telewatch/telewatch/internal/domain/rule"
	"github.com/telewatch/telewatch/internal/pkg/logger"
	"github.com/telewatch/telewatch/internal/pkg/validator"
	"github.com/telewatch/telewatch/internal/services"
	"github.com/telewatch/telewatch/internal/testutil"
)

func withTenant(req *http.Request, tenantID string) *http.Request {
	ctx := context.WithValue(req.Context(), middleware.TenantIDKey, tenantID)
	return req.WithContext(ctx)
}

func TestAlertRuleHandler_Create(t *testing.T) {
	mockRepo := testutil.NewMockRuleRepository()
	log := logger.New(logger.Config{Level: "error", Format: "json"})
	service := services.NewRuleService(mockRepo, log)
	handler := NewAlertRuleHandler(service, log, validator.New())

	tests := []struct {
		name           string
		body           string
		expectedStatus int
	}{
		{
			name:           "valid rule",
			body:           `{"name":"High ingest","metric":"telemetry_last_5m","operator":"gte","threshold":10}`,
			expectedStatus: http.StatusCreated,
		},
		{
			name:           "unknown metric",
			body:           `{"name":"Bad","metric":"cpu_load","operator":"gt","threshold":1}`,
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "unknown operator",
			body:           `{"name":"Bad","metric":"ingest_per_min","operator":"ne","threshold":1}`,
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "missing name",
			body:           `{"metric":"ingest_per_min","operator":"gt","threshold":1}`,
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "malformed json",
			body:           `{"name":`,
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/api/alerts", bytes.NewBufferString(tt.body))
			req = withTenant(req, "t1")
			rr := httptest.NewRecorder()

			handler.Create(rr, req)

			if rr.Code != tt.expectedStatus {
				t.Errorf("status = %d, want %d, body %s", rr.Code, tt.expectedStatus, rr.Body.String())
			}
		})
	}
}

func TestAlertRuleHandler_List(t *testing.T) {
	mockRepo := testutil.NewMockRuleRepository()
	log := logger.New(logger.Config{Level: "error", Format: "json"})
	service := services.NewRuleService(mockRepo, log)
	handler := NewAlertRuleHandler(service, log, validator.New())

	ctx := context.Background()
	for _, tenant := range []string{"t1", "t1", "t2"} {
		if _, err := service.Create(ctx, &rule.AlertRule{
			TenantID:  tenant,
			Name:      "rule",
			Metric:    metric.TelemetryLast5m,
			Operator:  rule.OpGT,
			Threshold: 1,
			Enabled:   true,
			CreatedAt: time.Now().UTC(),
		}); err != nil {
			t.Fatalf("Create() error = %v", err)
		}
	}

	req := httptest.NewRequest(http.MethodGet, "/api/alerts", nil)
	req = withTenant(req, "t1")
	rr := httptest.NewRecorder()

	handler.List(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rr.Code)
	}

	var resp struct {
		Success bool              `json:"success"`
		Data    []json.RawMessage `json:"data"`
	}
	if err := json.NewDecoder(rr.Body).Decode(&resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if !resp.Success {
		t.Error("success = false, want true")
	}
	if len(resp.Data) != 2 {
		t.Errorf("returned %d rules, want 2 (tenant scoped)", len(resp.Data))
	}
}

func TestEvaluationHandler_Run(t *testing.T) {
	rules := testutil.NewMockRuleRepository()
	events := testutil.NewMockEventRepository()
	calc := &testutil.MockCalculator{Snapshot: metric.Snapshot{
		metric.TelemetryLast5m: 12,
		metric.TelemetryLast1h: 40,
		metric.IngestPerMin:    2,
	}}
	log := logger.New(logger.Config{Level: "error", Format: "json"})
	service := services.NewEvaluationService(calc, rules, events, 5*time.Minute, log)
	handler := NewEvaluationHandler(service, log)

	req := httptest.NewRequest(http.MethodPost, "/api/evaluate", nil)
	req = withTenant(req, "t1")
	rr := httptest.NewRecorder()

	handler.Run(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200, body %s", rr.Code, rr.Body.String())
	}

	var resp struct {
		Success bool `json:"success"`
		Data    struct {
			OK             bool               `json:"ok"`
			Metrics        map[string]float64 `json:"metrics"`
			RulesEvaluated int                `json:"rules_evaluated"`
			EventsCreated  int                `json:"events_created"`
		} `json:"data"`
	}
	if err := json.NewDecoder(rr.Body).Decode(&resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if !resp.Data.OK {
		t.Error("ok = false, want true")
	}
	if resp.Data.Metrics["telemetry_last_5m"] != 12 {
		t.Errorf("metrics.telemetry_last_5m = %v, want 12", resp.Data.Metrics["telemetry_last_5m"])
	}
}
