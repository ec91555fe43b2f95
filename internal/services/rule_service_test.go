package services

import (
	"context"
	"math"
	"testing"

	"github.com/telewatch/telewatch/internal/domain/metric"
	"github.com/telewatch/telewatch/internal/domain/rule"
	"github.com/telewatch/telewatch/internal/pkg/logger"
	"github.com/telewatch/telewatch/internal/testutil"
)

func TestRuleService_Create(t *testing.T) {
	mockRepo := testutil.NewMockRuleRepository()
	log := logger.New(logger.Config{Level: "error", Format: "json"})
	service := NewRuleService(mockRepo, log)

	tests := []struct {
		name    string
		rule    *rule.AlertRule
		wantErr bool
	}{
		{
			name: "valid rule",
			rule: &rule.AlertRule{
				TenantID:  "t1",
				Name:      "High ingest",
				Metric:    metric.TelemetryLast5m,
				Operator:  rule.OpGTE,
				Threshold: 10,
				Enabled:   true,
			},
			wantErr: false,
		},
		{
			name: "name trimmed to empty",
			rule: &rule.AlertRule{
				TenantID:  "t1",
				Name:      "   ",
				Metric:    metric.TelemetryLast5m,
				Operator:  rule.OpGT,
				Threshold: 1,
			},
			wantErr: true,
		},
		{
			name: "unknown metric",
			rule: &rule.AlertRule{
				TenantID:  "t1",
				Name:      "Bad metric",
				Metric:    metric.Key("cpu_load"),
				Operator:  rule.OpGT,
				Threshold: 1,
			},
			wantErr: true,
		},
		{
			name: "unknown operator",
			rule: &rule.AlertRule{
				TenantID:  "t1",
				Name:      "Bad operator",
				Metric:    metric.TelemetryLast1h,
				Operator:  rule.Operator("ne"),
				Threshold: 1,
			},
			wantErr: true,
		},
		{
			name: "NaN threshold",
			rule: &rule.AlertRule{
				TenantID:  "t1",
				Name:      "NaN threshold",
				Metric:    metric.TelemetryLast1h,
				Operator:  rule.OpGT,
				Threshold: math.NaN(),
			},
			wantErr: true,
		},
		{
			name: "negative cooldown",
			rule: &rule.AlertRule{
				TenantID:        "t1",
				Name:            "Negative cooldown",
				Metric:          metric.IngestPerMin,
				Operator:        rule.OpLT,
				Threshold:       1,
				CooldownSeconds: -5,
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := context.Background()
			id, err := service.Create(ctx, tt.rule)

			if (err != nil) != tt.wantErr {
				t.Errorf("Create() error = %v, wantErr %v", err, tt.wantErr)
				return
			}

			if !tt.wantErr && id == "" {
				t.Error("Create() returned empty id")
			}
		})
	}
}

func TestRuleService_Update(t *testing.T) {
	mockRepo := testutil.NewMockRuleRepository()
	log := logger.New(logger.Config{Level: "error", Format: "json"})
	service := NewRuleService(mockRepo, log)

	ctx := context.Background()
	id, err := service.Create(ctx, &rule.AlertRule{
		TenantID:  "t1",
		Name:      "High ingest",
		Metric:    metric.TelemetryLast5m,
		Operator:  rule.OpGTE,
		Threshold: 10,
		Enabled:   true,
	})
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	t.Run("partial update keeps other fields", func(t *testing.T) {
		updated, err := service.Update(ctx, "t1", id, map[string]interface{}{
			"threshold": 20.0,
			"enabled":   false,
		})
		if err != nil {
			t.Fatalf("Update() error = %v", err)
		}
		if updated.Threshold != 20 {
			t.Errorf("Threshold = %v, want 20", updated.Threshold)
		}
		if updated.Enabled {
			t.Error("Enabled = true, want false")
		}
		if updated.Name != "High ingest" {
			t.Errorf("Name = %q, want unchanged", updated.Name)
		}
	})

	t.Run("invalid update is rejected", func(t *testing.T) {
		if _, err := service.Update(ctx, "t1", id, map[string]interface{}{
			"operator": "between",
		}); err == nil {
			t.Error("Update() error = nil, want validation error")
		}
	})

	t.Run("wrong tenant cannot update", func(t *testing.T) {
		if _, err := service.Update(ctx, "t2", id, map[string]interface{}{
			"threshold": 5.0,
		}); err == nil {
			t.Error("Update() error = nil, want not found")
		}
	})
}

func TestRuleService_Delete(t *testing.T) {
	mockRepo := testutil.NewMockRuleRepository()
	log := logger.New(logger.Config{Level: "error", Format: "json"})
	service := NewRuleService(mockRepo, log)

	ctx := context.Background()
	id, _ := service.Create(ctx, &rule.AlertRule{
		TenantID:  "t1",
		Name:      "Doomed",
		Metric:    metric.TelemetryLast5m,
		Operator:  rule.OpGT,
		Threshold: 1,
	})

	if err := service.Delete(ctx, "t2", id); err == nil {
		t.Error("Delete() with wrong tenant error = nil, want error")
	}
	if err := service.Delete(ctx, "t1", id); err != nil {
		t.Errorf("Delete() error = %v", err)
	}
	if err := service.Delete(ctx, "t1", id); err == nil {
		t.Error("Delete() after delete error = nil, want error")
	}
}
