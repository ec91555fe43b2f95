package worker

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/telewatch/telewatch/internal/domain/evaluation"
	"github.com/telewatch/telewatch/internal/domain/metric"
	"github.com/telewatch/telewatch/internal/domain/rule"
	"github.com/telewatch/telewatch/internal/pkg/logger"
	"github.com/telewatch/telewatch/internal/testutil"
)

type recordingEval struct {
	mu      sync.Mutex
	tenants []string
	failFor string
}

func (r *recordingEval) Run(ctx context.Context, tenantID string) (*evaluation.Report, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.tenants = append(r.tenants, tenantID)
	if tenantID == r.failFor {
		return nil, errors.New("tenant store down")
	}
	return &evaluation.Report{OK: true}, nil
}

func enableRule(repo *testutil.MockRuleRepository, tenantID string) {
	id := uuid.NewString()
	repo.Rules[id] = &rule.AlertRule{
		ID:        id,
		TenantID:  tenantID,
		Name:      "r",
		Metric:    metric.TelemetryLast5m,
		Operator:  rule.OpGT,
		Threshold: 1,
		Enabled:   true,
		CreatedAt: time.Now().UTC(),
	}
}

func TestScheduler_Sweep(t *testing.T) {
	log := logger.New(logger.Config{Level: "error", Format: "json"})

	t.Run("runs every tenant with enabled rules", func(t *testing.T) {
		rules := testutil.NewMockRuleRepository()
		enableRule(rules, "t1")
		enableRule(rules, "t2")

		eval := &recordingEval{}
		s := NewScheduler(eval, rules, "*/1 * * * *", log)
		s.sweep()

		if len(eval.tenants) != 2 {
			t.Errorf("evaluated %d tenants, want 2: %v", len(eval.tenants), eval.tenants)
		}
	})

	t.Run("one tenant failure does not stop the sweep", func(t *testing.T) {
		rules := testutil.NewMockRuleRepository()
		enableRule(rules, "t1")
		enableRule(rules, "t2")
		enableRule(rules, "t3")

		eval := &recordingEval{failFor: "t1"}
		s := NewScheduler(eval, rules, "*/1 * * * *", log)
		s.sweep()

		if len(eval.tenants) != 3 {
			t.Errorf("evaluated %d tenants, want all 3 despite failure: %v", len(eval.tenants), eval.tenants)
		}
	})

	t.Run("tenant listing failure aborts quietly", func(t *testing.T) {
		rules := testutil.NewMockRuleRepository()
		rules.ListError = errors.New("db gone")

		eval := &recordingEval{}
		s := NewScheduler(eval, rules, "*/1 * * * *", log)
		s.sweep()

		if len(eval.tenants) != 0 {
			t.Errorf("evaluated %d tenants, want 0", len(eval.tenants))
		}
	})
}
