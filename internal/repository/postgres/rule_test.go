package postgres

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/telewatch/telewatch/internal/domain/metric"
	"github.com/telewatch/telewatch/internal/domain/rule"
	"github.com/telewatch/telewatch/internal/testutil"
)

func newRule(tenantID, name string, enabled bool, createdAt time.Time) *rule.AlertRule {
	return &rule.AlertRule{
		ID:        uuid.NewString(),
		TenantID:  tenantID,
		Name:      name,
		Metric:    metric.TelemetryLast5m,
		Operator:  rule.OpGTE,
		Threshold: 10,
		Enabled:   enabled,
		CreatedAt: createdAt,
	}
}

func TestAlertRuleRepository_CreateAndGet(t *testing.T) {
	db := testutil.NewTestDB(t)
	defer testutil.CleanupDB(db)
	repo := NewAlertRuleRepository(db)
	ctx := context.Background()

	created := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	r := newRule("t1", "High ingest", true, created)
	r.CooldownSeconds = 120

	if err := repo.Create(ctx, r); err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	got, err := repo.GetByID(ctx, "t1", r.ID)
	if err != nil {
		t.Fatalf("GetByID() error = %v", err)
	}

	if got.Name != r.Name || got.Metric != r.Metric || got.Operator != r.Operator {
		t.Errorf("GetByID() = %+v, want %+v", got, r)
	}
	if got.Threshold != 10 {
		t.Errorf("Threshold = %v, want 10", got.Threshold)
	}
	if got.CooldownSeconds != 120 {
		t.Errorf("CooldownSeconds = %d, want 120", got.CooldownSeconds)
	}
	if !got.CreatedAt.Equal(created) {
		t.Errorf("CreatedAt = %v, want %v", got.CreatedAt, created)
	}

	if _, err := repo.GetByID(ctx, "t2", r.ID); err == nil {
		t.Error("GetByID() with wrong tenant error = nil, want not found")
	}
}

func TestAlertRuleRepository_Update(t *testing.T) {
	db := testutil.NewTestDB(t)
	defer testutil.CleanupDB(db)
	repo := NewAlertRuleRepository(db)
	ctx := context.Background()

	r := newRule("t1", "High ingest", true, time.Now().UTC())
	if err := repo.Create(ctx, r); err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	r.Name = "Very high ingest"
	r.Threshold = 50
	r.Enabled = false
	if err := repo.Update(ctx, r); err != nil {
		t.Fatalf("Update() error = %v", err)
	}

	got, err := repo.GetByID(ctx, "t1", r.ID)
	if err != nil {
		t.Fatalf("GetByID() error = %v", err)
	}
	if got.Name != "Very high ingest" || got.Threshold != 50 || got.Enabled {
		t.Errorf("GetByID() after update = %+v", got)
	}

	missing := newRule("t1", "Ghost", true, time.Now().UTC())
	if err := repo.Update(ctx, missing); err == nil {
		t.Error("Update() of missing rule error = nil, want not found")
	}
}

func TestAlertRuleRepository_Delete(t *testing.T) {
	db := testutil.NewTestDB(t)
	defer testutil.CleanupDB(db)
	repo := NewAlertRuleRepository(db)
	ctx := context.Background()

	r := newRule("t1", "Doomed", true, time.Now().UTC())
	if err := repo.Create(ctx, r); err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	if err := repo.Delete(ctx, "t2", r.ID); err == nil {
		t.Error("Delete() with wrong tenant error = nil, want not found")
	}
	if err := repo.Delete(ctx, "t1", r.ID); err != nil {
		t.Errorf("Delete() error = %v", err)
	}
	if err := repo.Delete(ctx, "t1", r.ID); err == nil {
		t.Error("Delete() twice error = nil, want not found")
	}
}

func TestAlertRuleRepository_List(t *testing.T) {
	db := testutil.NewTestDB(t)
	defer testutil.CleanupDB(db)
	repo := NewAlertRuleRepository(db)
	ctx := context.Background()

	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	old := newRule("t1", "old", true, base)
	mid := newRule("t1", "mid", false, base.Add(time.Minute))
	recent := newRule("t1", "recent", true, base.Add(2*time.Minute))
	other := newRule("t2", "other", true, base)

	for _, r := range []*rule.AlertRule{old, mid, recent, other} {
		if err := repo.Create(ctx, r); err != nil {
			t.Fatalf("Create(%s) error = %v", r.Name, err)
		}
	}

	all, err := repo.List(ctx, "t1")
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if len(all) != 3 {
		t.Fatalf("List() returned %d rules, want 3", len(all))
	}
	if all[0].Name != "recent" || all[2].Name != "old" {
		t.Errorf("List() order = [%s %s %s], want newest first", all[0].Name, all[1].Name, all[2].Name)
	}

	enabled, err := repo.ListEnabled(ctx, "t1")
	if err != nil {
		t.Fatalf("ListEnabled() error = %v", err)
	}
	if len(enabled) != 2 {
		t.Fatalf("ListEnabled() returned %d rules, want 2", len(enabled))
	}
	for _, r := range enabled {
		if !r.Enabled {
			t.Errorf("ListEnabled() returned disabled rule %s", r.Name)
		}
	}

	tenants, err := repo.ListTenantsWithEnabled(ctx)
	if err != nil {
		t.Fatalf("ListTenantsWithEnabled() error = %v", err)
	}
	if len(tenants) != 2 {
		t.Errorf("ListTenantsWithEnabled() = %v, want 2 tenants", tenants)
	}
}
