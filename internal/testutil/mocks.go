package testutil

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/telewatch/telewatch/internal/domain/event"
	"github.com/telewatch/telewatch/internal/domain/metric"
	"github.com/telewatch/telewatch/internal/domain/rule"
	"github.com/telewatch/telewatch/internal/domain/telemetry"
)

// MockRuleRepository is a mock implementation of rule.Repository
type MockRuleRepository struct {
	Rules       map[string]*rule.AlertRule
	CreateError error
	GetError    error
	UpdateError error
	ListError   error
}

func NewMockRuleRepository() *MockRuleRepository {
	return &MockRuleRepository{
		Rules: make(map[string]*rule.AlertRule),
	}
}

func (m *MockRuleRepository) Create(ctx context.Context, r *rule.AlertRule) error {
	if m.CreateError != nil {
		return m.CreateError
	}
	m.Rules[r.ID] = r
	return nil
}

func (m *MockRuleRepository) GetByID(ctx context.Context, tenantID, id string) (*rule.AlertRule, error) {
	if m.GetError != nil {
		return nil, m.GetError
	}
	r, ok := m.Rules[id]
	if !ok || r.TenantID != tenantID {
		return nil, fmt.Errorf("alert rule not found")
	}
	return r, nil
}

func (m *MockRuleRepository) Update(ctx context.Context, r *rule.AlertRule) error {
	if m.UpdateError != nil {
		return m.UpdateError
	}
	existing, ok := m.Rules[r.ID]
	if !ok || existing.TenantID != r.TenantID {
		return fmt.Errorf("alert rule not found")
	}
	m.Rules[r.ID] = r
	return nil
}

func (m *MockRuleRepository) Delete(ctx context.Context, tenantID, id string) error {
	r, ok := m.Rules[id]
	if !ok || r.TenantID != tenantID {
		return fmt.Errorf("alert rule not found")
	}
	delete(m.Rules, id)
	return nil
}

func (m *MockRuleRepository) List(ctx context.Context, tenantID string) ([]*rule.AlertRule, error) {
	if m.ListError != nil {
		return nil, m.ListError
	}
	return m.collect(tenantID, false), nil
}

func (m *MockRuleRepository) ListEnabled(ctx context.Context, tenantID string) ([]*rule.AlertRule, error) {
	if m.ListError != nil {
		return nil, m.ListError
	}
	return m.collect(tenantID, true), nil
}

func (m *MockRuleRepository) ListTenantsWithEnabled(ctx context.Context) ([]string, error) {
	if m.ListError != nil {
		return nil, m.ListError
	}
	seen := make(map[string]bool)
	var tenants []string
	for _, r := range m.Rules {
		if r.Enabled && !seen[r.TenantID] {
			seen[r.TenantID] = true
			tenants = append(tenants, r.TenantID)
		}
	}
	sort.Strings(tenants)
	return tenants, nil
}

func (m *MockRuleRepository) collect(tenantID string, enabledOnly bool) []*rule.AlertRule {
	var result []*rule.AlertRule
	for _, r := range m.Rules {
		if r.TenantID != tenantID {
			continue
		}
		if enabledOnly && !r.Enabled {
			continue
		}
		result = append(result, r)
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].CreatedAt.After(result[j].CreatedAt)
	})
	return result
}

// MockEventRepository is a mock implementation of event.Repository
type MockEventRepository struct {
	Events      []*event.AlertEvent
	CountError  error
	InsertError error
	ListError   error
}

func NewMockEventRepository() *MockEventRepository {
	return &MockEventRepository{}
}

func (m *MockEventRepository) CountSince(ctx context.Context, tenantID, alertID string, since time.Time) (int, error) {
	if m.CountError != nil {
		return 0, m.CountError
	}
	count := 0
	for _, e := range m.Events {
		if e.TenantID == tenantID && e.AlertID == alertID && !e.TriggeredAt.Before(since) {
			count++
		}
	}
	return count, nil
}

func (m *MockEventRepository) InsertBatch(ctx context.Context, events []*event.AlertEvent) error {
	if m.InsertError != nil {
		return m.InsertError
	}
	m.Events = append(m.Events, events...)
	return nil
}

func (m *MockEventRepository) ListRecent(ctx context.Context, tenantID string, limit int) ([]*event.AlertEvent, error) {
	if m.ListError != nil {
		return nil, m.ListError
	}
	var result []*event.AlertEvent
	for _, e := range m.Events {
		if e.TenantID == tenantID {
			result = append(result, e)
		}
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].TriggeredAt.After(result[j].TriggeredAt)
	})
	if limit > 0 && len(result) > limit {
		result = result[:limit]
	}
	return result, nil
}

// MockTelemetryRepository is a mock implementation of telemetry.Repository
type MockTelemetryRepository struct {
	Events      []*telemetry.Event
	InsertError error
	CountError  error
}

func NewMockTelemetryRepository() *MockTelemetryRepository {
	return &MockTelemetryRepository{}
}

func (m *MockTelemetryRepository) Insert(ctx context.Context, e *telemetry.Event) error {
	if m.InsertError != nil {
		return m.InsertError
	}
	m.Events = append(m.Events, e)
	return nil
}

func (m *MockTelemetryRepository) CountEvents(ctx context.Context, tenantID string, since, until time.Time) (int, error) {
	if m.CountError != nil {
		return 0, m.CountError
	}
	count := 0
	for _, e := range m.Events {
		if e.TenantID != tenantID {
			continue
		}
		if !e.IngestedAt.Before(since) && e.IngestedAt.Before(until) {
			count++
		}
	}
	return count, nil
}

// MockCalculator is a mock implementation of metric.Calculator
type MockCalculator struct {
	Snapshot metric.Snapshot
	Err      error
}

func (m *MockCalculator) Compute(ctx context.Context, tenantID string, now time.Time) (metric.Snapshot, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	return m.Snapshot, nil
}
