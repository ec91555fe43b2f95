package postgres

import (
	"context"
	"database/sql"
	"time"

	"github.com/telewatch/telewatch/internal/domain/rule"
	"github.com/telewatch/telewatch/internal/pkg/errors"
)

type AlertRuleRepository struct {
	db *sql.DB
}

func NewAlertRuleRepository(db *sql.DB) rule.Repository {
	return &AlertRuleRepository{db: db}
}

const ruleColumns = "id, tenant_id, name, metric, operator, threshold, cooldown_seconds, enabled, created_at"

func (r *AlertRuleRepository) Create(ctx context.Context, a *rule.AlertRule) error {
	query := `
		INSERT INTO alert_rules (id, tenant_id, name, metric, operator, threshold, cooldown_seconds, enabled, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	_, err := r.db.ExecContext(ctx, query,
		a.ID, a.TenantID, a.Name, string(a.Metric), string(a.Operator),
		a.Threshold, a.CooldownSeconds, a.Enabled, a.CreatedAt.UnixMilli(),
	)
	if err != nil {
		return errors.DatabaseError("Failed to create alert rule", err)
	}

	return nil
}

func (r *AlertRuleRepository) GetByID(ctx context.Context, tenantID, id string) (*rule.AlertRule, error) {
	query := `SELECT ` + ruleColumns + ` FROM alert_rules WHERE tenant_id = ? AND id = ?`

	row := r.db.QueryRowContext(ctx, query, tenantID, id)
	a, err := scanRule(row)
	if err == sql.ErrNoRows {
		return nil, errors.NotFound("Alert rule")
	}
	if err != nil {
		return nil, errors.DatabaseError("Failed to get alert rule", err)
	}

	return a, nil
}

func (r *AlertRuleRepository) Update(ctx context.Context, a *rule.AlertRule) error {
	query := `
		UPDATE alert_rules
		SET name = ?, metric = ?, operator = ?, threshold = ?, cooldown_seconds = ?, enabled = ?
		WHERE tenant_id = ? AND id = ?
	`

	result, err := r.db.ExecContext(ctx, query,
		a.Name, string(a.Metric), string(a.Operator), a.Threshold,
		a.CooldownSeconds, a.Enabled, a.TenantID, a.ID,
	)
	if err != nil {
		return errors.DatabaseError("Failed to update alert rule", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return errors.DatabaseError("Failed to get affected rows", err)
	}
	if rows == 0 {
		return errors.NotFound("Alert rule")
	}

	return nil
}

func (r *AlertRuleRepository) Delete(ctx context.Context, tenantID, id string) error {
	result, err := r.db.ExecContext(ctx, "DELETE FROM alert_rules WHERE tenant_id = ? AND id = ?", tenantID, id)
	if err != nil {
		return errors.DatabaseError("Failed to delete alert rule", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return errors.DatabaseError("Failed to get affected rows", err)
	}
	if rows == 0 {
		return errors.NotFound("Alert rule")
	}

	return nil
}

func (r *AlertRuleRepository) List(ctx context.Context, tenantID string) ([]*rule.AlertRule, error) {
	query := `SELECT ` + ruleColumns + ` FROM alert_rules WHERE tenant_id = ? ORDER BY created_at DESC`
	return r.queryRules(ctx, query, tenantID)
}

func (r *AlertRuleRepository) ListEnabled(ctx context.Context, tenantID string) ([]*rule.AlertRule, error) {
	query := `SELECT ` + ruleColumns + ` FROM alert_rules WHERE tenant_id = ? AND enabled = ? ORDER BY created_at DESC`
	return r.queryRules(ctx, query, tenantID, true)
}

func (r *AlertRuleRepository) ListTenantsWithEnabled(ctx context.Context) ([]string, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT DISTINCT tenant_id FROM alert_rules WHERE enabled = ?`, true)
	if err != nil {
		return nil, errors.DatabaseError("Failed to list tenants", err)
	}
	defer rows.Close()

	var tenants []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, errors.DatabaseError("Failed to scan tenant ID", err)
		}
		tenants = append(tenants, id)
	}

	return tenants, rows.Err()
}

func (r *AlertRuleRepository) queryRules(ctx context.Context, query string, args ...interface{}) ([]*rule.AlertRule, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, errors.DatabaseError("Failed to list alert rules", err)
	}
	defer rows.Close()

	rules := make([]*rule.AlertRule, 0, 16)
	for rows.Next() {
		a, err := scanRule(rows)
		if err != nil {
			return nil, errors.DatabaseError("Failed to scan alert rule", err)
		}
		rules = append(rules, a)
	}

	return rules, rows.Err()
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanRule(row rowScanner) (*rule.AlertRule, error) {
	var a rule.AlertRule
	var createdAt int64
	err := row.Scan(
		&a.ID, &a.TenantID, &a.Name, &a.Metric, &a.Operator,
		&a.Threshold, &a.CooldownSeconds, &a.Enabled, &createdAt,
	)
	if err != nil {
		return nil, err
	}
	a.CreatedAt = time.UnixMilli(createdAt).UTC()
	return &a, nil
}
