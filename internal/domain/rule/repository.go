package rule

import "context"

// Repository defines the interface for alert rule data access.
// Every query is scoped by tenant ID.
type Repository interface {
	// Create persists a new rule
	Create(ctx context.Context, r *AlertRule) error

	// GetByID retrieves a rule by ID
	GetByID(ctx context.Context, tenantID, id string) (*AlertRule, error)

	// Update updates a rule
	Update(ctx context.Context, r *AlertRule) error

	// Delete deletes a rule
	Delete(ctx context.Context, tenantID, id string) error

	// List retrieves all rules for a tenant, newest first
	List(ctx context.Context, tenantID string) ([]*AlertRule, error)

	// ListEnabled retrieves enabled rules for a tenant, newest first
	ListEnabled(ctx context.Context, tenantID string) ([]*AlertRule, error)

	// ListTenantsWithEnabled returns the IDs of all tenants that have at
	// least one enabled rule, for the background evaluation sweep
	ListTenantsWithEnabled(ctx context.Context) ([]string, error)
}
