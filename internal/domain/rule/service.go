package rule

import "context"

// Service defines the interface for alert rule management.
type Service interface {
	// Create validates and persists a new rule
	Create(ctx context.Context, r *AlertRule) (string, error)

	// GetByID retrieves a rule by ID
	GetByID(ctx context.Context, tenantID, id string) (*AlertRule, error)

	// Update applies partial updates to a rule
	Update(ctx context.Context, tenantID, id string, updates map[string]interface{}) (*AlertRule, error)

	// Delete deletes a rule
	Delete(ctx context.Context, tenantID, id string) error

	// List retrieves all rules for a tenant, newest first
	List(ctx context.Context, tenantID string) ([]*AlertRule, error)
}
