package repository

import (
	"context"

	"github.com/teeraphat-m/maritime-fleet-api/internal/domain"
)

// AlertRepository defines the interface for alert data access
type AlertRepository interface {
	// Create creates a new alert
	Create(ctx context.Context, alert *domain.Alert) error

	// GetByID retrieves an alert by ID scoped to an organization
	GetByID(ctx context.Context, orgID, id string) (*domain.Alert, error)

	// ListByOrg retrieves alerts of an organization, optionally filtered by status
	ListByOrg(ctx context.Context, orgID, status string) ([]*domain.Alert, error)

	// ListByVessel retrieves alerts for a vessel newest first
	ListByVessel(ctx context.Context, orgID, vesselID string) ([]*domain.Alert, error)

	// Update updates an alert
	Update(ctx context.Context, alert *domain.Alert) error

	// Delete deletes an alert scoped to an organization
	Delete(ctx context.Context, orgID, id string) (bool, error)

	// CountActive counts active alerts of an organization
	CountActive(ctx context.Context, orgID string) (int, error)
}
