package repository

import (
	"context"

	"github.com/teeraphat-m/maritime-fleet-api/internal/domain"
)

// MaintenanceRepository defines the interface for maintenance log data access
type MaintenanceRepository interface {
	// Create creates a new maintenance log
	Create(ctx context.Context, log *domain.MaintenanceLog) error

	// GetByID retrieves a maintenance log by ID scoped to an organization
	GetByID(ctx context.Context, orgID, id string) (*domain.MaintenanceLog, error)

	// ListByVessel retrieves maintenance logs for a vessel newest first
	ListByVessel(ctx context.Context, orgID, vesselID string) ([]*domain.MaintenanceLog, error)

	// Update updates a maintenance log
	Update(ctx context.Context, log *domain.MaintenanceLog) error

	// Delete deletes a maintenance log scoped to an organization
	Delete(ctx context.Context, orgID, id string) (bool, error)
}
