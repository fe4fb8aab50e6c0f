package repository

import (
	"context"

	"github.com/teeraphat-m/maritime-fleet-api/internal/domain"
)

// VesselRepository defines the interface for vessel data access
type VesselRepository interface {
	// Create creates a new vessel
	Create(ctx context.Context, vessel *domain.Vessel) error

	// GetByID retrieves a vessel by ID scoped to an organization
	GetByID(ctx context.Context, orgID, id string) (*domain.Vessel, error)

	// GetByIMO retrieves a vessel by IMO number scoped to an organization
	GetByIMO(ctx context.Context, orgID, imo string) (*domain.Vessel, error)

	// GetByMMSI retrieves a vessel by MMSI across all organizations.
	// Used by the AIS feed consumer, which has no tenant context.
	GetByMMSI(ctx context.Context, mmsi string) (*domain.Vessel, error)

	// ListByOrg retrieves all vessels belonging to an organization
	ListByOrg(ctx context.Context, orgID string) ([]*domain.Vessel, error)

	// Update updates a vessel
	Update(ctx context.Context, vessel *domain.Vessel) error

	// UpdatePosition updates the last known position of a vessel
	UpdatePosition(ctx context.Context, id string, pos *domain.Position) error

	// Delete deletes a vessel scoped to an organization
	Delete(ctx context.Context, orgID, id string) (bool, error)

	// CountByOrg counts vessels belonging to an organization
	CountByOrg(ctx context.Context, orgID string) (int, error)
}
