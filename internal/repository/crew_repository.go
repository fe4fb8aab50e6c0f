package repository

import (
	"context"

	"github.com/teeraphat-m/maritime-fleet-api/internal/domain"
)

// CrewRepository defines the interface for crew member data access
type CrewRepository interface {
	// Create creates a new crew member
	Create(ctx context.Context, member *domain.CrewMember) error

	// GetByID retrieves a crew member by ID scoped to an organization
	GetByID(ctx context.Context, orgID, id string) (*domain.CrewMember, error)

	// ListByOrg retrieves all crew members of an organization ordered by last name
	ListByOrg(ctx context.Context, orgID string) ([]*domain.CrewMember, error)

	// ListByVessel retrieves crew members assigned to a vessel ordered by last name
	ListByVessel(ctx context.Context, orgID, vesselID string) ([]*domain.CrewMember, error)

	// Update updates a crew member
	Update(ctx context.Context, member *domain.CrewMember) error

	// Delete deletes a crew member scoped to an organization
	Delete(ctx context.Context, orgID, id string) (bool, error)
}
