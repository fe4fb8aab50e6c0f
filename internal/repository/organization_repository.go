package repository

import (
	"context"

	"github.com/teeraphat-m/maritime-fleet-api/internal/domain"
)

// OrganizationRepository defines the interface for tenant data access
type OrganizationRepository interface {
	// Create creates a new organization
	Create(ctx context.Context, org *domain.Organization) error
	// GetByID retrieves an organization by ID
	GetByID(ctx context.Context, id string) (*domain.Organization, error)
	// GetBySlug retrieves an organization by slug
	GetBySlug(ctx context.Context, slug string) (*domain.Organization, error)
	// List retrieves all organizations
	List(ctx context.Context) ([]*domain.Organization, error)
	// Update updates an organization
	Update(ctx context.Context, org *domain.Organization) error
}
