package repository

import (
	"context"

	"github.com/teeraphat-m/maritime-fleet-api/internal/domain"
)

// ThresholdRepository defines the interface for alert threshold data access
type ThresholdRepository interface {
	// Create creates a new threshold
	Create(ctx context.Context, threshold *domain.Threshold) error

	// GetByID retrieves a threshold by ID scoped to an organization
	GetByID(ctx context.Context, orgID, id string) (*domain.Threshold, error)

	// ListByOrg retrieves all thresholds of an organization
	ListByOrg(ctx context.Context, orgID string) ([]*domain.Threshold, error)

	// Update updates a threshold
	Update(ctx context.Context, threshold *domain.Threshold) error

	// Delete deletes a threshold scoped to an organization
	Delete(ctx context.Context, orgID, id string) (bool, error)
}
