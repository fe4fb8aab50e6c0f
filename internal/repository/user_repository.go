package repository

import (
	"context"

	"github.com/teeraphat-m/maritime-fleet-api/internal/domain"
)

// UserRepository defines the interface for user data access
type UserRepository interface {
	// Create creates a new user
	Create(ctx context.Context, user *domain.User) error

	// GetByID retrieves a user by ID
	GetByID(ctx context.Context, id string) (*domain.User, error)

	// GetByEmail retrieves a user by email
	GetByEmail(ctx context.Context, email string) (*domain.User, error)

	// ListByOrg retrieves all users belonging to an organization
	ListByOrg(ctx context.Context, orgID string) ([]*domain.User, error)

	// Update updates a user
	Update(ctx context.Context, user *domain.User) error
}
