package repository

import (
	"context"

	"github.com/jackc/pgx/v5"

	"github.com/teeraphat-m/maritime-fleet-api/internal/domain"
)

// InventoryRepository defines the interface for inventory item data access
type InventoryRepository interface {
	// Create creates a new inventory item
	Create(ctx context.Context, item *domain.InventoryItem) error

	// GetByID retrieves an inventory item by ID scoped to an organization
	GetByID(ctx context.Context, orgID, id string) (*domain.InventoryItem, error)

	// GetByVesselAndType retrieves an inventory item for a vessel by item type
	GetByVesselAndType(ctx context.Context, orgID, vesselID, itemType string) (*domain.InventoryItem, error)

	// ListByVessel retrieves all inventory items of a vessel
	ListByVessel(ctx context.Context, orgID, vesselID string) ([]*domain.InventoryItem, error)

	// ListByOrg retrieves all inventory items of an organization
	ListByOrg(ctx context.Context, orgID string) ([]*domain.InventoryItem, error)

	// Update updates an inventory item
	Update(ctx context.Context, item *domain.InventoryItem) error

	// SetQuantity sets the current quantity of an inventory item
	SetQuantity(ctx context.Context, id string, quantity float64) error

	// IncrementQuantity adds a delta to the current quantity of an inventory item
	IncrementQuantity(ctx context.Context, id string, delta float64) error

	// WithTx returns a copy of the repository bound to the given transaction
	WithTx(tx pgx.Tx) InventoryRepository
}
