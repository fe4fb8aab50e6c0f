package repository

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/teeraphat-m/maritime-fleet-api/internal/domain"
)

// PostgresInventoryRepository implements InventoryRepository using PostgreSQL
type PostgresInventoryRepository struct {
	db DB
}

// NewPostgresInventoryRepository creates a new PostgresInventoryRepository
func NewPostgresInventoryRepository(db DB) *PostgresInventoryRepository {
	return &PostgresInventoryRepository{db: db}
}

// WithTx returns a copy of the repository bound to the given transaction
func (r *PostgresInventoryRepository) WithTx(tx pgx.Tx) InventoryRepository {
	return &PostgresInventoryRepository{db: tx}
}

const inventoryColumns = `id, org_id, vessel_id, item_type, current_quantity, capacity, min_safety_level, unit, last_updated, created_at, updated_at`

// Create creates a new inventory item
func (r *PostgresInventoryRepository) Create(ctx context.Context, item *domain.InventoryItem) error {
	query := `
		INSERT INTO inventory_items (id, org_id, vessel_id, item_type, current_quantity, capacity, min_safety_level, unit, last_updated, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	`
	_, err := r.db.Exec(ctx, query,
		item.ID,
		item.OrgID,
		item.VesselID,
		item.ItemType,
		item.CurrentQuantity,
		item.Capacity,
		item.MinSafetyLevel,
		item.Unit,
		item.LastUpdated,
		item.CreatedAt,
		item.UpdatedAt,
	)
	return classifyError(err)
}

// GetByID retrieves an inventory item by ID scoped to an organization
func (r *PostgresInventoryRepository) GetByID(ctx context.Context, orgID, id string) (*domain.InventoryItem, error) {
	query := `SELECT ` + inventoryColumns + ` FROM inventory_items WHERE org_id = $1 AND id = $2`
	item, err := scanInventoryItem(r.db.QueryRow(ctx, query, orgID, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return item, nil
}

// GetByVesselAndType retrieves an inventory item for a vessel by item type
func (r *PostgresInventoryRepository) GetByVesselAndType(ctx context.Context, orgID, vesselID, itemType string) (*domain.InventoryItem, error) {
	query := `SELECT ` + inventoryColumns + ` FROM inventory_items WHERE org_id = $1 AND vessel_id = $2 AND item_type = $3`
	item, err := scanInventoryItem(r.db.QueryRow(ctx, query, orgID, vesselID, itemType))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return item, nil
}

// ListByVessel retrieves all inventory items of a vessel
func (r *PostgresInventoryRepository) ListByVessel(ctx context.Context, orgID, vesselID string) ([]*domain.InventoryItem, error) {
	query := `SELECT ` + inventoryColumns + ` FROM inventory_items WHERE org_id = $1 AND vessel_id = $2 ORDER BY item_type ASC`
	return r.list(ctx, query, orgID, vesselID)
}

// ListByOrg retrieves all inventory items of an organization
func (r *PostgresInventoryRepository) ListByOrg(ctx context.Context, orgID string) ([]*domain.InventoryItem, error) {
	query := `SELECT ` + inventoryColumns + ` FROM inventory_items WHERE org_id = $1 ORDER BY vessel_id ASC, item_type ASC`
	return r.list(ctx, query, orgID)
}

// Update updates an inventory item
func (r *PostgresInventoryRepository) Update(ctx context.Context, item *domain.InventoryItem) error {
	query := `
		UPDATE inventory_items
		SET current_quantity = $2, capacity = $3, min_safety_level = $4, unit = $5,
		    last_updated = $6, updated_at = $7
		WHERE id = $1
	`
	now := time.Now()
	_, err := r.db.Exec(ctx, query,
		item.ID,
		item.CurrentQuantity,
		item.Capacity,
		item.MinSafetyLevel,
		item.Unit,
		now,
		now,
	)
	return err
}

// SetQuantity sets the current quantity of an inventory item
func (r *PostgresInventoryRepository) SetQuantity(ctx context.Context, id string, quantity float64) error {
	query := `UPDATE inventory_items SET current_quantity = $2, last_updated = $3, updated_at = $3 WHERE id = $1`
	_, err := r.db.Exec(ctx, query, id, quantity, time.Now())
	return err
}

// IncrementQuantity adds a delta to the current quantity of an inventory item
func (r *PostgresInventoryRepository) IncrementQuantity(ctx context.Context, id string, delta float64) error {
	query := `UPDATE inventory_items SET current_quantity = current_quantity + $2, last_updated = $3, updated_at = $3 WHERE id = $1`
	_, err := r.db.Exec(ctx, query, id, delta, time.Now())
	return err
}

func (r *PostgresInventoryRepository) list(ctx context.Context, query string, args ...interface{}) ([]*domain.InventoryItem, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []*domain.InventoryItem
	for rows.Next() {
		item, err := scanInventoryItem(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

func scanInventoryItem(row pgx.Row) (*domain.InventoryItem, error) {
	item := &domain.InventoryItem{}
	err := row.Scan(
		&item.ID,
		&item.OrgID,
		&item.VesselID,
		&item.ItemType,
		&item.CurrentQuantity,
		&item.Capacity,
		&item.MinSafetyLevel,
		&item.Unit,
		&item.LastUpdated,
		&item.CreatedAt,
		&item.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return item, nil
}
