package repository

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/teeraphat-m/maritime-fleet-api/internal/domain"
)

// PostgresThresholdRepository implements ThresholdRepository using PostgreSQL
type PostgresThresholdRepository struct {
	db DB
}

// NewPostgresThresholdRepository creates a new PostgresThresholdRepository
func NewPostgresThresholdRepository(db DB) *PostgresThresholdRepository {
	return &PostgresThresholdRepository{db: db}
}

const thresholdColumns = `id, org_id, name, metric, operator, value, severity, enabled, created_at, updated_at`

// Create creates a new threshold
func (r *PostgresThresholdRepository) Create(ctx context.Context, threshold *domain.Threshold) error {
	query := `
		INSERT INTO thresholds (id, org_id, name, metric, operator, value, severity, enabled, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`
	_, err := r.db.Exec(ctx, query,
		threshold.ID,
		threshold.OrgID,
		threshold.Name,
		threshold.Metric,
		threshold.Operator,
		threshold.Value,
		threshold.Severity,
		threshold.Enabled,
		threshold.CreatedAt,
		threshold.UpdatedAt,
	)
	return classifyError(err)
}

// GetByID retrieves a threshold by ID scoped to an organization
func (r *PostgresThresholdRepository) GetByID(ctx context.Context, orgID, id string) (*domain.Threshold, error) {
	query := `SELECT ` + thresholdColumns + ` FROM thresholds WHERE org_id = $1 AND id = $2`
	threshold, err := scanThreshold(r.db.QueryRow(ctx, query, orgID, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return threshold, nil
}

// ListByOrg retrieves all thresholds of an organization
func (r *PostgresThresholdRepository) ListByOrg(ctx context.Context, orgID string) ([]*domain.Threshold, error) {
	query := `SELECT ` + thresholdColumns + ` FROM thresholds WHERE org_id = $1 ORDER BY name ASC`
	rows, err := r.db.Query(ctx, query, orgID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var thresholds []*domain.Threshold
	for rows.Next() {
		threshold, err := scanThreshold(rows)
		if err != nil {
			return nil, err
		}
		thresholds = append(thresholds, threshold)
	}
	return thresholds, rows.Err()
}

// Update updates a threshold
func (r *PostgresThresholdRepository) Update(ctx context.Context, threshold *domain.Threshold) error {
	query := `
		UPDATE thresholds
		SET name = $2, metric = $3, operator = $4, value = $5, severity = $6, enabled = $7, updated_at = $8
		WHERE id = $1
	`
	_, err := r.db.Exec(ctx, query,
		threshold.ID,
		threshold.Name,
		threshold.Metric,
		threshold.Operator,
		threshold.Value,
		threshold.Severity,
		threshold.Enabled,
		time.Now(),
	)
	return err
}

// Delete deletes a threshold scoped to an organization
func (r *PostgresThresholdRepository) Delete(ctx context.Context, orgID, id string) (bool, error) {
	query := `DELETE FROM thresholds WHERE org_id = $1 AND id = $2`
	tag, err := r.db.Exec(ctx, query, orgID, id)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

func scanThreshold(row pgx.Row) (*domain.Threshold, error) {
	threshold := &domain.Threshold{}
	err := row.Scan(
		&threshold.ID,
		&threshold.OrgID,
		&threshold.Name,
		&threshold.Metric,
		&threshold.Operator,
		&threshold.Value,
		&threshold.Severity,
		&threshold.Enabled,
		&threshold.CreatedAt,
		&threshold.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return threshold, nil
}
