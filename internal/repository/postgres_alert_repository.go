package repository

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/teeraphat-m/maritime-fleet-api/internal/domain"
)

// PostgresAlertRepository implements AlertRepository using PostgreSQL
type PostgresAlertRepository struct {
	db DB
}

// NewPostgresAlertRepository creates a new PostgresAlertRepository
func NewPostgresAlertRepository(db DB) *PostgresAlertRepository {
	return &PostgresAlertRepository{db: db}
}

const alertColumns = `id, org_id, vessel_id, title, message, category, priority, status, created_by, acknowledged_by, created_at, updated_at`

// Create creates a new alert
func (r *PostgresAlertRepository) Create(ctx context.Context, alert *domain.Alert) error {
	query := `
		INSERT INTO alerts (id, org_id, vessel_id, title, message, category, priority, status, created_by, acknowledged_by, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
	`
	_, err := r.db.Exec(ctx, query,
		alert.ID,
		alert.OrgID,
		alert.VesselID,
		alert.Title,
		alert.Message,
		alert.Category,
		alert.Priority,
		alert.Status,
		alert.CreatedBy,
		alert.AcknowledgedBy,
		alert.CreatedAt,
		alert.UpdatedAt,
	)
	return classifyError(err)
}

// GetByID retrieves an alert by ID scoped to an organization
func (r *PostgresAlertRepository) GetByID(ctx context.Context, orgID, id string) (*domain.Alert, error) {
	query := `SELECT ` + alertColumns + ` FROM alerts WHERE org_id = $1 AND id = $2`
	alert, err := scanAlert(r.db.QueryRow(ctx, query, orgID, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return alert, nil
}

// ListByOrg retrieves alerts of an organization, optionally filtered by status
func (r *PostgresAlertRepository) ListByOrg(ctx context.Context, orgID, status string) ([]*domain.Alert, error) {
	query := `SELECT ` + alertColumns + ` FROM alerts WHERE org_id = $1`
	args := []interface{}{orgID}
	if status != "" {
		query += ` AND status = $2`
		args = append(args, status)
	}
	query += ` ORDER BY created_at DESC`
	return r.list(ctx, query, args...)
}

// ListByVessel retrieves alerts for a vessel newest first
func (r *PostgresAlertRepository) ListByVessel(ctx context.Context, orgID, vesselID string) ([]*domain.Alert, error) {
	query := `SELECT ` + alertColumns + ` FROM alerts WHERE org_id = $1 AND vessel_id = $2 ORDER BY created_at DESC`
	return r.list(ctx, query, orgID, vesselID)
}

// Update updates an alert
func (r *PostgresAlertRepository) Update(ctx context.Context, alert *domain.Alert) error {
	query := `
		UPDATE alerts
		SET title = $2, message = $3, category = $4, priority = $5, status = $6,
		    acknowledged_by = $7, updated_at = $8
		WHERE id = $1
	`
	_, err := r.db.Exec(ctx, query,
		alert.ID,
		alert.Title,
		alert.Message,
		alert.Category,
		alert.Priority,
		alert.Status,
		alert.AcknowledgedBy,
		time.Now(),
	)
	return err
}

// Delete deletes an alert scoped to an organization
func (r *PostgresAlertRepository) Delete(ctx context.Context, orgID, id string) (bool, error) {
	query := `DELETE FROM alerts WHERE org_id = $1 AND id = $2`
	tag, err := r.db.Exec(ctx, query, orgID, id)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

// CountActive counts active alerts of an organization
func (r *PostgresAlertRepository) CountActive(ctx context.Context, orgID string) (int, error) {
	var count int
	query := `SELECT COUNT(*) FROM alerts WHERE org_id = $1 AND status = $2`
	if err := r.db.QueryRow(ctx, query, orgID, domain.AlertStatusActive).Scan(&count); err != nil {
		return 0, err
	}
	return count, nil
}

func (r *PostgresAlertRepository) list(ctx context.Context, query string, args ...interface{}) ([]*domain.Alert, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var alerts []*domain.Alert
	for rows.Next() {
		alert, err := scanAlert(rows)
		if err != nil {
			return nil, err
		}
		alerts = append(alerts, alert)
	}
	return alerts, rows.Err()
}

func scanAlert(row pgx.Row) (*domain.Alert, error) {
	alert := &domain.Alert{}
	err := row.Scan(
		&alert.ID,
		&alert.OrgID,
		&alert.VesselID,
		&alert.Title,
		&alert.Message,
		&alert.Category,
		&alert.Priority,
		&alert.Status,
		&alert.CreatedBy,
		&alert.AcknowledgedBy,
		&alert.CreatedAt,
		&alert.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if alert.AcknowledgedBy == nil {
		alert.AcknowledgedBy = []string{}
	}
	return alert, nil
}
