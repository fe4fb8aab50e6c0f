package repository

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/teeraphat-m/maritime-fleet-api/internal/domain"
)

// PostgresMaintenanceRepository implements MaintenanceRepository using PostgreSQL
type PostgresMaintenanceRepository struct {
	db DB
}

// NewPostgresMaintenanceRepository creates a new PostgresMaintenanceRepository
func NewPostgresMaintenanceRepository(db DB) *PostgresMaintenanceRepository {
	return &PostgresMaintenanceRepository{db: db}
}

const maintenanceColumns = `id, org_id, vessel_id, title, description, category, status, priority, due_date, completed_at, assigned_to, created_by, created_at, updated_at`

// Create creates a new maintenance log
func (r *PostgresMaintenanceRepository) Create(ctx context.Context, log *domain.MaintenanceLog) error {
	query := `
		INSERT INTO maintenance_logs (id, org_id, vessel_id, title, description, category, status, priority, due_date, completed_at, assigned_to, created_by, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
	`
	_, err := r.db.Exec(ctx, query,
		log.ID,
		log.OrgID,
		log.VesselID,
		log.Title,
		log.Description,
		log.Category,
		log.Status,
		log.Priority,
		log.DueDate,
		log.CompletedAt,
		log.AssignedTo,
		log.CreatedBy,
		log.CreatedAt,
		log.UpdatedAt,
	)
	return classifyError(err)
}

// GetByID retrieves a maintenance log by ID scoped to an organization
func (r *PostgresMaintenanceRepository) GetByID(ctx context.Context, orgID, id string) (*domain.MaintenanceLog, error) {
	query := `SELECT ` + maintenanceColumns + ` FROM maintenance_logs WHERE org_id = $1 AND id = $2`
	log, err := scanMaintenanceLog(r.db.QueryRow(ctx, query, orgID, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return log, nil
}

// ListByVessel retrieves maintenance logs for a vessel newest first
func (r *PostgresMaintenanceRepository) ListByVessel(ctx context.Context, orgID, vesselID string) ([]*domain.MaintenanceLog, error) {
	query := `SELECT ` + maintenanceColumns + ` FROM maintenance_logs WHERE org_id = $1 AND vessel_id = $2 ORDER BY created_at DESC`
	rows, err := r.db.Query(ctx, query, orgID, vesselID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var logs []*domain.MaintenanceLog
	for rows.Next() {
		log, err := scanMaintenanceLog(rows)
		if err != nil {
			return nil, err
		}
		logs = append(logs, log)
	}
	return logs, rows.Err()
}

// Update updates a maintenance log
func (r *PostgresMaintenanceRepository) Update(ctx context.Context, log *domain.MaintenanceLog) error {
	query := `
		UPDATE maintenance_logs
		SET title = $2, description = $3, category = $4, status = $5, priority = $6,
		    due_date = $7, completed_at = $8, assigned_to = $9, updated_at = $10
		WHERE id = $1
	`
	_, err := r.db.Exec(ctx, query,
		log.ID,
		log.Title,
		log.Description,
		log.Category,
		log.Status,
		log.Priority,
		log.DueDate,
		log.CompletedAt,
		log.AssignedTo,
		time.Now(),
	)
	return err
}

// Delete deletes a maintenance log scoped to an organization
func (r *PostgresMaintenanceRepository) Delete(ctx context.Context, orgID, id string) (bool, error) {
	query := `DELETE FROM maintenance_logs WHERE org_id = $1 AND id = $2`
	tag, err := r.db.Exec(ctx, query, orgID, id)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

func scanMaintenanceLog(row pgx.Row) (*domain.MaintenanceLog, error) {
	log := &domain.MaintenanceLog{}
	err := row.Scan(
		&log.ID,
		&log.OrgID,
		&log.VesselID,
		&log.Title,
		&log.Description,
		&log.Category,
		&log.Status,
		&log.Priority,
		&log.DueDate,
		&log.CompletedAt,
		&log.AssignedTo,
		&log.CreatedBy,
		&log.CreatedAt,
		&log.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return log, nil
}
