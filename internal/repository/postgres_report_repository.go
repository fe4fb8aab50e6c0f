package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/teeraphat-m/maritime-fleet-api/internal/domain"
)

// PostgresReportRepository implements ReportRepository using PostgreSQL
type PostgresReportRepository struct {
	db DB
}

// NewPostgresReportRepository creates a new PostgresReportRepository
func NewPostgresReportRepository(db DB) *PostgresReportRepository {
	return &PostgresReportRepository{db: db}
}

const reportColumns = `id, org_id, vessel_id, title, type, content, status, created_by, verified_by, created_at, updated_at`

// Create creates a new report
func (r *PostgresReportRepository) Create(ctx context.Context, report *domain.Report) error {
	query := `
		INSERT INTO reports (id, org_id, vessel_id, title, type, content, status, created_by, verified_by, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	`
	_, err := r.db.Exec(ctx, query,
		report.ID,
		report.OrgID,
		report.VesselID,
		report.Title,
		report.Type,
		report.Content,
		report.Status,
		report.CreatedBy,
		report.VerifiedBy,
		report.CreatedAt,
		report.UpdatedAt,
	)
	return classifyError(err)
}

// GetByID retrieves a report by ID scoped to an organization
func (r *PostgresReportRepository) GetByID(ctx context.Context, orgID, id string) (*domain.Report, error) {
	query := `SELECT ` + reportColumns + ` FROM reports WHERE org_id = $1 AND id = $2`
	report, err := scanReport(r.db.QueryRow(ctx, query, orgID, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return report, nil
}

// ListByOrg retrieves reports of an organization, optionally filtered by vessel and type
func (r *PostgresReportRepository) ListByOrg(ctx context.Context, orgID string, filter ReportFilter) ([]*domain.Report, error) {
	query := `SELECT ` + reportColumns + ` FROM reports WHERE org_id = $1`
	args := []interface{}{orgID}
	argIndex := 2

	if filter.VesselID != "" {
		query += fmt.Sprintf(" AND vessel_id = $%d", argIndex)
		args = append(args, filter.VesselID)
		argIndex++
	}
	if filter.Type != "" {
		query += fmt.Sprintf(" AND type = $%d", argIndex)
		args = append(args, filter.Type)
		argIndex++
	}
	if filter.Status != "" {
		query += fmt.Sprintf(" AND status = $%d", argIndex)
		args = append(args, filter.Status)
		argIndex++
	}
	query += " ORDER BY created_at DESC"

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var reports []*domain.Report
	for rows.Next() {
		report, err := scanReport(rows)
		if err != nil {
			return nil, err
		}
		reports = append(reports, report)
	}
	return reports, rows.Err()
}

// Update updates a report
func (r *PostgresReportRepository) Update(ctx context.Context, report *domain.Report) error {
	query := `
		UPDATE reports
		SET title = $2, type = $3, content = $4, status = $5, verified_by = $6, updated_at = $7
		WHERE id = $1
	`
	_, err := r.db.Exec(ctx, query,
		report.ID,
		report.Title,
		report.Type,
		report.Content,
		report.Status,
		report.VerifiedBy,
		time.Now(),
	)
	return err
}

// Delete deletes a report scoped to an organization
func (r *PostgresReportRepository) Delete(ctx context.Context, orgID, id string) (bool, error) {
	query := `DELETE FROM reports WHERE org_id = $1 AND id = $2`
	tag, err := r.db.Exec(ctx, query, orgID, id)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

func scanReport(row pgx.Row) (*domain.Report, error) {
	report := &domain.Report{}
	err := row.Scan(
		&report.ID,
		&report.OrgID,
		&report.VesselID,
		&report.Title,
		&report.Type,
		&report.Content,
		&report.Status,
		&report.CreatedBy,
		&report.VerifiedBy,
		&report.CreatedAt,
		&report.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return report, nil
}
