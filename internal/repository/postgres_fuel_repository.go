package repository

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/teeraphat-m/maritime-fleet-api/internal/domain"
)

// PostgresFuelReportRepository implements FuelReportRepository using PostgreSQL
type PostgresFuelReportRepository struct {
	db DB
}

// NewPostgresFuelReportRepository creates a new PostgresFuelReportRepository
func NewPostgresFuelReportRepository(db DB) *PostgresFuelReportRepository {
	return &PostgresFuelReportRepository{db: db}
}

// WithTx returns a copy of the repository bound to the given transaction
func (r *PostgresFuelReportRepository) WithTx(tx pgx.Tx) FuelReportRepository {
	return &PostgresFuelReportRepository{db: tx}
}

const fuelReportColumns = `id, org_id, vessel_id, reported_by, date, hfo_rob, mgo_rob, hfo_consumption, mgo_consumption, distance_run, avg_speed, remarks, created_at`

// Create creates a new fuel report
func (r *PostgresFuelReportRepository) Create(ctx context.Context, report *domain.FuelReport) error {
	query := `
		INSERT INTO fuel_reports (id, org_id, vessel_id, reported_by, date, hfo_rob, mgo_rob, hfo_consumption, mgo_consumption, distance_run, avg_speed, remarks, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
	`
	_, err := r.db.Exec(ctx, query,
		report.ID,
		report.OrgID,
		report.VesselID,
		report.ReportedBy,
		report.Date,
		report.HFORob,
		report.MGORob,
		report.HFOConsumption,
		report.MGOConsumption,
		report.DistanceRun,
		report.AvgSpeed,
		report.Remarks,
		report.CreatedAt,
	)
	return classifyError(err)
}

// GetByVesselAndDate retrieves a fuel report for a vessel on a given day
func (r *PostgresFuelReportRepository) GetByVesselAndDate(ctx context.Context, orgID, vesselID string, date time.Time) (*domain.FuelReport, error) {
	query := `SELECT ` + fuelReportColumns + ` FROM fuel_reports WHERE org_id = $1 AND vessel_id = $2 AND date = $3`
	report, err := scanFuelReport(r.db.QueryRow(ctx, query, orgID, vesselID, date))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return report, nil
}

// ListByVessel retrieves fuel reports of a vessel newest first
func (r *PostgresFuelReportRepository) ListByVessel(ctx context.Context, orgID, vesselID string, limit int) ([]*domain.FuelReport, error) {
	if limit <= 0 {
		limit = 30
	}
	query := `SELECT ` + fuelReportColumns + ` FROM fuel_reports WHERE org_id = $1 AND vessel_id = $2 ORDER BY date DESC LIMIT $3`
	return r.list(ctx, query, orgID, vesselID, limit)
}

// ListByVesselSince retrieves fuel reports of a vessel on or after the given date
func (r *PostgresFuelReportRepository) ListByVesselSince(ctx context.Context, orgID, vesselID string, since time.Time) ([]*domain.FuelReport, error) {
	query := `SELECT ` + fuelReportColumns + ` FROM fuel_reports WHERE org_id = $1 AND vessel_id = $2 AND date >= $3 ORDER BY date ASC`
	return r.list(ctx, query, orgID, vesselID, since)
}

func (r *PostgresFuelReportRepository) list(ctx context.Context, query string, args ...interface{}) ([]*domain.FuelReport, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var reports []*domain.FuelReport
	for rows.Next() {
		report, err := scanFuelReport(rows)
		if err != nil {
			return nil, err
		}
		reports = append(reports, report)
	}
	return reports, rows.Err()
}

func scanFuelReport(row pgx.Row) (*domain.FuelReport, error) {
	report := &domain.FuelReport{}
	err := row.Scan(
		&report.ID,
		&report.OrgID,
		&report.VesselID,
		&report.ReportedBy,
		&report.Date,
		&report.HFORob,
		&report.MGORob,
		&report.HFOConsumption,
		&report.MGOConsumption,
		&report.DistanceRun,
		&report.AvgSpeed,
		&report.Remarks,
		&report.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return report, nil
}

// PostgresBunkerRepository implements BunkerRepository using PostgreSQL
type PostgresBunkerRepository struct {
	db DB
}

// NewPostgresBunkerRepository creates a new PostgresBunkerRepository
func NewPostgresBunkerRepository(db DB) *PostgresBunkerRepository {
	return &PostgresBunkerRepository{db: db}
}

// Create creates a new bunker record
func (r *PostgresBunkerRepository) Create(ctx context.Context, record *domain.BunkerRecord) error {
	query := `
		INSERT INTO bunker_records (id, org_id, vessel_id, fuel_type, quantity, port, supplier, date, recorded_by, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`
	_, err := r.db.Exec(ctx, query,
		record.ID,
		record.OrgID,
		record.VesselID,
		record.FuelType,
		record.Quantity,
		record.Port,
		record.Supplier,
		record.Date,
		record.RecordedBy,
		record.CreatedAt,
	)
	return classifyError(err)
}

// ListByVessel retrieves bunker records of a vessel newest first
func (r *PostgresBunkerRepository) ListByVessel(ctx context.Context, orgID, vesselID string, limit int) ([]*domain.BunkerRecord, error) {
	if limit <= 0 {
		limit = 50
	}
	query := `
		SELECT id, org_id, vessel_id, fuel_type, quantity, port, supplier, date, recorded_by, created_at
		FROM bunker_records
		WHERE org_id = $1 AND vessel_id = $2
		ORDER BY date DESC
		LIMIT $3
	`
	rows, err := r.db.Query(ctx, query, orgID, vesselID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []*domain.BunkerRecord
	for rows.Next() {
		record := &domain.BunkerRecord{}
		err := rows.Scan(
			&record.ID,
			&record.OrgID,
			&record.VesselID,
			&record.FuelType,
			&record.Quantity,
			&record.Port,
			&record.Supplier,
			&record.Date,
			&record.RecordedBy,
			&record.CreatedAt,
		)
		if err != nil {
			return nil, err
		}
		records = append(records, record)
	}
	return records, rows.Err()
}
