package repository

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/teeraphat-m/maritime-fleet-api/internal/domain"
)

// FuelReportRepository defines the interface for daily fuel report data access
type FuelReportRepository interface {
	// Create creates a new fuel report
	Create(ctx context.Context, report *domain.FuelReport) error

	// GetByVesselAndDate retrieves a fuel report for a vessel on a given day
	GetByVesselAndDate(ctx context.Context, orgID, vesselID string, date time.Time) (*domain.FuelReport, error)

	// ListByVessel retrieves fuel reports of a vessel newest first
	ListByVessel(ctx context.Context, orgID, vesselID string, limit int) ([]*domain.FuelReport, error)

	// ListByVesselSince retrieves fuel reports of a vessel on or after the given date
	ListByVesselSince(ctx context.Context, orgID, vesselID string, since time.Time) ([]*domain.FuelReport, error)

	// WithTx returns a copy of the repository bound to the given transaction
	WithTx(tx pgx.Tx) FuelReportRepository
}

// BunkerRepository defines the interface for bunkering record data access
type BunkerRepository interface {
	// Create creates a new bunker record
	Create(ctx context.Context, record *domain.BunkerRecord) error

	// ListByVessel retrieves bunker records of a vessel newest first
	ListByVessel(ctx context.Context, orgID, vesselID string, limit int) ([]*domain.BunkerRecord, error)
}
