package repository

import (
	"context"

	"github.com/teeraphat-m/maritime-fleet-api/internal/domain"
)

// ReportRepository defines the interface for operational report data access
type ReportRepository interface {
	// Create creates a new report
	Create(ctx context.Context, report *domain.Report) error

	// GetByID retrieves a report by ID scoped to an organization
	GetByID(ctx context.Context, orgID, id string) (*domain.Report, error)

	// ListByOrg retrieves reports of an organization, optionally filtered by vessel and type
	ListByOrg(ctx context.Context, orgID string, filter ReportFilter) ([]*domain.Report, error)

	// Update updates a report
	Update(ctx context.Context, report *domain.Report) error

	// Delete deletes a report scoped to an organization
	Delete(ctx context.Context, orgID, id string) (bool, error)
}

// ReportFilter narrows a report listing
type ReportFilter struct {
	VesselID string
	Type     string
	Status   string
}
