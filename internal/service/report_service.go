package service

import (
	"context"
	"errors"

	"github.com/teeraphat-m/maritime-fleet-api/internal/domain"
	"github.com/teeraphat-m/maritime-fleet-api/internal/dto"
	"github.com/teeraphat-m/maritime-fleet-api/internal/repository"
)

var (
	ErrReportNotFound = errors.New("report not found")
	ErrNotReportOwner = errors.New("only the author or an admin can modify this report")
)

// ReportService defines the interface for operational report workflows
type ReportService interface {
	// Create files a new report
	Create(ctx context.Context, orgID, userID string, req *dto.CreateReportRequest) (*domain.Report, error)
	// GetByID retrieves a report
	GetByID(ctx context.Context, orgID, id string) (*domain.Report, error)
	// List lists reports with optional filters
	List(ctx context.Context, orgID string, filter repository.ReportFilter) ([]*domain.Report, error)
	// Update updates a report, restricted to the author or an admin
	Update(ctx context.Context, orgID, id, userID, role string, req *dto.UpdateReportRequest) (*domain.Report, error)
	// Delete deletes a report, restricted to the author or an admin
	Delete(ctx context.Context, orgID, id, userID, role string) error
	// Verify marks a submitted report as verified
	Verify(ctx context.Context, orgID, id, userID string) (*domain.Report, error)
}

// reportService implements ReportService
type reportService struct {
	reportRepo repository.ReportRepository
}

// NewReportService creates a new ReportService
func NewReportService(reportRepo repository.ReportRepository) ReportService {
	return &reportService{reportRepo: reportRepo}
}

// Create files a new report
func (s *reportService) Create(ctx context.Context, orgID, userID string, req *dto.CreateReportRequest) (*domain.Report, error) {
	if valid, errMsg := req.Validate(); !valid {
		return nil, errors.New(errMsg)
	}

	report, err := domain.NewReport(orgID, userID, req.Title, req.Type, req.Content)
	if err != nil {
		return nil, err
	}
	report.VesselID = req.VesselID

	if err := s.reportRepo.Create(ctx, report); err != nil {
		return nil, err
	}
	return report, nil
}

// GetByID retrieves a report
func (s *reportService) GetByID(ctx context.Context, orgID, id string) (*domain.Report, error) {
	report, err := s.reportRepo.GetByID(ctx, orgID, id)
	if err != nil {
		return nil, err
	}
	if report == nil {
		return nil, ErrReportNotFound
	}
	return report, nil
}

// List lists reports with optional filters
func (s *reportService) List(ctx context.Context, orgID string, filter repository.ReportFilter) ([]*domain.Report, error) {
	return s.reportRepo.ListByOrg(ctx, orgID, filter)
}

// Update updates a report, restricted to the author or an admin
func (s *reportService) Update(ctx context.Context, orgID, id, userID, role string, req *dto.UpdateReportRequest) (*domain.Report, error) {
	if valid, errMsg := req.Validate(); !valid {
		return nil, errors.New(errMsg)
	}

	report, err := s.reportRepo.GetByID(ctx, orgID, id)
	if err != nil {
		return nil, err
	}
	if report == nil {
		return nil, ErrReportNotFound
	}
	if !report.CanMutate(userID, role) {
		return nil, ErrNotReportOwner
	}

	if req.Title != nil {
		report.Title = *req.Title
	}
	if req.Type != nil {
		report.Type = *req.Type
	}
	if req.Content != nil {
		report.Content = *req.Content
	}

	if err := s.reportRepo.Update(ctx, report); err != nil {
		return nil, err
	}
	return report, nil
}

// Delete deletes a report, restricted to the author or an admin
func (s *reportService) Delete(ctx context.Context, orgID, id, userID, role string) error {
	report, err := s.reportRepo.GetByID(ctx, orgID, id)
	if err != nil {
		return err
	}
	if report == nil {
		return ErrReportNotFound
	}
	if !report.CanMutate(userID, role) {
		return ErrNotReportOwner
	}

	_, err = s.reportRepo.Delete(ctx, orgID, id)
	return err
}

// Verify marks a submitted report as verified
func (s *reportService) Verify(ctx context.Context, orgID, id, userID string) (*domain.Report, error) {
	report, err := s.reportRepo.GetByID(ctx, orgID, id)
	if err != nil {
		return nil, err
	}
	if report == nil {
		return nil, ErrReportNotFound
	}

	if err := report.Verify(userID); err != nil {
		return nil, err
	}

	if err := s.reportRepo.Update(ctx, report); err != nil {
		return nil, err
	}
	return report, nil
}
