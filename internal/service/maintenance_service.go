package service

import (
	"context"
	"errors"

	"github.com/teeraphat-m/maritime-fleet-api/internal/domain"
	"github.com/teeraphat-m/maritime-fleet-api/internal/dto"
	"github.com/teeraphat-m/maritime-fleet-api/internal/repository"
)

var ErrMaintenanceNotFound = errors.New("maintenance log not found")

// MaintenanceService defines the interface for maintenance log operations
type MaintenanceService interface {
	// Create logs a maintenance task for a vessel
	Create(ctx context.Context, orgID, vesselID, userID string, req *dto.CreateMaintenanceRequest) (*domain.MaintenanceLog, error)
	// ListByVessel lists maintenance logs of a vessel
	ListByVessel(ctx context.Context, orgID, vesselID string) ([]*domain.MaintenanceLog, error)
	// Update updates a maintenance log
	Update(ctx context.Context, orgID, id string, req *dto.UpdateMaintenanceRequest) (*domain.MaintenanceLog, error)
	// Complete marks a maintenance task as completed
	Complete(ctx context.Context, orgID, id string) (*domain.MaintenanceLog, error)
	// Delete deletes a maintenance log
	Delete(ctx context.Context, orgID, id string) error
}

// maintenanceService implements MaintenanceService
type maintenanceService struct {
	maintRepo  repository.MaintenanceRepository
	vesselRepo repository.VesselRepository
}

// NewMaintenanceService creates a new MaintenanceService
func NewMaintenanceService(maintRepo repository.MaintenanceRepository, vesselRepo repository.VesselRepository) MaintenanceService {
	return &maintenanceService{
		maintRepo:  maintRepo,
		vesselRepo: vesselRepo,
	}
}

// Create logs a maintenance task for a vessel
func (s *maintenanceService) Create(ctx context.Context, orgID, vesselID, userID string, req *dto.CreateMaintenanceRequest) (*domain.MaintenanceLog, error) {
	if valid, errMsg := req.Validate(); !valid {
		return nil, errors.New(errMsg)
	}

	vessel, err := s.vesselRepo.GetByID(ctx, orgID, vesselID)
	if err != nil {
		return nil, err
	}
	if vessel == nil {
		return nil, ErrVesselNotFound
	}

	log, err := domain.NewMaintenanceLog(orgID, vesselID, userID, req.Title)
	if err != nil {
		return nil, err
	}
	log.Description = req.Description
	log.Category = req.Category
	log.Priority = req.Priority
	log.DueDate = req.DueDate
	log.AssignedTo = req.AssignedTo

	if err := s.maintRepo.Create(ctx, log); err != nil {
		return nil, err
	}
	return log, nil
}

// ListByVessel lists maintenance logs of a vessel
func (s *maintenanceService) ListByVessel(ctx context.Context, orgID, vesselID string) ([]*domain.MaintenanceLog, error) {
	return s.maintRepo.ListByVessel(ctx, orgID, vesselID)
}

// Update updates a maintenance log
func (s *maintenanceService) Update(ctx context.Context, orgID, id string, req *dto.UpdateMaintenanceRequest) (*domain.MaintenanceLog, error) {
	if valid, errMsg := req.Validate(); !valid {
		return nil, errors.New(errMsg)
	}

	log, err := s.maintRepo.GetByID(ctx, orgID, id)
	if err != nil {
		return nil, err
	}
	if log == nil {
		return nil, ErrMaintenanceNotFound
	}

	if req.Title != nil {
		log.Title = *req.Title
	}
	if req.Description != nil {
		log.Description = *req.Description
	}
	if req.Category != nil {
		log.Category = *req.Category
	}
	if req.Status != nil {
		log.Status = *req.Status
	}
	if req.Priority != nil {
		log.Priority = *req.Priority
	}
	if req.DueDate != nil {
		log.DueDate = req.DueDate
	}
	if req.AssignedTo != nil {
		log.AssignedTo = *req.AssignedTo
	}

	if err := s.maintRepo.Update(ctx, log); err != nil {
		return nil, err
	}
	return log, nil
}

// Complete marks a maintenance task as completed
func (s *maintenanceService) Complete(ctx context.Context, orgID, id string) (*domain.MaintenanceLog, error) {
	log, err := s.maintRepo.GetByID(ctx, orgID, id)
	if err != nil {
		return nil, err
	}
	if log == nil {
		return nil, ErrMaintenanceNotFound
	}

	if err := log.Complete(); err != nil {
		return nil, err
	}

	if err := s.maintRepo.Update(ctx, log); err != nil {
		return nil, err
	}
	return log, nil
}

// Delete deletes a maintenance log
func (s *maintenanceService) Delete(ctx context.Context, orgID, id string) error {
	deleted, err := s.maintRepo.Delete(ctx, orgID, id)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrMaintenanceNotFound
	}
	return nil
}
