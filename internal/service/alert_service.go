package service

import (
	"context"
	"errors"

	"github.com/teeraphat-m/maritime-fleet-api/internal/domain"
	"github.com/teeraphat-m/maritime-fleet-api/internal/dto"
	"github.com/teeraphat-m/maritime-fleet-api/internal/repository"
)

var ErrAlertNotFound = errors.New("alert not found")

// AlertService defines the interface for alert operations
type AlertService interface {
	// Create raises a new alert from a user request
	Create(ctx context.Context, orgID, userID string, req *dto.CreateAlertRequest) (*domain.Alert, error)
	// CreateSystem raises a machine-generated alert attributed to the acting user
	CreateSystem(ctx context.Context, orgID string, vesselID *string, userID, title, message, category, priority string) (*domain.Alert, error)
	// List lists alerts of the fleet, optionally filtered by status
	List(ctx context.Context, orgID, status string) ([]*domain.Alert, error)
	// GetByID retrieves an alert
	GetByID(ctx context.Context, orgID, id string) (*domain.Alert, error)
	// Update updates an alert
	Update(ctx context.Context, orgID, id string, req *dto.UpdateAlertRequest) (*domain.Alert, error)
	// Acknowledge records a user acknowledgement on an alert
	Acknowledge(ctx context.Context, orgID, id, userID string) (*domain.Alert, error)
	// Delete deletes an alert
	Delete(ctx context.Context, orgID, id string) error
}

// alertService implements AlertService
type alertService struct {
	alertRepo repository.AlertRepository
}

// NewAlertService creates a new AlertService
func NewAlertService(alertRepo repository.AlertRepository) AlertService {
	return &alertService{alertRepo: alertRepo}
}

// Create raises a new alert from a user request
func (s *alertService) Create(ctx context.Context, orgID, userID string, req *dto.CreateAlertRequest) (*domain.Alert, error) {
	if valid, errMsg := req.Validate(); !valid {
		return nil, errors.New(errMsg)
	}

	alert, err := domain.NewAlert(orgID, userID, req.Title, req.Message, req.Category, req.Priority)
	if err != nil {
		return nil, err
	}
	alert.VesselID = req.VesselID

	if err := s.alertRepo.Create(ctx, alert); err != nil {
		return nil, err
	}
	return alert, nil
}

// CreateSystem raises a machine-generated alert attributed to the acting
// user. The creator must be a real user id; alerts carry a foreign key to
// the users table.
func (s *alertService) CreateSystem(ctx context.Context, orgID string, vesselID *string, userID, title, message, category, priority string) (*domain.Alert, error) {
	alert, err := domain.NewAlert(orgID, userID, title, message, category, priority)
	if err != nil {
		return nil, err
	}
	alert.VesselID = vesselID

	if err := s.alertRepo.Create(ctx, alert); err != nil {
		return nil, err
	}
	return alert, nil
}

// List lists alerts of the fleet, optionally filtered by status
func (s *alertService) List(ctx context.Context, orgID, status string) ([]*domain.Alert, error) {
	return s.alertRepo.ListByOrg(ctx, orgID, status)
}

// GetByID retrieves an alert
func (s *alertService) GetByID(ctx context.Context, orgID, id string) (*domain.Alert, error) {
	alert, err := s.alertRepo.GetByID(ctx, orgID, id)
	if err != nil {
		return nil, err
	}
	if alert == nil {
		return nil, ErrAlertNotFound
	}
	return alert, nil
}

// Update updates an alert
func (s *alertService) Update(ctx context.Context, orgID, id string, req *dto.UpdateAlertRequest) (*domain.Alert, error) {
	if valid, errMsg := req.Validate(); !valid {
		return nil, errors.New(errMsg)
	}

	alert, err := s.alertRepo.GetByID(ctx, orgID, id)
	if err != nil {
		return nil, err
	}
	if alert == nil {
		return nil, ErrAlertNotFound
	}

	if req.Title != nil {
		alert.Title = *req.Title
	}
	if req.Message != nil {
		alert.Message = *req.Message
	}
	if req.Priority != nil {
		alert.Priority = *req.Priority
	}
	if req.Status != nil {
		alert.Status = *req.Status
	}

	if err := s.alertRepo.Update(ctx, alert); err != nil {
		return nil, err
	}
	return alert, nil
}

// Acknowledge records a user acknowledgement on an alert. Acknowledging
// twice is a no-op, not an error.
func (s *alertService) Acknowledge(ctx context.Context, orgID, id, userID string) (*domain.Alert, error) {
	alert, err := s.alertRepo.GetByID(ctx, orgID, id)
	if err != nil {
		return nil, err
	}
	if alert == nil {
		return nil, ErrAlertNotFound
	}

	if alert.Acknowledge(userID) {
		if err := s.alertRepo.Update(ctx, alert); err != nil {
			return nil, err
		}
	}
	return alert, nil
}

// Delete deletes an alert
func (s *alertService) Delete(ctx context.Context, orgID, id string) error {
	deleted, err := s.alertRepo.Delete(ctx, orgID, id)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrAlertNotFound
	}
	return nil
}
