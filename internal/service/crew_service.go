package service

import (
	"context"
	"errors"

	"github.com/teeraphat-m/maritime-fleet-api/internal/domain"
	"github.com/teeraphat-m/maritime-fleet-api/internal/dto"
	"github.com/teeraphat-m/maritime-fleet-api/internal/repository"
)

var ErrCrewNotFound = errors.New("crew member not found")

// CrewService defines the interface for crew management operations
type CrewService interface {
	// Create adds a crew member to the fleet roster
	Create(ctx context.Context, orgID string, req *dto.CreateCrewRequest) (*domain.CrewMember, error)
	// GetByID retrieves a crew member
	GetByID(ctx context.Context, orgID, id string) (*domain.CrewMember, error)
	// List lists the fleet roster ordered by last name
	List(ctx context.Context, orgID string) ([]*domain.CrewMember, error)
	// ListByVessel lists crew assigned to a vessel ordered by last name
	ListByVessel(ctx context.Context, orgID, vesselID string) ([]*domain.CrewMember, error)
	// Update updates a crew member
	Update(ctx context.Context, orgID, id string, req *dto.UpdateCrewRequest) (*domain.CrewMember, error)
	// Delete removes a crew member from the roster
	Delete(ctx context.Context, orgID, id string) error
}

// crewService implements CrewService
type crewService struct {
	crewRepo   repository.CrewRepository
	vesselRepo repository.VesselRepository
}

// NewCrewService creates a new CrewService
func NewCrewService(crewRepo repository.CrewRepository, vesselRepo repository.VesselRepository) CrewService {
	return &crewService{
		crewRepo:   crewRepo,
		vesselRepo: vesselRepo,
	}
}

// Create adds a crew member to the fleet roster
func (s *crewService) Create(ctx context.Context, orgID string, req *dto.CreateCrewRequest) (*domain.CrewMember, error) {
	if valid, errMsg := req.Validate(); !valid {
		return nil, errors.New(errMsg)
	}

	if req.VesselID != nil {
		if err := s.requireVessel(ctx, orgID, *req.VesselID); err != nil {
			return nil, err
		}
	}

	member, err := domain.NewCrewMember(orgID, req.FirstName, req.LastName, req.Rank, req.Nationality)
	if err != nil {
		return nil, err
	}
	member.VesselID = req.VesselID
	if req.Status != "" {
		member.Status = req.Status
	}
	member.JoinDate = req.JoinDate
	member.ContractEnd = req.ContractEnd

	if err := s.crewRepo.Create(ctx, member); err != nil {
		return nil, err
	}
	return member, nil
}

// GetByID retrieves a crew member
func (s *crewService) GetByID(ctx context.Context, orgID, id string) (*domain.CrewMember, error) {
	member, err := s.crewRepo.GetByID(ctx, orgID, id)
	if err != nil {
		return nil, err
	}
	if member == nil {
		return nil, ErrCrewNotFound
	}
	return member, nil
}

// List lists the fleet roster ordered by last name
func (s *crewService) List(ctx context.Context, orgID string) ([]*domain.CrewMember, error) {
	return s.crewRepo.ListByOrg(ctx, orgID)
}

// ListByVessel lists crew assigned to a vessel ordered by last name
func (s *crewService) ListByVessel(ctx context.Context, orgID, vesselID string) ([]*domain.CrewMember, error) {
	if err := s.requireVessel(ctx, orgID, vesselID); err != nil {
		return nil, err
	}
	return s.crewRepo.ListByVessel(ctx, orgID, vesselID)
}

// Update updates a crew member
func (s *crewService) Update(ctx context.Context, orgID, id string, req *dto.UpdateCrewRequest) (*domain.CrewMember, error) {
	if valid, errMsg := req.Validate(); !valid {
		return nil, errors.New(errMsg)
	}

	member, err := s.crewRepo.GetByID(ctx, orgID, id)
	if err != nil {
		return nil, err
	}
	if member == nil {
		return nil, ErrCrewNotFound
	}

	if req.VesselID != nil {
		if *req.VesselID == "" {
			member.VesselID = nil
		} else {
			if err := s.requireVessel(ctx, orgID, *req.VesselID); err != nil {
				return nil, err
			}
			member.VesselID = req.VesselID
		}
	}
	if req.FirstName != nil {
		member.FirstName = *req.FirstName
	}
	if req.LastName != nil {
		member.LastName = *req.LastName
	}
	if req.Rank != nil {
		member.Rank = *req.Rank
	}
	if req.Nationality != nil {
		member.Nationality = *req.Nationality
	}
	if req.Status != nil {
		member.Status = *req.Status
	}
	if req.JoinDate != nil {
		member.JoinDate = req.JoinDate
	}
	if req.ContractEnd != nil {
		member.ContractEnd = req.ContractEnd
	}

	if err := s.crewRepo.Update(ctx, member); err != nil {
		return nil, err
	}
	return member, nil
}

// Delete removes a crew member from the roster
func (s *crewService) Delete(ctx context.Context, orgID, id string) error {
	deleted, err := s.crewRepo.Delete(ctx, orgID, id)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrCrewNotFound
	}
	return nil
}

func (s *crewService) requireVessel(ctx context.Context, orgID, vesselID string) error {
	vessel, err := s.vesselRepo.GetByID(ctx, orgID, vesselID)
	if err != nil {
		return err
	}
	if vessel == nil {
		return ErrVesselNotFound
	}
	return nil
}
