package service

import (
	"context"
	"errors"

	"github.com/teeraphat-m/maritime-fleet-api/internal/domain"
	"github.com/teeraphat-m/maritime-fleet-api/internal/dto"
	"github.com/teeraphat-m/maritime-fleet-api/internal/repository"
)

var ErrThresholdNotFound = errors.New("threshold not found")

// FleetService provides fleet-wide analytics and alert threshold management
type FleetService interface {
	// Analytics summarizes fleet state for dashboards
	Analytics(ctx context.Context, orgID string) (*dto.FleetAnalyticsResponse, error)
	// VesselSummary lists per-vessel crew and alert counts
	VesselSummary(ctx context.Context, orgID string) ([]dto.VesselSummaryResponse, error)
	// CreateThreshold defines a new alert threshold
	CreateThreshold(ctx context.Context, orgID string, req *dto.CreateThresholdRequest) (*domain.Threshold, error)
	// ListThresholds lists alert thresholds of the fleet
	ListThresholds(ctx context.Context, orgID string) ([]*domain.Threshold, error)
	// UpdateThreshold updates an alert threshold
	UpdateThreshold(ctx context.Context, orgID, id string, req *dto.UpdateThresholdRequest) (*domain.Threshold, error)
	// DeleteThreshold deletes an alert threshold
	DeleteThreshold(ctx context.Context, orgID, id string) error
}

// fleetService implements FleetService
type fleetService struct {
	vesselRepo    repository.VesselRepository
	crewRepo      repository.CrewRepository
	alertRepo     repository.AlertRepository
	inventoryRepo repository.InventoryRepository
	thresholdRepo repository.ThresholdRepository
}

// NewFleetService creates a new FleetService
func NewFleetService(
	vesselRepo repository.VesselRepository,
	crewRepo repository.CrewRepository,
	alertRepo repository.AlertRepository,
	inventoryRepo repository.InventoryRepository,
	thresholdRepo repository.ThresholdRepository,
) FleetService {
	return &fleetService{
		vesselRepo:    vesselRepo,
		crewRepo:      crewRepo,
		alertRepo:     alertRepo,
		inventoryRepo: inventoryRepo,
		thresholdRepo: thresholdRepo,
	}
}

// Analytics summarizes fleet state for dashboards
func (s *fleetService) Analytics(ctx context.Context, orgID string) (*dto.FleetAnalyticsResponse, error) {
	vessels, err := s.vesselRepo.ListByOrg(ctx, orgID)
	if err != nil {
		return nil, err
	}

	resp := &dto.FleetAnalyticsResponse{
		TotalVessels: len(vessels),
		StatusCounts: make(map[string]int),
		FuelByVessel: make(map[string]float64),
	}

	vesselNames := make(map[string]string, len(vessels))
	for _, vessel := range vessels {
		resp.StatusCounts[vessel.Status]++
		if vessel.Status == domain.VesselStatusActive {
			resp.ActiveVessels++
		}
		vesselNames[vessel.ID] = vessel.Name
	}

	activeAlerts, err := s.alertRepo.CountActive(ctx, orgID)
	if err != nil {
		return nil, err
	}
	resp.ActiveAlerts = activeAlerts

	items, err := s.inventoryRepo.ListByOrg(ctx, orgID)
	if err != nil {
		return nil, err
	}
	lowFuel := make(map[string]bool)
	for _, item := range items {
		switch item.ItemType {
		case domain.ItemTypeHFO:
			resp.TotalHFO += item.CurrentQuantity
		case domain.ItemTypeMGO:
			resp.TotalMGO += item.CurrentQuantity
		default:
			continue
		}
		if name, ok := vesselNames[item.VesselID]; ok {
			resp.FuelByVessel[name] += item.CurrentQuantity
			if item.IsBelowSafety() {
				lowFuel[name] = true
			}
		}
	}
	resp.LowFuelVessels = make([]string, 0, len(lowFuel))
	for name := range lowFuel {
		resp.LowFuelVessels = append(resp.LowFuelVessels, name)
	}

	crew, err := s.crewRepo.ListByOrg(ctx, orgID)
	if err != nil {
		return nil, err
	}
	for _, member := range crew {
		if member.Status == domain.CrewStatusOnboard {
			resp.CrewOnboard++
		}
	}

	return resp, nil
}

// VesselSummary lists per-vessel crew and alert counts
func (s *fleetService) VesselSummary(ctx context.Context, orgID string) ([]dto.VesselSummaryResponse, error) {
	vessels, err := s.vesselRepo.ListByOrg(ctx, orgID)
	if err != nil {
		return nil, err
	}

	out := make([]dto.VesselSummaryResponse, 0, len(vessels))
	for _, vessel := range vessels {
		row := dto.VesselSummaryResponse{
			VesselID: vessel.ID,
			Name:     vessel.Name,
			IMO:      vessel.IMO,
			Status:   vessel.Status,
		}

		crew, err := s.crewRepo.ListByVessel(ctx, orgID, vessel.ID)
		if err != nil {
			return nil, err
		}
		for _, member := range crew {
			if member.Status == domain.CrewStatusOnboard {
				row.CrewOnboard++
			}
		}

		alerts, err := s.alertRepo.ListByVessel(ctx, orgID, vessel.ID)
		if err != nil {
			return nil, err
		}
		for _, alert := range alerts {
			if alert.Status == domain.AlertStatusActive {
				row.ActiveAlerts++
			}
		}

		out = append(out, row)
	}
	return out, nil
}

// CreateThreshold defines a new alert threshold
func (s *fleetService) CreateThreshold(ctx context.Context, orgID string, req *dto.CreateThresholdRequest) (*domain.Threshold, error) {
	if valid, errMsg := req.Validate(); !valid {
		return nil, errors.New(errMsg)
	}

	threshold, err := domain.NewThreshold(orgID, req.Name, req.Metric, req.Operator, req.Value, req.Severity)
	if err != nil {
		return nil, err
	}

	if err := s.thresholdRepo.Create(ctx, threshold); err != nil {
		return nil, err
	}
	return threshold, nil
}

// ListThresholds lists alert thresholds of the fleet
func (s *fleetService) ListThresholds(ctx context.Context, orgID string) ([]*domain.Threshold, error) {
	return s.thresholdRepo.ListByOrg(ctx, orgID)
}

// UpdateThreshold updates an alert threshold
func (s *fleetService) UpdateThreshold(ctx context.Context, orgID, id string, req *dto.UpdateThresholdRequest) (*domain.Threshold, error) {
	if valid, errMsg := req.Validate(); !valid {
		return nil, errors.New(errMsg)
	}

	threshold, err := s.thresholdRepo.GetByID(ctx, orgID, id)
	if err != nil {
		return nil, err
	}
	if threshold == nil {
		return nil, ErrThresholdNotFound
	}

	if req.Name != nil {
		threshold.Name = *req.Name
	}
	if req.Value != nil {
		threshold.Value = *req.Value
	}
	if req.Severity != nil {
		threshold.Severity = *req.Severity
	}
	if req.Enabled != nil {
		threshold.Enabled = *req.Enabled
	}

	if err := s.thresholdRepo.Update(ctx, threshold); err != nil {
		return nil, err
	}
	return threshold, nil
}

// DeleteThreshold deletes an alert threshold
func (s *fleetService) DeleteThreshold(ctx context.Context, orgID, id string) error {
	deleted, err := s.thresholdRepo.Delete(ctx, orgID, id)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrThresholdNotFound
	}
	return nil
}
