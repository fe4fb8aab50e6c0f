package service

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	"github.com/teeraphat-m/maritime-fleet-api/internal/domain"
	"github.com/teeraphat-m/maritime-fleet-api/internal/dto"
	"github.com/teeraphat-m/maritime-fleet-api/internal/repository"
	"github.com/teeraphat-m/maritime-fleet-api/pkg/logger"
)

var (
	ErrVesselNotFound   = errors.New("vessel not found")
	ErrIMOTaken         = errors.New("a vessel with this IMO number already exists")
	ErrInvalidInput     = errors.New("invalid input")
	ErrCacheUnavailable = errors.New("position cache unavailable")
)

// VesselService defines the interface for vessel management operations
type VesselService interface {
	// Create registers a new vessel in the fleet
	Create(ctx context.Context, orgID string, req *dto.CreateVesselRequest) (*domain.Vessel, error)
	// GetByID retrieves a vessel
	GetByID(ctx context.Context, orgID, id string) (*domain.Vessel, error)
	// List retrieves all vessels in the fleet
	List(ctx context.Context, orgID string) ([]*domain.Vessel, error)
	// Update updates vessel details
	Update(ctx context.Context, orgID, id string, req *dto.UpdateVesselRequest) (*domain.Vessel, error)
	// Delete removes a vessel from the fleet
	Delete(ctx context.Context, orgID, id string) error
	// UpdatePosition records a new position for a vessel
	UpdatePosition(ctx context.Context, orgID, id string, req *dto.UpdatePositionRequest) (*domain.Vessel, error)
	// Positions returns the live map view for the fleet
	Positions(ctx context.Context, orgID string) ([]dto.VesselPositionResponse, error)
	// Live returns cached positions within radiusKm of a point
	Live(ctx context.Context, orgID string, lat, lon, radiusKm float64) ([]dto.VesselPositionResponse, error)
}

// vesselService implements VesselService
type vesselService struct {
	vesselRepo repository.VesselRepository
	positions  PositionCache
	log        *logger.Logger
}

// NewVesselService creates a new VesselService
func NewVesselService(vesselRepo repository.VesselRepository, positions PositionCache, log *logger.Logger) VesselService {
	return &vesselService{
		vesselRepo: vesselRepo,
		positions:  positions,
		log:        log,
	}
}

// Create registers a new vessel in the fleet
func (s *vesselService) Create(ctx context.Context, orgID string, req *dto.CreateVesselRequest) (*domain.Vessel, error) {
	if valid, errMsg := req.Validate(); !valid {
		return nil, errors.New(errMsg)
	}

	existing, err := s.vesselRepo.GetByIMO(ctx, orgID, req.IMO)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrIMOTaken
	}

	vessel, err := domain.NewVessel(orgID, req.Name, req.IMO, req.MMSI, req.Type, req.Flag)
	if err != nil {
		return nil, err
	}

	if err := s.vesselRepo.Create(ctx, vessel); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, ErrIMOTaken
		}
		return nil, err
	}
	return vessel, nil
}

// GetByID retrieves a vessel
func (s *vesselService) GetByID(ctx context.Context, orgID, id string) (*domain.Vessel, error) {
	vessel, err := s.vesselRepo.GetByID(ctx, orgID, id)
	if err != nil {
		return nil, err
	}
	if vessel == nil {
		return nil, ErrVesselNotFound
	}
	return vessel, nil
}

// List retrieves all vessels in the fleet
func (s *vesselService) List(ctx context.Context, orgID string) ([]*domain.Vessel, error) {
	return s.vesselRepo.ListByOrg(ctx, orgID)
}

// Update updates vessel details
func (s *vesselService) Update(ctx context.Context, orgID, id string, req *dto.UpdateVesselRequest) (*domain.Vessel, error) {
	if valid, errMsg := req.Validate(); !valid {
		return nil, errors.New(errMsg)
	}

	vessel, err := s.vesselRepo.GetByID(ctx, orgID, id)
	if err != nil {
		return nil, err
	}
	if vessel == nil {
		return nil, ErrVesselNotFound
	}

	if req.Name != nil {
		vessel.Name = *req.Name
	}
	if req.MMSI != nil {
		vessel.MMSI = *req.MMSI
	}
	if req.Type != nil {
		vessel.Type = *req.Type
	}
	if req.Flag != nil {
		vessel.Flag = *req.Flag
	}
	if req.Status != nil {
		vessel.Status = *req.Status
	}

	if err := s.vesselRepo.Update(ctx, vessel); err != nil {
		return nil, err
	}
	return vessel, nil
}

// Delete removes a vessel from the fleet
func (s *vesselService) Delete(ctx context.Context, orgID, id string) error {
	deleted, err := s.vesselRepo.Delete(ctx, orgID, id)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrVesselNotFound
	}

	if err := s.positions.Remove(ctx, id); err != nil {
		s.log.WarnContext(ctx, "Failed to evict vessel position from cache", zap.String("vessel_id", id), zap.Error(err))
	}
	return nil
}

// UpdatePosition records a new position for a vessel. The database holds the
// last known position, the cache serves the live map.
func (s *vesselService) UpdatePosition(ctx context.Context, orgID, id string, req *dto.UpdatePositionRequest) (*domain.Vessel, error) {
	vessel, err := s.vesselRepo.GetByID(ctx, orgID, id)
	if err != nil {
		return nil, err
	}
	if vessel == nil {
		return nil, ErrVesselNotFound
	}

	pos := &domain.Position{
		Lat:       req.Lat,
		Lon:       req.Lon,
		Speed:     req.Speed,
		Heading:   req.Heading,
		Timestamp: time.Now(),
	}
	if !pos.Valid() {
		return nil, ErrInvalidInput
	}

	if err := s.vesselRepo.UpdatePosition(ctx, id, pos); err != nil {
		return nil, err
	}

	if err := s.positions.Set(ctx, id, pos); err != nil {
		s.log.WarnContext(ctx, "Failed to cache vessel position", zap.String("vessel_id", id), zap.Error(err))
	}

	vessel.LastPosition = pos
	return vessel, nil
}

// Positions returns the live map view for the fleet. Cached positions win
// over stored ones; vessels with neither are reported as unknown.
func (s *vesselService) Positions(ctx context.Context, orgID string) ([]dto.VesselPositionResponse, error) {
	vessels, err := s.vesselRepo.ListByOrg(ctx, orgID)
	if err != nil {
		return nil, err
	}

	out := make([]dto.VesselPositionResponse, 0, len(vessels))
	for _, vessel := range vessels {
		entry := dto.VesselPositionResponse{
			VesselID: vessel.ID,
			Name:     vessel.Name,
			Status:   vessel.Status,
			Source:   PositionSourceUnknown,
		}

		cached, err := s.positions.Get(ctx, vessel.ID)
		if err != nil {
			s.log.WarnContext(ctx, "Position cache read failed", zap.String("vessel_id", vessel.ID), zap.Error(err))
		}
		switch {
		case cached != nil:
			entry.Position = cached
			entry.Source = PositionSourceLive
		case vessel.LastPosition != nil:
			entry.Position = vessel.LastPosition
			entry.Source = PositionSourceStored
		}

		out = append(out, entry)
	}
	return out, nil
}

// Live returns cached positions within radiusKm of a point. Unlike Positions
// it is served entirely from the cache, so an unavailable cache degrades the
// whole query rather than individual vessels.
func (s *vesselService) Live(ctx context.Context, orgID string, lat, lon, radiusKm float64) ([]dto.VesselPositionResponse, error) {
	if !s.positions.Available() {
		return nil, ErrCacheUnavailable
	}

	probe := &domain.Position{Lat: lat, Lon: lon}
	if !probe.Valid() || radiusKm <= 0 {
		return nil, ErrInvalidInput
	}

	ids, err := s.positions.Nearby(ctx, lat, lon, radiusKm)
	if err != nil {
		return nil, ErrCacheUnavailable
	}

	out := make([]dto.VesselPositionResponse, 0, len(ids))
	for _, id := range ids {
		// The geo index is fleet-wide; only expose vessels in the caller's org.
		vessel, err := s.vesselRepo.GetByID(ctx, orgID, id)
		if err != nil {
			return nil, err
		}
		if vessel == nil {
			continue
		}

		pos, err := s.positions.Get(ctx, id)
		if err != nil || pos == nil {
			continue
		}

		out = append(out, dto.VesselPositionResponse{
			VesselID: vessel.ID,
			Name:     vessel.Name,
			Status:   vessel.Status,
			Position: pos,
			Source:   PositionSourceLive,
		})
	}
	return out, nil
}
