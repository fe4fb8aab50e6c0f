package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/teeraphat-m/maritime-fleet-api/internal/domain"
	"github.com/teeraphat-m/maritime-fleet-api/internal/dto"
	"github.com/teeraphat-m/maritime-fleet-api/internal/repository"
	"github.com/teeraphat-m/maritime-fleet-api/pkg/logger"
)

var (
	ErrItemNotFound    = errors.New("inventory item not found")
	ErrDuplicateReport = errors.New("a fuel report for this date already exists")
)

// TxRunner runs a function inside a database transaction. Satisfied by
// database.PostgresDB.
type TxRunner interface {
	WithTx(ctx context.Context, fn func(tx pgx.Tx) error) error
}

// InventoryService manages fuel inventory, daily fuel reports, and
// bunkering for vessels.
type InventoryService interface {
	// GetVesselInventory returns the inventory of a vessel, seeding default
	// fuel tanks on first read
	GetVesselInventory(ctx context.Context, orgID, vesselID string) (*dto.VesselInventoryResponse, error)
	// GetOrgInventory returns the inventory of the tenant's first vessel,
	// provisioning a placeholder vessel for a brand-new tenant
	GetOrgInventory(ctx context.Context, orgID string) (*dto.VesselInventoryResponse, error)
	// UpdateItem adjusts quantity, capacity, or safety level of an item
	UpdateItem(ctx context.Context, orgID, itemID, userID string, req *dto.UpdateInventoryRequest) (*domain.InventoryItem, error)
	// SubmitFuelReport stores a daily fuel report and synchronizes ROB levels
	SubmitFuelReport(ctx context.Context, orgID, vesselID, userID string, req *dto.SubmitFuelReportRequest) (*domain.FuelReport, error)
	// ListFuelReports lists recent fuel reports of a vessel
	ListFuelReports(ctx context.Context, orgID, vesselID string, limit int) ([]*domain.FuelReport, error)
	// RecordBunkering records a bunkering operation and tops up the tank
	RecordBunkering(ctx context.Context, orgID, vesselID, userID string, req *dto.RecordBunkerRequest) (*domain.BunkerRecord, error)
	// ListBunkerRecords lists recent bunkering operations of a vessel
	ListBunkerRecords(ctx context.Context, orgID, vesselID string, limit int) ([]*domain.BunkerRecord, error)
	// FuelAnalytics aggregates fuel reports across the fleet over a trailing
	// number of days
	FuelAnalytics(ctx context.Context, orgID string, days int) (*dto.FuelAnalyticsResponse, error)
}

// inventoryService implements InventoryService
type inventoryService struct {
	db            TxRunner
	inventoryRepo repository.InventoryRepository
	fuelRepo      repository.FuelReportRepository
	bunkerRepo    repository.BunkerRepository
	vesselRepo    repository.VesselRepository
	alerts        AlertService
	log           *logger.Logger
}

// NewInventoryService creates a new InventoryService
func NewInventoryService(
	db TxRunner,
	inventoryRepo repository.InventoryRepository,
	fuelRepo repository.FuelReportRepository,
	bunkerRepo repository.BunkerRepository,
	vesselRepo repository.VesselRepository,
	alerts AlertService,
	log *logger.Logger,
) InventoryService {
	return &inventoryService{
		db:            db,
		inventoryRepo: inventoryRepo,
		fuelRepo:      fuelRepo,
		bunkerRepo:    bunkerRepo,
		vesselRepo:    vesselRepo,
		alerts:        alerts,
		log:           log,
	}
}

// GetVesselInventory returns the inventory of a vessel. A vessel whose
// inventory has never been read gets the default HFO and MGO tanks seeded.
func (s *inventoryService) GetVesselInventory(ctx context.Context, orgID, vesselID string) (*dto.VesselInventoryResponse, error) {
	vessel, err := s.vesselRepo.GetByID(ctx, orgID, vesselID)
	if err != nil {
		return nil, err
	}
	if vessel == nil {
		return nil, ErrVesselNotFound
	}

	items, err := s.inventoryRepo.ListByVessel(ctx, orgID, vesselID)
	if err != nil {
		return nil, err
	}

	if len(items) == 0 {
		for _, item := range domain.SeedFuelItems(orgID, vesselID) {
			if err := s.inventoryRepo.Create(ctx, item); err != nil {
				if errors.Is(err, repository.ErrDuplicate) {
					continue
				}
				return nil, err
			}
			items = append(items, item)
		}
	}

	views := make([]dto.FuelItemView, 0, len(items))
	for _, item := range items {
		views = append(views, buildFuelItemView(item))
	}
	return &dto.VesselInventoryResponse{VesselID: vesselID, Items: views}, nil
}

// GetOrgInventory returns the inventory of the tenant's first vessel. A
// tenant with no vessels yet gets a placeholder vessel provisioned so the
// dashboard has tanks to show.
func (s *inventoryService) GetOrgInventory(ctx context.Context, orgID string) (*dto.VesselInventoryResponse, error) {
	vessels, err := s.vesselRepo.ListByOrg(ctx, orgID)
	if err != nil {
		return nil, err
	}
	if len(vessels) > 0 {
		return s.GetVesselInventory(ctx, orgID, vessels[0].ID)
	}

	vessel, err := domain.NewVessel(orgID, "Unnamed Vessel", "0000000", "", "", "")
	if err != nil {
		return nil, err
	}
	if err := s.vesselRepo.Create(ctx, vessel); err != nil {
		if !errors.Is(err, repository.ErrDuplicate) {
			return nil, err
		}
		// Lost a provisioning race; pick up whichever vessel won.
		vessels, err = s.vesselRepo.ListByOrg(ctx, orgID)
		if err != nil {
			return nil, err
		}
		if len(vessels) == 0 {
			return nil, ErrVesselNotFound
		}
		vessel = vessels[0]
	}
	return s.GetVesselInventory(ctx, orgID, vessel.ID)
}

// UpdateItem adjusts quantity, capacity, or safety level of an item. The
// acting user is recorded as creator of any safety alert the change raises.
func (s *inventoryService) UpdateItem(ctx context.Context, orgID, itemID, userID string, req *dto.UpdateInventoryRequest) (*domain.InventoryItem, error) {
	if valid, errMsg := req.Validate(); !valid {
		return nil, errors.New(errMsg)
	}

	item, err := s.inventoryRepo.GetByID(ctx, orgID, itemID)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, ErrItemNotFound
	}

	if req.CurrentQuantity != nil {
		item.CurrentQuantity = *req.CurrentQuantity
	}
	if req.Capacity != nil {
		item.Capacity = *req.Capacity
	}
	if req.MinSafetyLevel != nil {
		item.MinSafetyLevel = *req.MinSafetyLevel
	}

	if err := s.inventoryRepo.Update(ctx, item); err != nil {
		return nil, err
	}

	s.checkSafetyLevel(ctx, item, userID)
	return item, nil
}

// SubmitFuelReport stores a daily fuel report and sets the vessel's fuel
// tank quantities to the reported remaining-on-board values. The report
// insert and both tank updates share one transaction; low fuel alerts are
// raised only after it commits.
func (s *inventoryService) SubmitFuelReport(ctx context.Context, orgID, vesselID, userID string, req *dto.SubmitFuelReportRequest) (*domain.FuelReport, error) {
	vessel, err := s.vesselRepo.GetByID(ctx, orgID, vesselID)
	if err != nil {
		return nil, err
	}
	if vessel == nil {
		return nil, ErrVesselNotFound
	}

	report, err := domain.NewFuelReport(orgID, vesselID, userID, req.Date, *req.HFORob, *req.MGORob, *req.HFOConsumption, *req.MGOConsumption)
	if err != nil {
		return nil, err
	}
	report.DistanceRun = req.DistanceRun
	report.AvgSpeed = req.AvgSpeed
	report.Remarks = req.Remarks

	existing, err := s.fuelRepo.GetByVesselAndDate(ctx, orgID, vesselID, report.Date)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrDuplicateReport
	}

	var lowItems []*domain.InventoryItem
	err = s.db.WithTx(ctx, func(tx pgx.Tx) error {
		fuelRepo := s.fuelRepo.WithTx(tx)
		invRepo := s.inventoryRepo.WithTx(tx)

		if err := fuelRepo.Create(ctx, report); err != nil {
			if errors.Is(err, repository.ErrDuplicate) {
				return ErrDuplicateReport
			}
			return err
		}

		for fuelType, rob := range map[string]float64{
			domain.ItemTypeHFO: *req.HFORob,
			domain.ItemTypeMGO: *req.MGORob,
		} {
			item, err := invRepo.GetByVesselAndType(ctx, orgID, vesselID, fuelType)
			if err != nil {
				return err
			}
			if item == nil {
				continue
			}
			if err := invRepo.SetQuantity(ctx, item.ID, rob); err != nil {
				return err
			}
			item.CurrentQuantity = rob
			if item.IsBelowSafety() {
				lowItems = append(lowItems, item)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	for _, item := range lowItems {
		s.raiseLowFuelAlert(ctx, vessel, item, userID)
	}
	return report, nil
}

// ListFuelReports lists recent fuel reports of a vessel
func (s *inventoryService) ListFuelReports(ctx context.Context, orgID, vesselID string, limit int) ([]*domain.FuelReport, error) {
	return s.fuelRepo.ListByVessel(ctx, orgID, vesselID, limit)
}

// RecordBunkering records a bunkering operation and adds the received
// quantity to the matching tank.
func (s *inventoryService) RecordBunkering(ctx context.Context, orgID, vesselID, userID string, req *dto.RecordBunkerRequest) (*domain.BunkerRecord, error) {
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

	date := time.Time{}
	if req.Date != nil {
		date = *req.Date
	}
	record, err := domain.NewBunkerRecord(orgID, vesselID, userID, req.FuelType, req.Quantity, date)
	if err != nil {
		return nil, err
	}
	record.Port = req.Port
	record.Supplier = req.Supplier

	if err := s.bunkerRepo.Create(ctx, record); err != nil {
		return nil, err
	}

	item, err := s.inventoryRepo.GetByVesselAndType(ctx, orgID, vesselID, req.FuelType)
	if err != nil {
		return nil, err
	}
	if item != nil {
		if err := s.inventoryRepo.IncrementQuantity(ctx, item.ID, req.Quantity); err != nil {
			return nil, err
		}
	}
	return record, nil
}

// ListBunkerRecords lists recent bunkering operations of a vessel
func (s *inventoryService) ListBunkerRecords(ctx context.Context, orgID, vesselID string, limit int) ([]*domain.BunkerRecord, error) {
	return s.bunkerRepo.ListByVessel(ctx, orgID, vesselID, limit)
}

// checkSafetyLevel raises a low fuel alert when an updated item has dropped
// under its safety threshold.
func (s *inventoryService) checkSafetyLevel(ctx context.Context, item *domain.InventoryItem, userID string) {
	if !item.IsBelowSafety() {
		return
	}
	vessel, err := s.vesselRepo.GetByID(ctx, item.OrgID, item.VesselID)
	if err != nil || vessel == nil {
		return
	}
	s.raiseLowFuelAlert(ctx, vessel, item, userID)
}

// raiseLowFuelAlert creates a high priority engineering alert. Alert
// failures are logged, never propagated; fuel data is already committed.
func (s *inventoryService) raiseLowFuelAlert(ctx context.Context, vessel *domain.Vessel, item *domain.InventoryItem, userID string) {
	title := fmt.Sprintf("LOW %s LEVEL: %s", strings.ToUpper(item.ItemType), vessel.Name)
	message := fmt.Sprintf("%s stock on %s is %.1f %s, below the safety level of %.1f %s",
		item.ItemType, vessel.Name, item.CurrentQuantity, item.Unit, item.SafetyThreshold(), item.Unit)

	_, err := s.alerts.CreateSystem(ctx, vessel.OrgID, &vessel.ID, userID, title, message, domain.AlertCategoryEngineering, domain.AlertPriorityHigh)
	if err != nil {
		s.log.WarnContext(ctx, "Failed to raise low fuel alert",
			zap.String("vessel_id", vessel.ID),
			zap.String("item_type", item.ItemType),
			zap.Error(err))
	}
}

func buildFuelItemView(item *domain.InventoryItem) dto.FuelItemView {
	view := dto.FuelItemView{
		ID:              item.ID,
		ItemType:        item.ItemType,
		CurrentQuantity: item.CurrentQuantity,
		Capacity:        item.Capacity,
		MinSafetyLevel:  item.SafetyThreshold(),
		Unit:            item.Unit,
		BelowSafety:     item.IsBelowSafety(),
		LastUpdated:     item.LastUpdated.Format(time.RFC3339),
	}
	if item.Capacity > 0 {
		view.FillPercent = item.CurrentQuantity / item.Capacity * 100
	}

	// Daily consumption figures are static placeholders until enough fuel
	// reports accumulate to derive real averages.
	switch item.ItemType {
	case domain.ItemTypeHFO:
		view.DailyConsumption = domain.PlaceholderHFODailyConsumption
	case domain.ItemTypeMGO:
		view.DailyConsumption = domain.PlaceholderMGODailyConsumption
	}
	if view.DailyConsumption > 0 {
		view.DaysRemaining = item.CurrentQuantity / view.DailyConsumption
	}
	return view
}

// FuelAnalytics aggregates fuel reports across the fleet over a trailing
// number of days. Days defaults to 30.
func (s *inventoryService) FuelAnalytics(ctx context.Context, orgID string, days int) (*dto.FuelAnalyticsResponse, error) {
	if days <= 0 {
		days = 30
	}
	since := time.Now().AddDate(0, 0, -days)

	vessels, err := s.vesselRepo.ListByOrg(ctx, orgID)
	if err != nil {
		return nil, err
	}

	result := &dto.FuelAnalyticsResponse{PeriodDays: days}
	var speedSum float64
	var speedCount int

	for _, vessel := range vessels {
		reports, err := s.fuelRepo.ListByVesselSince(ctx, orgID, vessel.ID, since)
		if err != nil {
			return nil, err
		}
		for _, report := range reports {
			result.ReportCount++
			result.TotalHFO += report.HFOConsumption
			result.TotalMGO += report.MGOConsumption
			if report.AvgSpeed > 0 {
				speedSum += report.AvgSpeed
				speedCount++
			}
		}
	}

	if speedCount > 0 {
		result.AverageSpeed = speedSum / float64(speedCount)
	}
	return result, nil
}
