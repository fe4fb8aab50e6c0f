package service

import (
	"context"
	"testing"

	"github.com/teeraphat-m/maritime-fleet-api/internal/domain"
	"github.com/teeraphat-m/maritime-fleet-api/internal/dto"
)

const fleetTestOrg = "org-fleet-test"

func setupFleetService(t *testing.T) (FleetService, *fakeVesselRepo, *fakeCrewRepo, *fakeAlertRepo, *fakeInventoryRepo, *fakeThresholdRepo) {
	t.Helper()
	vessels := newFakeVesselRepo()
	crew := newFakeCrewRepo()
	alerts := newFakeAlertRepo()
	inventory := newFakeInventoryRepo()
	thresholds := newFakeThresholdRepo()
	svc := NewFleetService(vessels, crew, alerts, inventory, thresholds)
	return svc, vessels, crew, alerts, inventory, thresholds
}

func seedFleetVessel(t *testing.T, vessels *fakeVesselRepo, name, imo string) *domain.Vessel {
	t.Helper()
	v, err := domain.NewVessel(fleetTestOrg, name, imo, "", "Tanker", "SG")
	if err != nil {
		t.Fatalf("NewVessel failed: %v", err)
	}
	if err := vessels.Create(context.Background(), v); err != nil {
		t.Fatalf("Create vessel failed: %v", err)
	}
	return v
}

func TestFleetAnalytics(t *testing.T) {
	svc, vessels, crew, alerts, inventory, _ := setupFleetService(t)
	ctx := context.Background()

	v1 := seedFleetVessel(t, vessels, "MV Orion", "9074729")
	v2 := seedFleetVessel(t, vessels, "MV Lyra", "9074731")
	v2.Status = domain.VesselStatusMaintenance
	if err := vessels.Update(ctx, v2); err != nil {
		t.Fatalf("Update vessel failed: %v", err)
	}

	hfo, err := domain.NewInventoryItem(fleetTestOrg, v1.ID, domain.ItemTypeHFO, 450.5, 600, "MT")
	if err != nil {
		t.Fatalf("NewInventoryItem failed: %v", err)
	}
	if err := inventory.Create(ctx, hfo); err != nil {
		t.Fatalf("Create inventory failed: %v", err)
	}
	// 15 MT sits under the default 20 MT safety threshold.
	lowHFO, err := domain.NewInventoryItem(fleetTestOrg, v2.ID, domain.ItemTypeHFO, 15, 600, "MT")
	if err != nil {
		t.Fatalf("NewInventoryItem failed: %v", err)
	}
	if err := inventory.Create(ctx, lowHFO); err != nil {
		t.Fatalf("Create inventory failed: %v", err)
	}

	member, err := domain.NewCrewMember(fleetTestOrg, "Arun", "Chaiyasit", "Chief Engineer", "TH")
	if err != nil {
		t.Fatalf("NewCrewMember failed: %v", err)
	}
	member.VesselID = &v1.ID
	if err := crew.Create(ctx, member); err != nil {
		t.Fatalf("Create crew failed: %v", err)
	}

	alert, err := domain.NewAlert(fleetTestOrg, "user-1", "LOW HFO LEVEL: MV Lyra", "Bunkering recommended", domain.AlertCategoryEngineering, domain.AlertPriorityHigh)
	if err != nil {
		t.Fatalf("NewAlert failed: %v", err)
	}
	alert.VesselID = &v2.ID
	if err := alerts.Create(ctx, alert); err != nil {
		t.Fatalf("Create alert failed: %v", err)
	}

	resp, err := svc.Analytics(ctx, fleetTestOrg)
	if err != nil {
		t.Fatalf("Analytics failed: %v", err)
	}
	if resp.TotalVessels != 2 {
		t.Errorf("Expected 2 vessels, got %d", resp.TotalVessels)
	}
	if resp.ActiveVessels != 1 {
		t.Errorf("Expected 1 active vessel, got %d", resp.ActiveVessels)
	}
	if resp.StatusCounts[domain.VesselStatusMaintenance] != 1 {
		t.Errorf("Expected 1 vessel in maintenance, got %d", resp.StatusCounts[domain.VesselStatusMaintenance])
	}
	if resp.ActiveAlerts != 1 {
		t.Errorf("Expected 1 active alert, got %d", resp.ActiveAlerts)
	}
	if resp.TotalHFO != 465.5 {
		t.Errorf("Expected total HFO 465.5, got %v", resp.TotalHFO)
	}
	if resp.CrewOnboard != 1 {
		t.Errorf("Expected 1 crew onboard, got %d", resp.CrewOnboard)
	}
	if len(resp.LowFuelVessels) != 1 || resp.LowFuelVessels[0] != "MV Lyra" {
		t.Errorf("Expected MV Lyra flagged for low fuel, got %v", resp.LowFuelVessels)
	}
}

func TestVesselSummary(t *testing.T) {
	svc, vessels, crew, alerts, _, _ := setupFleetService(t)
	ctx := context.Background()

	v := seedFleetVessel(t, vessels, "MV Orion", "9074729")

	onboard, err := domain.NewCrewMember(fleetTestOrg, "Somsak", "Preecha", "Captain", "TH")
	if err != nil {
		t.Fatalf("NewCrewMember failed: %v", err)
	}
	onboard.VesselID = &v.ID
	if err := crew.Create(ctx, onboard); err != nil {
		t.Fatalf("Create crew failed: %v", err)
	}
	ashore, err := domain.NewCrewMember(fleetTestOrg, "Niran", "Wong", "Second Officer", "TH")
	if err != nil {
		t.Fatalf("NewCrewMember failed: %v", err)
	}
	ashore.VesselID = &v.ID
	ashore.Status = domain.CrewStatusOnLeave
	if err := crew.Create(ctx, ashore); err != nil {
		t.Fatalf("Create crew failed: %v", err)
	}

	alert, err := domain.NewAlert(fleetTestOrg, "user-1", "Engine inspection due", "", domain.AlertCategoryEngineering, domain.AlertPriorityMedium)
	if err != nil {
		t.Fatalf("NewAlert failed: %v", err)
	}
	alert.VesselID = &v.ID
	alert.Status = domain.AlertStatusResolved
	if err := alerts.Create(ctx, alert); err != nil {
		t.Fatalf("Create alert failed: %v", err)
	}

	rows, err := svc.VesselSummary(ctx, fleetTestOrg)
	if err != nil {
		t.Fatalf("VesselSummary failed: %v", err)
	}
	if len(rows) != 1 {
		t.Fatalf("Expected 1 row, got %d", len(rows))
	}
	if rows[0].CrewOnboard != 1 {
		t.Errorf("Expected 1 crew onboard, got %d", rows[0].CrewOnboard)
	}
	if rows[0].ActiveAlerts != 0 {
		t.Errorf("Expected 0 active alerts, got %d", rows[0].ActiveAlerts)
	}
}

func TestThresholdLifecycle(t *testing.T) {
	svc, _, _, _, _, thresholds := setupFleetService(t)
	ctx := context.Background()

	created, err := svc.CreateThreshold(ctx, fleetTestOrg, &dto.CreateThresholdRequest{
		Name:     "Low fuel",
		Metric:   "fuel_level",
		Operator: domain.ThresholdOpBelow,
		Value:    20,
		Severity: domain.AlertPriorityHigh,
	})
	if err != nil {
		t.Fatalf("CreateThreshold failed: %v", err)
	}
	if len(thresholds.thresholds) != 1 {
		t.Fatalf("Expected 1 stored threshold, got %d", len(thresholds.thresholds))
	}

	newValue := 25.0
	updated, err := svc.UpdateThreshold(ctx, fleetTestOrg, created.ID, &dto.UpdateThresholdRequest{Value: &newValue})
	if err != nil {
		t.Fatalf("UpdateThreshold failed: %v", err)
	}
	if updated.Value != 25 {
		t.Errorf("Expected value 25, got %v", updated.Value)
	}

	if err := svc.DeleteThreshold(ctx, fleetTestOrg, created.ID); err != nil {
		t.Fatalf("DeleteThreshold failed: %v", err)
	}
	if err := svc.DeleteThreshold(ctx, fleetTestOrg, created.ID); err != ErrThresholdNotFound {
		t.Errorf("Expected ErrThresholdNotFound, got %v", err)
	}
}

func TestThresholdCrossTenantIsolation(t *testing.T) {
	svc, _, _, _, _, _ := setupFleetService(t)
	ctx := context.Background()

	created, err := svc.CreateThreshold(ctx, fleetTestOrg, &dto.CreateThresholdRequest{
		Name:     "Overspeed",
		Metric:   "speed",
		Operator: domain.ThresholdOpAbove,
		Value:    18,
		Severity: domain.AlertPriorityMedium,
	})
	if err != nil {
		t.Fatalf("CreateThreshold failed: %v", err)
	}

	if _, err := svc.UpdateThreshold(ctx, "other-org", created.ID, &dto.UpdateThresholdRequest{Value: &created.Value}); err != ErrThresholdNotFound {
		t.Errorf("Expected ErrThresholdNotFound across tenants, got %v", err)
	}
	if err := svc.DeleteThreshold(ctx, "other-org", created.ID); err != ErrThresholdNotFound {
		t.Errorf("Expected ErrThresholdNotFound across tenants, got %v", err)
	}
}
