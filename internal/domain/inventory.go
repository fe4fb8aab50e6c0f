package domain

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// Inventory item type constants
const (
	ItemTypeHFO         = "HFO"
	ItemTypeMGO         = "MGO"
	ItemTypeLubeOil     = "Lube Oil"
	ItemTypeCylinderOil = "Cylinder Oil"
	ItemTypeSparePart   = "Spare Part"
	ItemTypeProvision   = "Provision"
)

// DefaultMinSafetyLevel is the stock level below which a low-level alert is
// raised when an item does not carry its own threshold.
const DefaultMinSafetyLevel = 20.0

// Seed values for the two fuel rows auto-provisioned on a brand-new vessel.
const (
	SeedHFOQuantity = 450.5
	SeedHFOCapacity = 600.0
	SeedMGOQuantity = 85.2
	SeedMGOCapacity = 120.0
)

// Daily consumption placeholders reported by the normalized inventory view.
const (
	PlaceholderHFODailyConsumption = 12.2
	PlaceholderMGODailyConsumption = 2.5
)

// InventoryItem tracks per-vessel stock of one item type. At most one row
// exists per (vessel, item type) within a tenant.
type InventoryItem struct {
	ID              string    `json:"id"`
	OrgID           string    `json:"org_id"`
	VesselID        string    `json:"vessel_id"`
	ItemType        string    `json:"item_type"`
	CurrentQuantity float64   `json:"current_quantity"`
	Capacity        float64   `json:"capacity"`
	MinSafetyLevel  float64   `json:"min_safety_level"`
	Unit            string    `json:"unit"`
	LastUpdated     time.Time `json:"last_updated"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// ValidItemType reports whether itemType is a recognized inventory item type.
func ValidItemType(itemType string) bool {
	switch itemType {
	case ItemTypeHFO, ItemTypeMGO, ItemTypeLubeOil,
		ItemTypeCylinderOil, ItemTypeSparePart, ItemTypeProvision:
		return true
	}
	return false
}

// NewInventoryItem creates an inventory row for a vessel.
func NewInventoryItem(orgID, vesselID, itemType string, quantity, capacity float64, unit string) (*InventoryItem, error) {
	if orgID == "" {
		return nil, errors.New("org_id is required")
	}
	if vesselID == "" {
		return nil, errors.New("vessel_id is required")
	}
	if !ValidItemType(itemType) {
		return nil, errors.New("invalid item type: " + itemType)
	}
	if quantity < 0 {
		return nil, errors.New("quantity cannot be negative")
	}
	if capacity <= 0 {
		return nil, errors.New("capacity must be positive")
	}
	if unit == "" {
		unit = "MT"
	}

	now := time.Now()
	return &InventoryItem{
		ID:              uuid.New().String(),
		OrgID:           orgID,
		VesselID:        vesselID,
		ItemType:        itemType,
		CurrentQuantity: quantity,
		Capacity:        capacity,
		MinSafetyLevel:  DefaultMinSafetyLevel,
		Unit:            unit,
		LastUpdated:     now,
		CreatedAt:       now,
		UpdatedAt:       now,
	}, nil
}

// SeedFuelItems returns the two default fuel rows provisioned the first time
// an inventory read finds nothing for a vessel.
func SeedFuelItems(orgID, vesselID string) []*InventoryItem {
	hfo, _ := NewInventoryItem(orgID, vesselID, ItemTypeHFO, SeedHFOQuantity, SeedHFOCapacity, "MT")
	mgo, _ := NewInventoryItem(orgID, vesselID, ItemTypeMGO, SeedMGOQuantity, SeedMGOCapacity, "MT")
	return []*InventoryItem{hfo, mgo}
}

// SafetyThreshold returns the effective threshold for low-stock alerting.
func (i *InventoryItem) SafetyThreshold() float64 {
	if i.MinSafetyLevel > 0 {
		return i.MinSafetyLevel
	}
	return DefaultMinSafetyLevel
}

// IsBelowSafety reports whether current stock has fallen under the threshold.
func (i *InventoryItem) IsBelowSafety() bool {
	return i.CurrentQuantity < i.SafetyThreshold()
}
