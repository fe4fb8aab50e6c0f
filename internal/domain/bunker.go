package domain

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// BunkerRecord documents a fuel delivery taken on board. The delivered
// quantity increments the vessel's inventory for that fuel type.
type BunkerRecord struct {
	ID         string    `json:"id"`
	OrgID      string    `json:"org_id"`
	VesselID   string    `json:"vessel_id"`
	FuelType   string    `json:"fuel_type"`
	Quantity   float64   `json:"quantity"`
	Port       string    `json:"port,omitempty"`
	Supplier   string    `json:"supplier,omitempty"`
	Date       time.Time `json:"date"`
	RecordedBy string    `json:"recorded_by"`
	CreatedAt  time.Time `json:"created_at"`
}

// NewBunkerRecord validates and creates a bunkering record.
func NewBunkerRecord(orgID, vesselID, recordedBy, fuelType string, quantity float64, date time.Time) (*BunkerRecord, error) {
	if orgID == "" {
		return nil, errors.New("org_id is required")
	}
	if vesselID == "" {
		return nil, errors.New("vessel_id is required")
	}
	if recordedBy == "" {
		return nil, errors.New("recorded_by is required")
	}
	if !ValidItemType(fuelType) {
		return nil, errors.New("invalid fuel type: " + fuelType)
	}
	if quantity <= 0 {
		return nil, errors.New("bunkered quantity must be positive")
	}
	if date.IsZero() {
		date = time.Now()
	}

	return &BunkerRecord{
		ID:         uuid.New().String(),
		OrgID:      orgID,
		VesselID:   vesselID,
		FuelType:   fuelType,
		Quantity:   quantity,
		Date:       date,
		RecordedBy: recordedBy,
		CreatedAt:  time.Now(),
	}, nil
}
