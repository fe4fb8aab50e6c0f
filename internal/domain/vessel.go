package domain

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// Vessel status constants
const (
	VesselStatusActive            = "Active"
	VesselStatusMaintenance       = "Maintenance"
	VesselStatusDecommissioned    = "Decommissioned"
	VesselStatusUnderConstruction = "Under Construction"
)

// Vessel type constants
const (
	VesselTypeBulkCarrier   = "Bulk Carrier"
	VesselTypeContainerShip = "Container Ship"
	VesselTypeTanker        = "Tanker"
	VesselTypeGeneralCargo  = "General Cargo"
	VesselTypeRoRo          = "Ro-Ro"
	VesselTypePassenger     = "Passenger"
	VesselTypeTug           = "Tug"
	VesselTypeOther         = "Other"
)

// Position is a vessel's last reported position
type Position struct {
	Lat       float64   `json:"lat"`
	Lon       float64   `json:"lon"`
	Speed     float64   `json:"speed"`
	Heading   float64   `json:"heading"`
	Timestamp time.Time `json:"timestamp"`
}

// Valid reports whether the coordinates are within range.
func (p *Position) Valid() bool {
	return p.Lat >= -90 && p.Lat <= 90 && p.Lon >= -180 && p.Lon <= 180
}

// Vessel represents a ship in a tenant's fleet. IMO numbers are unique
// within a tenant.
type Vessel struct {
	ID           string    `json:"id"`
	OrgID        string    `json:"org_id"`
	Name         string    `json:"name"`
	IMO          string    `json:"imo"`
	MMSI         string    `json:"mmsi,omitempty"`
	Type         string    `json:"type"`
	Flag         string    `json:"flag"`
	Status       string    `json:"status"`
	LastPosition *Position `json:"last_position,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// ValidVesselStatus reports whether status is a recognized vessel status.
func ValidVesselStatus(status string) bool {
	switch status {
	case VesselStatusActive, VesselStatusMaintenance,
		VesselStatusDecommissioned, VesselStatusUnderConstruction:
		return true
	}
	return false
}

// ValidVesselType reports whether vesselType is a recognized vessel type.
func ValidVesselType(vesselType string) bool {
	switch vesselType {
	case VesselTypeBulkCarrier, VesselTypeContainerShip, VesselTypeTanker,
		VesselTypeGeneralCargo, VesselTypeRoRo, VesselTypePassenger,
		VesselTypeTug, VesselTypeOther:
		return true
	}
	return false
}

// ValidIMO reports whether imo is a 7-digit IMO number.
func ValidIMO(imo string) bool {
	return allDigits(imo, 7)
}

// ValidMMSI reports whether mmsi is a 9-digit MMSI number.
func ValidMMSI(mmsi string) bool {
	return allDigits(mmsi, 9)
}

func allDigits(s string, length int) bool {
	if len(s) != length {
		return false
	}
	for _, c := range s {
		if c < '0' || c > '9' {
			return false
		}
	}
	return true
}

// NewVessel creates a vessel after validating its identifiers.
func NewVessel(orgID, name, imo, mmsi, vesselType, flag string) (*Vessel, error) {
	if orgID == "" {
		return nil, errors.New("org_id is required")
	}
	if name == "" {
		return nil, errors.New("vessel name is required")
	}
	if !ValidIMO(imo) {
		return nil, errors.New("imo must be a 7-digit number")
	}
	if mmsi != "" && !ValidMMSI(mmsi) {
		return nil, errors.New("mmsi must be a 9-digit number")
	}
	if vesselType == "" {
		vesselType = VesselTypeOther
	}

	now := time.Now()
	return &Vessel{
		ID:        uuid.New().String(),
		OrgID:     orgID,
		Name:      name,
		IMO:       imo,
		MMSI:      mmsi,
		Type:      vesselType,
		Flag:      flag,
		Status:    VesselStatusActive,
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}
