package dto

import (
	"github.com/teeraphat-m/maritime-fleet-api/internal/domain"
)

// CreateVesselRequest represents request to register a new vessel
type CreateVesselRequest struct {
	Name string `json:"name" binding:"required,min=2,max=255"`
	IMO  string `json:"imo" binding:"required"`
	MMSI string `json:"mmsi" binding:"omitempty"`
	Type string `json:"type" binding:"omitempty"`
	Flag string `json:"flag" binding:"omitempty,max=100"`
}

// Validate validates fields the binding tags cannot express
func (r *CreateVesselRequest) Validate() (bool, string) {
	if !domain.ValidIMO(r.IMO) {
		return false, "IMO number must be exactly 7 digits"
	}
	if r.MMSI != "" && !domain.ValidMMSI(r.MMSI) {
		return false, "MMSI must be exactly 9 digits"
	}
	if r.Type != "" && !domain.ValidVesselType(r.Type) {
		return false, "Unknown vessel type"
	}
	return true, ""
}

// UpdateVesselRequest represents request to update vessel details
type UpdateVesselRequest struct {
	Name   *string `json:"name" binding:"omitempty,min=2,max=255"`
	MMSI   *string `json:"mmsi" binding:"omitempty"`
	Type   *string `json:"type" binding:"omitempty"`
	Flag   *string `json:"flag" binding:"omitempty,max=100"`
	Status *string `json:"status" binding:"omitempty"`
}

// Validate validates that at least one field is provided for update
func (r *UpdateVesselRequest) Validate() (bool, string) {
	if r.Name == nil && r.MMSI == nil && r.Type == nil && r.Flag == nil && r.Status == nil {
		return false, "At least one field must be provided for update"
	}
	if r.MMSI != nil && *r.MMSI != "" && !domain.ValidMMSI(*r.MMSI) {
		return false, "MMSI must be exactly 9 digits"
	}
	if r.Type != nil && !domain.ValidVesselType(*r.Type) {
		return false, "Unknown vessel type"
	}
	if r.Status != nil && !domain.ValidVesselStatus(*r.Status) {
		return false, "Unknown vessel status"
	}
	return true, ""
}

// UpdatePositionRequest represents a manual vessel position update
type UpdatePositionRequest struct {
	Lat     float64 `json:"lat" binding:"required,min=-90,max=90"`
	Lon     float64 `json:"lon" binding:"required,min=-180,max=180"`
	Speed   float64 `json:"speed" binding:"omitempty,min=0"`
	Heading float64 `json:"heading" binding:"omitempty,min=0,max=360"`
}
