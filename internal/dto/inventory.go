package dto

import (
	"time"

	"github.com/teeraphat-m/maritime-fleet-api/internal/domain"
)

// UpdateInventoryRequest represents request to adjust an inventory item
type UpdateInventoryRequest struct {
	CurrentQuantity *float64 `json:"current_quantity" binding:"omitempty,min=0"`
	Capacity        *float64 `json:"capacity" binding:"omitempty,min=0"`
	MinSafetyLevel  *float64 `json:"min_safety_level" binding:"omitempty,min=0"`
}

// Validate validates that at least one field is provided for update
func (r *UpdateInventoryRequest) Validate() (bool, string) {
	if r.CurrentQuantity == nil && r.Capacity == nil && r.MinSafetyLevel == nil {
		return false, "At least one field must be provided for update"
	}
	return true, ""
}

// FuelItemView is a normalized view of a fuel tank with consumption placeholders
type FuelItemView struct {
	ID               string  `json:"id"`
	ItemType         string  `json:"item_type"`
	CurrentQuantity  float64 `json:"current_quantity"`
	Capacity         float64 `json:"capacity"`
	MinSafetyLevel   float64 `json:"min_safety_level"`
	Unit             string  `json:"unit"`
	FillPercent      float64 `json:"fill_percent"`
	DailyConsumption float64 `json:"daily_consumption"`
	DaysRemaining    float64 `json:"days_remaining"`
	BelowSafety      bool    `json:"below_safety"`
	LastUpdated      string  `json:"last_updated"`
}

// VesselInventoryResponse represents the inventory state of a vessel
type VesselInventoryResponse struct {
	VesselID string         `json:"vessel_id"`
	Items    []FuelItemView `json:"items"`
}

// SubmitFuelReportRequest represents a daily noon fuel report submission
type SubmitFuelReportRequest struct {
	Date           time.Time `json:"date" binding:"required"`
	HFORob         *float64  `json:"hfo_rob" binding:"required,min=0"`
	MGORob         *float64  `json:"mgo_rob" binding:"required,min=0"`
	HFOConsumption *float64  `json:"hfo_consumption" binding:"required,min=0"`
	MGOConsumption *float64  `json:"mgo_consumption" binding:"required,min=0"`
	DistanceRun    float64   `json:"distance_run" binding:"omitempty,min=0"`
	AvgSpeed       float64   `json:"avg_speed" binding:"omitempty,min=0"`
	Remarks        string    `json:"remarks" binding:"omitempty,max=2000"`
}

// RecordBunkerRequest represents a bunkering operation
type RecordBunkerRequest struct {
	FuelType string     `json:"fuel_type" binding:"required"`
	Quantity float64    `json:"quantity" binding:"required,gt=0"`
	Port     string     `json:"port" binding:"omitempty,max=255"`
	Supplier string     `json:"supplier" binding:"omitempty,max=255"`
	Date     *time.Time `json:"date" binding:"omitempty"`
}

// Validate validates fields the binding tags cannot express
func (r *RecordBunkerRequest) Validate() (bool, string) {
	if !domain.ValidItemType(r.FuelType) {
		return false, "Unknown fuel type"
	}
	return true, ""
}
