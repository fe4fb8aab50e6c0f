package dto

import (
	"github.com/teeraphat-m/maritime-fleet-api/internal/domain"
)

// CreateThresholdRequest represents request to define an alert threshold
type CreateThresholdRequest struct {
	Name     string  `json:"name" binding:"required,min=2,max=255"`
	Metric   string  `json:"metric" binding:"required,max=100"`
	Operator string  `json:"operator" binding:"required"`
	Value    float64 `json:"value" binding:"required"`
	Severity string  `json:"severity" binding:"omitempty"`
}

// Validate validates fields the binding tags cannot express
func (r *CreateThresholdRequest) Validate() (bool, string) {
	if r.Operator != domain.ThresholdOpBelow && r.Operator != domain.ThresholdOpAbove {
		return false, "Operator must be one of: below, above"
	}
	if r.Severity != "" && !domain.ValidAlertPriority(r.Severity) {
		return false, "Severity must be one of: low, medium, high, critical"
	}
	return true, ""
}

// UpdateThresholdRequest represents request to update an alert threshold
type UpdateThresholdRequest struct {
	Name     *string  `json:"name" binding:"omitempty,min=2,max=255"`
	Value    *float64 `json:"value" binding:"omitempty"`
	Severity *string  `json:"severity" binding:"omitempty"`
	Enabled  *bool    `json:"enabled" binding:"omitempty"`
}

// Validate validates that at least one field is provided for update
func (r *UpdateThresholdRequest) Validate() (bool, string) {
	if r.Name == nil && r.Value == nil && r.Severity == nil && r.Enabled == nil {
		return false, "At least one field must be provided for update"
	}
	if r.Severity != nil && !domain.ValidAlertPriority(*r.Severity) {
		return false, "Severity must be one of: low, medium, high, critical"
	}
	return true, ""
}

// FleetAnalyticsResponse summarizes fleet-wide state for dashboards
type FleetAnalyticsResponse struct {
	TotalVessels   int                `json:"total_vessels"`
	ActiveVessels  int                `json:"active_vessels"`
	StatusCounts   map[string]int     `json:"status_counts"`
	ActiveAlerts   int                `json:"active_alerts"`
	TotalHFO       float64            `json:"total_hfo"`
	TotalMGO       float64            `json:"total_mgo"`
	FuelByVessel   map[string]float64 `json:"fuel_by_vessel"`
	CrewOnboard    int                `json:"crew_onboard"`
	LowFuelVessels []string           `json:"low_fuel_vessels"`
}

// FuelAnalyticsResponse aggregates fuel reports across the fleet over a
// trailing window
type FuelAnalyticsResponse struct {
	PeriodDays   int     `json:"period_days"`
	ReportCount  int     `json:"report_count"`
	TotalHFO     float64 `json:"total_hfo_consumed"`
	TotalMGO     float64 `json:"total_mgo_consumed"`
	AverageSpeed float64 `json:"average_speed"`
}

// VesselSummaryResponse is a per-vessel fleet overview row
type VesselSummaryResponse struct {
	VesselID     string `json:"vessel_id"`
	Name         string `json:"name"`
	IMO          string `json:"imo"`
	Status       string `json:"status"`
	CrewOnboard  int    `json:"crew_onboard"`
	ActiveAlerts int    `json:"active_alerts"`
}

// VesselPositionResponse represents a live vessel position for the map view
type VesselPositionResponse struct {
	VesselID string           `json:"vessel_id"`
	Name     string           `json:"name"`
	Status   string           `json:"status"`
	Position *domain.Position `json:"position,omitempty"`
	Source   string           `json:"source"`
}
