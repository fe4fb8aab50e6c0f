package dto

import (
	"github.com/teeraphat-m/maritime-fleet-api/internal/domain"
)

// CreateAlertRequest represents request to raise an alert
type CreateAlertRequest struct {
	VesselID *string `json:"vessel_id" binding:"omitempty,uuid"`
	Title    string  `json:"title" binding:"required,min=2,max=255"`
	Message  string  `json:"message" binding:"required,max=2000"`
	Category string  `json:"category" binding:"omitempty"`
	Priority string  `json:"priority" binding:"omitempty"`
}

// Validate validates fields the binding tags cannot express
func (r *CreateAlertRequest) Validate() (bool, string) {
	if r.Category != "" && !domain.ValidAlertCategory(r.Category) {
		return false, "Category must be one of: Engineering, Navigation, Safety, Operations"
	}
	if r.Priority != "" && !domain.ValidAlertPriority(r.Priority) {
		return false, "Priority must be one of: low, medium, high, critical"
	}
	return true, ""
}

// UpdateAlertRequest represents request to update an alert
type UpdateAlertRequest struct {
	Title    *string `json:"title" binding:"omitempty,min=2,max=255"`
	Message  *string `json:"message" binding:"omitempty,max=2000"`
	Priority *string `json:"priority" binding:"omitempty"`
	Status   *string `json:"status" binding:"omitempty"`
}

// Validate validates that at least one field is provided for update
func (r *UpdateAlertRequest) Validate() (bool, string) {
	if r.Title == nil && r.Message == nil && r.Priority == nil && r.Status == nil {
		return false, "At least one field must be provided for update"
	}
	if r.Priority != nil && !domain.ValidAlertPriority(*r.Priority) {
		return false, "Priority must be one of: low, medium, high, critical"
	}
	if r.Status != nil && *r.Status != domain.AlertStatusActive && *r.Status != domain.AlertStatusResolved {
		return false, "Status must be one of: active, resolved"
	}
	return true, ""
}
