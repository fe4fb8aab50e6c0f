package dto

import (
	"time"

	"github.com/teeraphat-m/maritime-fleet-api/internal/domain"
)

// CreateReportRequest represents request to file an operational report
type CreateReportRequest struct {
	VesselID *string `json:"vessel_id" binding:"omitempty,uuid"`
	Title    string  `json:"title" binding:"required,min=2,max=255"`
	Type     string  `json:"type" binding:"omitempty"`
	Content  string  `json:"content" binding:"omitempty,max=10000"`
}

// Validate validates fields the binding tags cannot express
func (r *CreateReportRequest) Validate() (bool, string) {
	if r.Type != "" && !domain.ValidReportType(r.Type) {
		return false, "Type must be one of: noon, incident, inspection, general"
	}
	return true, ""
}

// UpdateReportRequest represents request to update an operational report
type UpdateReportRequest struct {
	Title   *string `json:"title" binding:"omitempty,min=2,max=255"`
	Type    *string `json:"type" binding:"omitempty"`
	Content *string `json:"content" binding:"omitempty,max=10000"`
}

// Validate validates that at least one field is provided for update
func (r *UpdateReportRequest) Validate() (bool, string) {
	if r.Title == nil && r.Type == nil && r.Content == nil {
		return false, "At least one field must be provided for update"
	}
	if r.Type != nil && !domain.ValidReportType(*r.Type) {
		return false, "Type must be one of: noon, incident, inspection, general"
	}
	return true, ""
}

// CreateMaintenanceRequest represents request to log a maintenance task
type CreateMaintenanceRequest struct {
	Title       string     `json:"title" binding:"required,min=2,max=255"`
	Description string     `json:"description" binding:"omitempty,max=5000"`
	Category    string     `json:"category" binding:"omitempty,max=100"`
	Priority    string     `json:"priority" binding:"omitempty"`
	DueDate     *time.Time `json:"due_date" binding:"omitempty"`
	AssignedTo  string     `json:"assigned_to" binding:"omitempty,max=255"`
}

// Validate validates fields the binding tags cannot express
func (r *CreateMaintenanceRequest) Validate() (bool, string) {
	if r.Priority != "" && !domain.ValidAlertPriority(r.Priority) {
		return false, "Priority must be one of: low, medium, high, critical"
	}
	return true, ""
}

// UpdateMaintenanceRequest represents request to update a maintenance task
type UpdateMaintenanceRequest struct {
	Title       *string    `json:"title" binding:"omitempty,min=2,max=255"`
	Description *string    `json:"description" binding:"omitempty,max=5000"`
	Category    *string    `json:"category" binding:"omitempty,max=100"`
	Status      *string    `json:"status" binding:"omitempty"`
	Priority    *string    `json:"priority" binding:"omitempty"`
	DueDate     *time.Time `json:"due_date" binding:"omitempty"`
	AssignedTo  *string    `json:"assigned_to" binding:"omitempty,max=255"`
}

// Validate validates that at least one field is provided for update
func (r *UpdateMaintenanceRequest) Validate() (bool, string) {
	if r.Title == nil && r.Description == nil && r.Category == nil && r.Status == nil &&
		r.Priority == nil && r.DueDate == nil && r.AssignedTo == nil {
		return false, "At least one field must be provided for update"
	}
	if r.Status != nil && !domain.ValidMaintenanceStatus(*r.Status) {
		return false, "Status must be one of: planned, in_progress, completed, overdue"
	}
	return true, ""
}
