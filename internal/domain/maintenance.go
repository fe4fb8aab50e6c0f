package domain

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// Maintenance status constants
const (
	MaintenanceStatusPlanned    = "planned"
	MaintenanceStatusInProgress = "in_progress"
	MaintenanceStatusCompleted  = "completed"
	MaintenanceStatusOverdue    = "overdue"
)

// MaintenanceLog tracks planned and completed maintenance on a vessel.
type MaintenanceLog struct {
	ID          string     `json:"id"`
	OrgID       string     `json:"org_id"`
	VesselID    string     `json:"vessel_id"`
	Title       string     `json:"title"`
	Description string     `json:"description,omitempty"`
	Category    string     `json:"category,omitempty"`
	Status      string     `json:"status"`
	Priority    string     `json:"priority,omitempty"`
	DueDate     *time.Time `json:"due_date,omitempty"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
	AssignedTo  string     `json:"assigned_to,omitempty"`
	CreatedBy   string     `json:"created_by"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// ValidMaintenanceStatus reports whether status is recognized.
func ValidMaintenanceStatus(status string) bool {
	switch status {
	case MaintenanceStatusPlanned, MaintenanceStatusInProgress,
		MaintenanceStatusCompleted, MaintenanceStatusOverdue:
		return true
	}
	return false
}

// NewMaintenanceLog validates and creates a maintenance log entry.
func NewMaintenanceLog(orgID, vesselID, createdBy, title string) (*MaintenanceLog, error) {
	if orgID == "" {
		return nil, errors.New("org_id is required")
	}
	if vesselID == "" {
		return nil, errors.New("vessel_id is required")
	}
	if createdBy == "" {
		return nil, errors.New("created_by is required")
	}
	if title == "" {
		return nil, errors.New("maintenance title is required")
	}

	now := time.Now()
	return &MaintenanceLog{
		ID:        uuid.New().String(),
		OrgID:     orgID,
		VesselID:  vesselID,
		Title:     title,
		Status:    MaintenanceStatusPlanned,
		CreatedBy: createdBy,
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}

// Complete marks the log completed. Completing twice is an error.
func (m *MaintenanceLog) Complete() error {
	if m.Status == MaintenanceStatusCompleted {
		return errors.New("maintenance log already completed")
	}
	now := time.Now()
	m.Status = MaintenanceStatusCompleted
	m.CompletedAt = &now
	m.UpdatedAt = now
	return nil
}
