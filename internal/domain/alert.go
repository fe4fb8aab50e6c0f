package domain

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// Alert category constants
const (
	AlertCategoryEngineering = "Engineering"
	AlertCategoryNavigation  = "Navigation"
	AlertCategorySafety      = "Safety"
	AlertCategoryOperations  = "Operations"
)

// Alert priority constants
const (
	AlertPriorityLow      = "low"
	AlertPriorityMedium   = "medium"
	AlertPriorityHigh     = "high"
	AlertPriorityCritical = "critical"
)

// Alert status constants
const (
	AlertStatusActive   = "active"
	AlertStatusResolved = "resolved"
)

// Alert is a broadcast notification within a tenant. Acknowledgement has set
// semantics: re-acknowledging by the same user is a no-op.
type Alert struct {
	ID             string    `json:"id"`
	OrgID          string    `json:"org_id"`
	VesselID       *string   `json:"vessel_id,omitempty"`
	Title          string    `json:"title"`
	Message        string    `json:"message"`
	Category       string    `json:"category"`
	Priority       string    `json:"priority"`
	Status         string    `json:"status"`
	CreatedBy      string    `json:"created_by"`
	AcknowledgedBy []string  `json:"acknowledged_by"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// ValidAlertCategory reports whether category is recognized.
func ValidAlertCategory(category string) bool {
	switch category {
	case AlertCategoryEngineering, AlertCategoryNavigation,
		AlertCategorySafety, AlertCategoryOperations:
		return true
	}
	return false
}

// ValidAlertPriority reports whether priority is recognized.
func ValidAlertPriority(priority string) bool {
	switch priority {
	case AlertPriorityLow, AlertPriorityMedium, AlertPriorityHigh, AlertPriorityCritical:
		return true
	}
	return false
}

// NewAlert validates and creates an alert.
func NewAlert(orgID, createdBy, title, message, category, priority string) (*Alert, error) {
	if orgID == "" {
		return nil, errors.New("org_id is required")
	}
	if createdBy == "" {
		return nil, errors.New("created_by is required")
	}
	if title == "" {
		return nil, errors.New("alert title is required")
	}
	if category == "" {
		category = AlertCategoryOperations
	}
	if !ValidAlertCategory(category) {
		return nil, errors.New("invalid alert category: " + category)
	}
	if priority == "" {
		priority = AlertPriorityMedium
	}
	if !ValidAlertPriority(priority) {
		return nil, errors.New("invalid alert priority: " + priority)
	}

	now := time.Now()
	return &Alert{
		ID:             uuid.New().String(),
		OrgID:          orgID,
		Title:          title,
		Message:        message,
		Category:       category,
		Priority:       priority,
		Status:         AlertStatusActive,
		CreatedBy:      createdBy,
		AcknowledgedBy: []string{},
		CreatedAt:      now,
		UpdatedAt:      now,
	}, nil
}

// Acknowledge records that userID has seen the alert. Returns true when the
// acknowledgement set changed.
func (a *Alert) Acknowledge(userID string) bool {
	for _, id := range a.AcknowledgedBy {
		if id == userID {
			return false
		}
	}
	a.AcknowledgedBy = append(a.AcknowledgedBy, userID)
	a.UpdatedAt = time.Now()
	return true
}

// IsAcknowledgedBy reports whether userID has acknowledged the alert.
func (a *Alert) IsAcknowledgedBy(userID string) bool {
	for _, id := range a.AcknowledgedBy {
		if id == userID {
			return true
		}
	}
	return false
}
