package domain

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// Report type constants
const (
	ReportTypeNoon       = "noon"
	ReportTypeIncident   = "incident"
	ReportTypeInspection = "inspection"
	ReportTypeGeneral    = "general"
)

// Report status constants
const (
	ReportStatusDraft     = "draft"
	ReportStatusSubmitted = "submitted"
	ReportStatusVerified  = "verified"
)

// Report is a free-form operational report. Mutation is restricted to the
// original author or an admin.
type Report struct {
	ID         string    `json:"id"`
	OrgID      string    `json:"org_id"`
	VesselID   *string   `json:"vessel_id,omitempty"`
	Title      string    `json:"title"`
	Type       string    `json:"type"`
	Content    string    `json:"content,omitempty"`
	Status     string    `json:"status"`
	CreatedBy  string    `json:"created_by"`
	VerifiedBy *string   `json:"verified_by,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// ValidReportType reports whether reportType is recognized.
func ValidReportType(reportType string) bool {
	switch reportType {
	case ReportTypeNoon, ReportTypeIncident, ReportTypeInspection, ReportTypeGeneral:
		return true
	}
	return false
}

// NewReport validates and creates a report in submitted state.
func NewReport(orgID, createdBy, title, reportType, content string) (*Report, error) {
	if orgID == "" {
		return nil, errors.New("org_id is required")
	}
	if createdBy == "" {
		return nil, errors.New("created_by is required")
	}
	if title == "" {
		return nil, errors.New("report title is required")
	}
	if reportType == "" {
		reportType = ReportTypeGeneral
	}
	if !ValidReportType(reportType) {
		return nil, errors.New("invalid report type: " + reportType)
	}

	now := time.Now()
	return &Report{
		ID:        uuid.New().String(),
		OrgID:     orgID,
		Title:     title,
		Type:      reportType,
		Content:   content,
		Status:    ReportStatusSubmitted,
		CreatedBy: createdBy,
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}

// CanMutate reports whether the given user may update or delete the report.
func (r *Report) CanMutate(userID, role string) bool {
	return role == RoleAdmin || r.CreatedBy == userID
}

// Verify marks the report verified by a reviewer.
func (r *Report) Verify(userID string) error {
	if r.Status == ReportStatusVerified {
		return errors.New("report already verified")
	}
	r.Status = ReportStatusVerified
	r.VerifiedBy = &userID
	r.UpdatedAt = time.Now()
	return nil
}
