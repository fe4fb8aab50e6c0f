package dto

import (
	"time"

	"github.com/teeraphat-m/maritime-fleet-api/internal/domain"
)

// CreateCrewRequest represents request to add a crew member
type CreateCrewRequest struct {
	VesselID    *string    `json:"vessel_id" binding:"omitempty,uuid"`
	FirstName   string     `json:"first_name" binding:"required,min=1,max=100"`
	LastName    string     `json:"last_name" binding:"required,min=1,max=100"`
	Rank        string     `json:"rank" binding:"required,max=100"`
	Nationality string     `json:"nationality" binding:"omitempty,max=100"`
	Status      string     `json:"status" binding:"omitempty"`
	JoinDate    *time.Time `json:"join_date" binding:"omitempty"`
	ContractEnd *time.Time `json:"contract_end" binding:"omitempty"`
}

// Validate validates fields the binding tags cannot express
func (r *CreateCrewRequest) Validate() (bool, string) {
	if r.Status != "" && !domain.ValidCrewStatus(r.Status) {
		return false, "Status must be one of: Onboard, On Leave, Signed Off"
	}
	return true, ""
}

// UpdateCrewRequest represents request to update a crew member
type UpdateCrewRequest struct {
	VesselID    *string    `json:"vessel_id" binding:"omitempty"`
	FirstName   *string    `json:"first_name" binding:"omitempty,min=1,max=100"`
	LastName    *string    `json:"last_name" binding:"omitempty,min=1,max=100"`
	Rank        *string    `json:"rank" binding:"omitempty,max=100"`
	Nationality *string    `json:"nationality" binding:"omitempty,max=100"`
	Status      *string    `json:"status" binding:"omitempty"`
	JoinDate    *time.Time `json:"join_date" binding:"omitempty"`
	ContractEnd *time.Time `json:"contract_end" binding:"omitempty"`
}

// Validate validates that at least one field is provided for update
func (r *UpdateCrewRequest) Validate() (bool, string) {
	if r.VesselID == nil && r.FirstName == nil && r.LastName == nil && r.Rank == nil &&
		r.Nationality == nil && r.Status == nil && r.JoinDate == nil && r.ContractEnd == nil {
		return false, "At least one field must be provided for update"
	}
	if r.Status != nil && !domain.ValidCrewStatus(*r.Status) {
		return false, "Status must be one of: Onboard, On Leave, Signed Off"
	}
	return true, ""
}
