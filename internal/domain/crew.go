package domain

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// Crew member status constants
const (
	CrewStatusOnboard   = "Onboard"
	CrewStatusOnLeave   = "On Leave"
	CrewStatusSignedOff = "Signed Off"
)

// CrewMember represents a seafarer on a tenant's manifest. Listings are
// ordered by surname.
type CrewMember struct {
	ID          string     `json:"id"`
	OrgID       string     `json:"org_id"`
	VesselID    *string    `json:"vessel_id,omitempty"`
	FirstName   string     `json:"first_name"`
	LastName    string     `json:"last_name"`
	Rank        string     `json:"rank"`
	Nationality string     `json:"nationality"`
	Status      string     `json:"status"`
	JoinDate    *time.Time `json:"join_date,omitempty"`
	ContractEnd *time.Time `json:"contract_end,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// ValidCrewStatus reports whether status is a recognized crew status.
func ValidCrewStatus(status string) bool {
	switch status {
	case CrewStatusOnboard, CrewStatusOnLeave, CrewStatusSignedOff:
		return true
	}
	return false
}

// NewCrewMember creates a crew member record.
func NewCrewMember(orgID, firstName, lastName, rank, nationality string) (*CrewMember, error) {
	if orgID == "" {
		return nil, errors.New("org_id is required")
	}
	if firstName == "" || lastName == "" {
		return nil, errors.New("first and last name are required")
	}
	if rank == "" {
		return nil, errors.New("rank is required")
	}

	now := time.Now()
	return &CrewMember{
		ID:          uuid.New().String(),
		OrgID:       orgID,
		FirstName:   firstName,
		LastName:    lastName,
		Rank:        rank,
		Nationality: nationality,
		Status:      CrewStatusOnboard,
		CreatedAt:   now,
		UpdatedAt:   now,
	}, nil
}
