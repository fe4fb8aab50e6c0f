package domain

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// FuelReport is a daily noon report of remaining-on-board fuel and
// consumption. One report per vessel per date.
type FuelReport struct {
	ID             string    `json:"id"`
	OrgID          string    `json:"org_id"`
	VesselID       string    `json:"vessel_id"`
	ReportedBy     string    `json:"reported_by"`
	Date           time.Time `json:"date"`
	HFORob         float64   `json:"hfo_rob"`
	MGORob         float64   `json:"mgo_rob"`
	HFOConsumption float64   `json:"hfo_consumption"`
	MGOConsumption float64   `json:"mgo_consumption"`
	DistanceRun    float64   `json:"distance_run,omitempty"`
	AvgSpeed       float64   `json:"avg_speed,omitempty"`
	Remarks        string    `json:"remarks,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
}

// NewFuelReport validates and creates a fuel report. ROB and consumption
// values are required and must be non-negative; validation failure must
// reject the report before any inventory mutation.
func NewFuelReport(orgID, vesselID, reportedBy string, date time.Time, hfoRob, mgoRob, hfoCons, mgoCons float64) (*FuelReport, error) {
	if orgID == "" {
		return nil, errors.New("org_id is required")
	}
	if vesselID == "" {
		return nil, errors.New("vessel_id is required")
	}
	if reportedBy == "" {
		return nil, errors.New("reported_by is required")
	}
	if date.IsZero() {
		return nil, errors.New("report date is required")
	}
	if hfoRob < 0 || mgoRob < 0 {
		return nil, errors.New("remaining-on-board values cannot be negative")
	}
	if hfoCons < 0 || mgoCons < 0 {
		return nil, errors.New("consumption values cannot be negative")
	}

	return &FuelReport{
		ID:             uuid.New().String(),
		OrgID:          orgID,
		VesselID:       vesselID,
		ReportedBy:     reportedBy,
		Date:           date.Truncate(24 * time.Hour),
		HFORob:         hfoRob,
		MGORob:         mgoRob,
		HFOConsumption: hfoCons,
		MGOConsumption: mgoCons,
		CreatedAt:      time.Now(),
	}, nil
}
