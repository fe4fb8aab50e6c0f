package domain

import (
	"testing"
	"time"
)

func TestNewFuelReport(t *testing.T) {
	date := time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		orgID   string
		hfoRob  float64
		mgoRob  float64
		hfoCons float64
		mgoCons float64
		date    time.Time
		wantErr bool
	}{
		{"valid report", "org-1", 438.3, 82.7, 12.2, 2.5, date, false},
		{"zero consumption allowed", "org-1", 438.3, 82.7, 0, 0, date, false},
		{"missing org", "", 438.3, 82.7, 12.2, 2.5, date, true},
		{"negative hfo rob", "org-1", -1, 82.7, 12.2, 2.5, date, true},
		{"negative mgo consumption", "org-1", 438.3, 82.7, 12.2, -2.5, date, true},
		{"zero date", "org-1", 438.3, 82.7, 12.2, 2.5, time.Time{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			report, err := NewFuelReport(tt.orgID, "vessel-1", "user-1", tt.date, tt.hfoRob, tt.mgoRob, tt.hfoCons, tt.mgoCons)

			if tt.wantErr {
				if err == nil {
					t.Error("Expected error but got nil")
				}
				return
			}

			if err != nil {
				t.Errorf("Unexpected error: %v", err)
				return
			}

			if report.ID == "" {
				t.Error("Expected report ID to be set")
			}
			if !report.Date.Equal(tt.date.Truncate(24 * time.Hour)) {
				t.Errorf("Expected date truncated to day, got %v", report.Date)
			}
		})
	}
}

func TestNewBunkerRecord(t *testing.T) {
	tests := []struct {
		name     string
		fuelType string
		quantity float64
		wantErr  bool
	}{
		{"valid bunkering", ItemTypeHFO, 150, false},
		{"zero quantity", ItemTypeHFO, 0, true},
		{"negative quantity", ItemTypeMGO, -10, true},
		{"unknown fuel type", "Coal", 150, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			record, err := NewBunkerRecord("org-1", "vessel-1", "user-1", tt.fuelType, tt.quantity, time.Now())

			if tt.wantErr {
				if err == nil {
					t.Error("Expected error but got nil")
				}
				return
			}

			if err != nil {
				t.Errorf("Unexpected error: %v", err)
				return
			}

			if record.FuelType != tt.fuelType {
				t.Errorf("Expected fuel type %s, got %s", tt.fuelType, record.FuelType)
			}
		})
	}
}
