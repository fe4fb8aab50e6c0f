package domain

import (
	"testing"
)

func TestNewVessel(t *testing.T) {
	tests := []struct {
		name       string
		orgID      string
		vesselName string
		imo        string
		mmsi       string
		wantErr    bool
	}{
		{
			name:       "valid vessel",
			orgID:      "org-123",
			vesselName: "MV Northern Star",
			imo:        "9321483",
			mmsi:       "235082896",
			wantErr:    false,
		},
		{
			name:       "valid without mmsi",
			orgID:      "org-123",
			vesselName: "MV Northern Star",
			imo:        "9321483",
			mmsi:       "",
			wantErr:    false,
		},
		{
			name:       "missing org_id",
			orgID:      "",
			vesselName: "MV Northern Star",
			imo:        "9321483",
			wantErr:    true,
		},
		{
			name:       "missing name",
			orgID:      "org-123",
			vesselName: "",
			imo:        "9321483",
			wantErr:    true,
		},
		{
			name:       "imo too short",
			orgID:      "org-123",
			vesselName: "MV Northern Star",
			imo:        "93214",
			wantErr:    true,
		},
		{
			name:       "imo with letters",
			orgID:      "org-123",
			vesselName: "MV Northern Star",
			imo:        "93214ab",
			wantErr:    true,
		},
		{
			name:       "mmsi wrong length",
			orgID:      "org-123",
			vesselName: "MV Northern Star",
			imo:        "9321483",
			mmsi:       "12345",
			wantErr:    true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			vessel, err := NewVessel(tt.orgID, tt.vesselName, tt.imo, tt.mmsi, VesselTypeTanker, "PA")

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

			if vessel.ID == "" {
				t.Error("Expected vessel ID to be set")
			}
			if vessel.Status != VesselStatusActive {
				t.Errorf("Expected status %s, got %s", VesselStatusActive, vessel.Status)
			}
			if vessel.OrgID != tt.orgID {
				t.Errorf("Expected org_id %s, got %s", tt.orgID, vessel.OrgID)
			}
		})
	}
}

func TestPositionValid(t *testing.T) {
	tests := []struct {
		name  string
		lat   float64
		lon   float64
		valid bool
	}{
		{"origin", 0, 0, true},
		{"north pole", 90, 0, true},
		{"date line", 0, 180, true},
		{"lat out of range", 91, 0, false},
		{"lat below range", -90.5, 0, false},
		{"lon out of range", 0, 180.1, false},
		{"lon below range", 0, -181, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := Position{Lat: tt.lat, Lon: tt.lon}
			if p.Valid() != tt.valid {
				t.Errorf("Valid() = %v, want %v", p.Valid(), tt.valid)
			}
		})
	}
}
