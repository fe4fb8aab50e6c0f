package service

import (
	"context"
	"errors"
	"testing"

	"github.com/teeraphat-m/maritime-fleet-api/internal/domain"
	"github.com/teeraphat-m/maritime-fleet-api/internal/dto"
)

func TestReportUpdate_AuthorOrAdmin(t *testing.T) {
	repo := newFakeReportRepo()
	svc := NewReportService(repo)
	ctx := context.Background()

	created, err := svc.Create(ctx, testOrg, "author-1", &dto.CreateReportRequest{
		Title: "Engine room inspection",
		Type:  domain.ReportTypeInspection,
	})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	newTitle := "Engine room inspection (rev 2)"
	req := &dto.UpdateReportRequest{Title: &newTitle}

	cases := []struct {
		name    string
		userID  string
		role    string
		wantErr error
	}{
		{"author can edit", "author-1", domain.RoleUser, nil},
		{"admin can edit", "someone-else", domain.RoleAdmin, nil},
		{"other user cannot edit", "someone-else", domain.RoleCaptain, ErrNotReportOwner},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.Update(ctx, testOrg, created.ID, tc.userID, tc.role, req)
			if !errors.Is(err, tc.wantErr) {
				t.Errorf("Expected %v, got %v", tc.wantErr, err)
			}
		})
	}
}

func TestReportDelete_OwnerCheck(t *testing.T) {
	repo := newFakeReportRepo()
	svc := NewReportService(repo)
	ctx := context.Background()

	created, _ := svc.Create(ctx, testOrg, "author-1", &dto.CreateReportRequest{Title: "Noon report"})

	if err := svc.Delete(ctx, testOrg, created.ID, "intruder", domain.RoleUser); !errors.Is(err, ErrNotReportOwner) {
		t.Errorf("Expected ErrNotReportOwner, got %v", err)
	}
	if err := svc.Delete(ctx, testOrg, created.ID, "author-1", domain.RoleUser); err != nil {
		t.Errorf("Expected author delete to succeed, got %v", err)
	}
	if err := svc.Delete(ctx, testOrg, created.ID, "author-1", domain.RoleUser); !errors.Is(err, ErrReportNotFound) {
		t.Errorf("Expected ErrReportNotFound, got %v", err)
	}
}

func TestReportVerify(t *testing.T) {
	repo := newFakeReportRepo()
	svc := NewReportService(repo)
	ctx := context.Background()

	created, _ := svc.Create(ctx, testOrg, "author-1", &dto.CreateReportRequest{Title: "Incident at berth", Type: domain.ReportTypeIncident})

	verified, err := svc.Verify(ctx, testOrg, created.ID, "admin-1")
	if err != nil {
		t.Fatalf("Verify failed: %v", err)
	}
	if verified.Status != domain.ReportStatusVerified {
		t.Errorf("Expected verified status, got %s", verified.Status)
	}
	if verified.VerifiedBy == nil || *verified.VerifiedBy != "admin-1" {
		t.Errorf("Expected verified_by admin-1, got %v", verified.VerifiedBy)
	}

	if _, err := svc.Verify(ctx, testOrg, created.ID, "admin-2"); err == nil {
		t.Error("Expected error on double verification")
	}
}

func TestAlertAcknowledge_Idempotent(t *testing.T) {
	alertRepo := newFakeAlertRepo()
	svc := NewAlertService(alertRepo)
	ctx := context.Background()

	created, err := svc.Create(ctx, testOrg, "user-1", &dto.CreateAlertRequest{
		Title:    "Main engine vibration",
		Message:  "Excessive vibration on main engine bearing 3",
		Category: domain.AlertCategoryEngineering,
		Priority: domain.AlertPriorityCritical,
	})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	first, err := svc.Acknowledge(ctx, testOrg, created.ID, "user-2")
	if err != nil {
		t.Fatalf("Acknowledge failed: %v", err)
	}
	if len(first.AcknowledgedBy) != 1 {
		t.Fatalf("Expected 1 acknowledgement, got %d", len(first.AcknowledgedBy))
	}

	second, err := svc.Acknowledge(ctx, testOrg, created.ID, "user-2")
	if err != nil {
		t.Fatalf("Second acknowledge failed: %v", err)
	}
	if len(second.AcknowledgedBy) != 1 {
		t.Errorf("Expected acknowledgement to stay at 1, got %d", len(second.AcknowledgedBy))
	}
}
