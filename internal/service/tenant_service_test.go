package service

import (
	"context"
	"testing"

	"github.com/teeraphat-m/maritime-fleet-api/internal/domain"
	"github.com/teeraphat-m/maritime-fleet-api/pkg/middleware"
)

func TestBootstrapDefault_CreatesOnce(t *testing.T) {
	orgRepo := newFakeOrgRepo()
	svc := NewTenantService(orgRepo, newFakeUserRepo())
	ctx := context.Background()

	org, err := svc.BootstrapDefault(ctx)
	if err != nil {
		t.Fatalf("BootstrapDefault failed: %v", err)
	}
	if org.Slug != domain.DefaultOrgSlug {
		t.Errorf("Expected slug %q, got %q", domain.DefaultOrgSlug, org.Slug)
	}

	again, err := svc.BootstrapDefault(ctx)
	if err != nil {
		t.Fatalf("Second BootstrapDefault failed: %v", err)
	}
	if again.ID != org.ID {
		t.Errorf("Expected idempotent bootstrap, got new org %s", again.ID)
	}
	if len(orgRepo.orgs) != 1 {
		t.Errorf("Expected 1 organization, got %d", len(orgRepo.orgs))
	}
}

func TestResolve_ExplicitOrg(t *testing.T) {
	orgRepo := newFakeOrgRepo()
	svc := NewTenantService(orgRepo, newFakeUserRepo())
	ctx := context.Background()

	org, _ := domain.NewOrganization("Pacific Shipping", "pacific", domain.PlanPremium)
	orgRepo.Create(ctx, org)

	tenant, err := svc.Resolve(ctx, &middleware.AuthUser{ID: "u1", OrgID: org.ID})
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}
	if tenant == nil {
		t.Fatal("Expected resolved tenant, got nil")
	}
	if tenant.OrgID != org.ID {
		t.Errorf("Expected org %s, got %s", org.ID, tenant.OrgID)
	}
	if tenant.Plan != domain.PlanPremium {
		t.Errorf("Expected plan premium, got %s", tenant.Plan)
	}
}

func TestResolve_FallsBackToDefault(t *testing.T) {
	orgRepo := newFakeOrgRepo()
	svc := NewTenantService(orgRepo, newFakeUserRepo())
	ctx := context.Background()

	def, err := svc.BootstrapDefault(ctx)
	if err != nil {
		t.Fatalf("BootstrapDefault failed: %v", err)
	}

	cases := []struct {
		name string
		user *middleware.AuthUser
	}{
		{"no org assigned", &middleware.AuthUser{ID: "u1"}},
		{"org no longer exists", &middleware.AuthUser{ID: "u2", OrgID: "gone"}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			tenant, err := svc.Resolve(ctx, tc.user)
			if err != nil {
				t.Fatalf("Resolve failed: %v", err)
			}
			if tenant == nil {
				t.Fatal("Expected default tenant, got nil")
			}
			if tenant.OrgID != def.ID {
				t.Errorf("Expected default org %s, got %s", def.ID, tenant.OrgID)
			}
		})
	}
}

func TestResolve_PersistsDefaultOrgAdoption(t *testing.T) {
	orgRepo := newFakeOrgRepo()
	userRepo := newFakeUserRepo()
	svc := NewTenantService(orgRepo, userRepo)
	ctx := context.Background()

	def, err := svc.BootstrapDefault(ctx)
	if err != nil {
		t.Fatalf("BootstrapDefault failed: %v", err)
	}

	user, err := domain.NewUser("Kanya Srisuwan", "kanya@example.com", "hashed", domain.RoleUser)
	if err != nil {
		t.Fatalf("NewUser failed: %v", err)
	}
	if err := userRepo.Create(ctx, user); err != nil {
		t.Fatalf("Create user failed: %v", err)
	}

	for i := 0; i < 2; i++ {
		tenant, err := svc.Resolve(ctx, &middleware.AuthUser{ID: user.ID})
		if err != nil {
			t.Fatalf("Resolve %d failed: %v", i+1, err)
		}
		if tenant == nil || tenant.OrgID != def.ID {
			t.Fatalf("Resolve %d: expected default org, got %+v", i+1, tenant)
		}
	}

	stored, _ := userRepo.GetByID(ctx, user.ID)
	if stored.OrgID == nil || *stored.OrgID != def.ID {
		t.Errorf("Expected adoption written back, got %v", stored.OrgID)
	}
	if userRepo.updates != 1 {
		t.Errorf("Expected exactly one write-back, got %d", userRepo.updates)
	}
}

func TestResolve_NoTenantContext(t *testing.T) {
	orgRepo := newFakeOrgRepo()
	svc := NewTenantService(orgRepo, newFakeUserRepo())

	// No default org bootstrapped.
	tenant, err := svc.Resolve(context.Background(), &middleware.AuthUser{ID: "u1"})
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}
	if tenant != nil {
		t.Errorf("Expected nil tenant without default org, got %+v", tenant)
	}
}
