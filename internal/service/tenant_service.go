package service

import (
	"context"
	"errors"

	"github.com/teeraphat-m/maritime-fleet-api/internal/domain"
	"github.com/teeraphat-m/maritime-fleet-api/internal/repository"
	"github.com/teeraphat-m/maritime-fleet-api/pkg/middleware"
)

var ErrOrgNotFound = errors.New("organization not found")

// TenantService resolves the organization context for authenticated users
// and manages organizations.
type TenantService interface {
	// Resolve determines the organization for a user, falling back to the
	// default organization for users without an explicit assignment
	Resolve(ctx context.Context, user *middleware.AuthUser) (*middleware.ResolvedTenant, error)
	// BootstrapDefault ensures the default organization exists
	BootstrapDefault(ctx context.Context) (*domain.Organization, error)
	// GetOrganization retrieves an organization by ID
	GetOrganization(ctx context.Context, id string) (*domain.Organization, error)
}

// tenantService implements TenantService
type tenantService struct {
	orgRepo  repository.OrganizationRepository
	userRepo repository.UserRepository
}

// NewTenantService creates a new TenantService
func NewTenantService(orgRepo repository.OrganizationRepository, userRepo repository.UserRepository) TenantService {
	return &tenantService{orgRepo: orgRepo, userRepo: userRepo}
}

// Resolve determines the organization for a user. Users without an explicit
// organization adopt the default organization, and the adoption is written
// back so later requests resolve directly. A nil result means the user has
// no tenant context at all.
func (s *tenantService) Resolve(ctx context.Context, user *middleware.AuthUser) (*middleware.ResolvedTenant, error) {
	if user.OrgID != "" {
		org, err := s.orgRepo.GetByID(ctx, user.OrgID)
		if err != nil {
			return nil, err
		}
		if org != nil && org.IsActive {
			return &middleware.ResolvedTenant{OrgID: org.ID, Plan: org.Plan}, nil
		}
	}

	org, err := s.orgRepo.GetBySlug(ctx, domain.DefaultOrgSlug)
	if err != nil {
		return nil, err
	}
	if org == nil || !org.IsActive {
		return nil, nil
	}

	if err := s.adoptDefaultOrg(ctx, user.ID, org.ID); err != nil {
		return nil, err
	}
	return &middleware.ResolvedTenant{OrgID: org.ID, Plan: org.Plan}, nil
}

// adoptDefaultOrg persists the default organization onto a user that has
// none, so the fallback lookup runs once per user rather than per request.
func (s *tenantService) adoptDefaultOrg(ctx context.Context, userID, orgID string) error {
	stored, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return err
	}
	if stored == nil || stored.OrgID != nil {
		return nil
	}
	stored.OrgID = &orgID
	return s.userRepo.Update(ctx, stored)
}

// BootstrapDefault ensures the default organization exists, creating it on
// first startup.
func (s *tenantService) BootstrapDefault(ctx context.Context) (*domain.Organization, error) {
	org, err := s.orgRepo.GetBySlug(ctx, domain.DefaultOrgSlug)
	if err != nil {
		return nil, err
	}
	if org != nil {
		return org, nil
	}

	org, err = domain.NewOrganization("Default Fleet", domain.DefaultOrgSlug, domain.PlanFree)
	if err != nil {
		return nil, err
	}

	if err := s.orgRepo.Create(ctx, org); err != nil {
		// Another instance may have created it concurrently.
		if errors.Is(err, repository.ErrDuplicate) {
			return s.orgRepo.GetBySlug(ctx, domain.DefaultOrgSlug)
		}
		return nil, err
	}
	return org, nil
}

// GetOrganization retrieves an organization by ID
func (s *tenantService) GetOrganization(ctx context.Context, id string) (*domain.Organization, error) {
	org, err := s.orgRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if org == nil {
		return nil, ErrOrgNotFound
	}
	return org, nil
}
