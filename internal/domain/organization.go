package domain

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Subscription plan constants, ordered from least to most capable
const (
	PlanFree       = "free"
	PlanPremium    = "premium"
	PlanEnterprise = "enterprise"
)

// DefaultOrgSlug identifies the fallback organization that adopts users
// without an explicit tenant assignment.
const DefaultOrgSlug = "default"

// OrgSettings holds per-tenant configuration
type OrgSettings struct {
	Theme         string `json:"theme"`
	RetentionDays int    `json:"retention_days"`
	FeedEnabled   bool   `json:"feed_enabled"`
}

// Organization represents a tenant in the multi-tenant fleet system
type Organization struct {
	ID        string      `json:"id"`
	Name      string      `json:"name"`
	Slug      string      `json:"slug"`
	Plan      string      `json:"plan"`
	Settings  OrgSettings `json:"settings"`
	IsActive  bool        `json:"is_active"`
	CreatedAt time.Time   `json:"created_at"`
	UpdatedAt time.Time   `json:"updated_at"`
}

// ValidPlan reports whether plan is a recognized subscription tier.
func ValidPlan(plan string) bool {
	switch plan {
	case PlanFree, PlanPremium, PlanEnterprise:
		return true
	}
	return false
}

// NewOrganization creates an organization with a normalized slug.
func NewOrganization(name, slug, plan string) (*Organization, error) {
	if name == "" {
		return nil, errors.New("organization name is required")
	}
	slug = strings.ToLower(strings.TrimSpace(slug))
	if slug == "" {
		return nil, errors.New("organization slug is required")
	}
	if plan == "" {
		plan = PlanFree
	}
	if !ValidPlan(plan) {
		return nil, errors.New("invalid subscription plan: " + plan)
	}

	now := time.Now()
	return &Organization{
		ID:   uuid.New().String(),
		Name: name,
		Slug: slug,
		Plan: plan,
		Settings: OrgSettings{
			Theme:         "light",
			RetentionDays: 90,
			FeedEnabled:   true,
		},
		IsActive:  true,
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}

// IsDefault reports whether this is the fallback organization.
func (o *Organization) IsDefault() bool {
	return o.Slug == DefaultOrgSlug
}
