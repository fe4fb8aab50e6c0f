package repository

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/teeraphat-m/maritime-fleet-api/internal/domain"
)

// PostgresOrganizationRepository implements OrganizationRepository using PostgreSQL
type PostgresOrganizationRepository struct {
	db DB
}

// NewPostgresOrganizationRepository creates a new PostgresOrganizationRepository
func NewPostgresOrganizationRepository(db DB) *PostgresOrganizationRepository {
	return &PostgresOrganizationRepository{db: db}
}

// Create creates a new organization
func (r *PostgresOrganizationRepository) Create(ctx context.Context, org *domain.Organization) error {
	settings, err := json.Marshal(org.Settings)
	if err != nil {
		return err
	}

	query := `
		INSERT INTO organizations (id, name, slug, plan, settings, is_active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`
	_, err = r.db.Exec(ctx, query,
		org.ID,
		org.Name,
		org.Slug,
		org.Plan,
		settings,
		org.IsActive,
		org.CreatedAt,
		org.UpdatedAt,
	)
	return classifyError(err)
}

// GetByID retrieves an organization by ID
func (r *PostgresOrganizationRepository) GetByID(ctx context.Context, id string) (*domain.Organization, error) {
	query := `
		SELECT id, name, slug, plan, settings, is_active, created_at, updated_at
		FROM organizations
		WHERE id = $1
	`
	return r.scanOne(r.db.QueryRow(ctx, query, id))
}

// GetBySlug retrieves an organization by slug
func (r *PostgresOrganizationRepository) GetBySlug(ctx context.Context, slug string) (*domain.Organization, error) {
	query := `
		SELECT id, name, slug, plan, settings, is_active, created_at, updated_at
		FROM organizations
		WHERE slug = $1
	`
	return r.scanOne(r.db.QueryRow(ctx, query, slug))
}

// List retrieves all organizations
func (r *PostgresOrganizationRepository) List(ctx context.Context) ([]*domain.Organization, error) {
	query := `
		SELECT id, name, slug, plan, settings, is_active, created_at, updated_at
		FROM organizations
		ORDER BY created_at DESC
	`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var orgs []*domain.Organization
	for rows.Next() {
		org, err := r.scanRow(rows)
		if err != nil {
			return nil, err
		}
		orgs = append(orgs, org)
	}
	return orgs, rows.Err()
}

// Update updates an organization
func (r *PostgresOrganizationRepository) Update(ctx context.Context, org *domain.Organization) error {
	settings, err := json.Marshal(org.Settings)
	if err != nil {
		return err
	}

	query := `
		UPDATE organizations
		SET name = $2, slug = $3, plan = $4, settings = $5, is_active = $6, updated_at = $7
		WHERE id = $1
	`
	_, err = r.db.Exec(ctx, query,
		org.ID,
		org.Name,
		org.Slug,
		org.Plan,
		settings,
		org.IsActive,
		time.Now(),
	)
	return classifyError(err)
}

func (r *PostgresOrganizationRepository) scanOne(row pgx.Row) (*domain.Organization, error) {
	org, err := scanOrganization(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return org, nil
}

func (r *PostgresOrganizationRepository) scanRow(row pgx.Row) (*domain.Organization, error) {
	return scanOrganization(row)
}

func scanOrganization(row pgx.Row) (*domain.Organization, error) {
	org := &domain.Organization{}
	var settings []byte
	err := row.Scan(
		&org.ID,
		&org.Name,
		&org.Slug,
		&org.Plan,
		&settings,
		&org.IsActive,
		&org.CreatedAt,
		&org.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if len(settings) > 0 {
		if err := json.Unmarshal(settings, &org.Settings); err != nil {
			return nil, err
		}
	}
	return org, nil
}
