package repository

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/teeraphat-m/maritime-fleet-api/internal/domain"
)

// PostgresCrewRepository implements CrewRepository using PostgreSQL
type PostgresCrewRepository struct {
	db DB
}

// NewPostgresCrewRepository creates a new PostgresCrewRepository
func NewPostgresCrewRepository(db DB) *PostgresCrewRepository {
	return &PostgresCrewRepository{db: db}
}

const crewColumns = `id, org_id, vessel_id, first_name, last_name, rank, nationality, status, join_date, contract_end, created_at, updated_at`

// Create creates a new crew member
func (r *PostgresCrewRepository) Create(ctx context.Context, member *domain.CrewMember) error {
	query := `
		INSERT INTO crew_members (id, org_id, vessel_id, first_name, last_name, rank, nationality, status, join_date, contract_end, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
	`
	_, err := r.db.Exec(ctx, query,
		member.ID,
		member.OrgID,
		member.VesselID,
		member.FirstName,
		member.LastName,
		member.Rank,
		member.Nationality,
		member.Status,
		member.JoinDate,
		member.ContractEnd,
		member.CreatedAt,
		member.UpdatedAt,
	)
	return classifyError(err)
}

// GetByID retrieves a crew member by ID scoped to an organization
func (r *PostgresCrewRepository) GetByID(ctx context.Context, orgID, id string) (*domain.CrewMember, error) {
	query := `SELECT ` + crewColumns + ` FROM crew_members WHERE org_id = $1 AND id = $2`
	member, err := scanCrewMember(r.db.QueryRow(ctx, query, orgID, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return member, nil
}

// ListByOrg retrieves all crew members of an organization ordered by last name
func (r *PostgresCrewRepository) ListByOrg(ctx context.Context, orgID string) ([]*domain.CrewMember, error) {
	query := `SELECT ` + crewColumns + ` FROM crew_members WHERE org_id = $1 ORDER BY last_name ASC, first_name ASC`
	return r.list(ctx, query, orgID)
}

// ListByVessel retrieves crew members assigned to a vessel ordered by last name
func (r *PostgresCrewRepository) ListByVessel(ctx context.Context, orgID, vesselID string) ([]*domain.CrewMember, error) {
	query := `SELECT ` + crewColumns + ` FROM crew_members WHERE org_id = $1 AND vessel_id = $2 ORDER BY last_name ASC, first_name ASC`
	return r.list(ctx, query, orgID, vesselID)
}

// Update updates a crew member
func (r *PostgresCrewRepository) Update(ctx context.Context, member *domain.CrewMember) error {
	query := `
		UPDATE crew_members
		SET vessel_id = $2, first_name = $3, last_name = $4, rank = $5, nationality = $6,
		    status = $7, join_date = $8, contract_end = $9, updated_at = $10
		WHERE id = $1
	`
	_, err := r.db.Exec(ctx, query,
		member.ID,
		member.VesselID,
		member.FirstName,
		member.LastName,
		member.Rank,
		member.Nationality,
		member.Status,
		member.JoinDate,
		member.ContractEnd,
		time.Now(),
	)
	return err
}

// Delete deletes a crew member scoped to an organization
func (r *PostgresCrewRepository) Delete(ctx context.Context, orgID, id string) (bool, error) {
	query := `DELETE FROM crew_members WHERE org_id = $1 AND id = $2`
	tag, err := r.db.Exec(ctx, query, orgID, id)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

func (r *PostgresCrewRepository) list(ctx context.Context, query string, args ...interface{}) ([]*domain.CrewMember, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var members []*domain.CrewMember
	for rows.Next() {
		member, err := scanCrewMember(rows)
		if err != nil {
			return nil, err
		}
		members = append(members, member)
	}
	return members, rows.Err()
}

func scanCrewMember(row pgx.Row) (*domain.CrewMember, error) {
	member := &domain.CrewMember{}
	err := row.Scan(
		&member.ID,
		&member.OrgID,
		&member.VesselID,
		&member.FirstName,
		&member.LastName,
		&member.Rank,
		&member.Nationality,
		&member.Status,
		&member.JoinDate,
		&member.ContractEnd,
		&member.CreatedAt,
		&member.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return member, nil
}
