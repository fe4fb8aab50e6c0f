package repository

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/teeraphat-m/maritime-fleet-api/internal/domain"
)

// PostgresVesselRepository implements VesselRepository using PostgreSQL
type PostgresVesselRepository struct {
	db DB
}

// NewPostgresVesselRepository creates a new PostgresVesselRepository
func NewPostgresVesselRepository(db DB) *PostgresVesselRepository {
	return &PostgresVesselRepository{db: db}
}

const vesselColumns = `id, org_id, name, imo, mmsi, type, flag, status, last_position, created_at, updated_at`

// Create creates a new vessel
func (r *PostgresVesselRepository) Create(ctx context.Context, vessel *domain.Vessel) error {
	pos, err := marshalPosition(vessel.LastPosition)
	if err != nil {
		return err
	}

	query := `
		INSERT INTO vessels (id, org_id, name, imo, mmsi, type, flag, status, last_position, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	`
	_, err = r.db.Exec(ctx, query,
		vessel.ID,
		vessel.OrgID,
		vessel.Name,
		vessel.IMO,
		nullableString(vessel.MMSI),
		vessel.Type,
		vessel.Flag,
		vessel.Status,
		pos,
		vessel.CreatedAt,
		vessel.UpdatedAt,
	)
	return classifyError(err)
}

// GetByID retrieves a vessel by ID scoped to an organization
func (r *PostgresVesselRepository) GetByID(ctx context.Context, orgID, id string) (*domain.Vessel, error) {
	query := `SELECT ` + vesselColumns + ` FROM vessels WHERE org_id = $1 AND id = $2`
	vessel, err := scanVessel(r.db.QueryRow(ctx, query, orgID, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return vessel, nil
}

// GetByIMO retrieves a vessel by IMO number scoped to an organization
func (r *PostgresVesselRepository) GetByIMO(ctx context.Context, orgID, imo string) (*domain.Vessel, error) {
	query := `SELECT ` + vesselColumns + ` FROM vessels WHERE org_id = $1 AND imo = $2`
	vessel, err := scanVessel(r.db.QueryRow(ctx, query, orgID, imo))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return vessel, nil
}

// GetByMMSI retrieves a vessel by MMSI across all organizations
func (r *PostgresVesselRepository) GetByMMSI(ctx context.Context, mmsi string) (*domain.Vessel, error) {
	query := `SELECT ` + vesselColumns + ` FROM vessels WHERE mmsi = $1`
	vessel, err := scanVessel(r.db.QueryRow(ctx, query, mmsi))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return vessel, nil
}

// ListByOrg retrieves all vessels belonging to an organization
func (r *PostgresVesselRepository) ListByOrg(ctx context.Context, orgID string) ([]*domain.Vessel, error) {
	query := `SELECT ` + vesselColumns + ` FROM vessels WHERE org_id = $1 ORDER BY name ASC`
	rows, err := r.db.Query(ctx, query, orgID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var vessels []*domain.Vessel
	for rows.Next() {
		vessel, err := scanVessel(rows)
		if err != nil {
			return nil, err
		}
		vessels = append(vessels, vessel)
	}
	return vessels, rows.Err()
}

// Update updates a vessel
func (r *PostgresVesselRepository) Update(ctx context.Context, vessel *domain.Vessel) error {
	pos, err := marshalPosition(vessel.LastPosition)
	if err != nil {
		return err
	}

	query := `
		UPDATE vessels
		SET name = $2, imo = $3, mmsi = $4, type = $5, flag = $6, status = $7,
		    last_position = $8, updated_at = $9
		WHERE id = $1
	`
	_, err = r.db.Exec(ctx, query,
		vessel.ID,
		vessel.Name,
		vessel.IMO,
		nullableString(vessel.MMSI),
		vessel.Type,
		vessel.Flag,
		vessel.Status,
		pos,
		time.Now(),
	)
	return classifyError(err)
}

// UpdatePosition updates the last known position of a vessel
func (r *PostgresVesselRepository) UpdatePosition(ctx context.Context, id string, pos *domain.Position) error {
	data, err := marshalPosition(pos)
	if err != nil {
		return err
	}

	query := `UPDATE vessels SET last_position = $2, updated_at = $3 WHERE id = $1`
	_, err = r.db.Exec(ctx, query, id, data, time.Now())
	return err
}

// Delete deletes a vessel scoped to an organization
func (r *PostgresVesselRepository) Delete(ctx context.Context, orgID, id string) (bool, error) {
	query := `DELETE FROM vessels WHERE org_id = $1 AND id = $2`
	tag, err := r.db.Exec(ctx, query, orgID, id)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

// CountByOrg counts vessels belonging to an organization
func (r *PostgresVesselRepository) CountByOrg(ctx context.Context, orgID string) (int, error) {
	var count int
	query := `SELECT COUNT(*) FROM vessels WHERE org_id = $1`
	if err := r.db.QueryRow(ctx, query, orgID).Scan(&count); err != nil {
		return 0, err
	}
	return count, nil
}

func scanVessel(row pgx.Row) (*domain.Vessel, error) {
	vessel := &domain.Vessel{}
	var mmsi *string
	var pos []byte
	err := row.Scan(
		&vessel.ID,
		&vessel.OrgID,
		&vessel.Name,
		&vessel.IMO,
		&mmsi,
		&vessel.Type,
		&vessel.Flag,
		&vessel.Status,
		&pos,
		&vessel.CreatedAt,
		&vessel.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if mmsi != nil {
		vessel.MMSI = *mmsi
	}
	if len(pos) > 0 {
		p := &domain.Position{}
		if err := json.Unmarshal(pos, p); err != nil {
			return nil, err
		}
		vessel.LastPosition = p
	}
	return vessel, nil
}

func marshalPosition(pos *domain.Position) ([]byte, error) {
	if pos == nil {
		return nil, nil
	}
	return json.Marshal(pos)
}

func nullableString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
