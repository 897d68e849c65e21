package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/shiftmind/shiftmind-backend-go/internal/domain/calendar"
	"github.com/shiftmind/shiftmind-backend-go/internal/pkg/database"
)

type demandProfileRepositoryImpl struct {
	db *database.DB
}

func NewDemandProfileRepository(db *database.DB) calendar.DemandProfileRepository {
	return &demandProfileRepositoryImpl{db: db}
}

const profileColumns = `id, business_id, name, profile_type, multiplier_data, is_active, priority, created_at, updated_at`

func scanProfile(row pgx.Row) (calendar.DemandProfile, error) {
	var p calendar.DemandProfile
	err := row.Scan(
		&p.ID, &p.BusinessID, &p.Name, &p.Kind, &p.Multipliers,
		&p.IsActive, &p.Priority, &p.CreatedAt, &p.UpdatedAt,
	)
	return p, err
}

// GetByID implements calendar.DemandProfileRepository.
func (r *demandProfileRepositoryImpl) GetByID(ctx context.Context, id string) (calendar.DemandProfile, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + profileColumns + ` FROM seasonal_profiles WHERE id = $1`

	p, err := scanProfile(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return calendar.DemandProfile{}, calendar.ErrProfileNotFound
		}
		return calendar.DemandProfile{}, fmt.Errorf("failed to get profile %s: %w", id, err)
	}
	return p, nil
}

// GetByBusinessID implements calendar.DemandProfileRepository.
func (r *demandProfileRepositoryImpl) GetByBusinessID(ctx context.Context, businessID string) ([]calendar.DemandProfile, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + profileColumns + `
		FROM seasonal_profiles
		WHERE business_id = $1
		ORDER BY priority ASC, name ASC
	`

	rows, err := q.Query(ctx, query, businessID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var profiles []calendar.DemandProfile
	for rows.Next() {
		p, err := scanProfile(rows)
		if err != nil {
			return nil, err
		}
		profiles = append(profiles, p)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return profiles, nil
}

// Create implements calendar.DemandProfileRepository.
func (r *demandProfileRepositoryImpl) Create(ctx context.Context, newProfile calendar.DemandProfile) (calendar.DemandProfile, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO seasonal_profiles (id, business_id, name, profile_type, multiplier_data, is_active, priority, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING ` + profileColumns

	created, err := scanProfile(q.QueryRow(ctx, query,
		newProfile.ID, newProfile.BusinessID, newProfile.Name, newProfile.Kind,
		newProfile.Multipliers, newProfile.IsActive, newProfile.Priority,
		newProfile.CreatedAt, newProfile.UpdatedAt,
	))
	if err != nil {
		return calendar.DemandProfile{}, err
	}
	return created, nil
}

// Update implements calendar.DemandProfileRepository.
func (r *demandProfileRepositoryImpl) Update(ctx context.Context, updated calendar.DemandProfile) (calendar.DemandProfile, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE seasonal_profiles
		SET name = $1, profile_type = $2, multiplier_data = $3, is_active = $4, priority = $5, updated_at = $6
		WHERE id = $7 AND business_id = $8
		RETURNING ` + profileColumns

	p, err := scanProfile(q.QueryRow(ctx, query,
		updated.Name, updated.Kind, updated.Multipliers, updated.IsActive,
		updated.Priority, updated.UpdatedAt, updated.ID, updated.BusinessID,
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return calendar.DemandProfile{}, calendar.ErrProfileNotFound
		}
		return calendar.DemandProfile{}, fmt.Errorf("failed to update profile %s: %w", updated.ID, err)
	}
	return p, nil
}

// Delete implements calendar.DemandProfileRepository.
func (r *demandProfileRepositoryImpl) Delete(ctx context.Context, id string, businessID string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM seasonal_profiles WHERE id = $1 AND business_id = $2`, id, businessID)
	if err != nil {
		return fmt.Errorf("failed to delete profile %s: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return calendar.ErrProfileNotFound
	}
	return nil
}
