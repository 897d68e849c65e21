package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/shiftmind/shiftmind-backend-go/internal/domain/calendar"
	"github.com/shiftmind/shiftmind-backend-go/internal/pkg/database"
)

type calendarOverrideRepositoryImpl struct {
	db *database.DB
}

func NewCalendarOverrideRepository(db *database.DB) calendar.CalendarOverrideRepository {
	return &calendarOverrideRepositoryImpl{db: db}
}

const overrideColumns = `id, business_id, date, override_type, multiplier, custom_hours, description, is_active, created_at, updated_at`

func scanOverride(row pgx.Row) (calendar.CalendarOverride, error) {
	var o calendar.CalendarOverride
	err := row.Scan(
		&o.ID, &o.BusinessID, &o.Date, &o.Kind, &o.Multiplier,
		&o.CustomHours, &o.Description, &o.IsActive, &o.CreatedAt, &o.UpdatedAt,
	)
	return o, err
}

func (r *calendarOverrideRepositoryImpl) queryOverrides(ctx context.Context, query string, args ...any) ([]calendar.CalendarOverride, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var overrides []calendar.CalendarOverride
	for rows.Next() {
		o, err := scanOverride(rows)
		if err != nil {
			return nil, err
		}
		overrides = append(overrides, o)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return overrides, nil
}

// GetByID implements calendar.CalendarOverrideRepository.
func (r *calendarOverrideRepositoryImpl) GetByID(ctx context.Context, id string) (calendar.CalendarOverride, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + overrideColumns + ` FROM calendar_overrides WHERE id = $1`

	o, err := scanOverride(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return calendar.CalendarOverride{}, calendar.ErrOverrideNotFound
		}
		return calendar.CalendarOverride{}, fmt.Errorf("failed to get override %s: %w", id, err)
	}
	return o, nil
}

// GetByBusinessID implements calendar.CalendarOverrideRepository.
func (r *calendarOverrideRepositoryImpl) GetByBusinessID(ctx context.Context, businessID string) ([]calendar.CalendarOverride, error) {
	query := `
		SELECT ` + overrideColumns + `
		FROM calendar_overrides
		WHERE business_id = $1
		ORDER BY date DESC
	`
	return r.queryOverrides(ctx, query, businessID)
}

// GetByDateRange implements calendar.CalendarOverrideRepository.
func (r *calendarOverrideRepositoryImpl) GetByDateRange(ctx context.Context, businessID string, from, to time.Time) ([]calendar.CalendarOverride, error) {
	query := `
		SELECT ` + overrideColumns + `
		FROM calendar_overrides
		WHERE business_id = $1 AND date BETWEEN $2 AND $3
		ORDER BY date ASC
	`
	return r.queryOverrides(ctx, query, businessID, from, to)
}

// Create implements calendar.CalendarOverrideRepository.
func (r *calendarOverrideRepositoryImpl) Create(ctx context.Context, newOverride calendar.CalendarOverride) (calendar.CalendarOverride, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO calendar_overrides (id, business_id, date, override_type, multiplier, custom_hours, description, is_active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING ` + overrideColumns

	created, err := scanOverride(q.QueryRow(ctx, query,
		newOverride.ID, newOverride.BusinessID, newOverride.Date, newOverride.Kind,
		newOverride.Multiplier, newOverride.CustomHours, newOverride.Description,
		newOverride.IsActive, newOverride.CreatedAt, newOverride.UpdatedAt,
	))
	if err != nil {
		return calendar.CalendarOverride{}, err
	}
	return created, nil
}

// Update implements calendar.CalendarOverrideRepository.
func (r *calendarOverrideRepositoryImpl) Update(ctx context.Context, updated calendar.CalendarOverride) (calendar.CalendarOverride, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE calendar_overrides
		SET date = $1, override_type = $2, multiplier = $3, custom_hours = $4, description = $5, is_active = $6, updated_at = $7
		WHERE id = $8 AND business_id = $9
		RETURNING ` + overrideColumns

	o, err := scanOverride(q.QueryRow(ctx, query,
		updated.Date, updated.Kind, updated.Multiplier, updated.CustomHours,
		updated.Description, updated.IsActive, updated.UpdatedAt,
		updated.ID, updated.BusinessID,
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return calendar.CalendarOverride{}, calendar.ErrOverrideNotFound
		}
		return calendar.CalendarOverride{}, fmt.Errorf("failed to update override %s: %w", updated.ID, err)
	}
	return o, nil
}

// Delete implements calendar.CalendarOverrideRepository.
func (r *calendarOverrideRepositoryImpl) Delete(ctx context.Context, id string, businessID string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM calendar_overrides WHERE id = $1 AND business_id = $2`, id, businessID)
	if err != nil {
		return fmt.Errorf("failed to delete override %s: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return calendar.ErrOverrideNotFound
	}
	return nil
}
