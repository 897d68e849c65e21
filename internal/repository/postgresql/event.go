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

type businessEventRepositoryImpl struct {
	db *database.DB
}

func NewBusinessEventRepository(db *database.DB) calendar.BusinessEventRepository {
	return &businessEventRepositoryImpl{db: db}
}

const eventColumns = `id, business_id, name, event_type, start_date, end_date, expected_impact,
	description, location, is_recurring, recurrence_pattern, created_at, updated_at`

func scanEvent(row pgx.Row) (calendar.BusinessEvent, error) {
	var e calendar.BusinessEvent
	err := row.Scan(
		&e.ID, &e.BusinessID, &e.Name, &e.Kind, &e.StartDate, &e.EndDate,
		&e.ExpectedImpact, &e.Description, &e.Location, &e.IsRecurring,
		&e.Recurrence, &e.CreatedAt, &e.UpdatedAt,
	)
	return e, err
}

func (r *businessEventRepositoryImpl) queryEvents(ctx context.Context, query string, args ...any) ([]calendar.BusinessEvent, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var events []calendar.BusinessEvent
	for rows.Next() {
		e, err := scanEvent(rows)
		if err != nil {
			return nil, err
		}
		events = append(events, e)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return events, nil
}

// GetByID implements calendar.BusinessEventRepository.
func (r *businessEventRepositoryImpl) GetByID(ctx context.Context, id string) (calendar.BusinessEvent, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + eventColumns + ` FROM business_events WHERE id = $1`

	e, err := scanEvent(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return calendar.BusinessEvent{}, calendar.ErrEventNotFound
		}
		return calendar.BusinessEvent{}, fmt.Errorf("failed to get event %s: %w", id, err)
	}
	return e, nil
}

// GetByBusinessID implements calendar.BusinessEventRepository.
func (r *businessEventRepositoryImpl) GetByBusinessID(ctx context.Context, businessID string) ([]calendar.BusinessEvent, error) {
	query := `
		SELECT ` + eventColumns + `
		FROM business_events
		WHERE business_id = $1
		ORDER BY start_date DESC
	`
	return r.queryEvents(ctx, query, businessID)
}

// GetOverlappingRange implements calendar.BusinessEventRepository.
func (r *businessEventRepositoryImpl) GetOverlappingRange(ctx context.Context, businessID string, from, to time.Time) ([]calendar.BusinessEvent, error) {
	query := `
		SELECT ` + eventColumns + `
		FROM business_events
		WHERE business_id = $1 AND start_date <= $3 AND end_date >= $2
		ORDER BY start_date ASC, created_at ASC
	`
	return r.queryEvents(ctx, query, businessID, from, to)
}

// Create implements calendar.BusinessEventRepository.
func (r *businessEventRepositoryImpl) Create(ctx context.Context, newEvent calendar.BusinessEvent) (calendar.BusinessEvent, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO business_events (id, business_id, name, event_type, start_date, end_date, expected_impact,
			description, location, is_recurring, recurrence_pattern, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
		RETURNING ` + eventColumns

	created, err := scanEvent(q.QueryRow(ctx, query,
		newEvent.ID, newEvent.BusinessID, newEvent.Name, newEvent.Kind,
		newEvent.StartDate, newEvent.EndDate, newEvent.ExpectedImpact,
		newEvent.Description, newEvent.Location, newEvent.IsRecurring,
		newEvent.Recurrence, newEvent.CreatedAt, newEvent.UpdatedAt,
	))
	if err != nil {
		return calendar.BusinessEvent{}, err
	}
	return created, nil
}

// Update implements calendar.BusinessEventRepository.
func (r *businessEventRepositoryImpl) Update(ctx context.Context, updated calendar.BusinessEvent) (calendar.BusinessEvent, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE business_events
		SET name = $1, event_type = $2, start_date = $3, end_date = $4, expected_impact = $5,
			description = $6, location = $7, is_recurring = $8, recurrence_pattern = $9, updated_at = $10
		WHERE id = $11 AND business_id = $12
		RETURNING ` + eventColumns

	e, err := scanEvent(q.QueryRow(ctx, query,
		updated.Name, updated.Kind, updated.StartDate, updated.EndDate,
		updated.ExpectedImpact, updated.Description, updated.Location,
		updated.IsRecurring, updated.Recurrence, updated.UpdatedAt,
		updated.ID, updated.BusinessID,
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return calendar.BusinessEvent{}, calendar.ErrEventNotFound
		}
		return calendar.BusinessEvent{}, fmt.Errorf("failed to update event %s: %w", updated.ID, err)
	}
	return e, nil
}

// Delete implements calendar.BusinessEventRepository.
func (r *businessEventRepositoryImpl) Delete(ctx context.Context, id string, businessID string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM business_events WHERE id = $1 AND business_id = $2`, id, businessID)
	if err != nil {
		return fmt.Errorf("failed to delete event %s: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return calendar.ErrEventNotFound
	}
	return nil
}
