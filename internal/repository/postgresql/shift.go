package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/shiftmind/shiftmind-backend-go/internal/domain/shift"
	"github.com/shiftmind/shiftmind-backend-go/internal/pkg/database"
)

type shiftRepositoryImpl struct {
	db *database.DB
}

func NewShiftRepository(db *database.DB) shift.ShiftRepository {
	return &shiftRepositoryImpl{db: db}
}

// start_time and end_time are stored as TIME; the ::text cast and to_char
// keep them in the HH:MM wire format the cost engine parses.
const shiftColumns = `id, business_id, employee_id, date, to_char(start_time, 'HH24:MI'), to_char(end_time, 'HH24:MI'),
	break_minutes, hourly_rate, status, created_at, updated_at`

func scanShift(row pgx.Row) (shift.Shift, error) {
	var s shift.Shift
	err := row.Scan(
		&s.ID, &s.BusinessID, &s.EmployeeID, &s.Date, &s.StartTime, &s.EndTime,
		&s.BreakMinutes, &s.HourlyRate, &s.Status, &s.CreatedAt, &s.UpdatedAt,
	)
	return s, err
}

func (r *shiftRepositoryImpl) queryShifts(ctx context.Context, query string, args ...any) ([]shift.Shift, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var shifts []shift.Shift
	for rows.Next() {
		s, err := scanShift(rows)
		if err != nil {
			return nil, err
		}
		shifts = append(shifts, s)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return shifts, nil
}

// GetByID implements shift.ShiftRepository.
func (r *shiftRepositoryImpl) GetByID(ctx context.Context, id string) (shift.Shift, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + shiftColumns + ` FROM shifts WHERE id = $1`

	s, err := scanShift(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return shift.Shift{}, shift.ErrShiftNotFound
		}
		return shift.Shift{}, fmt.Errorf("failed to get shift %s: %w", id, err)
	}
	return s, nil
}

// GetByBusinessID implements shift.ShiftRepository.
func (r *shiftRepositoryImpl) GetByBusinessID(ctx context.Context, businessID string) ([]shift.Shift, error) {
	query := `
		SELECT ` + shiftColumns + `
		FROM shifts
		WHERE business_id = $1
		ORDER BY date, start_time
	`
	return r.queryShifts(ctx, query, businessID)
}

// GetByDateRange implements shift.ShiftRepository.
func (r *shiftRepositoryImpl) GetByDateRange(ctx context.Context, businessID string, from, to time.Time) ([]shift.Shift, error) {
	query := `
		SELECT ` + shiftColumns + `
		FROM shifts
		WHERE business_id = $1 AND date BETWEEN $2 AND $3
		ORDER BY date, start_time
	`
	return r.queryShifts(ctx, query, businessID, from, to)
}

// Create implements shift.ShiftRepository.
func (r *shiftRepositoryImpl) Create(ctx context.Context, newShift shift.Shift) (shift.Shift, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO shifts (id, business_id, employee_id, date, start_time, end_time, break_minutes, hourly_rate, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5::time, $6::time, $7, $8, $9, $10, $11)
		RETURNING ` + shiftColumns

	created, err := scanShift(q.QueryRow(ctx, query,
		newShift.ID, newShift.BusinessID, newShift.EmployeeID, newShift.Date,
		newShift.StartTime, newShift.EndTime, newShift.BreakMinutes,
		newShift.HourlyRate, newShift.Status, newShift.CreatedAt, newShift.UpdatedAt,
	))
	if err != nil {
		return shift.Shift{}, err
	}
	return created, nil
}

// Update implements shift.ShiftRepository.
func (r *shiftRepositoryImpl) Update(ctx context.Context, updated shift.Shift) (shift.Shift, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE shifts
		SET employee_id = $1, date = $2, start_time = $3::time, end_time = $4::time,
			break_minutes = $5, hourly_rate = $6, status = $7, updated_at = $8
		WHERE id = $9 AND business_id = $10
		RETURNING ` + shiftColumns

	s, err := scanShift(q.QueryRow(ctx, query,
		updated.EmployeeID, updated.Date, updated.StartTime, updated.EndTime,
		updated.BreakMinutes, updated.HourlyRate, updated.Status, updated.UpdatedAt,
		updated.ID, updated.BusinessID,
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return shift.Shift{}, shift.ErrShiftNotFound
		}
		return shift.Shift{}, fmt.Errorf("failed to update shift %s: %w", updated.ID, err)
	}
	return s, nil
}

// DeleteByEmployeeID implements shift.ShiftRepository.
func (r *shiftRepositoryImpl) DeleteByEmployeeID(ctx context.Context, employeeID string, businessID string) error {
	q := GetQuerier(ctx, r.db)

	if _, err := q.Exec(ctx, `DELETE FROM shifts WHERE employee_id = $1 AND business_id = $2`, employeeID, businessID); err != nil {
		return fmt.Errorf("failed to delete shifts of employee %s: %w", employeeID, err)
	}
	return nil
}

// Delete implements shift.ShiftRepository.
func (r *shiftRepositoryImpl) Delete(ctx context.Context, id string, businessID string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM shifts WHERE id = $1 AND business_id = $2`, id, businessID)
	if err != nil {
		return fmt.Errorf("failed to delete shift %s: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return shift.ErrShiftNotFound
	}
	return nil
}
