package costing

import (
	"context"

	"github.com/shiftmind/shiftmind-backend-go/internal/domain/shift"
)

// ScheduleService defines business logic for shift scheduling and costing
type ScheduleService interface {
	// ListShifts lists all shifts of a business with per-shift cost attached
	ListShifts(ctx context.Context, businessID string) ([]shift.ShiftResponse, error)

	// CreateShift schedules a new shift, snapshotting the employee's rate
	// when the request does not carry one
	CreateShift(ctx context.Context, businessID string, req shift.CreateShiftRequest) (shift.ShiftResponse, error)

	// UpdateShift updates an existing shift
	UpdateShift(ctx context.Context, id string, businessID string, req shift.UpdateShiftRequest) (shift.ShiftResponse, error)

	// DeleteShift removes a shift
	DeleteShift(ctx context.Context, id string, businessID string) error

	// GetWeekSchedule builds the weekly view for a week string like 2025-W43:
	// the week's shifts, the cost summary, and an optional budget snapshot
	GetWeekSchedule(ctx context.Context, businessID string, week string, opts WeekScheduleOptions) (WeekScheduleResponse, error)

	// RelocateShift moves a shift to a new date and start time and re-runs
	// the aggregation over the whole week
	RelocateShift(ctx context.Context, id string, businessID string, req shift.RelocateShiftRequest) (RelocateShiftResponse, error)
}
