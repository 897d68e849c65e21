package shift

import (
	"context"
	"time"
)

type ShiftRepository interface {
	GetByID(ctx context.Context, id string) (Shift, error)
	GetByBusinessID(ctx context.Context, businessID string) ([]Shift, error)
	GetByDateRange(ctx context.Context, businessID string, from, to time.Time) ([]Shift, error)
	Create(ctx context.Context, newShift Shift) (Shift, error)
	Update(ctx context.Context, updated Shift) (Shift, error)
	Delete(ctx context.Context, id string, businessID string) error
	DeleteByEmployeeID(ctx context.Context, employeeID string, businessID string) error
}
