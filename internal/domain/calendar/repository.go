package calendar

import (
	"context"
	"time"
)

type DemandProfileRepository interface {
	GetByID(ctx context.Context, id string) (DemandProfile, error)
	GetByBusinessID(ctx context.Context, businessID string) ([]DemandProfile, error)
	Create(ctx context.Context, newProfile DemandProfile) (DemandProfile, error)
	Update(ctx context.Context, updated DemandProfile) (DemandProfile, error)
	Delete(ctx context.Context, id string, businessID string) error
}

type CalendarOverrideRepository interface {
	GetByID(ctx context.Context, id string) (CalendarOverride, error)
	GetByBusinessID(ctx context.Context, businessID string) ([]CalendarOverride, error)
	GetByDateRange(ctx context.Context, businessID string, from, to time.Time) ([]CalendarOverride, error)
	Create(ctx context.Context, newOverride CalendarOverride) (CalendarOverride, error)
	Update(ctx context.Context, updated CalendarOverride) (CalendarOverride, error)
	Delete(ctx context.Context, id string, businessID string) error
}

type BusinessEventRepository interface {
	GetByID(ctx context.Context, id string) (BusinessEvent, error)
	GetByBusinessID(ctx context.Context, businessID string) ([]BusinessEvent, error)
	GetOverlappingRange(ctx context.Context, businessID string, from, to time.Time) ([]BusinessEvent, error)
	Create(ctx context.Context, newEvent BusinessEvent) (BusinessEvent, error)
	Update(ctx context.Context, updated BusinessEvent) (BusinessEvent, error)
	Delete(ctx context.Context, id string, businessID string) error
}
