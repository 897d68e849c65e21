package calendar

import "context"

// CalendarService defines business logic for demand profiles, date overrides
// and business events
type CalendarService interface {
	// ListProfiles lists a business's demand profiles ordered by priority
	ListProfiles(ctx context.Context, businessID string) ([]DemandProfileResponse, error)
	CreateProfile(ctx context.Context, businessID string, req CreateDemandProfileRequest) (DemandProfileResponse, error)
	UpdateProfile(ctx context.Context, id string, businessID string, req UpdateDemandProfileRequest) (DemandProfileResponse, error)
	DeleteProfile(ctx context.Context, id string, businessID string) error

	ListOverrides(ctx context.Context, businessID string) ([]CalendarOverrideResponse, error)
	CreateOverride(ctx context.Context, businessID string, req CreateCalendarOverrideRequest) (CalendarOverrideResponse, error)
	UpdateOverride(ctx context.Context, id string, businessID string, req UpdateCalendarOverrideRequest) (CalendarOverrideResponse, error)
	DeleteOverride(ctx context.Context, id string, businessID string) error

	ListEvents(ctx context.Context, businessID string) ([]BusinessEventResponse, error)
	CreateEvent(ctx context.Context, businessID string, req CreateBusinessEventRequest) (BusinessEventResponse, error)
	UpdateEvent(ctx context.Context, id string, businessID string, req UpdateBusinessEventRequest) (BusinessEventResponse, error)
	DeleteEvent(ctx context.Context, id string, businessID string) error

	// ResolveDay composes the effective multiplier curve for one date
	ResolveDay(ctx context.Context, businessID string, date string) (DayMultipliersResponse, error)
}
