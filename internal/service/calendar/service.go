package calendar

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shiftmind/shiftmind-backend-go/internal/domain/calendar"
	"github.com/shiftmind/shiftmind-backend-go/internal/pkg/timeutil"
	"golang.org/x/sync/errgroup"
)

type CalendarServiceImpl struct {
	profileRepo  calendar.DemandProfileRepository
	overrideRepo calendar.CalendarOverrideRepository
	eventRepo    calendar.BusinessEventRepository
}

func NewCalendarService(
	profileRepo calendar.DemandProfileRepository,
	overrideRepo calendar.CalendarOverrideRepository,
	eventRepo calendar.BusinessEventRepository,
) calendar.CalendarService {
	return &CalendarServiceImpl{
		profileRepo:  profileRepo,
		overrideRepo: overrideRepo,
		eventRepo:    eventRepo,
	}
}

func boolOrDefault(v *bool, def bool) bool {
	if v == nil {
		return def
	}
	return *v
}

// ==================== PROFILE OPERATIONS ====================

func (s *CalendarServiceImpl) ListProfiles(ctx context.Context, businessID string) ([]calendar.DemandProfileResponse, error) {
	profiles, err := s.profileRepo.GetByBusinessID(ctx, businessID)
	if err != nil {
		return nil, fmt.Errorf("failed to list profiles: %w", err)
	}

	responses := make([]calendar.DemandProfileResponse, 0, len(profiles))
	for _, p := range profiles {
		responses = append(responses, calendar.ToDemandProfileResponse(p))
	}
	return responses, nil
}

func (s *CalendarServiceImpl) CreateProfile(ctx context.Context, businessID string, req calendar.CreateDemandProfileRequest) (calendar.DemandProfileResponse, error) {
	if err := req.Validate(); err != nil {
		return calendar.DemandProfileResponse{}, err
	}

	now := time.Now()
	created, err := s.profileRepo.Create(ctx, calendar.DemandProfile{
		ID:          uuid.NewString(),
		BusinessID:  businessID,
		Name:        req.Name,
		Kind:        calendar.ProfileKind(req.Kind),
		Multipliers: req.Multipliers,
		IsActive:    boolOrDefault(req.IsActive, true),
		Priority:    req.Priority,
		CreatedAt:   now,
		UpdatedAt:   now,
	})
	if err != nil {
		return calendar.DemandProfileResponse{}, fmt.Errorf("failed to create profile: %w", err)
	}

	return calendar.ToDemandProfileResponse(created), nil
}

func (s *CalendarServiceImpl) UpdateProfile(ctx context.Context, id string, businessID string, req calendar.UpdateDemandProfileRequest) (calendar.DemandProfileResponse, error) {
	if err := req.Validate(); err != nil {
		return calendar.DemandProfileResponse{}, err
	}

	existing, err := s.profileRepo.GetByID(ctx, id)
	if err != nil {
		return calendar.DemandProfileResponse{}, err
	}
	if existing.BusinessID != businessID {
		return calendar.DemandProfileResponse{}, calendar.ErrProfileNotFound
	}

	existing.Name = req.Name
	existing.Kind = calendar.ProfileKind(req.Kind)
	existing.Multipliers = req.Multipliers
	existing.IsActive = boolOrDefault(req.IsActive, existing.IsActive)
	existing.Priority = req.Priority
	existing.UpdatedAt = time.Now()

	updated, err := s.profileRepo.Update(ctx, existing)
	if err != nil {
		return calendar.DemandProfileResponse{}, fmt.Errorf("failed to update profile: %w", err)
	}

	return calendar.ToDemandProfileResponse(updated), nil
}

func (s *CalendarServiceImpl) DeleteProfile(ctx context.Context, id string, businessID string) error {
	return s.profileRepo.Delete(ctx, id, businessID)
}

// ==================== OVERRIDE OPERATIONS ====================

func (s *CalendarServiceImpl) ListOverrides(ctx context.Context, businessID string) ([]calendar.CalendarOverrideResponse, error) {
	overrides, err := s.overrideRepo.GetByBusinessID(ctx, businessID)
	if err != nil {
		return nil, fmt.Errorf("failed to list overrides: %w", err)
	}

	responses := make([]calendar.CalendarOverrideResponse, 0, len(overrides))
	for _, o := range overrides {
		responses = append(responses, calendar.ToCalendarOverrideResponse(o))
	}
	return responses, nil
}

func (s *CalendarServiceImpl) CreateOverride(ctx context.Context, businessID string, req calendar.CreateCalendarOverrideRequest) (calendar.CalendarOverrideResponse, error) {
	if err := req.Validate(); err != nil {
		return calendar.CalendarOverrideResponse{}, err
	}

	date, _ := time.Parse(timeutil.DateLayout, req.Date)

	now := time.Now()
	created, err := s.overrideRepo.Create(ctx, calendar.CalendarOverride{
		ID:          uuid.NewString(),
		BusinessID:  businessID,
		Date:        date,
		Kind:        calendar.OverrideKind(req.Kind),
		Multiplier:  req.Multiplier,
		CustomHours: req.CustomHours,
		Description: req.Description,
		IsActive:    boolOrDefault(req.IsActive, true),
		CreatedAt:   now,
		UpdatedAt:   now,
	})
	if err != nil {
		return calendar.CalendarOverrideResponse{}, fmt.Errorf("failed to create override: %w", err)
	}

	return calendar.ToCalendarOverrideResponse(created), nil
}

func (s *CalendarServiceImpl) UpdateOverride(ctx context.Context, id string, businessID string, req calendar.UpdateCalendarOverrideRequest) (calendar.CalendarOverrideResponse, error) {
	if err := req.Validate(); err != nil {
		return calendar.CalendarOverrideResponse{}, err
	}

	existing, err := s.overrideRepo.GetByID(ctx, id)
	if err != nil {
		return calendar.CalendarOverrideResponse{}, err
	}
	if existing.BusinessID != businessID {
		return calendar.CalendarOverrideResponse{}, calendar.ErrOverrideNotFound
	}

	date, _ := time.Parse(timeutil.DateLayout, req.Date)

	existing.Date = date
	existing.Kind = calendar.OverrideKind(req.Kind)
	existing.Multiplier = req.Multiplier
	existing.CustomHours = req.CustomHours
	existing.Description = req.Description
	existing.IsActive = boolOrDefault(req.IsActive, existing.IsActive)
	existing.UpdatedAt = time.Now()

	updated, err := s.overrideRepo.Update(ctx, existing)
	if err != nil {
		return calendar.CalendarOverrideResponse{}, fmt.Errorf("failed to update override: %w", err)
	}

	return calendar.ToCalendarOverrideResponse(updated), nil
}

func (s *CalendarServiceImpl) DeleteOverride(ctx context.Context, id string, businessID string) error {
	return s.overrideRepo.Delete(ctx, id, businessID)
}

// ==================== EVENT OPERATIONS ====================

func (s *CalendarServiceImpl) ListEvents(ctx context.Context, businessID string) ([]calendar.BusinessEventResponse, error) {
	events, err := s.eventRepo.GetByBusinessID(ctx, businessID)
	if err != nil {
		return nil, fmt.Errorf("failed to list events: %w", err)
	}

	responses := make([]calendar.BusinessEventResponse, 0, len(events))
	for _, e := range events {
		responses = append(responses, calendar.ToBusinessEventResponse(e))
	}
	return responses, nil
}

func (s *CalendarServiceImpl) CreateEvent(ctx context.Context, businessID string, req calendar.CreateBusinessEventRequest) (calendar.BusinessEventResponse, error) {
	if err := req.Validate(); err != nil {
		return calendar.BusinessEventResponse{}, err
	}

	startDate, _ := time.Parse(timeutil.DateLayout, req.StartDate)
	endDate, _ := time.Parse(timeutil.DateLayout, req.EndDate)

	now := time.Now()
	created, err := s.eventRepo.Create(ctx, calendar.BusinessEvent{
		ID:             uuid.NewString(),
		BusinessID:     businessID,
		Name:           req.Name,
		Kind:           req.Kind,
		StartDate:      startDate,
		EndDate:        endDate,
		ExpectedImpact: req.ExpectedImpact,
		Description:    req.Description,
		Location:       req.Location,
		IsRecurring:    req.IsRecurring,
		Recurrence:     req.Recurrence,
		CreatedAt:      now,
		UpdatedAt:      now,
	})
	if err != nil {
		return calendar.BusinessEventResponse{}, fmt.Errorf("failed to create event: %w", err)
	}

	return calendar.ToBusinessEventResponse(created), nil
}

func (s *CalendarServiceImpl) UpdateEvent(ctx context.Context, id string, businessID string, req calendar.UpdateBusinessEventRequest) (calendar.BusinessEventResponse, error) {
	if err := req.Validate(); err != nil {
		return calendar.BusinessEventResponse{}, err
	}

	existing, err := s.eventRepo.GetByID(ctx, id)
	if err != nil {
		return calendar.BusinessEventResponse{}, err
	}
	if existing.BusinessID != businessID {
		return calendar.BusinessEventResponse{}, calendar.ErrEventNotFound
	}

	startDate, _ := time.Parse(timeutil.DateLayout, req.StartDate)
	endDate, _ := time.Parse(timeutil.DateLayout, req.EndDate)

	existing.Name = req.Name
	existing.Kind = req.Kind
	existing.StartDate = startDate
	existing.EndDate = endDate
	existing.ExpectedImpact = req.ExpectedImpact
	existing.Description = req.Description
	existing.Location = req.Location
	existing.IsRecurring = req.IsRecurring
	existing.Recurrence = req.Recurrence
	existing.UpdatedAt = time.Now()

	updated, err := s.eventRepo.Update(ctx, existing)
	if err != nil {
		return calendar.BusinessEventResponse{}, fmt.Errorf("failed to update event: %w", err)
	}

	return calendar.ToBusinessEventResponse(updated), nil
}

func (s *CalendarServiceImpl) DeleteEvent(ctx context.Context, id string, businessID string) error {
	return s.eventRepo.Delete(ctx, id, businessID)
}

// ==================== DAY RESOLUTION ====================

// loadCurveInputs fetches the three composition inputs for a date range in
// parallel.
func (s *CalendarServiceImpl) loadCurveInputs(ctx context.Context, businessID string, from, to time.Time) ([]calendar.DemandProfile, []calendar.CalendarOverride, []calendar.BusinessEvent, error) {
	var (
		profiles  []calendar.DemandProfile
		overrides []calendar.CalendarOverride
		events    []calendar.BusinessEvent
	)

	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		profiles, err = s.profileRepo.GetByBusinessID(gCtx, businessID)
		if err != nil {
			return fmt.Errorf("failed to load profiles: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		overrides, err = s.overrideRepo.GetByDateRange(gCtx, businessID, from, to)
		if err != nil {
			return fmt.Errorf("failed to load overrides: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		events, err = s.eventRepo.GetOverlappingRange(gCtx, businessID, from, to)
		if err != nil {
			return fmt.Errorf("failed to load events: %w", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, nil, nil, err
	}
	return profiles, overrides, events, nil
}

func (s *CalendarServiceImpl) ResolveDay(ctx context.Context, businessID string, date string) (calendar.DayMultipliersResponse, error) {
	day, err := time.Parse(timeutil.DateLayout, date)
	if err != nil {
		return calendar.DayMultipliersResponse{}, fmt.Errorf("invalid date %q, expected YYYY-MM-DD", date)
	}

	profiles, overrides, events, err := s.loadCurveInputs(ctx, businessID, day, day)
	if err != nil {
		return calendar.DayMultipliersResponse{}, err
	}

	curve := calendar.ComposeMultipliers(profiles, overrides, events, day, calendar.MatchAllKinds)

	multipliers := make(map[string]float64, len(curve))
	for h, v := range curve {
		multipliers[timeutil.FormatHourKey(h)] = v
	}
	return calendar.DayMultipliersResponse{
		Date:        date,
		Multipliers: multipliers,
	}, nil
}
