package forecast

import (
	"context"
	"fmt"

	"github.com/shiftmind/shiftmind-backend-go/internal/domain/calendar"
	"github.com/shiftmind/shiftmind-backend-go/internal/domain/forecast"
	"github.com/shiftmind/shiftmind-backend-go/internal/pkg/timeutil"
	"golang.org/x/sync/errgroup"
)

type ForecastServiceImpl struct {
	historyRepo     forecast.DemandHistoryRepository
	profileRepo     calendar.DemandProfileRepository
	overrideRepo    calendar.CalendarOverrideRepository
	eventRepo       calendar.BusinessEventRepository
	defaultLookback int
}

func NewForecastService(
	historyRepo forecast.DemandHistoryRepository,
	profileRepo calendar.DemandProfileRepository,
	overrideRepo calendar.CalendarOverrideRepository,
	eventRepo calendar.BusinessEventRepository,
	defaultLookback int,
) forecast.ForecastService {
	if defaultLookback <= 0 {
		defaultLookback = forecast.DefaultLookbackWeeks
	}
	return &ForecastServiceImpl{
		historyRepo:     historyRepo,
		profileRepo:     profileRepo,
		overrideRepo:    overrideRepo,
		eventRepo:       eventRepo,
		defaultLookback: defaultLookback,
	}
}

func (s *ForecastServiceImpl) GenerateWeekForecast(ctx context.Context, businessID string, week string, lookbackWeeks int) (forecast.WeekForecastResponse, error) {
	if lookbackWeeks <= 0 {
		lookbackWeeks = s.defaultLookback
	}

	monday, err := timeutil.ParseWeek(week)
	if err != nil {
		return forecast.WeekForecastResponse{}, err
	}
	sunday := monday.AddDate(0, 0, 6)

	// the baseline window ends the day before the target week starts
	lookbackStart := monday.AddDate(0, 0, -7*lookbackWeeks)
	lookbackEnd := monday.AddDate(0, 0, -1)

	var (
		history   []forecast.DemandRecord
		profiles  []calendar.DemandProfile
		overrides []calendar.CalendarOverride
		events    []calendar.BusinessEvent
	)

	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		history, err = s.historyRepo.GetRange(gCtx, businessID, lookbackStart, lookbackEnd)
		if err != nil {
			return fmt.Errorf("failed to load demand history: %w", err)
		}
		return nil
	})
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
		overrides, err = s.overrideRepo.GetByDateRange(gCtx, businessID, monday, sunday)
		if err != nil {
			return fmt.Errorf("failed to load overrides: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		events, err = s.eventRepo.GetOverlappingRange(gCtx, businessID, monday, sunday)
		if err != nil {
			return fmt.Errorf("failed to load events: %w", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return forecast.WeekForecastResponse{}, err
	}

	baseline := forecast.BaselineMovingAverage(history, lookbackWeeks)
	confidence := forecast.ConfidenceScores(history, baseline, lookbackWeeks)

	resp := forecast.WeekForecastResponse{
		Week:          week,
		WeekStart:     timeutil.DateKey(monday),
		LookbackWeeks: lookbackWeeks,
		Forecasts:     make([]forecast.HourlyForecastResponse, 0, 7*24),
	}

	for _, day := range timeutil.WeekDates(monday) {
		curve := calendar.ComposeMultipliers(profiles, overrides, events, day, calendar.MatchAllKinds)
		demand := forecast.ApplyMultipliers(baseline, curve)
		for hour := 0; hour < 24; hour++ {
			resp.Forecasts = append(resp.Forecasts, forecast.ToHourlyForecastResponse(forecast.HourlyForecast{
				Date:       day,
				Hour:       hour,
				Demand:     demand[hour],
				Confidence: confidence[hour],
				Baseline:   baseline[hour],
				Multiplier: curve[hour],
			}))
		}
	}

	return resp, nil
}
