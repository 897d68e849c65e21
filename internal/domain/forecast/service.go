package forecast

import "context"

// ForecastService defines business logic for demand forecasting
type ForecastService interface {
	// GenerateWeekForecast forecasts hourly demand for a target week like
	// 2025-W43, blending the historical baseline with the composed demand
	// multiplier curve of each day
	GenerateWeekForecast(ctx context.Context, businessID string, week string, lookbackWeeks int) (WeekForecastResponse, error)
}
