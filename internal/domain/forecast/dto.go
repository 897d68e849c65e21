package forecast

import (
	"math"

	"github.com/shiftmind/shiftmind-backend-go/internal/pkg/timeutil"
)

type HourlyForecastResponse struct {
	Date       string  `json:"date"`
	Hour       int     `json:"hour_of_day"`
	Demand     float64 `json:"forecasted_demand"`
	Confidence float64 `json:"confidence_score"`
	Baseline   float64 `json:"baseline_value"`
	Multiplier float64 `json:"applied_multiplier"`
}

type WeekForecastResponse struct {
	Week          string                   `json:"week"`
	WeekStart     string                   `json:"week_start"`
	LookbackWeeks int                      `json:"lookback_weeks"`
	Forecasts     []HourlyForecastResponse `json:"forecasts"`
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func ToHourlyForecastResponse(f HourlyForecast) HourlyForecastResponse {
	return HourlyForecastResponse{
		Date:       timeutil.DateKey(f.Date),
		Hour:       f.Hour,
		Demand:     round2(f.Demand),
		Confidence: round2(f.Confidence),
		Baseline:   round2(f.Baseline),
		Multiplier: f.Multiplier,
	}
}
