package forecast

import "time"

// DefaultLookbackWeeks is how far back the baseline looks when the caller
// does not say otherwise.
const DefaultLookbackWeeks = 8

// MinDemand is the floor for baseline and confidence values; hours without
// history never drop to hard zero.
const MinDemand = 0.1

// DemandRecord is one observed demand value for an hour of a day.
type DemandRecord struct {
	BusinessID string
	Date       time.Time
	Hour       int
	Value      float64
}

// HourlyForecast is the forecast for one hour of one date in the target week.
type HourlyForecast struct {
	Date       time.Time
	Hour       int
	Demand     float64
	Confidence float64
	Baseline   float64
	Multiplier float64
}
