package forecast

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func records(hour int, values ...float64) []DemandRecord {
	recs := make([]DemandRecord, 0, len(values))
	day := time.Date(2025, 10, 1, 0, 0, 0, 0, time.UTC)
	for i, v := range values {
		recs = append(recs, DemandRecord{Hour: hour, Value: v, Date: day.AddDate(0, 0, i)})
	}
	return recs
}

func TestBaselineMovingAverageEmptyHistory(t *testing.T) {
	baseline := BaselineMovingAverage(nil, 8)
	for h, v := range baseline {
		assert.Equal(t, MinDemand, v, "hour %d", h)
	}
}

func TestBaselineMovingAverageWeightsSparseData(t *testing.T) {
	// two observations against an 8-week window: mean 10, weight 2/56
	history := records(9, 10, 10)
	baseline := BaselineMovingAverage(history, 8)

	assert.InDelta(t, 10.0*2.0/56.0, baseline[9], 1e-9)
	assert.Equal(t, MinDemand, baseline[10])
}

func TestBaselineMovingAverageFullWindow(t *testing.T) {
	// 56 observations fill an 8-week window; weight caps at 1
	values := make([]float64, 56)
	for i := range values {
		values[i] = 20
	}
	baseline := BaselineMovingAverage(records(14, values...), 8)
	assert.InDelta(t, 20.0, baseline[14], 1e-9)
}

func TestBaselineMovingAverageFloor(t *testing.T) {
	history := records(3, 0.001)
	baseline := BaselineMovingAverage(history, 8)
	assert.Equal(t, MinDemand, baseline[3])
}

func TestBaselineMovingAverageIgnoresBadHours(t *testing.T) {
	history := []DemandRecord{
		{Hour: -1, Value: 100},
		{Hour: 24, Value: 100},
	}
	baseline := BaselineMovingAverage(history, 8)
	for h, v := range baseline {
		assert.Equal(t, MinDemand, v, "hour %d", h)
	}
}

func TestConfidenceScoresEmptyHistory(t *testing.T) {
	var baseline [24]float64
	scores := ConfidenceScores(nil, baseline, 8)
	for h, v := range scores {
		assert.Equal(t, MinDemand, v, "hour %d", h)
	}
}

func TestConfidenceScoresStableFullData(t *testing.T) {
	values := make([]float64, 56)
	for i := range values {
		values[i] = 20
	}
	history := records(14, values...)
	baseline := BaselineMovingAverage(history, 8)
	scores := ConfidenceScores(history, baseline, 8)

	// full window, zero variance: full confidence
	assert.InDelta(t, 1.0, scores[14], 1e-9)
	// hours without data stay at the floor
	assert.Equal(t, MinDemand, scores[15])
}

func TestConfidenceScoresDropWithVariance(t *testing.T) {
	stable := make([]float64, 56)
	noisy := make([]float64, 56)
	for i := range stable {
		stable[i] = 20
		noisy[i] = 20
		if i%2 == 0 {
			noisy[i] = 5
		}
	}

	stableHistory := records(9, stable...)
	noisyHistory := records(9, noisy...)

	stableScores := ConfidenceScores(stableHistory, BaselineMovingAverage(stableHistory, 8), 8)
	noisyScores := ConfidenceScores(noisyHistory, BaselineMovingAverage(noisyHistory, 8), 8)

	assert.Less(t, noisyScores[9], stableScores[9])
	assert.GreaterOrEqual(t, noisyScores[9], MinDemand)
}

func TestConfidenceScoresCappedAtOne(t *testing.T) {
	values := make([]float64, 100) // more observations than the window expects
	for i := range values {
		values[i] = 20
	}
	history := records(9, values...)
	scores := ConfidenceScores(history, BaselineMovingAverage(history, 8), 8)
	assert.LessOrEqual(t, scores[9], 1.0)
}

func TestApplyMultipliers(t *testing.T) {
	var baseline, multipliers [24]float64
	for h := range baseline {
		baseline[h] = 10
		multipliers[h] = 1
	}
	multipliers[18] = 2.5
	multipliers[3] = 0

	adjusted := ApplyMultipliers(baseline, multipliers)

	assert.InDelta(t, 10.0, adjusted[9], 1e-9)
	assert.InDelta(t, 25.0, adjusted[18], 1e-9)
	assert.Equal(t, 0.0, adjusted[3])
}
