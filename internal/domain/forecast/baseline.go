package forecast

import (
	"math"
)

const hoursPerDay = 24

type hourStats struct {
	count int
	sum   float64
	sumSq float64
}

func statsByHour(history []DemandRecord) [hoursPerDay]hourStats {
	var stats [hoursPerDay]hourStats
	for _, rec := range history {
		if rec.Hour < 0 || rec.Hour >= hoursPerDay {
			continue
		}
		s := &stats[rec.Hour]
		s.count++
		s.sum += rec.Value
		s.sumSq += rec.Value * rec.Value
	}
	return stats
}

// sample standard deviation; zero below two observations
func (s hourStats) stddev() float64 {
	if s.count < 2 {
		return 0
	}
	n := float64(s.count)
	mean := s.sum / n
	variance := (s.sumSq - n*mean*mean) / (n - 1)
	if variance < 0 {
		variance = 0
	}
	return math.Sqrt(variance)
}

// BaselineMovingAverage derives a per-hour demand baseline from history. Each
// hour's mean is weighted by how much of the lookback window actually has
// data, so a single spike in sparse history barely moves the baseline. Hours
// with no observations sit at MinDemand.
func BaselineMovingAverage(history []DemandRecord, lookbackWeeks int) [hoursPerDay]float64 {
	if lookbackWeeks <= 0 {
		lookbackWeeks = DefaultLookbackWeeks
	}
	expected := float64(lookbackWeeks * 7)

	stats := statsByHour(history)
	var baseline [hoursPerDay]float64
	for h := 0; h < hoursPerDay; h++ {
		s := stats[h]
		if s.count == 0 {
			baseline[h] = MinDemand
			continue
		}
		mean := s.sum / float64(s.count)
		weight := math.Min(float64(s.count)/expected, 1.0)
		baseline[h] = math.Max(mean*weight, MinDemand)
	}
	return baseline
}

// ConfidenceScores rates each hour's forecast quality in [MinDemand, 1]. The
// score combines data availability against the lookback window with the
// coefficient of variation: sparse or noisy hours score low. An empty history
// scores MinDemand everywhere.
func ConfidenceScores(history []DemandRecord, baseline [hoursPerDay]float64, lookbackWeeks int) [hoursPerDay]float64 {
	var scores [hoursPerDay]float64
	if len(history) == 0 {
		for h := range scores {
			scores[h] = MinDemand
		}
		return scores
	}

	if lookbackWeeks <= 0 {
		lookbackWeeks = DefaultLookbackWeeks
	}
	expected := float64(lookbackWeeks * 7)

	stats := statsByHour(history)
	for h := 0; h < hoursPerDay; h++ {
		s := stats[h]
		if s.count == 0 {
			scores[h] = MinDemand
			continue
		}

		dataConfidence := math.Min(float64(s.count)/expected, 1.0)

		varianceConfidence := MinDemand
		if baseline[h] > 0 {
			cv := s.stddev() / baseline[h]
			varianceConfidence = math.Max(1.0-cv*0.5, MinDemand)
		}

		scores[h] = math.Min(dataConfidence*varianceConfidence, 1.0)
	}
	return scores
}

// ApplyMultipliers scales the baseline by a composed demand curve, flooring
// each hour at zero.
func ApplyMultipliers(baseline, multipliers [hoursPerDay]float64) [hoursPerDay]float64 {
	var adjusted [hoursPerDay]float64
	for h := 0; h < hoursPerDay; h++ {
		adjusted[h] = math.Max(baseline[h]*multipliers[h], 0)
	}
	return adjusted
}
