package calendar

import (
	"math"
	"sort"
	"strconv"
	"time"

	"github.com/shiftmind/shiftmind-backend-go/internal/pkg/timeutil"
)

const (
	HoursPerDay   = 24
	MinMultiplier = 0.0
	MaxMultiplier = 10.0
)

// KindMatcher decides whether a non-weekly profile applies to a date. Weekly
// profiles always apply. A nil matcher limits composition to weekly profiles.
type KindMatcher func(p DemandProfile, date time.Time) bool

// MatchAllKinds treats every active profile as applicable regardless of kind,
// the behavior the demand forecaster uses.
func MatchAllKinds(DemandProfile, time.Time) bool { return true }

// hourValue looks up the multiplier for an hour, accepting both "07" and "7"
// keys. NaN and infinite values count as missing.
func hourValue(multipliers map[string]float64, hour int) (float64, bool) {
	v, ok := multipliers[timeutil.FormatHourKey(hour)]
	if !ok {
		v, ok = multipliers[strconv.Itoa(hour)]
	}
	if !ok || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	return v, true
}

// NormalizedMultipliers resolves the profile's hour map into a dense 24-entry
// curve. It fails with ErrIncompleteMultiplierData when any hour is missing
// or unusable.
func (p DemandProfile) NormalizedMultipliers() ([HoursPerDay]float64, error) {
	var curve [HoursPerDay]float64
	for h := 0; h < HoursPerDay; h++ {
		v, ok := hourValue(p.Multipliers, h)
		if !ok {
			return curve, ErrIncompleteMultiplierData
		}
		curve[h] = v
	}
	return curve, nil
}

// ComposeMultipliers builds the effective demand curve for one date.
//
// The curve starts flat at 1.0. Active profiles apply in ascending priority
// order (stable for ties), each overwriting the hours it defines, so a
// higher-priority profile wins where both speak. The date's active calendar
// override comes next: a flat multiplier replaces all 24 hours, custom hours
// replace only the hours they name. Events covering the date then scale the
// whole curve multiplicatively in input order. Hours with malformed data are
// skipped rather than failing the whole day, and every hour ends up clamped
// to [MinMultiplier, MaxMultiplier].
func ComposeMultipliers(profiles []DemandProfile, overrides []CalendarOverride, events []BusinessEvent, date time.Time, matches KindMatcher) [HoursPerDay]float64 {
	var curve [HoursPerDay]float64
	for h := range curve {
		curve[h] = 1.0
	}

	applicable := make([]DemandProfile, 0, len(profiles))
	for _, p := range profiles {
		if !p.IsActive {
			continue
		}
		if p.Kind != ProfileKindWeekly && (matches == nil || !matches(p, date)) {
			continue
		}
		applicable = append(applicable, p)
	}
	sort.SliceStable(applicable, func(i, j int) bool {
		return applicable[i].Priority < applicable[j].Priority
	})
	for _, p := range applicable {
		for h := 0; h < HoursPerDay; h++ {
			if v, ok := hourValue(p.Multipliers, h); ok {
				curve[h] = v
			}
		}
	}

	for _, o := range overrides {
		if !o.IsActive || !timeutil.SameDate(o.Date, date) {
			continue
		}
		if o.Multiplier != nil {
			for h := range curve {
				curve[h] = *o.Multiplier
			}
			continue
		}
		for h := 0; h < HoursPerDay; h++ {
			if v, ok := hourValue(o.CustomHours, h); ok {
				curve[h] = v
			}
		}
	}

	for _, e := range events {
		if !e.ActiveOn(date) || e.ExpectedImpact == nil {
			continue
		}
		factor := 1 + *e.ExpectedImpact/100
		for h := range curve {
			curve[h] *= factor
		}
	}

	for h := range curve {
		curve[h] = math.Min(math.Max(curve[h], MinMultiplier), MaxMultiplier)
	}
	return curve
}
