package calendar

import (
	"math"
	"testing"
	"time"

	"github.com/shiftmind/shiftmind-backend-go/internal/pkg/timeutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func flatCurve(v float64) map[string]float64 {
	m := make(map[string]float64, HoursPerDay)
	for h := 0; h < HoursPerDay; h++ {
		m[timeutil.FormatHourKey(h)] = v
	}
	return m
}

func ptr(v float64) *float64 { return &v }

var testDate = time.Date(2025, 10, 20, 0, 0, 0, 0, time.UTC)

func TestComposeMultipliersBaseline(t *testing.T) {
	curve := ComposeMultipliers(nil, nil, nil, testDate, nil)
	for h, v := range curve {
		assert.Equal(t, 1.0, v, "hour %d", h)
	}
}

func TestComposeMultipliersProfilePriority(t *testing.T) {
	profiles := []DemandProfile{
		{Name: "evening boost", Kind: ProfileKindWeekly, IsActive: true, Priority: 5,
			Multipliers: map[string]float64{"18": 3.0, "19": 3.0}},
		{Name: "base week", Kind: ProfileKindWeekly, IsActive: true, Priority: 1,
			Multipliers: flatCurve(1.5)},
	}

	curve := ComposeMultipliers(profiles, nil, nil, testDate, nil)

	// the low-priority base applies first, the boost overwrites its hours
	assert.Equal(t, 1.5, curve[10])
	assert.Equal(t, 3.0, curve[18])
	assert.Equal(t, 3.0, curve[19])
}

func TestComposeMultipliersInactiveProfileSkipped(t *testing.T) {
	profiles := []DemandProfile{
		{Kind: ProfileKindWeekly, IsActive: false, Multipliers: flatCurve(5.0)},
	}
	curve := ComposeMultipliers(profiles, nil, nil, testDate, nil)
	assert.Equal(t, 1.0, curve[12])
}

func TestComposeMultipliersNilMatcherWeeklyOnly(t *testing.T) {
	profiles := []DemandProfile{
		{Kind: ProfileKindSeasonal, IsActive: true, Multipliers: flatCurve(4.0)},
		{Kind: ProfileKindWeekly, IsActive: true, Multipliers: map[string]float64{"09": 2.0}},
	}

	curve := ComposeMultipliers(profiles, nil, nil, testDate, nil)

	assert.Equal(t, 2.0, curve[9])
	assert.Equal(t, 1.0, curve[10], "seasonal profile must not apply without a matcher")
}

func TestComposeMultipliersMatchAllKinds(t *testing.T) {
	profiles := []DemandProfile{
		{Kind: ProfileKindSeasonal, IsActive: true, Multipliers: flatCurve(4.0)},
	}
	curve := ComposeMultipliers(profiles, nil, nil, testDate, MatchAllKinds)
	assert.Equal(t, 4.0, curve[10])
}

func TestComposeMultipliersFlatOverride(t *testing.T) {
	profiles := []DemandProfile{
		{Kind: ProfileKindWeekly, IsActive: true, Multipliers: flatCurve(1.5)},
	}
	overrides := []CalendarOverride{
		{Date: testDate, Kind: OverrideKindHighDemand, Multiplier: ptr(2.0), IsActive: true},
	}

	curve := ComposeMultipliers(profiles, overrides, nil, testDate, nil)
	for h, v := range curve {
		assert.Equal(t, 2.0, v, "hour %d", h)
	}
}

func TestComposeMultipliersCustomHoursOverride(t *testing.T) {
	overrides := []CalendarOverride{
		{Date: testDate, Kind: OverrideKindSpecialHours, IsActive: true,
			CustomHours: map[string]float64{"08": 0.5, "09": 0.5}},
	}

	curve := ComposeMultipliers(nil, overrides, nil, testDate, nil)

	assert.Equal(t, 0.5, curve[8])
	assert.Equal(t, 0.5, curve[9])
	assert.Equal(t, 1.0, curve[10], "hours outside custom_hours keep their value")
}

func TestComposeMultipliersOverrideOnOtherDateIgnored(t *testing.T) {
	overrides := []CalendarOverride{
		{Date: testDate.AddDate(0, 0, 1), Kind: OverrideKindClosure, Multiplier: ptr(0), IsActive: true},
	}
	curve := ComposeMultipliers(nil, overrides, nil, testDate, nil)
	assert.Equal(t, 1.0, curve[12])
}

func TestComposeMultipliersEventImpact(t *testing.T) {
	events := []BusinessEvent{
		{Name: "street festival", StartDate: testDate, EndDate: testDate.AddDate(0, 0, 2), ExpectedImpact: ptr(20)},
	}

	curve := ComposeMultipliers(nil, nil, events, testDate, nil)
	for h, v := range curve {
		assert.InDelta(t, 1.2, v, 1e-9, "hour %d", h)
	}
}

func TestComposeMultipliersEventsCompose(t *testing.T) {
	events := []BusinessEvent{
		{StartDate: testDate, EndDate: testDate, ExpectedImpact: ptr(100)},
		{StartDate: testDate, EndDate: testDate, ExpectedImpact: ptr(50)},
	}

	curve := ComposeMultipliers(nil, nil, events, testDate, nil)
	assert.InDelta(t, 3.0, curve[12], 1e-9)
}

func TestComposeMultipliersEventOutOfRangeIgnored(t *testing.T) {
	events := []BusinessEvent{
		{StartDate: testDate.AddDate(0, 0, 1), EndDate: testDate.AddDate(0, 0, 3), ExpectedImpact: ptr(100)},
	}
	curve := ComposeMultipliers(nil, nil, events, testDate, nil)
	assert.Equal(t, 1.0, curve[12])
}

func TestComposeMultipliersClamped(t *testing.T) {
	profiles := []DemandProfile{
		{Kind: ProfileKindWeekly, IsActive: true, Multipliers: flatCurve(8.0)},
	}
	events := []BusinessEvent{
		{StartDate: testDate, EndDate: testDate, ExpectedImpact: ptr(100)},
		{StartDate: testDate, EndDate: testDate, ExpectedImpact: ptr(-200)},
	}

	high := ComposeMultipliers(profiles, nil, events[:1], testDate, nil)
	assert.Equal(t, MaxMultiplier, high[12])

	low := ComposeMultipliers(profiles, nil, events[1:], testDate, nil)
	assert.Equal(t, MinMultiplier, low[12])
}

func TestComposeMultipliersMalformedHoursSkipped(t *testing.T) {
	profiles := []DemandProfile{
		{Kind: ProfileKindWeekly, IsActive: true,
			Multipliers: map[string]float64{"09": 2.0, "bogus": 3.0, "10": math.NaN()}},
	}

	curve := ComposeMultipliers(profiles, nil, nil, testDate, nil)

	assert.Equal(t, 2.0, curve[9])
	assert.Equal(t, 1.0, curve[10], "NaN entry is skipped")
	assert.Equal(t, 1.0, curve[11])
}

func TestComposeMultipliersUnpaddedHourKeys(t *testing.T) {
	profiles := []DemandProfile{
		{Kind: ProfileKindWeekly, IsActive: true, Multipliers: map[string]float64{"7": 1.8}},
	}
	curve := ComposeMultipliers(profiles, nil, nil, testDate, nil)
	assert.Equal(t, 1.8, curve[7])
}

func TestNormalizedMultipliers(t *testing.T) {
	full := DemandProfile{Multipliers: flatCurve(1.2)}
	curve, err := full.NormalizedMultipliers()
	require.NoError(t, err)
	assert.Equal(t, 1.2, curve[0])
	assert.Equal(t, 1.2, curve[23])

	partial := DemandProfile{Multipliers: map[string]float64{"09": 2.0}}
	_, err = partial.NormalizedMultipliers()
	assert.ErrorIs(t, err, ErrIncompleteMultiplierData)
}
