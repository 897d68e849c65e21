package calendar

import "time"

type ProfileKind string

const (
	ProfileKindWeekly   ProfileKind = "weekly"
	ProfileKindMonthly  ProfileKind = "monthly"
	ProfileKindSeasonal ProfileKind = "seasonal"
	ProfileKindHoliday  ProfileKind = "holiday"
)

var ProfileKindValues = []string{
	string(ProfileKindWeekly),
	string(ProfileKindMonthly),
	string(ProfileKindSeasonal),
	string(ProfileKindHoliday),
}

// DemandProfile is a recurring 24-hour demand multiplier curve. Multipliers
// maps zero-padded hour keys ("00".."23") to multipliers; unpadded keys are
// tolerated when reading.
type DemandProfile struct {
	ID          string
	BusinessID  string
	Name        string
	Kind        ProfileKind
	Multipliers map[string]float64
	IsActive    bool
	Priority    int
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

type OverrideKind string

const (
	OverrideKindHoliday      OverrideKind = "holiday"
	OverrideKindClosure      OverrideKind = "closure"
	OverrideKindSpecialHours OverrideKind = "special_hours"
	OverrideKindHighDemand   OverrideKind = "high_demand"
)

var OverrideKindValues = []string{
	string(OverrideKindHoliday),
	string(OverrideKindClosure),
	string(OverrideKindSpecialHours),
	string(OverrideKindHighDemand),
}

// CalendarOverride pins a single date to either a flat multiplier for the
// whole day or custom multipliers for specific hours.
type CalendarOverride struct {
	ID          string
	BusinessID  string
	Date        time.Time
	Kind        OverrideKind
	Multiplier  *float64
	CustomHours map[string]float64
	Description string
	IsActive    bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// BusinessEvent scales demand over an inclusive date range. Kind is free-form
// (concert, convention, strike...). ExpectedImpact is a percentage: +20 means
// demand times 1.2 for every hour of every day in range.
type BusinessEvent struct {
	ID             string
	BusinessID     string
	Name           string
	Kind           string
	StartDate      time.Time
	EndDate        time.Time
	ExpectedImpact *float64
	Description    *string
	Location       *string
	IsRecurring    bool
	Recurrence     map[string]any
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// ActiveOn reports whether the event covers the given calendar day. Both
// range ends are inclusive.
func (e BusinessEvent) ActiveOn(date time.Time) bool {
	day := midnightUTC(date)
	return !day.Before(midnightUTC(e.StartDate)) && !day.After(midnightUTC(e.EndDate))
}

func midnightUTC(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
