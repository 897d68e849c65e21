package timeutil

import (
	"fmt"
	"regexp"
	"strconv"
	"time"
)

const (
	MinutesPerDay = 24 * 60
	DateLayout    = "2006-01-02"
)

var clockRegex = regexp.MustCompile(`^([01][0-9]|2[0-3]):([0-5][0-9])$`)

// ParseClock parses a wall-clock string in HH:MM format into minutes since
// midnight.
func ParseClock(s string) (int, error) {
	m := clockRegex.FindStringSubmatch(s)
	if m == nil {
		return 0, fmt.Errorf("invalid clock time %q, expected HH:MM", s)
	}
	hours, _ := strconv.Atoi(m[1])
	minutes, _ := strconv.Atoi(m[2])
	return hours*60 + minutes, nil
}

// FormatClock converts minutes since midnight back to HH:MM. Values outside a
// single day wrap around.
func FormatClock(minutes int) string {
	minutes = ((minutes % MinutesPerDay) + MinutesPerDay) % MinutesPerDay
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}

var weekRegex = regexp.MustCompile(`^(\d{4})-W(\d{1,2})$`)

// ParseWeek parses a week string like "2025-W43" and returns the Monday of
// that week. Week 1 is the week containing January 1st.
func ParseWeek(s string) (time.Time, error) {
	m := weekRegex.FindStringSubmatch(s)
	if m == nil {
		return time.Time{}, fmt.Errorf("invalid week %q, expected YYYY-WNN", s)
	}
	year, _ := strconv.Atoi(m[1])
	week, _ := strconv.Atoi(m[2])
	if week < 1 || week > 53 {
		return time.Time{}, fmt.Errorf("invalid week number %d", week)
	}

	jan1 := time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
	daysSinceMonday := (int(jan1.Weekday()) + 6) % 7
	week1Monday := jan1.AddDate(0, 0, -daysSinceMonday)
	return week1Monday.AddDate(0, 0, (week-1)*7), nil
}

// WeekDates returns the seven dates of the week starting at monday.
func WeekDates(monday time.Time) []time.Time {
	dates := make([]time.Time, 7)
	for i := range dates {
		dates[i] = monday.AddDate(0, 0, i)
	}
	return dates
}

// FormatHourKey zero-pads an hour-of-day into the "00".."23" keys used by
// hourly multiplier maps.
func FormatHourKey(hour int) string {
	return fmt.Sprintf("%02d", hour)
}

// DateKey formats a date as YYYY-MM-DD, the key used by daily aggregates.
func DateKey(t time.Time) string {
	return t.Format(DateLayout)
}

// SameDate reports whether a and b fall on the same calendar day, ignoring
// the time-of-day and location offsets.
func SameDate(a, b time.Time) bool {
	return a.Year() == b.Year() && a.YearDay() == b.YearDay()
}
