package timeutil

import (
	"testing"
	"time"
)

func TestParseClock(t *testing.T) {
	cases := []struct {
		input   string
		want    int
		wantErr bool
	}{
		{"00:00", 0, false},
		{"09:30", 570, false},
		{"23:59", 1439, false},
		{"24:00", 0, true},
		{"9:30", 0, true},
		{"09:60", 0, true},
		{"", 0, true},
		{"abc", 0, true},
	}
	for _, c := range cases {
		got, err := ParseClock(c.input)
		if c.wantErr {
			if err == nil {
				t.Errorf("ParseClock(%q) expected error, got %d", c.input, got)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseClock(%q) unexpected error: %v", c.input, err)
			continue
		}
		if got != c.want {
			t.Errorf("ParseClock(%q) = %d, want %d", c.input, got, c.want)
		}
	}
}

func TestFormatClock(t *testing.T) {
	cases := []struct {
		input int
		want  string
	}{
		{0, "00:00"},
		{570, "09:30"},
		{1439, "23:59"},
		{1440, "00:00"}, // wraps to next day
		{1500, "01:00"},
	}
	for _, c := range cases {
		if got := FormatClock(c.input); got != c.want {
			t.Errorf("FormatClock(%d) = %q, want %q", c.input, got, c.want)
		}
	}
}

func TestParseWeek(t *testing.T) {
	monday, err := ParseWeek("2025-W43")
	if err != nil {
		t.Fatalf("ParseWeek returned error: %v", err)
	}
	if monday.Weekday() != time.Monday {
		t.Errorf("ParseWeek result is a %v, want Monday", monday.Weekday())
	}

	invalid := []string{"2025-43", "2025-W0", "2025-W54", "25-W43", ""}
	for _, s := range invalid {
		if _, err := ParseWeek(s); err == nil {
			t.Errorf("ParseWeek(%q) expected error", s)
		}
	}
}

func TestWeekDates(t *testing.T) {
	monday, _ := ParseWeek("2025-W10")
	dates := WeekDates(monday)
	if len(dates) != 7 {
		t.Fatalf("WeekDates returned %d dates, want 7", len(dates))
	}
	for i, d := range dates {
		if !d.Equal(monday.AddDate(0, 0, i)) {
			t.Errorf("WeekDates[%d] = %v, want %v", i, d, monday.AddDate(0, 0, i))
		}
	}
}

func TestSameDate(t *testing.T) {
	a := time.Date(2025, 10, 20, 8, 0, 0, 0, time.UTC)
	b := time.Date(2025, 10, 20, 23, 59, 0, 0, time.UTC)
	c := time.Date(2025, 10, 21, 0, 0, 0, 0, time.UTC)

	if !SameDate(a, b) {
		t.Error("SameDate(a, b) = false, want true")
	}
	if SameDate(a, c) {
		t.Error("SameDate(a, c) = true, want false")
	}
}
