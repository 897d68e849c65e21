package shift

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testShifts() []Shift {
	return []Shift{
		{ID: "s1", EmployeeID: "e1", Date: time.Date(2025, 10, 20, 0, 0, 0, 0, time.UTC), StartTime: "09:00", EndTime: "17:00", BreakMinutes: 30},
		{ID: "s2", EmployeeID: "e2", Date: time.Date(2025, 10, 21, 0, 0, 0, 0, time.UTC), StartTime: "12:00", EndTime: "20:00", BreakMinutes: 0},
	}
}

func TestRelocateMovesShift(t *testing.T) {
	shifts := testShifts()
	newDate := time.Date(2025, 10, 23, 0, 0, 0, 0, time.UTC)

	relocated, err := Relocate(shifts, "s1", newDate, "14:00")
	require.NoError(t, err)
	require.Len(t, relocated, 2)

	assert.Equal(t, newDate, relocated[0].Date)
	assert.Equal(t, "14:00", relocated[0].StartTime)
	// the end time stays put, so the duration changes with the start time
	assert.Equal(t, "17:00", relocated[0].EndTime)

	assert.Equal(t, shifts[1], relocated[1])
}

func TestRelocateDoesNotMutateInput(t *testing.T) {
	shifts := testShifts()
	newDate := time.Date(2025, 10, 23, 0, 0, 0, 0, time.UTC)

	_, err := Relocate(shifts, "s1", newDate, "14:00")
	require.NoError(t, err)

	assert.Equal(t, time.Date(2025, 10, 20, 0, 0, 0, 0, time.UTC), shifts[0].Date)
	assert.Equal(t, "09:00", shifts[0].StartTime)
}

func TestRelocateUnknownShift(t *testing.T) {
	_, err := Relocate(testShifts(), "missing", time.Date(2025, 10, 23, 0, 0, 0, 0, time.UTC), "14:00")
	assert.True(t, errors.Is(err, ErrShiftNotFound))
}

func TestRelocateZeroDate(t *testing.T) {
	_, err := Relocate(testShifts(), "s1", time.Time{}, "14:00")
	assert.True(t, errors.Is(err, ErrShiftMissingDate))
}

func TestRelocateInvalidStartTime(t *testing.T) {
	_, err := Relocate(testShifts(), "s1", time.Date(2025, 10, 23, 0, 0, 0, 0, time.UTC), "25:00")
	assert.True(t, errors.Is(err, ErrInvalidStartTime))
}
