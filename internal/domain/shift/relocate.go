package shift

import (
	"time"

	"github.com/shiftmind/shiftmind-backend-go/internal/pkg/timeutil"
)

// Relocate moves the shift with the given id to a new date and start time and
// returns a fresh slice; the input is never mutated. The end time is kept
// as-is, so relocating to a different start time changes the shift's duration.
// Callers are expected to re-run cost aggregation over the returned slice.
func Relocate(shifts []Shift, shiftID string, newDate time.Time, newStartTime string) ([]Shift, error) {
	if newDate.IsZero() {
		return nil, ErrShiftMissingDate
	}
	if _, err := timeutil.ParseClock(newStartTime); err != nil {
		return nil, ErrInvalidStartTime
	}

	found := false
	relocated := make([]Shift, len(shifts))
	for i, s := range shifts {
		if s.ID == shiftID {
			s.Date = newDate
			s.StartTime = newStartTime
			found = true
		}
		relocated[i] = s
	}
	if !found {
		return nil, ErrShiftNotFound
	}
	return relocated, nil
}
