package shift

import (
	"time"

	"github.com/shiftmind/shiftmind-backend-go/internal/pkg/timeutil"
	"github.com/shopspring/decimal"
)

type Shift struct {
	ID           string
	BusinessID   string
	EmployeeID   string
	Date         time.Time
	StartTime    string // wall-clock HH:MM
	EndTime      string // wall-clock HH:MM, may be earlier than StartTime for overnight shifts
	BreakMinutes int
	HourlyRate   *decimal.Decimal // rate snapshot taken at scheduling time
	Status       ShiftStatus
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// DateKey returns the YYYY-MM-DD key used by daily cost aggregates.
func (s Shift) DateKey() string {
	return timeutil.DateKey(s.Date)
}

type ShiftStatus string

const (
	ShiftStatusScheduled ShiftStatus = "scheduled"
	ShiftStatusPublished ShiftStatus = "published"
	ShiftStatusCompleted ShiftStatus = "completed"
	ShiftStatusCancelled ShiftStatus = "cancelled"
)

var ShiftStatusValues = []string{
	string(ShiftStatusScheduled),
	string(ShiftStatusPublished),
	string(ShiftStatusCompleted),
	string(ShiftStatusCancelled),
}
