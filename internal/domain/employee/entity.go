package employee

import (
	"time"

	"github.com/shopspring/decimal"
)

type Employee struct {
	ID         string
	BusinessID string
	FirstName  string
	LastName   string
	Email      string
	HourlyRate *decimal.Decimal
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// FullName joins the first and last name for display.
func (e Employee) FullName() string {
	if e.LastName == "" {
		return e.FirstName
	}
	return e.FirstName + " " + e.LastName
}
