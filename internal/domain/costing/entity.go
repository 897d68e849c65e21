package costing

import (
	"github.com/shopspring/decimal"
)

// ShiftCost is the worked time and labor cost of a single shift.
type ShiftCost struct {
	Hours decimal.Decimal
	Cost  decimal.Decimal
}

// EmployeeCost accumulates one employee's share of a schedule.
type EmployeeCost struct {
	Cost   decimal.Decimal
	Hours  decimal.Decimal
	Shifts int
}

// CostSummary is the full cost breakdown of a shift collection.
type CostSummary struct {
	TotalCost     decimal.Decimal
	TotalHours    decimal.Decimal
	EmployeeCosts map[string]EmployeeCost
	DailyCosts    map[string]decimal.Decimal
}

type BudgetStatus string

const (
	BudgetStatusNormal  BudgetStatus = "normal"
	BudgetStatusWarning BudgetStatus = "warning"
	BudgetStatusOver    BudgetStatus = "over"
)

var BudgetStatusValues = []string{
	string(BudgetStatusNormal),
	string(BudgetStatusWarning),
	string(BudgetStatusOver),
}

// BudgetSnapshot relates spent cost to a budget ceiling.
type BudgetSnapshot struct {
	Total        decimal.Decimal
	Used         decimal.Decimal
	Remaining    decimal.Decimal
	UsagePercent decimal.Decimal
	Status       BudgetStatus
}
