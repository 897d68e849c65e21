package costing

import (
	"github.com/shiftmind/shiftmind-backend-go/internal/domain/employee"
	"github.com/shiftmind/shiftmind-backend-go/internal/domain/shift"
	"github.com/shiftmind/shiftmind-backend-go/internal/pkg/timeutil"
	"github.com/shopspring/decimal"
)

var (
	minutesPerHour = decimal.NewFromInt(60)
	oneHundred     = decimal.NewFromInt(100)
	ninety         = decimal.NewFromInt(90)
)

// ComputeShiftCost returns the net worked hours and cost of a single shift.
// An end time earlier than the start time means the shift runs past midnight
// and gets a full day added. Break minutes are deducted from the gross span
// and the result never goes below zero. The rate comes from the shift's
// snapshot, falling back to the employee's current rate; with neither, or
// with unparseable clock strings, the shift contributes nothing.
func ComputeShiftCost(s shift.Shift, emp *employee.Employee) ShiftCost {
	start, err := timeutil.ParseClock(s.StartTime)
	if err != nil {
		return ShiftCost{}
	}
	end, err := timeutil.ParseClock(s.EndTime)
	if err != nil {
		return ShiftCost{}
	}

	gross := end - start
	if gross < 0 {
		gross += timeutil.MinutesPerDay
	}
	net := gross - s.BreakMinutes
	if net < 0 {
		net = 0
	}

	var rate decimal.Decimal
	switch {
	case s.HourlyRate != nil:
		rate = *s.HourlyRate
	case emp != nil && emp.HourlyRate != nil:
		rate = *emp.HourlyRate
	}

	hours := decimal.NewFromInt(int64(net)).Div(minutesPerHour)
	return ShiftCost{
		Hours: hours,
		Cost:  hours.Mul(rate),
	}
}

// AggregateCosts folds a shift collection into a CostSummary. Every employee
// gets a bucket even with zero shifts. Shifts referencing an unknown employee
// still count toward the totals and the daily map. The result depends only on
// the set of inputs, not their order.
func AggregateCosts(shifts []shift.Shift, employees []employee.Employee) CostSummary {
	summary := CostSummary{
		EmployeeCosts: make(map[string]EmployeeCost, len(employees)),
		DailyCosts:    make(map[string]decimal.Decimal),
	}

	byID := make(map[string]*employee.Employee, len(employees))
	for i := range employees {
		byID[employees[i].ID] = &employees[i]
		summary.EmployeeCosts[employees[i].ID] = EmployeeCost{}
	}

	for _, s := range shifts {
		cost := ComputeShiftCost(s, byID[s.EmployeeID])

		summary.TotalCost = summary.TotalCost.Add(cost.Cost)
		summary.TotalHours = summary.TotalHours.Add(cost.Hours)

		if bucket, ok := summary.EmployeeCosts[s.EmployeeID]; ok {
			bucket.Cost = bucket.Cost.Add(cost.Cost)
			bucket.Hours = bucket.Hours.Add(cost.Hours)
			bucket.Shifts++
			summary.EmployeeCosts[s.EmployeeID] = bucket
		}

		day := s.DateKey()
		summary.DailyCosts[day] = summary.DailyCosts[day].Add(cost.Cost)
	}

	return summary
}

// EvaluateBudget compares used cost against a budget ceiling. A non-positive
// ceiling yields 0% usage rather than a division error. Remaining is signed
// and goes negative once the budget is exceeded. Exactly 90% is still
// normal; exactly 100% is still warning.
func EvaluateBudget(used, ceiling decimal.Decimal) BudgetSnapshot {
	var pct decimal.Decimal
	if ceiling.IsPositive() {
		pct = used.Div(ceiling).Mul(oneHundred)
	}

	status := BudgetStatusNormal
	switch {
	case pct.GreaterThan(oneHundred):
		status = BudgetStatusOver
	case pct.GreaterThan(ninety):
		status = BudgetStatusWarning
	}

	return BudgetSnapshot{
		Total:        ceiling,
		Used:         used,
		Remaining:    ceiling.Sub(used),
		UsagePercent: pct,
		Status:       status,
	}
}
