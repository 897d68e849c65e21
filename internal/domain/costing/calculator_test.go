package costing

import (
	"testing"
	"time"

	"github.com/shiftmind/shiftmind-backend-go/internal/domain/employee"
	"github.com/shiftmind/shiftmind-backend-go/internal/domain/shift"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func rate(v float64) *decimal.Decimal {
	d := decimal.NewFromFloat(v)
	return &d
}

func TestComputeShiftCost(t *testing.T) {
	cases := []struct {
		name      string
		shift     shift.Shift
		emp       *employee.Employee
		wantHours string
		wantCost  string
	}{
		{
			name:      "regular day shift",
			shift:     shift.Shift{StartTime: "09:00", EndTime: "17:00", BreakMinutes: 30, HourlyRate: rate(20)},
			wantHours: "7.5",
			wantCost:  "150",
		},
		{
			name:      "overnight shift wraps past midnight",
			shift:     shift.Shift{StartTime: "22:00", EndTime: "06:00", BreakMinutes: 30, HourlyRate: rate(40)},
			wantHours: "7.5",
			wantCost:  "300",
		},
		{
			name:      "break longer than shift clamps to zero",
			shift:     shift.Shift{StartTime: "09:00", EndTime: "10:00", BreakMinutes: 90, HourlyRate: rate(20)},
			wantHours: "0",
			wantCost:  "0",
		},
		{
			name:      "zero-length shift",
			shift:     shift.Shift{StartTime: "09:00", EndTime: "09:00", BreakMinutes: 0, HourlyRate: rate(20)},
			wantHours: "0",
			wantCost:  "0",
		},
		{
			name:      "rate falls back to employee",
			shift:     shift.Shift{StartTime: "09:00", EndTime: "13:00"},
			emp:       &employee.Employee{ID: "e1", HourlyRate: rate(25)},
			wantHours: "4",
			wantCost:  "100",
		},
		{
			name:      "snapshot rate wins over employee rate",
			shift:     shift.Shift{StartTime: "09:00", EndTime: "13:00", HourlyRate: rate(30)},
			emp:       &employee.Employee{ID: "e1", HourlyRate: rate(25)},
			wantHours: "4",
			wantCost:  "120",
		},
		{
			name:      "no rate anywhere",
			shift:     shift.Shift{StartTime: "09:00", EndTime: "13:00"},
			wantHours: "4",
			wantCost:  "0",
		},
		{
			name:      "unparseable start time contributes nothing",
			shift:     shift.Shift{StartTime: "9am", EndTime: "13:00", HourlyRate: rate(20)},
			wantHours: "0",
			wantCost:  "0",
		},
		{
			name:      "unparseable end time contributes nothing",
			shift:     shift.Shift{StartTime: "09:00", EndTime: "", HourlyRate: rate(20)},
			wantHours: "0",
			wantCost:  "0",
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := ComputeShiftCost(c.shift, c.emp)
			assert.True(t, got.Hours.Equal(decimal.RequireFromString(c.wantHours)),
				"hours = %s, want %s", got.Hours, c.wantHours)
			assert.True(t, got.Cost.Equal(decimal.RequireFromString(c.wantCost)),
				"cost = %s, want %s", got.Cost, c.wantCost)
		})
	}
}

func aggregateFixture() ([]shift.Shift, []employee.Employee) {
	day1 := time.Date(2025, 10, 20, 0, 0, 0, 0, time.UTC)
	day2 := time.Date(2025, 10, 21, 0, 0, 0, 0, time.UTC)

	shifts := []shift.Shift{
		{ID: "s1", EmployeeID: "e1", Date: day1, StartTime: "09:00", EndTime: "17:00", BreakMinutes: 60, HourlyRate: rate(20)},
		{ID: "s2", EmployeeID: "e1", Date: day2, StartTime: "09:00", EndTime: "13:00", HourlyRate: rate(20)},
		{ID: "s3", EmployeeID: "e2", Date: day1, StartTime: "22:00", EndTime: "06:00", BreakMinutes: 30, HourlyRate: rate(40)},
		{ID: "s4", EmployeeID: "ghost", Date: day2, StartTime: "10:00", EndTime: "12:00", HourlyRate: rate(10)},
	}
	employees := []employee.Employee{
		{ID: "e1", FirstName: "Dana"},
		{ID: "e2", FirstName: "Omri"},
		{ID: "e3", FirstName: "Noa"},
	}
	return shifts, employees
}

func TestAggregateCosts(t *testing.T) {
	shifts, employees := aggregateFixture()
	summary := AggregateCosts(shifts, employees)

	// s1: 7h*20=140, s2: 4h*20=80, s3: 7.5h*40=300, s4: 2h*10=20
	assert.True(t, summary.TotalCost.Equal(decimal.NewFromInt(540)), "total cost = %s", summary.TotalCost)
	assert.True(t, summary.TotalHours.Equal(decimal.RequireFromString("20.5")), "total hours = %s", summary.TotalHours)

	e1 := summary.EmployeeCosts["e1"]
	assert.True(t, e1.Cost.Equal(decimal.NewFromInt(220)))
	assert.True(t, e1.Hours.Equal(decimal.NewFromInt(11)))
	assert.Equal(t, 2, e1.Shifts)

	e2 := summary.EmployeeCosts["e2"]
	assert.True(t, e2.Cost.Equal(decimal.NewFromInt(300)))
	assert.Equal(t, 1, e2.Shifts)

	// employee without shifts still gets a zero bucket
	e3, ok := summary.EmployeeCosts["e3"]
	require.True(t, ok)
	assert.True(t, e3.Cost.IsZero())
	assert.Equal(t, 0, e3.Shifts)

	// the unknown employee gets no bucket but its cost stays in the totals
	_, ok = summary.EmployeeCosts["ghost"]
	assert.False(t, ok)

	assert.True(t, summary.DailyCosts["2025-10-20"].Equal(decimal.NewFromInt(440)))
	assert.True(t, summary.DailyCosts["2025-10-21"].Equal(decimal.NewFromInt(100)))
	assert.Len(t, summary.DailyCosts, 2)
}

func TestAggregateCostsOrderIndependent(t *testing.T) {
	shifts, employees := aggregateFixture()
	forward := AggregateCosts(shifts, employees)

	reversed := make([]shift.Shift, 0, len(shifts))
	for i := len(shifts) - 1; i >= 0; i-- {
		reversed = append(reversed, shifts[i])
	}
	backward := AggregateCosts(reversed, employees)

	assert.True(t, forward.TotalCost.Equal(backward.TotalCost))
	assert.True(t, forward.TotalHours.Equal(backward.TotalHours))
	assert.Equal(t, len(forward.EmployeeCosts), len(backward.EmployeeCosts))
	for id, fc := range forward.EmployeeCosts {
		bc := backward.EmployeeCosts[id]
		assert.True(t, fc.Cost.Equal(bc.Cost), "employee %s", id)
		assert.Equal(t, fc.Shifts, bc.Shifts, "employee %s", id)
	}
}

func TestAggregateCostsIdempotent(t *testing.T) {
	shifts, employees := aggregateFixture()
	first := AggregateCosts(shifts, employees)
	second := AggregateCosts(shifts, employees)

	assert.True(t, first.TotalCost.Equal(second.TotalCost))
	assert.True(t, first.TotalHours.Equal(second.TotalHours))
}

func TestAggregateCostsEmpty(t *testing.T) {
	summary := AggregateCosts(nil, nil)
	assert.True(t, summary.TotalCost.IsZero())
	assert.Empty(t, summary.EmployeeCosts)
	assert.Empty(t, summary.DailyCosts)
}

func TestEvaluateBudget(t *testing.T) {
	cases := []struct {
		name       string
		used       string
		ceiling    string
		wantPct    string
		wantStatus BudgetStatus
	}{
		{"well under", "5000", "10000", "50", BudgetStatusNormal},
		{"exactly 90 percent stays normal", "9000", "10000", "90", BudgetStatusNormal},
		{"just over 90 percent warns", "9001", "10000", "90.01", BudgetStatusWarning},
		{"exactly 100 percent still warns", "10000", "10000", "100", BudgetStatusWarning},
		{"over budget", "10001", "10000", "100.01", BudgetStatusOver},
		{"zero ceiling", "500", "0", "0", BudgetStatusNormal},
		{"negative ceiling", "500", "-100", "0", BudgetStatusNormal},
		{"zero used", "0", "10000", "0", BudgetStatusNormal},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			used := decimal.RequireFromString(c.used)
			ceiling := decimal.RequireFromString(c.ceiling)
			got := EvaluateBudget(used, ceiling)

			assert.True(t, got.UsagePercent.Equal(decimal.RequireFromString(c.wantPct)),
				"usage = %s, want %s", got.UsagePercent, c.wantPct)
			assert.Equal(t, c.wantStatus, got.Status)
			assert.True(t, got.Remaining.Equal(ceiling.Sub(used)))
		})
	}
}

func TestEvaluateBudgetRemainingGoesNegative(t *testing.T) {
	got := EvaluateBudget(decimal.NewFromInt(12000), decimal.NewFromInt(10000))
	assert.True(t, got.Remaining.Equal(decimal.NewFromInt(-2000)))
	assert.Equal(t, BudgetStatusOver, got.Status)
}
