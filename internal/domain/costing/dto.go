package costing

import (
	"github.com/shiftmind/shiftmind-backend-go/internal/domain/shift"
)

type EmployeeCostResponse struct {
	Cost   float64 `json:"cost"`
	Hours  float64 `json:"hours"`
	Shifts int     `json:"shifts"`
}

type CostSummaryResponse struct {
	TotalCost     float64                         `json:"total_cost"`
	TotalHours    float64                         `json:"total_hours"`
	EmployeeCosts map[string]EmployeeCostResponse `json:"employee_costs"`
	DailyCosts    map[string]float64              `json:"daily_costs"`
}

func ToCostSummaryResponse(s CostSummary) CostSummaryResponse {
	resp := CostSummaryResponse{
		EmployeeCosts: make(map[string]EmployeeCostResponse, len(s.EmployeeCosts)),
		DailyCosts:    make(map[string]float64, len(s.DailyCosts)),
	}
	resp.TotalCost, _ = s.TotalCost.Float64()
	resp.TotalHours, _ = s.TotalHours.Float64()
	for id, ec := range s.EmployeeCosts {
		cost, _ := ec.Cost.Float64()
		hours, _ := ec.Hours.Float64()
		resp.EmployeeCosts[id] = EmployeeCostResponse{Cost: cost, Hours: hours, Shifts: ec.Shifts}
	}
	for day, cost := range s.DailyCosts {
		resp.DailyCosts[day], _ = cost.Float64()
	}
	return resp
}

type BudgetSnapshotResponse struct {
	Total        float64 `json:"total"`
	Used         float64 `json:"used"`
	Remaining    float64 `json:"remaining"`
	UsagePercent float64 `json:"usage_percent"`
	Status       string  `json:"status"`
}

func ToBudgetSnapshotResponse(b BudgetSnapshot) BudgetSnapshotResponse {
	resp := BudgetSnapshotResponse{Status: string(b.Status)}
	resp.Total, _ = b.Total.Float64()
	resp.Used, _ = b.Used.Float64()
	resp.Remaining, _ = b.Remaining.Float64()
	resp.UsagePercent, _ = b.UsagePercent.Float64()
	return resp
}

// WeekScheduleOptions tune the weekly view. A zero WeeklyBudget disables the
// budget snapshot; IncludeCancelled keeps cancelled shifts in the aggregates.
type WeekScheduleOptions struct {
	WeeklyBudget     float64
	IncludeCancelled bool
}

type WeekScheduleResponse struct {
	Week      string                  `json:"week"`
	WeekStart string                  `json:"week_start"`
	Shifts    []shift.ShiftResponse   `json:"shifts"`
	Summary   CostSummaryResponse     `json:"summary"`
	Budget    *BudgetSnapshotResponse `json:"budget,omitempty"`
}

type RelocateShiftResponse struct {
	Shift   shift.ShiftResponse `json:"shift"`
	Summary CostSummaryResponse `json:"summary"`
}
