package schedule

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shiftmind/shiftmind-backend-go/internal/domain/costing"
	"github.com/shiftmind/shiftmind-backend-go/internal/domain/employee"
	"github.com/shiftmind/shiftmind-backend-go/internal/domain/shift"
	"github.com/shiftmind/shiftmind-backend-go/internal/pkg/timeutil"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"
)

type ScheduleServiceImpl struct {
	shiftRepo    shift.ShiftRepository
	employeeRepo employee.EmployeeRepository
}

func NewScheduleService(shiftRepo shift.ShiftRepository, employeeRepo employee.EmployeeRepository) costing.ScheduleService {
	return &ScheduleServiceImpl{
		shiftRepo:    shiftRepo,
		employeeRepo: employeeRepo,
	}
}

func rateFromRequest(rate *float64) *decimal.Decimal {
	if rate == nil {
		return nil
	}
	d := decimal.NewFromFloat(*rate)
	return &d
}

func toShiftResponse(s shift.Shift, emp *employee.Employee) shift.ShiftResponse {
	cost := costing.ComputeShiftCost(s, emp)

	resp := shift.ShiftResponse{
		ID:           s.ID,
		EmployeeID:   s.EmployeeID,
		Date:         s.DateKey(),
		StartTime:    s.StartTime,
		EndTime:      s.EndTime,
		BreakMinutes: s.BreakMinutes,
		Status:       string(s.Status),
	}
	if emp != nil {
		resp.EmployeeName = emp.FullName()
	}
	if s.HourlyRate != nil {
		rate, _ := s.HourlyRate.Float64()
		resp.HourlyRate = &rate
	}
	resp.Hours, _ = cost.Hours.Float64()
	resp.TotalCost, _ = cost.Cost.Float64()
	return resp
}

// weekStart returns the Monday of the week containing date.
func weekStart(date time.Time) time.Time {
	return date.AddDate(0, 0, -((int(date.Weekday()) + 6) % 7))
}

func employeesByID(employees []employee.Employee) map[string]*employee.Employee {
	byID := make(map[string]*employee.Employee, len(employees))
	for i := range employees {
		byID[employees[i].ID] = &employees[i]
	}
	return byID
}

// loadShiftsAndEmployees fetches a business's shifts in range alongside its
// employees.
func (s *ScheduleServiceImpl) loadShiftsAndEmployees(ctx context.Context, businessID string, from, to time.Time) ([]shift.Shift, []employee.Employee, error) {
	var (
		shifts    []shift.Shift
		employees []employee.Employee
	)

	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		shifts, err = s.shiftRepo.GetByDateRange(gCtx, businessID, from, to)
		if err != nil {
			return fmt.Errorf("failed to load shifts: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		employees, err = s.employeeRepo.GetByBusinessID(gCtx, businessID)
		if err != nil {
			return fmt.Errorf("failed to load employees: %w", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, nil, err
	}
	return shifts, employees, nil
}

func (s *ScheduleServiceImpl) ListShifts(ctx context.Context, businessID string) ([]shift.ShiftResponse, error) {
	var (
		shifts    []shift.Shift
		employees []employee.Employee
	)

	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		shifts, err = s.shiftRepo.GetByBusinessID(gCtx, businessID)
		return err
	})
	g.Go(func() error {
		var err error
		employees, err = s.employeeRepo.GetByBusinessID(gCtx, businessID)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("failed to list shifts: %w", err)
	}

	byID := employeesByID(employees)
	responses := make([]shift.ShiftResponse, 0, len(shifts))
	for _, sh := range shifts {
		responses = append(responses, toShiftResponse(sh, byID[sh.EmployeeID]))
	}
	return responses, nil
}

func (s *ScheduleServiceImpl) CreateShift(ctx context.Context, businessID string, req shift.CreateShiftRequest) (shift.ShiftResponse, error) {
	if err := req.Validate(); err != nil {
		return shift.ShiftResponse{}, err
	}

	emp, err := s.employeeRepo.GetByID(ctx, req.EmployeeID)
	if err != nil {
		return shift.ShiftResponse{}, err
	}
	if emp.BusinessID != businessID {
		return shift.ShiftResponse{}, employee.ErrEmployeeNotFound
	}

	date, _ := time.Parse(timeutil.DateLayout, req.Date)

	// the rate snapshot freezes the employee's current rate unless the
	// request brings its own
	rate := rateFromRequest(req.HourlyRate)
	if rate == nil {
		rate = emp.HourlyRate
	}

	status := shift.ShiftStatusScheduled
	if req.Status != "" {
		status = shift.ShiftStatus(req.Status)
	}

	now := time.Now()
	created, err := s.shiftRepo.Create(ctx, shift.Shift{
		ID:           uuid.NewString(),
		BusinessID:   businessID,
		EmployeeID:   req.EmployeeID,
		Date:         date,
		StartTime:    req.StartTime,
		EndTime:      req.EndTime,
		BreakMinutes: req.BreakMinutes,
		HourlyRate:   rate,
		Status:       status,
		CreatedAt:    now,
		UpdatedAt:    now,
	})
	if err != nil {
		return shift.ShiftResponse{}, fmt.Errorf("failed to create shift: %w", err)
	}

	return toShiftResponse(created, &emp), nil
}

func (s *ScheduleServiceImpl) UpdateShift(ctx context.Context, id string, businessID string, req shift.UpdateShiftRequest) (shift.ShiftResponse, error) {
	if err := req.Validate(); err != nil {
		return shift.ShiftResponse{}, err
	}

	existing, err := s.shiftRepo.GetByID(ctx, id)
	if err != nil {
		return shift.ShiftResponse{}, err
	}
	if existing.BusinessID != businessID {
		return shift.ShiftResponse{}, shift.ErrShiftNotFound
	}

	emp, err := s.employeeRepo.GetByID(ctx, req.EmployeeID)
	if err != nil {
		return shift.ShiftResponse{}, err
	}
	if emp.BusinessID != businessID {
		return shift.ShiftResponse{}, employee.ErrEmployeeNotFound
	}

	date, _ := time.Parse(timeutil.DateLayout, req.Date)

	existing.EmployeeID = req.EmployeeID
	existing.Date = date
	existing.StartTime = req.StartTime
	existing.EndTime = req.EndTime
	existing.BreakMinutes = req.BreakMinutes
	if req.HourlyRate != nil {
		existing.HourlyRate = rateFromRequest(req.HourlyRate)
	}
	if req.Status != "" {
		existing.Status = shift.ShiftStatus(req.Status)
	}
	existing.UpdatedAt = time.Now()

	updated, err := s.shiftRepo.Update(ctx, existing)
	if err != nil {
		return shift.ShiftResponse{}, fmt.Errorf("failed to update shift: %w", err)
	}

	return toShiftResponse(updated, &emp), nil
}

func (s *ScheduleServiceImpl) DeleteShift(ctx context.Context, id string, businessID string) error {
	return s.shiftRepo.Delete(ctx, id, businessID)
}

func (s *ScheduleServiceImpl) GetWeekSchedule(ctx context.Context, businessID string, week string, opts costing.WeekScheduleOptions) (costing.WeekScheduleResponse, error) {
	monday, err := timeutil.ParseWeek(week)
	if err != nil {
		return costing.WeekScheduleResponse{}, err
	}
	sunday := monday.AddDate(0, 0, 6)

	shifts, employees, err := s.loadShiftsAndEmployees(ctx, businessID, monday, sunday)
	if err != nil {
		return costing.WeekScheduleResponse{}, err
	}

	if !opts.IncludeCancelled {
		kept := shifts[:0]
		for _, sh := range shifts {
			if sh.Status != shift.ShiftStatusCancelled {
				kept = append(kept, sh)
			}
		}
		shifts = kept
	}

	summary := costing.AggregateCosts(shifts, employees)

	byID := employeesByID(employees)
	responses := make([]shift.ShiftResponse, 0, len(shifts))
	for _, sh := range shifts {
		responses = append(responses, toShiftResponse(sh, byID[sh.EmployeeID]))
	}

	resp := costing.WeekScheduleResponse{
		Week:      week,
		WeekStart: timeutil.DateKey(monday),
		Shifts:    responses,
		Summary:   costing.ToCostSummaryResponse(summary),
	}
	if opts.WeeklyBudget > 0 {
		snapshot := costing.EvaluateBudget(summary.TotalCost, decimal.NewFromFloat(opts.WeeklyBudget))
		budget := costing.ToBudgetSnapshotResponse(snapshot)
		resp.Budget = &budget
	}
	return resp, nil
}

func (s *ScheduleServiceImpl) RelocateShift(ctx context.Context, id string, businessID string, req shift.RelocateShiftRequest) (costing.RelocateShiftResponse, error) {
	if err := req.Validate(); err != nil {
		return costing.RelocateShiftResponse{}, err
	}

	target, err := s.shiftRepo.GetByID(ctx, id)
	if err != nil {
		return costing.RelocateShiftResponse{}, err
	}
	if target.BusinessID != businessID {
		return costing.RelocateShiftResponse{}, shift.ErrShiftNotFound
	}

	newDate, _ := time.Parse(timeutil.DateLayout, req.Date)

	// widest range the move can touch: the old week and the new one
	from := weekStart(target.Date)
	to := weekStart(newDate).AddDate(0, 0, 6)
	if newDate.Before(target.Date) {
		from = weekStart(newDate)
		to = weekStart(target.Date).AddDate(0, 0, 6)
	}

	shifts, employees, err := s.loadShiftsAndEmployees(ctx, businessID, from, to)
	if err != nil {
		return costing.RelocateShiftResponse{}, err
	}

	relocated, err := shift.Relocate(shifts, id, newDate, req.StartTime)
	if err != nil {
		return costing.RelocateShiftResponse{}, err
	}

	var moved shift.Shift
	for _, sh := range relocated {
		if sh.ID == id {
			moved = sh
			break
		}
	}
	moved.UpdatedAt = time.Now()

	if _, err := s.shiftRepo.Update(ctx, moved); err != nil {
		return costing.RelocateShiftResponse{}, fmt.Errorf("failed to persist relocation: %w", err)
	}

	// full recompute over the destination week
	destMonday := weekStart(newDate)
	destSunday := destMonday.AddDate(0, 0, 6)
	weekShifts := make([]shift.Shift, 0, len(relocated))
	for _, sh := range relocated {
		if !sh.Date.Before(destMonday) && !sh.Date.After(destSunday) {
			weekShifts = append(weekShifts, sh)
		}
	}
	summary := costing.AggregateCosts(weekShifts, employees)

	byID := employeesByID(employees)
	return costing.RelocateShiftResponse{
		Shift:   toShiftResponse(moved, byID[moved.EmployeeID]),
		Summary: costing.ToCostSummaryResponse(summary),
	}, nil
}
