package employee

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shiftmind/shiftmind-backend-go/internal/domain/employee"
	"github.com/shiftmind/shiftmind-backend-go/internal/domain/shift"
	"github.com/shiftmind/shiftmind-backend-go/internal/pkg/database"
	"github.com/shiftmind/shiftmind-backend-go/internal/repository/postgresql"
	"github.com/shopspring/decimal"
)

type EmployeeServiceImpl struct {
	db           *database.DB
	employeeRepo employee.EmployeeRepository
	shiftRepo    shift.ShiftRepository
}

func NewEmployeeService(db *database.DB, employeeRepo employee.EmployeeRepository, shiftRepo shift.ShiftRepository) employee.EmployeeService {
	return &EmployeeServiceImpl{
		db:           db,
		employeeRepo: employeeRepo,
		shiftRepo:    shiftRepo,
	}
}

func rateFromRequest(rate *float64) *decimal.Decimal {
	if rate == nil {
		return nil
	}
	d := decimal.NewFromFloat(*rate)
	return &d
}

func (s *EmployeeServiceImpl) ListEmployees(ctx context.Context, businessID string) ([]employee.EmployeeResponse, error) {
	employees, err := s.employeeRepo.GetByBusinessID(ctx, businessID)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}

	responses := make([]employee.EmployeeResponse, 0, len(employees))
	for _, e := range employees {
		responses = append(responses, employee.ToEmployeeResponse(e))
	}
	return responses, nil
}

func (s *EmployeeServiceImpl) GetEmployee(ctx context.Context, id string) (employee.EmployeeResponse, error) {
	e, err := s.employeeRepo.GetByID(ctx, id)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}
	return employee.ToEmployeeResponse(e), nil
}

func (s *EmployeeServiceImpl) CreateEmployee(ctx context.Context, businessID string, req employee.CreateEmployeeRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	exists, err := s.employeeRepo.ExistsByEmail(ctx, businessID, req.Email, nil)
	if err != nil {
		return employee.EmployeeResponse{}, fmt.Errorf("failed to check email: %w", err)
	}
	if exists {
		return employee.EmployeeResponse{}, employee.ErrEmailExists
	}

	now := time.Now()
	created, err := s.employeeRepo.Create(ctx, employee.Employee{
		ID:         uuid.NewString(),
		BusinessID: businessID,
		FirstName:  req.FirstName,
		LastName:   req.LastName,
		Email:      req.Email,
		HourlyRate: rateFromRequest(req.HourlyRate),
		CreatedAt:  now,
		UpdatedAt:  now,
	})
	if err != nil {
		return employee.EmployeeResponse{}, fmt.Errorf("failed to create employee: %w", err)
	}

	return employee.ToEmployeeResponse(created), nil
}

func (s *EmployeeServiceImpl) UpdateEmployee(ctx context.Context, id string, businessID string, req employee.UpdateEmployeeRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	existing, err := s.employeeRepo.GetByID(ctx, id)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}
	if existing.BusinessID != businessID {
		return employee.EmployeeResponse{}, employee.ErrEmployeeNotFound
	}

	exists, err := s.employeeRepo.ExistsByEmail(ctx, businessID, req.Email, &id)
	if err != nil {
		return employee.EmployeeResponse{}, fmt.Errorf("failed to check email: %w", err)
	}
	if exists {
		return employee.EmployeeResponse{}, employee.ErrEmailExists
	}

	existing.FirstName = req.FirstName
	existing.LastName = req.LastName
	existing.Email = req.Email
	existing.HourlyRate = rateFromRequest(req.HourlyRate)
	existing.UpdatedAt = time.Now()

	updated, err := s.employeeRepo.Update(ctx, existing)
	if err != nil {
		return employee.EmployeeResponse{}, fmt.Errorf("failed to update employee: %w", err)
	}

	return employee.ToEmployeeResponse(updated), nil
}

func (s *EmployeeServiceImpl) DeleteEmployee(ctx context.Context, id string, businessID string) error {
	// the employee's shifts go with them, atomically
	return postgresql.WithTransaction(ctx, s.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)

		if err := s.shiftRepo.DeleteByEmployeeID(txCtx, id, businessID); err != nil {
			return err
		}
		return s.employeeRepo.Delete(txCtx, id, businessID)
	})
}
