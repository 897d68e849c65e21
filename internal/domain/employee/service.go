package employee

import "context"

// EmployeeService defines business logic for employee operations
type EmployeeService interface {
	// ListEmployees lists all employees of a business
	ListEmployees(ctx context.Context, businessID string) ([]EmployeeResponse, error)

	// GetEmployee retrieves a single employee by ID
	GetEmployee(ctx context.Context, id string) (EmployeeResponse, error)

	// CreateEmployee creates a new employee for a business
	CreateEmployee(ctx context.Context, businessID string, req CreateEmployeeRequest) (EmployeeResponse, error)

	// UpdateEmployee updates an existing employee
	UpdateEmployee(ctx context.Context, id string, businessID string, req UpdateEmployeeRequest) (EmployeeResponse, error)

	// DeleteEmployee removes an employee
	DeleteEmployee(ctx context.Context, id string, businessID string) error
}
