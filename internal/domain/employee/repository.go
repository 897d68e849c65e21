package employee

import "context"

type EmployeeRepository interface {
	GetByID(ctx context.Context, id string) (Employee, error)
	GetByBusinessID(ctx context.Context, businessID string) ([]Employee, error)
	ExistsByEmail(ctx context.Context, businessID string, email string, excludeID *string) (bool, error)
	Create(ctx context.Context, newEmployee Employee) (Employee, error)
	Update(ctx context.Context, updated Employee) (Employee, error)
	Delete(ctx context.Context, id string, businessID string) error
}
