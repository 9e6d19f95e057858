package employee

import "context"

// EmployeeRepository is the roster collaborator.
type EmployeeRepository interface {
	// ListActive returns employees with role employee, sorted by name.
	ListActive(ctx context.Context) ([]Employee, error)
	GetByID(ctx context.Context, id string) (Employee, error)
	GetByEmployeeCode(ctx context.Context, employeeCode string) (Employee, error)
	Create(ctx context.Context, newEmployee Employee) (Employee, error)
}
