package employee

import (
	"context"
)

// EmployeeService defines roster read operations
type EmployeeService interface {
	// ListEmployees returns the active roster sorted by name (manager only)
	ListEmployees(ctx context.Context) ([]EmployeeResponse, error)
}
