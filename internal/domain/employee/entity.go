package employee

import "time"

type Employee struct {
	ID           string
	Name         string
	EmployeeCode string
	Department   string
	Role         Role
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

type Role string

const (
	RoleEmployee Role = "employee" // Tracked by attendance
	RoleManager  Role = "manager"  // Sees organization-wide data
)

func (r Role) IsValid() bool {
	return r == RoleEmployee || r == RoleManager
}

// UnknownDepartment labels employees without a department.
const UnknownDepartment = "Unknown"

// DepartmentOrUnknown returns the department label used for grouping.
func (e Employee) DepartmentOrUnknown() string {
	if e.Department == "" {
		return UnknownDepartment
	}
	return e.Department
}

// IsManager checks if employee has manager role
func (e Employee) IsManager() bool {
	return e.Role == RoleManager
}
