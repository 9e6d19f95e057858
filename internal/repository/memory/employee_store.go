package memory

import (
	"context"
	"fmt"
	"sort"

	"github.com/cmlabs-hris/attendance-backend-go/internal/domain/employee"
	"github.com/google/uuid"
)

type EmployeeStore struct {
	s *Store
}

func (e *EmployeeStore) ListActive(_ context.Context) ([]employee.Employee, error) {
	e.s.mu.RLock()
	defer e.s.mu.RUnlock()

	out := []employee.Employee{}
	for _, emp := range e.s.employees {
		if emp.Role == employee.RoleEmployee {
			out = append(out, emp)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Name != out[j].Name {
			return out[i].Name < out[j].Name
		}
		return out[i].EmployeeCode < out[j].EmployeeCode
	})
	return out, nil
}

func (e *EmployeeStore) GetByID(_ context.Context, id string) (employee.Employee, error) {
	e.s.mu.RLock()
	defer e.s.mu.RUnlock()

	emp, ok := e.s.employees[id]
	if !ok {
		return employee.Employee{}, fmt.Errorf("employee with id %s: %w", id, employee.ErrEmployeeNotFound)
	}
	return emp, nil
}

func (e *EmployeeStore) GetByEmployeeCode(_ context.Context, employeeCode string) (employee.Employee, error) {
	e.s.mu.RLock()
	defer e.s.mu.RUnlock()

	for _, emp := range e.s.employees {
		if emp.EmployeeCode == employeeCode {
			return emp, nil
		}
	}
	return employee.Employee{}, fmt.Errorf("employee with code %s: %w", employeeCode, employee.ErrEmployeeNotFound)
}

func (e *EmployeeStore) Create(_ context.Context, newEmployee employee.Employee) (employee.Employee, error) {
	e.s.mu.Lock()
	defer e.s.mu.Unlock()

	for _, emp := range e.s.employees {
		if emp.EmployeeCode == newEmployee.EmployeeCode {
			return employee.Employee{}, fmt.Errorf("employee code %s: %w", newEmployee.EmployeeCode, employee.ErrEmployeeCodeExists)
		}
	}

	if newEmployee.ID == "" {
		newEmployee.ID = uuid.NewString()
	}
	if newEmployee.Role == "" {
		newEmployee.Role = employee.RoleEmployee
	}
	ts := now()
	newEmployee.CreatedAt, newEmployee.UpdatedAt = ts, ts

	e.s.employees[newEmployee.ID] = newEmployee
	return newEmployee, nil
}
