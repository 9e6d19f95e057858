package employee_dashboard

import "context"

// EmployeeDashboardService defines personal attendance views
type EmployeeDashboardService interface {
	// GetMonthlySummary folds a YYYY-MM month (current when empty) into day counts
	GetMonthlySummary(ctx context.Context, employeeID string, month string) (*MonthlySummary, error)

	// GetCalendar returns recorded days of a YYYY-MM month keyed by date
	GetCalendar(ctx context.Context, employeeID string, month string) (CalendarMonth, error)
}
