package attendance

import (
	"context"
)

// AttendanceService defines business logic for attendance operations.
// Every call carries an explicit employee ID; identity is resolved by the caller.
type AttendanceService interface {
	// CheckIn opens today's record for the employee
	CheckIn(ctx context.Context, employeeID string) (AttendanceResponse, error)

	// CheckOut closes today's record and stores its classification
	CheckOut(ctx context.Context, employeeID string) (CheckOutResponse, error)

	// GetToday returns today's record, nil when the employee has none
	GetToday(ctx context.Context, employeeID string) (*AttendanceResponse, error)

	// GetMyHistory returns the employee's records newest first
	GetMyHistory(ctx context.Context, employeeID string, filter MyHistoryFilter) ([]AttendanceResponse, error)

	// ListAttendance retrieves records for the whole organization (manager)
	ListAttendance(ctx context.Context, filter AttendanceFilter) ([]AttendanceResponse, error)
}
