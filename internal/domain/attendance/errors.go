package attendance

import "errors"

// Attendance domain errors
var (
	// Check-in / check-out errors
	ErrAlreadyCheckedIn    = errors.New("already checked in today")
	ErrNotCheckedIn        = errors.New("not checked in yet")
	ErrAlreadyCheckedOut   = errors.New("already checked out")
	ErrInvalidTimeOrdering = errors.New("check-out must be after check-in")

	// Query errors
	ErrAttendanceNotFound = errors.New("attendance record not found")
	ErrInvalidDateRange   = errors.New("end date must not be before start date")
)
