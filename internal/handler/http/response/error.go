package response

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/cmlabs-hris/attendance-backend-go/internal/domain/attendance"
	"github.com/cmlabs-hris/attendance-backend-go/internal/domain/employee"
	"github.com/cmlabs-hris/attendance-backend-go/internal/domain/report"
	"github.com/cmlabs-hris/attendance-backend-go/internal/pkg/calendar"
	"github.com/cmlabs-hris/attendance-backend-go/internal/pkg/jwt"
	"github.com/cmlabs-hris/attendance-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Auth errors
	case errors.Is(err, jwt.ErrInvalidToken):
		Unauthorized(w, "Invalid or expired token")
	case errors.Is(err, employee.ErrEmployeeIdentityAbsent):
		Unauthorized(w, "Token does not identify an employee")
	case errors.Is(err, employee.ErrManagerAccessRequired):
		Forbidden(w, "Manager access required")

	// Attendance domain errors
	case errors.Is(err, attendance.ErrAlreadyCheckedIn):
		ConflictWithCode(w, "ALREADY_CHECKED_IN", "Already checked in today")
	case errors.Is(err, attendance.ErrNotCheckedIn):
		BadRequestWithCode(w, "NOT_CHECKED_IN", "You have not checked in today")
	case errors.Is(err, attendance.ErrAlreadyCheckedOut):
		ConflictWithCode(w, "ALREADY_CHECKED_OUT", "Already checked out today")
	case errors.Is(err, attendance.ErrInvalidTimeOrdering):
		BadRequestWithCode(w, "INVALID_TIME_ORDERING", "Check-out must be after check-in")
	case errors.Is(err, attendance.ErrAttendanceNotFound):
		NotFound(w, "Attendance record not found")

	// Date range errors
	case errors.Is(err, calendar.ErrInvalidMonth):
		BadRequestWithCode(w, "INVALID_DATE_RANGE", "Month must be in YYYY-MM format")
	case errors.Is(err, calendar.ErrInvalidDate):
		BadRequestWithCode(w, "INVALID_DATE_RANGE", "Date must be in YYYY-MM-DD format")
	case errors.Is(err, attendance.ErrInvalidDateRange):
		BadRequestWithCode(w, "INVALID_DATE_RANGE", "End date must not be before start date")

	// Employee domain errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, employee.ErrEmployeeCodeExists):
		Conflict(w, "Employee code already exists")

	// Report domain errors
	case errors.Is(err, report.ErrEmptyExportRange):
		NotFound(w, "No attendance records for given filters")
	case errors.Is(err, report.ErrUnsupportedFormat):
		BadRequest(w, "Unsupported export format", nil)

	// Default
	default:
		slog.Error("unhandled error", "error", err)
		InternalServerError(w, "An unexpected error occurred")
	}
}
