package attendance

import (
	"context"
	"time"
)

// RangeFilter selects records whose day falls in [Start, End].
type RangeFilter struct {
	Start      time.Time
	End        time.Time
	EmployeeID *string
	Department *string
	Status     *Status
	Limit      int // 0 means no limit
}

// AttendanceRepository is the daily record store.
type AttendanceRepository interface {
	// GetByEmployeeAndDate returns nil without error when no record exists.
	GetByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) (*Record, error)

	// GetByEmployeeAndDateForUpdate is GetByEmployeeAndDate holding a row lock for the current transaction.
	GetByEmployeeAndDateForUpdate(ctx context.Context, employeeID string, date time.Time) (*Record, error)

	// UpsertCheckIn atomically creates the day's record or fills an empty one.
	// Returns ErrAlreadyCheckedIn when the day already has a check-in.
	UpsertCheckIn(ctx context.Context, employeeID string, date time.Time, at time.Time) (Record, error)

	// SaveCheckout persists rec.Completion, only if the stored record is still open.
	SaveCheckout(ctx context.Context, rec Record) (Record, error)

	// QueryRange returns matching records newest day first, joined with employee fields.
	QueryRange(ctx context.Context, filter RangeFilter) ([]Record, error)
}
