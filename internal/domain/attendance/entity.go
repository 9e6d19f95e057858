package attendance

import (
	"time"

	"github.com/cmlabs-hris/attendance-backend-go/internal/domain/employee"
	"github.com/shopspring/decimal"
)

type Status string

const (
	StatusPresent Status = "Present"
	StatusLate    Status = "Late"
	StatusHalfDay Status = "Half Day"
	StatusAbsent  Status = "Absent"
)

func (s Status) IsValid() bool {
	switch s {
	case StatusPresent, StatusLate, StatusHalfDay, StatusAbsent:
		return true
	}
	return false
}

// State is the lifecycle position of a daily record.
type State int

const (
	StateEmpty State = iota
	StateCheckedIn
	StateCompleted
)

// Record is one employee's attendance for one calendar day.
type Record struct {
	ID         string
	EmployeeID string
	Date       time.Time // local midnight
	CheckIn    *time.Time
	Completion *Completion
	CreatedAt  time.Time
	UpdatedAt  time.Time

	// Joined display fields, nil when the employee row is missing
	Employee *employee.Employee
}

// Completion holds every field written at checkout. They are only ever set together.
type Completion struct {
	CheckOut   time.Time
	TotalHours decimal.Decimal
	IsLate     bool
	Status     Status
}

func (r Record) State() State {
	switch {
	case r.Completion != nil:
		return StateCompleted
	case r.CheckIn != nil:
		return StateCheckedIn
	default:
		return StateEmpty
	}
}

// EffectiveStatus is the status shown for a record at any read site: the
// checkout status when completed, Present while only checked in, Absent otherwise.
func (r Record) EffectiveStatus() Status {
	switch r.State() {
	case StateCompleted:
		return r.Completion.Status
	case StateCheckedIn:
		return StatusPresent
	default:
		return StatusAbsent
	}
}

// HasActivity reports whether the employee did anything that day.
func (r Record) HasActivity() bool {
	return r.State() != StateEmpty
}

// LateAt reports lateness against cutoff. Completed records carry the flag
// computed at checkout; records still open fall back to comparing the check-in.
func (r Record) LateAt(cutoff time.Time) bool {
	if r.Completion != nil {
		return r.Completion.IsLate
	}
	return r.CheckIn != nil && r.CheckIn.After(cutoff)
}

// CheckOut returns the checkout instant, nil while the record is open.
func (r Record) CheckOut() *time.Time {
	if r.Completion == nil {
		return nil
	}
	t := r.Completion.CheckOut
	return &t
}

// TotalHours returns the worked hours, nil while the record is open.
func (r Record) TotalHours() *decimal.Decimal {
	if r.Completion == nil {
		return nil
	}
	h := r.Completion.TotalHours
	return &h
}
