package attendance

import (
	"time"

	"github.com/cmlabs-hris/attendance-backend-go/internal/pkg/validator"
)

// ========================================
// ATTENDANCE DTOs
// ========================================

type EmployeeInfo struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	EmployeeCode string `json:"employee_code"`
	Department   string `json:"department"`
}

type AttendanceResponse struct {
	ID           string        `json:"id"`
	EmployeeID   string        `json:"employee_id"`
	Employee     *EmployeeInfo `json:"employee,omitempty"`
	Date         string        `json:"date"`
	CheckInTime  *time.Time    `json:"check_in_time,omitempty"`
	CheckOutTime *time.Time    `json:"check_out_time,omitempty"`
	TotalHours   *string       `json:"total_hours,omitempty"`
	Status       *Status       `json:"status,omitempty"`
	IsLate       bool          `json:"is_late"`
	CreatedAt    time.Time     `json:"created_at"`
	UpdatedAt    time.Time     `json:"updated_at"`
}

type CheckOutResponse struct {
	TotalHours string             `json:"total_hours"`
	Status     Status             `json:"status"`
	IsLate     bool               `json:"is_late"`
	Attendance AttendanceResponse `json:"attendance"`
}

// ToResponse maps a record. Status stays nil until checkout; readers that need
// a label use Record.EffectiveStatus.
func ToResponse(r Record) AttendanceResponse {
	resp := AttendanceResponse{
		ID:          r.ID,
		EmployeeID:  r.EmployeeID,
		Date:        r.Date.Format("2006-01-02"),
		CheckInTime: r.CheckIn,
		CreatedAt:   r.CreatedAt,
		UpdatedAt:   r.UpdatedAt,
	}
	if r.Completion != nil {
		hours := r.Completion.TotalHours.StringFixed(2)
		status := r.Completion.Status
		resp.CheckOutTime = r.CheckOut()
		resp.TotalHours = &hours
		resp.Status = &status
		resp.IsLate = r.Completion.IsLate
	}
	if r.Employee != nil {
		resp.Employee = &EmployeeInfo{
			ID:           r.Employee.ID,
			Name:         r.Employee.Name,
			EmployeeCode: r.Employee.EmployeeCode,
			Department:   r.Employee.Department,
		}
	}
	return resp
}

type MyHistoryFilter struct {
	Limit int `json:"limit"`
}

func (f *MyHistoryFilter) Validate() error {
	var errs validator.ValidationErrors

	if f.Limit < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "limit",
			Message: "limit must be a positive number",
		})
	}
	if f.Limit == 0 {
		f.Limit = 30 // Default limit
	}
	if f.Limit > 366 {
		errs = append(errs, validator.ValidationError{
			Field:   "limit",
			Message: "limit must not exceed 366",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type AttendanceFilter struct {
	StartDate    *string `json:"start_date,omitempty"` // YYYY-MM-DD
	EndDate      *string `json:"end_date,omitempty"`   // YYYY-MM-DD
	EmployeeCode *string `json:"employee_code,omitempty"`
	Department   *string `json:"department,omitempty"`
	Status       *string `json:"status,omitempty"`
	Limit        int     `json:"limit"`
}

var validStatuses = []string{
	string(StatusPresent),
	string(StatusLate),
	string(StatusHalfDay),
	string(StatusAbsent),
}

func (f *AttendanceFilter) Validate() error {
	var errs validator.ValidationErrors

	if f.Limit < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "limit",
			Message: "limit must be a positive number",
		})
	}
	if f.Limit == 0 {
		f.Limit = 50 // Default limit
	}
	if f.Limit > 500 {
		errs = append(errs, validator.ValidationError{
			Field:   "limit",
			Message: "limit must not exceed 500",
		})
	}

	if f.Status != nil && *f.Status != "" {
		if !validator.IsInSlice(*f.Status, validStatuses) {
			errs = append(errs, validator.ValidationError{
				Field:   "status",
				Message: "status must be one of: Present, Late, Half Day, Absent",
			})
		}
	}

	if f.EmployeeCode != nil && *f.EmployeeCode != "" && !validator.IsValidEmployeeCode(*f.EmployeeCode) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_code",
			Message: "employee_code contains invalid characters",
		})
	}

	if f.StartDate != nil && *f.StartDate != "" {
		if _, valid := validator.IsValidDate(*f.StartDate); !valid {
			errs = append(errs, validator.ValidationError{
				Field:   "start_date",
				Message: "start_date must be in YYYY-MM-DD format",
			})
		}
	}

	if f.EndDate != nil && *f.EndDate != "" {
		if _, valid := validator.IsValidDate(*f.EndDate); !valid {
			errs = append(errs, validator.ValidationError{
				Field:   "end_date",
				Message: "end_date must be in YYYY-MM-DD format",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}
