package employee_dashboard

import "time"

// ========== MONTHLY SUMMARY ==========

// MonthlySummary counts one employee's days in a month
type MonthlySummary struct {
	EmployeeID  string `json:"employee_id"`
	Month       string `json:"month"` // Format: "YYYY-MM"
	PresentDays int    `json:"present_days"`
	LateDays    int    `json:"late_days"`
	HalfDays    int    `json:"half_days"`
	AbsentDays  int    `json:"absent_days"`
	TotalHours  string `json:"total_hours"` // two decimal places
}

// DaysConsidered is the number of days that contributed to the counts.
func (m MonthlySummary) DaysConsidered() int {
	return m.PresentDays + m.LateDays + m.HalfDays + m.AbsentDays
}

// ========== CALENDAR ==========

// CalendarDay is one recorded day in the personal calendar view
type CalendarDay struct {
	Status       string     `json:"status"`
	CheckInTime  *time.Time `json:"check_in_time,omitempty"`
	CheckOutTime *time.Time `json:"check_out_time,omitempty"`
	TotalHours   *string    `json:"total_hours,omitempty"`
}

// CalendarMonth maps YYYY-MM-DD to the recorded day
type CalendarMonth map[string]CalendarDay
