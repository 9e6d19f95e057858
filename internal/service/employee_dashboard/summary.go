package employee_dashboard

import (
	"time"

	"github.com/cmlabs-hris/attendance-backend-go/internal/domain/attendance"
	"github.com/cmlabs-hris/attendance-backend-go/internal/domain/employee_dashboard"
	"github.com/cmlabs-hris/attendance-backend-go/internal/pkg/calendar"
	"github.com/shopspring/decimal"
)

// SummarizeMonth folds one employee's records of a month into day counts.
// Days from the first of the month up to asOf (or the month end, whichever is
// earlier) that have no record are counted absent; future months infer nothing.
func SummarizeMonth(employeeID string, year int, month time.Month, records []attendance.Record, asOf time.Time, cal calendar.Calendar) (employee_dashboard.MonthlySummary, error) {
	if month < time.January || month > time.December {
		return employee_dashboard.MonthlySummary{}, calendar.ErrInvalidMonth
	}

	first, last := cal.MonthRange(year, month)
	summary := employee_dashboard.MonthlySummary{
		EmployeeID: employeeID,
		Month:      calendar.MonthKey(year, month),
	}

	totalHours := decimal.Zero
	recorded := make(map[string]bool, len(records))

	for _, rec := range records {
		if rec.Date.Before(first) || rec.Date.After(last) {
			continue
		}
		recorded[cal.DateKey(rec.Date)] = true

		if hours := rec.TotalHours(); hours != nil {
			totalHours = totalHours.Add(*hours)
		}

		switch rec.EffectiveStatus() {
		case attendance.StatusPresent:
			summary.PresentDays++
		case attendance.StatusLate:
			summary.LateDays++
		case attendance.StatusHalfDay:
			summary.HalfDays++
		case attendance.StatusAbsent:
			summary.AbsentDays++
		}
	}

	scanTo := cal.DayOf(asOf)
	if lastDay := cal.DayOf(last); lastDay.Before(scanTo) {
		scanTo = lastDay
	}
	for _, day := range cal.Days(first, scanTo) {
		if !recorded[day.Format(calendar.DateLayout)] {
			summary.AbsentDays++
		}
	}

	summary.TotalHours = totalHours.Round(2).StringFixed(2)
	return summary, nil
}

// CalendarOf maps each recorded day of the month to its display status.
func CalendarOf(records []attendance.Record, cal calendar.Calendar) employee_dashboard.CalendarMonth {
	days := make(employee_dashboard.CalendarMonth, len(records))
	for _, rec := range records {
		day := employee_dashboard.CalendarDay{
			Status:       string(rec.EffectiveStatus()),
			CheckInTime:  rec.CheckIn,
			CheckOutTime: rec.CheckOut(),
		}
		if hours := rec.TotalHours(); hours != nil {
			formatted := hours.StringFixed(2)
			day.TotalHours = &formatted
		}
		days[cal.DateKey(rec.Date)] = day
	}
	return days
}
