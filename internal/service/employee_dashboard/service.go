package employee_dashboard

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/cmlabs-hris/attendance-backend-go/internal/domain/attendance"
	"github.com/cmlabs-hris/attendance-backend-go/internal/domain/employee_dashboard"
	"github.com/cmlabs-hris/attendance-backend-go/internal/pkg/calendar"
)

type EmployeeDashboardServiceImpl struct {
	attendanceRepo attendance.AttendanceRepository
	clock          calendar.Clock
	cal            calendar.Calendar
}

func NewEmployeeDashboardService(
	attendanceRepo attendance.AttendanceRepository,
	clock calendar.Clock,
	cal calendar.Calendar,
) employee_dashboard.EmployeeDashboardService {
	return &EmployeeDashboardServiceImpl{
		attendanceRepo: attendanceRepo,
		clock:          clock,
		cal:            cal,
	}
}

func (s *EmployeeDashboardServiceImpl) GetMonthlySummary(ctx context.Context, employeeID string, month string) (*employee_dashboard.MonthlySummary, error) {
	now := s.clock.Now()
	year, m, err := s.cal.ParseMonth(month, now)
	if err != nil {
		return nil, err
	}

	records, err := s.monthRecords(ctx, employeeID, year, m)
	if err != nil {
		return nil, err
	}

	summary, err := SummarizeMonth(employeeID, year, m, records, now, s.cal)
	if err != nil {
		return nil, err
	}
	return &summary, nil
}

func (s *EmployeeDashboardServiceImpl) GetCalendar(ctx context.Context, employeeID string, month string) (employee_dashboard.CalendarMonth, error) {
	year, m, err := s.cal.ParseMonth(month, s.clock.Now())
	if err != nil {
		return nil, err
	}

	records, err := s.monthRecords(ctx, employeeID, year, m)
	if err != nil {
		return nil, err
	}
	return CalendarOf(records, s.cal), nil
}

func (s *EmployeeDashboardServiceImpl) monthRecords(ctx context.Context, employeeID string, year int, month time.Month) ([]attendance.Record, error) {
	start, end := s.cal.MonthRange(year, month)
	records, err := s.attendanceRepo.QueryRange(ctx, attendance.RangeFilter{
		Start:      start,
		End:        end,
		EmployeeID: &employeeID,
	})
	if err != nil {
		slog.Error("failed to load monthly attendance", "employee_id", employeeID, "month", calendar.MonthKey(year, month), "error", err)
		return nil, fmt.Errorf("failed to load attendance: %w", err)
	}
	return records, nil
}
