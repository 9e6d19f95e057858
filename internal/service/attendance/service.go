package attendance

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/cmlabs-hris/attendance-backend-go/internal/domain/attendance"
	"github.com/cmlabs-hris/attendance-backend-go/internal/domain/employee"
	"github.com/cmlabs-hris/attendance-backend-go/internal/pkg/calendar"
	"github.com/cmlabs-hris/attendance-backend-go/internal/pkg/database"
)

// earliestDate bounds manager listings that only give an end date.
var earliestDate = time.Date(1970, time.January, 1, 0, 0, 0, 0, time.UTC)

type AttendanceServiceImpl struct {
	tx database.Transactor
	attendance.AttendanceRepository
	employee.EmployeeRepository
	clock calendar.Clock
	cal   calendar.Calendar
}

func NewAttendanceService(
	tx database.Transactor,
	attendanceRepo attendance.AttendanceRepository,
	employeeRepo employee.EmployeeRepository,
	clock calendar.Clock,
	cal calendar.Calendar,
) attendance.AttendanceService {
	return &AttendanceServiceImpl{
		tx:                   tx,
		AttendanceRepository: attendanceRepo,
		EmployeeRepository:   employeeRepo,
		clock:                clock,
		cal:                  cal,
	}
}

// CheckIn implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) CheckIn(ctx context.Context, employeeID string) (attendance.AttendanceResponse, error) {
	emp, err := a.EmployeeRepository.GetByID(ctx, employeeID)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	now := a.clock.Now()
	today := a.cal.DayOf(now)

	rec, err := a.AttendanceRepository.UpsertCheckIn(ctx, employeeID, today, now)
	if err != nil {
		if !errors.Is(err, attendance.ErrAlreadyCheckedIn) {
			slog.Error("check-in failed", "employee_id", employeeID, "error", err)
		}
		return attendance.AttendanceResponse{}, err
	}
	rec.Employee = &emp

	return attendance.ToResponse(rec), nil
}

// CheckOut implements attendance.AttendanceService.
// Load, classify and save run in one transaction holding the row lock.
func (a *AttendanceServiceImpl) CheckOut(ctx context.Context, employeeID string) (attendance.CheckOutResponse, error) {
	now := a.clock.Now()
	today := a.cal.DayOf(now)

	var saved attendance.Record
	err := a.tx.WithinTx(ctx, func(ctx context.Context) error {
		rec, err := a.AttendanceRepository.GetByEmployeeAndDateForUpdate(ctx, employeeID, today)
		if err != nil {
			return err
		}
		if rec == nil {
			return attendance.ErrNotCheckedIn
		}

		completed, err := rec.Complete(now, a.cal.CutoffOn(today))
		if err != nil {
			return err
		}

		saved, err = a.AttendanceRepository.SaveCheckout(ctx, completed)
		return err
	})
	if err != nil {
		if !isStateError(err) {
			slog.Error("check-out failed", "employee_id", employeeID, "error", err)
		}
		return attendance.CheckOutResponse{}, err
	}

	c := saved.Completion
	return attendance.CheckOutResponse{
		TotalHours: c.TotalHours.StringFixed(2),
		Status:     c.Status,
		IsLate:     c.IsLate,
		Attendance: attendance.ToResponse(saved),
	}, nil
}

// GetToday implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) GetToday(ctx context.Context, employeeID string) (*attendance.AttendanceResponse, error) {
	today := a.cal.DayOf(a.clock.Now())

	rec, err := a.AttendanceRepository.GetByEmployeeAndDate(ctx, employeeID, today)
	if err != nil {
		slog.Error("failed to load today's attendance", "employee_id", employeeID, "error", err)
		return nil, fmt.Errorf("failed to get today's attendance: %w", err)
	}
	if rec == nil {
		return nil, nil
	}

	resp := attendance.ToResponse(*rec)
	return &resp, nil
}

// GetMyHistory implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) GetMyHistory(ctx context.Context, employeeID string, filter attendance.MyHistoryFilter) ([]attendance.AttendanceResponse, error) {
	if err := filter.Validate(); err != nil {
		return nil, err
	}

	records, err := a.AttendanceRepository.QueryRange(ctx, attendance.RangeFilter{
		Start:      earliestDate,
		End:        a.cal.EndOfDay(a.clock.Now()),
		EmployeeID: &employeeID,
		Limit:      filter.Limit,
	})
	if err != nil {
		slog.Error("failed to load attendance history", "employee_id", employeeID, "error", err)
		return nil, fmt.Errorf("failed to get attendance history: %w", err)
	}

	return toResponses(records), nil
}

// ListAttendance implements attendance.AttendanceService.
// An unknown employee code or a department without employees yields an empty list.
func (a *AttendanceServiceImpl) ListAttendance(ctx context.Context, filter attendance.AttendanceFilter) ([]attendance.AttendanceResponse, error) {
	if err := filter.Validate(); err != nil {
		return nil, err
	}

	now := a.clock.Now()
	rangeFilter := attendance.RangeFilter{
		Start: earliestDate,
		End:   a.cal.EndOfDay(now),
		Limit: filter.Limit,
	}

	if filter.StartDate != nil && *filter.StartDate != "" {
		start, err := a.cal.ParseDate(*filter.StartDate, now)
		if err != nil {
			return nil, err
		}
		rangeFilter.Start = start
	}
	if filter.EndDate != nil && *filter.EndDate != "" {
		end, err := a.cal.ParseDate(*filter.EndDate, now)
		if err != nil {
			return nil, err
		}
		rangeFilter.End = a.cal.EndOfDay(end)
	}
	if rangeFilter.End.Before(rangeFilter.Start) {
		return nil, attendance.ErrInvalidDateRange
	}

	if filter.Status != nil && *filter.Status != "" {
		status := attendance.Status(*filter.Status)
		rangeFilter.Status = &status
	}

	if filter.EmployeeCode != nil && *filter.EmployeeCode != "" {
		emp, err := a.EmployeeRepository.GetByEmployeeCode(ctx, *filter.EmployeeCode)
		if err != nil {
			if errors.Is(err, employee.ErrEmployeeNotFound) {
				return []attendance.AttendanceResponse{}, nil
			}
			return nil, err
		}
		rangeFilter.EmployeeID = &emp.ID
	}

	if filter.Department != nil && *filter.Department != "" {
		members, err := a.departmentMembers(ctx, *filter.Department)
		if err != nil {
			return nil, err
		}
		if len(members) == 0 {
			return []attendance.AttendanceResponse{}, nil
		}
		if rangeFilter.EmployeeID != nil && !members[*rangeFilter.EmployeeID] {
			return []attendance.AttendanceResponse{}, nil
		}
		rangeFilter.Department = filter.Department
	}

	records, err := a.AttendanceRepository.QueryRange(ctx, rangeFilter)
	if err != nil {
		slog.Error("failed to list attendance", "error", err)
		return nil, fmt.Errorf("failed to list attendance: %w", err)
	}

	return toResponses(records), nil
}

func (a *AttendanceServiceImpl) departmentMembers(ctx context.Context, department string) (map[string]bool, error) {
	roster, err := a.EmployeeRepository.ListActive(ctx)
	if err != nil {
		slog.Error("failed to load roster", "error", err)
		return nil, fmt.Errorf("failed to load roster: %w", err)
	}

	members := make(map[string]bool)
	for _, emp := range roster {
		if emp.Department == department {
			members[emp.ID] = true
		}
	}
	return members, nil
}

func toResponses(records []attendance.Record) []attendance.AttendanceResponse {
	out := make([]attendance.AttendanceResponse, 0, len(records))
	for _, rec := range records {
		out = append(out, attendance.ToResponse(rec))
	}
	return out
}

func isStateError(err error) bool {
	return errors.Is(err, attendance.ErrNotCheckedIn) ||
		errors.Is(err, attendance.ErrAlreadyCheckedOut) ||
		errors.Is(err, attendance.ErrInvalidTimeOrdering)
}
