package report

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/cmlabs-hris/attendance-backend-go/internal/domain/attendance"
	"github.com/cmlabs-hris/attendance-backend-go/internal/domain/employee"
	"github.com/cmlabs-hris/attendance-backend-go/internal/domain/report"
	"github.com/cmlabs-hris/attendance-backend-go/internal/pkg/calendar"
)

var columns = []string{
	"Date",
	"Employee Name",
	"Employee ID",
	"Department",
	"Check In",
	"Check Out",
	"Total Hours",
}

const timeLayout = "15:04:05"

type ReportServiceImpl struct {
	attendanceRepo attendance.AttendanceRepository
	employeeRepo   employee.EmployeeRepository
	clock          calendar.Clock
	cal            calendar.Calendar
}

func NewReportService(
	attendanceRepo attendance.AttendanceRepository,
	employeeRepo employee.EmployeeRepository,
	clock calendar.Clock,
	cal calendar.Calendar,
) report.ReportService {
	return &ReportServiceImpl{
		attendanceRepo: attendanceRepo,
		employeeRepo:   employeeRepo,
		clock:          clock,
		cal:            cal,
	}
}

// ExportAttendance implements report.ReportService.
func (s *ReportServiceImpl) ExportAttendance(ctx context.Context, req report.ExportRequest) (report.ExportFile, error) {
	if err := req.Validate(); err != nil {
		return report.ExportFile{}, err
	}

	now := s.clock.Now()
	start, err := s.cal.ParseDate(req.StartDate, now)
	if err != nil {
		return report.ExportFile{}, err
	}
	end, err := s.cal.ParseDate(req.EndDate, now)
	if err != nil {
		return report.ExportFile{}, err
	}
	if end.Before(start) {
		return report.ExportFile{}, attendance.ErrInvalidDateRange
	}

	filter := attendance.RangeFilter{
		Start: start,
		End:   s.cal.EndOfDay(end),
	}

	code := ""
	if req.EmployeeCode != nil {
		code = *req.EmployeeCode
	}
	if code != "" {
		emp, err := s.employeeRepo.GetByEmployeeCode(ctx, code)
		if err != nil {
			if !errors.Is(err, employee.ErrEmployeeNotFound) {
				slog.Error("failed to resolve employee code", "employee_code", code, "error", err)
			}
			return report.ExportFile{}, err
		}
		filter.EmployeeID = &emp.ID
	}

	records, err := s.attendanceRepo.QueryRange(ctx, filter)
	if err != nil {
		slog.Error("failed to load attendance for export", "error", err)
		return report.ExportFile{}, fmt.Errorf("failed to load attendance: %w", err)
	}
	if len(records) == 0 {
		return report.ExportFile{}, report.ErrEmptyExportRange
	}

	rows := make([]report.ExportRow, 0, len(records))
	for _, rec := range records {
		rows = append(rows, toExportRow(rec))
	}

	var (
		content     []byte
		contentType string
	)
	switch req.Format {
	case report.FormatCSV:
		content, err = RenderCSV(rows, s.cal)
		contentType = "text/csv"
	case report.FormatXLSX:
		content, err = RenderXLSX(rows, s.cal)
		contentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	default:
		return report.ExportFile{}, report.ErrUnsupportedFormat
	}
	if err != nil {
		slog.Error("failed to render export", "format", req.Format, "error", err)
		return report.ExportFile{}, fmt.Errorf("%w: %v", report.ErrReportGenerationFailed, err)
	}

	return report.ExportFile{
		Filename:    Filename(code, req.StartDate, req.EndDate, req.Format),
		ContentType: contentType,
		Content:     content,
	}, nil
}

// Filename builds attendance_[code_]<start>_to_<end>.<ext>.
func Filename(employeeCode, start, end string, format report.Format) string {
	if employeeCode != "" {
		return fmt.Sprintf("attendance_%s_%s_to_%s.%s", employeeCode, start, end, format)
	}
	return fmt.Sprintf("attendance_%s_to_%s.%s", start, end, format)
}

func toExportRow(rec attendance.Record) report.ExportRow {
	row := report.ExportRow{
		Date:     rec.Date,
		CheckIn:  rec.CheckIn,
		CheckOut: rec.CheckOut(),
	}
	if rec.Employee != nil {
		row.EmployeeName = rec.Employee.Name
		row.EmployeeCode = rec.Employee.EmployeeCode
		row.Department = rec.Employee.Department
	}
	if hours := rec.TotalHours(); hours != nil {
		formatted := hours.StringFixed(2)
		row.TotalHours = &formatted
	}
	return row
}

// cells formats one row in column order, times in the calendar's location.
func cells(row report.ExportRow, cal calendar.Calendar) []string {
	out := []string{
		cal.DateKey(row.Date),
		row.EmployeeName,
		row.EmployeeCode,
		row.Department,
		"",
		"",
		"",
	}
	if row.CheckIn != nil {
		out[4] = row.CheckIn.In(cal.Location).Format(timeLayout)
	}
	if row.CheckOut != nil {
		out[5] = row.CheckOut.In(cal.Location).Format(timeLayout)
	}
	if row.TotalHours != nil {
		out[6] = *row.TotalHours
	}
	return out
}
