package postgresql

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/cmlabs-hris/attendance-backend-go/internal/domain/attendance"
	"github.com/cmlabs-hris/attendance-backend-go/internal/domain/employee"
	"github.com/cmlabs-hris/attendance-backend-go/internal/pkg/calendar"
	"github.com/cmlabs-hris/attendance-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

type attendanceRepository struct {
	db  *database.DB
	loc *time.Location
}

// NewAttendanceRepository returns the postgres record store. DATE columns are
// read back as calendar days in loc.
func NewAttendanceRepository(db *database.DB, loc *time.Location) attendance.AttendanceRepository {
	if loc == nil {
		loc = time.Local
	}
	return &attendanceRepository{db: db, loc: loc}
}

const recordColumns = `a.id, a.employee_id, a.date, a.check_in, a.check_out, a.total_hours, a.is_late, a.status, a.created_at, a.updated_at`

const joinedColumns = recordColumns + `, e.name, e.employee_code, e.department, e.role`

// scanRecord reads recordColumns, plus the employee columns when joined is true.
func (a *attendanceRepository) scanRecord(row pgx.Row, joined bool) (attendance.Record, error) {
	var (
		rec        attendance.Record
		date       time.Time
		checkOut   *time.Time
		totalHours decimal.NullDecimal
		isLate     *bool
		status     *string

		empName, empCode, empDept, empRole *string
	)

	dest := []any{
		&rec.ID, &rec.EmployeeID, &date, &rec.CheckIn, &checkOut, &totalHours, &isLate, &status,
		&rec.CreatedAt, &rec.UpdatedAt,
	}
	if joined {
		dest = append(dest, &empName, &empCode, &empDept, &empRole)
	}
	if err := row.Scan(dest...); err != nil {
		return attendance.Record{}, err
	}

	rec.Date = time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, a.loc)

	if checkOut != nil && totalHours.Valid && isLate != nil && status != nil {
		rec.Completion = &attendance.Completion{
			CheckOut:   *checkOut,
			TotalHours: totalHours.Decimal,
			IsLate:     *isLate,
			Status:     attendance.Status(*status),
		}
	}

	if empName != nil {
		rec.Employee = &employee.Employee{
			ID:           rec.EmployeeID,
			Name:         *empName,
			EmployeeCode: deref(empCode),
			Department:   deref(empDept),
			Role:         employee.Role(deref(empRole)),
		}
	}

	return rec, nil
}

func (a *attendanceRepository) dateArg(t time.Time) string {
	return t.In(a.loc).Format(calendar.DateLayout)
}

// GetByEmployeeAndDate implements attendance.AttendanceRepository.
func (a *attendanceRepository) GetByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) (*attendance.Record, error) {
	return a.getByEmployeeAndDate(ctx, employeeID, date, false)
}

// GetByEmployeeAndDateForUpdate implements attendance.AttendanceRepository.
func (a *attendanceRepository) GetByEmployeeAndDateForUpdate(ctx context.Context, employeeID string, date time.Time) (*attendance.Record, error) {
	return a.getByEmployeeAndDate(ctx, employeeID, date, true)
}

func (a *attendanceRepository) getByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time, forUpdate bool) (*attendance.Record, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		SELECT ` + joinedColumns + `
		FROM attendances a
		LEFT JOIN employees e ON e.id = a.employee_id
		WHERE a.employee_id = $1 AND a.date = $2::date
	`
	if forUpdate {
		query += ` FOR UPDATE OF a`
	}

	rec, err := a.scanRecord(q.QueryRow(ctx, query, employeeID, a.dateArg(date)), true)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get attendance for employee %s on %s: %w", employeeID, a.dateArg(date), err)
	}
	return &rec, nil
}

// UpsertCheckIn implements attendance.AttendanceRepository.
// Only a row without a check-in is updated, so of two concurrent check-ins exactly one wins.
func (a *attendanceRepository) UpsertCheckIn(ctx context.Context, employeeID string, date time.Time, at time.Time) (attendance.Record, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		INSERT INTO attendances AS a (employee_id, date, check_in)
		VALUES ($1, $2::date, $3)
		ON CONFLICT (employee_id, date) DO UPDATE
		SET check_in = EXCLUDED.check_in, updated_at = NOW()
		WHERE a.check_in IS NULL
		RETURNING ` + recordColumns

	rec, err := a.scanRecord(q.QueryRow(ctx, query, employeeID, a.dateArg(date), at), false)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return attendance.Record{}, attendance.ErrAlreadyCheckedIn
		}
		return attendance.Record{}, fmt.Errorf("failed to check in employee %s: %w", employeeID, err)
	}
	return rec, nil
}

// SaveCheckout implements attendance.AttendanceRepository.
func (a *attendanceRepository) SaveCheckout(ctx context.Context, rec attendance.Record) (attendance.Record, error) {
	if rec.Completion == nil {
		return attendance.Record{}, attendance.ErrNotCheckedIn
	}

	q := GetQuerier(ctx, a.db)

	query := `
		UPDATE attendances AS a
		SET check_out = $2, total_hours = $3, is_late = $4, status = $5, updated_at = NOW()
		WHERE a.id = $1 AND a.check_in IS NOT NULL AND a.check_out IS NULL
		RETURNING ` + recordColumns

	c := rec.Completion
	saved, err := a.scanRecord(q.QueryRow(ctx, query, rec.ID, c.CheckOut, c.TotalHours, c.IsLate, string(c.Status)), false)
	if err == nil {
		saved.Employee = rec.Employee
		return saved, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return attendance.Record{}, fmt.Errorf("failed to check out attendance %s: %w", rec.ID, err)
	}

	// Nothing updated: report why.
	var checkIn, checkOut *time.Time
	err = q.QueryRow(ctx, `SELECT check_in, check_out FROM attendances WHERE id = $1`, rec.ID).Scan(&checkIn, &checkOut)
	switch {
	case errors.Is(err, pgx.ErrNoRows):
		return attendance.Record{}, attendance.ErrAttendanceNotFound
	case err != nil:
		return attendance.Record{}, fmt.Errorf("failed to check attendance %s: %w", rec.ID, err)
	case checkIn == nil:
		return attendance.Record{}, attendance.ErrNotCheckedIn
	default:
		return attendance.Record{}, attendance.ErrAlreadyCheckedOut
	}
}

// QueryRange implements attendance.AttendanceRepository.
func (a *attendanceRepository) QueryRange(ctx context.Context, filter attendance.RangeFilter) ([]attendance.Record, error) {
	q := GetQuerier(ctx, a.db)

	var (
		conditions = []string{"a.date >= $1::date", "a.date <= $2::date"}
		args       = []any{a.dateArg(filter.Start), a.dateArg(filter.End)}
	)

	if filter.EmployeeID != nil {
		args = append(args, *filter.EmployeeID)
		conditions = append(conditions, fmt.Sprintf("a.employee_id = $%d", len(args)))
	}
	if filter.Department != nil {
		args = append(args, *filter.Department)
		conditions = append(conditions, fmt.Sprintf("e.department = $%d", len(args)))
	}
	if filter.Status != nil {
		args = append(args, string(*filter.Status))
		conditions = append(conditions, fmt.Sprintf("a.status = $%d", len(args)))
	}

	query := `
		SELECT ` + joinedColumns + `
		FROM attendances a
		LEFT JOIN employees e ON e.id = a.employee_id
		WHERE ` + strings.Join(conditions, " AND ") + `
		ORDER BY a.date DESC, a.check_in DESC NULLS LAST, a.id
	`
	if filter.Limit > 0 {
		args = append(args, filter.Limit)
		query += fmt.Sprintf(" LIMIT $%d", len(args))
	}

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query attendance range: %w", err)
	}
	defer rows.Close()

	records := []attendance.Record{}
	for rows.Next() {
		rec, err := a.scanRecord(rows, true)
		if err != nil {
			return nil, fmt.Errorf("failed to scan attendance: %w", err)
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating attendance: %w", err)
	}

	return records, nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
