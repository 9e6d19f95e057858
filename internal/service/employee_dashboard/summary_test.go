package employee_dashboard

import (
	"context"
	"testing"
	"time"

	"github.com/cmlabs-hris/attendance-backend-go/internal/domain/attendance"
	"github.com/cmlabs-hris/attendance-backend-go/internal/pkg/calendar"
	"github.com/cmlabs-hris/attendance-backend-go/internal/repository/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	wib = time.FixedZone("WIB", 7*3600)
	cal = calendar.New(wib, calendar.DefaultCutoff)
)

func at(m time.Month, d, hh, mm int) time.Time {
	return time.Date(2024, m, d, hh, mm, 0, 0, wib)
}

func record(t *testing.T, m time.Month, d, inH, inM, outH, outM int) attendance.Record {
	t.Helper()
	checkIn := at(m, d, inH, inM)
	rec := attendance.Record{EmployeeID: "emp-1", Date: at(m, d, 0, 0), CheckIn: &checkIn}
	if outH == 0 {
		return rec
	}
	rec, err := rec.Complete(at(m, d, outH, outM), cal.CutoffOn(rec.Date))
	require.NoError(t, err)
	return rec
}

func TestSummarizeMonth(t *testing.T) {
	records := []attendance.Record{
		record(t, time.May, 1, 9, 0, 17, 0),  // Present 8.00
		record(t, time.May, 2, 10, 0, 18, 0), // Late 8.00
		record(t, time.May, 3, 9, 0, 12, 30), // Half Day 3.50
		record(t, time.May, 6, 9, 15, 0, 0),  // open, counts Present
	}

	summary, err := SummarizeMonth("emp-1", 2024, time.May, records, at(time.May, 10, 12, 0), cal)
	require.NoError(t, err)

	assert.Equal(t, "emp-1", summary.EmployeeID)
	assert.Equal(t, "2024-05", summary.Month)
	assert.Equal(t, 2, summary.PresentDays)
	assert.Equal(t, 1, summary.LateDays)
	assert.Equal(t, 1, summary.HalfDays)
	assert.Equal(t, 6, summary.AbsentDays) // 10 days scanned, 4 recorded
	assert.Equal(t, "19.50", summary.TotalHours)
	assert.Equal(t, 10, summary.DaysConsidered())
}

func TestSummarizeMonth_PastMonthScansWholeMonth(t *testing.T) {
	summary, err := SummarizeMonth("emp-1", 2024, time.February, nil, at(time.May, 10, 0, 0), cal)
	require.NoError(t, err)
	assert.Equal(t, 29, summary.AbsentDays)
	assert.Equal(t, "0.00", summary.TotalHours)
}

func TestSummarizeMonth_FutureMonthInfersNothing(t *testing.T) {
	summary, err := SummarizeMonth("emp-1", 2024, time.June, nil, at(time.May, 10, 0, 0), cal)
	require.NoError(t, err)
	assert.Equal(t, 0, summary.AbsentDays)
	assert.Equal(t, 0, summary.DaysConsidered())
}

func TestSummarizeMonth_FirstDayOfMonth(t *testing.T) {
	summary, err := SummarizeMonth("emp-1", 2024, time.May, nil, at(time.May, 1, 8, 0), cal)
	require.NoError(t, err)
	assert.Equal(t, 1, summary.AbsentDays)
}

func TestSummarizeMonth_IgnoresRecordsOutsideMonth(t *testing.T) {
	records := []attendance.Record{record(t, time.April, 30, 9, 0, 17, 0)}

	summary, err := SummarizeMonth("emp-1", 2024, time.May, records, at(time.May, 2, 8, 0), cal)
	require.NoError(t, err)
	assert.Equal(t, 0, summary.PresentDays)
	assert.Equal(t, 2, summary.AbsentDays)
	assert.Equal(t, "0.00", summary.TotalHours)
}

func TestSummarizeMonth_InvalidMonth(t *testing.T) {
	_, err := SummarizeMonth("emp-1", 2024, time.Month(13), nil, at(time.May, 1, 0, 0), cal)
	assert.ErrorIs(t, err, calendar.ErrInvalidMonth)
}

func TestCalendarOf(t *testing.T) {
	records := []attendance.Record{
		record(t, time.May, 2, 10, 0, 18, 0),
		record(t, time.May, 6, 9, 15, 0, 0),
	}

	days := CalendarOf(records, cal)
	require.Len(t, days, 2)

	late := days["2024-05-02"]
	assert.Equal(t, "Late", late.Status)
	require.NotNil(t, late.TotalHours)
	assert.Equal(t, "8.00", *late.TotalHours)
	assert.NotNil(t, late.CheckOutTime)

	open := days["2024-05-06"]
	assert.Equal(t, "Present", open.Status)
	assert.Nil(t, open.CheckOutTime)
	assert.Nil(t, open.TotalHours)
}

func TestEmployeeDashboardService(t *testing.T) {
	ctx := context.Background()
	store := memory.New(wib)
	store.Attendance().Seed(record(t, time.May, 1, 9, 0, 17, 0))
	store.Attendance().Seed(record(t, time.May, 2, 10, 0, 18, 0))

	other := record(t, time.May, 1, 9, 0, 17, 0)
	other.EmployeeID = "emp-2"
	store.Attendance().Seed(other)

	clock := calendar.NewFixedClock(at(time.May, 3, 12, 0))
	svc := NewEmployeeDashboardService(store.Attendance(), clock, cal)

	t.Run("summary defaults to current month", func(t *testing.T) {
		summary, err := svc.GetMonthlySummary(ctx, "emp-1", "")
		require.NoError(t, err)
		assert.Equal(t, "2024-05", summary.Month)
		assert.Equal(t, 1, summary.PresentDays)
		assert.Equal(t, 1, summary.LateDays)
		assert.Equal(t, 1, summary.AbsentDays)
		assert.Equal(t, "16.00", summary.TotalHours)
	})

	t.Run("summary rejects malformed month", func(t *testing.T) {
		_, err := svc.GetMonthlySummary(ctx, "emp-1", "2024-13")
		assert.ErrorIs(t, err, calendar.ErrInvalidMonth)
	})

	t.Run("calendar", func(t *testing.T) {
		days, err := svc.GetCalendar(ctx, "emp-1", "2024-05")
		require.NoError(t, err)
		assert.Len(t, days, 2)

		days, err = svc.GetCalendar(ctx, "emp-1", "2024-04")
		require.NoError(t, err)
		assert.Empty(t, days)
	})
}
