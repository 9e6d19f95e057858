package dashboard

import (
	"testing"
	"time"

	"github.com/cmlabs-hris/attendance-backend-go/internal/domain/attendance"
	"github.com/cmlabs-hris/attendance-backend-go/internal/domain/employee"
	"github.com/cmlabs-hris/attendance-backend-go/internal/pkg/calendar"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	wib = time.FixedZone("WIB", 7*3600)
	cal = calendar.New(wib, calendar.DefaultCutoff)
)

func at(d, hh, mm int) time.Time {
	return time.Date(2024, time.May, d, hh, mm, 0, 0, wib)
}

func openRecord(empID string, d, hh, mm int) attendance.Record {
	checkIn := at(d, hh, mm)
	return attendance.Record{EmployeeID: empID, Date: at(d, 0, 0), CheckIn: &checkIn}
}

func closedRecord(t *testing.T, empID string, d, inH, inM, outH, outM int) attendance.Record {
	t.Helper()
	rec, err := openRecord(empID, d, inH, inM).Complete(at(d, outH, outM), cal.CutoffOn(at(d, 0, 0)))
	require.NoError(t, err)
	return rec
}

func roster() []employee.Employee {
	return []employee.Employee{
		{ID: "a", Name: "Alice", EmployeeCode: "E1", Department: "Engineering"},
		{ID: "b", Name: "Bob", EmployeeCode: "E2", Department: "Sales"},
		{ID: "c", Name: "Cara", EmployeeCode: "E3", Department: "Engineering"},
		{ID: "d", Name: "Dan", EmployeeCode: "E4"},
	}
}

func TestSnapshotDay(t *testing.T) {
	records := []attendance.Record{
		closedRecord(t, "a", 6, 9, 0, 17, 0),  // Present
		openRecord("b", 6, 9, 45),             // open, late by fallback
		closedRecord(t, "c", 6, 10, 0, 12, 0), // Half Day and late
	}

	snap := SnapshotDay(at(6, 15, 0), roster(), records, cal)

	assert.Equal(t, "2024-05-06", snap.Date)
	assert.Equal(t, 4, snap.TotalEmployees)
	assert.Equal(t, 3, snap.Present)
	assert.Equal(t, 1, snap.Absent)
	assert.Equal(t, 2, snap.LateCount)

	require.Len(t, snap.LateEmployees, 2)
	assert.Equal(t, "Bob", snap.LateEmployees[0].Name)
	assert.Equal(t, "Late", snap.LateEmployees[0].Status)
	assert.Equal(t, "Cara", snap.LateEmployees[1].Name)
	assert.Equal(t, "Half Day", snap.LateEmployees[1].Status)

	require.Len(t, snap.AbsentEmployees, 1)
	assert.Equal(t, "d", snap.AbsentEmployees[0].ID)

	require.Len(t, snap.DepartmentStats, 3)
	assert.Equal(t, "Engineering", snap.DepartmentStats[0].Department)
	assert.Equal(t, 2, snap.DepartmentStats[0].TotalEmployees)
	assert.Equal(t, 2, snap.DepartmentStats[0].Present)
	assert.Equal(t, 1, snap.DepartmentStats[0].Late)
	assert.Equal(t, 0, snap.DepartmentStats[0].Absent)
	assert.Equal(t, "Sales", snap.DepartmentStats[1].Department)
	assert.Equal(t, 1, snap.DepartmentStats[1].Late)
	assert.Equal(t, employee.UnknownDepartment, snap.DepartmentStats[2].Department)
	assert.Equal(t, 1, snap.DepartmentStats[2].Absent)
}

func TestSnapshotDay_CutoffBoundary(t *testing.T) {
	records := []attendance.Record{
		openRecord("a", 6, 9, 30),
		openRecord("b", 6, 9, 31),
	}

	snap := SnapshotDay(at(6, 0, 0), roster(), records, cal)
	assert.Equal(t, 1, snap.LateCount)
	assert.Equal(t, "b", snap.LateEmployees[0].ID)
}

func TestSnapshotDay_StoredFlagWins(t *testing.T) {
	// a completed record keeps the flag computed at checkout
	checkIn := at(6, 11, 0)
	rec := attendance.Record{
		EmployeeID: "a",
		Date:       at(6, 0, 0),
		CheckIn:    &checkIn,
		Completion: &attendance.Completion{
			CheckOut:   at(6, 19, 0),
			TotalHours: decimal.NewFromInt(8),
			IsLate:     false,
			Status:     attendance.StatusPresent,
		},
	}

	snap := SnapshotDay(at(6, 0, 0), roster(), []attendance.Record{rec}, cal)
	assert.Equal(t, 0, snap.LateCount)
	assert.Empty(t, snap.LateEmployees)
}

func TestSnapshotDay_Empty(t *testing.T) {
	snap := SnapshotDay(at(6, 0, 0), nil, nil, cal)

	assert.Equal(t, 0, snap.TotalEmployees)
	assert.Equal(t, 0, snap.Present)
	assert.Equal(t, 0, snap.Absent)
	assert.NotNil(t, snap.LateEmployees)
	assert.NotNil(t, snap.AbsentEmployees)
	assert.NotNil(t, snap.DepartmentStats)
}

func TestSnapshotDay_RecordOutsideRoster(t *testing.T) {
	stranger := openRecord("x", 6, 10, 0)
	stranger.Employee = &employee.Employee{ID: "x", Name: "Xena", Department: "Engineering"}
	unjoined := openRecord("y", 6, 10, 0)

	rosterOfTwo := roster()[:2]
	snap := SnapshotDay(at(6, 0, 0), rosterOfTwo, []attendance.Record{stranger, unjoined}, cal)

	assert.Equal(t, 2, snap.Present)
	assert.Equal(t, 0, snap.Absent) // clamped at zero
	assert.Equal(t, 2, snap.LateCount)
	require.Len(t, snap.LateEmployees, 1)
	assert.Equal(t, "Xena", snap.LateEmployees[0].Name)
	assert.Len(t, snap.AbsentEmployees, 2)

	for _, stat := range snap.DepartmentStats {
		assert.Equal(t, 0, stat.Present, stat.Department)
		assert.Equal(t, stat.TotalEmployees, stat.Absent, stat.Department)
	}
}

func TestWeeklyTrend(t *testing.T) {
	byDay := map[string][]attendance.Record{
		"2024-05-01": {openRecord("a", 1, 9, 0)},
		"2024-05-06": {openRecord("a", 6, 9, 0), openRecord("b", 6, 9, 45)},
		"2024-05-07": {closedRecord(t, "c", 7, 10, 0, 19, 0)},
		"2024-04-30": {openRecord("a", 30, 9, 0)}, // outside the window
	}

	trend := WeeklyTrend(at(7, 8, 0), roster(), byDay, cal)

	assert.Equal(t, 4, trend.TotalEmployees)
	require.Len(t, trend.Days, 7)
	assert.Equal(t, "2024-05-01", trend.Days[0].Date)
	assert.Equal(t, "2024-05-07", trend.Days[6].Date)

	assert.Equal(t, 1, trend.Days[0].Present)
	assert.Equal(t, 3, trend.Days[0].Absent)

	assert.Equal(t, 0, trend.Days[1].Present)
	assert.Equal(t, 4, trend.Days[1].Absent)

	assert.Equal(t, 2, trend.Days[5].Present)
	assert.Equal(t, 1, trend.Days[5].Late)
	assert.Equal(t, 2, trend.Days[5].Absent)

	assert.Equal(t, 1, trend.Days[6].Late)
}

func TestWeeklyTrend_AcrossDST(t *testing.T) {
	ny, err := time.LoadLocation("America/New_York")
	if err != nil {
		t.Skip("tzdata unavailable")
	}
	nyCal := calendar.New(ny, calendar.DefaultCutoff)

	// DST starts 2024-03-10
	trend := WeeklyTrend(time.Date(2024, time.March, 12, 12, 0, 0, 0, ny), nil, nil, nyCal)
	require.Len(t, trend.Days, 7)
	assert.Equal(t, "2024-03-06", trend.Days[0].Date)
	assert.Equal(t, "2024-03-10", trend.Days[4].Date)
	assert.Equal(t, "2024-03-12", trend.Days[6].Date)
}
