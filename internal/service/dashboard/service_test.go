package dashboard

import (
	"context"
	"testing"

	"github.com/cmlabs-hris/attendance-backend-go/internal/domain/employee"
	"github.com/cmlabs-hris/attendance-backend-go/internal/pkg/calendar"
	"github.com/cmlabs-hris/attendance-backend-go/internal/repository/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService(t *testing.T) (*DashboardServiceImpl, *memory.Store, *calendar.FixedClock) {
	t.Helper()
	ctx := context.Background()

	store := memory.New(wib)
	for _, emp := range roster() {
		_, err := store.Employees().Create(ctx, emp)
		require.NoError(t, err)
	}
	_, err := store.Employees().Create(ctx, employee.Employee{ID: "m", Name: "Mona", EmployeeCode: "M1", Role: employee.RoleManager})
	require.NoError(t, err)

	clock := calendar.NewFixedClock(at(7, 12, 0))
	svc := NewDashboardService(store.Employees(), store.Attendance(), clock, cal).(*DashboardServiceImpl)
	return svc, store, clock
}

func TestDashboardService_GetDailySnapshot(t *testing.T) {
	ctx := context.Background()
	svc, store, _ := newTestService(t)

	store.Attendance().Seed(closedRecord(t, "a", 7, 9, 0, 17, 0))
	store.Attendance().Seed(openRecord("b", 7, 10, 0))
	store.Attendance().Seed(openRecord("c", 6, 9, 0))

	t.Run("defaults to today", func(t *testing.T) {
		snap, err := svc.GetDailySnapshot(ctx, "")
		require.NoError(t, err)
		assert.Equal(t, "2024-05-07", snap.Date)
		assert.Equal(t, 4, snap.TotalEmployees) // managers excluded
		assert.Equal(t, 2, snap.Present)
		assert.Equal(t, 2, snap.Absent)
		assert.Equal(t, 1, snap.LateCount)
	})

	t.Run("explicit date", func(t *testing.T) {
		snap, err := svc.GetDailySnapshot(ctx, "2024-05-06")
		require.NoError(t, err)
		assert.Equal(t, 1, snap.Present)
		assert.Equal(t, 0, snap.LateCount)
	})

	t.Run("invalid date", func(t *testing.T) {
		_, err := svc.GetDailySnapshot(ctx, "06/05/2024")
		assert.ErrorIs(t, err, calendar.ErrInvalidDate)
	})
}

func TestDashboardService_GetWeeklyTrend(t *testing.T) {
	ctx := context.Background()
	svc, store, _ := newTestService(t)

	store.Attendance().Seed(openRecord("a", 1, 9, 0))
	store.Attendance().Seed(openRecord("a", 7, 9, 45))
	store.Attendance().Seed(openRecord("b", 7, 9, 0))

	trend, err := svc.GetWeeklyTrend(ctx, "")
	require.NoError(t, err)
	require.Len(t, trend.Days, 7)
	assert.Equal(t, 4, trend.TotalEmployees)
	assert.Equal(t, "2024-05-01", trend.Days[0].Date)
	assert.Equal(t, 1, trend.Days[0].Present)
	assert.Equal(t, 2, trend.Days[6].Present)
	assert.Equal(t, 1, trend.Days[6].Late)
	assert.Equal(t, 2, trend.Days[6].Absent)
}

func TestDashboardService_GetDashboard(t *testing.T) {
	ctx := context.Background()
	svc, store, clock := newTestService(t)

	store.Attendance().Seed(openRecord("a", 8, 9, 0))
	clock.Set(at(8, 11, 0))

	resp, err := svc.GetDashboard(ctx)
	require.NoError(t, err)
	assert.Equal(t, "2024-05-08", resp.Summary.Date)
	assert.Equal(t, 1, resp.Summary.Present)
	require.Len(t, resp.Weekly.Days, 7)
	assert.Equal(t, "2024-05-08", resp.Weekly.Days[6].Date)
	assert.Equal(t, 1, resp.Weekly.Days[6].Present)
}
