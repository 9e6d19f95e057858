package dashboard

import "context"

// DashboardService defines the interface for organization-wide attendance views
type DashboardService interface {
	// GetDashboard returns today's snapshot and the weekly trend in one call
	GetDashboard(ctx context.Context) (*DashboardResponse, error)

	// GetDailySnapshot returns the snapshot for a YYYY-MM-DD date, today when empty
	GetDailySnapshot(ctx context.Context, date string) (*DailySnapshot, error)

	// GetWeeklyTrend returns the seven days ending at a YYYY-MM-DD date, today when empty
	GetWeeklyTrend(ctx context.Context, date string) (*WeeklyTrend, error)
}
