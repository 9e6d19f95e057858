package dashboard

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/cmlabs-hris/attendance-backend-go/internal/domain/attendance"
	"github.com/cmlabs-hris/attendance-backend-go/internal/domain/dashboard"
	"github.com/cmlabs-hris/attendance-backend-go/internal/domain/employee"
	"github.com/cmlabs-hris/attendance-backend-go/internal/pkg/calendar"
	"golang.org/x/sync/errgroup"
)

type DashboardServiceImpl struct {
	employeeRepo   employee.EmployeeRepository
	attendanceRepo attendance.AttendanceRepository
	clock          calendar.Clock
	cal            calendar.Calendar
}

func NewDashboardService(
	employeeRepo employee.EmployeeRepository,
	attendanceRepo attendance.AttendanceRepository,
	clock calendar.Clock,
	cal calendar.Calendar,
) dashboard.DashboardService {
	return &DashboardServiceImpl{
		employeeRepo:   employeeRepo,
		attendanceRepo: attendanceRepo,
		clock:          clock,
		cal:            cal,
	}
}

// GetDashboard returns today's snapshot and the weekly trend, loaded concurrently
func (s *DashboardServiceImpl) GetDashboard(ctx context.Context) (*dashboard.DashboardResponse, error) {
	today := s.cal.DayOf(s.clock.Now())

	var (
		summary dashboard.DailySnapshot
		weekly  dashboard.WeeklyTrend
	)

	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		snap, err := s.snapshotFor(gCtx, today)
		if err != nil {
			return err
		}
		summary = snap
		return nil
	})

	g.Go(func() error {
		trend, err := s.trendFor(gCtx, today)
		if err != nil {
			return err
		}
		weekly = trend
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return &dashboard.DashboardResponse{
		Summary: summary,
		Weekly:  weekly,
	}, nil
}

func (s *DashboardServiceImpl) GetDailySnapshot(ctx context.Context, date string) (*dashboard.DailySnapshot, error) {
	day, err := s.cal.ParseDate(date, s.clock.Now())
	if err != nil {
		return nil, err
	}

	snap, err := s.snapshotFor(ctx, day)
	if err != nil {
		return nil, err
	}
	return &snap, nil
}

func (s *DashboardServiceImpl) GetWeeklyTrend(ctx context.Context, date string) (*dashboard.WeeklyTrend, error) {
	day, err := s.cal.ParseDate(date, s.clock.Now())
	if err != nil {
		return nil, err
	}

	trend, err := s.trendFor(ctx, day)
	if err != nil {
		return nil, err
	}
	return &trend, nil
}

func (s *DashboardServiceImpl) snapshotFor(ctx context.Context, day time.Time) (dashboard.DailySnapshot, error) {
	roster, err := s.employeeRepo.ListActive(ctx)
	if err != nil {
		slog.Error("failed to load roster", "error", err)
		return dashboard.DailySnapshot{}, fmt.Errorf("failed to load roster: %w", err)
	}

	records, err := s.attendanceRepo.QueryRange(ctx, attendance.RangeFilter{
		Start: day,
		End:   s.cal.EndOfDay(day),
	})
	if err != nil {
		slog.Error("failed to load daily attendance", "date", s.cal.DateKey(day), "error", err)
		return dashboard.DailySnapshot{}, fmt.Errorf("failed to load attendance: %w", err)
	}

	return SnapshotDay(day, roster, records, s.cal), nil
}

// trendFor loads the whole seven day window in one query and buckets it by day.
func (s *DashboardServiceImpl) trendFor(ctx context.Context, day time.Time) (dashboard.WeeklyTrend, error) {
	roster, err := s.employeeRepo.ListActive(ctx)
	if err != nil {
		slog.Error("failed to load roster", "error", err)
		return dashboard.WeeklyTrend{}, fmt.Errorf("failed to load roster: %w", err)
	}

	records, err := s.attendanceRepo.QueryRange(ctx, attendance.RangeFilter{
		Start: s.cal.AddDays(day, -6),
		End:   s.cal.EndOfDay(day),
	})
	if err != nil {
		slog.Error("failed to load weekly attendance", "date", s.cal.DateKey(day), "error", err)
		return dashboard.WeeklyTrend{}, fmt.Errorf("failed to load attendance: %w", err)
	}

	byDay := make(map[string][]attendance.Record, 7)
	for _, rec := range records {
		key := s.cal.DateKey(rec.Date)
		byDay[key] = append(byDay[key], rec)
	}

	return WeeklyTrend(day, roster, byDay, s.cal), nil
}
