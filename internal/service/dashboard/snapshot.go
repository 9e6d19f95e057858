package dashboard

import (
	"sort"
	"time"

	"github.com/cmlabs-hris/attendance-backend-go/internal/domain/attendance"
	"github.com/cmlabs-hris/attendance-backend-go/internal/domain/dashboard"
	"github.com/cmlabs-hris/attendance-backend-go/internal/domain/employee"
	"github.com/cmlabs-hris/attendance-backend-go/internal/pkg/calendar"
)

// SnapshotDay partitions the roster for one calendar day. records must all
// belong to day; records of employees outside the roster are counted in the
// totals but never attributed to a department.
func SnapshotDay(day time.Time, roster []employee.Employee, records []attendance.Record, cal calendar.Calendar) dashboard.DailySnapshot {
	day = cal.DayOf(day)
	cutoff := cal.CutoffOn(day)

	members := make(map[string]employee.Employee, len(roster))
	for _, emp := range roster {
		members[emp.ID] = emp
	}

	snapshot := dashboard.DailySnapshot{
		Date:            day.Format(calendar.DateLayout),
		TotalEmployees:  len(roster),
		LateEmployees:   []dashboard.LateEmployee{},
		AbsentEmployees: []dashboard.EmployeeRef{},
		DepartmentStats: []dashboard.DepartmentStat{},
	}

	active := make(map[string]bool, len(records))
	late := make(map[string]bool)
	for _, rec := range records {
		if !rec.HasActivity() {
			continue
		}
		snapshot.Present++
		active[rec.EmployeeID] = true

		if !rec.LateAt(cutoff) {
			continue
		}
		snapshot.LateCount++
		late[rec.EmployeeID] = true

		ref, known := refFor(rec, members)
		if !known {
			continue
		}
		status := attendance.StatusLate
		if rec.Completion != nil {
			status = rec.Completion.Status
		}
		snapshot.LateEmployees = append(snapshot.LateEmployees, dashboard.LateEmployee{
			EmployeeRef: ref,
			CheckInTime: rec.CheckIn,
			Status:      string(status),
		})
	}

	snapshot.Absent = max(len(roster)-snapshot.Present, 0)

	stats := make(map[string]*dashboard.DepartmentStat)
	for _, emp := range roster {
		dept := emp.DepartmentOrUnknown()
		stat, ok := stats[dept]
		if !ok {
			stat = &dashboard.DepartmentStat{Department: dept}
			stats[dept] = stat
		}
		stat.TotalEmployees++

		if !active[emp.ID] {
			snapshot.AbsentEmployees = append(snapshot.AbsentEmployees, toRef(emp))
			continue
		}
		stat.Present++
		if late[emp.ID] {
			stat.Late++
		}
	}

	for _, stat := range stats {
		stat.Absent = max(stat.TotalEmployees-stat.Present, 0)
		snapshot.DepartmentStats = append(snapshot.DepartmentStats, *stat)
	}
	sort.Slice(snapshot.DepartmentStats, func(i, j int) bool {
		return snapshot.DepartmentStats[i].Department < snapshot.DepartmentStats[j].Department
	})

	return snapshot
}

// WeeklyTrend reduces the seven days ending at today, oldest first.
// recordsByDay is keyed by calendar.DateKey.
func WeeklyTrend(today time.Time, roster []employee.Employee, recordsByDay map[string][]attendance.Record, cal calendar.Calendar) dashboard.WeeklyTrend {
	end := cal.DayOf(today)
	trend := dashboard.WeeklyTrend{
		TotalEmployees: len(roster),
		Days:           make([]dashboard.TrendDay, 0, 7),
	}

	for _, day := range cal.Days(cal.AddDays(end, -6), end) {
		key := day.Format(calendar.DateLayout)
		snap := SnapshotDay(day, roster, recordsByDay[key], cal)
		trend.Days = append(trend.Days, dashboard.TrendDay{
			Date:    key,
			Present: snap.Present,
			Late:    snap.LateCount,
			Absent:  snap.Absent,
		})
	}
	return trend
}

func toRef(emp employee.Employee) dashboard.EmployeeRef {
	return dashboard.EmployeeRef{
		ID:           emp.ID,
		Name:         emp.Name,
		EmployeeCode: emp.EmployeeCode,
		Department:   emp.Department,
	}
}

// refFor prefers the roster entry and falls back to the joined employee.
func refFor(rec attendance.Record, members map[string]employee.Employee) (dashboard.EmployeeRef, bool) {
	if emp, ok := members[rec.EmployeeID]; ok {
		return toRef(emp), true
	}
	if rec.Employee != nil {
		return toRef(*rec.Employee), true
	}
	return dashboard.EmployeeRef{}, false
}
