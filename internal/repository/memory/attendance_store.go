package memory

import (
	"context"
	"sort"
	"time"

	"github.com/cmlabs-hris/attendance-backend-go/internal/domain/attendance"
	"github.com/google/uuid"
)

type AttendanceStore struct {
	s *Store
}

// clone detaches a record from the map so callers cannot mutate stored state.
func clone(rec attendance.Record) attendance.Record {
	if rec.CheckIn != nil {
		t := *rec.CheckIn
		rec.CheckIn = &t
	}
	if rec.Completion != nil {
		c := *rec.Completion
		rec.Completion = &c
	}
	return rec
}

// joined must be called with s.mu held.
func (a *AttendanceStore) joined(rec attendance.Record) attendance.Record {
	rec = clone(rec)
	if emp, ok := a.s.employees[rec.EmployeeID]; ok {
		rec.Employee = &emp
	}
	return rec
}

func (a *AttendanceStore) GetByEmployeeAndDate(_ context.Context, employeeID string, date time.Time) (*attendance.Record, error) {
	a.s.mu.RLock()
	defer a.s.mu.RUnlock()

	id, ok := a.s.byDay[a.s.dayKey(employeeID, date)]
	if !ok {
		return nil, nil
	}
	rec := a.joined(a.s.records[id])
	return &rec, nil
}

// GetByEmployeeAndDateForUpdate relies on WithinTx for exclusion.
func (a *AttendanceStore) GetByEmployeeAndDateForUpdate(ctx context.Context, employeeID string, date time.Time) (*attendance.Record, error) {
	return a.GetByEmployeeAndDate(ctx, employeeID, date)
}

func (a *AttendanceStore) UpsertCheckIn(_ context.Context, employeeID string, date time.Time, at time.Time) (attendance.Record, error) {
	a.s.mu.Lock()
	defer a.s.mu.Unlock()

	key := a.s.dayKey(employeeID, date)
	ts := now()
	checkIn := at

	if id, ok := a.s.byDay[key]; ok {
		rec := a.s.records[id]
		if rec.CheckIn != nil {
			return attendance.Record{}, attendance.ErrAlreadyCheckedIn
		}
		rec.CheckIn = &checkIn
		rec.UpdatedAt = ts
		a.s.records[id] = rec
		return clone(rec), nil
	}

	rec := attendance.Record{
		ID:         uuid.NewString(),
		EmployeeID: employeeID,
		Date:       a.s.dayOf(date),
		CheckIn:    &checkIn,
		CreatedAt:  ts,
		UpdatedAt:  ts,
	}
	a.s.records[rec.ID] = rec
	a.s.byDay[key] = rec.ID
	return clone(rec), nil
}

func (a *AttendanceStore) SaveCheckout(_ context.Context, rec attendance.Record) (attendance.Record, error) {
	if rec.Completion == nil {
		return attendance.Record{}, attendance.ErrNotCheckedIn
	}

	a.s.mu.Lock()
	defer a.s.mu.Unlock()

	stored, ok := a.s.records[rec.ID]
	switch {
	case !ok:
		return attendance.Record{}, attendance.ErrAttendanceNotFound
	case stored.CheckIn == nil:
		return attendance.Record{}, attendance.ErrNotCheckedIn
	case stored.Completion != nil:
		return attendance.Record{}, attendance.ErrAlreadyCheckedOut
	}

	c := *rec.Completion
	stored.Completion = &c
	stored.UpdatedAt = now()
	a.s.records[rec.ID] = stored

	saved := clone(stored)
	saved.Employee = rec.Employee
	return saved, nil
}

func (a *AttendanceStore) QueryRange(_ context.Context, filter attendance.RangeFilter) ([]attendance.Record, error) {
	a.s.mu.RLock()
	defer a.s.mu.RUnlock()

	start := a.s.dayOf(filter.Start)
	end := a.s.dayOf(filter.End)

	out := []attendance.Record{}
	for _, rec := range a.s.records {
		if rec.Date.Before(start) || rec.Date.After(end) {
			continue
		}
		if filter.EmployeeID != nil && rec.EmployeeID != *filter.EmployeeID {
			continue
		}
		if filter.Department != nil {
			emp, ok := a.s.employees[rec.EmployeeID]
			if !ok || emp.Department != *filter.Department {
				continue
			}
		}
		if filter.Status != nil && (rec.Completion == nil || rec.Completion.Status != *filter.Status) {
			continue
		}
		out = append(out, a.joined(rec))
	}

	sort.Slice(out, func(i, j int) bool {
		if !out[i].Date.Equal(out[j].Date) {
			return out[i].Date.After(out[j].Date)
		}
		ci, cj := out[i].CheckIn, out[j].CheckIn
		switch {
		case ci != nil && cj != nil && !ci.Equal(*cj):
			return ci.After(*cj)
		case ci != nil && cj == nil:
			return true
		case ci == nil && cj != nil:
			return false
		}
		return out[i].ID < out[j].ID
	})

	if filter.Limit > 0 && len(out) > filter.Limit {
		out = out[:filter.Limit]
	}
	return out, nil
}

// Seed inserts a record as-is, replacing any record for the same employee and day.
func (a *AttendanceStore) Seed(rec attendance.Record) attendance.Record {
	a.s.mu.Lock()
	defer a.s.mu.Unlock()

	if rec.ID == "" {
		rec.ID = uuid.NewString()
	}
	rec.Date = a.s.dayOf(rec.Date)
	if rec.CreatedAt.IsZero() {
		rec.CreatedAt = now()
		rec.UpdatedAt = rec.CreatedAt
	}
	rec.Employee = nil

	key := a.s.dayKey(rec.EmployeeID, rec.Date)
	if old, ok := a.s.byDay[key]; ok {
		delete(a.s.records, old)
	}
	a.s.records[rec.ID] = clone(rec)
	a.s.byDay[key] = rec.ID
	return clone(rec)
}
