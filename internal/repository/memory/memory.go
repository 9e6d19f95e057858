package memory

import (
	"context"
	"sync"
	"time"

	"github.com/cmlabs-hris/attendance-backend-go/internal/domain/attendance"
	"github.com/cmlabs-hris/attendance-backend-go/internal/domain/employee"
	"github.com/cmlabs-hris/attendance-backend-go/internal/pkg/calendar"
)

// Store keeps employees and attendance records in process memory. It backs
// tests and STORE_DRIVER=memory.
type Store struct {
	mu        sync.RWMutex
	loc       *time.Location
	employees map[string]employee.Employee
	records   map[string]attendance.Record // by record id
	byDay     map[string]string            // employee id + day -> record id

	txMu sync.Mutex
}

func New(loc *time.Location) *Store {
	if loc == nil {
		loc = time.Local
	}
	return &Store{
		loc:       loc,
		employees: make(map[string]employee.Employee),
		records:   make(map[string]attendance.Record),
		byDay:     make(map[string]string),
	}
}

func (s *Store) Employees() *EmployeeStore {
	return &EmployeeStore{s: s}
}

func (s *Store) Attendance() *AttendanceStore {
	return &AttendanceStore{s: s}
}

type txKey struct{}

// WithinTx implements database.Transactor by running transactions one at a
// time. Writes are applied immediately, there is no rollback.
func (s *Store) WithinTx(ctx context.Context, fn func(ctx context.Context) error) error {
	if ctx.Value(txKey{}) != nil {
		return fn(ctx)
	}
	s.txMu.Lock()
	defer s.txMu.Unlock()
	return fn(context.WithValue(ctx, txKey{}, struct{}{}))
}

func (s *Store) dayKey(employeeID string, date time.Time) string {
	return employeeID + "|" + date.In(s.loc).Format(calendar.DateLayout)
}

func (s *Store) dayOf(t time.Time) time.Time {
	lt := t.In(s.loc)
	return time.Date(lt.Year(), lt.Month(), lt.Day(), 0, 0, 0, 0, s.loc)
}

func now() time.Time {
	return time.Now().UTC()
}
