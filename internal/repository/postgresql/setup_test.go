package postgresql_test

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/cmlabs-hris/attendance-backend-go/internal/domain/employee"
	"github.com/cmlabs-hris/attendance-backend-go/internal/pkg/database"
	"github.com/cmlabs-hris/attendance-backend-go/internal/repository/postgresql"
	"github.com/stretchr/testify/require"
)

var wib = time.FixedZone("WIB", 7*3600)

// openTestDB connects to TEST_DATABASE_URL, migrates it and empties the tables.
// Tests are skipped when the variable is unset.
func openTestDB(t *testing.T) *database.DB {
	t.Helper()

	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL not set")
	}

	ctx := context.Background()
	db, err := database.NewPostgreSQLDB(ctx, dsn, database.PoolOptions{MaxConns: 10})
	require.NoError(t, err)
	t.Cleanup(db.Close)

	require.NoError(t, database.RunMigrations(db))
	truncate(t, db)
	t.Cleanup(func() { truncate(t, db) })

	return db
}

func truncate(t *testing.T, db *database.DB) {
	t.Helper()
	_, err := db.Exec(context.Background(), "TRUNCATE TABLE attendances, employees CASCADE")
	require.NoError(t, err)
}

func createEmployee(t *testing.T, db *database.DB, name, code, department string) employee.Employee {
	t.Helper()
	emp, err := postgresql.NewEmployeeRepository(db).Create(context.Background(), employee.Employee{
		Name:         name,
		EmployeeCode: code,
		Department:   department,
	})
	require.NoError(t, err)
	return emp
}

func day(d int) time.Time {
	return time.Date(2024, time.May, d, 0, 0, 0, 0, wib)
}

func at(d, h, m int) time.Time {
	return time.Date(2024, time.May, d, h, m, 0, 0, wib)
}
