// Command seed creates an employee in the configured postgres store and prints
// an access token for it. There is no registration endpoint; this is how local
// environments get their first manager.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/cmlabs-hris/attendance-backend-go/internal/config"
	"github.com/cmlabs-hris/attendance-backend-go/internal/domain/employee"
	"github.com/cmlabs-hris/attendance-backend-go/internal/pkg/database"
	"github.com/cmlabs-hris/attendance-backend-go/internal/pkg/jwt"
	"github.com/cmlabs-hris/attendance-backend-go/internal/repository/postgresql"
)

func main() {
	name := flag.String("name", "", "employee name")
	code := flag.String("code", "", "employee code, unique")
	department := flag.String("department", "", "department")
	role := flag.String("role", string(employee.RoleEmployee), "employee or manager")
	flag.Parse()

	if err := run(*name, *code, *department, employee.Role(*role)); err != nil {
		fmt.Fprintln(os.Stderr, "seed:", err)
		os.Exit(1)
	}
}

func run(name, code, department string, role employee.Role) error {
	if name == "" || code == "" {
		return errors.New("-name and -code are required")
	}
	if !role.IsValid() {
		return fmt.Errorf("invalid role %q", role)
	}

	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if cfg.Store.Driver != config.StoreDriverPostgres {
		return fmt.Errorf("seed needs STORE_DRIVER=%s", config.StoreDriverPostgres)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	db, err := database.NewPostgreSQLDB(ctx, cfg.DatabaseURL(), database.PoolOptions{MaxConns: 2, MinConns: 1})
	if err != nil {
		return fmt.Errorf("connect: %w", err)
	}
	defer db.Close()

	if cfg.Database.Migrate {
		if err := database.RunMigrations(db); err != nil {
			return err
		}
	}

	emp, err := postgresql.NewEmployeeRepository(db).Create(ctx, employee.Employee{
		Name:         name,
		EmployeeCode: code,
		Department:   department,
		Role:         role,
	})
	if err != nil {
		return err
	}

	token, expiresAt, err := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration).GenerateAccessToken(emp.ID, emp.Role)
	if err != nil {
		return err
	}

	fmt.Printf("employee_id=%s\nrole=%s\nexpires_at=%s\ntoken=%s\n",
		emp.ID, emp.Role, time.Unix(expiresAt, 0).Format(time.RFC3339), token)
	return nil
}
