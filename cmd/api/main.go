package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/cmlabs-hris/attendance-backend-go/internal/config"
	"github.com/cmlabs-hris/attendance-backend-go/internal/domain/attendance"
	"github.com/cmlabs-hris/attendance-backend-go/internal/domain/employee"
	appHTTP "github.com/cmlabs-hris/attendance-backend-go/internal/handler/http"
	"github.com/cmlabs-hris/attendance-backend-go/internal/pkg/calendar"
	"github.com/cmlabs-hris/attendance-backend-go/internal/pkg/database"
	"github.com/cmlabs-hris/attendance-backend-go/internal/pkg/jwt"
	"github.com/cmlabs-hris/attendance-backend-go/internal/repository/memory"
	"github.com/cmlabs-hris/attendance-backend-go/internal/repository/postgresql"
	attendanceService "github.com/cmlabs-hris/attendance-backend-go/internal/service/attendance"
	dashboardService "github.com/cmlabs-hris/attendance-backend-go/internal/service/dashboard"
	employeeService "github.com/cmlabs-hris/attendance-backend-go/internal/service/employee"
	employeeDashboardService "github.com/cmlabs-hris/attendance-backend-go/internal/service/employee_dashboard"
	reportService "github.com/cmlabs-hris/attendance-backend-go/internal/service/report"
	"github.com/go-chi/httplog/v3"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		os.Exit(1)
	}

	level := parseLevel(cfg.App.LogLevel)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level:       level,
		ReplaceAttr: httplog.SchemaECS.Concise(cfg.App.Env != "production").ReplaceAttr,
	})).With(
		slog.String("app", "attendance-backend"),
		slog.String("env", cfg.App.Env),
	)
	slog.SetDefault(logger)

	cal, err := cfg.Calendar()
	if err != nil {
		slog.Error("invalid calendar configuration", slog.String("error", err.Error()))
		os.Exit(1)
	}
	clock := calendar.SystemClock{}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	var (
		tx             database.Transactor
		attendanceRepo attendance.AttendanceRepository
		employeeRepo   employee.EmployeeRepository
	)

	switch cfg.Store.Driver {
	case config.StoreDriverMemory:
		store := memory.New(cal.Location)
		tx, attendanceRepo, employeeRepo = store, store.Attendance(), store.Employees()
		slog.Warn("using in-memory store; data is lost on restart")
	case config.StoreDriverPostgres:
		db, err := database.NewPostgreSQLDB(ctx, cfg.DatabaseURL(), database.PoolOptions{MaxConns: cfg.Database.MaxConns})
		if err != nil {
			slog.Error("error connecting to database", slog.String("error", err.Error()))
			os.Exit(1)
		}
		defer db.Close()

		if cfg.Database.Migrate {
			if err := database.RunMigrations(db); err != nil {
				slog.Error("error running migrations", slog.String("error", err.Error()))
				os.Exit(1)
			}
		}

		tx = postgresql.NewTransactor(db)
		attendanceRepo = postgresql.NewAttendanceRepository(db, cal.Location)
		employeeRepo = postgresql.NewEmployeeRepository(db)
	}

	JWTService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration)

	attendanceSvc := attendanceService.NewAttendanceService(tx, attendanceRepo, employeeRepo, clock, cal)
	empDashboardSvc := employeeDashboardService.NewEmployeeDashboardService(attendanceRepo, clock, cal)
	dashboardSvc := dashboardService.NewDashboardService(employeeRepo, attendanceRepo, clock, cal)
	employeeSvc := employeeService.NewEmployeeService(employeeRepo)
	reportSvc := reportService.NewReportService(attendanceRepo, employeeRepo, clock, cal)

	router := appHTTP.NewRouter(JWTService, appHTTP.Handlers{
		Attendance:        appHTTP.NewAttendanceHandler(attendanceSvc),
		EmployeeDashboard: appHTTP.NewEmployeeDashboardHandler(empDashboardSvc),
		Dashboard:         appHTTP.NewDashboardHandler(dashboardSvc),
		Employee:          appHTTP.NewEmployeeHandler(employeeSvc),
		Report:            appHTTP.NewReportHandler(reportSvc),
	}, appHTTP.RouterOptions{
		Logger:         logger,
		LogLevel:       level,
		AllowedOrigins: cfg.CORS.AllowedOrigins,
	})

	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.App.Port),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		slog.Info("server running",
			slog.String("addr", server.Addr),
			slog.String("store", cfg.Store.Driver),
			slog.String("timezone", cal.Location.String()),
			slog.String("office_start", cal.Cutoff.String()),
		)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("server error", slog.String("error", err.Error()))
			stop()
		}
	}()

	<-ctx.Done()
	slog.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		slog.Error("graceful shutdown failed", slog.String("error", err.Error()))
	}
	slog.Info("server stopped")
}

func parseLevel(s string) slog.Level {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
