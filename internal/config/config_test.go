package config

import (
	"testing"

	"github.com/cmlabs-hris/attendance-backend-go/internal/pkg/calendar"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setBaseEnv(t *testing.T) {
	t.Setenv("JWT_SECRET_KEY", "test-secret")
	t.Setenv("DB_PASSWORD", "secret")
	t.Setenv("APP_TIMEZONE", "UTC")
}

func TestLoad_Defaults(t *testing.T) {
	setBaseEnv(t)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.App.Port)
	assert.Equal(t, 5432, cfg.Database.Port)
	assert.Equal(t, int32(25), cfg.Database.MaxConns)
	assert.True(t, cfg.Database.Migrate)
	assert.Equal(t, StoreDriverPostgres, cfg.Store.Driver)
	assert.Equal(t, "1h", cfg.JWT.AccessExpiration)
	assert.Equal(t, "09:30", cfg.Attendance.OfficeStart)
	assert.NotEmpty(t, cfg.CORS.AllowedOrigins)

	cal, err := cfg.Calendar()
	require.NoError(t, err)
	assert.Equal(t, calendar.DefaultCutoff, cal.Cutoff)
	assert.Equal(t, "UTC", cal.Location.String())
}

func TestLoad_Overrides(t *testing.T) {
	setBaseEnv(t)
	t.Setenv("APP_PORT", "9090")
	t.Setenv("OFFICE_START_TIME", "08:45")
	t.Setenv("STORE_DRIVER", "Memory")
	t.Setenv("DB_PASSWORD", "")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.example, https://b.example,")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.App.Port)
	assert.Equal(t, StoreDriverMemory, cfg.Store.Driver)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.CORS.AllowedOrigins)

	cal, err := cfg.Calendar()
	require.NoError(t, err)
	assert.Equal(t, calendar.TimeOfDay{Hour: 8, Minute: 45}, cal.Cutoff)
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name string
		key  string
		val  string
	}{
		{"missing secret", "JWT_SECRET_KEY", ""},
		{"bad port", "APP_PORT", "http"},
		{"bad driver", "STORE_DRIVER", "mongo"},
		{"bad timezone", "APP_TIMEZONE", "Mars/Olympus"},
		{"bad office start", "OFFICE_START_TIME", "9.30"},
		{"bad expiration", "JWT_ACCESS_EXPIRATION_TIME", "forever"},
		{"bad max conns", "DB_MAX_CONNS", "-1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setBaseEnv(t)
			t.Setenv(tt.key, tt.val)

			_, err := Load()
			assert.Error(t, err)
		})
	}
}

func TestLoad_PostgresRequiresPassword(t *testing.T) {
	setBaseEnv(t)
	t.Setenv("DB_PASSWORD", "")

	_, err := Load()
	assert.ErrorContains(t, err, "DB_PASSWORD")
}

func TestDatabaseURL(t *testing.T) {
	cfg := &Config{Database: DatabaseConfig{
		Host: "db", Port: 5432, User: "app", Password: "p@ss", Name: "attendance", SSLMode: "disable",
	}}
	assert.Equal(t, "postgres://app:p%40ss@db:5432/attendance?sslmode=disable", cfg.DatabaseURL())
}
