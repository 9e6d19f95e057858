package jwt

import (
	"context"
	"testing"
	"time"

	"github.com/cmlabs-hris/attendance-backend-go/internal/domain/employee"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAccessToken(t *testing.T) {
	svc := NewJWTService("test-secret", "15m")

	token, expiresAt, err := svc.GenerateAccessToken("emp-1", employee.RoleManager)
	require.NoError(t, err)
	assert.InDelta(t, time.Now().Add(15*time.Minute).Unix(), expiresAt, 5)

	decoded, err := svc.JWTAuth().Decode(token)
	require.NoError(t, err)

	claims, err := decoded.AsMap(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "emp-1", claims["employee_id"])
	assert.Equal(t, "manager", claims["role"])
	assert.Equal(t, TokenTypeAccess, claims["type"])
}

func TestGenerateAccessToken_InvalidExpiration(t *testing.T) {
	svc := NewJWTService("test-secret", "soon")

	_, _, err := svc.GenerateAccessToken("emp-1", employee.RoleEmployee)
	assert.Error(t, err)
}

func TestDecode_WrongSecret(t *testing.T) {
	token, _, err := NewJWTService("one", "1h").GenerateAccessToken("emp-1", employee.RoleEmployee)
	require.NoError(t, err)

	_, err = NewJWTService("two", "1h").JWTAuth().Decode(token)
	assert.Error(t, err)
}
