package employee

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEmployee_DepartmentOrUnknown(t *testing.T) {
	assert.Equal(t, "Engineering", Employee{Department: "Engineering"}.DepartmentOrUnknown())
	assert.Equal(t, UnknownDepartment, Employee{}.DepartmentOrUnknown())
}

func TestRole_IsValid(t *testing.T) {
	assert.True(t, RoleEmployee.IsValid())
	assert.True(t, RoleManager.IsValid())
	assert.False(t, Role("owner").IsValid())
	assert.True(t, Employee{Role: RoleManager}.IsManager())
	assert.False(t, Employee{Role: RoleEmployee}.IsManager())
}
