package employee

import "errors"

var (
	ErrEmployeeNotFound       = errors.New("employee not found")
	ErrEmployeeCodeExists     = errors.New("employee code already exists")
	ErrManagerAccessRequired  = errors.New("manager access required")
	ErrEmployeeIdentityAbsent = errors.New("employee identity missing from token")
)
