package employee

import "errors"

var (
	ErrEmployeeNotFound = errors.New("employee record not found")
)
