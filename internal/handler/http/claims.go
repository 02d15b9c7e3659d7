package http

import (
	"net/http"

	"github.com/go-chi/jwtauth/v5"
	"github.com/kalendra-hr/hrms-backend-go/internal/domain/auth"
	"github.com/kalendra-hr/hrms-backend-go/internal/domain/employee"
)

// employeeIDFromRequest reads the caller's employee ID out of the verified
// access token. Admin accounts without a linked employee record get
// ErrEmployeeNotFound on employee-scoped endpoints.
func employeeIDFromRequest(r *http.Request) (string, error) {
	_, claims, err := jwtauth.FromContext(r.Context())
	if err != nil {
		return "", auth.ErrInvalidToken
	}

	id, ok := claims["employee_id"].(string)
	if !ok || id == "" {
		return "", employee.ErrEmployeeNotFound
	}

	return id, nil
}
