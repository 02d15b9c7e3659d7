package employee

import (
	"github.com/kalendra-hr/hrms-backend-go/internal/pkg/validator"
)

type CreateEmployeeRequest struct {
	FirstName string  `json:"first_name"`
	LastName  string  `json:"last_name"`
	Position  *string `json:"position,omitempty"`
	HireDate  string  `json:"hire_date"` // YYYY-MM-DD
}

func (r *CreateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.FirstName) {
		errs = append(errs, validator.ValidationError{
			Field:   "first_name",
			Message: "first_name is required",
		})
	}

	if validator.IsEmpty(r.LastName) {
		errs = append(errs, validator.ValidationError{
			Field:   "last_name",
			Message: "last_name is required",
		})
	}

	if _, ok := validator.IsValidDate(r.HireDate); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "hire_date",
			Message: "hire_date must be in YYYY-MM-DD format",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type EmployeeResponse struct {
	ID        string  `json:"id"`
	Code      string  `json:"code"`
	FirstName string  `json:"first_name"`
	LastName  string  `json:"last_name"`
	Position  *string `json:"position,omitempty"`
	HireDate  string  `json:"hire_date"`
}
