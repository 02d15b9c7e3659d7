package salary

import "context"

type SalaryService interface {
	// GetByEmployeeID returns the employee's salary structure, creating a
	// default one on first access
	GetByEmployeeID(ctx context.Context, employeeID string) (SalaryResponse, error)

	// SetWage recomputes the structure from a new wage
	SetWage(ctx context.Context, employeeID string, wage float64) (SalaryResponse, error)
}
