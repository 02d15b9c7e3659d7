package salary

import "context"

type SalaryRepository interface {
	// GetByEmployeeID retrieves the salary structure for an employee.
	// Returns ErrSalaryNotFound when none exists.
	GetByEmployeeID(ctx context.Context, employeeID string) (EmployeeSalary, error)

	// Create persists a new salary structure
	Create(ctx context.Context, salary EmployeeSalary) (EmployeeSalary, error)

	// Update rewrites the component amounts
	Update(ctx context.Context, salary EmployeeSalary) error
}
