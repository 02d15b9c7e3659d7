package employee

import "context"

type EmployeeService interface {
	// Create registers an employee and assigns a generated employee code
	Create(ctx context.Context, req CreateEmployeeRequest) (EmployeeResponse, error)

	// Get retrieves one employee
	Get(ctx context.Context, id string) (EmployeeResponse, error)

	// List retrieves all employees
	List(ctx context.Context) ([]EmployeeResponse, error)
}
