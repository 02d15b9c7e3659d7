package employee

import "context"

type EmployeeRepository interface {
	// Create persists a new employee
	Create(ctx context.Context, employee Employee) (Employee, error)

	// GetByID retrieves an employee by ID
	GetByID(ctx context.Context, id string) (Employee, error)

	// GetByUserID retrieves the employee linked to a user account
	GetByUserID(ctx context.Context, userID string) (Employee, error)

	// List retrieves all employees ordered by name
	List(ctx context.Context) ([]Employee, error)

	// NextSequence atomically increments and returns the ID sequence for a
	// year. Must run inside a transaction with the sequence row locked.
	NextSequence(ctx context.Context, year int) (int, error)
}
