package leave

import (
	"context"
	"time"
)

type LeaveRepository interface {
	// Create persists a new leave request
	Create(ctx context.Context, leave Leave) (Leave, error)

	// GetByID retrieves one leave request
	GetByID(ctx context.Context, id string) (Leave, error)

	// UpdateStatus sets the request status
	UpdateStatus(ctx context.Context, id string, status string) error

	// ListByEmployee retrieves an employee's requests, newest first
	ListByEmployee(ctx context.Context, employeeID string) ([]Leave, error)

	// ListActiveByEmployee retrieves PENDING/APPROVED/TAKEN requests,
	// used for overlap and balance checks
	ListActiveByEmployee(ctx context.Context, employeeID string) ([]Leave, error)

	// HasOverlap reports whether an active request intersects [start, end]
	HasOverlap(ctx context.Context, employeeID string, start, end time.Time) (bool, error)
}
