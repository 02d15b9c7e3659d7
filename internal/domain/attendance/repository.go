package attendance

import (
	"context"
	"time"
)

// AttendanceRepository defines data access methods for attendance sessions.
// All session state lives behind this interface; the service keeps none.
type AttendanceRepository interface {
	// Create persists a new attendance session
	Create(ctx context.Context, attendance Attendance) (Attendance, error)

	// Update rewrites checkout time, computed hours, statuses and allocations
	Update(ctx context.Context, attendance Attendance) error

	// FindOpenSession returns the employee's session with no checkout, or nil.
	// Not restricted to today: a session may be closed after midnight.
	FindOpenSession(ctx context.Context, employeeID string) (*Attendance, error)

	// ListByEmployeeBetween returns sessions for one employee with date in
	// [start, end], ascending by date then check-in time
	ListByEmployeeBetween(ctx context.Context, employeeID string, start, end time.Time) ([]Attendance, error)

	// ListBetween returns sessions for all employees with date in [start, end],
	// with employee names attached
	ListBetween(ctx context.Context, start, end time.Time) ([]Attendance, error)
}
