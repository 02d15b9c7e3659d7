package attendance

import (
	"context"
)

// AttendanceService defines business logic for attendance time accounting
type AttendanceService interface {
	// CheckIn opens a new session for the employee. Fails with
	// ErrAlreadyCheckedIn while another session is open.
	CheckIn(ctx context.Context, employeeID string) (AttendanceResponse, error)

	// CheckOut closes the employee's open session and computes regular and
	// overtime hours. Fails with ErrNoActiveSession if none is open.
	CheckOut(ctx context.Context, employeeID string) (AttendanceResponse, error)

	// RequestExtraTime grants an overtime window on the open session and
	// returns it for display
	RequestExtraTime(ctx context.Context, employeeID string) (ExtraWindowResponse, error)

	// GetTodayStatus returns the employee's sessions for today
	GetTodayStatus(ctx context.Context, employeeID string) (TodayStatusResponse, error)

	// GetMonthlyAttendance aggregates one employee's sessions into per-day
	// records and a monthly summary
	GetMonthlyAttendance(ctx context.Context, req MonthlyAttendanceRequest) (MonthlyAttendanceResponse, error)

	// GetWeeklyAttendance returns raw per-employee sessions in a date range
	// (admin/export view)
	GetWeeklyAttendance(ctx context.Context, req WeeklyAttendanceRequest) (WeeklyAttendanceResponse, error)
}
