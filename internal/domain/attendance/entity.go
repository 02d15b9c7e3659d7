package attendance

import (
	"time"
)

// Attendance statuses
const (
	StatusPresent = "PRESENT"
	StatusAbsent  = "ABSENT"
	StatusOnLeave = "ON_LEAVE"

	// Report-only status for Saturdays/Sundays without sessions
	StatusWeekend = "WEEKEND"
)

// Overtime approval statuses
const (
	OvertimeNA       = "N/A"
	OvertimePending  = "PENDING"
	OvertimeApproved = "APPROVED"
	OvertimeRejected = "REJECTED"
)

// ExtraAllocation is a granted overtime window. Work performed inside the
// window counts toward overtime at checkout.
type ExtraAllocation struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// Attendance is one check-in session. An employee may have several sessions
// per calendar day; a session is open while CheckOutTime is nil.
type Attendance struct {
	ID               string
	EmployeeID       string
	Date             time.Time // calendar date of check-in, midnight, no time component
	CheckInTime      *time.Time
	CheckOutTime     *time.Time
	Status           string
	LunchDuration    float64
	TotalHours       float64
	OvertimeHours    float64
	OvertimeStatus   string
	ExtraAllocations []ExtraAllocation
	Notes            *string
	CreatedAt        time.Time
	UpdatedAt        time.Time

	// DTO
	EmployeeName *string
}

// DateOf truncates t to its calendar date at local midnight. All Date fields
// are built through this so day grouping never sees a time component.
func DateOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// IsOpen reports whether the session has not been checked out yet.
func (a Attendance) IsOpen() bool {
	return a.CheckOutTime == nil
}
