package leave

import "time"

// Leave types
const (
	TypePaidTimeOff = "Paid Time Off"
	TypeSickLeave   = "Sick Leave"
	TypeUnpaid      = "Unpaid Leave"
)

// Leave statuses
const (
	StatusPending  = "PENDING"
	StatusApproved = "APPROVED"
	StatusRejected = "REJECTED"
	StatusTaken    = "TAKEN"
)

// Annual allocations per leave type
const (
	AnnualPaidTimeOffDays = 24
	AnnualSickLeaveDays   = 7
)

type Leave struct {
	ID            string
	EmployeeID    string
	StartDate     time.Time
	EndDate       time.Time
	DaysCount     int // weekdays only
	Type          string
	Reason        string
	AttachmentURL *string
	Status        string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
