package notification

import "time"

// NotificationType represents the type of notification
type NotificationType string

const (
	TypeOvertimePending NotificationType = "overtime_pending"
	TypeLeaveRequest    NotificationType = "leave_request"
	TypeLeaveApproved   NotificationType = "leave_approved"
	TypeLeaveRejected   NotificationType = "leave_rejected"
)

// Notification is an admin-facing event row.
type Notification struct {
	ID         string
	Type       NotificationType
	EmployeeID string
	Message    string
	Read       bool
	CreatedAt  time.Time
}
