package attendance

import "errors"

// Attendance domain errors
var (
	ErrAlreadyCheckedIn = errors.New("you are already checked in, please check out first")
	ErrNoActiveSession  = errors.New("you are not currently checked in")

	ErrAttendanceNotFound = errors.New("attendance record not found")
)
