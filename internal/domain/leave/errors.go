package leave

import "errors"

var (
	ErrLeaveOverlap                 = errors.New("you already have a leave request for this period")
	ErrInsufficientBalance          = errors.New("insufficient leave balance")
	ErrLeaveRequestNotFound         = errors.New("leave request not found")
	ErrLeaveRequestAlreadyProcessed = errors.New("leave request already processed")
)
