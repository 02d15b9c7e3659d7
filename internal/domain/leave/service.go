package leave

import "context"

type LeaveService interface {
	// CreateRequest files a leave request after overlap and balance checks
	CreateRequest(ctx context.Context, req CreateLeaveRequest) (LeaveResponse, error)

	// GetBalances returns remaining allocation per leave type
	GetBalances(ctx context.Context, employeeID string) (BalancesResponse, error)

	// GetMyLeaves lists an employee's requests, newest first
	GetMyLeaves(ctx context.Context, employeeID string) ([]LeaveResponse, error)

	// Approve marks a pending request approved
	Approve(ctx context.Context, id string) (LeaveResponse, error)

	// Reject marks a pending request rejected
	Reject(ctx context.Context, id string) (LeaveResponse, error)
}
