package leave

import (
	"context"
	"fmt"
	"time"

	"github.com/kalendra-hr/hrms-backend-go/internal/domain/leave"
	"github.com/kalendra-hr/hrms-backend-go/internal/domain/notification"
	"github.com/kalendra-hr/hrms-backend-go/internal/pkg/validator"
)

type LeaveServiceImpl struct {
	leave.LeaveRepository
	notifier notification.NotificationService
}

func NewLeaveService(leaveRepo leave.LeaveRepository, notifier notification.NotificationService) leave.LeaveService {
	return &LeaveServiceImpl{
		LeaveRepository: leaveRepo,
		notifier:        notifier,
	}
}

// weekdayCount counts Monday through Friday days in [start, end] inclusive.
// The full range is stored; only weekdays consume balance.
func weekdayCount(start, end time.Time) int {
	count := 0
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		if wd := d.Weekday(); wd != time.Saturday && wd != time.Sunday {
			count++
		}
	}
	return count
}

// CreateRequest implements leave.LeaveService.
func (l *LeaveServiceImpl) CreateRequest(ctx context.Context, req leave.CreateLeaveRequest) (leave.LeaveResponse, error) {
	if err := req.Validate(); err != nil {
		return leave.LeaveResponse{}, err
	}

	start, _ := validator.IsValidDate(req.StartDate)
	end, _ := validator.IsValidDate(req.EndDate)

	overlap, err := l.LeaveRepository.HasOverlap(ctx, req.EmployeeID, start, end)
	if err != nil {
		return leave.LeaveResponse{}, fmt.Errorf("failed to check leave overlap: %w", err)
	}
	if overlap {
		return leave.LeaveResponse{}, leave.ErrLeaveOverlap
	}

	daysCount := weekdayCount(start, end)

	if req.Type != leave.TypeUnpaid {
		balances, err := l.GetBalances(ctx, req.EmployeeID)
		if err != nil {
			return leave.LeaveResponse{}, err
		}

		available := balances.PaidTimeOff
		if req.Type == leave.TypeSickLeave {
			available = balances.SickLeave
		}
		if daysCount > available {
			return leave.LeaveResponse{}, leave.ErrInsufficientBalance
		}
	}

	created, err := l.LeaveRepository.Create(ctx, leave.Leave{
		EmployeeID:    req.EmployeeID,
		StartDate:     start,
		EndDate:       end,
		DaysCount:     daysCount,
		Type:          req.Type,
		Reason:        req.Reason,
		AttachmentURL: req.AttachmentURL,
		Status:        leave.StatusPending,
	})
	if err != nil {
		return leave.LeaveResponse{}, fmt.Errorf("failed to create leave request: %w", err)
	}

	l.notifier.Notify(ctx, notification.TypeLeaveRequest, req.EmployeeID,
		fmt.Sprintf("%s request for %d day(s) starting %s", req.Type, daysCount, req.StartDate))

	return mapLeaveToResponse(created), nil
}

// GetBalances implements leave.LeaveService. Pending requests reserve
// balance, so the remainder can go negative when over-requested.
func (l *LeaveServiceImpl) GetBalances(ctx context.Context, employeeID string) (leave.BalancesResponse, error) {
	active, err := l.LeaveRepository.ListActiveByEmployee(ctx, employeeID)
	if err != nil {
		return leave.BalancesResponse{}, fmt.Errorf("failed to list active leaves: %w", err)
	}

	usedPTO, usedSick := 0, 0
	for _, record := range active {
		switch record.Type {
		case leave.TypePaidTimeOff:
			usedPTO += record.DaysCount
		case leave.TypeSickLeave:
			usedSick += record.DaysCount
		}
	}

	return leave.BalancesResponse{
		PaidTimeOff: leave.AnnualPaidTimeOffDays - usedPTO,
		SickLeave:   leave.AnnualSickLeaveDays - usedSick,
	}, nil
}

// GetMyLeaves implements leave.LeaveService.
func (l *LeaveServiceImpl) GetMyLeaves(ctx context.Context, employeeID string) ([]leave.LeaveResponse, error) {
	records, err := l.LeaveRepository.ListByEmployee(ctx, employeeID)
	if err != nil {
		return nil, fmt.Errorf("failed to list leave requests: %w", err)
	}

	resp := make([]leave.LeaveResponse, 0, len(records))
	for _, record := range records {
		resp = append(resp, mapLeaveToResponse(record))
	}
	return resp, nil
}

// Approve implements leave.LeaveService.
func (l *LeaveServiceImpl) Approve(ctx context.Context, id string) (leave.LeaveResponse, error) {
	return l.setStatus(ctx, id, leave.StatusApproved, notification.TypeLeaveApproved)
}

// Reject implements leave.LeaveService.
func (l *LeaveServiceImpl) Reject(ctx context.Context, id string) (leave.LeaveResponse, error) {
	return l.setStatus(ctx, id, leave.StatusRejected, notification.TypeLeaveRejected)
}

func (l *LeaveServiceImpl) setStatus(ctx context.Context, id string, status string, typ notification.NotificationType) (leave.LeaveResponse, error) {
	record, err := l.LeaveRepository.GetByID(ctx, id)
	if err != nil {
		return leave.LeaveResponse{}, err
	}
	if record.Status != leave.StatusPending {
		return leave.LeaveResponse{}, leave.ErrLeaveRequestAlreadyProcessed
	}

	if err := l.LeaveRepository.UpdateStatus(ctx, id, status); err != nil {
		return leave.LeaveResponse{}, fmt.Errorf("failed to update leave status: %w", err)
	}
	record.Status = status

	l.notifier.Notify(ctx, typ, record.EmployeeID,
		fmt.Sprintf("%s request starting %s has been %s", record.Type, record.StartDate.Format("2006-01-02"), status))

	return mapLeaveToResponse(record), nil
}

func mapLeaveToResponse(record leave.Leave) leave.LeaveResponse {
	return leave.LeaveResponse{
		ID:            record.ID,
		EmployeeID:    record.EmployeeID,
		StartDate:     record.StartDate.Format("2006-01-02"),
		EndDate:       record.EndDate.Format("2006-01-02"),
		DaysCount:     record.DaysCount,
		Type:          record.Type,
		Reason:        record.Reason,
		AttachmentURL: record.AttachmentURL,
		Status:        record.Status,
		CreatedAt:     record.CreatedAt.Format("2006-01-02 15:04:05"),
	}
}
