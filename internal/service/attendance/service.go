package attendance

import (
	"context"
	"fmt"
	"time"

	"github.com/kalendra-hr/hrms-backend-go/internal/domain/attendance"
	"github.com/kalendra-hr/hrms-backend-go/internal/domain/notification"
	"github.com/kalendra-hr/hrms-backend-go/internal/pkg/clock"
)

type AttendanceServiceImpl struct {
	attendance.AttendanceRepository
	notifier notification.NotificationService
	clock    clock.Clock
}

func NewAttendanceService(
	attendanceRepo attendance.AttendanceRepository,
	notifier notification.NotificationService,
	clk clock.Clock,
) attendance.AttendanceService {
	return &AttendanceServiceImpl{
		AttendanceRepository: attendanceRepo,
		notifier:             notifier,
		clock:                clk,
	}
}

// timePtrToString safely converts a *time.Time to a string.
func timePtrToString(t *time.Time) *string {
	if t == nil {
		return nil
	}
	format := t.Format("2006-01-02 15:04:05")
	return &format
}

// CheckIn implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) CheckIn(ctx context.Context, employeeID string) (attendance.AttendanceResponse, error) {
	open, err := a.AttendanceRepository.FindOpenSession(ctx, employeeID)
	if err != nil {
		return attendance.AttendanceResponse{}, fmt.Errorf("failed to look up open session: %w", err)
	}
	if open != nil {
		return attendance.AttendanceResponse{}, attendance.ErrAlreadyCheckedIn
	}

	now := a.clock.Now()
	data := attendance.Attendance{
		EmployeeID:     employeeID,
		Date:           attendance.DateOf(now),
		CheckInTime:    &now,
		Status:         attendance.StatusPresent,
		LunchDuration:  LunchHours,
		OvertimeStatus: attendance.OvertimeNA,
	}

	// Create re-checks the invariant under a lock, so a concurrent check-in
	// racing past the lookup above still cannot open a second session.
	created, err := a.AttendanceRepository.Create(ctx, data)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	return mapAttendanceToResponse(created), nil
}

// CheckOut implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) CheckOut(ctx context.Context, employeeID string) (attendance.AttendanceResponse, error) {
	// Search is not restricted to today: a session may be closed after
	// midnight and still belongs to its check-in date.
	open, err := a.AttendanceRepository.FindOpenSession(ctx, employeeID)
	if err != nil {
		return attendance.AttendanceResponse{}, fmt.Errorf("failed to look up open session: %w", err)
	}
	if open == nil {
		return attendance.AttendanceResponse{}, attendance.ErrNoActiveSession
	}

	now := a.clock.Now()
	total, overtime := calculateHours(*open.CheckInTime, now, open.ExtraAllocations)

	open.CheckOutTime = &now
	open.TotalHours = round2(total)
	open.OvertimeHours = round2(overtime)
	open.LunchDuration = LunchHours
	if overtime > 0 {
		open.OvertimeStatus = attendance.OvertimePending
	} else {
		open.OvertimeStatus = attendance.OvertimeNA
	}

	if err := a.AttendanceRepository.Update(ctx, *open); err != nil {
		return attendance.AttendanceResponse{}, fmt.Errorf("failed to close session: %w", err)
	}

	if open.OvertimeStatus == attendance.OvertimePending {
		a.notifier.Notify(ctx, notification.TypeOvertimePending, employeeID,
			fmt.Sprintf("%.2f overtime hours pending approval", open.OvertimeHours))
	}

	return mapAttendanceToResponse(*open), nil
}

// RequestExtraTime implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) RequestExtraTime(ctx context.Context, employeeID string) (attendance.ExtraWindowResponse, error) {
	open, err := a.AttendanceRepository.FindOpenSession(ctx, employeeID)
	if err != nil {
		return attendance.ExtraWindowResponse{}, fmt.Errorf("failed to look up open session: %w", err)
	}
	if open == nil {
		return attendance.ExtraWindowResponse{}, attendance.ErrNoActiveSession
	}

	window := extraTimeWindow(*open.CheckInTime, a.clock.Now())

	// Append only. Overlap with earlier windows is resolved at checkout by
	// the intersection computation, not deduplicated here.
	open.ExtraAllocations = append(open.ExtraAllocations, window)
	if err := a.AttendanceRepository.Update(ctx, *open); err != nil {
		return attendance.ExtraWindowResponse{}, fmt.Errorf("failed to record extra time allocation: %w", err)
	}

	return attendance.ExtraWindowResponse{
		Start: window.Start.Format("2006-01-02 15:04:05"),
		End:   window.End.Format("2006-01-02 15:04:05"),
	}, nil
}

// GetTodayStatus implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) GetTodayStatus(ctx context.Context, employeeID string) (attendance.TodayStatusResponse, error) {
	today := attendance.DateOf(a.clock.Now())

	sessions, err := a.AttendanceRepository.ListByEmployeeBetween(ctx, employeeID, today, today)
	if err != nil {
		return attendance.TodayStatusResponse{}, fmt.Errorf("failed to list today's sessions: %w", err)
	}

	resp := attendance.TodayStatusResponse{
		Date:     today.Format("2006-01-02"),
		Sessions: make([]attendance.AttendanceResponse, 0, len(sessions)),
	}
	for _, s := range sessions {
		if s.IsOpen() {
			resp.CheckedIn = true
		}
		resp.Sessions = append(resp.Sessions, mapAttendanceToResponse(s))
	}

	return resp, nil
}

// mapAttendanceToResponse converts an Attendance entity to AttendanceResponse
func mapAttendanceToResponse(att attendance.Attendance) attendance.AttendanceResponse {
	windows := make([]attendance.ExtraWindowResponse, 0, len(att.ExtraAllocations))
	for _, alloc := range att.ExtraAllocations {
		windows = append(windows, attendance.ExtraWindowResponse{
			Start: alloc.Start.Format("2006-01-02 15:04:05"),
			End:   alloc.End.Format("2006-01-02 15:04:05"),
		})
	}

	return attendance.AttendanceResponse{
		ID:               att.ID,
		EmployeeID:       att.EmployeeID,
		EmployeeName:     att.EmployeeName,
		Date:             att.Date.Format("2006-01-02"),
		CheckInTime:      timePtrToString(att.CheckInTime),
		CheckOutTime:     timePtrToString(att.CheckOutTime),
		Status:           att.Status,
		LunchDuration:    att.LunchDuration,
		TotalHours:       att.TotalHours,
		OvertimeHours:    att.OvertimeHours,
		OvertimeStatus:   att.OvertimeStatus,
		ExtraAllocations: windows,
		Notes:            att.Notes,
	}
}
