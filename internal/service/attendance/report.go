package attendance

import (
	"context"
	"fmt"
	"time"

	"github.com/kalendra-hr/hrms-backend-go/internal/domain/attendance"
	"github.com/kalendra-hr/hrms-backend-go/internal/pkg/validator"
)

// GetMonthlyAttendance implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) GetMonthlyAttendance(ctx context.Context, req attendance.MonthlyAttendanceRequest) (attendance.MonthlyAttendanceResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.MonthlyAttendanceResponse{}, err
	}

	now := a.clock.Now()
	today := attendance.DateOf(now)

	// Malformed or missing month falls back to the current month.
	month, ok := validator.IsValidMonth(req.Month)
	if !ok {
		month = time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	}
	monthStart := time.Date(month.Year(), month.Month(), 1, 0, 0, 0, 0, now.Location())
	monthLabel := monthStart.Format("2006-01")

	// A month entirely in the future has nothing to report.
	if monthStart.After(today) {
		return attendance.MonthlyAttendanceResponse{
			Summary:      attendance.MonthlySummary{Month: monthLabel},
			DailyRecords: []attendance.DailyRecord{},
		}, nil
	}

	// Clamp the current month to today so future dates are never shown absent.
	monthEnd := monthStart.AddDate(0, 1, -1)
	if monthEnd.After(today) {
		monthEnd = today
	}

	records, err := a.AttendanceRepository.ListByEmployeeBetween(ctx, req.EmployeeID, monthStart, monthEnd)
	if err != nil {
		return attendance.MonthlyAttendanceResponse{}, fmt.Errorf("failed to list attendance records: %w", err)
	}

	byDate := groupByDate(records)

	summary := attendance.MonthlySummary{Month: monthLabel}
	daily := make([]attendance.DailyRecord, 0, monthEnd.Day())

	for d := monthStart; !d.After(monthEnd); d = d.AddDate(0, 0, 1) {
		weekday := d.Weekday()
		if weekday != time.Saturday && weekday != time.Sunday {
			summary.TotalWorkingDays++
		}

		rec := buildDailyRecord(d, byDate[d.Format("2006-01-02")])
		if rec.Status == attendance.StatusPresent && rec.WorkHours >= MinPresentHours {
			summary.PresentDays++
		}
		summary.TotalExtraHours += rec.ExtraHours

		daily = append(daily, rec)
	}

	summary.TotalExtraHours = round2(summary.TotalExtraHours)

	return attendance.MonthlyAttendanceResponse{
		Summary:      summary,
		DailyRecords: daily,
	}, nil
}

// buildDailyRecord collapses one calendar day's sessions into a single row.
func buildDailyRecord(date time.Time, sessions []attendance.Attendance) attendance.DailyRecord {
	rec := attendance.DailyRecord{
		Date:     date.Format("2006-01-02"),
		Sessions: len(sessions),
	}

	if len(sessions) == 0 {
		if wd := date.Weekday(); wd == time.Saturday || wd == time.Sunday {
			rec.Status = attendance.StatusWeekend
		} else {
			rec.Status = attendance.StatusAbsent
		}
		return rec
	}

	rec.Status = sessions[0].Status
	for _, s := range sessions {
		if s.Status == attendance.StatusPresent {
			rec.Status = attendance.StatusPresent
			break
		}
	}

	first := sessions[0]
	last := sessions[len(sessions)-1]
	rec.CheckIn = timePtrToString(first.CheckInTime)
	rec.CheckOut = timePtrToString(last.CheckOutTime)

	var workHours, extraHours float64
	for _, s := range sessions {
		if s.IsOpen() {
			rec.Active = true
			continue
		}
		if s.CheckInTime != nil {
			workHours += s.CheckOutTime.Sub(*s.CheckInTime).Hours()
		}
		extraHours += s.OvertimeHours
	}
	rec.WorkHours = round2(workHours)
	rec.ExtraHours = round2(extraHours)

	// A day that never reached the presence floor does not count as worked,
	// unless a session is still open and could still get there.
	if rec.Status == attendance.StatusPresent && rec.WorkHours < MinPresentHours && !rec.Active {
		rec.Status = attendance.StatusAbsent
	}

	return rec
}

// GetWeeklyAttendance implements attendance.AttendanceService.
// Raw session data for the admin spreadsheet view; the minimum-presence
// threshold does not apply here.
func (a *AttendanceServiceImpl) GetWeeklyAttendance(ctx context.Context, req attendance.WeeklyAttendanceRequest) (attendance.WeeklyAttendanceResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.WeeklyAttendanceResponse{}, err
	}

	start, _ := validator.IsValidDate(req.StartDate)
	end, _ := validator.IsValidDate(req.EndDate)

	records, err := a.AttendanceRepository.ListBetween(ctx, start, end)
	if err != nil {
		return attendance.WeeklyAttendanceResponse{}, fmt.Errorf("failed to list attendance records: %w", err)
	}

	resp := attendance.WeeklyAttendanceResponse{
		StartDate: req.StartDate,
		EndDate:   req.EndDate,
		Employees: make([]attendance.EmployeeSessions, 0),
	}

	index := make(map[string]int)
	for _, att := range records {
		i, ok := index[att.EmployeeID]
		if !ok {
			name := att.EmployeeID
			if att.EmployeeName != nil {
				name = *att.EmployeeName
			}
			resp.Employees = append(resp.Employees, attendance.EmployeeSessions{
				EmployeeID:   att.EmployeeID,
				EmployeeName: name,
			})
			i = len(resp.Employees) - 1
			index[att.EmployeeID] = i
		}
		resp.Employees[i].Sessions = append(resp.Employees[i].Sessions, mapAttendanceToResponse(att))
	}

	return resp, nil
}

// groupByDate buckets sessions by their calendar date, preserving the
// repository's ascending check-in order within each day.
func groupByDate(records []attendance.Attendance) map[string][]attendance.Attendance {
	byDate := make(map[string][]attendance.Attendance)
	for _, rec := range records {
		key := rec.Date.Format("2006-01-02")
		byDate[key] = append(byDate[key], rec)
	}
	return byDate
}
