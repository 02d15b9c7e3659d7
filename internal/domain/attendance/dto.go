package attendance

import (
	"github.com/kalendra-hr/hrms-backend-go/internal/pkg/validator"
)

// ========================================
// ATTENDANCE DTOs
// ========================================

type AttendanceResponse struct {
	ID               string                `json:"id"`
	EmployeeID       string                `json:"employee_id"`
	EmployeeName     *string               `json:"employee_name,omitempty"`
	Date             string                `json:"date"`
	CheckInTime      *string               `json:"check_in_time,omitempty"`
	CheckOutTime     *string               `json:"check_out_time,omitempty"`
	Status           string                `json:"status"`
	LunchDuration    float64               `json:"lunch_duration"`
	TotalHours       float64               `json:"total_hours"`
	OvertimeHours    float64               `json:"overtime_hours"`
	OvertimeStatus   string                `json:"overtime_status"`
	ExtraAllocations []ExtraWindowResponse `json:"extra_allocations,omitempty"`
	Notes            *string               `json:"notes,omitempty"`
}

// ExtraWindowResponse is a granted overtime window returned to the caller.
type ExtraWindowResponse struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

type TodayStatusResponse struct {
	Date      string               `json:"date"`
	CheckedIn bool                 `json:"checked_in"`
	Sessions  []AttendanceResponse `json:"sessions"`
}

// ========================================
// MONTHLY REPORT DTOs
// ========================================

type MonthlyAttendanceRequest struct {
	EmployeeID string `json:"employee_id"`
	Month      string `json:"month"` // YYYY-MM; malformed input falls back to the current month
}

func (r *MonthlyAttendanceRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type DailyRecord struct {
	Date       string  `json:"date"`
	Status     string  `json:"status"`
	CheckIn    *string `json:"check_in,omitempty"`
	CheckOut   *string `json:"check_out,omitempty"`
	Active     bool    `json:"active"`
	Sessions   int     `json:"sessions"`
	WorkHours  float64 `json:"work_hours"`
	ExtraHours float64 `json:"extra_hours"`
}

type MonthlySummary struct {
	Month            string  `json:"month"`
	TotalWorkingDays int     `json:"total_working_days"`
	PresentDays      int     `json:"present_days"`
	TotalExtraHours  float64 `json:"total_extra_hours"`
}

type MonthlyAttendanceResponse struct {
	Summary      MonthlySummary `json:"summary"`
	DailyRecords []DailyRecord  `json:"daily_records"`
}

// ========================================
// WEEKLY REPORT DTOs
// ========================================

type WeeklyAttendanceRequest struct {
	StartDate string `json:"start_date"` // YYYY-MM-DD
	EndDate   string `json:"end_date"`   // YYYY-MM-DD
}

func (r *WeeklyAttendanceRequest) Validate() error {
	var errs validator.ValidationErrors

	start, startOK := validator.IsValidDate(r.StartDate)
	if !startOK {
		errs = append(errs, validator.ValidationError{
			Field:   "start_date",
			Message: "start_date must be in YYYY-MM-DD format",
		})
	}

	end, endOK := validator.IsValidDate(r.EndDate)
	if !endOK {
		errs = append(errs, validator.ValidationError{
			Field:   "end_date",
			Message: "end_date must be in YYYY-MM-DD format",
		})
	}

	if startOK && endOK && end.Before(start) {
		errs = append(errs, validator.ValidationError{
			Field:   "end_date",
			Message: "end_date cannot be before start_date",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// EmployeeSessions groups one employee's raw sessions for the admin view.
// No presence threshold is applied here.
type EmployeeSessions struct {
	EmployeeID   string               `json:"employee_id"`
	EmployeeName string               `json:"employee_name"`
	Sessions     []AttendanceResponse `json:"sessions"`
}

type WeeklyAttendanceResponse struct {
	StartDate string             `json:"start_date"`
	EndDate   string             `json:"end_date"`
	Employees []EmployeeSessions `json:"employees"`
}
