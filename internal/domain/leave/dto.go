package leave

import (
	"github.com/kalendra-hr/hrms-backend-go/internal/pkg/validator"
)

type CreateLeaveRequest struct {
	EmployeeID    string  `json:"-"`
	StartDate     string  `json:"start_date"` // YYYY-MM-DD
	EndDate       string  `json:"end_date"`   // YYYY-MM-DD
	Type          string  `json:"type"`
	Reason        string  `json:"reason"`
	AttachmentURL *string `json:"attachment_url,omitempty"`
}

func (r *CreateLeaveRequest) Validate() error {
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
			Message: "start date cannot be after end date",
		})
	}

	if !validator.IsInSlice(r.Type, []string{TypePaidTimeOff, TypeSickLeave, TypeUnpaid}) {
		errs = append(errs, validator.ValidationError{
			Field:   "type",
			Message: "type must be one of: Paid Time Off, Sick Leave, Unpaid Leave",
		})
	}

	if validator.IsEmpty(r.Reason) {
		errs = append(errs, validator.ValidationError{
			Field:   "reason",
			Message: "reason is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type LeaveResponse struct {
	ID            string  `json:"id"`
	EmployeeID    string  `json:"employee_id"`
	StartDate     string  `json:"start_date"`
	EndDate       string  `json:"end_date"`
	DaysCount     int     `json:"days_count"`
	Type          string  `json:"type"`
	Reason        string  `json:"reason"`
	AttachmentURL *string `json:"attachment_url,omitempty"`
	Status        string  `json:"status"`
	CreatedAt     string  `json:"created_at"`
}

type BalancesResponse struct {
	PaidTimeOff int `json:"paid_time_off"`
	SickLeave   int `json:"sick_leave"`
}
