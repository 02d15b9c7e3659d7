package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/kalendra-hr/hrms-backend-go/internal/domain/salary"
	"github.com/kalendra-hr/hrms-backend-go/internal/handler/http/response"
	"github.com/kalendra-hr/hrms-backend-go/internal/pkg/validator"
)

type SalaryHandler interface {
	GetMySalary(w http.ResponseWriter, r *http.Request)
	SetWage(w http.ResponseWriter, r *http.Request)
}

type salaryHandlerImpl struct {
	salaryService salary.SalaryService
}

func NewSalaryHandler(salaryService salary.SalaryService) SalaryHandler {
	return &salaryHandlerImpl{
		salaryService: salaryService,
	}
}

// GetMySalary implements SalaryHandler.
func (h *salaryHandlerImpl) GetMySalary(w http.ResponseWriter, r *http.Request) {
	employeeID, err := employeeIDFromRequest(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := h.salaryService.GetByEmployeeID(r.Context(), employeeID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

type setWageRequest struct {
	Wage float64 `json:"wage"`
}

func (r *setWageRequest) Validate() error {
	if r.Wage <= 0 {
		return validator.ValidationErrors{{
			Field:   "wage",
			Message: "wage must be greater than zero",
		}}
	}
	return nil
}

// SetWage implements SalaryHandler.
func (h *salaryHandlerImpl) SetWage(w http.ResponseWriter, r *http.Request) {
	var req setWageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := h.salaryService.SetWage(r.Context(), chi.URLParam(r, "id"), req.Wage)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Salary structure updated", result)
}
