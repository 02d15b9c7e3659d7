package salary

import (
	"context"
	"errors"
	"fmt"

	"github.com/kalendra-hr/hrms-backend-go/internal/domain/salary"
)

// DefaultWage seeds the salary structure when an employee has none yet.
const DefaultWage = 50000.00

// Component ratios of the wage breakdown.
const (
	basicRate       = 0.50 // of wage
	hraRate         = 0.50 // of basic
	pfRate          = 0.12 // of basic, employee and employer alike
	professionalTax = 200.00
)

type SalaryServiceImpl struct {
	salary.SalaryRepository
}

func NewSalaryService(salaryRepo salary.SalaryRepository) salary.SalaryService {
	return &SalaryServiceImpl{
		SalaryRepository: salaryRepo,
	}
}

// calculateStructure derives every component from the wage. The fixed
// allowance is the balancing figure: whatever the basic and HRA leave over,
// floored at zero.
func calculateStructure(employeeID string, wage float64) salary.EmployeeSalary {
	basic := wage * basicRate
	hra := basic * hraRate
	pf := basic * pfRate

	fixedAllowance := wage - (basic + hra)
	if fixedAllowance < 0 {
		fixedAllowance = 0
	}

	return salary.EmployeeSalary{
		EmployeeID:      employeeID,
		Wage:            wage,
		BasicSalary:     basic,
		HRA:             hra,
		FixedAllowance:  fixedAllowance,
		PFEmployee:      pf,
		PFEmployer:      pf,
		ProfessionalTax: professionalTax,
	}
}

// GetByEmployeeID implements salary.SalaryService. A missing record is
// created with the default wage so first access always returns a structure.
func (s *SalaryServiceImpl) GetByEmployeeID(ctx context.Context, employeeID string) (salary.SalaryResponse, error) {
	record, err := s.SalaryRepository.GetByEmployeeID(ctx, employeeID)
	if err != nil {
		if !errors.Is(err, salary.ErrSalaryNotFound) {
			return salary.SalaryResponse{}, fmt.Errorf("failed to get salary: %w", err)
		}

		record, err = s.SalaryRepository.Create(ctx, calculateStructure(employeeID, DefaultWage))
		if err != nil {
			return salary.SalaryResponse{}, fmt.Errorf("failed to create default salary: %w", err)
		}
	}

	return mapSalaryToResponse(record), nil
}

// SetWage implements salary.SalaryService.
func (s *SalaryServiceImpl) SetWage(ctx context.Context, employeeID string, wage float64) (salary.SalaryResponse, error) {
	structure := calculateStructure(employeeID, wage)

	existing, err := s.SalaryRepository.GetByEmployeeID(ctx, employeeID)
	if err != nil {
		if !errors.Is(err, salary.ErrSalaryNotFound) {
			return salary.SalaryResponse{}, fmt.Errorf("failed to get salary: %w", err)
		}

		created, err := s.SalaryRepository.Create(ctx, structure)
		if err != nil {
			return salary.SalaryResponse{}, fmt.Errorf("failed to create salary: %w", err)
		}
		return mapSalaryToResponse(created), nil
	}

	structure.ID = existing.ID
	if err := s.SalaryRepository.Update(ctx, structure); err != nil {
		return salary.SalaryResponse{}, fmt.Errorf("failed to update salary: %w", err)
	}

	return mapSalaryToResponse(structure), nil
}

func mapSalaryToResponse(record salary.EmployeeSalary) salary.SalaryResponse {
	return salary.SalaryResponse{
		EmployeeID:        record.EmployeeID,
		Wage:              record.Wage,
		BasicSalary:       record.BasicSalary,
		HRA:               record.HRA,
		StandardAllowance: record.StandardAllowance,
		PerformanceBonus:  record.PerformanceBonus,
		LTA:               record.LTA,
		FixedAllowance:    record.FixedAllowance,
		PFEmployee:        record.PFEmployee,
		PFEmployer:        record.PFEmployer,
		ProfessionalTax:   record.ProfessionalTax,
	}
}
