package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/kalendra-hr/hrms-backend-go/internal/domain/salary"
	"github.com/kalendra-hr/hrms-backend-go/internal/pkg/database"
)

type salaryRepositoryImpl struct {
	db *database.DB
}

func NewSalaryRepository(db *database.DB) salary.SalaryRepository {
	return &salaryRepositoryImpl{db: db}
}

// GetByEmployeeID implements salary.SalaryRepository.
func (r *salaryRepositoryImpl) GetByEmployeeID(ctx context.Context, employeeID string) (salary.EmployeeSalary, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, employee_id, wage, basic_salary, hra, standard_allowance,
			   performance_bonus, lta, fixed_allowance, pf_employee, pf_employer,
			   professional_tax, created_at, updated_at
		FROM employee_salaries
		WHERE employee_id = $1
	`

	var s salary.EmployeeSalary
	err := q.QueryRow(ctx, query, employeeID).Scan(
		&s.ID, &s.EmployeeID, &s.Wage, &s.BasicSalary, &s.HRA, &s.StandardAllowance,
		&s.PerformanceBonus, &s.LTA, &s.FixedAllowance, &s.PFEmployee, &s.PFEmployer,
		&s.ProfessionalTax, &s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return salary.EmployeeSalary{}, salary.ErrSalaryNotFound
		}
		return salary.EmployeeSalary{}, fmt.Errorf("failed to get salary: %w", err)
	}

	return s, nil
}

// Create implements salary.SalaryRepository.
func (r *salaryRepositoryImpl) Create(ctx context.Context, s salary.EmployeeSalary) (salary.EmployeeSalary, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO employee_salaries (
			employee_id, wage, basic_salary, hra, standard_allowance,
			performance_bonus, lta, fixed_allowance, pf_employee, pf_employer, professional_tax
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11
		) RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		s.EmployeeID, s.Wage, s.BasicSalary, s.HRA, s.StandardAllowance,
		s.PerformanceBonus, s.LTA, s.FixedAllowance, s.PFEmployee, s.PFEmployer, s.ProfessionalTax,
	).Scan(&s.ID, &s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		return salary.EmployeeSalary{}, fmt.Errorf("failed to create salary: %w", err)
	}

	return s, nil
}

// Update implements salary.SalaryRepository.
func (r *salaryRepositoryImpl) Update(ctx context.Context, s salary.EmployeeSalary) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE employee_salaries
		SET wage = $1, basic_salary = $2, hra = $3, standard_allowance = $4,
			performance_bonus = $5, lta = $6, fixed_allowance = $7,
			pf_employee = $8, pf_employer = $9, professional_tax = $10, updated_at = NOW()
		WHERE employee_id = $11
	`

	tag, err := q.Exec(ctx, query,
		s.Wage, s.BasicSalary, s.HRA, s.StandardAllowance,
		s.PerformanceBonus, s.LTA, s.FixedAllowance,
		s.PFEmployee, s.PFEmployer, s.ProfessionalTax, s.EmployeeID,
	)
	if err != nil {
		return fmt.Errorf("failed to update salary: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return salary.ErrSalaryNotFound
	}

	return nil
}
