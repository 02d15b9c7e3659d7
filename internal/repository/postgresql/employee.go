package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/kalendra-hr/hrms-backend-go/internal/domain/employee"
	"github.com/kalendra-hr/hrms-backend-go/internal/pkg/database"
)

type employeeRepositoryImpl struct {
	db *database.DB
}

func NewEmployeeRepository(db *database.DB) employee.EmployeeRepository {
	return &employeeRepositoryImpl{db: db}
}

const employeeColumns = `
	id, user_id, code, first_name, last_name, position, hire_date, created_at, updated_at
`

func scanEmployee(row pgx.Row) (employee.Employee, error) {
	var emp employee.Employee
	err := row.Scan(
		&emp.ID, &emp.UserID, &emp.Code, &emp.FirstName, &emp.LastName,
		&emp.Position, &emp.HireDate, &emp.CreatedAt, &emp.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		return employee.Employee{}, err
	}
	return emp, nil
}

// Create implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) Create(ctx context.Context, emp employee.Employee) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO employees (user_id, code, first_name, last_name, position, hire_date)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		emp.UserID, emp.Code, emp.FirstName, emp.LastName, emp.Position, emp.HireDate,
	).Scan(&emp.ID, &emp.CreatedAt, &emp.UpdatedAt)
	if err != nil {
		return employee.Employee{}, fmt.Errorf("failed to create employee: %w", err)
	}

	return emp, nil
}

// GetByID implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	emp, err := scanEmployee(q.QueryRow(ctx, `SELECT `+employeeColumns+` FROM employees WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, employee.ErrEmployeeNotFound) {
			return employee.Employee{}, err
		}
		return employee.Employee{}, fmt.Errorf("failed to get employee by id: %w", err)
	}

	return emp, nil
}

// GetByUserID implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) GetByUserID(ctx context.Context, userID string) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	emp, err := scanEmployee(q.QueryRow(ctx, `SELECT `+employeeColumns+` FROM employees WHERE user_id = $1`, userID))
	if err != nil {
		if errors.Is(err, employee.ErrEmployeeNotFound) {
			return employee.Employee{}, err
		}
		return employee.Employee{}, fmt.Errorf("failed to get employee by user id: %w", err)
	}

	return emp, nil
}

// List implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) List(ctx context.Context) ([]employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, `SELECT `+employeeColumns+` FROM employees ORDER BY first_name ASC, last_name ASC`)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}
	defer rows.Close()

	var employees []employee.Employee
	for rows.Next() {
		emp, err := scanEmployee(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan employee: %w", err)
		}
		employees = append(employees, emp)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read employee rows: %w", err)
	}

	return employees, nil
}

// NextSequence implements employee.EmployeeRepository. The sequence row is
// locked with SELECT FOR UPDATE, so the caller's transaction serializes
// concurrent code generation for the same year.
func (r *employeeRepositoryImpl) NextSequence(ctx context.Context, year int) (int, error) {
	q := GetQuerier(ctx, r.db)

	if _, err := q.Exec(ctx,
		`INSERT INTO employee_id_sequences (year, current_seq) VALUES ($1, 0) ON CONFLICT (year) DO NOTHING`,
		year,
	); err != nil {
		return 0, fmt.Errorf("failed to seed sequence row: %w", err)
	}

	var current int
	err := q.QueryRow(ctx,
		`SELECT current_seq FROM employee_id_sequences WHERE year = $1 FOR UPDATE`,
		year,
	).Scan(&current)
	if err != nil {
		return 0, fmt.Errorf("failed to lock sequence row: %w", err)
	}

	next := current + 1
	if _, err := q.Exec(ctx,
		`UPDATE employee_id_sequences SET current_seq = $1 WHERE year = $2`,
		next, year,
	); err != nil {
		return 0, fmt.Errorf("failed to advance sequence: %w", err)
	}

	return next, nil
}
