package employee

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/kalendra-hr/hrms-backend-go/internal/domain/employee"
	"github.com/kalendra-hr/hrms-backend-go/internal/pkg/clock"
	"github.com/kalendra-hr/hrms-backend-go/internal/pkg/database"
	"github.com/kalendra-hr/hrms-backend-go/internal/pkg/validator"
	"github.com/kalendra-hr/hrms-backend-go/internal/repository/postgresql"
)

// codePrefix is the static company prefix of every employee code.
const codePrefix = "OI"

type EmployeeServiceImpl struct {
	db *database.DB
	employee.EmployeeRepository
	clock clock.Clock
}

func NewEmployeeService(db *database.DB, employeeRepo employee.EmployeeRepository, clk clock.Clock) employee.EmployeeService {
	return &EmployeeServiceImpl{
		db:                 db,
		EmployeeRepository: employeeRepo,
		clock:              clk,
	}
}

// initialCode takes the first two letters of a name, uppercased. Names
// shorter than two characters are padded with X.
func initialCode(name string) string {
	code := strings.ToUpper(name)
	if len(code) >= 2 {
		return code[:2]
	}
	return (code + "XX")[:2]
}

// buildEmployeeCode formats codes like OIJODO20250001: company prefix,
// two letters of each name, the year, and a zero-padded sequence.
func buildEmployeeCode(firstName, lastName string, year, seq int) string {
	return fmt.Sprintf("%s%s%s%d%04d", codePrefix, initialCode(firstName), initialCode(lastName), year, seq)
}

// Create implements employee.EmployeeService. Code generation and the
// insert share a transaction so the sequence row lock is held until the
// employee row exists.
func (e *EmployeeServiceImpl) Create(ctx context.Context, req employee.CreateEmployeeRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	hireDate, _ := validator.IsValidDate(req.HireDate)
	year := e.clock.Now().Year()

	var created employee.Employee
	err := postgresql.WithTransaction(ctx, e.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)

		seq, err := e.EmployeeRepository.NextSequence(txCtx, year)
		if err != nil {
			return fmt.Errorf("failed to advance employee code sequence: %w", err)
		}

		created, err = e.EmployeeRepository.Create(txCtx, employee.Employee{
			Code:      buildEmployeeCode(req.FirstName, req.LastName, year, seq),
			FirstName: req.FirstName,
			LastName:  req.LastName,
			Position:  req.Position,
			HireDate:  hireDate,
		})
		if err != nil {
			return fmt.Errorf("failed to create employee: %w", err)
		}
		return nil
	})
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	return mapEmployeeToResponse(created), nil
}

// Get implements employee.EmployeeService.
func (e *EmployeeServiceImpl) Get(ctx context.Context, id string) (employee.EmployeeResponse, error) {
	record, err := e.EmployeeRepository.GetByID(ctx, id)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}
	return mapEmployeeToResponse(record), nil
}

// List implements employee.EmployeeService.
func (e *EmployeeServiceImpl) List(ctx context.Context) ([]employee.EmployeeResponse, error) {
	records, err := e.EmployeeRepository.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}

	resp := make([]employee.EmployeeResponse, 0, len(records))
	for _, record := range records {
		resp = append(resp, mapEmployeeToResponse(record))
	}
	return resp, nil
}

func mapEmployeeToResponse(record employee.Employee) employee.EmployeeResponse {
	return employee.EmployeeResponse{
		ID:        record.ID,
		Code:      record.Code,
		FirstName: record.FirstName,
		LastName:  record.LastName,
		Position:  record.Position,
		HireDate:  record.HireDate.Format("2006-01-02"),
	}
}
