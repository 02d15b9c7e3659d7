package salary

import "time"

// EmployeeSalary is the salary structure for one employee. Components are
// derived from the wage by CalculateStructure.
type EmployeeSalary struct {
	ID                string
	EmployeeID        string
	Wage              float64
	BasicSalary       float64
	HRA               float64
	StandardAllowance float64
	PerformanceBonus  float64
	LTA               float64
	FixedAllowance    float64
	PFEmployee        float64
	PFEmployer        float64
	ProfessionalTax   float64
	CreatedAt         time.Time
	UpdatedAt         time.Time
}
