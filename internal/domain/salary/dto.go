package salary

type SalaryResponse struct {
	EmployeeID        string  `json:"employee_id"`
	Wage              float64 `json:"wage"`
	BasicSalary       float64 `json:"basic_salary"`
	HRA               float64 `json:"hra"`
	StandardAllowance float64 `json:"standard_allowance"`
	PerformanceBonus  float64 `json:"performance_bonus"`
	LTA               float64 `json:"lta"`
	FixedAllowance    float64 `json:"fixed_allowance"`
	PFEmployee        float64 `json:"pf_employee"`
	PFEmployer        float64 `json:"pf_employer"`
	ProfessionalTax   float64 `json:"professional_tax"`
}
