package dto

// PayrollUpsertRequest payload for the payroll create/edit modal.
type PayrollUpsertRequest struct {
	EmployeeID int     `json:"employee_id"`
	BaseSalary float64 `json:"base_salary"`
	Bonus      float64 `json:"bonus"`
	Deductions float64 `json:"deductions"`
	PayMonth   int     `json:"pay_month"`
	PayYear    int     `json:"pay_year"`
}

// DeductLeaveRequest payload for the leave deduction calculator.
type DeductLeaveRequest struct {
	EmployeeID    int     `json:"employee_id"`
	BaseSalary    float64 `json:"base_salary"`
	TotalWorkDays int     `json:"total_work_days"`
	Month         int     `json:"month"`
	Year          int     `json:"year"`
}
