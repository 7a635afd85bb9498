package domain

import "strconv"

// PayrollRecord mirrors a payment row from the remote service.
type PayrollRecord struct {
	ID         int     `json:"id"`
	EmployeeID int     `json:"employee_id"`
	FirstName  string  `json:"first_name,omitempty"`
	LastName   string  `json:"last_name,omitempty"`
	BaseSalary float64 `json:"base_salary"`
	Bonus      float64 `json:"bonus"`
	Deductions float64 `json:"deductions"`
	NetSalary  float64 `json:"net_salary"`
	PayMonth   int     `json:"pay_month"`
	PayYear    int     `json:"pay_year"`
	PaidAt     string  `json:"paid_at,omitempty"`
}

// EmployeeName falls back to the employee id when the joined name is absent.
func (p PayrollRecord) EmployeeName() string {
	if p.FirstName != "" && p.LastName != "" {
		return p.FirstName + " " + p.LastName
	}
	return "ID " + strconv.Itoa(p.EmployeeID)
}
