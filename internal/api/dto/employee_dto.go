package dto

// EmployeeUpsertRequest payload for the employee create/edit modal.
type EmployeeUpsertRequest struct {
	FirstName    string `json:"first_name"`
	LastName     string `json:"last_name"`
	Email        string `json:"email"`
	EmployeeCode string `json:"employee_code"`
	DepartmentID *int   `json:"department_id,omitempty"`
	PositionID   *int   `json:"position_id,omitempty"`
	Status       string `json:"status,omitempty"`
	HireDate     string `json:"hire_date,omitempty"`
	Phone        string `json:"phone,omitempty"`
}
