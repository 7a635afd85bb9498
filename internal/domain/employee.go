package domain

// EmployeeStatus represents lifecycle states for an employee record.
type EmployeeStatus string

const (
	EmployeeStatusActive   EmployeeStatus = "Active"
	EmployeeStatusInactive EmployeeStatus = "Inactive"
)

// Employee mirrors the employee record served by the remote HR service.
// The console treats most fields as opaque display data.
type Employee struct {
	ID             int            `json:"id"`
	FirstName      string         `json:"first_name"`
	LastName       string         `json:"last_name"`
	Email          string         `json:"email"`
	EmployeeCode   string         `json:"employee_code"`
	DepartmentID   *int           `json:"department_id,omitempty"`
	DepartmentName string         `json:"department_name"`
	PositionID     *int           `json:"position_id,omitempty"`
	PositionName   string         `json:"position_name"`
	Status         EmployeeStatus `json:"status"`
	HireDate       string         `json:"hire_date"`
	Phone          string         `json:"phone,omitempty"`
}

// FullName joins first and last name for search and display.
func (e Employee) FullName() string {
	return e.FirstName + " " + e.LastName
}
