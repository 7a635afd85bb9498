package domain

// Account models a login account managed through the admin users screen.
type Account struct {
	ID         int    `json:"id"`
	Username   string `json:"username"`
	Role       Role   `json:"role"`
	EmployeeID *int   `json:"employee_id,omitempty"`
}
