package domain

// Position represents a job title within a department.
type Position struct {
	ID           int    `json:"id"`
	Title        string `json:"title"`
	DepartmentID *int   `json:"department_id,omitempty"`
}
