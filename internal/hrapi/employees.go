package hrapi

import (
	"context"
	"fmt"

	"github.com/spec-kit/hr-console/internal/domain"
	"github.com/spec-kit/hr-console/internal/gateway"
)

// EmployeesAPI covers the admin-only employee collection.
type EmployeesAPI struct {
	client *gateway.Client
}

// NewEmployeesAPI builds the wrapper.
func NewEmployeesAPI(client *gateway.Client) *EmployeesAPI {
	return &EmployeesAPI{client: client}
}

// EmployeeRequest is the create/update payload.
type EmployeeRequest struct {
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

// List fetches all employees.
func (e *EmployeesAPI) List(ctx context.Context) ([]domain.Employee, error) {
	var out []domain.Employee
	if err := e.client.Get(ctx, "/employees", &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Get fetches one employee.
func (e *EmployeesAPI) Get(ctx context.Context, id int) (*domain.Employee, error) {
	var out domain.Employee
	if err := e.client.Get(ctx, fmt.Sprintf("/employees/%d", id), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Create adds an employee.
func (e *EmployeesAPI) Create(ctx context.Context, req EmployeeRequest) (*domain.Employee, error) {
	var out domain.Employee
	if err := e.client.Post(ctx, "/employees", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Update replaces an employee record.
func (e *EmployeesAPI) Update(ctx context.Context, id int, req EmployeeRequest) (*domain.Employee, error) {
	var out domain.Employee
	if err := e.client.Put(ctx, fmt.Sprintf("/employees/%d", id), req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Delete removes an employee.
func (e *EmployeesAPI) Delete(ctx context.Context, id int) error {
	return e.client.Delete(ctx, fmt.Sprintf("/employees/%d", id))
}
