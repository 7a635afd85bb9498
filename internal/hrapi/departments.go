package hrapi

import (
	"context"
	"fmt"

	"github.com/spec-kit/hr-console/internal/domain"
	"github.com/spec-kit/hr-console/internal/gateway"
)

// DepartmentsAPI covers the departments collection. Reads are open to any
// authenticated user; writes are admin-only server-side.
type DepartmentsAPI struct {
	client *gateway.Client
}

// NewDepartmentsAPI builds the wrapper.
func NewDepartmentsAPI(client *gateway.Client) *DepartmentsAPI {
	return &DepartmentsAPI{client: client}
}

// DepartmentRequest is the create/update payload.
type DepartmentRequest struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

// List fetches all departments.
func (d *DepartmentsAPI) List(ctx context.Context) ([]domain.Department, error) {
	var out []domain.Department
	if err := d.client.Get(ctx, "/departments", &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Get fetches one department.
func (d *DepartmentsAPI) Get(ctx context.Context, id int) (*domain.Department, error) {
	var out domain.Department
	if err := d.client.Get(ctx, fmt.Sprintf("/departments/%d", id), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Create adds a department.
func (d *DepartmentsAPI) Create(ctx context.Context, req DepartmentRequest) (*domain.Department, error) {
	var out domain.Department
	if err := d.client.Post(ctx, "/departments", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Update replaces a department.
func (d *DepartmentsAPI) Update(ctx context.Context, id int, req DepartmentRequest) (*domain.Department, error) {
	var out domain.Department
	if err := d.client.Put(ctx, fmt.Sprintf("/departments/%d", id), req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Delete removes a department.
func (d *DepartmentsAPI) Delete(ctx context.Context, id int) error {
	return d.client.Delete(ctx, fmt.Sprintf("/departments/%d", id))
}
