package hrapi

import (
	"context"
	"fmt"

	"github.com/spec-kit/hr-console/internal/domain"
	"github.com/spec-kit/hr-console/internal/gateway"
)

// LeavesAPI covers leave requests. Creation and listing serve both roles;
// approval and deletion are admin-only server-side.
type LeavesAPI struct {
	client *gateway.Client
}

// NewLeavesAPI builds the wrapper.
func NewLeavesAPI(client *gateway.Client) *LeavesAPI {
	return &LeavesAPI{client: client}
}

// LeaveRequestPayload creates a new leave request.
type LeaveRequestPayload struct {
	EmployeeID int    `json:"employee_id"`
	LeaveType  string `json:"leave_type"`
	StartDate  string `json:"start_date"`
	EndDate    string `json:"end_date"`
	Reason     string `json:"reason,omitempty"`
}

// List fetches all leave requests visible to the caller.
func (l *LeavesAPI) List(ctx context.Context) ([]domain.LeaveRequest, error) {
	var out []domain.LeaveRequest
	if err := l.client.Get(ctx, "/leaves", &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Get fetches one leave request.
func (l *LeavesAPI) Get(ctx context.Context, id int) (*domain.LeaveRequest, error) {
	var out domain.LeaveRequest
	if err := l.client.Get(ctx, fmt.Sprintf("/leaves/%d", id), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ByEmployee fetches requests for one employee. The service enforces that
// employees only read their own.
func (l *LeavesAPI) ByEmployee(ctx context.Context, employeeID int) ([]domain.LeaveRequest, error) {
	var out []domain.LeaveRequest
	if err := l.client.Get(ctx, fmt.Sprintf("/leaves/employee/%d", employeeID), &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Create submits a new leave request.
func (l *LeavesAPI) Create(ctx context.Context, req LeaveRequestPayload) (*domain.LeaveRequest, error) {
	var out domain.LeaveRequest
	if err := l.client.Post(ctx, "/leaves", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Resolve approves or rejects a request.
func (l *LeavesAPI) Resolve(ctx context.Context, id int, status domain.LeaveStatus) error {
	payload := map[string]string{"status": string(status)}
	return l.client.Put(ctx, fmt.Sprintf("/leaves/approve-reject/%d", id), payload, nil)
}

// Delete removes a request.
func (l *LeavesAPI) Delete(ctx context.Context, id int) error {
	return l.client.Delete(ctx, fmt.Sprintf("/leaves/%d", id))
}
