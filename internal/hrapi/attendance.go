package hrapi

import (
	"context"
	"fmt"

	"github.com/spec-kit/hr-console/internal/domain"
	"github.com/spec-kit/hr-console/internal/gateway"
)

// AttendanceAPI covers attendance tracking. Listing and deletion are
// admin-only; check-in/out and the per-employee reports serve both roles.
type AttendanceAPI struct {
	client *gateway.Client
}

// NewAttendanceAPI builds the wrapper.
func NewAttendanceAPI(client *gateway.Client) *AttendanceAPI {
	return &AttendanceAPI{client: client}
}

// CheckInRequest opens an attendance record for the day.
type CheckInRequest struct {
	EmployeeID     int    `json:"employee_id"`
	AttendanceDate string `json:"attendance_date"`
}

// MonthlyReport summarizes one employee's month.
type MonthlyReport struct {
	EmployeeID int     `json:"employee_id"`
	Month      int     `json:"month"`
	Year       int     `json:"year"`
	Present    int     `json:"present_days"`
	Absent     int     `json:"absent_days"`
	Late       int     `json:"late_days"`
	TotalHours float64 `json:"total_hours"`
}

// TotalHours reports cumulative worked hours.
type TotalHours struct {
	EmployeeID int     `json:"employee_id"`
	TotalHours float64 `json:"total_hours"`
}

// List fetches all attendance records.
func (a *AttendanceAPI) List(ctx context.Context) ([]domain.AttendanceRecord, error) {
	var out []domain.AttendanceRecord
	if err := a.client.Get(ctx, "/attendance", &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Get fetches one record.
func (a *AttendanceAPI) Get(ctx context.Context, id int) (*domain.AttendanceRecord, error) {
	var out domain.AttendanceRecord
	if err := a.client.Get(ctx, fmt.Sprintf("/attendance/%d", id), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// CheckIn opens today's record for an employee.
func (a *AttendanceAPI) CheckIn(ctx context.Context, req CheckInRequest) error {
	return a.client.Post(ctx, "/attendance/check-in", req, nil)
}

// CheckOut closes a record with its final status.
func (a *AttendanceAPI) CheckOut(ctx context.Context, id int, status domain.AttendanceStatus) error {
	payload := map[string]string{"status": string(status)}
	return a.client.Put(ctx, fmt.Sprintf("/attendance/check-out/%d", id), payload, nil)
}

// Delete removes a record.
func (a *AttendanceAPI) Delete(ctx context.Context, id int) error {
	return a.client.Delete(ctx, fmt.Sprintf("/attendance/%d", id))
}

// Report fetches one employee's monthly report.
func (a *AttendanceAPI) Report(ctx context.Context, employeeID, month, year int) (*MonthlyReport, error) {
	var out MonthlyReport
	path := fmt.Sprintf("/attendance/report/%d?month=%d&year=%d", employeeID, month, year)
	if err := a.client.Get(ctx, path, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Hours fetches cumulative worked hours for an employee.
func (a *AttendanceAPI) Hours(ctx context.Context, employeeID int) (*TotalHours, error) {
	var out TotalHours
	if err := a.client.Get(ctx, fmt.Sprintf("/attendance/total-hours/%d", employeeID), &out); err != nil {
		return nil, err
	}
	return &out, nil
}
