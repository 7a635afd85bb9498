package domain

// LeaveStatus enumerates leave request states. The remote service is not
// consistent about casing, so comparisons are case-insensitive.
type LeaveStatus string

const (
	LeavePending  LeaveStatus = "pending"
	LeaveApproved LeaveStatus = "approved"
	LeaveRejected LeaveStatus = "rejected"
)

// LeaveRequest mirrors a leave request row from the remote service.
type LeaveRequest struct {
	ID               int         `json:"id"`
	EmployeeID       int         `json:"employee_id"`
	EmployeeFullname string      `json:"employee_fullname,omitempty"`
	LeaveType        string      `json:"leave_type"`
	StartDate        string      `json:"start_date"`
	EndDate          string      `json:"end_date"`
	Status           LeaveStatus `json:"status"`
	Reason           string      `json:"reason,omitempty"`
}
