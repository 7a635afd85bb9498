package dto

// LeaveCreateRequest payload for the leave request modal.
type LeaveCreateRequest struct {
	EmployeeID int    `json:"employee_id"`
	LeaveType  string `json:"leave_type"`
	StartDate  string `json:"start_date"`
	EndDate    string `json:"end_date"`
	Reason     string `json:"reason,omitempty"`
}

// LeaveResolveRequest payload for approving or rejecting a request.
type LeaveResolveRequest struct {
	Status string `json:"status"`
}
