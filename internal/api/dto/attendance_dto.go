package dto

// CheckInRequest payload for the check-in action.
type CheckInRequest struct {
	EmployeeID     int    `json:"employee_id"`
	AttendanceDate string `json:"attendance_date"`
}

// CheckOutRequest payload for the check-out action.
type CheckOutRequest struct {
	Status string `json:"status"`
}
