package domain

// AttendanceStatus enumerates daily attendance outcomes.
type AttendanceStatus string

const (
	AttendancePresent AttendanceStatus = "Present"
	AttendanceAbsent  AttendanceStatus = "Absent"
	AttendanceLate    AttendanceStatus = "Late"
)

// AttendanceRecord mirrors a daily attendance row from the remote service.
// AttendanceDate may carry a time component; bucketing keeps the date part only.
type AttendanceRecord struct {
	ID             int              `json:"id"`
	EmployeeID     int              `json:"employee_id"`
	AttendanceDate string           `json:"attendance_date"`
	CheckInTime    string           `json:"check_in_time,omitempty"`
	CheckOutTime   string           `json:"check_out_time,omitempty"`
	Status         AttendanceStatus `json:"status"`
}
