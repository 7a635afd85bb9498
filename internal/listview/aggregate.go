package listview

import (
	"strings"

	"github.com/spec-kit/hr-console/internal/domain"
)

// UnassignedDepartment labels employees without a department in charts.
const UnassignedDepartment = "Unassigned"

// AttendanceBucket is one point on the attendance trend chart: per-status
// counts for a single calendar date.
type AttendanceBucket struct {
	Date    string `json:"date"`
	Present int    `json:"Present"`
	Absent  int    `json:"Absent"`
	Late    int    `json:"Late"`
}

// BucketAttendanceByDate groups attendance records by the date component of
// their timestamp and counts each status per date. Statuses with no events
// on a date stay zero. Bucket order follows the first appearance of each
// date in the input.
func BucketAttendanceByDate(records []domain.AttendanceRecord) []AttendanceBucket {
	index := map[string]int{}
	buckets := []AttendanceBucket{}

	for _, rec := range records {
		date, _, _ := strings.Cut(rec.AttendanceDate, "T")
		i, ok := index[date]
		if !ok {
			i = len(buckets)
			index[date] = i
			buckets = append(buckets, AttendanceBucket{Date: date})
		}
		switch rec.Status {
		case domain.AttendancePresent:
			buckets[i].Present++
		case domain.AttendanceAbsent:
			buckets[i].Absent++
		case domain.AttendanceLate:
			buckets[i].Late++
		}
	}
	return buckets
}

// CountByDepartment tallies employees per department for the pie chart.
// The category set comes from the data itself; an empty department counts
// under the Unassigned label.
func CountByDepartment(employees []domain.Employee) map[string]int {
	counts := make(map[string]int)
	for _, emp := range employees {
		dept := emp.DepartmentName
		if dept == "" {
			dept = UnassignedDepartment
		}
		counts[dept]++
	}
	return counts
}

// CountLeavesByStatus tallies leave requests per normalized status for the
// dashboard summary cards.
func CountLeavesByStatus(requests []domain.LeaveRequest) map[string]int {
	counts := make(map[string]int)
	for _, req := range requests {
		status := strings.ToLower(string(req.Status))
		if status == "" {
			status = string(domain.LeavePending)
		}
		counts[status]++
	}
	return counts
}
