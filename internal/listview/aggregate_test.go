package listview

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/spec-kit/hr-console/internal/domain"
)

func TestBucketAttendanceByDate(t *testing.T) {
	records := []domain.AttendanceRecord{
		{AttendanceDate: "2024-01-01", Status: domain.AttendancePresent},
		{AttendanceDate: "2024-01-01", Status: domain.AttendanceAbsent},
		{AttendanceDate: "2024-01-02", Status: domain.AttendancePresent},
	}

	got := BucketAttendanceByDate(records)

	assert.Equal(t, []AttendanceBucket{
		{Date: "2024-01-01", Present: 1, Absent: 1, Late: 0},
		{Date: "2024-01-02", Present: 1, Absent: 0, Late: 0},
	}, got)
}

func TestBucketAttendanceDropsTimeComponent(t *testing.T) {
	records := []domain.AttendanceRecord{
		{AttendanceDate: "2024-03-05T08:15:00Z", Status: domain.AttendanceLate},
		{AttendanceDate: "2024-03-05T17:40:00Z", Status: domain.AttendancePresent},
	}

	got := BucketAttendanceByDate(records)

	assert.Len(t, got, 1)
	assert.Equal(t, "2024-03-05", got[0].Date)
	assert.Equal(t, 1, got[0].Late)
	assert.Equal(t, 1, got[0].Present)
}

func TestBucketAttendanceKeepsFirstSeenOrder(t *testing.T) {
	records := []domain.AttendanceRecord{
		{AttendanceDate: "2024-02-10", Status: domain.AttendancePresent},
		{AttendanceDate: "2024-02-08", Status: domain.AttendancePresent},
		{AttendanceDate: "2024-02-10", Status: domain.AttendanceAbsent},
	}

	got := BucketAttendanceByDate(records)

	assert.Equal(t, "2024-02-10", got[0].Date)
	assert.Equal(t, "2024-02-08", got[1].Date)
}

func TestBucketAttendanceEmptyInput(t *testing.T) {
	assert.Empty(t, BucketAttendanceByDate(nil))
}

func TestCountByDepartment(t *testing.T) {
	got := CountByDepartment(sampleEmployees())

	assert.Equal(t, map[string]int{
		"HR":                 2,
		"Engineering":        1,
		"Sales":              1,
		UnassignedDepartment: 1,
	}, got)
}

func TestCountLeavesByStatusNormalizesCase(t *testing.T) {
	got := CountLeavesByStatus(sampleLeaves())

	assert.Equal(t, map[string]int{
		"pending":  2,
		"approved": 1,
		"rejected": 1,
	}, got)
}
