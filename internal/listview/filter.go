// Package listview holds the pure helpers the console applies to lists that
// were already fetched from the remote service: free-text plus categorical
// narrowing, and bucketing for chart display. Nothing here performs I/O or
// mutates its input.
package listview

import (
	"strconv"
	"strings"

	"github.com/spec-kit/hr-console/internal/domain"
)

// FilterAll is the sentinel that disables a categorical selector.
const FilterAll = "All"

// FilterEmployees narrows employees by free-text search over full name,
// email and employee code, plus exact department and status selectors.
// Relative order of the input is preserved.
func FilterEmployees(employees []domain.Employee, search, department, status string) []domain.Employee {
	needle := strings.ToLower(search)

	out := make([]domain.Employee, 0, len(employees))
	for _, emp := range employees {
		matchesSearch := needle == "" ||
			strings.Contains(strings.ToLower(emp.FullName()), needle) ||
			strings.Contains(strings.ToLower(emp.Email), needle) ||
			strings.Contains(strings.ToLower(emp.EmployeeCode), needle)

		matchesDept := department == FilterAll || emp.DepartmentName == department
		matchesStatus := status == FilterAll || string(emp.Status) == status

		if matchesSearch && matchesDept && matchesStatus {
			out = append(out, emp)
		}
	}
	return out
}

// FilterLeaves narrows leave requests by search over employee id and leave
// type, plus status and type selectors. Status comparison is
// case-insensitive and an absent status counts as pending, matching how the
// remote service reports freshly created requests.
func FilterLeaves(requests []domain.LeaveRequest, search, status, leaveType string) []domain.LeaveRequest {
	needle := strings.ToLower(search)

	out := make([]domain.LeaveRequest, 0, len(requests))
	for _, req := range requests {
		matchesSearch := search == "" ||
			strings.Contains(strconv.Itoa(req.EmployeeID), search) ||
			strings.Contains(strings.ToLower(req.LeaveType), needle)

		reqStatus := string(req.Status)
		if reqStatus == "" {
			reqStatus = string(domain.LeavePending)
		}
		matchesStatus := status == FilterAll || strings.EqualFold(reqStatus, status)
		matchesType := leaveType == FilterAll || strings.EqualFold(req.LeaveType, leaveType)

		if matchesSearch && matchesStatus && matchesType {
			out = append(out, req)
		}
	}
	return out
}

// FilterPayroll narrows payroll rows by search over the joined employee name
// and a month selector (0 disables).
func FilterPayroll(records []domain.PayrollRecord, search string, month int) []domain.PayrollRecord {
	needle := strings.ToLower(search)

	out := make([]domain.PayrollRecord, 0, len(records))
	for _, rec := range records {
		matchesSearch := needle == "" ||
			strings.Contains(strings.ToLower(rec.EmployeeName()), needle)
		matchesMonth := month == 0 || rec.PayMonth == month

		if matchesSearch && matchesMonth {
			out = append(out, rec)
		}
	}
	return out
}

// DepartmentOptions derives the selector values from the fetched list,
// leading with the sentinel. Order follows first appearance.
func DepartmentOptions(employees []domain.Employee) []string {
	options := []string{FilterAll}
	seen := map[string]struct{}{}
	for _, emp := range employees {
		name := emp.DepartmentName
		if name == "" {
			name = UnassignedDepartment
		}
		if _, ok := seen[name]; ok {
			continue
		}
		seen[name] = struct{}{}
		options = append(options, name)
	}
	return options
}
