package listview

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/spec-kit/hr-console/internal/domain"
)

func sampleEmployees() []domain.Employee {
	return []domain.Employee{
		{ID: 1, FirstName: "Amira", LastName: "Hassan", Email: "amira@corp.test", EmployeeCode: "EMP-001", DepartmentName: "HR", Status: domain.EmployeeStatusActive},
		{ID: 2, FirstName: "Bo", LastName: "Lindqvist", Email: "bo@corp.test", EmployeeCode: "EMP-002", DepartmentName: "Engineering", Status: domain.EmployeeStatusActive},
		{ID: 3, FirstName: "Carla", LastName: "Reyes", Email: "carla@corp.test", EmployeeCode: "EMP-003", DepartmentName: "HR", Status: domain.EmployeeStatusInactive},
		{ID: 4, FirstName: "Dan", LastName: "Okafor", Email: "dan@corp.test", EmployeeCode: "EMP-004", DepartmentName: "Sales", Status: domain.EmployeeStatusActive},
		{ID: 5, FirstName: "Eve", LastName: "Martin", Email: "eve@corp.test", EmployeeCode: "EMP-005", DepartmentName: "", Status: domain.EmployeeStatusActive},
	}
}

func TestFilterEmployeesIdentity(t *testing.T) {
	all := sampleEmployees()
	got := FilterEmployees(all, "", FilterAll, FilterAll)
	assert.Equal(t, all, got)
}

func TestFilterEmployeesIdempotent(t *testing.T) {
	all := sampleEmployees()
	once := FilterEmployees(all, "corp", "HR", FilterAll)
	twice := FilterEmployees(once, "corp", "HR", FilterAll)
	assert.Equal(t, once, twice)
}

func TestFilterEmployeesByDepartment(t *testing.T) {
	got := FilterEmployees(sampleEmployees(), "", "HR", FilterAll)

	assert.Len(t, got, 2)
	assert.Equal(t, 1, got[0].ID)
	assert.Equal(t, 3, got[1].ID)
}

func TestFilterEmployeesSearchMatchesNameEmailAndCode(t *testing.T) {
	all := sampleEmployees()

	byName := FilterEmployees(all, "amira hassan", FilterAll, FilterAll)
	assert.Len(t, byName, 1)
	assert.Equal(t, 1, byName[0].ID)

	byEmail := FilterEmployees(all, "BO@CORP", FilterAll, FilterAll)
	assert.Len(t, byEmail, 1)
	assert.Equal(t, 2, byEmail[0].ID)

	byCode := FilterEmployees(all, "emp-004", FilterAll, FilterAll)
	assert.Len(t, byCode, 1)
	assert.Equal(t, 4, byCode[0].ID)
}

func TestFilterEmployeesStatusIsExact(t *testing.T) {
	got := FilterEmployees(sampleEmployees(), "", FilterAll, "Active")
	assert.Len(t, got, 4)

	// Status selectors are case-sensitive, unlike leave statuses.
	none := FilterEmployees(sampleEmployees(), "", FilterAll, "active")
	assert.Empty(t, none)
}

func sampleLeaves() []domain.LeaveRequest {
	return []domain.LeaveRequest{
		{ID: 1, EmployeeID: 12, LeaveType: "Annual", Status: "Pending"},
		{ID: 2, EmployeeID: 7, LeaveType: "Sick", Status: "approved"},
		{ID: 3, EmployeeID: 12, LeaveType: "Sick", Status: ""},
		{ID: 4, EmployeeID: 31, LeaveType: "Unpaid", Status: "REJECTED"},
	}
}

func TestFilterLeavesStatusCaseInsensitive(t *testing.T) {
	got := FilterLeaves(sampleLeaves(), "", "pending", FilterAll)

	// The explicit "Pending" and the empty status (defaulted to pending).
	assert.Len(t, got, 2)
	assert.Equal(t, 1, got[0].ID)
	assert.Equal(t, 3, got[1].ID)
}

func TestFilterLeavesSearchByEmployeeIDAndType(t *testing.T) {
	byID := FilterLeaves(sampleLeaves(), "12", FilterAll, FilterAll)
	assert.Len(t, byID, 2)

	byType := FilterLeaves(sampleLeaves(), "sick", FilterAll, FilterAll)
	assert.Len(t, byType, 2)
}

func TestFilterLeavesTypeSelector(t *testing.T) {
	got := FilterLeaves(sampleLeaves(), "", FilterAll, "sick")
	assert.Len(t, got, 2)
	assert.Equal(t, 2, got[0].ID)
	assert.Equal(t, 3, got[1].ID)
}

func TestFilterLeavesIdentity(t *testing.T) {
	all := sampleLeaves()
	assert.Equal(t, all, FilterLeaves(all, "", FilterAll, FilterAll))
}

func TestFilterPayroll(t *testing.T) {
	records := []domain.PayrollRecord{
		{ID: 1, EmployeeID: 9, FirstName: "Amira", LastName: "Hassan", PayMonth: 1},
		{ID: 2, EmployeeID: 10, PayMonth: 2},
	}

	byName := FilterPayroll(records, "amira", 0)
	assert.Len(t, byName, 1)

	byMonth := FilterPayroll(records, "", 2)
	assert.Len(t, byMonth, 1)
	assert.Equal(t, 2, byMonth[0].ID)

	// Rows without a joined name fall back to the employee id.
	byFallback := FilterPayroll(records, "id 10", 0)
	assert.Len(t, byFallback, 1)
}

func TestDepartmentOptions(t *testing.T) {
	got := DepartmentOptions(sampleEmployees())
	assert.Equal(t, []string{FilterAll, "HR", "Engineering", "Sales", UnassignedDepartment}, got)
}
