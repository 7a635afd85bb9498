package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/hr-console/internal/hrapi"
	"github.com/spec-kit/hr-console/internal/listview"
	"github.com/spec-kit/hr-console/pkg/util"
)

// DashboardHandler composes the landing view: headcount, leave summary,
// attendance trend and the month's payroll total.
type DashboardHandler struct {
	employees *hrapi.EmployeesAPI
	leaves    *hrapi.LeavesAPI
	attend    *hrapi.AttendanceAPI
	payroll   *hrapi.PayrollAPI
}

// NewDashboardHandler constructs handler.
func NewDashboardHandler(employees *hrapi.EmployeesAPI, leaves *hrapi.LeavesAPI, attend *hrapi.AttendanceAPI, payroll *hrapi.PayrollAPI) *DashboardHandler {
	return &DashboardHandler{employees: employees, leaves: leaves, attend: attend, payroll: payroll}
}

// Show handles GET /. Each section loads independently: a failed fetch
// leaves its section empty with an error indicator instead of taking the
// whole dashboard down. An expired session still propagates so the guard
// can redirect.
func (h *DashboardHandler) Show(c *fiber.Ctx) error {
	data := fiber.Map{}
	sectionErrors := fiber.Map{}

	if employees, err := h.employees.List(c.Context()); err != nil {
		if util.IsKind(err, util.KindAuthExpired) {
			return err
		}
		sectionErrors["employees"] = err.Error()
	} else {
		data["headcount"] = len(employees)
		data["by_department"] = listview.CountByDepartment(employees)
	}

	if leaves, err := h.leaves.List(c.Context()); err != nil {
		if util.IsKind(err, util.KindAuthExpired) {
			return err
		}
		sectionErrors["leaves"] = err.Error()
	} else {
		data["leaves_by_status"] = listview.CountLeavesByStatus(leaves)
	}

	if records, err := h.attend.List(c.Context()); err != nil {
		if util.IsKind(err, util.KindAuthExpired) {
			return err
		}
		sectionErrors["attendance"] = err.Error()
	} else {
		data["attendance_trend"] = listview.BucketAttendanceByDate(records)
	}

	now := time.Now()
	if summary, err := h.payroll.MonthlyReport(c.Context(), now.Year(), int(now.Month())); err != nil {
		if util.IsKind(err, util.KindAuthExpired) {
			return err
		}
		sectionErrors["payroll"] = err.Error()
	} else {
		data["payroll_total"] = summary.TotalNetSalary
	}

	if len(sectionErrors) > 0 {
		data["errors"] = sectionErrors
	}
	return c.JSON(fiber.Map{"data": data})
}
