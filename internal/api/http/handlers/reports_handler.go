package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/hr-console/internal/hrapi"
	"github.com/spec-kit/hr-console/internal/listview"
	"github.com/spec-kit/hr-console/pkg/util"
)

// ReportsHandler serves the admin reports bundle.
type ReportsHandler struct {
	employees *hrapi.EmployeesAPI
	leaves    *hrapi.LeavesAPI
	attend    *hrapi.AttendanceAPI
	payroll   *hrapi.PayrollAPI
}

// NewReportsHandler constructs handler.
func NewReportsHandler(employees *hrapi.EmployeesAPI, leaves *hrapi.LeavesAPI, attend *hrapi.AttendanceAPI, payroll *hrapi.PayrollAPI) *ReportsHandler {
	return &ReportsHandler{employees: employees, leaves: leaves, attend: attend, payroll: payroll}
}

// Show handles GET /reports.
func (h *ReportsHandler) Show(c *fiber.Ctx) error {
	data := fiber.Map{}
	sectionErrors := fiber.Map{}

	if employees, err := h.employees.List(c.Context()); err != nil {
		if util.IsKind(err, util.KindAuthExpired) {
			return err
		}
		sectionErrors["employees"] = err.Error()
	} else {
		data["employees"] = employees
		data["by_department"] = listview.CountByDepartment(employees)
	}

	if leaves, err := h.leaves.List(c.Context()); err != nil {
		if util.IsKind(err, util.KindAuthExpired) {
			return err
		}
		sectionErrors["leaves"] = err.Error()
	} else {
		data["leaves"] = leaves
	}

	if records, err := h.attend.List(c.Context()); err != nil {
		if util.IsKind(err, util.KindAuthExpired) {
			return err
		}
		sectionErrors["attendance"] = err.Error()
	} else {
		data["attendance_trend"] = listview.BucketAttendanceByDate(records)
	}

	if payments, err := h.payroll.List(c.Context()); err != nil {
		if util.IsKind(err, util.KindAuthExpired) {
			return err
		}
		sectionErrors["payroll"] = err.Error()
	} else {
		data["payroll"] = payments
	}

	if len(sectionErrors) > 0 {
		data["errors"] = sectionErrors
	}
	return c.JSON(fiber.Map{"data": data})
}
