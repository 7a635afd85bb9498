package handlers

import (
	"net/http"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/hr-console/internal/api/dto"
	"github.com/spec-kit/hr-console/internal/hrapi"
	"github.com/spec-kit/hr-console/internal/listview"
)

// PayrollHandler serves the payroll screen and actions.
type PayrollHandler struct {
	payroll *hrapi.PayrollAPI
}

// NewPayrollHandler constructs handler.
func NewPayrollHandler(payroll *hrapi.PayrollAPI) *PayrollHandler {
	return &PayrollHandler{payroll: payroll}
}

// List handles GET /payroll with search and month filters.
func (h *PayrollHandler) List(c *fiber.Ctx) error {
	search := c.Query("search")
	month := c.QueryInt("month")

	all, err := h.payroll.List(c.Context())
	if err != nil {
		return err
	}

	filtered := listview.FilterPayroll(all, search, month)
	return c.JSON(fiber.Map{"data": fiber.Map{
		"payments": filtered,
		"total":    len(all),
	}})
}

// Create handles POST /payroll.
func (h *PayrollHandler) Create(c *fiber.Ctx) error {
	var req dto.PayrollUpsertRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}
	if req.EmployeeID == 0 || req.PayMonth < 1 || req.PayMonth > 12 || req.PayYear == 0 {
		return fiber.NewError(http.StatusBadRequest, "employee_id, pay_month, pay_year required")
	}

	created, err := h.payroll.Create(c.Context(), upsertToPayrollRequest(req))
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": created})
}

// Update handles PUT /payroll/:id.
func (h *PayrollHandler) Update(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payment id")
	}

	var req dto.PayrollUpsertRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}

	updated, err := h.payroll.Update(c.Context(), id, upsertToPayrollRequest(req))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": updated})
}

// Delete handles DELETE /payroll/:id.
func (h *PayrollHandler) Delete(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payment id")
	}
	if err := h.payroll.Delete(c.Context(), id); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": fiber.Map{"deleted": id}})
}

// MonthlyReport handles GET /payroll/report/monthly?year=&month=.
func (h *PayrollHandler) MonthlyReport(c *fiber.Ctx) error {
	year := c.QueryInt("year")
	month := c.QueryInt("month")
	if year == 0 || month < 1 || month > 12 {
		return fiber.NewError(http.StatusBadRequest, "year and month required")
	}

	summary, err := h.payroll.MonthlyReport(c.Context(), year, month)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": summary})
}

// YearlyReport handles GET /payroll/report/yearly?year=.
func (h *PayrollHandler) YearlyReport(c *fiber.Ctx) error {
	year := c.QueryInt("year")
	if year == 0 {
		return fiber.NewError(http.StatusBadRequest, "year required")
	}

	summary, err := h.payroll.YearlyReport(c.Context(), year)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": summary})
}

// DeductLeave handles POST /payroll/deduct-leave.
func (h *PayrollHandler) DeductLeave(c *fiber.Ctx) error {
	var req dto.DeductLeaveRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}
	if req.EmployeeID == 0 || req.TotalWorkDays == 0 {
		return fiber.NewError(http.StatusBadRequest, "employee_id and total_work_days required")
	}

	deduction, err := h.payroll.DeductLeave(c.Context(), hrapi.DeductLeaveRequest{
		EmployeeID:    req.EmployeeID,
		BaseSalary:    req.BaseSalary,
		TotalWorkDays: req.TotalWorkDays,
		Month:         req.Month,
		Year:          req.Year,
	})
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": fiber.Map{"deduction": deduction}})
}

func upsertToPayrollRequest(req dto.PayrollUpsertRequest) hrapi.PayrollRequest {
	return hrapi.PayrollRequest{
		EmployeeID: req.EmployeeID,
		BaseSalary: req.BaseSalary,
		Bonus:      req.Bonus,
		Deductions: req.Deductions,
		PayMonth:   req.PayMonth,
		PayYear:    req.PayYear,
	}
}
