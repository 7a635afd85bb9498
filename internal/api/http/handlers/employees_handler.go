package handlers

import (
	"net/http"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/hr-console/internal/api/dto"
	"github.com/spec-kit/hr-console/internal/hrapi"
	"github.com/spec-kit/hr-console/internal/listview"
)

// EmployeesHandler serves the employees screen: the fetched list narrowed
// by the query-string filters, plus the create/edit/delete actions.
type EmployeesHandler struct {
	employees   *hrapi.EmployeesAPI
	departments *hrapi.DepartmentsAPI
	positions   *hrapi.PositionsAPI
}

// NewEmployeesHandler constructs handler.
func NewEmployeesHandler(employees *hrapi.EmployeesAPI, departments *hrapi.DepartmentsAPI, positions *hrapi.PositionsAPI) *EmployeesHandler {
	return &EmployeesHandler{employees: employees, departments: departments, positions: positions}
}

// List handles GET /employees with search/department/status filters.
func (h *EmployeesHandler) List(c *fiber.Ctx) error {
	search := c.Query("search")
	department := c.Query("department", listview.FilterAll)
	status := c.Query("status", listview.FilterAll)

	all, err := h.employees.List(c.Context())
	if err != nil {
		return err
	}

	filtered := listview.FilterEmployees(all, search, department, status)
	return c.JSON(fiber.Map{"data": fiber.Map{
		"employees":   filtered,
		"departments": listview.DepartmentOptions(all),
		"total":       len(all),
	}})
}

// Options handles GET /employees/options for the create/edit modal.
func (h *EmployeesHandler) Options(c *fiber.Ctx) error {
	departments, err := h.departments.List(c.Context())
	if err != nil {
		return err
	}
	positions, err := h.positions.List(c.Context())
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": fiber.Map{
		"departments": departments,
		"positions":   positions,
	}})
}

// Create handles POST /employees.
func (h *EmployeesHandler) Create(c *fiber.Ctx) error {
	var req dto.EmployeeUpsertRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}
	if req.FirstName == "" || req.LastName == "" || req.EmployeeCode == "" {
		return fiber.NewError(http.StatusBadRequest, "first name, last name, employee code required")
	}

	created, err := h.employees.Create(c.Context(), upsertToEmployeeRequest(req))
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": created})
}

// Update handles PUT /employees/:id.
func (h *EmployeesHandler) Update(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid employee id")
	}

	var req dto.EmployeeUpsertRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}

	updated, err := h.employees.Update(c.Context(), id, upsertToEmployeeRequest(req))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": updated})
}

// Delete handles DELETE /employees/:id.
func (h *EmployeesHandler) Delete(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid employee id")
	}
	if err := h.employees.Delete(c.Context(), id); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": fiber.Map{"deleted": id}})
}

func upsertToEmployeeRequest(req dto.EmployeeUpsertRequest) hrapi.EmployeeRequest {
	return hrapi.EmployeeRequest{
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Email:        req.Email,
		EmployeeCode: req.EmployeeCode,
		DepartmentID: req.DepartmentID,
		PositionID:   req.PositionID,
		Status:       req.Status,
		HireDate:     req.HireDate,
		Phone:        req.Phone,
	}
}
