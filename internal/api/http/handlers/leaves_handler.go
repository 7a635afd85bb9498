package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/hr-console/internal/api/dto"
	"github.com/spec-kit/hr-console/internal/domain"
	"github.com/spec-kit/hr-console/internal/hrapi"
	"github.com/spec-kit/hr-console/internal/listview"
)

// LeavesHandler serves the leave screen and actions.
type LeavesHandler struct {
	leaves *hrapi.LeavesAPI
}

// NewLeavesHandler constructs handler.
func NewLeavesHandler(leaves *hrapi.LeavesAPI) *LeavesHandler {
	return &LeavesHandler{leaves: leaves}
}

// List handles GET /leave with search/status/type filters.
func (h *LeavesHandler) List(c *fiber.Ctx) error {
	search := c.Query("search")
	status := c.Query("status", listview.FilterAll)
	leaveType := c.Query("type", listview.FilterAll)

	all, err := h.leaves.List(c.Context())
	if err != nil {
		return err
	}

	filtered := listview.FilterLeaves(all, search, status, leaveType)
	return c.JSON(fiber.Map{"data": fiber.Map{
		"leaves":    filtered,
		"by_status": listview.CountLeavesByStatus(all),
		"total":     len(all),
	}})
}

// ByEmployee handles GET /leave/employee/:employeeID.
func (h *LeavesHandler) ByEmployee(c *fiber.Ctx) error {
	employeeID, err := strconv.Atoi(c.Params("employeeID"))
	if err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid employee id")
	}

	requests, err := h.leaves.ByEmployee(c.Context(), employeeID)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": fiber.Map{"leaves": requests}})
}

// Create handles POST /leave.
func (h *LeavesHandler) Create(c *fiber.Ctx) error {
	var req dto.LeaveCreateRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}
	if req.EmployeeID == 0 || req.LeaveType == "" || req.StartDate == "" || req.EndDate == "" {
		return fiber.NewError(http.StatusBadRequest, "employee_id, leave_type, start_date, end_date required")
	}

	created, err := h.leaves.Create(c.Context(), hrapi.LeaveRequestPayload{
		EmployeeID: req.EmployeeID,
		LeaveType:  req.LeaveType,
		StartDate:  req.StartDate,
		EndDate:    req.EndDate,
		Reason:     req.Reason,
	})
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": created})
}

// Resolve handles PUT /leave/resolve/:id with an approved/rejected status.
func (h *LeavesHandler) Resolve(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid leave id")
	}

	var req dto.LeaveResolveRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}

	status := domain.LeaveStatus(strings.ToLower(req.Status))
	if status != domain.LeaveApproved && status != domain.LeaveRejected {
		return fiber.NewError(http.StatusBadRequest, "status must be approved or rejected")
	}

	if err := h.leaves.Resolve(c.Context(), id, status); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": fiber.Map{"id": id, "status": status}})
}

// Delete handles DELETE /leave/:id.
func (h *LeavesHandler) Delete(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid leave id")
	}
	if err := h.leaves.Delete(c.Context(), id); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": fiber.Map{"deleted": id}})
}
