package handlers

import (
	"net/http"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/hr-console/internal/api/dto"
	"github.com/spec-kit/hr-console/internal/domain"
	"github.com/spec-kit/hr-console/internal/hrapi"
	"github.com/spec-kit/hr-console/internal/listview"
)

// AttendanceHandler serves the attendance screen and actions.
type AttendanceHandler struct {
	attendance *hrapi.AttendanceAPI
}

// NewAttendanceHandler constructs handler.
func NewAttendanceHandler(attendance *hrapi.AttendanceAPI) *AttendanceHandler {
	return &AttendanceHandler{attendance: attendance}
}

// List handles GET /attendance. With ?chart=1 the records are returned as
// per-date status buckets for the trend chart.
func (h *AttendanceHandler) List(c *fiber.Ctx) error {
	records, err := h.attendance.List(c.Context())
	if err != nil {
		return err
	}

	if c.QueryBool("chart") {
		return c.JSON(fiber.Map{"data": fiber.Map{
			"buckets": listview.BucketAttendanceByDate(records),
		}})
	}
	return c.JSON(fiber.Map{"data": fiber.Map{"attendance": records}})
}

// CheckIn handles POST /attendance/check-in.
func (h *AttendanceHandler) CheckIn(c *fiber.Ctx) error {
	var req dto.CheckInRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}
	if req.EmployeeID == 0 || req.AttendanceDate == "" {
		return fiber.NewError(http.StatusBadRequest, "employee_id and attendance_date required")
	}

	if err := h.attendance.CheckIn(c.Context(), hrapi.CheckInRequest{
		EmployeeID:     req.EmployeeID,
		AttendanceDate: req.AttendanceDate,
	}); err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": fiber.Map{"checked_in": true}})
}

// CheckOut handles PUT /attendance/check-out/:id.
func (h *AttendanceHandler) CheckOut(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid attendance id")
	}

	var req dto.CheckOutRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}

	if err := h.attendance.CheckOut(c.Context(), id, domain.AttendanceStatus(req.Status)); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": fiber.Map{"checked_out": id}})
}

// Delete handles DELETE /attendance/:id.
func (h *AttendanceHandler) Delete(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid attendance id")
	}
	if err := h.attendance.Delete(c.Context(), id); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": fiber.Map{"deleted": id}})
}

// Report handles GET /attendance/report/:employeeID?month=&year=.
func (h *AttendanceHandler) Report(c *fiber.Ctx) error {
	employeeID, err := strconv.Atoi(c.Params("employeeID"))
	if err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid employee id")
	}
	month := c.QueryInt("month")
	year := c.QueryInt("year")
	if month < 1 || month > 12 || year == 0 {
		return fiber.NewError(http.StatusBadRequest, "month and year required")
	}

	report, err := h.attendance.Report(c.Context(), employeeID, month, year)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": report})
}

// Hours handles GET /attendance/hours/:employeeID.
func (h *AttendanceHandler) Hours(c *fiber.Ctx) error {
	employeeID, err := strconv.Atoi(c.Params("employeeID"))
	if err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid employee id")
	}

	hours, err := h.attendance.Hours(c.Context(), employeeID)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": hours})
}
