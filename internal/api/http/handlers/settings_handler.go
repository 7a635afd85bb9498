package handlers

import (
	"net/http"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/hr-console/internal/domain"
	"github.com/spec-kit/hr-console/internal/gateway"
	"github.com/spec-kit/hr-console/internal/hrapi"
	"github.com/spec-kit/hr-console/internal/session"
)

// SettingsHandler shows the signed-in profile, recent notices, and the
// login account administration actions.
type SettingsHandler struct {
	store   session.Store
	notices *gateway.NoticeCenter
	users   *hrapi.UsersAPI
}

// NewSettingsHandler constructs handler.
func NewSettingsHandler(store session.Store, notices *gateway.NoticeCenter, users *hrapi.UsersAPI) *SettingsHandler {
	return &SettingsHandler{store: store, notices: notices, users: users}
}

// Show handles GET /settings.
func (h *SettingsHandler) Show(c *fiber.Ctx) error {
	sess := h.store.Current()

	accounts, err := h.users.List(c.Context())
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{"data": fiber.Map{
		"user":     sess.User,
		"accounts": accounts,
		"notices":  h.notices.Recent(),
	}})
}

// CreateAccount handles POST /settings/accounts.
func (h *SettingsHandler) CreateAccount(c *fiber.Ctx) error {
	var req hrapi.AccountRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}
	if req.Username == "" || req.Password == "" {
		return fiber.NewError(http.StatusBadRequest, "username and password required")
	}
	if !domain.Role(req.Role).Valid() {
		return fiber.NewError(http.StatusBadRequest, "role must be admin or employee")
	}

	created, err := h.users.Create(c.Context(), req)
	if err != nil {
		return err
	}
	h.notices.Success("Account created successfully!")
	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": created})
}

// UpdateAccount handles PUT /settings/accounts/:id.
func (h *SettingsHandler) UpdateAccount(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid account id")
	}

	var req hrapi.AccountRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}
	if req.Role != "" && !domain.Role(req.Role).Valid() {
		return fiber.NewError(http.StatusBadRequest, "role must be admin or employee")
	}

	updated, err := h.users.Update(c.Context(), id, req)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": updated})
}

// DeleteAccount handles DELETE /settings/accounts/:id.
func (h *SettingsHandler) DeleteAccount(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid account id")
	}
	if err := h.users.Delete(c.Context(), id); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": fiber.Map{"deleted": id}})
}
