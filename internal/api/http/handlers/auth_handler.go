package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/hr-console/internal/api/dto"
	"github.com/spec-kit/hr-console/internal/gateway"
	"github.com/spec-kit/hr-console/internal/hrapi"
)

// AuthHandler exposes the login, signup and logout actions.
type AuthHandler struct {
	auth     *hrapi.AuthAPI
	notifier gateway.Notifier
}

// NewAuthHandler constructs handler.
func NewAuthHandler(auth *hrapi.AuthAPI, notifier gateway.Notifier) *AuthHandler {
	return &AuthHandler{auth: auth, notifier: notifier}
}

// Login handles POST /login.
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}
	if req.Username == "" || req.Password == "" {
		return fiber.NewError(http.StatusBadRequest, "username and password required")
	}

	user, err := h.auth.Login(c.Context(), req.Username, req.Password)
	if err != nil {
		return err
	}

	h.notifier.Success("Login successful!")
	return c.JSON(fiber.Map{"data": fiber.Map{"user": user}})
}

// Signup handles POST /signup. The new account is not signed in.
func (h *AuthHandler) Signup(c *fiber.Ctx) error {
	var req dto.SignupRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}
	if req.Username == "" || req.Password == "" {
		return fiber.NewError(http.StatusBadRequest, "username and password required")
	}

	if err := h.auth.Register(c.Context(), hrapi.RegisterRequest{
		Username:  req.Username,
		Password:  req.Password,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
	}); err != nil {
		return err
	}

	h.notifier.Success("Account created successfully!")
	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": fiber.Map{"registered": true}})
}

// Logout handles POST /logout.
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	if err := h.auth.Logout(c.Context()); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": fiber.Map{"logged_out": true}})
}
