package handler

import (
	"log/slog"

	"github.com/gofiber/fiber/v2"

	"github.com/rakesh-patoju/Payment-Platform-Design-New/internal/adapter/middleware"
	"github.com/rakesh-patoju/Payment-Platform-Design-New/internal/core/domain"
	"github.com/rakesh-patoju/Payment-Platform-Design-New/internal/core/workflow"
)

type AuthHandler struct {
	Registry *workflow.Registry
}

type LoginRequest struct {
	EmailOrPhone string `json:"email_or_phone"`
	Password     string `json:"password"`
	Remember     bool   `json:"remember"`
}

func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return badBody(c, err)
	}

	session := middleware.CurrentSession(c)
	user, err := session.Login(c.Context(), domain.Credentials{
		EmailOrPhone: req.EmailOrPhone,
		Password:     req.Password,
	}, req.Remember)
	if err != nil {
		slog.Warn("Login rejected", "error", err)
		return respondError(c, err)
	}

	slog.Info("🔓 User logged in", "email", user.Email, "remember", req.Remember)

	return c.JSON(fiber.Map{
		"user": fiber.Map{"name": user.Name, "email": user.Email, "phone": user.Phone},
		"next": workflow.StepAuthenticated.Path(),
	})
}

// Remembered returns credentials saved by an earlier "remember me" login,
// for autofilling the login form.
func (h *AuthHandler) Remembered(c *fiber.Ctx) error {
	creds, err := middleware.CurrentSession(c).RememberedCredentials(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	if creds == nil {
		return c.JSON(fiber.Map{"remembered": false})
	}
	return c.JSON(fiber.Map{
		"remembered":     true,
		"email_or_phone": creds.EmailOrPhone,
		"password":       creds.Password,
	})
}

func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	if err := middleware.CurrentSession(c).Logout(c.Context()); err != nil {
		return respondError(c, err)
	}
	// The cookie stays valid: its next request starts a fresh session that
	// still finds the remembered credentials.
	id := middleware.SessionID(c)
	if h.Registry != nil {
		h.Registry.Release(id)
	}
	slog.Info("🔒 User logged out", "session", id)
	return c.JSON(fiber.Map{"next": workflow.StepAnonymous.Path()})
}

// Step reports how far the caller has progressed and where to go next.
func (h *AuthHandler) Step(c *fiber.Ctx) error {
	step := middleware.CurrentSession(c).Step()
	return c.JSON(fiber.Map{
		"step": step.String(),
		"path": step.Path(),
	})
}
