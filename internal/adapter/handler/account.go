package handler

import (
	"log/slog"
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/rakesh-patoju/Payment-Platform-Design-New/internal/adapter/middleware"
	"github.com/rakesh-patoju/Payment-Platform-Design-New/internal/core/workflow"
)

type AccountHandler struct{}

// RegisterRequest defines what the user sends us
type RegisterRequest struct {
	Name            string `json:"name"`
	Email           string `json:"email"`
	Phone           string `json:"phone"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirm_password"`
}

func (h *AccountHandler) Register(c *fiber.Ctx) error {
	var req RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return badBody(c, err)
	}

	session := middleware.CurrentSession(c)
	account, err := session.Register(c.Context(), workflow.RegistrationForm{
		Name:            req.Name,
		Email:           req.Email,
		Phone:           req.Phone,
		Password:        req.Password,
		ConfirmPassword: req.ConfirmPassword,
	})
	if err != nil {
		slog.Warn("Registration rejected", "error", err, "email", req.Email)
		return respondError(c, err)
	}

	slog.Info("✅ Account Registered", "email", account.Email, "phone", account.Phone)

	return c.Status(http.StatusCreated).JSON(fiber.Map{
		"message": "Registration successful! Please log in.",
		"next":    workflow.StepAnonymous.Path(),
		"user": fiber.Map{
			"name":  account.Name,
			"email": account.Email,
			"phone": account.Phone,
		},
	})
}
