package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/rakesh-patoju/Payment-Platform-Design-New/internal/core/domain"
	"github.com/rakesh-patoju/Payment-Platform-Design-New/internal/core/workflow"
)

// respondError maps workflow errors onto HTTP. Step guard violations are
// answered with a redirect, never with an error body.
func respondError(c *fiber.Ctx, err error) error {
	var violation *workflow.StepGuardViolation
	if errors.As(err, &violation) {
		return c.Redirect(violation.Redirect.Path(), http.StatusSeeOther)
	}
	if fields, ok := domain.AsValidationError(err); ok {
		return c.Status(http.StatusUnprocessableEntity).JSON(fiber.Map{"errors": fields})
	}

	switch {
	case errors.Is(err, domain.ErrInvalidCredentials):
		return c.Status(http.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid credentials"})
	case errors.Is(err, workflow.ErrPaymentInFlight):
		return c.Status(http.StatusConflict).JSON(fiber.Map{"error": "Payment is being processed, please wait"})
	}

	slog.Error("Request failed", "error", err, "path", c.Path())
	return c.Status(http.StatusInternalServerError).JSON(fiber.Map{"error": "Something went wrong"})
}

func badBody(c *fiber.Ctx, err error) error {
	slog.Warn("Invalid request body", "error", err, "path", c.Path())
	return c.Status(http.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
}
