package handler

import (
	"log/slog"

	"github.com/gofiber/fiber/v2"

	"github.com/rakesh-patoju/Payment-Platform-Design-New/internal/adapter/middleware"
	"github.com/rakesh-patoju/Payment-Platform-Design-New/internal/core/domain"
	"github.com/rakesh-patoju/Payment-Platform-Design-New/internal/core/workflow"
)

type ServiceHandler struct{}

// SelectServiceRequest carries the raw form values of one service variant,
// keyed by field name (vehicleNumber, enrollmentNumber, amount, ...).
type SelectServiceRequest struct {
	Type   domain.ServiceType `json:"type"`
	Fields map[string]string  `json:"fields"`
}

func (h *ServiceHandler) List(c *fiber.Ctx) error {
	session := middleware.CurrentSession(c)
	state := session.State()

	var userName string
	if state.User != nil {
		userName = state.User.Name
	}
	return c.JSON(fiber.Map{
		"user":          userName,
		"services":      session.Catalog().Offers(),
		"vehicle_types": domain.VehicleTypes,
	})
}

func (h *ServiceHandler) Select(c *fiber.Ctx) error {
	var req SelectServiceRequest
	if err := c.BodyParser(&req); err != nil {
		return badBody(c, err)
	}

	sel, err := middleware.CurrentSession(c).SelectService(req.Type, req.Fields)
	if err != nil {
		return respondError(c, err)
	}

	slog.Info("🧾 Service selected", "service", sel.Type, "amount", sel.Amount)

	return c.JSON(fiber.Map{
		"service": sel,
		"next":    workflow.StepServiceChosen.Path(),
	})
}
