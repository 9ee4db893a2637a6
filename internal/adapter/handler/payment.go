package handler

import (
	"log/slog"

	"github.com/gofiber/fiber/v2"

	"github.com/rakesh-patoju/Payment-Platform-Design-New/internal/adapter/middleware"
	"github.com/rakesh-patoju/Payment-Platform-Design-New/internal/core/domain"
	"github.com/rakesh-patoju/Payment-Platform-Design-New/internal/core/worker"
	"github.com/rakesh-patoju/Payment-Platform-Design-New/internal/core/workflow"
)

// Notifier receives an event for every completed payment.
type Notifier interface {
	Enqueue(event worker.PaymentEvent)
}

type PaymentHandler struct {
	Notifier Notifier
}

type MethodRequest struct {
	Method domain.PaymentMethod `json:"method"`
}

type paymentMethodView struct {
	ID          domain.PaymentMethod `json:"id"`
	Name        string               `json:"name"`
	Description string               `json:"description"`
}

// Checkout shows the order summary and the payment methods on offer.
func (h *PaymentHandler) Checkout(c *fiber.Ctx) error {
	state := middleware.CurrentSession(c).State()

	methods := make([]paymentMethodView, 0, len(domain.PaymentMethods))
	for _, m := range domain.PaymentMethods {
		methods = append(methods, paymentMethodView{ID: m, Name: m.DisplayName(), Description: m.Description()})
	}

	return c.JSON(fiber.Map{
		"order": fiber.Map{
			"service": state.Service.Type.Title(),
			"details": state.Service.Details(),
			"amount":  state.Service.Amount,
			"total":   state.Service.Price().String(),
		},
		"selected": state.Method,
		"methods":  methods,
	})
}

func (h *PaymentHandler) ChooseMethod(c *fiber.Ctx) error {
	var req MethodRequest
	if err := c.BodyParser(&req); err != nil {
		return badBody(c, err)
	}

	if err := middleware.CurrentSession(c).ChoosePaymentMethod(req.Method); err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"method": req.Method})
}

// Submit runs the simulated payment. It blocks for the processing delay.
func (h *PaymentHandler) Submit(c *fiber.Ctx) error {
	session := middleware.CurrentSession(c)

	rec, err := session.SubmitPayment()
	if err != nil {
		return respondError(c, err)
	}

	state := session.State()
	slog.Info("💰 Payment Completed",
		"transaction_id", rec.TransactionID,
		"method", rec.Method,
		"amount", state.Service.Amount,
	)

	if h.Notifier != nil && state.User != nil {
		h.Notifier.Enqueue(worker.NewPaymentSucceeded(*state.User, state.Service, rec))
	}

	return c.JSON(fiber.Map{
		"status":  "success",
		"message": "Payment Successful!",
		"payment": rec,
		"next":    workflow.StepCompleted.Path(),
	})
}
