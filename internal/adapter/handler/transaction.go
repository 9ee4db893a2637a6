package handler

import (
	"github.com/gofiber/fiber/v2"

	"github.com/rakesh-patoju/Payment-Platform-Design-New/internal/adapter/middleware"
)

type TransactionHandler struct{}

// Confirmation returns the completed payment with the service it paid for.
func (h *TransactionHandler) Confirmation(c *fiber.Ctx) error {
	session := middleware.CurrentSession(c)
	state := session.State()
	if state.Payment == nil || state.User == nil {
		// Logged out by a concurrent request after the guard ran.
		return c.Redirect(session.Step().Path(), fiber.StatusSeeOther)
	}

	return c.JSON(fiber.Map{
		"status":         "SUCCESS",
		"transaction_id": state.Payment.TransactionID,
		"date":           state.Payment.Timestamp,
		"method":         state.Payment.Method.DisplayName(),
		"service":        state.Service.Type.Title(),
		"details":        state.Service.Details(),
		"amount":         state.Service.Amount,
		"amount_paid":    state.Service.Price().String(),
		"customer": fiber.Map{
			"name":  state.User.Name,
			"email": state.User.Email,
			"phone": state.User.Phone,
		},
	})
}

// Receipt downloads the plain-text receipt.
func (h *TransactionHandler) Receipt(c *fiber.Ctx) error {
	text, fileName, err := middleware.CurrentSession(c).Receipt()
	if err != nil {
		return respondError(c, err)
	}

	c.Attachment(fileName)
	c.Set(fiber.HeaderContentType, fiber.MIMETextPlainCharsetUTF8)
	return c.SendString(text)
}
