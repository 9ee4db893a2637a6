package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/rakesh-patoju/Payment-Platform-Design-New/internal/adapter/middleware"
	"github.com/rakesh-patoju/Payment-Platform-Design-New/internal/adapter/storage"
	"github.com/rakesh-patoju/Payment-Platform-Design-New/internal/core/workflow"
)

// Deps is everything the HTTP API needs.
type Deps struct {
	Registry *workflow.Registry
	KV       storage.KV
	Notifier Notifier
	// StaticDir is served at / when set.
	StaticDir string
}

// NewApp builds the fiber app with all /v1 routes.
func NewApp(deps Deps) *fiber.App {
	app := fiber.New(fiber.Config{
		DisableStartupMessage: true,
	})

	app.Use(recover.New())
	app.Use(cors.New())
	if deps.StaticDir != "" {
		app.Static("/", deps.StaticDir)
	}

	accountHandler := &AccountHandler{}
	authHandler := &AuthHandler{Registry: deps.Registry}
	serviceHandler := &ServiceHandler{}
	paymentHandler := &PaymentHandler{Notifier: deps.Notifier}
	transactionHandler := &TransactionHandler{}

	api := app.Group("/v1", middleware.Sessions(deps.Registry))

	// Public
	api.Post("/register", accountHandler.Register)
	api.Get("/login", authHandler.Remembered)
	api.Post("/login", authHandler.Login)
	api.Get("/login/remembered", authHandler.Remembered)
	api.Post("/logout", authHandler.Logout)
	api.Get("/step", authHandler.Step)

	// Step guarded
	api.Get("/services", middleware.RequireStep(workflow.StepAuthenticated), serviceHandler.List)
	api.Post("/services", middleware.RequireStep(workflow.StepAuthenticated), serviceHandler.Select)
	api.Get("/payment", middleware.RequireStep(workflow.StepServiceChosen), paymentHandler.Checkout)
	api.Post("/payment/method", middleware.RequireStep(workflow.StepServiceChosen), paymentHandler.ChooseMethod)
	api.Post("/payment/submit",
		middleware.RequireStep(workflow.StepPaymentChosen),
		middleware.Idempotency(deps.KV),
		paymentHandler.Submit,
	)
	api.Get("/confirmation", middleware.RequireStep(workflow.StepCompleted), transactionHandler.Confirmation)
	api.Get("/receipt", middleware.RequireStep(workflow.StepCompleted), transactionHandler.Receipt)

	return app
}
