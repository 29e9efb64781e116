package payments

import (
	"log"

	"github.com/gofiber/fiber/v2"

	"alandalus-portal/app/config"
	"alandalus-portal/app/routes/auth"
	"alandalus-portal/app/services/storage"
)

// SetupPaymentsRoutes sets up payments routes
func SetupPaymentsRoutes(app *fiber.App) {
	if up, err := storage.NewCloudinaryUploader(config.AppConfig.CloudinaryURL); err != nil {
		log.Printf("Receipt storage disabled: %v", err)
	} else {
		receiptUploader = up
	}

	api := app.Group("/api/payments")
	api.Use(auth.AuthMiddleware)

	// Wizard routes come before the :id routes so "wizard" is not taken
	// for a payment ID.
	api.Post("/wizard", StartWizardAPI)
	api.Get("/wizard/:id", GetWizardAPI)
	api.Post("/wizard/:id/method", SelectMethodAPI)
	api.Post("/wizard/:id/provider", SelectProviderAPI)
	api.Post("/wizard/:id/receipt", AttachReceiptAPI)
	api.Post("/wizard/:id/next", NextStepAPI)
	api.Post("/wizard/:id/back", BackStepAPI)
	api.Post("/wizard/:id/confirm", ConfirmWizardAPI)

	api.Get("/", GetPaymentsAPI)
	api.Get("/table", GetPaymentsTableAPI)
	api.Get("/:id", GetPaymentAPI)
	api.Post("/", auth.RoleMiddleware("admin"), CreatePaymentAPI)
	api.Put("/:id", auth.RoleMiddleware("admin"), UpdatePaymentAPI)
	api.Delete("/:id", auth.RoleMiddleware("admin"), DeletePaymentAPI)
}
