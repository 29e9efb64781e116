package dashboard

import (
	"github.com/gofiber/fiber/v2"

	"alandalus-portal/app/routes/auth"
)

// SetupDashboardRoutes sets up dashboard routes
func SetupDashboardRoutes(app *fiber.App) {
	api := app.Group("/api/dashboard")
	api.Use(auth.AuthMiddleware)
	api.Get("/", auth.RoleMiddleware("admin"), GetDashboardAPI)
}
