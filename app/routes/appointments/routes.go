package appointments

import (
	"github.com/gofiber/fiber/v2"

	"alandalus-portal/app/routes/auth"
)

// SetupAppointmentsRoutes sets up appointments routes
func SetupAppointmentsRoutes(app *fiber.App) {
	api := app.Group("/api/appointments")
	api.Use(auth.AuthMiddleware)
	api.Get("/", GetAppointmentsAPI)
	api.Get("/table", GetAppointmentsTableAPI)
	api.Get("/:id", GetAppointmentAPI)
	api.Post("/", CreateAppointmentAPI)
	api.Put("/:id", UpdateAppointmentAPI)
	api.Delete("/:id", auth.RoleMiddleware("admin"), DeleteAppointmentAPI)
}
