package services

import (
	"github.com/gofiber/fiber/v2"

	"alandalus-portal/app/routes/auth"
)

// SetupServicesRoutes sets up services routes
func SetupServicesRoutes(app *fiber.App) {
	api := app.Group("/api/services")
	api.Use(auth.AuthMiddleware)
	api.Get("/", GetServicesAPI)
	api.Get("/table", GetServicesTableAPI)
	api.Get("/:id", GetServiceAPI)
	api.Post("/", auth.RoleMiddleware("admin"), CreateServiceAPI)
	api.Put("/:id", auth.RoleMiddleware("admin"), UpdateServiceAPI)
	api.Delete("/:id", auth.RoleMiddleware("admin"), DeleteServiceAPI)
}
