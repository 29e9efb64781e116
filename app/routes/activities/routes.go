package activities

import (
	"github.com/gofiber/fiber/v2"

	"alandalus-portal/app/routes/auth"
)

// SetupActivitiesRoutes sets up activities routes
func SetupActivitiesRoutes(app *fiber.App) {
	api := app.Group("/api/activities")
	api.Use(auth.AuthMiddleware)
	api.Get("/", GetActivitiesAPI)
	api.Get("/table", GetActivitiesTableAPI)
	api.Get("/:id", GetActivityAPI)
	api.Post("/", auth.RoleMiddleware("admin"), CreateActivityAPI)
	api.Put("/:id", auth.RoleMiddleware("admin"), UpdateActivityAPI)
	api.Delete("/:id", auth.RoleMiddleware("admin"), DeleteActivityAPI)
}
