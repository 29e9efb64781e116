package programs

import (
	"github.com/gofiber/fiber/v2"

	"alandalus-portal/app/routes/auth"
)

// SetupProgramsRoutes sets up programs routes
func SetupProgramsRoutes(app *fiber.App) {
	api := app.Group("/api/programs")
	api.Use(auth.AuthMiddleware)
	api.Get("/", GetProgramsAPI)
	api.Post("/", auth.RoleMiddleware("admin"), CreateProgramAPI)
	api.Delete("/:id", auth.RoleMiddleware("admin"), DeleteProgramAPI)
}
