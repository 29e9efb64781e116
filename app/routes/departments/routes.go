package departments

import (
	"github.com/gofiber/fiber/v2"

	"alandalus-portal/app/routes/auth"
)

// SetupDepartmentsRoutes sets up departments routes
func SetupDepartmentsRoutes(app *fiber.App) {
	api := app.Group("/api/departments")
	api.Use(auth.AuthMiddleware)
	api.Get("/", GetDepartmentsAPI)
	api.Post("/", auth.RoleMiddleware("admin"), CreateDepartmentAPI)
	api.Delete("/:id", auth.RoleMiddleware("admin"), DeleteDepartmentAPI)
}
