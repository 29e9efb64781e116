package students

import (
	"github.com/gofiber/fiber/v2"

	"alandalus-portal/app/routes/auth"
)

// SetupStudentsRoutes sets up students routes
func SetupStudentsRoutes(app *fiber.App) {
	api := app.Group("/api/students")
	api.Use(auth.AuthMiddleware)
	api.Get("/", GetStudentsAPI)
	api.Get("/table", GetStudentsTableAPI)
	api.Get("/:id", GetStudentAPI)
	api.Post("/", auth.RoleMiddleware("admin"), CreateStudentAPI)
	api.Put("/:id", auth.RoleMiddleware("admin"), UpdateStudentAPI)
}
