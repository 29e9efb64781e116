package clubs

import (
	"github.com/gofiber/fiber/v2"

	"alandalus-portal/app/routes/auth"
)

// SetupClubsRoutes sets up clubs routes
func SetupClubsRoutes(app *fiber.App) {
	api := app.Group("/api/clubs")
	api.Use(auth.AuthMiddleware)
	api.Get("/", GetClubsAPI)
	api.Get("/table", GetClubsTableAPI)
	api.Get("/:id", GetClubAPI)
	api.Post("/", auth.RoleMiddleware("admin"), CreateClubAPI)
	api.Put("/:id", auth.RoleMiddleware("admin"), UpdateClubAPI)
	api.Delete("/:id", auth.RoleMiddleware("admin"), DeleteClubAPI)
}
