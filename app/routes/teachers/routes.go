package teachers

import (
	"log"

	"github.com/gofiber/fiber/v2"

	"alandalus-portal/app/config"
	"alandalus-portal/app/routes/auth"
	"alandalus-portal/app/services/storage"
)

// SetupTeachersRoutes sets up teachers routes
func SetupTeachersRoutes(app *fiber.App) {
	if up, err := storage.NewCloudinaryUploader(config.AppConfig.CloudinaryURL); err != nil {
		log.Printf("Teacher file storage disabled: %v", err)
	} else {
		fileUploader = up
	}

	api := app.Group("/api/teachers")
	api.Use(auth.AuthMiddleware)
	api.Get("/", GetTeachersAPI)
	api.Get("/table", GetTeachersTableAPI)
	api.Get("/:id", GetTeacherAPI)
	api.Post("/", auth.RoleMiddleware("admin"), CreateTeacherAPI)
	api.Put("/:id", auth.RoleMiddleware("admin"), UpdateTeacherAPI)
	api.Post("/:id/files", auth.RoleMiddleware("admin"), UploadTeacherFilesAPI)
	api.Delete("/:id", auth.RoleMiddleware("admin"), DeleteTeacherAPI)
}
