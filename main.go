package main

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"

	"alandalus-portal/app/config"
	"alandalus-portal/app/database"
	"alandalus-portal/app/routes/activities"
	"alandalus-portal/app/routes/appointments"
	"alandalus-portal/app/routes/auth"
	"alandalus-portal/app/routes/clubs"
	"alandalus-portal/app/routes/dashboard"
	"alandalus-portal/app/routes/departments"
	"alandalus-portal/app/routes/payments"
	"alandalus-portal/app/routes/programs"
	"alandalus-portal/app/routes/services"
	"alandalus-portal/app/routes/students"
	"alandalus-portal/app/routes/teachers"
	appservices "alandalus-portal/app/services"
)

// customErrorHandler renders every error as the JSON envelope.
func customErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
	}

	return c.Status(code).JSON(fiber.Map{
		"success": false,
		"error":   err.Error(),
		"code":    code,
	})
}

func main() {
	// Set global time zone to Yemen time
	loc, err := time.LoadLocation("Asia/Aden")
	if err != nil {
		log.Printf("Warning: Failed to load Asia/Aden location, falling back to UTC+3: %v", err)
		time.Local = time.FixedZone("AST", 3*60*60)
	} else {
		time.Local = loc
	}
	log.Printf("Application time zone set to: %s", time.Local.String())

	// Load environment and initialize database
	config.LoadEnv()
	config.InitDB()
	defer config.GetDB().Close()

	// Optional Redis cache for list endpoints
	config.ConnectRedis()

	// Run database migrations
	if err := database.RunMigrations(config.GetDB()); err != nil {
		log.Fatal("Failed to run migrations:", err)
	}

	// Start background scheduler (overdue payment sweep)
	appservices.StartScheduler(config.GetDB())

	// Create Fiber app
	app := fiber.New(fiber.Config{
		AppName:      "Al-Andalus Portal",
		ErrorHandler: customErrorHandler,
	})

	// Middleware
	app.Use(logger.New())
	app.Use(cors.New())

	// Health check
	app.Get("/healthz", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"success": true, "status": "ok"})
	})

	// Setup auth routes
	auth.SetupAuthRoutes(app)

	// Setup dashboard routes
	dashboard.SetupDashboardRoutes(app)

	// Setup services routes
	services.SetupServicesRoutes(app)

	// Setup clubs routes
	clubs.SetupClubsRoutes(app)

	// Setup activities routes
	activities.SetupActivitiesRoutes(app)

	// Setup appointments routes
	appointments.SetupAppointmentsRoutes(app)

	// Setup payments routes (including the payment wizard)
	payments.SetupPaymentsRoutes(app)

	// Setup teachers routes
	teachers.SetupTeachersRoutes(app)

	// Setup students routes
	students.SetupStudentsRoutes(app)

	// Setup departments routes
	departments.SetupDepartmentsRoutes(app)

	// Setup programs routes
	programs.SetupProgramsRoutes(app)

	// Catch-all route for 404 errors (must be last)
	app.Use("*", func(c *fiber.Ctx) error {
		return fiber.NewError(fiber.StatusNotFound, "Not found")
	})

	// Start server
	log.Println("Server starting on :8080")
	log.Fatal(app.Listen(":8080"))
}
