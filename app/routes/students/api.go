package students

import (
	"database/sql"
	"encoding/json"
	"errors"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"

	"alandalus-portal/app/config"
	"alandalus-portal/app/database"
	"alandalus-portal/app/helpers"
	"alandalus-portal/app/models"
	"alandalus-portal/app/services"
)

const cacheEntity = "students"

func loadStudents(db *sql.DB) ([]models.Student, error) {
	if body, ok := services.CacheGet(cacheEntity); ok {
		var rows []models.Student
		if err := json.Unmarshal(body, &rows); err == nil {
			return rows, nil
		}
	}

	rows, err := database.GetStudents(db, database.StudentFilters{})
	if err != nil {
		return nil, err
	}
	if body, err := json.Marshal(rows); err == nil {
		services.CacheSet(cacheEntity, body)
	}
	return rows, nil
}

// GetStudentsAPI returns student profiles, optionally narrowed by store-side
// status/program filters.
func GetStudentsAPI(c *fiber.Ctx) error {
	db := config.GetDB()

	filters := database.StudentFilters{
		Status:  helpers.StoreFilter(c.Query("status")),
		Program: helpers.StoreFilter(c.Query("program")),
	}

	if filters.Status == "" && filters.Program == "" {
		rows, err := loadStudents(db)
		if err != nil {
			return helpers.Error(c, 500, "Failed to fetch students")
		}
		return c.JSON(fiber.Map{"success": true, "students": rows})
	}

	rows, err := database.GetStudents(db, filters)
	if err != nil {
		return helpers.Error(c, 500, "Failed to fetch students")
	}
	return c.JSON(fiber.Map{"success": true, "students": rows})
}

// GetStudentsTableAPI backs the admin table: full list fetched once
// (cache-backed), then searched and filtered in memory.
func GetStudentsTableAPI(c *fiber.Ctx) error {
	rows, err := loadStudents(config.GetDB())
	if err != nil {
		return helpers.Error(c, 500, "Failed to fetch students")
	}

	rows = FilterStudents(rows, c.Query("search"), c.Query("status", "all"), c.Query("program", "all"))
	return c.JSON(fiber.Map{"success": true, "students": DecorateStudents(rows)})
}

// GetStudentAPI returns a single student profile
func GetStudentAPI(c *fiber.Ctx) error {
	s, err := database.GetStudentByID(config.GetDB(), c.Params("id"))
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return helpers.Error(c, 404, "Student not found")
		}
		return helpers.Error(c, 500, "Failed to fetch student")
	}
	return c.JSON(fiber.Map{"success": true, "student": s})
}

// CreateStudentAPI provisions a student: auth account, profile row and role
// assignment, with reverse-order compensation on a later-phase failure.
func CreateStudentAPI(c *fiber.Ctx) error {
	req := new(CreateStudentRequest)
	if err := c.BodyParser(req); err != nil {
		return helpers.Error(c, 400, "Invalid request body")
	}

	req.Sanitize()
	if err := helpers.Validate.Struct(req); err != nil {
		return helpers.ValidationError(c, err)
	}

	db := config.GetDB()
	if req.StudentNumber == "" {
		number, err := database.NextStudentNumber(db, time.Now().Year())
		if err != nil {
			return helpers.Error(c, 500, "Failed to allocate student number")
		}
		req.StudentNumber = number
	}

	user := req.ToUser()
	student := req.ToModel()

	provisioner := services.NewDBProvisioner(db)
	if err := provisioner.CreateStudent(user, student); err != nil {
		var pe *services.ProvisionError
		if errors.As(err, &pe) {
			log.Printf("Student provisioning failed: %v", pe)
			return c.Status(500).JSON(fiber.Map{
				"success": false,
				"error":   "Failed to create student",
				"phase":   pe.Phase,
			})
		}
		return helpers.Error(c, 500, "Failed to create student")
	}

	services.InvalidateCache(cacheEntity)
	return c.JSON(fiber.Map{"success": true, "student": student})
}

// UpdateStudentAPI performs a full-record profile update guarded by the
// caller's last-seen updated_at stamp. There is no delete endpoint; a
// student leaves by status change (inactive, suspended or graduated).
func UpdateStudentAPI(c *fiber.Ctx) error {
	req := new(UpdateStudentRequest)
	if err := c.BodyParser(req); err != nil {
		return helpers.Error(c, 400, "Invalid request body")
	}

	req.Sanitize()
	if err := helpers.Validate.Struct(req); err != nil {
		return helpers.ValidationError(c, err)
	}

	s := req.ToModel(c.Params("id"))
	if err := database.UpdateStudent(config.GetDB(), s, req.UpdatedAt); err != nil {
		switch {
		case errors.Is(err, database.ErrNotFound):
			return helpers.Error(c, 404, "Student not found")
		case errors.Is(err, database.ErrConflict):
			return helpers.Error(c, 409, "Student was modified by someone else, reload and retry")
		default:
			return helpers.Error(c, 500, "Failed to update student")
		}
	}

	services.InvalidateCache(cacheEntity)
	return c.JSON(fiber.Map{"success": true, "message": "Student updated successfully"})
}
