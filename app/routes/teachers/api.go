package teachers

import (
	"database/sql"
	"encoding/json"
	"errors"
	"io"
	"log"

	"github.com/gofiber/fiber/v2"

	"alandalus-portal/app/config"
	"alandalus-portal/app/database"
	"alandalus-portal/app/helpers"
	"alandalus-portal/app/models"
	"alandalus-portal/app/services"
	"alandalus-portal/app/services/storage"
)

const cacheEntity = "teachers"

// fileUploader stores profile images and CVs when storage is configured.
var fileUploader storage.Uploader

func loadTeachers(db *sql.DB) ([]models.Teacher, error) {
	if body, ok := services.CacheGet(cacheEntity); ok {
		var rows []models.Teacher
		if err := json.Unmarshal(body, &rows); err == nil {
			return rows, nil
		}
	}

	rows, err := database.GetTeachers(db, database.TeacherFilters{})
	if err != nil {
		return nil, err
	}
	if body, err := json.Marshal(rows); err == nil {
		services.CacheSet(cacheEntity, body)
	}
	return rows, nil
}

// GetTeachersAPI returns active teacher profiles, optionally narrowed by
// store-side department/position filters. include_inactive=true also returns
// deactivated profiles.
func GetTeachersAPI(c *fiber.Ctx) error {
	db := config.GetDB()

	filters := database.TeacherFilters{
		DepartmentID:    helpers.StoreFilter(c.Query("department_id")),
		Position:        helpers.StoreFilter(c.Query("position")),
		IncludeInactive: c.QueryBool("include_inactive"),
	}

	if filters.DepartmentID == "" && filters.Position == "" && !filters.IncludeInactive {
		rows, err := loadTeachers(db)
		if err != nil {
			return helpers.Error(c, 500, "Failed to fetch teachers")
		}
		return c.JSON(fiber.Map{"success": true, "teachers": rows})
	}

	rows, err := database.GetTeachers(db, filters)
	if err != nil {
		return helpers.Error(c, 500, "Failed to fetch teachers")
	}
	return c.JSON(fiber.Map{"success": true, "teachers": rows})
}

// GetTeachersTableAPI backs the admin table: active profiles fetched once
// (cache-backed), then searched and filtered in memory.
func GetTeachersTableAPI(c *fiber.Ctx) error {
	rows, err := loadTeachers(config.GetDB())
	if err != nil {
		return helpers.Error(c, 500, "Failed to fetch teachers")
	}

	rows = FilterTeachers(rows, c.Query("search"), c.Query("department_id", "all"), c.Query("position", "all"))
	return c.JSON(fiber.Map{"success": true, "teachers": DecorateTeachers(rows)})
}

// GetTeacherAPI returns a single teacher profile
func GetTeacherAPI(c *fiber.Ctx) error {
	t, err := database.GetTeacherByID(config.GetDB(), c.Params("id"))
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return helpers.Error(c, 404, "Teacher not found")
		}
		return helpers.Error(c, 500, "Failed to fetch teacher")
	}
	return c.JSON(fiber.Map{"success": true, "teacher": t})
}

// CreateTeacherAPI provisions a teacher: auth account first, then the
// profile row, with compensation on a profile failure.
func CreateTeacherAPI(c *fiber.Ctx) error {
	req := new(CreateTeacherRequest)
	if err := c.BodyParser(req); err != nil {
		return helpers.Error(c, 400, "Invalid request body")
	}

	req.Sanitize()
	if err := helpers.Validate.Struct(req); err != nil {
		return helpers.ValidationError(c, err)
	}

	user := req.ToUser()
	teacher := req.ToModel()

	provisioner := services.NewDBProvisioner(config.GetDB())
	if err := provisioner.CreateTeacher(user, teacher); err != nil {
		var pe *services.ProvisionError
		if errors.As(err, &pe) {
			log.Printf("Teacher provisioning failed: %v", pe)
			return c.Status(500).JSON(fiber.Map{
				"success": false,
				"error":   "Failed to create teacher",
				"phase":   pe.Phase,
			})
		}
		return helpers.Error(c, 500, "Failed to create teacher")
	}

	services.InvalidateCache(cacheEntity)
	return c.JSON(fiber.Map{"success": true, "teacher": teacher})
}

// UpdateTeacherAPI performs a full-record profile update guarded by the
// caller's last-seen updated_at stamp.
func UpdateTeacherAPI(c *fiber.Ctx) error {
	req := new(UpdateTeacherRequest)
	if err := c.BodyParser(req); err != nil {
		return helpers.Error(c, 400, "Invalid request body")
	}

	req.Sanitize()
	if err := helpers.Validate.Struct(req); err != nil {
		return helpers.ValidationError(c, err)
	}

	t := req.ToModel(c.Params("id"))
	if err := database.UpdateTeacher(config.GetDB(), t, req.UpdatedAt); err != nil {
		switch {
		case errors.Is(err, database.ErrNotFound):
			return helpers.Error(c, 404, "Teacher not found")
		case errors.Is(err, database.ErrConflict):
			return helpers.Error(c, 409, "Teacher was modified by someone else, reload and retry")
		default:
			return helpers.Error(c, 500, "Failed to update teacher")
		}
	}

	services.InvalidateCache(cacheEntity)
	return c.JSON(fiber.Map{"success": true, "message": "Teacher updated successfully"})
}

// UploadTeacherFilesAPI stores a profile image and/or CV for a teacher and
// records their URLs. Either part may be omitted.
func UploadTeacherFilesAPI(c *fiber.Ctx) error {
	if fileUploader == nil {
		return helpers.Error(c, 500, "File storage is not configured")
	}

	id := c.Params("id")
	imageURL, err := uploadFormFile(c, "profile_image", "teachers/images", id)
	if err != nil {
		return helpers.Error(c, 500, "Failed to store profile image")
	}
	cvURL, err := uploadFormFile(c, "cv", "teachers/cvs", id)
	if err != nil {
		return helpers.Error(c, 500, "Failed to store CV")
	}
	if imageURL == "" && cvURL == "" {
		return helpers.Error(c, 400, "No file attached")
	}

	if err := database.SetTeacherFiles(config.GetDB(), id, imageURL, cvURL); err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return helpers.Error(c, 404, "Teacher not found")
		}
		return helpers.Error(c, 500, "Failed to update teacher files")
	}

	services.InvalidateCache(cacheEntity)
	return c.JSON(fiber.Map{
		"success":           true,
		"profile_image_url": imageURL,
		"cv_url":            cvURL,
	})
}

// uploadFormFile uploads one optional multipart part and returns its URL,
// or "" when the part is absent.
func uploadFormFile(c *fiber.Ctx, field, folder, name string) (string, error) {
	fh, err := c.FormFile(field)
	if err != nil {
		return "", nil
	}

	f, err := fh.Open()
	if err != nil {
		return "", err
	}
	defer f.Close()

	b, err := io.ReadAll(f)
	if err != nil {
		return "", err
	}
	return fileUploader.UploadBytes(c.Context(), folder, name, b)
}

// DeleteTeacherAPI soft-deletes a teacher: the profile is deactivated along
// with its auth account, the row is kept.
func DeleteTeacherAPI(c *fiber.Ctx) error {
	if err := database.DeactivateTeacher(config.GetDB(), c.Params("id")); err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return helpers.Error(c, 404, "Teacher not found")
		}
		return helpers.Error(c, 500, "Failed to deactivate teacher")
	}

	services.InvalidateCache(cacheEntity)
	return c.JSON(fiber.Map{"success": true, "message": "Teacher deactivated successfully"})
}
