package departments

import (
	"encoding/json"
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"

	"alandalus-portal/app/config"
	"alandalus-portal/app/database"
	"alandalus-portal/app/helpers"
	"alandalus-portal/app/models"
	"alandalus-portal/app/services"
)

const cacheEntity = "departments"

// DepartmentRequest is the create payload.
type DepartmentRequest struct {
	NameAr string `json:"name_ar" validate:"required"`
	NameEn string `json:"name_en"`
}

// GetDepartmentsAPI returns all departments ordered by Arabic name.
func GetDepartmentsAPI(c *fiber.Ctx) error {
	if body, ok := services.CacheGet(cacheEntity); ok {
		c.Set("Content-Type", "application/json")
		return c.Send(body)
	}

	rows, err := database.GetDepartments(config.GetDB())
	if err != nil {
		return helpers.Error(c, 500, "Failed to fetch departments")
	}

	resp := fiber.Map{"success": true, "departments": rows}
	if body, err := json.Marshal(resp); err == nil {
		services.CacheSet(cacheEntity, body)
	}
	return c.JSON(resp)
}

// CreateDepartmentAPI creates a department
func CreateDepartmentAPI(c *fiber.Ctx) error {
	req := new(DepartmentRequest)
	if err := c.BodyParser(req); err != nil {
		return helpers.Error(c, 400, "Invalid request body")
	}

	req.NameAr = strings.TrimSpace(req.NameAr)
	req.NameEn = strings.TrimSpace(req.NameEn)
	if err := helpers.Validate.Struct(req); err != nil {
		return helpers.ValidationError(c, err)
	}

	d := &models.Department{NameAr: req.NameAr, NameEn: req.NameEn}
	if err := database.CreateDepartment(config.GetDB(), d); err != nil {
		return helpers.Error(c, 500, "Failed to create department")
	}

	services.InvalidateCache(cacheEntity)
	return c.JSON(fiber.Map{"success": true, "department": d})
}

// DeleteDepartmentAPI deletes a department
func DeleteDepartmentAPI(c *fiber.Ctx) error {
	if err := database.DeleteDepartment(config.GetDB(), c.Params("id")); err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return helpers.Error(c, 404, "Department not found")
		}
		return helpers.Error(c, 500, "Failed to delete department")
	}

	services.InvalidateCache(cacheEntity)
	return c.JSON(fiber.Map{"success": true, "message": "Department deleted successfully"})
}
