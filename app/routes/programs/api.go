package programs

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

const cacheEntity = "programs"

// ProgramRequest is the create payload.
type ProgramRequest struct {
	NameAr       string `json:"name_ar" validate:"required"`
	NameEn       string `json:"name_en"`
	DepartmentID string `json:"department_id"`
}

// GetProgramsAPI returns all programs ordered by Arabic name.
func GetProgramsAPI(c *fiber.Ctx) error {
	if body, ok := services.CacheGet(cacheEntity); ok {
		c.Set("Content-Type", "application/json")
		return c.Send(body)
	}

	rows, err := database.GetPrograms(config.GetDB())
	if err != nil {
		return helpers.Error(c, 500, "Failed to fetch programs")
	}

	resp := fiber.Map{"success": true, "programs": rows}
	if body, err := json.Marshal(resp); err == nil {
		services.CacheSet(cacheEntity, body)
	}
	return c.JSON(resp)
}

// CreateProgramAPI creates a program
func CreateProgramAPI(c *fiber.Ctx) error {
	req := new(ProgramRequest)
	if err := c.BodyParser(req); err != nil {
		return helpers.Error(c, 400, "Invalid request body")
	}

	req.NameAr = strings.TrimSpace(req.NameAr)
	req.NameEn = strings.TrimSpace(req.NameEn)
	req.DepartmentID = strings.TrimSpace(req.DepartmentID)
	if err := helpers.Validate.Struct(req); err != nil {
		return helpers.ValidationError(c, err)
	}

	p := &models.Program{NameAr: req.NameAr, NameEn: req.NameEn}
	if req.DepartmentID != "" {
		p.DepartmentID = &req.DepartmentID
	}
	if err := database.CreateProgram(config.GetDB(), p); err != nil {
		return helpers.Error(c, 500, "Failed to create program")
	}

	services.InvalidateCache(cacheEntity)
	return c.JSON(fiber.Map{"success": true, "program": p})
}

// DeleteProgramAPI deletes a program
func DeleteProgramAPI(c *fiber.Ctx) error {
	if err := database.DeleteProgram(config.GetDB(), c.Params("id")); err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return helpers.Error(c, 404, "Program not found")
		}
		return helpers.Error(c, 500, "Failed to delete program")
	}

	services.InvalidateCache(cacheEntity)
	return c.JSON(fiber.Map{"success": true, "message": "Program deleted successfully"})
}
