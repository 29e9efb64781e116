package services

import (
	"database/sql"
	"encoding/json"
	"errors"

	"github.com/gofiber/fiber/v2"

	"alandalus-portal/app/config"
	"alandalus-portal/app/database"
	"alandalus-portal/app/helpers"
	"alandalus-portal/app/models"
	appservices "alandalus-portal/app/services"
)

const cacheEntity = "services"

// loadServices returns the full catalog, serving the cached copy when one
// exists and refilling it otherwise.
func loadServices(db *sql.DB) ([]models.Service, error) {
	if body, ok := appservices.CacheGet(cacheEntity); ok {
		var rows []models.Service
		if err := json.Unmarshal(body, &rows); err == nil {
			return rows, nil
		}
	}

	rows, err := database.GetServices(db, database.ServiceFilters{})
	if err != nil {
		return nil, err
	}
	if body, err := json.Marshal(rows); err == nil {
		appservices.CacheSet(cacheEntity, body)
	}
	return rows, nil
}

// GetServicesAPI returns services, optionally narrowed by store-side
// category/status filters.
func GetServicesAPI(c *fiber.Ctx) error {
	db := config.GetDB()

	filters := database.ServiceFilters{
		Category: helpers.StoreFilter(c.Query("category")),
		Status:   helpers.StoreFilter(c.Query("status")),
	}

	if filters.Category == "" && filters.Status == "" {
		rows, err := loadServices(db)
		if err != nil {
			return helpers.Error(c, 500, "Failed to fetch services")
		}
		return c.JSON(fiber.Map{"success": true, "services": rows})
	}

	rows, err := database.GetServices(db, filters)
	if err != nil {
		return helpers.Error(c, 500, "Failed to fetch services")
	}
	return c.JSON(fiber.Map{"success": true, "services": rows})
}

// GetServicesTableAPI backs the admin table: full catalog fetched once
// (cache-backed), then searched and filtered in memory.
func GetServicesTableAPI(c *fiber.Ctx) error {
	rows, err := loadServices(config.GetDB())
	if err != nil {
		return helpers.Error(c, 500, "Failed to fetch services")
	}

	rows = FilterServices(rows, c.Query("search"), c.Query("category", "all"), c.Query("status", "all"))
	return c.JSON(fiber.Map{"success": true, "services": DecorateServices(rows)})
}

// GetServiceAPI returns a single service
func GetServiceAPI(c *fiber.Ctx) error {
	s, err := database.GetServiceByID(config.GetDB(), c.Params("id"))
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return helpers.Error(c, 404, "Service not found")
		}
		return helpers.Error(c, 500, "Failed to fetch service")
	}
	return c.JSON(fiber.Map{"success": true, "service": s})
}

// CreateServiceAPI creates a new service
func CreateServiceAPI(c *fiber.Ctx) error {
	req := new(ServiceRequest)
	if err := c.BodyParser(req); err != nil {
		return helpers.Error(c, 400, "Invalid request body")
	}

	req.Sanitize()
	if err := helpers.Validate.Struct(req); err != nil {
		return helpers.ValidationError(c, err)
	}

	s := req.ToModel("")
	if err := database.CreateService(config.GetDB(), s); err != nil {
		return helpers.Error(c, 500, "Failed to create service")
	}

	appservices.InvalidateCache(cacheEntity)
	return c.JSON(fiber.Map{"success": true, "service": s})
}

// UpdateServiceAPI performs a full-record update guarded by the caller's
// last-seen updated_at stamp.
func UpdateServiceAPI(c *fiber.Ctx) error {
	req := new(ServiceRequest)
	if err := c.BodyParser(req); err != nil {
		return helpers.Error(c, 400, "Invalid request body")
	}

	req.Sanitize()
	if err := helpers.Validate.Struct(req); err != nil {
		return helpers.ValidationError(c, err)
	}

	s := req.ToModel(c.Params("id"))
	if err := database.UpdateService(config.GetDB(), s, req.UpdatedAt); err != nil {
		switch {
		case errors.Is(err, database.ErrNotFound):
			return helpers.Error(c, 404, "Service not found")
		case errors.Is(err, database.ErrConflict):
			return helpers.Error(c, 409, "Service was modified by someone else, reload and retry")
		default:
			return helpers.Error(c, 500, "Failed to update service")
		}
	}

	appservices.InvalidateCache(cacheEntity)
	return c.JSON(fiber.Map{"success": true, "message": "Service updated successfully"})
}

// DeleteServiceAPI deletes a service
func DeleteServiceAPI(c *fiber.Ctx) error {
	if err := database.DeleteService(config.GetDB(), c.Params("id")); err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return helpers.Error(c, 404, "Service not found")
		}
		return helpers.Error(c, 500, "Failed to delete service")
	}

	appservices.InvalidateCache(cacheEntity)
	return c.JSON(fiber.Map{"success": true, "message": "Service deleted successfully"})
}
