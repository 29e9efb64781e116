package activities

import (
	"database/sql"
	"encoding/json"
	"errors"

	"github.com/gofiber/fiber/v2"

	"alandalus-portal/app/config"
	"alandalus-portal/app/database"
	"alandalus-portal/app/helpers"
	"alandalus-portal/app/models"
	"alandalus-portal/app/services"
)

const cacheEntity = "activities"

func loadActivities(db *sql.DB) ([]models.Activity, error) {
	if body, ok := services.CacheGet(cacheEntity); ok {
		var rows []models.Activity
		if err := json.Unmarshal(body, &rows); err == nil {
			return rows, nil
		}
	}

	rows, err := database.GetActivities(db, database.ActivityFilters{})
	if err != nil {
		return nil, err
	}
	if body, err := json.Marshal(rows); err == nil {
		services.CacheSet(cacheEntity, body)
	}
	return rows, nil
}

// GetActivitiesAPI returns activities, optionally narrowed by store-side
// type/status filters.
func GetActivitiesAPI(c *fiber.Ctx) error {
	db := config.GetDB()

	filters := database.ActivityFilters{
		Type:   helpers.StoreFilter(c.Query("type")),
		Status: helpers.StoreFilter(c.Query("status")),
	}

	if filters.Type == "" && filters.Status == "" {
		rows, err := loadActivities(db)
		if err != nil {
			return helpers.Error(c, 500, "Failed to fetch activities")
		}
		return c.JSON(fiber.Map{"success": true, "activities": rows})
	}

	rows, err := database.GetActivities(db, filters)
	if err != nil {
		return helpers.Error(c, 500, "Failed to fetch activities")
	}
	return c.JSON(fiber.Map{"success": true, "activities": rows})
}

// GetActivitiesTableAPI backs the admin table: full list fetched once
// (cache-backed), then searched and filtered in memory.
func GetActivitiesTableAPI(c *fiber.Ctx) error {
	rows, err := loadActivities(config.GetDB())
	if err != nil {
		return helpers.Error(c, 500, "Failed to fetch activities")
	}

	rows = FilterActivities(rows, c.Query("search"), c.Query("type", "all"), c.Query("status", "all"))
	return c.JSON(fiber.Map{"success": true, "activities": DecorateActivities(rows)})
}

// GetActivityAPI returns a single activity
func GetActivityAPI(c *fiber.Ctx) error {
	a, err := database.GetActivityByID(config.GetDB(), c.Params("id"))
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return helpers.Error(c, 404, "Activity not found")
		}
		return helpers.Error(c, 500, "Failed to fetch activity")
	}
	return c.JSON(fiber.Map{"success": true, "activity": a})
}

// CreateActivityAPI creates a new activity
func CreateActivityAPI(c *fiber.Ctx) error {
	req := new(ActivityRequest)
	if err := c.BodyParser(req); err != nil {
		return helpers.Error(c, 400, "Invalid request body")
	}

	req.Sanitize()
	if err := helpers.Validate.Struct(req); err != nil {
		return helpers.ValidationError(c, err)
	}

	a := req.ToModel("")
	if err := database.CreateActivity(config.GetDB(), a); err != nil {
		return helpers.Error(c, 500, "Failed to create activity")
	}

	services.InvalidateCache(cacheEntity)
	return c.JSON(fiber.Map{"success": true, "activity": a})
}

// UpdateActivityAPI performs a full-record update guarded by the caller's
// last-seen updated_at stamp.
func UpdateActivityAPI(c *fiber.Ctx) error {
	req := new(ActivityRequest)
	if err := c.BodyParser(req); err != nil {
		return helpers.Error(c, 400, "Invalid request body")
	}

	req.Sanitize()
	if err := helpers.Validate.Struct(req); err != nil {
		return helpers.ValidationError(c, err)
	}

	a := req.ToModel(c.Params("id"))
	if err := database.UpdateActivity(config.GetDB(), a, req.UpdatedAt); err != nil {
		switch {
		case errors.Is(err, database.ErrNotFound):
			return helpers.Error(c, 404, "Activity not found")
		case errors.Is(err, database.ErrConflict):
			return helpers.Error(c, 409, "Activity was modified by someone else, reload and retry")
		default:
			return helpers.Error(c, 500, "Failed to update activity")
		}
	}

	services.InvalidateCache(cacheEntity)
	return c.JSON(fiber.Map{"success": true, "message": "Activity updated successfully"})
}

// DeleteActivityAPI deletes an activity
func DeleteActivityAPI(c *fiber.Ctx) error {
	if err := database.DeleteActivity(config.GetDB(), c.Params("id")); err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return helpers.Error(c, 404, "Activity not found")
		}
		return helpers.Error(c, 500, "Failed to delete activity")
	}

	services.InvalidateCache(cacheEntity)
	return c.JSON(fiber.Map{"success": true, "message": "Activity deleted successfully"})
}
