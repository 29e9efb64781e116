package appointments

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

const cacheEntity = "appointments"

func loadAppointments(db *sql.DB) ([]models.Appointment, error) {
	if body, ok := services.CacheGet(cacheEntity); ok {
		var rows []models.Appointment
		if err := json.Unmarshal(body, &rows); err == nil {
			return rows, nil
		}
	}

	rows, err := database.GetAppointments(db, database.AppointmentFilters{})
	if err != nil {
		return nil, err
	}
	if body, err := json.Marshal(rows); err == nil {
		services.CacheSet(cacheEntity, body)
	}
	return rows, nil
}

// GetAppointmentsAPI returns appointments, optionally narrowed by a
// store-side status filter. Clients treat a failure here as retryable and
// call the endpoint again.
func GetAppointmentsAPI(c *fiber.Ctx) error {
	db := config.GetDB()

	status := helpers.StoreFilter(c.Query("status"))
	if status == "" {
		rows, err := loadAppointments(db)
		if err != nil {
			return helpers.Error(c, 500, "Failed to fetch appointments")
		}
		return c.JSON(fiber.Map{"success": true, "appointments": rows})
	}

	rows, err := database.GetAppointments(db, database.AppointmentFilters{Status: status})
	if err != nil {
		return helpers.Error(c, 500, "Failed to fetch appointments")
	}
	return c.JSON(fiber.Map{"success": true, "appointments": rows})
}

// GetAppointmentsTableAPI backs the admin table: full list fetched once
// (cache-backed), then searched and filtered in memory.
func GetAppointmentsTableAPI(c *fiber.Ctx) error {
	rows, err := loadAppointments(config.GetDB())
	if err != nil {
		return helpers.Error(c, 500, "Failed to fetch appointments")
	}

	rows = FilterAppointments(rows, c.Query("search"), c.Query("status", "all"))
	return c.JSON(fiber.Map{"success": true, "appointments": DecorateAppointments(rows)})
}

// GetAppointmentAPI returns a single appointment
func GetAppointmentAPI(c *fiber.Ctx) error {
	a, err := database.GetAppointmentByID(config.GetDB(), c.Params("id"))
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return helpers.Error(c, 404, "Appointment not found")
		}
		return helpers.Error(c, 500, "Failed to fetch appointment")
	}
	return c.JSON(fiber.Map{"success": true, "appointment": a})
}

// CreateAppointmentAPI creates a new appointment
func CreateAppointmentAPI(c *fiber.Ctx) error {
	req := new(AppointmentRequest)
	if err := c.BodyParser(req); err != nil {
		return helpers.Error(c, 400, "Invalid request body")
	}

	req.Sanitize()
	if err := helpers.Validate.Struct(req); err != nil {
		return helpers.ValidationError(c, err)
	}

	a := req.ToModel("")
	if err := database.CreateAppointment(config.GetDB(), a); err != nil {
		return helpers.Error(c, 500, "Failed to create appointment")
	}

	services.InvalidateCache(cacheEntity)
	return c.JSON(fiber.Map{"success": true, "appointment": a})
}

// UpdateAppointmentAPI performs a full-record update guarded by the
// caller's last-seen updated_at stamp. Any status can be set; there is no
// transition graph.
func UpdateAppointmentAPI(c *fiber.Ctx) error {
	req := new(AppointmentRequest)
	if err := c.BodyParser(req); err != nil {
		return helpers.Error(c, 400, "Invalid request body")
	}

	req.Sanitize()
	if err := helpers.Validate.Struct(req); err != nil {
		return helpers.ValidationError(c, err)
	}

	a := req.ToModel(c.Params("id"))
	if err := database.UpdateAppointment(config.GetDB(), a, req.UpdatedAt); err != nil {
		switch {
		case errors.Is(err, database.ErrNotFound):
			return helpers.Error(c, 404, "Appointment not found")
		case errors.Is(err, database.ErrConflict):
			return helpers.Error(c, 409, "Appointment was modified by someone else, reload and retry")
		default:
			return helpers.Error(c, 500, "Failed to update appointment")
		}
	}

	services.InvalidateCache(cacheEntity)
	return c.JSON(fiber.Map{"success": true, "message": "Appointment updated successfully"})
}

// DeleteAppointmentAPI deletes an appointment
func DeleteAppointmentAPI(c *fiber.Ctx) error {
	if err := database.DeleteAppointment(config.GetDB(), c.Params("id")); err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return helpers.Error(c, 404, "Appointment not found")
		}
		return helpers.Error(c, 500, "Failed to delete appointment")
	}

	services.InvalidateCache(cacheEntity)
	return c.JSON(fiber.Map{"success": true, "message": "Appointment deleted successfully"})
}
