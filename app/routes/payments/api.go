package payments

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

const cacheEntity = "payments"

func loadPayments(db *sql.DB) ([]models.Payment, error) {
	if body, ok := services.CacheGet(cacheEntity); ok {
		var rows []models.Payment
		if err := json.Unmarshal(body, &rows); err == nil {
			return rows, nil
		}
	}

	rows, err := database.GetPayments(db, database.PaymentFilters{})
	if err != nil {
		return nil, err
	}
	if body, err := json.Marshal(rows); err == nil {
		services.CacheSet(cacheEntity, body)
	}
	return rows, nil
}

// GetPaymentsAPI returns payments, optionally narrowed by store-side
// student/type/status filters.
func GetPaymentsAPI(c *fiber.Ctx) error {
	db := config.GetDB()

	filters := database.PaymentFilters{
		StudentID: c.Query("student_id"),
		Type:      helpers.StoreFilter(c.Query("type")),
		Status:    helpers.StoreFilter(c.Query("status")),
	}

	if filters.StudentID == "" && filters.Type == "" && filters.Status == "" {
		rows, err := loadPayments(db)
		if err != nil {
			return helpers.Error(c, 500, "Failed to fetch payments")
		}
		return c.JSON(fiber.Map{"success": true, "payments": rows})
	}

	rows, err := database.GetPayments(db, filters)
	if err != nil {
		return helpers.Error(c, 500, "Failed to fetch payments")
	}
	return c.JSON(fiber.Map{"success": true, "payments": rows})
}

// GetPaymentsTableAPI backs the admin table: full list fetched once
// (cache-backed), then searched and filtered in memory.
func GetPaymentsTableAPI(c *fiber.Ctx) error {
	rows, err := loadPayments(config.GetDB())
	if err != nil {
		return helpers.Error(c, 500, "Failed to fetch payments")
	}

	rows = FilterPayments(rows, c.Query("search"), c.Query("type", "all"), c.Query("status", "all"))
	return c.JSON(fiber.Map{"success": true, "payments": DecoratePayments(rows)})
}

// GetPaymentAPI returns a single payment
func GetPaymentAPI(c *fiber.Ctx) error {
	p, err := database.GetPaymentByID(config.GetDB(), c.Params("id"))
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return helpers.Error(c, 404, "Payment not found")
		}
		return helpers.Error(c, 500, "Failed to fetch payment")
	}
	return c.JSON(fiber.Map{"success": true, "payment": p})
}

// CreatePaymentAPI creates a new payment
func CreatePaymentAPI(c *fiber.Ctx) error {
	req := new(PaymentRequest)
	if err := c.BodyParser(req); err != nil {
		return helpers.Error(c, 400, "Invalid request body")
	}

	req.Sanitize()
	if err := helpers.Validate.Struct(req); err != nil {
		return helpers.ValidationError(c, err)
	}

	p := req.ToModel("")
	if err := database.CreatePayment(config.GetDB(), p); err != nil {
		return helpers.Error(c, 500, "Failed to create payment")
	}

	services.InvalidateCache(cacheEntity)
	return c.JSON(fiber.Map{"success": true, "payment": p})
}

// UpdatePaymentAPI performs a full-record update guarded by the caller's
// last-seen updated_at stamp.
func UpdatePaymentAPI(c *fiber.Ctx) error {
	req := new(PaymentRequest)
	if err := c.BodyParser(req); err != nil {
		return helpers.Error(c, 400, "Invalid request body")
	}

	req.Sanitize()
	if err := helpers.Validate.Struct(req); err != nil {
		return helpers.ValidationError(c, err)
	}

	p := req.ToModel(c.Params("id"))
	if err := database.UpdatePayment(config.GetDB(), p, req.UpdatedAt); err != nil {
		switch {
		case errors.Is(err, database.ErrNotFound):
			return helpers.Error(c, 404, "Payment not found")
		case errors.Is(err, database.ErrConflict):
			return helpers.Error(c, 409, "Payment was modified by someone else, reload and retry")
		default:
			return helpers.Error(c, 500, "Failed to update payment")
		}
	}

	services.InvalidateCache(cacheEntity)
	return c.JSON(fiber.Map{"success": true, "message": "Payment updated successfully"})
}

// DeletePaymentAPI deletes a payment
func DeletePaymentAPI(c *fiber.Ctx) error {
	if err := database.DeletePayment(config.GetDB(), c.Params("id")); err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return helpers.Error(c, 404, "Payment not found")
		}
		return helpers.Error(c, 500, "Failed to delete payment")
	}

	services.InvalidateCache(cacheEntity)
	return c.JSON(fiber.Map{"success": true, "message": "Payment deleted successfully"})
}
