package dashboard

import (
	"encoding/json"

	"github.com/gofiber/fiber/v2"

	"alandalus-portal/app/config"
	"alandalus-portal/app/database"
	"alandalus-portal/app/helpers"
	"alandalus-portal/app/services"
)

const cacheEntity = "dashboard"

// GetDashboardAPI returns the admin landing screen counters. The result is
// cached; the cache key is dropped by the overdue sweep when it changes
// payment rows, but mutations elsewhere tolerate the stats lagging by up to
// the cache TTL.
func GetDashboardAPI(c *fiber.Ctx) error {
	if body, ok := services.CacheGet(cacheEntity); ok {
		c.Set("Content-Type", "application/json")
		return c.Send(body)
	}

	stats, err := database.GetDashboardStats(config.GetDB())
	if err != nil {
		return helpers.Error(c, 500, "Failed to fetch dashboard stats")
	}

	resp := fiber.Map{"success": true, "stats": stats}
	if body, err := json.Marshal(resp); err == nil {
		services.CacheSet(cacheEntity, body)
	}
	return c.JSON(resp)
}
