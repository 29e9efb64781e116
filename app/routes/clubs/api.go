package clubs

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

const cacheEntity = "clubs"

func loadClubs(db *sql.DB) ([]models.Club, error) {
	if body, ok := services.CacheGet(cacheEntity); ok {
		var rows []models.Club
		if err := json.Unmarshal(body, &rows); err == nil {
			return rows, nil
		}
	}

	rows, err := database.GetClubs(db, database.ClubFilters{})
	if err != nil {
		return nil, err
	}
	if body, err := json.Marshal(rows); err == nil {
		services.CacheSet(cacheEntity, body)
	}
	return rows, nil
}

// GetClubsAPI returns clubs, optionally narrowed by store-side
// category/status filters.
func GetClubsAPI(c *fiber.Ctx) error {
	db := config.GetDB()

	filters := database.ClubFilters{
		Category: helpers.StoreFilter(c.Query("category")),
		Status:   helpers.StoreFilter(c.Query("status")),
	}

	if filters.Category == "" && filters.Status == "" {
		rows, err := loadClubs(db)
		if err != nil {
			return helpers.Error(c, 500, "Failed to fetch clubs")
		}
		return c.JSON(fiber.Map{"success": true, "clubs": rows})
	}

	rows, err := database.GetClubs(db, filters)
	if err != nil {
		return helpers.Error(c, 500, "Failed to fetch clubs")
	}
	return c.JSON(fiber.Map{"success": true, "clubs": rows})
}

// GetClubsTableAPI backs the admin table: full list fetched once
// (cache-backed), then searched and filtered in memory.
func GetClubsTableAPI(c *fiber.Ctx) error {
	rows, err := loadClubs(config.GetDB())
	if err != nil {
		return helpers.Error(c, 500, "Failed to fetch clubs")
	}

	rows = FilterClubs(rows, c.Query("search"), c.Query("category", "all"), c.Query("status", "all"))
	return c.JSON(fiber.Map{"success": true, "clubs": DecorateClubs(rows)})
}

// GetClubAPI returns a single club as an edit form seed.
func GetClubAPI(c *fiber.Ctx) error {
	club, err := database.GetClubByID(config.GetDB(), c.Params("id"))
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return helpers.Error(c, 404, "Club not found")
		}
		return helpers.Error(c, 500, "Failed to fetch club")
	}
	return c.JSON(fiber.Map{"success": true, "club": club, "form": SeedRequest(club)})
}

// CreateClubAPI creates a new club
func CreateClubAPI(c *fiber.Ctx) error {
	req := new(ClubRequest)
	if err := c.BodyParser(req); err != nil {
		return helpers.Error(c, 400, "Invalid request body")
	}

	req.Sanitize()
	if err := helpers.Validate.Struct(req); err != nil {
		return helpers.ValidationError(c, err)
	}

	club := req.ToModel("")
	if err := database.CreateClub(config.GetDB(), club); err != nil {
		return helpers.Error(c, 500, "Failed to create club")
	}

	services.InvalidateCache(cacheEntity)
	return c.JSON(fiber.Map{"success": true, "club": club})
}

// UpdateClubAPI performs a full-record update guarded by the caller's
// last-seen updated_at stamp.
func UpdateClubAPI(c *fiber.Ctx) error {
	req := new(ClubRequest)
	if err := c.BodyParser(req); err != nil {
		return helpers.Error(c, 400, "Invalid request body")
	}

	req.Sanitize()
	if err := helpers.Validate.Struct(req); err != nil {
		return helpers.ValidationError(c, err)
	}

	club := req.ToModel(c.Params("id"))
	if err := database.UpdateClub(config.GetDB(), club, req.UpdatedAt); err != nil {
		switch {
		case errors.Is(err, database.ErrNotFound):
			return helpers.Error(c, 404, "Club not found")
		case errors.Is(err, database.ErrConflict):
			return helpers.Error(c, 409, "Club was modified by someone else, reload and retry")
		default:
			return helpers.Error(c, 500, "Failed to update club")
		}
	}

	services.InvalidateCache(cacheEntity)
	return c.JSON(fiber.Map{"success": true, "message": "Club updated successfully"})
}

// DeleteClubAPI deletes a club
func DeleteClubAPI(c *fiber.Ctx) error {
	if err := database.DeleteClub(config.GetDB(), c.Params("id")); err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return helpers.Error(c, 404, "Club not found")
		}
		return helpers.Error(c, 500, "Failed to delete club")
	}

	services.InvalidateCache(cacheEntity)
	return c.JSON(fiber.Map{"success": true, "message": "Club deleted successfully"})
}
