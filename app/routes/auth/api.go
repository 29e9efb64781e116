package auth

import (
	"database/sql"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"

	"alandalus-portal/app/config"
	"alandalus-portal/app/database"
)

func LoginAPI(c *fiber.Ctx) error {
	type LoginRequest struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}

	var req LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request"})
	}

	user, err := database.GetUserByEmail(config.GetDB(), req.Email)
	if err != nil {
		if err == sql.ErrNoRows {
			return c.Status(401).JSON(fiber.Map{"error": "Invalid credentials"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Database error"})
	}

	if !CheckPasswordHash(req.Password, user.Password) {
		return c.Status(401).JSON(fiber.Map{"error": "Invalid credentials"})
	}

	roles, err := database.GetUserRoles(config.GetDB(), user.ID)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to get user roles"})
	}
	user.Roles = roles

	roleNames := make([]string, len(roles))
	for i, role := range roles {
		roleNames[i] = role.Name
	}

	token, err := GenerateJWT(user.ID, user.Email, user.FirstName, user.LastName, roleNames)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to generate token"})
	}

	// Record the login as a session row
	sessionID := GenerateSessionID()
	if err := database.CreateSession(config.GetDB(), sessionID, user.ID, GetSessionExpiry()); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to create session"})
	}

	// Set JWT as HTTP-only cookie
	c.Cookie(&fiber.Cookie{
		Name:     "jwt_token",
		Value:    token,
		Expires:  time.Now().Add(24 * time.Hour),
		HTTPOnly: true,
		Secure:   false, // Set to true in production with HTTPS
		SameSite: "Lax",
	})

	c.Cookie(&fiber.Cookie{
		Name:     "session_id",
		Value:    sessionID.String(),
		Expires:  GetSessionExpiry(),
		HTTPOnly: true,
		SameSite: "Lax",
	})

	return c.JSON(fiber.Map{
		"message": "Login successful",
		"user":    user,
		"token":   token,
	})
}

func LogoutAPI(c *fiber.Ctx) error {
	// Drop the session row, if any
	if sid := c.Cookies("session_id"); sid != "" {
		if err := database.DeleteSession(config.GetDB(), sid); err != nil {
			log.Printf("Failed to delete session %s: %v", sid, err)
		}
	}

	// Clear cookies
	c.Cookie(&fiber.Cookie{
		Name:     "jwt_token",
		Value:    "",
		Expires:  time.Now().Add(-time.Hour),
		HTTPOnly: true,
	})
	c.Cookie(&fiber.Cookie{
		Name:     "session_id",
		Value:    "",
		Expires:  time.Now().Add(-time.Hour),
		HTTPOnly: true,
	})

	return c.JSON(fiber.Map{"message": "Logged out"})
}

// MeAPI returns the authenticated user's claims, plus the session expiry
// when a session cookie accompanies the token.
func MeAPI(c *fiber.Ctx) error {
	resp := fiber.Map{
		"user_id":    c.Locals("user_id"),
		"email":      c.Locals("user_email"),
		"first_name": c.Locals("user_first_name"),
		"last_name":  c.Locals("user_last_name"),
		"roles":      c.Locals("user_roles"),
	}

	if sid := c.Cookies("session_id"); sid != "" {
		if session, err := database.GetSessionByID(config.GetDB(), sid); err == nil {
			resp["session_expires_at"] = session.ExpiresAt
		}
	}

	return c.JSON(resp)
}

// AssignRoleAPI grants a role to a user, creating the role if needed.
func AssignRoleAPI(c *fiber.Ctx) error {
	var req struct {
		UserID string `json:"user_id"`
		Role   string `json:"role"`
	}
	if err := c.BodyParser(&req); err != nil || req.UserID == "" || req.Role == "" {
		return c.Status(400).JSON(fiber.Map{"error": "user_id and role are required"})
	}

	if err := database.AssignRole(config.GetDB(), req.UserID, req.Role); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to assign role"})
	}
	return c.JSON(fiber.Map{"message": "Role assigned"})
}

// RemoveRoleAPI revokes a role from a user.
func RemoveRoleAPI(c *fiber.Ctx) error {
	var req struct {
		UserID string `json:"user_id"`
		Role   string `json:"role"`
	}
	if err := c.BodyParser(&req); err != nil || req.UserID == "" || req.Role == "" {
		return c.Status(400).JSON(fiber.Map{"error": "user_id and role are required"})
	}

	if err := database.RemoveRole(config.GetDB(), req.UserID, req.Role); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to remove role"})
	}
	return c.JSON(fiber.Map{"message": "Role removed"})
}

func ChangePasswordAPI(c *fiber.Ctx) error {
	type ChangePasswordRequest struct {
		CurrentPassword string `json:"current_password"`
		NewPassword     string `json:"new_password"`
	}

	var req ChangePasswordRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request"})
	}

	if len(req.NewPassword) < 8 {
		return c.Status(400).JSON(fiber.Map{"error": "New password must be at least 8 characters"})
	}

	userID := c.Locals("user_id").(string)

	user, err := database.GetUserByID(config.GetDB(), userID)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Database error"})
	}

	if !CheckPasswordHash(req.CurrentPassword, user.Password) {
		return c.Status(400).JSON(fiber.Map{"error": "Current password is incorrect"})
	}

	hashedPassword, err := HashPassword(req.NewPassword)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to hash password"})
	}

	if err := database.UpdateUserPassword(config.GetDB(), userID, hashedPassword); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to update password"})
	}

	return c.JSON(fiber.Map{"message": "Password changed successfully"})
}
