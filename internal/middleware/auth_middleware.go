package middleware

import (
	"log"

	"gymdesk/internal/models"
	"gymdesk/internal/services"

	"github.com/gofiber/fiber/v2"
)

// TokenCookie is the name of the session-carrier cookie.
const TokenCookie = "token"

// Locals keys under which verified claims are stashed for handlers.
const (
	LocalUserID = "user_id"
	LocalRole   = "role"
)

// AuthRequired is a Fiber middleware checking for a valid session token in the
// cookie. Verified claims are stored in the request locals.
func AuthRequired(authService *services.AuthService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		tokenString := c.Cookies(TokenCookie)
		if tokenString == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "authentication required",
			})
		}

		claims, err := authService.ValidateToken(tokenString)
		if err != nil {
			log.Printf("Token validation failed: %v", err)
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "invalid or expired token",
			})
		}

		c.Locals(LocalUserID, claims.UserID)
		c.Locals(LocalRole, claims.Role)
		return c.Next()
	}
}

// RoleRequired layers a role check on top of AuthRequired.
func RoleRequired(role string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if c.Locals(LocalRole) != role {
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
				"error": "access denied",
			})
		}
		return c.Next()
	}
}

// AdminRequired gates admin-only operations.
func AdminRequired() fiber.Handler {
	return RoleRequired(models.RoleAdmin)
}

// TrainerRequired gates trainer-only operations.
func TrainerRequired() fiber.Handler {
	return RoleRequired(models.RoleTrainer)
}
