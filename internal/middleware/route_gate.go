package middleware

import (
	"strings"

	"gymdesk/internal/models"
	"gymdesk/internal/services"

	"github.com/gofiber/fiber/v2"
)

// RouteGate intercepts every request and makes the coarse access decision
// before any handler runs:
//
//   - public path, no session: allow.
//   - login/register while authenticated: redirect to the landing page of the
//     role carried by the verified token.
//   - protected path without a valid session: redirect page requests to
//     /login, fail API requests with 401.
//   - role-prefixed page path whose prefix does not match the session role:
//     403.
//
// The token is fully verified here; a tampered or expired cookie counts as no
// session at all.
func RouteGate(authService *services.AuthService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		path := c.Path()

		var claims *services.TokenClaims
		if tokenString := c.Cookies(TokenCookie); tokenString != "" {
			claims, _ = authService.ValidateToken(tokenString)
		}

		if isPublicPath(path) {
			if claims != nil && isAuthPage(path) {
				return c.Redirect(landingPath(claims.Role), fiber.StatusSeeOther)
			}
			return c.Next()
		}

		if claims == nil {
			if strings.HasPrefix(path, "/api/") {
				return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
					"error": "authentication required",
				})
			}
			return c.Redirect("/login", fiber.StatusSeeOther)
		}

		if required := roleForPath(path); required != "" && required != claims.Role {
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
				"error": "access denied",
			})
		}

		return c.Next()
	}
}

func isPublicPath(path string) bool {
	switch path {
	case "/", "/login", "/register", "/favicon.ico", "/health":
		return true
	}
	return strings.HasPrefix(path, "/api/auth") || strings.HasPrefix(path, "/assets/")
}

func isAuthPage(path string) bool {
	return path == "/login" || path == "/register"
}

// landingPath maps a verified role to its dashboard. Never derived from the
// requested path.
func landingPath(role string) string {
	switch role {
	case models.RoleAdmin:
		return "/admin"
	case models.RoleTrainer:
		return "/trainer"
	default:
		return "/user"
	}
}

// roleForPath returns the role a page prefix demands, or "" for unrestricted
// protected paths.
func roleForPath(path string) string {
	switch {
	case path == "/admin" || strings.HasPrefix(path, "/admin/"):
		return models.RoleAdmin
	case path == "/trainer" || strings.HasPrefix(path, "/trainer/"):
		return models.RoleTrainer
	case path == "/user" || strings.HasPrefix(path, "/user/"):
		return models.RoleMember
	}
	return ""
}
