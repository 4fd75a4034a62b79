package handlers

import (
	"time"

	"gymdesk/internal/middleware"
	"gymdesk/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// AuthHandler handles HTTP requests for authentication.
type AuthHandler struct {
	authService  *services.AuthService
	userService  *services.UserService
	validate     *validator.Validate
	cookieSecure bool
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(authService *services.AuthService, userService *services.UserService, cookieSecure bool) *AuthHandler {
	return &AuthHandler{
		authService:  authService,
		userService:  userService,
		validate:     validator.New(),
		cookieSecure: cookieSecure,
	}
}

// RegisterRoutes registers the authentication routes with the Fiber app.
func (h *AuthHandler) RegisterRoutes(router fiber.Router) {
	authRoutes := router.Group("/auth")
	authRoutes.Post("/register", h.HandleRegister)
	authRoutes.Post("/login", h.HandleLogin)
	authRoutes.Post("/logout", h.HandleLogout)
	authRoutes.Get("/me", middleware.AuthRequired(h.authService), h.HandleMe)
}

// RegisterRequest represents the request body for registration. The admin role
// is not accepted here.
type RegisterRequest struct {
	Name     string `json:"name" validate:"required,min=2,max=100"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
	Role     string `json:"role" validate:"omitempty,oneof=user trainer"`
}

// HandleRegister handles new user registration.
func (h *AuthHandler) HandleRegister(c *fiber.Ctx) error {
	var req RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return respondBadBody(c, err)
	}
	if err := h.validate.Struct(req); err != nil {
		return respondValidation(c, err)
	}

	user, err := h.authService.Register(req.Name, req.Email, req.Password, req.Role)
	if err != nil {
		return respondError(c, err)
	}
	h.userService.PublishRegistered(user)

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"user": user,
	})
}

// LoginRequest represents the request body for login.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// HandleLogin authenticates a user and sets the session cookie. The cookie
// max-age mirrors the token's own expiry exactly.
func (h *AuthHandler) HandleLogin(c *fiber.Ctx) error {
	var req LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return respondBadBody(c, err)
	}
	if err := h.validate.Struct(req); err != nil {
		return respondValidation(c, err)
	}

	user, token, err := h.authService.Login(req.Email, req.Password)
	if err != nil {
		return respondError(c, err)
	}

	c.Cookie(&fiber.Cookie{
		Name:     middleware.TokenCookie,
		Value:    token,
		Path:     "/",
		MaxAge:   int(h.authService.TokenTTL().Seconds()),
		HTTPOnly: true,
		Secure:   h.cookieSecure,
		SameSite: "Strict",
	})

	return c.JSON(fiber.Map{
		"user":  user,
		"token": token,
		"role":  user.Role,
	})
}

// HandleLogout clears the session cookie. Safe to call repeatedly.
func (h *AuthHandler) HandleLogout(c *fiber.Ctx) error {
	c.Cookie(&fiber.Cookie{
		Name:     middleware.TokenCookie,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		Expires:  time.Now().Add(-time.Hour),
		HTTPOnly: true,
		Secure:   h.cookieSecure,
		SameSite: "Strict",
	})
	return c.JSON(fiber.Map{
		"message": "logged out",
	})
}

// HandleMe returns the authenticated user's fresh record.
func (h *AuthHandler) HandleMe(c *fiber.Ctx) error {
	userID, _ := c.Locals(middleware.LocalUserID).(string)
	user, err := h.userService.GetByID(userID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{
		"user": user,
	})
}
