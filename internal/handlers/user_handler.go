package handlers

import (
	"gymdesk/internal/middleware"
	"gymdesk/internal/models"
	"gymdesk/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// UserHandler handles HTTP requests for user management and trainer payments.
type UserHandler struct {
	userService *services.UserService
	authService *services.AuthService
	validate    *validator.Validate
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(userService *services.UserService, authService *services.AuthService) *UserHandler {
	return &UserHandler{
		userService: userService,
		authService: authService,
		validate:    validator.New(),
	}
}

// RegisterRoutes registers the user routes with the Fiber app.
func (h *UserHandler) RegisterRoutes(router fiber.Router) {
	auth := middleware.AuthRequired(h.authService)
	userRoutes := router.Group("/users")
	userRoutes.Get("/", auth, middleware.AdminRequired(), h.HandleListUsers)
	userRoutes.Put("/update-profile", auth, h.HandleUpdateProfile)
	userRoutes.Delete("/:id", auth, middleware.AdminRequired(), h.HandleDeleteUser)
	userRoutes.Post("/:id/pay", auth, middleware.AdminRequired(), h.HandleRecordPayment)
}

// HandleListUsers lists users, optionally filtered by role.
func (h *UserHandler) HandleListUsers(c *fiber.Ctx) error {
	role := c.Query("role")
	if role != "" && role != models.RoleMember && role != models.RoleTrainer && role != models.RoleAdmin {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "role must be user, trainer or admin",
		})
	}

	users, err := h.userService.List(role)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{
		"users": users,
	})
}

// MemberProfileRequest carries member-profile changes.
type MemberProfileRequest struct {
	Age            int     `json:"age" validate:"omitempty,gte=0,lte=120"`
	HeightCM       float64 `json:"height_cm" validate:"omitempty,gte=0"`
	WeightKG       float64 `json:"weight_kg" validate:"omitempty,gte=0"`
	Goal           string  `json:"goal" validate:"omitempty,max=255"`
	MembershipPlan string  `json:"membership_plan" validate:"omitempty,max=100"`
}

// TrainerProfileRequest carries trainer-profile changes.
type TrainerProfileRequest struct {
	Bio            string  `json:"bio" validate:"omitempty,max=1000"`
	Certifications string  `json:"certifications" validate:"omitempty,max=500"`
	Specialties    string  `json:"specialties" validate:"omitempty,max=500"`
	MonthlyFee     float64 `json:"monthly_fee" validate:"omitempty,gte=0"`
}

// UpdateProfileRequest represents the request body for a profile update.
// Empty fields are left unchanged; the role cannot be changed here.
type UpdateProfileRequest struct {
	Name           string                 `json:"name" validate:"omitempty,min=2,max=100"`
	Email          string                 `json:"email" validate:"omitempty,email"`
	Password       string                 `json:"password" validate:"omitempty,min=6"`
	MemberProfile  *MemberProfileRequest  `json:"member_profile" validate:"omitempty"`
	TrainerProfile *TrainerProfileRequest `json:"trainer_profile" validate:"omitempty"`
}

// HandleUpdateProfile updates the authenticated user's own account.
func (h *UserHandler) HandleUpdateProfile(c *fiber.Ctx) error {
	var req UpdateProfileRequest
	if err := c.BodyParser(&req); err != nil {
		return respondBadBody(c, err)
	}
	if err := h.validate.Struct(req); err != nil {
		return respondValidation(c, err)
	}

	update := services.ProfileUpdate{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
	}
	if req.MemberProfile != nil {
		update.Member = &services.MemberProfileUpdate{
			Age:            req.MemberProfile.Age,
			HeightCM:       req.MemberProfile.HeightCM,
			WeightKG:       req.MemberProfile.WeightKG,
			Goal:           req.MemberProfile.Goal,
			MembershipPlan: req.MemberProfile.MembershipPlan,
		}
	}
	if req.TrainerProfile != nil {
		update.Trainer = &services.TrainerProfileUpdate{
			Bio:            req.TrainerProfile.Bio,
			Certifications: req.TrainerProfile.Certifications,
			Specialties:    req.TrainerProfile.Specialties,
			MonthlyFee:     req.TrainerProfile.MonthlyFee,
		}
	}

	userID, _ := c.Locals(middleware.LocalUserID).(string)
	user, err := h.userService.UpdateProfile(userID, update)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{
		"user": user,
	})
}

// HandleDeleteUser removes a user. Admin only.
func (h *UserHandler) HandleDeleteUser(c *fiber.Ctx) error {
	if err := h.userService.Delete(c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{
		"message": "user deleted",
	})
}

// RecordPaymentRequest represents the request body for a trainer payment.
type RecordPaymentRequest struct {
	Amount float64 `json:"amount" validate:"required,gt=0"`
	Period string  `json:"period" validate:"required,max=50"`
	Method string  `json:"method" validate:"required,oneof=cash card transfer"`
}

// HandleRecordPayment appends one payment to a trainer's history. Admin only.
func (h *UserHandler) HandleRecordPayment(c *fiber.Ctx) error {
	var req RecordPaymentRequest
	if err := c.BodyParser(&req); err != nil {
		return respondBadBody(c, err)
	}
	if err := h.validate.Struct(req); err != nil {
		return respondValidation(c, err)
	}

	recordedBy, _ := c.Locals(middleware.LocalUserID).(string)
	payment, err := h.userService.RecordPayment(c.Params("id"), req.Amount, req.Period, req.Method, recordedBy)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{
		"payment": payment,
	})
}
