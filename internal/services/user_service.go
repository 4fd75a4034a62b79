package services

import (
	"encoding/json"
	"log"
	"strings"

	"gymdesk/internal/apperrors"
	"gymdesk/internal/models"
	"gymdesk/internal/repositories"
	"gymdesk/pkg/rabbitmq"

	"github.com/google/uuid"
)

// ProfileUpdate carries the mutable fields of a user's own account. Nil
// sub-structs and empty strings mean "leave unchanged".
type ProfileUpdate struct {
	Name     string
	Email    string
	Password string
	Member   *MemberProfileUpdate
	Trainer  *TrainerProfileUpdate
}

// MemberProfileUpdate mirrors the editable member-profile fields.
type MemberProfileUpdate struct {
	Age            int
	HeightCM       float64
	WeightKG       float64
	Goal           string
	MembershipPlan string
}

// TrainerProfileUpdate mirrors the editable trainer-profile fields.
type TrainerProfileUpdate struct {
	Bio            string
	Certifications string
	Specialties    string
	MonthlyFee     float64
}

// UserService handles business logic for user management and trainer payments.
type UserService struct {
	userRepo repositories.UserRepository
	auth     *AuthService
	mqClient *rabbitmq.Client
}

// NewUserService creates a new UserService.
func NewUserService(userRepo repositories.UserRepository, auth *AuthService, mqClient *rabbitmq.Client) *UserService {
	return &UserService{
		userRepo: userRepo,
		auth:     auth,
		mqClient: mqClient,
	}
}

// GetByID loads a user with their role-specific profile.
func (s *UserService) GetByID(id string) (*models.User, error) {
	user, err := s.userRepo.GetByID(id)
	if err != nil {
		if strings.Contains(err.Error(), "not found") {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, apperrors.Wrap(err, "USER_LOOKUP_FAILED", "could not load user", 500)
	}
	return user, nil
}

// List returns all users, optionally filtered by role.
func (s *UserService) List(role string) ([]models.User, error) {
	users, err := s.userRepo.List(role)
	if err != nil {
		return nil, apperrors.Wrap(err, "USER_LIST_FAILED", "could not list users", 500)
	}
	return users, nil
}

// Delete removes a user. Only reachable through admin-gated handlers.
func (s *UserService) Delete(id string) error {
	if err := s.userRepo.Delete(id); err != nil {
		if strings.Contains(err.Error(), "not found") {
			return apperrors.ErrUserNotFound
		}
		return apperrors.Wrap(err, "USER_DELETE_FAILED", "could not delete user", 500)
	}
	return nil
}

// UpdateProfile applies a user's own profile changes. A password change is
// re-hashed before persistence; an email change is normalized and checked for
// conflicts; the role is never touched here.
func (s *UserService) UpdateProfile(userID string, update ProfileUpdate) (*models.User, error) {
	user, err := s.GetByID(userID)
	if err != nil {
		return nil, err
	}

	if update.Name != "" {
		user.Name = update.Name
	}
	if update.Email != "" {
		email := NormalizeEmail(update.Email)
		if email != user.Email {
			if existing, err := s.userRepo.GetByEmail(email); err == nil && existing != nil {
				return nil, apperrors.ErrEmailTaken
			}
			user.Email = email
		}
	}
	if update.Password != "" {
		hashed, err := s.auth.HashPassword(update.Password)
		if err != nil {
			return nil, apperrors.Wrap(err, "HASH_FAILED", "could not update password", 500)
		}
		user.Password = hashed
	}

	if update.Member != nil && user.Role == models.RoleMember {
		if user.MemberProfile == nil {
			user.MemberProfile = &models.MemberProfile{ID: uuid.New().String(), UserID: user.ID}
		}
		user.MemberProfile.Age = update.Member.Age
		user.MemberProfile.HeightCM = update.Member.HeightCM
		user.MemberProfile.WeightKG = update.Member.WeightKG
		user.MemberProfile.Goal = update.Member.Goal
		user.MemberProfile.MembershipPlan = update.Member.MembershipPlan
	}
	if update.Trainer != nil && user.Role == models.RoleTrainer {
		if user.TrainerProfile == nil {
			user.TrainerProfile = &models.TrainerProfile{ID: uuid.New().String(), UserID: user.ID}
		}
		user.TrainerProfile.Bio = update.Trainer.Bio
		user.TrainerProfile.Certifications = update.Trainer.Certifications
		user.TrainerProfile.Specialties = update.Trainer.Specialties
		user.TrainerProfile.MonthlyFee = update.Trainer.MonthlyFee
	}

	if err := s.userRepo.Update(user); err != nil {
		return nil, apperrors.Wrap(err, "USER_UPDATE_FAILED", "could not update profile", 500)
	}
	return user, nil
}

// RecordPayment appends one payment to a trainer's payment history and
// publishes a payment.recorded event. Prior records are never touched.
func (s *UserService) RecordPayment(trainerUserID string, amount float64, period, method, recordedBy string) (*models.Payment, error) {
	user, err := s.GetByID(trainerUserID)
	if err != nil {
		return nil, err
	}
	if user.Role != models.RoleTrainer {
		return nil, apperrors.New("NOT_A_TRAINER", "payments can only be recorded for trainers", 404)
	}

	if user.TrainerProfile == nil {
		user.TrainerProfile = &models.TrainerProfile{ID: uuid.New().String(), UserID: user.ID}
		if err := s.userRepo.Update(user); err != nil {
			return nil, apperrors.Wrap(err, "USER_UPDATE_FAILED", "could not prepare trainer profile", 500)
		}
	}

	payment := &models.Payment{
		ID:               uuid.New().String(),
		TrainerProfileID: user.TrainerProfile.ID,
		Amount:           amount,
		Period:           period,
		Method:           method,
		RecordedBy:       recordedBy,
	}
	if err := s.userRepo.AddPayment(payment); err != nil {
		return nil, apperrors.Wrap(err, "PAYMENT_FAILED", "could not record payment", 500)
	}

	s.publishEvent(rabbitmq.EventPaymentRecorded, map[string]interface{}{
		"paymentID": payment.ID,
		"trainerID": user.ID,
		"amount":    payment.Amount,
		"period":    payment.Period,
	})

	return payment, nil
}

// PublishRegistered announces a successful registration on the events queue.
func (s *UserService) PublishRegistered(user *models.User) {
	s.publishEvent(rabbitmq.EventMemberRegistered, map[string]interface{}{
		"userID": user.ID,
		"email":  user.Email,
		"role":   user.Role,
	})
}

// publishEvent is best-effort: a broker failure is logged, never surfaced.
func (s *UserService) publishEvent(eventType string, payload map[string]interface{}) {
	if s.mqClient == nil {
		return
	}
	body, err := json.Marshal(payload)
	if err != nil {
		log.Printf("Failed to marshal %s event: %v", eventType, err)
		return
	}
	if err := s.mqClient.Publish(eventType, body); err != nil {
		log.Printf("Warning: failed to publish %s event: %v", eventType, err)
	}
}
