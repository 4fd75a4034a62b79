package repositories

import (
	"fmt"
	"time"

	"gymdesk/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GORMUserRepository is a GORM implementation of UserRepository.
type GORMUserRepository struct {
	db *gorm.DB
}

// NewGORMUserRepository creates a new instance of GORMUserRepository.
func NewGORMUserRepository(db *gorm.DB) *GORMUserRepository {
	return &GORMUserRepository{
		db: db,
	}
}

// Create creates a new user in the database.
func (r *GORMUserRepository) Create(user *models.User) error {
	if user.ID == "" {
		user.ID = uuid.New().String()
	}
	if err := r.db.Create(user).Error; err != nil {
		return fmt.Errorf("failed to create user: %w", err)
	}
	return nil
}

// GetByEmail retrieves a user by their normalized email from the database.
func (r *GORMUserRepository) GetByEmail(email string) (*models.User, error) {
	var user models.User
	if err := r.db.First(&user, "email = ?", email).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("user with email %s not found", email)
		}
		return nil, fmt.Errorf("failed to get user by email %s: %w", email, err)
	}
	return &user, nil
}

// GetByID retrieves a user with their role-specific profile preloaded.
func (r *GORMUserRepository) GetByID(id string) (*models.User, error) {
	var user models.User
	err := r.db.
		Preload("MemberProfile").
		Preload("TrainerProfile").
		Preload("TrainerProfile.Payments").
		First(&user, "id = ?", id).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("user with ID %s not found", id)
		}
		return nil, fmt.Errorf("failed to get user by ID %s: %w", id, err)
	}
	return &user, nil
}

// List retrieves all users, optionally filtered by role.
func (r *GORMUserRepository) List(role string) ([]models.User, error) {
	var users []models.User
	query := r.db.Order("created_at desc")
	if role != "" {
		query = query.Where("role = ?", role)
	}
	if err := query.Find(&users).Error; err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	return users, nil
}

// ListRecent retrieves the most recently registered users.
func (r *GORMUserRepository) ListRecent(limit int) ([]models.User, error) {
	var users []models.User
	if err := r.db.Order("created_at desc").Limit(limit).Find(&users).Error; err != nil {
		return nil, fmt.Errorf("failed to list recent users: %w", err)
	}
	return users, nil
}

// Update persists changes to an existing user and their profiles.
func (r *GORMUserRepository) Update(user *models.User) error {
	if err := r.db.Session(&gorm.Session{FullSaveAssociations: true}).Save(user).Error; err != nil {
		return fmt.Errorf("failed to update user %s: %w", user.ID, err)
	}
	return nil
}

// Delete removes a user by ID. Returns an error if no row was affected.
func (r *GORMUserRepository) Delete(id string) error {
	result := r.db.Delete(&models.User{}, "id = ?", id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete user %s: %w", id, result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("user with ID %s not found", id)
	}
	return nil
}

// CountByRole counts users holding the given role.
func (r *GORMUserRepository) CountByRole(role string) (int64, error) {
	var count int64
	if err := r.db.Model(&models.User{}).Where("role = ?", role).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count users by role %s: %w", role, err)
	}
	return count, nil
}

// AddPayment appends a payment record to a trainer's profile.
func (r *GORMUserRepository) AddPayment(payment *models.Payment) error {
	if payment.ID == "" {
		payment.ID = uuid.New().String()
	}
	if err := r.db.Create(payment).Error; err != nil {
		return fmt.Errorf("failed to record payment: %w", err)
	}
	return nil
}

// SumPaymentsSince totals all payments recorded at or after the given time.
func (r *GORMUserRepository) SumPaymentsSince(since time.Time) (float64, error) {
	var total float64
	err := r.db.Model(&models.Payment{}).
		Where("created_at >= ?", since).
		Select("COALESCE(SUM(amount), 0)").
		Scan(&total).Error
	if err != nil {
		return 0, fmt.Errorf("failed to sum payments: %w", err)
	}
	return total, nil
}
