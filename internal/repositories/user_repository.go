package repositories

import (
	"time"

	"gymdesk/internal/models"
)

// UserRepository defines the interface for credential-store access.
type UserRepository interface {
	Create(user *models.User) error
	GetByEmail(email string) (*models.User, error)
	GetByID(id string) (*models.User, error)
	List(role string) ([]models.User, error)
	ListRecent(limit int) ([]models.User, error)
	Update(user *models.User) error
	Delete(id string) error
	CountByRole(role string) (int64, error)
	AddPayment(payment *models.Payment) error
	SumPaymentsSince(since time.Time) (float64, error)
}
