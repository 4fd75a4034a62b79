package repositories

import "gymdesk/internal/models"

// ComplaintRepository defines the interface for complaint data access.
type ComplaintRepository interface {
	Create(complaint *models.Complaint) error
	GetByID(id string) (*models.Complaint, error)
	List() ([]models.Complaint, error)
	ListByUser(userID string) ([]models.Complaint, error)
	Update(complaint *models.Complaint) error
	CountByStatus(status string) (int64, error)
}
