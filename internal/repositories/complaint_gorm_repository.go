package repositories

import (
	"fmt"

	"gymdesk/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GORMComplaintRepository is a GORM implementation of ComplaintRepository.
type GORMComplaintRepository struct {
	db *gorm.DB
}

// NewGORMComplaintRepository creates a new instance of GORMComplaintRepository.
func NewGORMComplaintRepository(db *gorm.DB) *GORMComplaintRepository {
	return &GORMComplaintRepository{
		db: db,
	}
}

// Create files a new complaint.
func (r *GORMComplaintRepository) Create(complaint *models.Complaint) error {
	if complaint.ID == "" {
		complaint.ID = uuid.New().String()
	}
	if err := r.db.Create(complaint).Error; err != nil {
		return fmt.Errorf("failed to create complaint: %w", err)
	}
	return nil
}

// GetByID retrieves a single complaint by its ID.
func (r *GORMComplaintRepository) GetByID(id string) (*models.Complaint, error) {
	var complaint models.Complaint
	if err := r.db.First(&complaint, "id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("complaint with ID %s not found", id)
		}
		return nil, fmt.Errorf("failed to get complaint by ID %s: %w", id, err)
	}
	return &complaint, nil
}

// List retrieves all complaints, newest first.
func (r *GORMComplaintRepository) List() ([]models.Complaint, error) {
	var complaints []models.Complaint
	if err := r.db.Order("created_at desc").Find(&complaints).Error; err != nil {
		return nil, fmt.Errorf("failed to list complaints: %w", err)
	}
	return complaints, nil
}

// ListByUser retrieves the complaints filed by one user.
func (r *GORMComplaintRepository) ListByUser(userID string) ([]models.Complaint, error) {
	var complaints []models.Complaint
	if err := r.db.Where("user_id = ?", userID).Order("created_at desc").Find(&complaints).Error; err != nil {
		return nil, fmt.Errorf("failed to list complaints for user %s: %w", userID, err)
	}
	return complaints, nil
}

// Update persists moderation changes to a complaint.
func (r *GORMComplaintRepository) Update(complaint *models.Complaint) error {
	if err := r.db.Save(complaint).Error; err != nil {
		return fmt.Errorf("failed to update complaint %s: %w", complaint.ID, err)
	}
	return nil
}

// CountByStatus counts complaints in the given status.
func (r *GORMComplaintRepository) CountByStatus(status string) (int64, error) {
	var count int64
	if err := r.db.Model(&models.Complaint{}).Where("status = ?", status).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count complaints by status %s: %w", status, err)
	}
	return count, nil
}
