package repositories

import (
	"fmt"

	"gymdesk/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GORMSessionRequestRepository is a GORM implementation of SessionRequestRepository.
type GORMSessionRequestRepository struct {
	db *gorm.DB
}

// NewGORMSessionRequestRepository creates a new instance of GORMSessionRequestRepository.
func NewGORMSessionRequestRepository(db *gorm.DB) *GORMSessionRequestRepository {
	return &GORMSessionRequestRepository{
		db: db,
	}
}

// Create stores a new training-session request.
func (r *GORMSessionRequestRepository) Create(request *models.TrainingSessionRequest) error {
	if request.ID == "" {
		request.ID = uuid.New().String()
	}
	if err := r.db.Create(request).Error; err != nil {
		return fmt.Errorf("failed to create session request: %w", err)
	}
	return nil
}

// GetByID retrieves a single session request by its ID.
func (r *GORMSessionRequestRepository) GetByID(id string) (*models.TrainingSessionRequest, error) {
	var request models.TrainingSessionRequest
	if err := r.db.First(&request, "id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("session request with ID %s not found", id)
		}
		return nil, fmt.Errorf("failed to get session request by ID %s: %w", id, err)
	}
	return &request, nil
}

// ListByMember retrieves the requests filed by one member.
func (r *GORMSessionRequestRepository) ListByMember(memberID string) ([]models.TrainingSessionRequest, error) {
	var requests []models.TrainingSessionRequest
	err := r.db.Where("member_id = ?", memberID).
		Order("requested_date asc").
		Find(&requests).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list session requests for member %s: %w", memberID, err)
	}
	return requests, nil
}

// ListByTrainer retrieves the requests addressed to one trainer.
func (r *GORMSessionRequestRepository) ListByTrainer(trainerID string) ([]models.TrainingSessionRequest, error) {
	var requests []models.TrainingSessionRequest
	err := r.db.Where("trainer_id = ?", trainerID).
		Order("requested_date asc").
		Find(&requests).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list session requests for trainer %s: %w", trainerID, err)
	}
	return requests, nil
}

// Update persists a status change to a session request.
func (r *GORMSessionRequestRepository) Update(request *models.TrainingSessionRequest) error {
	if err := r.db.Save(request).Error; err != nil {
		return fmt.Errorf("failed to update session request %s: %w", request.ID, err)
	}
	return nil
}

// CountByStatus counts session requests in the given status.
func (r *GORMSessionRequestRepository) CountByStatus(status string) (int64, error) {
	var count int64
	if err := r.db.Model(&models.TrainingSessionRequest{}).Where("status = ?", status).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count session requests by status %s: %w", status, err)
	}
	return count, nil
}
