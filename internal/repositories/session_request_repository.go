package repositories

import "gymdesk/internal/models"

// SessionRequestRepository defines the interface for training-session-request data access.
type SessionRequestRepository interface {
	Create(request *models.TrainingSessionRequest) error
	GetByID(id string) (*models.TrainingSessionRequest, error)
	ListByMember(memberID string) ([]models.TrainingSessionRequest, error)
	ListByTrainer(trainerID string) ([]models.TrainingSessionRequest, error)
	Update(request *models.TrainingSessionRequest) error
	CountByStatus(status string) (int64, error)
}
