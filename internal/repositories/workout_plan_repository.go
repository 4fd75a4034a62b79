package repositories

import "gymdesk/internal/models"

// WorkoutPlanRepository defines the interface for workout-plan data access.
type WorkoutPlanRepository interface {
	Create(plan *models.WorkoutPlan) error
	GetByID(id string) (*models.WorkoutPlan, error)
	List() ([]models.WorkoutPlan, error)
	ListByTrainer(trainerID string) ([]models.WorkoutPlan, error)
}
