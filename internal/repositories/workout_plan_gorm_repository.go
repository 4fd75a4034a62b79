package repositories

import (
	"fmt"

	"gymdesk/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GORMWorkoutPlanRepository is a GORM implementation of WorkoutPlanRepository.
type GORMWorkoutPlanRepository struct {
	db *gorm.DB
}

// NewGORMWorkoutPlanRepository creates a new instance of GORMWorkoutPlanRepository.
func NewGORMWorkoutPlanRepository(db *gorm.DB) *GORMWorkoutPlanRepository {
	return &GORMWorkoutPlanRepository{
		db: db,
	}
}

// Create stores a workout plan together with its exercises.
func (r *GORMWorkoutPlanRepository) Create(plan *models.WorkoutPlan) error {
	if plan.ID == "" {
		plan.ID = uuid.New().String()
	}
	for i := range plan.Exercises {
		if plan.Exercises[i].ID == "" {
			plan.Exercises[i].ID = uuid.New().String()
		}
		plan.Exercises[i].WorkoutPlanID = plan.ID
	}
	if err := r.db.Create(plan).Error; err != nil {
		return fmt.Errorf("failed to create workout plan: %w", err)
	}
	return nil
}

// GetByID retrieves a workout plan with its exercises.
func (r *GORMWorkoutPlanRepository) GetByID(id string) (*models.WorkoutPlan, error) {
	var plan models.WorkoutPlan
	if err := r.db.Preload("Exercises").First(&plan, "id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("workout plan with ID %s not found", id)
		}
		return nil, fmt.Errorf("failed to get workout plan by ID %s: %w", id, err)
	}
	return &plan, nil
}

// List retrieves all workout plans with their exercises.
func (r *GORMWorkoutPlanRepository) List() ([]models.WorkoutPlan, error) {
	var plans []models.WorkoutPlan
	if err := r.db.Preload("Exercises").Order("created_at desc").Find(&plans).Error; err != nil {
		return nil, fmt.Errorf("failed to list workout plans: %w", err)
	}
	return plans, nil
}

// ListByTrainer retrieves all plans authored by one trainer.
func (r *GORMWorkoutPlanRepository) ListByTrainer(trainerID string) ([]models.WorkoutPlan, error) {
	var plans []models.WorkoutPlan
	err := r.db.Preload("Exercises").
		Where("trainer_id = ?", trainerID).
		Order("created_at desc").
		Find(&plans).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list workout plans for trainer %s: %w", trainerID, err)
	}
	return plans, nil
}
