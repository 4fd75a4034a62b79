package services

import (
	"gymdesk/internal/apperrors"
	"gymdesk/internal/models"
	"gymdesk/internal/repositories"
)

// WorkoutPlanService handles trainer-authored workout plans.
type WorkoutPlanService struct {
	planRepo repositories.WorkoutPlanRepository
}

// NewWorkoutPlanService creates a new WorkoutPlanService.
func NewWorkoutPlanService(planRepo repositories.WorkoutPlanRepository) *WorkoutPlanService {
	return &WorkoutPlanService{
		planRepo: planRepo,
	}
}

// Create stores a plan authored by the given trainer. The trainer ID comes
// from the verified token, not the request body.
func (s *WorkoutPlanService) Create(trainerID string, plan *models.WorkoutPlan) (*models.WorkoutPlan, error) {
	plan.TrainerID = trainerID
	if err := s.planRepo.Create(plan); err != nil {
		return nil, apperrors.Wrap(err, "PLAN_CREATE_FAILED", "could not create workout plan", 500)
	}
	return plan, nil
}

// List returns all workout plans, visible to any authenticated user.
func (s *WorkoutPlanService) List() ([]models.WorkoutPlan, error) {
	plans, err := s.planRepo.List()
	if err != nil {
		return nil, apperrors.Wrap(err, "PLAN_LIST_FAILED", "could not list workout plans", 500)
	}
	return plans, nil
}

// ListByTrainer returns the plans authored by one trainer.
func (s *WorkoutPlanService) ListByTrainer(trainerID string) ([]models.WorkoutPlan, error) {
	plans, err := s.planRepo.ListByTrainer(trainerID)
	if err != nil {
		return nil, apperrors.Wrap(err, "PLAN_LIST_FAILED", "could not list workout plans", 500)
	}
	return plans, nil
}
