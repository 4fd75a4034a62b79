package models

import "gorm.io/gorm"

// WorkoutPlan is a trainer-authored training program members can follow.
type WorkoutPlan struct {
	ID            string     `json:"id" gorm:"primaryKey;type:varchar(36)" validate:"omitempty,uuid"`
	TrainerID     string     `json:"trainer_id" gorm:"index;type:varchar(36)"`
	Title         string     `json:"title" gorm:"type:varchar(200)" validate:"required,min=3,max=200"`
	Description   string     `json:"description" validate:"omitempty,max=2000"`
	Level         string     `json:"level" gorm:"type:varchar(20)" validate:"required,oneof=beginner intermediate advanced"`
	DurationWeeks int        `json:"duration_weeks" validate:"required,gte=1,lte=52"`
	Exercises     []Exercise `json:"exercises" gorm:"foreignKey:WorkoutPlanID" validate:"omitempty,dive"`
	gorm.Model
}

// Exercise is a single entry within a workout plan.
type Exercise struct {
	ID            string `json:"id" gorm:"primaryKey;type:varchar(36)"`
	WorkoutPlanID string `json:"workout_plan_id" gorm:"index;type:varchar(36)"`
	Name          string `json:"name" gorm:"type:varchar(200)" validate:"required,max=200"`
	Sets          int    `json:"sets" validate:"required,gte=1"`
	Reps          int    `json:"reps" validate:"required,gte=1"`
	RestSeconds   int    `json:"rest_seconds" validate:"omitempty,gte=0"`
	Notes         string `json:"notes" validate:"omitempty,max=500"`
	gorm.Model
}
