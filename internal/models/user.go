package models

import "gorm.io/gorm"

// Roles a user can hold. Assigned at registration and only changeable by an admin.
const (
	RoleMember  = "user"
	RoleTrainer = "trainer"
	RoleAdmin   = "admin"
)

// User represents a member, trainer or admin of the gym.
type User struct {
	ID             string          `json:"id" gorm:"primaryKey;type:varchar(36)" validate:"omitempty,uuid"`
	Name           string          `json:"name" gorm:"type:varchar(100)" validate:"required,min=2,max=100"`
	Email          string          `json:"email" gorm:"uniqueIndex;type:varchar(255)" validate:"required,email"`
	Password       string          `json:"-" gorm:"type:varchar(255)"` // bcrypt hash, never serialized
	Role           string          `json:"role" gorm:"type:varchar(20);default:user" validate:"omitempty,oneof=user trainer admin"`
	MemberProfile  *MemberProfile  `json:"member_profile,omitempty"`
	TrainerProfile *TrainerProfile `json:"trainer_profile,omitempty"`
	gorm.Model     // Embed gorm.Model for CreatedAt, UpdatedAt, DeletedAt
}

// MemberProfile holds the body metrics and membership details of a regular member.
type MemberProfile struct {
	ID             string  `json:"id" gorm:"primaryKey;type:varchar(36)"`
	UserID         string  `json:"user_id" gorm:"uniqueIndex;type:varchar(36)"`
	Age            int     `json:"age" validate:"omitempty,gte=0,lte=120"`
	HeightCM       float64 `json:"height_cm" validate:"omitempty,gte=0"`
	WeightKG       float64 `json:"weight_kg" validate:"omitempty,gte=0"`
	Goal           string  `json:"goal" validate:"omitempty,max=255"`
	MembershipPlan string  `json:"membership_plan" validate:"omitempty,max=100"`
	gorm.Model
}

// TrainerProfile holds a trainer's public info and their payment history.
type TrainerProfile struct {
	ID             string    `json:"id" gorm:"primaryKey;type:varchar(36)"`
	UserID         string    `json:"user_id" gorm:"uniqueIndex;type:varchar(36)"`
	Bio            string    `json:"bio" validate:"omitempty,max=1000"`
	Certifications string    `json:"certifications" validate:"omitempty,max=500"`
	Specialties    string    `json:"specialties" validate:"omitempty,max=500"`
	MonthlyFee     float64   `json:"monthly_fee" validate:"omitempty,gte=0"`
	Payments       []Payment `json:"payments,omitempty" gorm:"foreignKey:TrainerProfileID"`
	gorm.Model
}

// Payment is one recorded salary payment to a trainer. Append-only.
type Payment struct {
	ID               string  `json:"id" gorm:"primaryKey;type:varchar(36)"`
	TrainerProfileID string  `json:"trainer_profile_id" gorm:"index;type:varchar(36)"`
	Amount           float64 `json:"amount" validate:"required,gt=0"`
	Period           string  `json:"period" validate:"required,max=50"`
	Method           string  `json:"method" validate:"required,oneof=cash card transfer"`
	RecordedBy       string  `json:"recorded_by" gorm:"type:varchar(36)"`
	gorm.Model
}
