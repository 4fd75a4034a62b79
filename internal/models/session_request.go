package models

import (
	"time"

	"gorm.io/gorm"
)

// Training-session request statuses. Only the addressed trainer moves a request
// out of pending.
const (
	SessionPending   = "pending"
	SessionAccepted  = "accepted"
	SessionDeclined  = "declined"
	SessionCompleted = "completed"
)

// TrainingSessionRequest is a member's ask for a one-on-one session with a trainer.
type TrainingSessionRequest struct {
	ID            string    `json:"id" gorm:"primaryKey;type:varchar(36)" validate:"omitempty,uuid"`
	MemberID      string    `json:"member_id" gorm:"index;type:varchar(36)"`
	TrainerID     string    `json:"trainer_id" gorm:"index;type:varchar(36)" validate:"required"`
	RequestedDate time.Time `json:"requested_date" validate:"required"`
	Message       string    `json:"message" validate:"omitempty,max=1000"`
	Status        string    `json:"status" gorm:"type:varchar(20);default:pending" validate:"omitempty,oneof=pending accepted declined completed"`
	gorm.Model
}
