package models

import "gorm.io/gorm"

// Complaint statuses walked through by admin moderation.
const (
	ComplaintOpen      = "open"
	ComplaintInReview  = "in_review"
	ComplaintResolved  = "resolved"
	ComplaintDismissed = "dismissed"
)

// Complaint is a member-filed issue handled by admins.
type Complaint struct {
	ID          string `json:"id" gorm:"primaryKey;type:varchar(36)" validate:"omitempty,uuid"`
	UserID      string `json:"user_id" gorm:"index;type:varchar(36)"`
	Subject     string `json:"subject" gorm:"type:varchar(200)" validate:"required,min=3,max=200"`
	Category    string `json:"category" gorm:"type:varchar(50)" validate:"required,oneof=equipment staff billing facility other"`
	Description string `json:"description" validate:"required,max=2000"`
	Status      string `json:"status" gorm:"type:varchar(20);default:open" validate:"omitempty,oneof=open in_review resolved dismissed"`
	Response    string `json:"response" validate:"omitempty,max=2000"`
	gorm.Model
}
