package services

import (
	"encoding/json"
	"log"
	"strings"

	"gymdesk/internal/apperrors"
	"gymdesk/internal/models"
	"gymdesk/internal/repositories"
	"gymdesk/pkg/rabbitmq"

	"github.com/google/uuid"
)

// ComplaintService handles filing and moderating complaints.
type ComplaintService struct {
	complaintRepo repositories.ComplaintRepository
	mqClient      *rabbitmq.Client
}

// NewComplaintService creates a new ComplaintService.
func NewComplaintService(complaintRepo repositories.ComplaintRepository, mqClient *rabbitmq.Client) *ComplaintService {
	return &ComplaintService{
		complaintRepo: complaintRepo,
		mqClient:      mqClient,
	}
}

// File creates a new open complaint on behalf of the authenticated user and
// publishes a complaint.filed event.
func (s *ComplaintService) File(userID, subject, category, description string) (*models.Complaint, error) {
	complaint := &models.Complaint{
		ID:          uuid.New().String(),
		UserID:      userID,
		Subject:     subject,
		Category:    category,
		Description: description,
		Status:      models.ComplaintOpen,
	}
	if err := s.complaintRepo.Create(complaint); err != nil {
		return nil, apperrors.Wrap(err, "COMPLAINT_CREATE_FAILED", "could not file complaint", 500)
	}

	if s.mqClient != nil {
		body, err := json.Marshal(map[string]interface{}{
			"complaintID": complaint.ID,
			"userID":      complaint.UserID,
			"category":    complaint.Category,
		})
		if err == nil {
			if err := s.mqClient.Publish(rabbitmq.EventComplaintFiled, body); err != nil {
				log.Printf("Warning: failed to publish complaint.filed event: %v", err)
			}
		}
	}

	return complaint, nil
}

// List returns every complaint. Admin-only at the handler layer.
func (s *ComplaintService) List() ([]models.Complaint, error) {
	complaints, err := s.complaintRepo.List()
	if err != nil {
		return nil, apperrors.Wrap(err, "COMPLAINT_LIST_FAILED", "could not list complaints", 500)
	}
	return complaints, nil
}

// ListByUser returns the complaints filed by one user.
func (s *ComplaintService) ListByUser(userID string) ([]models.Complaint, error) {
	complaints, err := s.complaintRepo.ListByUser(userID)
	if err != nil {
		return nil, apperrors.Wrap(err, "COMPLAINT_LIST_FAILED", "could not list complaints", 500)
	}
	return complaints, nil
}

// Moderate moves a complaint to a new status with an optional response note.
func (s *ComplaintService) Moderate(id, status, response string) (*models.Complaint, error) {
	validStatuses := map[string]bool{
		models.ComplaintOpen:      true,
		models.ComplaintInReview:  true,
		models.ComplaintResolved:  true,
		models.ComplaintDismissed: true,
	}
	if !validStatuses[status] {
		return nil, apperrors.New("INVALID_STATUS", "invalid complaint status", 400)
	}

	complaint, err := s.complaintRepo.GetByID(id)
	if err != nil {
		if strings.Contains(err.Error(), "not found") {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.Wrap(err, "COMPLAINT_LOOKUP_FAILED", "could not load complaint", 500)
	}

	complaint.Status = status
	if response != "" {
		complaint.Response = response
	}
	if err := s.complaintRepo.Update(complaint); err != nil {
		return nil, apperrors.Wrap(err, "COMPLAINT_UPDATE_FAILED", "could not update complaint", 500)
	}
	return complaint, nil
}
