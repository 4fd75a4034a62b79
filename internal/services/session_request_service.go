package services

import (
	"strings"
	"time"

	"gymdesk/internal/apperrors"
	"gymdesk/internal/models"
	"gymdesk/internal/repositories"

	"github.com/google/uuid"
)

// SessionRequestService handles one-on-one training-session scheduling.
type SessionRequestService struct {
	sessionRepo repositories.SessionRequestRepository
	userRepo    repositories.UserRepository
}

// NewSessionRequestService creates a new SessionRequestService.
func NewSessionRequestService(sessionRepo repositories.SessionRequestRepository, userRepo repositories.UserRepository) *SessionRequestService {
	return &SessionRequestService{
		sessionRepo: sessionRepo,
		userRepo:    userRepo,
	}
}

// Create files a pending request from a member to a trainer. The addressed
// user must exist and actually hold the trainer role.
func (s *SessionRequestService) Create(memberID, trainerID string, requestedDate time.Time, message string) (*models.TrainingSessionRequest, error) {
	trainer, err := s.userRepo.GetByID(trainerID)
	if err != nil {
		if strings.Contains(err.Error(), "not found") {
			return nil, apperrors.New("TRAINER_NOT_FOUND", "trainer not found", 404)
		}
		return nil, apperrors.Wrap(err, "TRAINER_LOOKUP_FAILED", "could not load trainer", 500)
	}
	if trainer.Role != models.RoleTrainer {
		return nil, apperrors.New("TRAINER_NOT_FOUND", "trainer not found", 404)
	}

	request := &models.TrainingSessionRequest{
		ID:            uuid.New().String(),
		MemberID:      memberID,
		TrainerID:     trainerID,
		RequestedDate: requestedDate,
		Message:       message,
		Status:        models.SessionPending,
	}
	if err := s.sessionRepo.Create(request); err != nil {
		return nil, apperrors.Wrap(err, "REQUEST_CREATE_FAILED", "could not create session request", 500)
	}
	return request, nil
}

// ListByMember returns the requests the member has filed.
func (s *SessionRequestService) ListByMember(memberID string) ([]models.TrainingSessionRequest, error) {
	requests, err := s.sessionRepo.ListByMember(memberID)
	if err != nil {
		return nil, apperrors.Wrap(err, "REQUEST_LIST_FAILED", "could not list session requests", 500)
	}
	return requests, nil
}

// ListByTrainer returns the requests addressed to the trainer.
func (s *SessionRequestService) ListByTrainer(trainerID string) ([]models.TrainingSessionRequest, error) {
	requests, err := s.sessionRepo.ListByTrainer(trainerID)
	if err != nil {
		return nil, apperrors.Wrap(err, "REQUEST_LIST_FAILED", "could not list session requests", 500)
	}
	return requests, nil
}

// UpdateStatus moves a request to a new status. Only the addressed trainer may
// do so, and only along valid transitions: pending to accepted or declined,
// accepted to completed.
func (s *SessionRequestService) UpdateStatus(id, trainerID, status string) (*models.TrainingSessionRequest, error) {
	request, err := s.sessionRepo.GetByID(id)
	if err != nil {
		if strings.Contains(err.Error(), "not found") {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.Wrap(err, "REQUEST_LOOKUP_FAILED", "could not load session request", 500)
	}
	if request.TrainerID != trainerID {
		return nil, apperrors.ErrForbidden
	}

	allowed := map[string][]string{
		models.SessionPending:  {models.SessionAccepted, models.SessionDeclined},
		models.SessionAccepted: {models.SessionCompleted},
	}
	valid := false
	for _, next := range allowed[request.Status] {
		if next == status {
			valid = true
			break
		}
	}
	if !valid {
		return nil, apperrors.New("INVALID_STATUS", "invalid status transition", 400)
	}

	request.Status = status
	if err := s.sessionRepo.Update(request); err != nil {
		return nil, apperrors.Wrap(err, "REQUEST_UPDATE_FAILED", "could not update session request", 500)
	}
	return request, nil
}
