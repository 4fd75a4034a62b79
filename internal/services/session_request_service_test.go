package services_test

import (
	"fmt"
	"testing"
	"time"

	"gymdesk/internal/apperrors"
	"gymdesk/internal/models"
	"gymdesk/internal/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockSessionRequestRepository is a mock implementation of repositories.SessionRequestRepository
type MockSessionRequestRepository struct {
	mock.Mock
}

func (m *MockSessionRequestRepository) Create(request *models.TrainingSessionRequest) error {
	args := m.Called(request)
	return args.Error(0)
}

func (m *MockSessionRequestRepository) GetByID(id string) (*models.TrainingSessionRequest, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.TrainingSessionRequest), args.Error(1)
}

func (m *MockSessionRequestRepository) ListByMember(memberID string) ([]models.TrainingSessionRequest, error) {
	args := m.Called(memberID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.TrainingSessionRequest), args.Error(1)
}

func (m *MockSessionRequestRepository) ListByTrainer(trainerID string) ([]models.TrainingSessionRequest, error) {
	args := m.Called(trainerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.TrainingSessionRequest), args.Error(1)
}

func (m *MockSessionRequestRepository) Update(request *models.TrainingSessionRequest) error {
	args := m.Called(request)
	return args.Error(0)
}

func (m *MockSessionRequestRepository) CountByStatus(status string) (int64, error) {
	args := m.Called(status)
	return args.Get(0).(int64), args.Error(1)
}

func TestSessionRequestService_Create(t *testing.T) {
	sessionRepo := new(MockSessionRequestRepository)
	userRepo := new(MockUserRepository)
	service := services.NewSessionRequestService(sessionRepo, userRepo)

	trainer := &models.User{ID: "trainer-1", Role: models.RoleTrainer}
	requestedDate := time.Now().Add(48 * time.Hour)

	// Valid request to an existing trainer starts out pending
	userRepo.On("GetByID", "trainer-1").Return(trainer, nil).Once()
	sessionRepo.On("Create", mock.AnythingOfType("*models.TrainingSessionRequest")).Return(nil).Once()

	request, err := service.Create("member-1", "trainer-1", requestedDate, "leg day please")
	assert.NoError(t, err)
	assert.Equal(t, models.SessionPending, request.Status)
	assert.Equal(t, "member-1", request.MemberID)
	sessionRepo.AssertExpectations(t)
	userRepo.AssertExpectations(t)

	// Addressing a non-trainer is a 404
	member := &models.User{ID: "member-2", Role: models.RoleMember}
	userRepo.On("GetByID", "member-2").Return(member, nil).Once()
	_, err = service.Create("member-1", "member-2", requestedDate, "")
	assert.Error(t, err)
	assert.Equal(t, 404, apperrors.Status(err))

	// Unknown trainer is a 404 too
	userRepo.On("GetByID", "ghost").Return(nil, fmt.Errorf("user with ID ghost not found")).Once()
	_, err = service.Create("member-1", "ghost", requestedDate, "")
	assert.Error(t, err)
	assert.Equal(t, 404, apperrors.Status(err))
	userRepo.AssertExpectations(t)
}

func TestSessionRequestService_UpdateStatus(t *testing.T) {
	sessionRepo := new(MockSessionRequestRepository)
	userRepo := new(MockUserRepository)
	service := services.NewSessionRequestService(sessionRepo, userRepo)

	pending := func() *models.TrainingSessionRequest {
		return &models.TrainingSessionRequest{
			ID:        "req-1",
			MemberID:  "member-1",
			TrainerID: "trainer-1",
			Status:    models.SessionPending,
		}
	}

	// The addressed trainer can accept a pending request
	sessionRepo.On("GetByID", "req-1").Return(pending(), nil).Once()
	sessionRepo.On("Update", mock.AnythingOfType("*models.TrainingSessionRequest")).Return(nil).Once()
	request, err := service.UpdateStatus("req-1", "trainer-1", models.SessionAccepted)
	assert.NoError(t, err)
	assert.Equal(t, models.SessionAccepted, request.Status)
	sessionRepo.AssertExpectations(t)

	// A different trainer is forbidden
	sessionRepo.On("GetByID", "req-1").Return(pending(), nil).Once()
	_, err = service.UpdateStatus("req-1", "trainer-2", models.SessionAccepted)
	assert.Equal(t, apperrors.ErrForbidden, err)

	// pending cannot jump straight to completed
	sessionRepo.On("GetByID", "req-1").Return(pending(), nil).Once()
	_, err = service.UpdateStatus("req-1", "trainer-1", models.SessionCompleted)
	assert.Error(t, err)
	assert.Equal(t, 400, apperrors.Status(err))

	// accepted can move to completed
	accepted := pending()
	accepted.Status = models.SessionAccepted
	sessionRepo.On("GetByID", "req-1").Return(accepted, nil).Once()
	sessionRepo.On("Update", mock.AnythingOfType("*models.TrainingSessionRequest")).Return(nil).Once()
	request, err = service.UpdateStatus("req-1", "trainer-1", models.SessionCompleted)
	assert.NoError(t, err)
	assert.Equal(t, models.SessionCompleted, request.Status)

	// Unknown request is a 404
	sessionRepo.On("GetByID", "ghost").Return(nil, fmt.Errorf("session request with ID ghost not found")).Once()
	_, err = service.UpdateStatus("ghost", "trainer-1", models.SessionAccepted)
	assert.Equal(t, apperrors.ErrNotFound, err)
	sessionRepo.AssertExpectations(t)
}
