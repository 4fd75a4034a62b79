package handlers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"
	"time"

	"gymdesk/internal/handlers"
	"gymdesk/internal/middleware"
	"gymdesk/internal/models"
	"gymdesk/internal/repositories"
	"gymdesk/internal/services"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// testEnv exposes the wired pieces integration tests poke at directly.
type testEnv struct {
	db          *gorm.DB
	authService *services.AuthService
	userRepo    repositories.UserRepository
}

// setupApp sets up a Fiber app for testing with an in-memory SQLite database
// and the full middleware/handler wiring used in production.
func setupApp(t *testing.T) (*fiber.App, *testEnv) {
	t.Helper()

	// Configure Viper for testing
	viper.SetDefault("JWT_SECRET", "test_jwt_secret")
	viper.AutomaticEnv()
	jwtSecret := viper.GetString("JWT_SECRET")

	// A uniquely named shared-cache database per test keeps tests isolated.
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err, "failed to connect to in-memory database")

	err = db.AutoMigrate(
		&models.User{},
		&models.MemberProfile{},
		&models.TrainerProfile{},
		&models.Payment{},
		&models.Complaint{},
		&models.WorkoutPlan{},
		&models.Exercise{},
		&models.TrainingSessionRequest{},
	)
	require.NoError(t, err, "failed to auto-migrate database")

	// Repositories
	userRepo := repositories.NewGORMUserRepository(db)
	complaintRepo := repositories.NewGORMComplaintRepository(db)
	planRepo := repositories.NewGORMWorkoutPlanRepository(db)
	sessionRepo := repositories.NewGORMSessionRequestRepository(db)

	// Services (nil RabbitMQ client: events are skipped in tests)
	authService := services.NewAuthService(userRepo, jwtSecret, time.Hour)
	userService := services.NewUserService(userRepo, authService, nil)
	complaintService := services.NewComplaintService(complaintRepo, nil)
	planService := services.NewWorkoutPlanService(planRepo)
	sessionService := services.NewSessionRequestService(sessionRepo, userRepo)
	dashboardService := services.NewDashboardService(userRepo, complaintRepo, sessionRepo)

	// Handlers
	authHandler := handlers.NewAuthHandler(authService, userService, false)
	userHandler := handlers.NewUserHandler(userService, authService)
	complaintHandler := handlers.NewComplaintHandler(complaintService, authService)
	planHandler := handlers.NewWorkoutPlanHandler(planService, authService)
	sessionHandler := handlers.NewSessionRequestHandler(sessionService, authService)
	adminHandler := handlers.NewAdminHandler(dashboardService, authService)

	app := fiber.New()
	app.Use(middleware.RouteGate(authService))

	api := app.Group("/api")
	authHandler.RegisterRoutes(api)
	userHandler.RegisterRoutes(api)
	complaintHandler.RegisterRoutes(api)
	planHandler.RegisterRoutes(api)
	sessionHandler.RegisterRoutes(api)
	adminHandler.RegisterRoutes(api)

	return app, &testEnv{db: db, authService: authService, userRepo: userRepo}
}

// TestMain runs setup and teardown for all tests
func TestMain(m *testing.M) {
	log.SetOutput(io.Discard)
	code := m.Run()
	os.Exit(code)
}

func jsonRequest(method, target string, body interface{}, token string) *http.Request {
	var reader io.Reader
	if body != nil {
		jsonBody, _ := json.Marshal(body)
		reader = bytes.NewReader(jsonBody)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.AddCookie(&http.Cookie{Name: middleware.TokenCookie, Value: token})
	}
	return req
}

func decodeBody(t *testing.T, resp *http.Response) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	resp.Body.Close()
	return body
}

// registerUser registers through the public endpoint and returns the new user's id.
func registerUser(t *testing.T, app *fiber.App, name, email, password, role string) string {
	t.Helper()
	payload := map[string]string{"name": name, "email": email, "password": password}
	if role != "" {
		payload["role"] = role
	}
	resp, err := app.Test(jsonRequest(http.MethodPost, "/api/auth/register", payload, ""), -1)
	require.NoError(t, err)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	body := decodeBody(t, resp)
	user := body["user"].(map[string]interface{})
	return user["id"].(string)
}

// loginUser logs in and returns the session token from the Set-Cookie header.
func loginUser(t *testing.T, app *fiber.App, email, password string) string {
	t.Helper()
	resp, err := app.Test(jsonRequest(http.MethodPost, "/api/auth/login", map[string]string{
		"email":    email,
		"password": password,
	}, ""), -1)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var token string
	for _, cookie := range resp.Cookies() {
		if cookie.Name == middleware.TokenCookie {
			token = cookie.Value
		}
	}
	resp.Body.Close()
	require.NotEmpty(t, token, "login should set the token cookie")
	return token
}

// seedAdmin creates an admin directly in the credential store; admins cannot
// be created through the public registration endpoint.
func seedAdmin(t *testing.T, env *testEnv, email, password string) string {
	t.Helper()
	hash, err := env.authService.HashPassword(password)
	require.NoError(t, err)
	admin := &models.User{
		ID:       uuid.New().String(),
		Name:     "Admin",
		Email:    email,
		Password: hash,
		Role:     models.RoleAdmin,
	}
	require.NoError(t, env.userRepo.Create(admin))
	return admin.ID
}

func TestAuthRegisterAndLogin(t *testing.T) {
	app, env := setupApp(t)

	userID := registerUser(t, app, "Test User", "test@example.com", "password123", "")

	// The stored record holds a hash, never the submitted plaintext
	stored, err := env.userRepo.GetByEmail("test@example.com")
	require.NoError(t, err)
	assert.NotEqual(t, "password123", stored.Password)
	assert.True(t, env.authService.CheckPassword("password123", stored.Password))

	// Duplicate registration conflicts and creates nothing
	resp, err := app.Test(jsonRequest(http.MethodPost, "/api/auth/register", map[string]string{
		"name": "Other", "email": "Test@Example.com", "password": "different456",
	}, ""), -1)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
	resp.Body.Close()

	var count int64
	env.db.Model(&models.User{}).Where("email = ?", "test@example.com").Count(&count)
	assert.Equal(t, int64(1), count)

	// Login then fetch /me with the issued cookie
	token := loginUser(t, app, "test@example.com", "password123")
	resp, err = app.Test(jsonRequest(http.MethodGet, "/api/auth/me", nil, token), -1)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	body := decodeBody(t, resp)
	me := body["user"].(map[string]interface{})
	assert.Equal(t, userID, me["id"])
}

func TestLoginWrongPasswordSetsNoCookie(t *testing.T) {
	app, _ := setupApp(t)
	registerUser(t, app, "Test User", "test@example.com", "password123", "")

	resp, err := app.Test(jsonRequest(http.MethodPost, "/api/auth/login", map[string]string{
		"email": "test@example.com", "password": "wrongpassword",
	}, ""), -1)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	for _, cookie := range resp.Cookies() {
		assert.NotEqual(t, middleware.TokenCookie, cookie.Name, "no session cookie on failed login")
	}
	resp.Body.Close()
}

func TestLogoutIsIdempotent(t *testing.T) {
	app, _ := setupApp(t)

	var headers []string
	for i := 0; i < 2; i++ {
		resp, err := app.Test(jsonRequest(http.MethodPost, "/api/auth/logout", nil, ""), -1)
		assert.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		headers = append(headers, resp.Header.Get("Set-Cookie"))
		resp.Body.Close()
	}

	assert.Contains(t, headers[0], middleware.TokenCookie+"=")
	assert.Equal(t, headers[0], headers[1], "both logouts clear the cookie the same way")
}

func TestRegisterValidation(t *testing.T) {
	app, _ := setupApp(t)

	// Missing fields
	resp, err := app.Test(jsonRequest(http.MethodPost, "/api/auth/register", map[string]string{
		"email": "incomplete@example.com",
	}, ""), -1)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	resp.Body.Close()

	// The admin role cannot be obtained through registration
	resp, err = app.Test(jsonRequest(http.MethodPost, "/api/auth/register", map[string]string{
		"name": "Sneaky", "email": "sneaky@example.com", "password": "password123", "role": "admin",
	}, ""), -1)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	resp.Body.Close()
}

func TestUserDeletionRequiresAdmin(t *testing.T) {
	app, env := setupApp(t)

	targetID := registerUser(t, app, "Target", "target@example.com", "password123", "")
	registerUser(t, app, "Plain Member", "member@example.com", "password123", "")
	seedAdmin(t, env, "admin@example.com", "adminpass1")

	// A non-admin gets a 403 and the record survives
	memberToken := loginUser(t, app, "member@example.com", "password123")
	resp, err := app.Test(jsonRequest(http.MethodDelete, "/api/users/"+targetID, nil, memberToken), -1)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	resp.Body.Close()

	_, err = env.userRepo.GetByID(targetID)
	assert.NoError(t, err, "target record must still exist after the denied delete")

	// The admin succeeds and the record is gone
	adminToken := loginUser(t, app, "admin@example.com", "adminpass1")
	resp, err = app.Test(jsonRequest(http.MethodDelete, "/api/users/"+targetID, nil, adminToken), -1)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()

	_, err = env.userRepo.GetByID(targetID)
	assert.Error(t, err)

	// Deleting a missing user is a 404
	resp, err = app.Test(jsonRequest(http.MethodDelete, "/api/users/"+uuid.New().String(), nil, adminToken), -1)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	resp.Body.Close()
}

func TestUserListingIsAdminGated(t *testing.T) {
	app, env := setupApp(t)

	registerUser(t, app, "Member", "member@example.com", "password123", "")
	registerUser(t, app, "Coach", "coach@example.com", "password123", "trainer")
	seedAdmin(t, env, "admin@example.com", "adminpass1")

	// Unauthenticated requests are rejected at the gate
	resp, err := app.Test(jsonRequest(http.MethodGet, "/api/users", nil, ""), -1)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	resp.Body.Close()

	// Members cannot enumerate users
	memberToken := loginUser(t, app, "member@example.com", "password123")
	resp, err = app.Test(jsonRequest(http.MethodGet, "/api/users", nil, memberToken), -1)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	resp.Body.Close()

	// Admin can, with a role filter
	adminToken := loginUser(t, app, "admin@example.com", "adminpass1")
	resp, err = app.Test(jsonRequest(http.MethodGet, "/api/users?role=trainer", nil, adminToken), -1)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	body := decodeBody(t, resp)
	users := body["users"].([]interface{})
	assert.Len(t, users, 1)

	// A bogus role filter is a validation failure
	resp, err = app.Test(jsonRequest(http.MethodGet, "/api/users?role=superuser", nil, adminToken), -1)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	resp.Body.Close()
}

func TestTrainerPaymentRecording(t *testing.T) {
	app, env := setupApp(t)

	trainerID := registerUser(t, app, "Coach", "coach@example.com", "password123", "trainer")
	memberID := registerUser(t, app, "Member", "member@example.com", "password123", "")
	seedAdmin(t, env, "admin@example.com", "adminpass1")
	adminToken := loginUser(t, app, "admin@example.com", "adminpass1")

	// First payment
	resp, err := app.Test(jsonRequest(http.MethodPost, "/api/users/"+trainerID+"/pay", map[string]interface{}{
		"amount": 100.0, "period": "Nov", "method": "cash",
	}, adminToken), -1)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	body := decodeBody(t, resp)
	payment := body["payment"].(map[string]interface{})
	assert.Equal(t, 100.0, payment["amount"])
	assert.Equal(t, "Nov", payment["period"])

	// Second payment appends without touching the first
	resp, err = app.Test(jsonRequest(http.MethodPost, "/api/users/"+trainerID+"/pay", map[string]interface{}{
		"amount": 150.0, "period": "Dec", "method": "card",
	}, adminToken), -1)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()

	trainer, err := env.userRepo.GetByID(trainerID)
	require.NoError(t, err)
	require.NotNil(t, trainer.TrainerProfile)
	require.Len(t, trainer.TrainerProfile.Payments, 2)
	amounts := []float64{trainer.TrainerProfile.Payments[0].Amount, trainer.TrainerProfile.Payments[1].Amount}
	assert.Contains(t, amounts, 100.0)
	assert.Contains(t, amounts, 150.0)

	// Non-admins cannot record payments
	memberToken := loginUser(t, app, "member@example.com", "password123")
	resp, err = app.Test(jsonRequest(http.MethodPost, "/api/users/"+trainerID+"/pay", map[string]interface{}{
		"amount": 999.0, "period": "Jan", "method": "cash",
	}, memberToken), -1)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	resp.Body.Close()

	// Paying a non-trainer is a 404
	resp, err = app.Test(jsonRequest(http.MethodPost, "/api/users/"+memberID+"/pay", map[string]interface{}{
		"amount": 50.0, "period": "Nov", "method": "cash",
	}, adminToken), -1)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	resp.Body.Close()
}

func TestComplaintLifecycle(t *testing.T) {
	app, env := setupApp(t)

	registerUser(t, app, "Member", "member@example.com", "password123", "")
	seedAdmin(t, env, "admin@example.com", "adminpass1")
	memberToken := loginUser(t, app, "member@example.com", "password123")

	// Member files a complaint
	resp, err := app.Test(jsonRequest(http.MethodPost, "/api/complaints", map[string]string{
		"subject": "Broken treadmill", "category": "equipment", "description": "Treadmill 3 stops mid-run.",
	}, memberToken), -1)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	body := decodeBody(t, resp)
	complaint := body["complaint"].(map[string]interface{})
	complaintID := complaint["id"].(string)
	assert.Equal(t, models.ComplaintOpen, complaint["status"])

	// Members cannot read the full complaint list
	resp, err = app.Test(jsonRequest(http.MethodGet, "/api/complaints", nil, memberToken), -1)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	resp.Body.Close()

	// But they can read their own
	resp, err = app.Test(jsonRequest(http.MethodGet, "/api/complaints/mine", nil, memberToken), -1)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	body = decodeBody(t, resp)
	assert.Len(t, body["complaints"].([]interface{}), 1)

	// Admin moderates it
	adminToken := loginUser(t, app, "admin@example.com", "adminpass1")
	resp, err = app.Test(jsonRequest(http.MethodGet, "/api/complaints", nil, adminToken), -1)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	body = decodeBody(t, resp)
	assert.Len(t, body["complaints"].([]interface{}), 1)

	resp, err = app.Test(jsonRequest(http.MethodPatch, "/api/complaints/"+complaintID, map[string]string{
		"status": "resolved", "response": "Technician scheduled.",
	}, adminToken), -1)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	body = decodeBody(t, resp)
	moderated := body["complaint"].(map[string]interface{})
	assert.Equal(t, models.ComplaintResolved, moderated["status"])

	// Unknown statuses are rejected before touching the store
	resp, err = app.Test(jsonRequest(http.MethodPatch, "/api/complaints/"+complaintID, map[string]string{
		"status": "ignored",
	}, adminToken), -1)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	resp.Body.Close()
}

func TestWorkoutPlanCreationIsTrainerOnly(t *testing.T) {
	app, _ := setupApp(t)

	registerUser(t, app, "Member", "member@example.com", "password123", "")
	registerUser(t, app, "Coach", "coach@example.com", "password123", "trainer")

	plan := map[string]interface{}{
		"title": "Starting Strength", "level": "beginner", "duration_weeks": 12,
		"exercises": []map[string]interface{}{
			{"name": "Squat", "sets": 3, "reps": 5},
			{"name": "Bench Press", "sets": 3, "reps": 5},
		},
	}

	// Members cannot publish plans
	memberToken := loginUser(t, app, "member@example.com", "password123")
	resp, err := app.Test(jsonRequest(http.MethodPost, "/api/workout-plans", plan, memberToken), -1)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	resp.Body.Close()

	// Trainers can
	trainerToken := loginUser(t, app, "coach@example.com", "password123")
	resp, err = app.Test(jsonRequest(http.MethodPost, "/api/workout-plans", plan, trainerToken), -1)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	body := decodeBody(t, resp)
	created := body["plan"].(map[string]interface{})
	assert.Len(t, created["exercises"].([]interface{}), 2)

	// Any authenticated user can browse plans
	resp, err = app.Test(jsonRequest(http.MethodGet, "/api/workout-plans", nil, memberToken), -1)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	body = decodeBody(t, resp)
	assert.Len(t, body["plans"].([]interface{}), 1)

	// Unauthenticated browsing is rejected
	resp, err = app.Test(jsonRequest(http.MethodGet, "/api/workout-plans", nil, ""), -1)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	resp.Body.Close()
}

func TestSessionRequestFlow(t *testing.T) {
	app, _ := setupApp(t)

	registerUser(t, app, "Member", "member@example.com", "password123", "")
	trainerID := registerUser(t, app, "Coach", "coach@example.com", "password123", "trainer")
	registerUser(t, app, "Other Coach", "other@example.com", "password123", "trainer")

	memberToken := loginUser(t, app, "member@example.com", "password123")
	requestedDate := time.Now().Add(72 * time.Hour).UTC().Format(time.RFC3339)

	resp, err := app.Test(jsonRequest(http.MethodPost, "/api/training-session-requests", map[string]interface{}{
		"trainer_id": trainerID, "requested_date": requestedDate, "message": "Form check please",
	}, memberToken), -1)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	body := decodeBody(t, resp)
	request := body["request"].(map[string]interface{})
	requestID := request["id"].(string)
	assert.Equal(t, models.SessionPending, request["status"])

	// The member sees their own request
	resp, err = app.Test(jsonRequest(http.MethodGet, "/api/training-session-requests", nil, memberToken), -1)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	body = decodeBody(t, resp)
	assert.Len(t, body["requests"].([]interface{}), 1)

	// The addressed trainer sees it in their inbox
	trainerToken := loginUser(t, app, "coach@example.com", "password123")
	resp, err = app.Test(jsonRequest(http.MethodGet, "/api/training-session-requests/trainer", nil, trainerToken), -1)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	body = decodeBody(t, resp)
	assert.Len(t, body["requests"].([]interface{}), 1)

	// Members cannot change statuses at all
	resp, err = app.Test(jsonRequest(http.MethodPatch, "/api/training-session-requests/"+requestID, map[string]string{
		"status": "accepted",
	}, memberToken), -1)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	resp.Body.Close()

	// Neither can a trainer the request was not addressed to
	otherToken := loginUser(t, app, "other@example.com", "password123")
	resp, err = app.Test(jsonRequest(http.MethodPatch, "/api/training-session-requests/"+requestID, map[string]string{
		"status": "accepted",
	}, otherToken), -1)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	resp.Body.Close()

	// The addressed trainer accepts
	resp, err = app.Test(jsonRequest(http.MethodPatch, "/api/training-session-requests/"+requestID, map[string]string{
		"status": "accepted",
	}, trainerToken), -1)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	body = decodeBody(t, resp)
	assert.Equal(t, models.SessionAccepted, body["request"].(map[string]interface{})["status"])
}

func TestProfileUpdate(t *testing.T) {
	app, env := setupApp(t)

	registerUser(t, app, "Member", "member@example.com", "password123", "")
	registerUser(t, app, "Taken", "taken@example.com", "password123", "")
	memberToken := loginUser(t, app, "member@example.com", "password123")

	resp, err := app.Test(jsonRequest(http.MethodPut, "/api/users/update-profile", map[string]interface{}{
		"name":     "Renamed Member",
		"password": "newpassword1",
		"member_profile": map[string]interface{}{
			"age": 30, "height_cm": 180.0, "weight_kg": 78.5, "goal": "strength",
		},
	}, memberToken), -1)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	body := decodeBody(t, resp)
	updated := body["user"].(map[string]interface{})
	assert.Equal(t, "Renamed Member", updated["name"])

	// The password change was re-hashed and works for login
	stored, err := env.userRepo.GetByEmail("member@example.com")
	require.NoError(t, err)
	assert.NotEqual(t, "newpassword1", stored.Password)
	loginUser(t, app, "member@example.com", "newpassword1")

	// Taking another user's email is a conflict
	resp, err = app.Test(jsonRequest(http.MethodPut, "/api/users/update-profile", map[string]interface{}{
		"email": "taken@example.com",
	}, memberToken), -1)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
	resp.Body.Close()
}

func TestAdminDashboard(t *testing.T) {
	app, env := setupApp(t)

	registerUser(t, app, "Member", "member@example.com", "password123", "")
	trainerID := registerUser(t, app, "Coach", "coach@example.com", "password123", "trainer")
	seedAdmin(t, env, "admin@example.com", "adminpass1")
	adminToken := loginUser(t, app, "admin@example.com", "adminpass1")

	// Some activity to aggregate
	memberToken := loginUser(t, app, "member@example.com", "password123")
	resp, err := app.Test(jsonRequest(http.MethodPost, "/api/complaints", map[string]string{
		"subject": "Cold showers", "category": "facility", "description": "No hot water this week.",
	}, memberToken), -1)
	require.NoError(t, err)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	resp.Body.Close()

	resp, err = app.Test(jsonRequest(http.MethodPost, "/api/users/"+trainerID+"/pay", map[string]interface{}{
		"amount": 200.0, "period": "Nov", "method": "transfer",
	}, adminToken), -1)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()

	// Members cannot see the dashboard
	resp, err = app.Test(jsonRequest(http.MethodGet, "/api/admin/dashboard", nil, memberToken), -1)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	resp.Body.Close()

	// Admin gets real aggregates
	resp, err = app.Test(jsonRequest(http.MethodGet, "/api/admin/dashboard?period=week", nil, adminToken), -1)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	report := decodeBody(t, resp)
	stats := report["stats"].(map[string]interface{})
	assert.Equal(t, 1.0, stats["total_members"])
	assert.Equal(t, 1.0, stats["total_trainers"])
	assert.Equal(t, 200.0, stats["revenue"])
	assert.Equal(t, 1.0, stats["open_complaints"])
	assert.Len(t, report["pending_complaints"].([]interface{}), 1)

	// A bogus period is rejected
	resp, err = app.Test(jsonRequest(http.MethodGet, "/api/admin/dashboard?period=year", nil, adminToken), -1)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	resp.Body.Close()
}
