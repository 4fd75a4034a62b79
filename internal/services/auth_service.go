package services

import (
	"fmt"
	"log"
	"strings"
	"time"

	"gymdesk/internal/apperrors"
	"gymdesk/internal/models"
	"gymdesk/internal/repositories"

	"github.com/dgrijalva/jwt-go"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

const bcryptCost = 10

// DefaultTokenTTL is the session lifetime used when none is configured. The
// cookie max-age always mirrors this value, so there is exactly one expiry.
const DefaultTokenTTL = 7 * 24 * time.Hour

// TokenClaims is the verified content of a session token.
type TokenClaims struct {
	UserID string
	Role   string
}

// AuthService handles password hashing and the token lifecycle.
type AuthService struct {
	userRepo  repositories.UserRepository
	jwtSecret []byte
	tokenTTL  time.Duration
}

// NewAuthService creates a new AuthService. The secret must be non-empty;
// enforcing that at startup is the caller's job.
func NewAuthService(userRepo repositories.UserRepository, jwtSecret string, tokenTTL time.Duration) *AuthService {
	if tokenTTL <= 0 {
		tokenTTL = DefaultTokenTTL
	}
	return &AuthService{
		userRepo:  userRepo,
		jwtSecret: []byte(jwtSecret),
		tokenTTL:  tokenTTL,
	}
}

// TokenTTL returns the single session lifetime shared by token and cookie.
func (s *AuthService) TokenTTL() time.Duration {
	return s.tokenTTL
}

// NormalizeEmail lowercases and trims an email so uniqueness is case-insensitive.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Register creates a user with a hashed password and an empty role-specific
// profile. The admin role can never be obtained through registration.
func (s *AuthService) Register(name, email, password, role string) (*models.User, error) {
	if role == "" {
		role = models.RoleMember
	}
	if role != models.RoleMember && role != models.RoleTrainer {
		return nil, apperrors.New("INVALID_ROLE", "role must be user or trainer", 400)
	}

	email = NormalizeEmail(email)
	if existing, err := s.userRepo.GetByEmail(email); err == nil && existing != nil {
		return nil, apperrors.ErrEmailTaken
	}

	hashed, err := s.HashPassword(password)
	if err != nil {
		return nil, apperrors.Wrap(err, "HASH_FAILED", "could not register user", 500)
	}

	user := &models.User{
		ID:       uuid.New().String(),
		Name:     name,
		Email:    email,
		Password: hashed,
		Role:     role,
	}
	switch role {
	case models.RoleTrainer:
		user.TrainerProfile = &models.TrainerProfile{ID: uuid.New().String(), UserID: user.ID}
	default:
		user.MemberProfile = &models.MemberProfile{ID: uuid.New().String(), UserID: user.ID}
	}

	if err := s.userRepo.Create(user); err != nil {
		return nil, apperrors.Wrap(err, "USER_CREATE_FAILED", "could not register user", 500)
	}
	return user, nil
}

// Login authenticates a user and returns the user plus a signed session token.
// Lookup and password failures both surface as invalid credentials.
func (s *AuthService) Login(email, password string) (*models.User, string, error) {
	user, err := s.userRepo.GetByEmail(NormalizeEmail(email))
	if err != nil {
		return nil, "", apperrors.ErrInvalidCredentials
	}
	if !s.CheckPassword(password, user.Password) {
		return nil, "", apperrors.ErrInvalidCredentials
	}

	token, err := s.IssueToken(user.ID, user.Role)
	if err != nil {
		log.Printf("Failed to issue token for user %s: %v", user.ID, err)
		return nil, "", apperrors.Wrap(err, "TOKEN_ISSUE_FAILED", "could not issue token", 500)
	}
	return user, token, nil
}

// HashPassword hashes a plaintext password with bcrypt.
func (s *AuthService) HashPassword(plain string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(plain), bcryptCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(hashed), nil
}

// CheckPassword reports whether plain matches the stored hash. A mismatch is
// a false, never an error.
func (s *AuthService) CheckPassword(plain, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain)) == nil
}

// IssueToken creates a signed token asserting (userID, role), expiring after
// the configured TTL.
func (s *AuthService) IssueToken(userID, role string) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id": userID,
		"role":    role,
		"exp":     now.Add(s.tokenTTL).Unix(),
		"iat":     now.Unix(),
	})

	tokenString, err := token.SignedString(s.jwtSecret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return tokenString, nil
}

// ValidateToken parses and verifies a session token, returning its claims.
// Bad signature, wrong algorithm, malformed token and elapsed expiry all fail
// the same way.
func (s *AuthService) ValidateToken(tokenString string) (*TokenClaims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.jwtSecret, nil
	})
	if err != nil {
		return nil, apperrors.ErrInvalidToken
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return nil, apperrors.ErrInvalidToken
	}

	userID, _ := claims["user_id"].(string)
	role, _ := claims["role"].(string)
	if userID == "" || role == "" {
		return nil, apperrors.ErrInvalidToken
	}

	return &TokenClaims{UserID: userID, Role: role}, nil
}
